package kotei

import (
	"reflect"
	"slices"

	"go.uber.org/zap"
)

// validCid reports whether cid names a registered component type.
func (s *Storage) validCid(cid Cid) bool {
	return int(cid) < s.numCids
}

// AddComponent attaches c to eid under component type cid and takes
// ownership of it. A component already attached under cid is destroyed
// first, so a slot never holds two instances. Attaching the instance the
// slot already owns is a no-op.
//
// The call is rejected as an invalid argument when c is empty, eid is out of
// range or not live, or cid is out of range.
func (s *Storage) AddComponent(cid Cid, eid Eid, c Component) {
	if isEmpty(c) {
		s.assertInvalid("add component", cid, eid)
		return
	}
	if !s.IsAlive(eid) || !s.validCid(cid) {
		s.assertInvalid("add component", cid, eid)
		return
	}
	if s.cfg.Verbosity > 0 {
		s.log.Info("adding component",
			zap.Uint32("cid", uint32(cid)),
			zap.Uint32("eid", uint32(eid)),
			zap.Int("count", len(s.holders[cid])),
		)
	}
	if old := s.slots[cid][eid]; old != nil {
		if sameInstance(old, c) {
			return
		}
		s.RemoveComponent(cid, eid)
	}
	s.slots[cid][eid] = c
	s.gens[cid][eid]++
	s.holders[cid] = append(s.holders[cid], eid)
}

// sameInstance reports whether a and b are the same component value.
// Values of non-comparable types are never the same instance.
func sameInstance(a, b Component) bool {
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}

// generation returns how many components have been attached to the
// (cid, eid) slot since allocation. Both ids must be valid.
func (s *Storage) generation(cid Cid, eid Eid) uint32 {
	return s.gens[cid][eid]
}

// RemoveComponent detaches and destroys the component eid holds under cid.
// Removing an absent component is a no-op. The call is rejected as an
// invalid argument when eid is out of range or not live, or cid is out of
// range.
//
// The remaining holders of cid keep their relative order.
func (s *Storage) RemoveComponent(cid Cid, eid Eid) {
	if !s.IsAlive(eid) || !s.validCid(cid) {
		s.assertInvalid("remove component", cid, eid)
		return
	}
	c := s.slots[cid][eid]
	if c == nil {
		return
	}
	if s.cfg.Verbosity > 1 {
		s.log.Info("removing component",
			zap.Uint32("cid", uint32(cid)),
			zap.Uint32("eid", uint32(eid)),
			zap.Int("count", len(s.holders[cid])),
		)
	}
	s.slots[cid][eid] = nil
	if i := slices.Index(s.holders[cid], eid); i >= 0 {
		s.holders[cid] = slices.Delete(s.holders[cid], i, i+1)
	}
	destroyComponent(c)
}

// GetComponent returns the component eid holds under cid, or nil when there
// is none or either id is out of range.
func (s *Storage) GetComponent(cid Cid, eid Eid) Component {
	if !s.IsAllocated() || !s.validEid(eid) || !s.validCid(cid) {
		return nil
	}
	return s.slots[cid][eid]
}

// GetComponentUnchecked is GetComponent without any validation. The storage
// must be allocated and both ids in range; anything else is undefined
// behaviour (in practice an index-out-of-range panic).
func (s *Storage) GetComponentUnchecked(cid Cid, eid Eid) Component {
	return s.slots[cid][eid]
}

// Lookup is the accessor selected by Config.TrustIDs: GetComponentUnchecked
// when set, GetComponent otherwise.
func (s *Storage) Lookup(cid Cid, eid Eid) Component {
	if s.cfg.TrustIDs {
		return s.GetComponentUnchecked(cid, eid)
	}
	return s.GetComponent(cid, eid)
}

// HasComponent reports whether eid holds a component under cid.
func (s *Storage) HasComponent(cid Cid, eid Eid) bool {
	return s.GetComponent(cid, eid) != nil
}

// GetAll returns the entities currently holding cid. The slice is owned by
// the storage: do not modify it, and do not keep it across mutations. An
// out-of-range cid yields an empty slice.
func (s *Storage) GetAll(cid Cid) []Eid {
	if !s.IsAllocated() || !s.validCid(cid) {
		return nil
	}
	return s.holders[cid]
}

// CountOf returns the number of entities holding cid.
func (s *Storage) CountOf(cid Cid) int {
	return len(s.GetAll(cid))
}

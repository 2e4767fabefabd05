package kotei

import "go.uber.org/zap"

// validEid reports whether eid is inside [0, MaxEntities).
func (s *Storage) validEid(eid Eid) bool {
	return int(eid) < s.maxEntities
}

// IsAlive reports whether eid denotes a live entity. Entity 0 is never alive.
func (s *Storage) IsAlive(eid Eid) bool {
	return s.IsAllocated() && eid != InvalidEid && s.validEid(eid) && s.entities.contains(eid)
}

// Create allocates the storage if needed and returns the lowest free entity
// id, starting at 1. When every id is live it logs a capacity warning and
// returns InvalidEid; callers must check for it.
func (s *Storage) Create() Eid {
	s.Allocate()
	limit := Eid(s.maxEntities)
	eid := s.entities.firstClear(1, limit)
	if eid >= limit {
		s.log.Warn("maximum number of entities reached", zap.Int("max_entities", s.maxEntities))
		return InvalidEid
	}
	s.entities.set(eid)
	if s.cfg.Verbosity > 0 {
		s.log.Info("entity created", zap.Uint32("eid", uint32(eid)))
	}
	return eid
}

// CreateWith creates an entity and attaches each component to it in order.
// If the pool is exhausted nothing is attached and InvalidEid is returned.
func (s *Storage) CreateWith(attachments ...Attachment) Eid {
	eid := s.Create()
	if eid == InvalidEid {
		return InvalidEid
	}
	for _, a := range attachments {
		s.AddComponent(a.Cid, eid, a.Component)
	}
	return eid
}

// DestroyNow removes every component of eid and then marks it not live.
// Destroying InvalidEid, an out-of-range id, or a dead entity is a no-op.
func (s *Storage) DestroyNow(eid Eid) {
	if !s.IsAlive(eid) {
		return
	}
	if s.cfg.Verbosity > 0 {
		s.log.Info("entity being destroyed", zap.Uint32("eid", uint32(eid)))
	}
	// components go first so a dead entity never owns anything
	for cid := 0; cid < s.numCids; cid++ {
		s.RemoveComponent(Cid(cid), eid)
	}
	s.entities.unset(eid)
}

// DestroyAll destroys every live entity in ascending id order.
func (s *Storage) DestroyAll() {
	if !s.IsAllocated() {
		return
	}
	limit := Eid(s.maxEntities)
	for eid := Eid(1); eid < limit; eid++ {
		if s.entities.contains(eid) {
			s.DestroyNow(eid)
		}
	}
}

// Count returns the number of live entities.
func (s *Storage) Count() int {
	if !s.IsAllocated() {
		return 0
	}
	return s.entities.count()
}

package kotei

import (
	"reflect"

	"go.uber.org/zap"
)

// Storage is the entity table and the component table for every registered
// component type. The zero value is not usable; create one with NewStorage.
//
// Storage allocates its backing arrays lazily on the first Create (or an
// explicit Allocate) and frees them on Release. After Release it can be
// allocated again and behaves as freshly constructed.
type Storage struct {
	log *zap.Logger
	// entities holds one liveness bit per Eid; nil when not allocated.
	entities presence
	// slots[cid][eid] is the component owned by that pair, or nil.
	slots [][]Component
	// holders[cid] lists the eids whose slot for cid is occupied, in
	// attachment order.
	holders [][]Eid
	// gens[cid][eid] counts attachments to that slot; filters use it to
	// tell a recycled holder from the one they snapshotted.
	gens        [][]uint32
	cfg         Config
	maxEntities int
	numCids     int
}

// NewStorage creates a storage context sized by cfg. A non-positive
// MaxEntities falls back to DefaultMaxEntities and a larger one than
// MaxEntitiesLimit is clamped to it. A negative NumCids becomes zero. A nil
// logger discards diagnostics. No memory for entities or components is
// allocated until the first Create or Allocate.
func NewStorage(cfg Config, log *zap.Logger) *Storage {
	if cfg.MaxEntities <= 0 {
		cfg.MaxEntities = DefaultMaxEntities
	}
	if uint64(cfg.MaxEntities) > MaxEntitiesLimit {
		cfg.MaxEntities = int(maxEntitiesLimit)
	}
	cfg.NumCids = max(cfg.NumCids, 0)
	if log == nil {
		log = zap.NewNop()
	}
	return &Storage{
		log:         log,
		cfg:         cfg,
		maxEntities: cfg.MaxEntities,
		numCids:     cfg.NumCids,
	}
}

// MaxEntities returns the entity capacity; valid ids are below it.
func (s *Storage) MaxEntities() int { return s.maxEntities }

// NumCids returns the number of component types the storage holds.
func (s *Storage) NumCids() int { return s.numCids }

// IsAllocated reports whether the backing arrays exist.
func (s *Storage) IsAllocated() bool { return s.entities != nil }

// SetNumCids changes the number of component types. It must run before the
// storage is allocated; once allocated the count is fixed and SetNumCids
// returns false.
func (s *Storage) SetNumCids(n int) bool {
	if s.IsAllocated() || n < 0 {
		return false
	}
	s.numCids = n
	return true
}

// Allocate creates the presence table, one empty slot array per component
// type, and one empty dense id-list per component type. It is a no-op when
// the storage is already allocated.
func (s *Storage) Allocate() {
	if s.IsAllocated() {
		return
	}
	if s.cfg.Verbosity > 0 {
		s.log.Info("allocating entities",
			zap.Int("max_entities", s.maxEntities),
			zap.Int("num_cids", s.numCids),
		)
	}
	s.entities = newPresence(s.maxEntities)
	s.slots = make([][]Component, s.numCids)
	s.holders = make([][]Eid, s.numCids)
	s.gens = make([][]uint32, s.numCids)
	for cid := range s.slots {
		s.slots[cid] = make([]Component, s.maxEntities)
		s.gens[cid] = make([]uint32, s.maxEntities)
		s.holders[cid] = make([]Eid, 0, 16)
	}
}

// Release destroys every live entity, which destroys every attached
// component, and then frees the backing arrays. It is a no-op when the
// storage is not allocated.
func (s *Storage) Release() {
	if !s.IsAllocated() {
		return
	}
	if s.cfg.Verbosity > 0 {
		s.log.Info("deallocating entities", zap.Int("live", s.Count()))
	}
	s.DestroyAll()
	s.slots = nil
	s.holders = nil
	s.gens = nil
	s.entities = nil
}

// destroyComponent ends the lifetime of a component that was just detached.
func destroyComponent(c Component) {
	if r, ok := c.(Releaser); ok {
		r.Release()
	}
}

// isEmpty reports whether c carries no value: a nil interface or a typed nil
// pointer, map, slice, func or channel.
func isEmpty(c Component) bool {
	if c == nil {
		return true
	}
	v := reflect.ValueOf(c)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

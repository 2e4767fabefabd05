package kotei

// Filter iterates over every entity holding a component of type T under one
// component type id. It is the primary mechanism for implementing systems.
//
// Reset takes a snapshot of the dense id-list, so a system may destroy
// entities or detach components while iterating. A snapshotted holder is
// skipped once its component is detached or replaced, even if its id is
// recycled by a new entity before the filter reaches it. Components attached
// after the snapshot are only seen after the next Reset.
type Filter[T any] struct {
	storage *Storage
	snap    []holder // snapshot of the dense list, reused across resets
	curIdx  int
	curEnt  Eid
	cur     T
	cid     Cid
}

// holder is one snapshotted entry: the entity and the slot generation its
// component was attached under.
type holder struct {
	eid Eid
	gen uint32
}

// NewFilter creates a filter over the holders of cid and rewinds it.
//
// Parameters:
//   - s: The Storage to query.
//   - cid: The component type to iterate.
//
// Returns:
//   - A pointer to the newly created Filter[T].
func NewFilter[T any](s *Storage, cid Cid) *Filter[T] {
	f := &Filter[T]{storage: s, cid: cid}
	f.Reset()
	return f
}

// Reset rewinds the filter and takes a fresh snapshot of the holders.
func (f *Filter[T]) Reset() {
	f.snap = f.snap[:0]
	for _, eid := range f.storage.GetAll(f.cid) {
		f.snap = append(f.snap, holder{eid: eid, gen: f.storage.generation(f.cid, eid)})
	}
	f.curIdx = -1
	f.curEnt = InvalidEid
	var zero T
	f.cur = zero
}

// lookup returns h's component if the slot still holds the instance that
// was there when the snapshot was taken.
func (f *Filter[T]) lookup(h holder) (T, bool) {
	c, ok := f.storage.GetComponent(f.cid, h.eid).(T)
	if !ok || f.storage.generation(f.cid, h.eid) != h.gen {
		var zero T
		return zero, false
	}
	return c, true
}

// Next advances the filter to the next snapshotted entity that still holds
// its component. It returns false when the iteration is complete.
//
// Example:
//
//	query := kotei.NewFilter[*Health](storage, healthCid)
//	for query.Next() {
//	    h := query.Get()
//	    // ... process entity
//	}
func (f *Filter[T]) Next() bool {
	for f.curIdx++; f.curIdx < len(f.snap); f.curIdx++ {
		h := f.snap[f.curIdx]
		c, ok := f.lookup(h)
		if !ok {
			continue
		}
		f.curEnt = h.eid
		f.cur = c
		return true
	}
	f.curEnt = InvalidEid
	var zero T
	f.cur = zero
	return false
}

// Entity returns the current entity. Only valid after Next returned true.
func (f *Filter[T]) Entity() Eid {
	return f.curEnt
}

// Get returns the current entity's component. Only valid after Next returned
// true.
func (f *Filter[T]) Get() T {
	return f.cur
}

// Entities returns a copy of the entities in the current snapshot that still
// hold their component.
func (f *Filter[T]) Entities() []Eid {
	out := make([]Eid, 0, len(f.snap))
	for _, h := range f.snap {
		if _, ok := f.lookup(h); ok {
			out = append(out, h.eid)
		}
	}
	return out
}

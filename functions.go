package kotei

// Get retrieves the component of type T that eid holds under cid.
//
// Parameters:
//   - s: The Storage containing the entity.
//   - cid: The component type the value was attached under.
//   - eid: The entity to read from.
//
// Returns:
//   - The component as T, and true if it exists and has dynamic type T.
//   - The zero value of T and false otherwise.
func Get[T any](s *Storage, cid Cid, eid Eid) (T, bool) {
	c, ok := s.Lookup(cid, eid).(T)
	return c, ok
}

// GetOrZero is Get without the presence flag. Absent components read as the
// zero value of T, so for pointer component types callers still need a nil
// check before dereferencing.
func GetOrZero[T any](s *Storage, cid Cid, eid Eid) T {
	c, _ := Get[T](s, cid, eid)
	return c
}

// Each calls fn for every entity holding a component of type T under cid,
// in dense-list order, until fn returns false. fn must not add or remove
// components of cid; use a Filter for iteration that mutates the storage.
func Each[T any](s *Storage, cid Cid, fn func(Eid, T) bool) {
	for _, eid := range s.GetAll(cid) {
		c, ok := s.GetComponentUnchecked(cid, eid).(T)
		if !ok {
			continue
		}
		if !fn(eid, c) {
			return
		}
	}
}

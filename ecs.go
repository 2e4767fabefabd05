// Package kotei implements a fixed-capacity entity/component storage table.
//
// Features:
//   - Entity identifiers are small integers in [1, MaxEntities); 0 is invalid.
//   - One pre-sized slot array per component type for O(1) lookup.
//   - A dense id-list per component type for iteration without scanning the
//     full entity range.
//   - Lazy allocation on first Create, explicit teardown with Release.
//   - Structured diagnostics through zap.
//
// A Storage is not safe for concurrent use. Confine it to one goroutine (the
// game loop) or guard every call with an external mutex.
package kotei

// DefaultMaxEntities is the entity capacity used when none is configured.
const DefaultMaxEntities = 4096

// MaxEntitiesLimit is the largest capacity an Eid can index.
const MaxEntitiesLimit = 1<<32 - 1

// maxEntitiesLimit is MaxEntitiesLimit as a variable so it converts to int
// without a constant overflow on 32-bit platforms.
var maxEntitiesLimit uint64 = MaxEntitiesLimit

// Eid identifies an entity. Valid live entities occupy [1, MaxEntities).
type Eid uint32

// InvalidEid is the sentinel meaning "no entity". Create returns it when the
// entity pool is exhausted.
const InvalidEid Eid = 0

// Cid identifies a registered component type, in [0, NumCids).
type Cid uint32

// Component is an opaque component instance. Once attached it is owned by
// the storage slot it was attached to.
type Component any

// Releaser is implemented by components that hold resources which must be
// freed when the component is destroyed. Release is called exactly once, when
// the component is detached, replaced, or its entity is destroyed.
type Releaser interface {
	Release()
}

// Attachment pairs a component type with an instance, for CreateWith.
type Attachment struct {
	Cid       Cid
	Component Component
}

// Package silo implements an archetype-based Entity-Component-System query
// engine: given a declarative description of which components to read,
// write, or require/forbid, it produces iterators over every matching
// chunk of contiguous component storage.
//
// api.go gathers the package's public interfaces and the small number of
// opaque identifier types shared across the rest of the package. The
// concrete implementations live alongside the concern they belong to
// (storage.go, entity.go, query_exec.go, ...).
package silo

import (
	"iter"

	"github.com/TheBitDrifter/table"
)

// WorldID is an opaque identifier of a Storage instance, stable for its
// lifetime and unique across all live storages in the process. Queries key
// their per-world caches by WorldID.
type WorldID uint32

// EntityDestroyCallback is invoked when an entity is destroyed.
type EntityDestroyCallback func(Entity)

// Component represents a data attribute/state that can be attached to
// entities. Components can be used to build Filters and Views.
type Component interface {
	table.ElementType
}

// Archetype is a set of component types plus the storage for every entity
// sharing that exact set.
type Archetype interface {
	ID() uint32
	Table() table.Table
}

// Storage defines the interface for entity storage and manipulation, and is
// the collaborator every Query and Cursor is evaluated against.
type Storage interface {
	Entity(id int) (Entity, error)
	NewEntities(int, ...Component) ([]Entity, error)
	NewOrExistingArchetype(components ...Component) (Archetype, error)
	EnqueueNewEntities(int, ...Component) error
	DestroyEntities(...Entity) error
	EnqueueDestroyEntities(...Entity) error
	RowIndexFor(Component) uint32
	Locked() bool
	AddLock(bit uint32)
	RemoveLock(bit uint32)
	Register(...Component)
	tableFor(...Component) (table.Table, error)

	TransferEntities(target Storage, entities ...Entity) error
	Enqueue(EntityOperation)
	Archetypes() []ArchetypeImpl

	// WorldID identifies this storage for the purposes of per-world query
	// cache partitioning (querycache.go).
	WorldID() WorldID

	// Groups returns the statically registered ordered groups, in
	// registration order. RegisterGroup appends a new one.
	Groups() []*Group
	RegisterGroup(components ...Component) *Group

	// CanAccessArchetype reports whether the given archetype is visible
	// through this Storage handle. A plain storage always returns true; a
	// StorageAccessor produced by Split restricts this to a component
	// subset (splitworld.go).
	CanAccessArchetype(ArchetypeIndex) bool

	// Split returns a restricted StorageAccessor that only permits
	// archetypes whose layout is fully described by the given components.
	Split(components ...Component) *StorageAccessor
}

// Entity represents a game object with components and hierarchical
// relationships.
type Entity interface {
	table.Entry

	SetParent(parent Entity, callback EntityDestroyCallback) error
	Parent() Entity

	SetDestroyCallback(EntityDestroyCallback) error

	AddComponent(Component) error
	AddComponentWithValue(Component, any) error
	RemoveComponent(Component) error

	EnqueueAddComponent(Component) error
	EnqueueAddComponentWithValue(Component, any) error
	EnqueueRemoveComponent(Component) error

	Components() []Component
	ComponentsAsString() string

	Valid() bool
	Storage() Storage
	SetStorage(Storage)
}

// iCursor defines the interface implemented by Cursor, for testability.
type iCursor interface {
	Entities() iter.Seq2[int, table.Table]
	Next() bool
}

// Cache is a general-purpose string-keyed registry for callers' own
// metadata; the package itself does not use it. It is distinct from the
// per-world query cache (querycache.go), which is keyed by WorldID and has
// no string-keyed shape.
type Cache[T any] interface {
	GetIndex(string) (int, bool)
	GetItem(int) *T
	GetItem32(uint32) *T
	Register(string, T) (int, error)
}

// CacheLocation names where in a Cache an item was registered.
type CacheLocation struct {
	Key   string
	Index uint32
}

// SimpleCache is the default Cache implementation: an append-only slice
// plus a string-to-index map.
type SimpleCache[T any] struct {
	items       []T
	itemIndices map[string]int
	maxCapacity int
}

package silo

import "github.com/TheBitDrifter/table"

// factory implements the factory pattern for warehouse components.
type factory struct{}

// Factory is the global factory instance for creating warehouse components.
var Factory factory

// NewStorage creates a new Storage instance with the given schema.
func (f factory) NewStorage(schema table.Schema) Storage {
	return newStorage(schema)
}

// NewQuery creates a new, empty Filter builder.
func (f factory) NewQuery() Filter {
	return newFilter()
}

// NewCursor creates a new Cursor with the specified filter and storage.
func (f factory) NewCursor(filter DynamicFilter, storage Storage) *Cursor {
	return newCursor(filter, storage)
}

// NewQuery1 builds a single-component typed Query bound to the given View.
func NewQuery1[A any](view View1[A]) *Query[View1[A]] {
	return newQuery(view)
}

// NewQuery2 builds a two-component typed Query bound to the given View.
func NewQuery2[A, B any](view View2[A, B]) *Query[View2[A, B]] {
	return newQuery(view)
}

// NewQuery3 builds a three-component typed Query bound to the given View.
func NewQuery3[A, B, C any](view View3[A, B, C]) *Query[View3[A, B, C]] {
	return newQuery(view)
}

// NewQuery4 builds a four-component typed Query bound to the given View.
func NewQuery4[A, B, C, D any](view View4[A, B, C, D]) *Query[View4[A, B, C, D]] {
	return newQuery(view)
}

// FactoryNewComponent creates a new AccessibleComponent for type T.
func FactoryNewComponent[T any]() AccessibleComponent[T] {
	iden := table.FactoryNewElementType[T]()
	return AccessibleComponent[T]{
		Component: iden,
		Accessor:  table.FactoryNewAccessor[T](iden),
	}
}

// FactoryNewCache creates a new Cache with the specified capacity.
func FactoryNewCache[T any](cap int) Cache[T] {
	return &SimpleCache[T]{
		itemIndices: make(map[string]int),
		maxCapacity: cap,
	}
}

package silo

import "github.com/TheBitDrifter/table"

// ComponentColumn is the per-chunk, per-component handle a ChunkView hands
// back to callers: an indexable view over one archetype's storage for one
// component type. It stands in for the contiguous slice spec.md's
// component_slice<T> describes - the underlying table.Accessor[T] exposes
// indexed access (Get(index, table) *T) rather than a raw []T, so At/Len
// are the idiomatic substitute rather than an invented slice export.
type ComponentColumn[T any] struct {
	accessor AccessibleComponent[T]
	table    table.Table
	present  bool
}

func newComponentColumn[T any](accessor AccessibleComponent[T], tbl table.Table) ComponentColumn[T] {
	return ComponentColumn[T]{
		accessor: accessor,
		table:    tbl,
		present:  accessor.Accessor.Check(tbl),
	}
}

// Present reports whether the component this column was built for actually
// exists in the backing archetype. False only for a column produced from a
// Try-mode View slot matched against an archetype missing that component.
func (c ComponentColumn[T]) Present() bool {
	return c.present
}

// Len returns the number of entities (rows) in the chunk this column
// belongs to. A chunk is always one whole archetype's table (chunkview.go),
// so this always agrees with the owning ChunkView's own Len() - there is no
// partial-row chunk for the two to disagree about.
func (c ComponentColumn[T]) Len() int {
	return c.table.Length()
}

// At returns a pointer to the component value at row i. Callers must not
// call At when Present() is false.
func (c ComponentColumn[T]) At(i int) *T {
	return c.accessor.Get(i, c.table)
}

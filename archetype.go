package silo

import (
	"github.com/TheBitDrifter/mask"
	"github.com/TheBitDrifter/table"
)

// ArchetypeIndex is a dense, stable handle into a world's archetype vector.
// It is never recycled: once assigned, the index always refers to the same
// archetype for the lifetime of the Storage.
type ArchetypeIndex uint32

// ArchetypeImpl is the concrete Archetype: a component layout plus the
// columnar table.Table backing every entity that shares that layout.
type ArchetypeImpl struct {
	id          ArchetypeIndex
	table       table.Table
	layout      mask.Mask
	layoutKnown bool
}

func newArchetype(schema table.Schema, entryIndex table.EntryIndex, id ArchetypeIndex, components ...Component) (ArchetypeImpl, error) {
	elementTypes := make([]table.ElementType, len(components))
	for i, comp := range components {
		elementTypes[i] = comp
	}
	tbl, err := table.NewTableBuilder().
		WithSchema(schema).
		WithEntryIndex(entryIndex).
		WithElementTypes(elementTypes...).
		WithEvents(Config.tableEvents).
		Build()
	if err != nil {
		return ArchetypeImpl{}, err
	}
	return ArchetypeImpl{
		table: tbl,
		id:    id,
	}, nil
}

// ID returns the archetype's dense index within its storage.
func (a ArchetypeImpl) ID() uint32 {
	return uint32(a.id)
}

// Index returns the archetype's dense index within its storage, typed.
func (a ArchetypeImpl) Index() ArchetypeIndex {
	return a.id
}

// Table returns the columnar storage backing this archetype.
func (a ArchetypeImpl) Table() table.Table {
	return a.table
}

// Layout returns the archetype's component-set bitmask, used by the Filter
// algebra (filter.go). Computed lazily from the table's own mask.Maskable
// reflection and cached on first access - an archetype's layout never
// changes once created.
func (a *ArchetypeImpl) Layout() mask.Mask {
	if a.layoutKnown {
		return a.layout
	}
	if maskable, ok := a.table.(mask.Maskable); ok {
		a.layout = maskable.Mask()
		a.layoutKnown = true
	}
	return a.layout
}

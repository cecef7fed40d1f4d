package silo

// LayoutIndex enumerates a Storage's archetypes for the unordered query
// cache, resuming from a cursor so repeat calls only examine archetypes
// created since the last scan instead of rescanning from the start.
type LayoutIndex struct {
	storage Storage
}

func newLayoutIndex(storage Storage) LayoutIndex {
	return LayoutIndex{storage: storage}
}

// SearchFrom scans every archetype created at or after cursor, appending
// the ones the filter accepts to matched, and returns the updated slice
// plus the new cursor position (the archetype count observed this call).
func (li LayoutIndex) SearchFrom(f DynamicFilter, cursor int, matched []ArchetypeIndex) ([]ArchetypeIndex, int) {
	archetypes := li.storage.Archetypes()
	for i := cursor; i < len(archetypes); i++ {
		arch := archetypes[i]
		if f.Matches(arch, li.storage) {
			matched = append(matched, arch.Index())
		}
	}
	return matched, len(archetypes)
}

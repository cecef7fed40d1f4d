package silo

import "github.com/TheBitDrifter/mask"

// StorageAccessor is a restricted view of a Storage produced by Split: it
// forwards every read/write operation to the underlying Storage but only
// reports archetypes whose layout is fully described by the accessor's
// component subset as accessible. Two StorageAccessors built from disjoint
// component subsets of the same Storage can be driven by independent
// goroutines without violating the aliasing discipline a View enforces
// within a single query.
type StorageAccessor struct {
	Storage
	allowed mask.Mask
}

func newStorageAccessor(storage Storage, components ...Component) *StorageAccessor {
	var allowed mask.Mask
	for _, c := range components {
		allowed.Mark(storage.RowIndexFor(c))
	}
	return &StorageAccessor{Storage: storage, allowed: allowed}
}

// CanAccessArchetype reports whether the archetype's layout is fully
// contained in the component subset this accessor was split on.
func (s *StorageAccessor) CanAccessArchetype(idx ArchetypeIndex) bool {
	archetypes := s.Storage.Archetypes()
	if int(idx) < 1 || int(idx) > len(archetypes) {
		return false
	}
	arch := archetypes[idx-1]
	return s.allowed.ContainsAll(arch.Layout())
}

package silo

import "fmt"

type LockedStorageError struct{}

func (e LockedStorageError) Error() string {
	return fmt.Sprintf("storage is currently locked")
}

type EntityRelationError struct {
	child, parent Entity
}

func (e EntityRelationError) Error() string {
	return fmt.Sprintf("child (%v) already has parent %v", e.child, e.parent)
}

type ComponentExistsError struct {
	Component Component
}

func (e ComponentExistsError) Error() string {
	return fmt.Sprintf("component already exists on entity: %T", e.Component)
}

type ComponentNotFoundError struct {
	Component Component
}

func (e ComponentNotFoundError) Error() string {
	return fmt.Sprintf("component does not exist on entity: %T", e.Component)
}

// AliasedViewError is raised, as a panic, when a Query is built
// (NewQuery1..NewQuery4) over a View in which a component appears twice
// with conflicting access modes (two writes, or a read and a write).
type AliasedViewError struct {
	Component Component
}

func (e AliasedViewError) Error() string {
	return fmt.Sprintf("view aliases component %T: conflicting read/write access", e.Component)
}

// ArchetypeNotAccessibleError is raised when a query is evaluated against a
// split-world accessor that does not permit one of the matched archetypes.
type ArchetypeNotAccessibleError struct {
	Archetype ArchetypeIndex
}

func (e ArchetypeNotAccessibleError) Error() string {
	return fmt.Sprintf("archetype %d is not accessible from this storage accessor", e.Archetype)
}

// ReadOnlyRequiredError is returned when a read-only query entry point
// (Iter, IterChunks, ForEach) is invoked with a view that declares a write
// or try-write access. ParIterChunks does not check for read-only views.
type ReadOnlyRequiredError struct{}

func (e ReadOnlyRequiredError) Error() string {
	return "query entry point requires a read-only view, but the view declares write access"
}

package silo

// Check reports whether the component is present in the archetype at the
// cursor's current position, without the "Cursor" suffix of CheckCursor -
// kept for callers migrated from the original cursor-only accessor API.
func (c AccessibleComponent[T]) Check(cursor *Cursor) bool {
	return c.Accessor.Check(cursor.currentArchetype.table)
}

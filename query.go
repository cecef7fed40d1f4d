// Package silo provides query mechanisms for component-based entity systems
package silo

// DynamicFilter is the minimal predicate surface a Filter (or the
// Passthrough filter) must satisfy to participate in archetype matching. It mirrors legion's EntityFilter trait: a single Matches call
// against an archetype's layout, evaluated lazily and re-checked whenever
// new archetypes appear.
type DynamicFilter interface {
	Matches(archetype Archetype, storage Storage) bool
}

// passthroughFilter matches every archetype unconditionally. It is used by
// queries built with no required or forbidden components - a query over a
// View alone. LayoutIndex.SearchFrom still calls Matches once per newly
// seen archetype for it, same as any other DynamicFilter; a passthrough
// query pays that call but never fails it.
type passthroughFilter struct{}

// Passthrough returns a DynamicFilter that matches every archetype.
func Passthrough() DynamicFilter {
	return passthroughFilter{}
}

func (passthroughFilter) Matches(Archetype, Storage) bool {
	return true
}

func (passthroughFilter) canMatchGroup() ([]Component, bool) {
	return nil, false
}

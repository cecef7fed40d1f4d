package silo

import "github.com/TheBitDrifter/mask"

// GroupID identifies a statically declared Group within a Storage.
type GroupID uint32

// SubGroup identifies a contiguous sub-range of a Group's archetype family,
// as returned by Group.ExactMatch. An Ordered queryCache re-derives this
// (offset, length) pair from its Group on every refresh, so distinct
// queries bound to the same Group never have to copy or re-sort the
// family's member list - they just index different windows of it.
type SubGroup struct {
	offset, length int
}

// Len reports how many archetypes this sub-range covers.
func (s SubGroup) Len() int {
	return s.length
}

// Group is a statically declared family of related archetype layouts built
// up one component at a time: registering a Group over (A, B, C) tracks
// every archetype matching the prefixes {A}, {A, B} and {A, B, C}. Each
// prefix occupies its own contiguous layer within the group's single
// backing member list, ordered shortest-prefix-first, so two queries whose
// required components are different prefixes of the same declaration (say
// {A} and {A, B}) bind to adjacent, non-overlapping SubGroups of that one
// list - the property that lets two related ordered queries visit their
// shared archetypes in a compatible relative order instead of each
// maintaining its own independently-sorted scan.
type Group struct {
	id         GroupID
	components []Component
	layers     [][]ArchetypeIndex
	offsets    []int
	members    []ArchetypeIndex
	bound      map[ArchetypeIndex]struct{}
}

func newGroup(id GroupID, components ...Component) *Group {
	return &Group{
		id:         id,
		components: components,
		layers:     make([][]ArchetypeIndex, len(components)),
		offsets:    make([]int, len(components)),
		bound:      make(map[ArchetypeIndex]struct{}),
	}
}

// ID returns the group's identity within its owning Storage, assigned in
// registration order starting at 1.
func (g *Group) ID() GroupID {
	return g.id
}

// ExactMatch reports whether the given component set (order-insensitive)
// is exactly one of the group's declared prefixes, and if so returns the
// SubGroup locating that prefix's archetypes within Members(). A query
// whose components are some other combination - not a prefix of this
// group's declaration - fails to match, since an ordered binding only ever
// hands back archetypes the query actually asked for.
//
// The returned SubGroup's offset is only valid for the Members() list as it
// exists at the moment of this call: binding a later archetype into an
// earlier, shorter prefix shifts every subsequent prefix's offset. Callers
// must call ExactMatch again after each bind rather than reusing a
// previously returned SubGroup.
func (g *Group) ExactMatch(components []Component) (SubGroup, bool) {
	k := g.prefixLen(components)
	if k == 0 {
		return SubGroup{}, false
	}
	return SubGroup{offset: g.offsets[k-1], length: len(g.layers[k-1])}, true
}

// prefixLen returns k such that components is exactly g.components[:k]
// (order-insensitive), or 0 if components matches no prefix.
func (g *Group) prefixLen(components []Component) int {
	if len(components) == 0 || len(components) > len(g.components) {
		return 0
	}
	want := make(map[uint32]struct{}, len(components))
	for _, c := range components {
		want[c.ID()] = struct{}{}
	}
	for _, c := range g.components[:len(components)] {
		if _, ok := want[c.ID()]; !ok {
			return 0
		}
	}
	if len(want) != len(components) {
		return 0
	}
	return len(components)
}

// bind appends newly-seen archetypes to the layer of their matching prefix,
// preserving first-seen order within each layer, then recomputes the flat
// Members() list and each layer's offset into it.
func (g *Group) bind(storage Storage) {
	masks := make([]mask.Mask, len(g.components))
	var running mask.Mask
	for i, c := range g.components {
		running.Mark(storage.RowIndexFor(c))
		masks[i] = running
	}

	for _, arch := range storage.Archetypes() {
		idx := arch.Index()
		if _, already := g.bound[idx]; already {
			continue
		}
		layout := arch.Layout()
		k := g.deepestExactLayer(layout, masks)
		if k < 0 {
			continue
		}
		g.layers[k] = append(g.layers[k], idx)
		g.bound[idx] = struct{}{}
	}

	g.members = g.members[:0]
	for i, layer := range g.layers {
		g.offsets[i] = len(g.members)
		g.members = append(g.members, layer...)
	}
}

// deepestExactLayer returns the index k of the deepest prefix the
// archetype's layout matches exactly (i.e. the archetype's own component
// set equals g.components[:k+1], checked as mutual containment since
// mask.Mask exposes no bit-count), or -1 if the layout matches no prefix
// exactly.
func (g *Group) deepestExactLayer(layout mask.Mask, masks []mask.Mask) int {
	for k := len(masks) - 1; k >= 0; k-- {
		if layout.ContainsAll(masks[k]) && masks[k].ContainsAll(layout) {
			return k
		}
	}
	return -1
}

// Members returns every archetype index bound to this group so far, laid
// out shortest-prefix-first so that each prefix's SubGroup occupies a
// contiguous window with no archetype from a different prefix interleaved.
func (g *Group) Members() []ArchetypeIndex {
	return g.members
}

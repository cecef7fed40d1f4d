package silo

import (
	"fmt"

	"github.com/TheBitDrifter/bark"
	"github.com/TheBitDrifter/mask"
)

// Filter is a composable predicate over an archetype's component layout. It
// replaces the ad hoc QueryNode tree with the algebra a Query is built from:
// required components, forbidden components, and their AND/OR/NOT
// composition.
type Filter interface {
	DynamicFilter

	And(items ...interface{}) Filter
	Or(items ...interface{}) Filter
	Not(items ...interface{}) Filter
}

// FilterOperation names the boolean combinator a filter node applies to its
// children.
type FilterOperation int

const (
	OpAnd FilterOperation = iota
	OpOr
	OpNot
)

// compositeFilter implements a compound filter with child nodes.
type compositeFilter struct {
	op         FilterOperation
	children   []DynamicFilter
	components []Component
}

// leafFilter implements a simple required-components filter with no children.
type leafFilter struct {
	components []Component
}

// filter implements the Filter interface.
type filter struct {
	root DynamicFilter
}

// newFilter creates a new empty filter.
func newFilter() Filter {
	return &filter{}
}

func newCompositeFilter(op FilterOperation, components []Component) *compositeFilter {
	return &compositeFilter{
		op:         op,
		children:   make([]DynamicFilter, 0),
		components: components,
	}
}

func newLeafFilter(components []Component) *leafFilter {
	return &leafFilter{components: components}
}

// Matches implements DynamicFilter for composite nodes.
func (n *compositeFilter) Matches(archetype Archetype, storage Storage) bool {
	var nodeMask mask.Mask
	for _, comp := range n.components {
		bit := storage.RowIndexFor(comp)
		nodeMask.Mark(bit)
	}
	archeMask := archetype.Table().(mask.Maskable).Mask()

	switch n.op {
	case OpAnd:
		if !archeMask.ContainsAll(nodeMask) {
			return false
		}
		for _, child := range n.children {
			if !child.Matches(archetype, storage) {
				return false
			}
		}
		return true
	case OpOr:
		if archeMask.ContainsAny(nodeMask) {
			return true
		}
		for _, child := range n.children {
			if child.Matches(archetype, storage) {
				return true
			}
		}
		return false
	case OpNot:
		if len(n.children) == 0 {
			return archeMask.ContainsNone(nodeMask)
		}
		if len(n.components) > 0 && !archeMask.ContainsNone(nodeMask) {
			return false
		}
		for _, child := range n.children {
			if child.Matches(archetype, storage) {
				return false
			}
		}
		return true
	}
	return false
}

// canMatchGroup reports whether this node is a pure conjunction of required
// components, the only shape an ordered Group can satisfy (group.go).
func (n *compositeFilter) canMatchGroup() ([]Component, bool) {
	if n.op != OpAnd {
		return nil, false
	}
	out := append([]Component{}, n.components...)
	for _, child := range n.children {
		grouper, ok := child.(interface {
			canMatchGroup() ([]Component, bool)
		})
		if !ok {
			return nil, false
		}
		more, ok := grouper.canMatchGroup()
		if !ok {
			return nil, false
		}
		out = append(out, more...)
	}
	return out, true
}

// Matches implements DynamicFilter for leaf nodes.
func (n *leafFilter) Matches(archetype Archetype, storage Storage) bool {
	var nodeMask mask.Mask
	for _, comp := range n.components {
		bit := storage.RowIndexFor(comp)
		nodeMask.Mark(bit)
	}
	archeMask := archetype.Table().(mask.Maskable).Mask()
	return archeMask.ContainsAll(nodeMask)
}

func (n *leafFilter) canMatchGroup() ([]Component, bool) {
	return append([]Component{}, n.components...), true
}

// And builds a standalone required-components conjunction filter. Like the
// other combinators it ignores any existing root on q - Factory.NewQuery()
// returns a reusable builder, and each And/Or/Not call produces an
// independent Filter from it.
func (q *filter) And(items ...interface{}) Filter {
	components, children := q.processItems(items...)
	node := newCompositeFilter(OpAnd, components)
	node.children = children
	return &filter{root: node}
}

// Or builds a standalone alternative-components disjunction filter.
func (q *filter) Or(items ...interface{}) Filter {
	components, children := q.processItems(items...)
	node := newCompositeFilter(OpOr, components)
	node.children = children
	return &filter{root: node}
}

// Not builds a standalone forbidden-components negation filter.
func (q *filter) Not(items ...interface{}) Filter {
	components, children := q.processItems(items...)
	node := newCompositeFilter(OpNot, components)
	node.children = children
	return &filter{root: node}
}

// validateFilterItems checks if all items are of valid types for filters.
func (q *filter) validateFilterItems(items ...interface{}) error {
	for _, item := range items {
		switch item.(type) {
		case Component, []Component, DynamicFilter, Filter:
			continue
		default:
			return fmt.Errorf("invalid filter item type: %T. Only Component, []Component, or DynamicFilter are allowed", item)
		}
	}
	return nil
}

// processItems converts the input items into components and child filters.
func (q *filter) processItems(items ...interface{}) ([]Component, []DynamicFilter) {
	if err := q.validateFilterItems(items...); err != nil {
		panic(bark.AddTrace(err))
	}
	components := make([]Component, 0)
	children := make([]DynamicFilter, 0)
	for _, item := range items {
		switch v := item.(type) {
		case Component:
			components = append(components, v)
		case []Component:
			components = append(components, v...)
		case DynamicFilter:
			children = append(children, v)
		}
	}
	return components, children
}

// Matches implements DynamicFilter for the filter type.
func (q *filter) Matches(archetype Archetype, storage Storage) bool {
	if q.root == nil {
		return false
	}
	return q.root.Matches(archetype, storage)
}

// canMatchGroup reports whether the whole filter tree is a pure conjunction
// of required components, enabling evaluateQuery to bind it to a Group
// instead of scanning the unordered archetype list.
func (q *filter) canMatchGroup() ([]Component, bool) {
	if q.root == nil {
		return nil, false
	}
	grouper, ok := q.root.(interface {
		canMatchGroup() ([]Component, bool)
	})
	if !ok {
		return nil, false
	}
	return grouper.canMatchGroup()
}

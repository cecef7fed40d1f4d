package silo

// AccessMode declares how a View slot intends to touch a component: for
// reading, for writing, or optionally (Try variants tolerate the component
// being absent from a matched archetype instead of treating it as a
// required component).
type AccessMode int

const (
	ModeRead AccessMode = iota
	ModeWrite
	ModeTryRead
	ModeTryWrite
)

// viewSlot pairs a component with the access mode a View declares for it.
type viewSlot struct {
	component Component
	mode      AccessMode
}

// required reports whether a slot's absence should exclude an archetype
// from the match set - true for ModeRead/ModeWrite, false for the Try
// variants.
func (s viewSlot) required() bool {
	return s.mode == ModeRead || s.mode == ModeWrite
}

func (s viewSlot) writes() bool {
	return s.mode == ModeWrite || s.mode == ModeTryWrite
}

// View is the untyped surface every View1..View4 satisfies: the set of
// components it touches and the access mode declared for each, used by
// Query to build the Filter, to check aliasing and to decide whether the
// query is read-only.
type View interface {
	slots() []viewSlot
}

// validateAliasing returns an AliasedViewError if the same component
// appears twice with conflicting access - two writes, or a read paired
// with a write.
func validateAliasing(slots []viewSlot) error {
	seen := make(map[uint32]viewSlot, len(slots))
	for _, s := range slots {
		id := s.component.ID()
		if prior, ok := seen[uint32(id)]; ok {
			if prior.writes() || s.writes() {
				return AliasedViewError{Component: s.component}
			}
		}
		seen[uint32(id)] = s
	}
	return nil
}

// requiredComponents returns the components a View treats as mandatory -
// the ones a Filter built from this View will require.
func requiredComponents(slots []viewSlot) []Component {
	out := make([]Component, 0, len(slots))
	for _, s := range slots {
		if s.required() {
			out = append(out, s.component)
		}
	}
	return out
}

// View1 declares interest in a single component.
type View1[A any] struct {
	A AccessibleComponent[A]

	modeA AccessMode
}

// NewView1 builds a View1 with the given access mode for its component.
func NewView1[A any](a AccessibleComponent[A], modeA AccessMode) View1[A] {
	return View1[A]{A: a, modeA: modeA}
}

func (v View1[A]) slots() []viewSlot {
	return []viewSlot{{component: v.A, mode: v.modeA}}
}

// View2 declares interest in two components.
type View2[A, B any] struct {
	A AccessibleComponent[A]
	B AccessibleComponent[B]

	modeA, modeB AccessMode
}

// NewView2 builds a View2 with the given access modes for its components.
func NewView2[A, B any](a AccessibleComponent[A], modeA AccessMode, b AccessibleComponent[B], modeB AccessMode) View2[A, B] {
	return View2[A, B]{A: a, B: b, modeA: modeA, modeB: modeB}
}

func (v View2[A, B]) slots() []viewSlot {
	return []viewSlot{
		{component: v.A, mode: v.modeA},
		{component: v.B, mode: v.modeB},
	}
}

// View3 declares interest in three components.
type View3[A, B, C any] struct {
	A AccessibleComponent[A]
	B AccessibleComponent[B]
	C AccessibleComponent[C]

	modeA, modeB, modeC AccessMode
}

// NewView3 builds a View3 with the given access modes for its components.
func NewView3[A, B, C any](
	a AccessibleComponent[A], modeA AccessMode,
	b AccessibleComponent[B], modeB AccessMode,
	c AccessibleComponent[C], modeC AccessMode,
) View3[A, B, C] {
	return View3[A, B, C]{A: a, B: b, C: c, modeA: modeA, modeB: modeB, modeC: modeC}
}

func (v View3[A, B, C]) slots() []viewSlot {
	return []viewSlot{
		{component: v.A, mode: v.modeA},
		{component: v.B, mode: v.modeB},
		{component: v.C, mode: v.modeC},
	}
}

// View4 declares interest in four components.
type View4[A, B, C, D any] struct {
	A AccessibleComponent[A]
	B AccessibleComponent[B]
	C AccessibleComponent[C]
	D AccessibleComponent[D]

	modeA, modeB, modeC, modeD AccessMode
}

// NewView4 builds a View4 with the given access modes for its components.
func NewView4[A, B, C, D any](
	a AccessibleComponent[A], modeA AccessMode,
	b AccessibleComponent[B], modeB AccessMode,
	c AccessibleComponent[C], modeC AccessMode,
	d AccessibleComponent[D], modeD AccessMode,
) View4[A, B, C, D] {
	return View4[A, B, C, D]{A: a, B: b, C: c, D: d, modeA: modeA, modeB: modeB, modeC: modeC, modeD: modeD}
}

func (v View4[A, B, C, D]) slots() []viewSlot {
	return []viewSlot{
		{component: v.A, mode: v.modeA},
		{component: v.B, mode: v.modeB},
		{component: v.C, mode: v.modeC},
		{component: v.D, mode: v.modeD},
	}
}

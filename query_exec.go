package silo

import (
	"github.com/TheBitDrifter/bark"
)

// Query binds a View to the Filter built from the View's required
// components and owns the per-world archetype-match cache that Filter is
// evaluated against. A Query value is safe to reuse across Iter/IterChunks/
// ForEach/Par calls and across distinct Storage instances - its cache is
// partitioned by WorldID.
type Query[V View] struct {
	view            V
	slots           []viewSlot
	f               DynamicFilter
	readOnly        bool
	caches          *queryCacheRegistry
	group           *Group
	groupComponents []Component
}

func newQuery[V View](view V) *Query[V] {
	slots := view.slots()
	if err := validateAliasing(slots); err != nil {
		panic(bark.AddTrace(err))
	}

	readOnly := true
	for _, s := range slots {
		if s.writes() {
			readOnly = false
			break
		}
	}

	required := requiredComponents(slots)
	var f DynamicFilter = passthroughFilter{}
	if len(required) > 0 {
		f = newFilter().And(required)
	}

	return &Query[V]{
		view:     view,
		slots:    slots,
		f:        f,
		readOnly: readOnly,
		caches:   newQueryCacheRegistry(),
	}
}

// ReadOnly reports whether every slot of the bound View declares read (or
// try-read) access. Iter/IterChunks/ForEach (the non-Mut entry points)
// require this; IterMut/IterChunksMut/ForEachMut do not.
func (q *Query[V]) ReadOnly() bool {
	return q.readOnly
}

// requireReadOnly returns ReadOnlyRequiredError if the query's view
// declares any write access - guarding the read-only entry points.
func (q *Query[V]) requireReadOnly() error {
	if !q.readOnly {
		return ReadOnlyRequiredError{}
	}
	return nil
}

// WithFilter returns a new Query combining q's view-derived filter with an
// additional caller-supplied Filter via AND. The returned Query starts with
// a fresh, empty cache - it does not inherit q's matched archetypes, since
// narrowing the filter can exclude archetypes q had already cached.
func (q *Query[V]) WithFilter(f Filter) *Query[V] {
	return &Query[V]{
		view:     q.view,
		slots:    q.slots,
		f:        newFilter().And(q.f, f),
		readOnly: q.readOnly,
		caches:   newQueryCacheRegistry(),
	}
}

// evaluateQuery resolves the query's Filter against storage, binding it to
// a statically declared Group when possible and otherwise falling back to
// the incremental unordered cache, then validates every matched archetype
// against storage's access restrictions (split-world support).
func (q *Query[V]) evaluateQuery(storage Storage) (QueryResult, error) {
	_, cached := q.caches.get(storage.WorldID())
	if !cached {
		q.group, q.groupComponents = nil, nil
	}
	if Config.groupMatchingEnabled && !cached {
		if grouper, ok := q.f.(interface{ canMatchGroup() ([]Component, bool) }); ok {
			if components, ok := grouper.canMatchGroup(); ok {
				for _, g := range storage.Groups() {
					if _, ok := g.ExactMatch(components); ok {
						q.group, q.groupComponents = g, components
						break
					}
				}
			}
		}
	}

	cache, ok := q.caches.get(storage.WorldID())
	if !ok {
		if q.group != nil {
			cache = newOrderedCache(q.group, q.groupComponents)
		} else {
			cache = newUnorderedCache()
		}
		q.caches.set(storage.WorldID(), cache)
	}

	layoutIndex := newLayoutIndex(storage)
	archIdxs := cache.refresh(storage, q.f, layoutIndex)

	for _, idx := range archIdxs {
		if !storage.CanAccessArchetype(idx) {
			return QueryResult{}, ArchetypeNotAccessibleError{Archetype: idx}
		}
	}
	result := newQueryResult(archIdxs, cache.kind == cacheOrdered)
	log.WithFields(map[string]interface{}{
		"matched": result.Len(),
		"ordered": cache.kind == cacheOrdered,
	}).Trace("evaluated query")
	return result, nil
}

// IterChunks1 returns a fused ChunkIter over every chunk matching q's
// filter. Requires the view to be read-only; use IterChunksMut1 otherwise.
func IterChunks1[A any](q *Query[View1[A]], storage Storage) (*ChunkIter1[A], error) {
	if err := q.requireReadOnly(); err != nil {
		return nil, err
	}
	return IterChunksMut1(q, storage)
}

// IterChunksMut1 returns a fused ChunkIter over every chunk matching q's
// filter, without the read-only requirement.
func IterChunksMut1[A any](q *Query[View1[A]], storage Storage) (*ChunkIter1[A], error) {
	result, err := q.evaluateQuery(storage)
	if err != nil {
		return nil, err
	}
	return newChunkIter1(q.view, storage, result), nil
}

// ForEach1 evaluates the query and invokes fn once per chunk.
func ForEach1[A any](q *Query[View1[A]], storage Storage, fn func(ChunkView1[A])) error {
	it, err := IterChunks1(q, storage)
	if err != nil {
		return err
	}
	for it.Next() {
		fn(it.View())
	}
	return nil
}

// ForEachMut1 evaluates the query and invokes fn once per chunk, permitting
// write-mode views.
func ForEachMut1[A any](q *Query[View1[A]], storage Storage, fn func(ChunkView1[A])) error {
	it, err := IterChunksMut1(q, storage)
	if err != nil {
		return err
	}
	for it.Next() {
		fn(it.View())
	}
	return nil
}

// IterChunks2 is the two-component analogue of IterChunks1.
func IterChunks2[A, B any](q *Query[View2[A, B]], storage Storage) (*ChunkIter2[A, B], error) {
	if err := q.requireReadOnly(); err != nil {
		return nil, err
	}
	return IterChunksMut2(q, storage)
}

func IterChunksMut2[A, B any](q *Query[View2[A, B]], storage Storage) (*ChunkIter2[A, B], error) {
	result, err := q.evaluateQuery(storage)
	if err != nil {
		return nil, err
	}
	return newChunkIter2(q.view, storage, result), nil
}

func ForEach2[A, B any](q *Query[View2[A, B]], storage Storage, fn func(ChunkView2[A, B])) error {
	it, err := IterChunks2(q, storage)
	if err != nil {
		return err
	}
	for it.Next() {
		fn(it.View())
	}
	return nil
}

func ForEachMut2[A, B any](q *Query[View2[A, B]], storage Storage, fn func(ChunkView2[A, B])) error {
	it, err := IterChunksMut2(q, storage)
	if err != nil {
		return err
	}
	for it.Next() {
		fn(it.View())
	}
	return nil
}

// IterChunks3 is the three-component analogue of IterChunks1.
func IterChunks3[A, B, C any](q *Query[View3[A, B, C]], storage Storage) (*ChunkIter3[A, B, C], error) {
	if err := q.requireReadOnly(); err != nil {
		return nil, err
	}
	return IterChunksMut3(q, storage)
}

func IterChunksMut3[A, B, C any](q *Query[View3[A, B, C]], storage Storage) (*ChunkIter3[A, B, C], error) {
	result, err := q.evaluateQuery(storage)
	if err != nil {
		return nil, err
	}
	return newChunkIter3(q.view, storage, result), nil
}

func ForEach3[A, B, C any](q *Query[View3[A, B, C]], storage Storage, fn func(ChunkView3[A, B, C])) error {
	it, err := IterChunks3(q, storage)
	if err != nil {
		return err
	}
	for it.Next() {
		fn(it.View())
	}
	return nil
}

func ForEachMut3[A, B, C any](q *Query[View3[A, B, C]], storage Storage, fn func(ChunkView3[A, B, C])) error {
	it, err := IterChunksMut3(q, storage)
	if err != nil {
		return err
	}
	for it.Next() {
		fn(it.View())
	}
	return nil
}

// IterChunks4 is the four-component analogue of IterChunks1.
func IterChunks4[A, B, C, D any](q *Query[View4[A, B, C, D]], storage Storage) (*ChunkIter4[A, B, C, D], error) {
	if err := q.requireReadOnly(); err != nil {
		return nil, err
	}
	return IterChunksMut4(q, storage)
}

func IterChunksMut4[A, B, C, D any](q *Query[View4[A, B, C, D]], storage Storage) (*ChunkIter4[A, B, C, D], error) {
	result, err := q.evaluateQuery(storage)
	if err != nil {
		return nil, err
	}
	return newChunkIter4(q.view, storage, result), nil
}

func ForEach4[A, B, C, D any](q *Query[View4[A, B, C, D]], storage Storage, fn func(ChunkView4[A, B, C, D])) error {
	it, err := IterChunks4(q, storage)
	if err != nil {
		return err
	}
	for it.Next() {
		fn(it.View())
	}
	return nil
}

func ForEachMut4[A, B, C, D any](q *Query[View4[A, B, C, D]], storage Storage, fn func(ChunkView4[A, B, C, D])) error {
	it, err := IterChunksMut4(q, storage)
	if err != nil {
		return err
	}
	for it.Next() {
		fn(it.View())
	}
	return nil
}

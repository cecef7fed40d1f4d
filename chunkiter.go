package silo

// ChunkIter1 sequentially visits every archetype a query's QueryResult
// covers, handing back one ChunkView1 per call to Next/View. It is fused:
// once exhausted it stays exhausted (unlike Cursor, which resets and
// starts a new pass after it is exhausted).
type ChunkIter1[A any] struct {
	view    View1[A]
	storage Storage
	result  QueryResult
	index   int
}

func newChunkIter1[A any](view View1[A], storage Storage, result QueryResult) *ChunkIter1[A] {
	return &ChunkIter1[A]{view: view, storage: storage, result: result, index: -1}
}

// Next advances to the next chunk and reports whether one exists.
func (it *ChunkIter1[A]) Next() bool {
	it.index++
	return it.index < it.result.Len()
}

// View returns the chunk at the current position. Call only after Next
// returns true.
func (it *ChunkIter1[A]) View() ChunkView1[A] {
	idx := it.result.Index(it.index)
	arch := it.storage.Archetypes()[idx-1]
	return ChunkView1[A]{chunkBase: chunkBase{archetype: idx, table: arch.Table()}, view: it.view}
}

// Close exhausts the iterator, so later Next calls return false. ChunkIter
// holds no other resources; Close exists so callers can defer-close every
// iterator uniformly, whatever its arity.
func (it *ChunkIter1[A]) Close() {
	it.index = it.result.Len()
}

// ChunkIter2 sequentially visits every matched archetype for a
// two-component View.
type ChunkIter2[A, B any] struct {
	view    View2[A, B]
	storage Storage
	result  QueryResult
	index   int
}

func newChunkIter2[A, B any](view View2[A, B], storage Storage, result QueryResult) *ChunkIter2[A, B] {
	return &ChunkIter2[A, B]{view: view, storage: storage, result: result, index: -1}
}

func (it *ChunkIter2[A, B]) Next() bool {
	it.index++
	return it.index < it.result.Len()
}

func (it *ChunkIter2[A, B]) View() ChunkView2[A, B] {
	idx := it.result.Index(it.index)
	arch := it.storage.Archetypes()[idx-1]
	return ChunkView2[A, B]{chunkBase: chunkBase{archetype: idx, table: arch.Table()}, view: it.view}
}

func (it *ChunkIter2[A, B]) Close() {
	it.index = it.result.Len()
}

// ChunkIter3 sequentially visits every matched archetype for a
// three-component View.
type ChunkIter3[A, B, C any] struct {
	view    View3[A, B, C]
	storage Storage
	result  QueryResult
	index   int
}

func newChunkIter3[A, B, C any](view View3[A, B, C], storage Storage, result QueryResult) *ChunkIter3[A, B, C] {
	return &ChunkIter3[A, B, C]{view: view, storage: storage, result: result, index: -1}
}

func (it *ChunkIter3[A, B, C]) Next() bool {
	it.index++
	return it.index < it.result.Len()
}

func (it *ChunkIter3[A, B, C]) View() ChunkView3[A, B, C] {
	idx := it.result.Index(it.index)
	arch := it.storage.Archetypes()[idx-1]
	return ChunkView3[A, B, C]{chunkBase: chunkBase{archetype: idx, table: arch.Table()}, view: it.view}
}

func (it *ChunkIter3[A, B, C]) Close() {
	it.index = it.result.Len()
}

// ChunkIter4 sequentially visits every matched archetype for a
// four-component View.
type ChunkIter4[A, B, C, D any] struct {
	view    View4[A, B, C, D]
	storage Storage
	result  QueryResult
	index   int
}

func newChunkIter4[A, B, C, D any](view View4[A, B, C, D], storage Storage, result QueryResult) *ChunkIter4[A, B, C, D] {
	return &ChunkIter4[A, B, C, D]{view: view, storage: storage, result: result, index: -1}
}

func (it *ChunkIter4[A, B, C, D]) Next() bool {
	it.index++
	return it.index < it.result.Len()
}

func (it *ChunkIter4[A, B, C, D]) View() ChunkView4[A, B, C, D] {
	idx := it.result.Index(it.index)
	arch := it.storage.Archetypes()[idx-1]
	return ChunkView4[A, B, C, D]{chunkBase: chunkBase{archetype: idx, table: arch.Table()}, view: it.view}
}

func (it *ChunkIter4[A, B, C, D]) Close() {
	it.index = it.result.Len()
}

package silo

// RowIter1 flattens a ChunkIter1 into one call per matching row, for
// callers that don't care about chunk boundaries. It is built on top of
// ChunkIter1 rather than duplicating the archetype scan.
type RowIter1[A any] struct {
	chunks *ChunkIter1[A]
	view   ChunkView1[A]
	row    int
}

func newRowIter1[A any](chunks *ChunkIter1[A]) *RowIter1[A] {
	return &RowIter1[A]{chunks: chunks, row: -1}
}

// Next advances to the next matching row, pulling a new chunk when the
// current one is exhausted.
func (it *RowIter1[A]) Next() bool {
	for {
		if it.row >= 0 && it.row+1 < it.view.Len() {
			it.row++
			return true
		}
		if !it.chunks.Next() {
			return false
		}
		it.view = it.chunks.View()
		it.row = 0
		if it.view.Len() > 0 {
			return true
		}
		it.row = -1
	}
}

// A returns the current row's component, from the view's sole slot.
func (it *RowIter1[A]) A() *A { return it.view.ColumnA().At(it.row) }

// Close releases the underlying ChunkIter1.
func (it *RowIter1[A]) Close() { it.chunks.Close() }

// Iter1 returns a flattened, read-only row iterator over q's matches.
func Iter1[A any](q *Query[View1[A]], storage Storage) (*RowIter1[A], error) {
	if err := q.requireReadOnly(); err != nil {
		return nil, err
	}
	return IterMut1(q, storage)
}

// IterMut1 returns a flattened row iterator over q's matches, without the
// read-only requirement.
func IterMut1[A any](q *Query[View1[A]], storage Storage) (*RowIter1[A], error) {
	chunks, err := IterChunksMut1(q, storage)
	if err != nil {
		return nil, err
	}
	return newRowIter1(chunks), nil
}

// RowIter2 flattens a ChunkIter2 into one call per matching row.
type RowIter2[A, B any] struct {
	chunks *ChunkIter2[A, B]
	view   ChunkView2[A, B]
	row    int
}

func newRowIter2[A, B any](chunks *ChunkIter2[A, B]) *RowIter2[A, B] {
	return &RowIter2[A, B]{chunks: chunks, row: -1}
}

func (it *RowIter2[A, B]) Next() bool {
	for {
		if it.row >= 0 && it.row+1 < it.view.Len() {
			it.row++
			return true
		}
		if !it.chunks.Next() {
			return false
		}
		it.view = it.chunks.View()
		it.row = 0
		if it.view.Len() > 0 {
			return true
		}
		it.row = -1
	}
}

func (it *RowIter2[A, B]) A() *A  { return it.view.ColumnA().At(it.row) }
func (it *RowIter2[A, B]) B() *B  { return it.view.ColumnB().At(it.row) }
func (it *RowIter2[A, B]) Close() { it.chunks.Close() }

// Iter2 returns a flattened, read-only row iterator over q's matches.
func Iter2[A, B any](q *Query[View2[A, B]], storage Storage) (*RowIter2[A, B], error) {
	if err := q.requireReadOnly(); err != nil {
		return nil, err
	}
	return IterMut2(q, storage)
}

// IterMut2 returns a flattened row iterator over q's matches, without the
// read-only requirement.
func IterMut2[A, B any](q *Query[View2[A, B]], storage Storage) (*RowIter2[A, B], error) {
	chunks, err := IterChunksMut2(q, storage)
	if err != nil {
		return nil, err
	}
	return newRowIter2(chunks), nil
}

// RowIter3 flattens a ChunkIter3 into one call per matching row.
type RowIter3[A, B, C any] struct {
	chunks *ChunkIter3[A, B, C]
	view   ChunkView3[A, B, C]
	row    int
}

func newRowIter3[A, B, C any](chunks *ChunkIter3[A, B, C]) *RowIter3[A, B, C] {
	return &RowIter3[A, B, C]{chunks: chunks, row: -1}
}

func (it *RowIter3[A, B, C]) Next() bool {
	for {
		if it.row >= 0 && it.row+1 < it.view.Len() {
			it.row++
			return true
		}
		if !it.chunks.Next() {
			return false
		}
		it.view = it.chunks.View()
		it.row = 0
		if it.view.Len() > 0 {
			return true
		}
		it.row = -1
	}
}

func (it *RowIter3[A, B, C]) A() *A  { return it.view.ColumnA().At(it.row) }
func (it *RowIter3[A, B, C]) B() *B  { return it.view.ColumnB().At(it.row) }
func (it *RowIter3[A, B, C]) C() *C  { return it.view.ColumnC().At(it.row) }
func (it *RowIter3[A, B, C]) Close() { it.chunks.Close() }

// Iter3 returns a flattened, read-only row iterator over q's matches.
func Iter3[A, B, C any](q *Query[View3[A, B, C]], storage Storage) (*RowIter3[A, B, C], error) {
	if err := q.requireReadOnly(); err != nil {
		return nil, err
	}
	return IterMut3(q, storage)
}

// IterMut3 returns a flattened row iterator over q's matches, without the
// read-only requirement.
func IterMut3[A, B, C any](q *Query[View3[A, B, C]], storage Storage) (*RowIter3[A, B, C], error) {
	chunks, err := IterChunksMut3(q, storage)
	if err != nil {
		return nil, err
	}
	return newRowIter3(chunks), nil
}

// RowIter4 flattens a ChunkIter4 into one call per matching row.
type RowIter4[A, B, C, D any] struct {
	chunks *ChunkIter4[A, B, C, D]
	view   ChunkView4[A, B, C, D]
	row    int
}

func newRowIter4[A, B, C, D any](chunks *ChunkIter4[A, B, C, D]) *RowIter4[A, B, C, D] {
	return &RowIter4[A, B, C, D]{chunks: chunks, row: -1}
}

func (it *RowIter4[A, B, C, D]) Next() bool {
	for {
		if it.row >= 0 && it.row+1 < it.view.Len() {
			it.row++
			return true
		}
		if !it.chunks.Next() {
			return false
		}
		it.view = it.chunks.View()
		it.row = 0
		if it.view.Len() > 0 {
			return true
		}
		it.row = -1
	}
}

func (it *RowIter4[A, B, C, D]) A() *A  { return it.view.ColumnA().At(it.row) }
func (it *RowIter4[A, B, C, D]) B() *B  { return it.view.ColumnB().At(it.row) }
func (it *RowIter4[A, B, C, D]) C() *C  { return it.view.ColumnC().At(it.row) }
func (it *RowIter4[A, B, C, D]) D() *D  { return it.view.ColumnD().At(it.row) }
func (it *RowIter4[A, B, C, D]) Close() { it.chunks.Close() }

// Iter4 returns a flattened, read-only row iterator over q's matches.
func Iter4[A, B, C, D any](q *Query[View4[A, B, C, D]], storage Storage) (*RowIter4[A, B, C, D], error) {
	if err := q.requireReadOnly(); err != nil {
		return nil, err
	}
	return IterMut4(q, storage)
}

// IterMut4 returns a flattened row iterator over q's matches, without the
// read-only requirement.
func IterMut4[A, B, C, D any](q *Query[View4[A, B, C, D]], storage Storage) (*RowIter4[A, B, C, D], error) {
	chunks, err := IterChunksMut4(q, storage)
	if err != nil {
		return nil, err
	}
	return newRowIter4(chunks), nil
}

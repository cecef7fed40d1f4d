package silo

import (
	"context"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// splitResult recursively bisects a QueryResult's matched-archetype range
// down to leafSize, producing the work-stealing leaves ParChunkIter.Drive
// dispatches one goroutine per. Splitting only ever divides which
// archetypes a leaf owns - never a single archetype's rows - so each leaf
// is itself a (possibly multi-archetype) QueryResult, not a partial chunk.
func splitResult(r QueryResult, leafSize int) []QueryResult {
	if leafSize < 1 {
		leafSize = 1
	}
	if r.Len() <= leafSize {
		return []QueryResult{r}
	}
	left, right := r.SplitAt(r.Len() / 2)
	return append(splitResult(left, leafSize), splitResult(right, leafSize)...)
}

// ParChunkIter1 drives a bounded pool of goroutines, each sequentially
// visiting every archetype in one leaf-sized slice of the matched-archetype
// range. It is the Go analogue of legion's rayon-backed UnindexedProducer
// split/fold_with: instead of a work-stealing deque, a fixed-size semaphore
// caps concurrency while errgroup collects the first error and cancels the
// rest.
type ParChunkIter1[A any] struct {
	view    View1[A]
	storage Storage
	leaves  []QueryResult
}

func newParChunkIter1[A any](view View1[A], storage Storage, result QueryResult) *ParChunkIter1[A] {
	return &ParChunkIter1[A]{view: view, storage: storage, leaves: splitResult(result, Config.parChunkLeafSize)}
}

// Drive runs fn once per chunk (one whole archetype) across every leaf,
// bounded by Config.parChunkWorkers concurrent goroutines. It returns the
// first error fn produces, if any, after every in-flight goroutine has
// finished.
func (p *ParChunkIter1[A]) Drive(ctx context.Context, fn func(ChunkView1[A]) error) error {
	sem := semaphore.NewWeighted(int64(max(1, Config.parChunkWorkers)))
	group, ctx := errgroup.WithContext(ctx)
	for _, leaf := range p.leaves {
		leaf := leaf
		if err := sem.Acquire(ctx, 1); err != nil {
			break
		}
		group.Go(func() error {
			defer sem.Release(1)
			for i := 0; i < leaf.Len(); i++ {
				idx := leaf.Index(i)
				arch := p.storage.Archetypes()[idx-1]
				cv := ChunkView1[A]{chunkBase: chunkBase{archetype: idx, table: arch.Table()}, view: p.view}
				if err := fn(cv); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return group.Wait()
}

// ParIterChunks1 evaluates q and returns a ParChunkIter1 over the result.
func ParIterChunks1[A any](q *Query[View1[A]], storage Storage) (*ParChunkIter1[A], error) {
	result, err := q.evaluateQuery(storage)
	if err != nil {
		return nil, err
	}
	return newParChunkIter1(q.view, storage, result), nil
}

// ParChunkIter2 is the two-component analogue of ParChunkIter1.
type ParChunkIter2[A, B any] struct {
	view    View2[A, B]
	storage Storage
	leaves  []QueryResult
}

func newParChunkIter2[A, B any](view View2[A, B], storage Storage, result QueryResult) *ParChunkIter2[A, B] {
	return &ParChunkIter2[A, B]{view: view, storage: storage, leaves: splitResult(result, Config.parChunkLeafSize)}
}

func (p *ParChunkIter2[A, B]) Drive(ctx context.Context, fn func(ChunkView2[A, B]) error) error {
	sem := semaphore.NewWeighted(int64(max(1, Config.parChunkWorkers)))
	group, ctx := errgroup.WithContext(ctx)
	for _, leaf := range p.leaves {
		leaf := leaf
		if err := sem.Acquire(ctx, 1); err != nil {
			break
		}
		group.Go(func() error {
			defer sem.Release(1)
			for i := 0; i < leaf.Len(); i++ {
				idx := leaf.Index(i)
				arch := p.storage.Archetypes()[idx-1]
				cv := ChunkView2[A, B]{chunkBase: chunkBase{archetype: idx, table: arch.Table()}, view: p.view}
				if err := fn(cv); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return group.Wait()
}

// ParIterChunks2 evaluates q and returns a ParChunkIter2 over the result.
func ParIterChunks2[A, B any](q *Query[View2[A, B]], storage Storage) (*ParChunkIter2[A, B], error) {
	result, err := q.evaluateQuery(storage)
	if err != nil {
		return nil, err
	}
	return newParChunkIter2(q.view, storage, result), nil
}

// ParChunkIter3 is the three-component analogue of ParChunkIter1.
type ParChunkIter3[A, B, C any] struct {
	view    View3[A, B, C]
	storage Storage
	leaves  []QueryResult
}

func newParChunkIter3[A, B, C any](view View3[A, B, C], storage Storage, result QueryResult) *ParChunkIter3[A, B, C] {
	return &ParChunkIter3[A, B, C]{view: view, storage: storage, leaves: splitResult(result, Config.parChunkLeafSize)}
}

func (p *ParChunkIter3[A, B, C]) Drive(ctx context.Context, fn func(ChunkView3[A, B, C]) error) error {
	sem := semaphore.NewWeighted(int64(max(1, Config.parChunkWorkers)))
	group, ctx := errgroup.WithContext(ctx)
	for _, leaf := range p.leaves {
		leaf := leaf
		if err := sem.Acquire(ctx, 1); err != nil {
			break
		}
		group.Go(func() error {
			defer sem.Release(1)
			for i := 0; i < leaf.Len(); i++ {
				idx := leaf.Index(i)
				arch := p.storage.Archetypes()[idx-1]
				cv := ChunkView3[A, B, C]{chunkBase: chunkBase{archetype: idx, table: arch.Table()}, view: p.view}
				if err := fn(cv); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return group.Wait()
}

// ParIterChunks3 evaluates q and returns a ParChunkIter3 over the result.
func ParIterChunks3[A, B, C any](q *Query[View3[A, B, C]], storage Storage) (*ParChunkIter3[A, B, C], error) {
	result, err := q.evaluateQuery(storage)
	if err != nil {
		return nil, err
	}
	return newParChunkIter3(q.view, storage, result), nil
}

// ParChunkIter4 is the four-component analogue of ParChunkIter1.
type ParChunkIter4[A, B, C, D any] struct {
	view    View4[A, B, C, D]
	storage Storage
	leaves  []QueryResult
}

func newParChunkIter4[A, B, C, D any](view View4[A, B, C, D], storage Storage, result QueryResult) *ParChunkIter4[A, B, C, D] {
	return &ParChunkIter4[A, B, C, D]{view: view, storage: storage, leaves: splitResult(result, Config.parChunkLeafSize)}
}

func (p *ParChunkIter4[A, B, C, D]) Drive(ctx context.Context, fn func(ChunkView4[A, B, C, D]) error) error {
	sem := semaphore.NewWeighted(int64(max(1, Config.parChunkWorkers)))
	group, ctx := errgroup.WithContext(ctx)
	for _, leaf := range p.leaves {
		leaf := leaf
		if err := sem.Acquire(ctx, 1); err != nil {
			break
		}
		group.Go(func() error {
			defer sem.Release(1)
			for i := 0; i < leaf.Len(); i++ {
				idx := leaf.Index(i)
				arch := p.storage.Archetypes()[idx-1]
				cv := ChunkView4[A, B, C, D]{chunkBase: chunkBase{archetype: idx, table: arch.Table()}, view: p.view}
				if err := fn(cv); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return group.Wait()
}

// ParIterChunks4 evaluates q and returns a ParChunkIter4 over the result.
func ParIterChunks4[A, B, C, D any](q *Query[View4[A, B, C, D]], storage Storage) (*ParChunkIter4[A, B, C, D], error) {
	result, err := q.evaluateQuery(storage)
	if err != nil {
		return nil, err
	}
	return newParChunkIter4(q.view, storage, result), nil
}

package silo

// QueryResult names a contiguous sub-range of the archetype indices a query
// matched. A whole evaluateQuery call produces exactly one QueryResult
// spanning every matched archetype; SplitAt bisects that range - not any
// archetype's rows - so that ParChunkIter's work-stealing leaves each own a
// disjoint slice of the matched-archetype list, never a slice of a single
// archetype's table.
type QueryResult struct {
	indices []ArchetypeIndex
	lo, hi  int
	ordered bool
}

// newQueryResult wraps the full archetype list a cache produced into a
// QueryResult spanning it end to end.
func newQueryResult(indices []ArchetypeIndex, ordered bool) QueryResult {
	return QueryResult{indices: indices, lo: 0, hi: len(indices), ordered: ordered}
}

// Len reports the number of archetypes this result covers.
func (r QueryResult) Len() int {
	return r.hi - r.lo
}

// Ordered reports whether this result came from a Group-backed cache.
func (r QueryResult) Ordered() bool {
	return r.ordered
}

// Index returns the i'th archetype in this result's range, 0 <= i < Len().
func (r QueryResult) Index(i int) ArchetypeIndex {
	return r.indices[r.lo+i]
}

// SplitAt divides a QueryResult into two halves at archetype offset i
// (relative to the start of its range). Both halves share the same
// backing index slice.
func (r QueryResult) SplitAt(i int) (QueryResult, QueryResult) {
	mid := r.lo + i
	left := QueryResult{indices: r.indices, lo: r.lo, hi: mid, ordered: r.ordered}
	right := QueryResult{indices: r.indices, lo: mid, hi: r.hi, ordered: r.ordered}
	return left, right
}

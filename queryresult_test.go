package silo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryResultLenAndSplitAt(t *testing.T) {
	indices := []ArchetypeIndex{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	r := newQueryResult(indices, false)
	assert.Equal(t, 10, r.Len())

	left, right := r.SplitAt(4)
	assert.Equal(t, 4, left.Len())
	assert.Equal(t, 6, right.Len())
	assert.Equal(t, r.Len(), left.Len()+right.Len())

	for i := 0; i < left.Len(); i++ {
		assert.Equal(t, indices[i], left.Index(i))
	}
	for i := 0; i < right.Len(); i++ {
		assert.Equal(t, indices[4+i], right.Index(i))
	}
}

func TestSplitResultRespectsLeafSize(t *testing.T) {
	indices := make([]ArchetypeIndex, 7)
	for i := range indices {
		indices[i] = ArchetypeIndex(i + 1)
	}
	leaves := splitResult(newQueryResult(indices, false), 2)

	total := 0
	for _, l := range leaves {
		assert.LessOrEqual(t, l.Len(), 2)
		total += l.Len()
	}
	assert.Equal(t, 7, total)
}

func TestSplitResultLeavesSmallRangesWhole(t *testing.T) {
	indices := []ArchetypeIndex{1, 2, 3}
	r := newQueryResult(indices, false)
	leaves := splitResult(r, 8)
	assert.Equal(t, []QueryResult{r}, leaves)
}

func TestSplitResultNeverSplitsWithinOneArchetype(t *testing.T) {
	// leafSize of 0 (clamped to 1) splits down to single archetypes, never
	// below - there is no row range left to bisect once a leaf names one
	// archetype.
	indices := []ArchetypeIndex{1, 2, 3}
	leaves := splitResult(newQueryResult(indices, false), 0)
	assert.Len(t, leaves, 3)
	for _, l := range leaves {
		assert.Equal(t, 1, l.Len())
	}
}

package silo

import (
	"iter"

	"github.com/TheBitDrifter/table"
)

// chunkBase identifies the one archetype's table a ChunkView addresses,
// shared by every arity. A chunk is always a whole archetype - legion's
// ChunkView never hands back a partial table - so Len() and every column's
// Len() both reduce to the table's own row count.
type chunkBase struct {
	archetype ArchetypeIndex
	table     table.Table
}

// Archetype returns the archetype index this chunk was drawn from.
func (c chunkBase) Archetype() ArchetypeIndex {
	return c.archetype
}

// Len returns the number of rows in this chunk's archetype.
func (c chunkBase) Len() int {
	return c.table.Length()
}

// Rows iterates every row of the chunk's archetype, yielding the row index
// and the entity ID at that row.
func (c chunkBase) Rows() iter.Seq2[int, table.EntryID] {
	return func(yield func(int, table.EntryID) bool) {
		n := c.table.Length()
		for i := 0; i < n; i++ {
			entry, err := c.table.Entry(i)
			if err != nil {
				return
			}
			if !yield(i, entry.ID()) {
				return
			}
		}
	}
}

// ChunkView1 is a single-component chunk handle.
type ChunkView1[A any] struct {
	chunkBase
	view View1[A]
}

// ColumnA returns the component column for this chunk's sole component. Its
// Len() always agrees with the chunk's own Len(), since a chunk is always
// one whole archetype's table.
func (c ChunkView1[A]) ColumnA() ComponentColumn[A] {
	return newComponentColumn(c.view.A, c.table)
}

// ChunkView2 is a two-component chunk handle.
type ChunkView2[A, B any] struct {
	chunkBase
	view View2[A, B]
}

func (c ChunkView2[A, B]) ColumnA() ComponentColumn[A] { return newComponentColumn(c.view.A, c.table) }
func (c ChunkView2[A, B]) ColumnB() ComponentColumn[B] { return newComponentColumn(c.view.B, c.table) }

// ChunkView3 is a three-component chunk handle.
type ChunkView3[A, B, C any] struct {
	chunkBase
	view View3[A, B, C]
}

func (c ChunkView3[A, B, C]) ColumnA() ComponentColumn[A] { return newComponentColumn(c.view.A, c.table) }
func (c ChunkView3[A, B, C]) ColumnB() ComponentColumn[B] { return newComponentColumn(c.view.B, c.table) }
func (c ChunkView3[A, B, C]) ColumnC() ComponentColumn[C] { return newComponentColumn(c.view.C, c.table) }

// ChunkView4 is a four-component chunk handle.
type ChunkView4[A, B, C, D any] struct {
	chunkBase
	view View4[A, B, C, D]
}

func (c ChunkView4[A, B, C, D]) ColumnA() ComponentColumn[A] {
	return newComponentColumn(c.view.A, c.table)
}
func (c ChunkView4[A, B, C, D]) ColumnB() ComponentColumn[B] {
	return newComponentColumn(c.view.B, c.table)
}
func (c ChunkView4[A, B, C, D]) ColumnC() ComponentColumn[C] {
	return newComponentColumn(c.view.C, c.table)
}
func (c ChunkView4[A, B, C, D]) ColumnD() ComponentColumn[D] {
	return newComponentColumn(c.view.D, c.table)
}

package search

import (
	"github.com/zyedidia/generic/heap"

	"github.com/katalvlaran/gridsearch/grid"
)

// Key is the composite priority of a frontier entry: lower Cost first,
// and among equal costs the earlier insertion first.
type Key struct {
	Cost int
	Seq  uint64
}

// Less orders keys by (Cost, Seq).
func (k Key) Less(o Key) bool {
	if k.Cost != o.Cost {
		return k.Cost < o.Cost
	}
	return k.Seq < o.Seq
}

// Entry is one frontier item.
type Entry struct {
	Cell *grid.Cell
	Key  Key
}

// Frontier is a min-priority queue of cells ordered by Key. A cell may be
// pushed several times; callers decide whether to skip stale entries.
type Frontier struct {
	h   *heap.Heap[Entry]
	seq uint64
}

// NewFrontier returns an empty frontier.
func NewFrontier() *Frontier {
	return &Frontier{
		h: heap.New[Entry](func(a, b Entry) bool { return a.Key.Less(b.Key) }),
	}
}

// Push inserts c with the given cost and the next insertion sequence.
func (f *Frontier) Push(c *grid.Cell, cost int) Entry {
	e := Entry{Cell: c, Key: Key{Cost: cost, Seq: f.seq}}
	f.seq++
	f.h.Push(e)
	return e
}

// Pop removes the entry with the smallest key.
func (f *Frontier) Pop() (Entry, bool) {
	return f.h.Pop()
}

// Len returns the number of pending entries, stale ones included.
func (f *Frontier) Len() int { return f.h.Size() }

package dfs

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/stack"

	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/search"
)

// Name identifies the algorithm in results.
const Name = "dfs"

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	s      *search.Session
	stack  *stack.Stack[*grid.Cell]
	closed mapset.Set[*grid.Cell]
	depth  map[*grid.Cell]int // hops from start along the discovering branch
}

// Search runs depth-first search from start to end on g.
// The returned path is valid but not necessarily shortest.
func Search(g *grid.Grid, start, end *grid.Cell, opts ...search.Option) (*search.Result, error) {
	s, err := search.Begin(Name, g, start, end, opts...)
	if err != nil {
		return nil, err
	}
	w := &dfsWalker{
		s:      s,
		stack:  stack.New[*grid.Cell](),
		closed: mapset.New[*grid.Cell](),
		depth:  map[*grid.Cell]int{start: 0},
	}
	w.stack.Push(start)

	return w.loop(), nil
}

func (w *dfsWalker) loop() *search.Result {
	for w.stack.Size() > 0 {
		if w.s.Halted() {
			return w.s.Abort()
		}
		cur := w.stack.Pop()
		if w.closed.Has(cur) {
			continue
		}
		w.s.Visit(cur)
		if cur == w.s.End {
			return w.s.Succeed()
		}
		w.closed.Put(cur)

		// The most recent push of a cell always sits above older ones, so
		// overwriting its predecessor keeps the link consistent with the
		// entry that will be popped first.
		for _, nbr := range w.s.Grid.Neighbors(cur) {
			if w.closed.Has(nbr) {
				continue
			}
			w.s.Link(nbr, cur)
			w.depth[nbr] = w.depth[cur] + 1
			w.stack.Push(nbr)
			w.s.Open(nbr)
		}
		w.s.Annotate(cur, w.depth[cur])
		w.s.Expanded(cur)
	}

	return w.s.Fail()
}

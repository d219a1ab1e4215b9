package astar

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/search"
)

// Name identifies the algorithm in results.
const Name = "astar"

// Manhattan returns |Δrow| + |Δcol|, the heuristic used by Search.
func Manhattan(a, b grid.Position) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	s      *search.Session
	open   *search.Frontier // keyed by (g+h, seq)
	gScore search.Costs
	closed mapset.Set[*grid.Cell]
	goal   grid.Position
}

// Search finds a shortest route from start to end on g guided by the
// Manhattan heuristic.
func Search(g *grid.Grid, start, end *grid.Cell, opts ...search.Option) (*search.Result, error) {
	s, err := search.Begin(Name, g, start, end, opts...)
	if err != nil {
		return nil, err
	}
	r := &runner{
		s:      s,
		open:   search.NewFrontier(),
		gScore: search.NewCosts(start, 0),
		closed: mapset.New[*grid.Cell](),
		goal:   end.Position(),
	}
	r.open.Push(start, Manhattan(start.Position(), r.goal))

	return r.loop(), nil
}

func (r *runner) loop() *search.Result {
	for r.open.Len() > 0 {
		if r.s.Halted() {
			return r.s.Abort()
		}
		entry, _ := r.open.Pop()
		cur := entry.Cell
		if r.closed.Has(cur) {
			continue
		}
		r.s.Visit(cur)
		if cur == r.s.End {
			return r.s.Succeed()
		}
		r.closed.Put(cur)

		tentative := r.gScore.Get(cur) + 1
		for _, nbr := range r.s.Grid.Neighbors(cur) {
			if tentative >= r.gScore.Get(nbr) {
				continue
			}
			r.gScore[nbr] = tentative
			r.s.Link(nbr, cur)
			r.open.Push(nbr, tentative+Manhattan(nbr.Position(), r.goal))
			r.s.Open(nbr)
		}
		r.s.Expanded(cur)
	}

	return r.s.Fail()
}

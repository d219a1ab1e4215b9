package ucs

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/search"
)

// Name identifies the algorithm in results.
const Name = "ucs"

// stepCost is the uniform price of one move.
const stepCost = 1

// runner holds the mutable state for a single UCS execution.
type runner struct {
	s         *search.Session
	frontier  *search.Frontier
	cost      search.Costs
	finalized mapset.Set[*grid.Cell]
}

// Search runs uniform-cost search from start to end on g.
func Search(g *grid.Grid, start, end *grid.Cell, opts ...search.Option) (*search.Result, error) {
	s, err := search.Begin(Name, g, start, end, opts...)
	if err != nil {
		return nil, err
	}
	r := &runner{
		s:         s,
		frontier:  search.NewFrontier(),
		cost:      search.NewCosts(start, 0),
		finalized: mapset.New[*grid.Cell](),
	}
	r.frontier.Push(start, 0)

	return r.process(), nil
}

// process pops the cheapest entry until the end is reached or the heap empties.
func (r *runner) process() *search.Result {
	for r.frontier.Len() > 0 {
		if r.s.Halted() {
			return r.s.Abort()
		}
		entry, _ := r.frontier.Pop()
		cur := entry.Cell
		// stale entry of a cell already settled at a lower cost
		if r.finalized.Has(cur) {
			continue
		}
		r.s.Visit(cur)
		if cur == r.s.End {
			return r.s.Succeed()
		}
		r.finalized.Put(cur)
		r.relax(cur)
		r.s.Expanded(cur)
	}

	return r.s.Fail()
}

// relax pushes every neighbor whose cost strictly improves through cur.
func (r *runner) relax(cur *grid.Cell) {
	next := r.cost.Get(cur) + stepCost
	for _, nbr := range r.s.Grid.Neighbors(cur) {
		if next >= r.cost.Get(nbr) {
			continue
		}
		r.cost[nbr] = next
		r.s.Link(nbr, cur)
		r.frontier.Push(nbr, next)
		r.s.Open(nbr)
	}
}

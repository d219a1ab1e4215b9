package dijkstra

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/search"
)

// Name identifies the algorithm in results.
const Name = "dijkstra"

// edgeWeight is the weight of every grid move.
const edgeWeight = 1

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	s          *search.Session
	pq         *search.Frontier       // pending cells keyed by (distance, seq)
	dist       search.Costs           // best known distance from start
	inFrontier mapset.Set[*grid.Cell] // cells currently queued
}

// Search computes the shortest route from start to end on g.
func Search(g *grid.Grid, start, end *grid.Cell, opts ...search.Option) (*search.Result, error) {
	s, err := search.Begin(Name, g, start, end, opts...)
	if err != nil {
		return nil, err
	}
	r := &runner{
		s:          s,
		pq:         search.NewFrontier(),
		dist:       search.NewCosts(start, 0),
		inFrontier: mapset.New[*grid.Cell](),
	}
	r.pq.Push(start, 0)
	r.inFrontier.Put(start)

	return r.process(), nil
}

// process repeatedly extracts the closest pending cell and relaxes its neighbors.
func (r *runner) process() *search.Result {
	for r.pq.Len() > 0 {
		if r.s.Halted() {
			return r.s.Abort()
		}
		item, _ := r.pq.Pop()
		u := item.Cell
		r.inFrontier.Remove(u)

		r.s.Visit(u)
		if u == r.s.End {
			return r.s.Succeed()
		}
		r.relax(u)
		r.s.Expanded(u)
	}

	return r.s.Fail()
}

// relax improves dist for each neighbor of u; a neighbor not already
// pending is queued.
func (r *runner) relax(u *grid.Cell) {
	newDist := r.dist.Get(u) + edgeWeight
	for _, v := range r.s.Grid.Neighbors(u) {
		if newDist >= r.dist.Get(v) {
			continue
		}
		r.dist[v] = newDist
		r.s.Link(v, u)
		if !r.inFrontier.Has(v) {
			r.pq.Push(v, newDist)
			r.inFrontier.Put(v)
			r.s.Open(v)
		}
	}
}

package bfs

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/search"
)

// Name identifies the algorithm in results.
const Name = "bfs"

// walker encapsulates mutable BFS state for one run.
type walker struct {
	s     *search.Session
	queue *queue.Queue[*grid.Cell]
	seen  mapset.Set[*grid.Cell]
}

// Search runs breadth-first search from start to end on g.
// Returns an error only for invalid input; a missing path or a cancelled
// run is reported through Result.Status.
func Search(g *grid.Grid, start, end *grid.Cell, opts ...search.Option) (*search.Result, error) {
	s, err := search.Begin(Name, g, start, end, opts...)
	if err != nil {
		return nil, err
	}
	w := &walker{
		s:     s,
		queue: queue.New[*grid.Cell](),
		seen:  mapset.New[*grid.Cell](),
	}
	w.enqueue(start)

	return w.loop(), nil
}

// loop dequeues until the end is reached, the queue empties or the run halts.
func (w *walker) loop() *search.Result {
	for !w.queue.Empty() {
		if w.s.Halted() {
			return w.s.Abort()
		}
		cur := w.queue.Dequeue()
		w.s.Visit(cur)
		if cur == w.s.End {
			return w.s.Succeed()
		}
		for _, nbr := range w.s.Grid.Neighbors(cur) {
			if w.seen.Has(nbr) {
				continue
			}
			w.s.Link(nbr, cur)
			w.enqueue(nbr)
			w.s.Open(nbr)
		}
		w.s.Expanded(cur)
	}

	return w.s.Fail()
}

// enqueue marks c as discovered and appends it to the queue.
func (w *walker) enqueue(c *grid.Cell) {
	w.seen.Put(c)
	w.queue.Enqueue(c)
}

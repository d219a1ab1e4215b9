package search

import (
	"time"

	"github.com/katalvlaran/gridsearch/grid"
)

// Validate checks the preconditions every algorithm shares: a grid, two
// distinct traversable endpoints that belong to it.
func Validate(g *grid.Grid, start, end *grid.Cell) error {
	switch {
	case g == nil:
		return ErrNilGrid
	case start == nil || end == nil:
		return ErrNilEndpoint
	case !g.Owns(start) || !g.Owns(end):
		return ErrEndpointNotInGrid
	case start.IsBarrier() || end.IsBarrier():
		return ErrEndpointIsBarrier
	case start == end:
		return ErrSameEndpoints
	}
	return nil
}

// Session is the bookkeeping for one run: the predecessor map, the
// expansion record, cancellation and observer plumbing. Algorithms own
// their frontier and cost tables; everything else goes through Session.
type Session struct {
	Grid  *grid.Grid
	Start *grid.Cell
	End   *grid.Cell

	opts     Options
	cameFrom map[*grid.Cell]*grid.Cell
	res      *Result
	began    time.Time
}

// Begin validates input, applies options and clears marks left by a
// previous run. The returned Session is used for exactly one run.
func Begin(algorithm string, g *grid.Grid, start, end *grid.Cell, opts ...Option) (*Session, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := Validate(g, start, end); err != nil {
		return nil, err
	}
	if o.Marks {
		g.ClearMarks()
	}
	n := g.Size() * g.Size()

	return &Session{
		Grid:     g,
		Start:    start,
		End:      end,
		opts:     o,
		cameFrom: make(map[*grid.Cell]*grid.Cell, n),
		res: &Result{
			Algorithm: algorithm,
			Status:    StatusNoPath,
			Explored:  make([]grid.Position, 0, n),
		},
		began: time.Now(),
	}, nil
}

// Halted polls the context and the step limit. It must be called once at
// the top of every loop iteration; true means the run has to stop and
// return Abort.
func (s *Session) Halted() bool {
	select {
	case <-s.opts.Ctx.Done():
		s.res.Err = s.opts.Ctx.Err()
		return true
	default:
	}
	if s.opts.StepLimit > 0 && s.res.Steps >= s.opts.StepLimit {
		s.res.Err = ErrStepLimit
		return true
	}
	return false
}

// Visit records c as processed by the main loop.
func (s *Session) Visit(c *grid.Cell) {
	s.res.Steps++
	s.res.Explored = append(s.res.Explored, c.Position())
}

// Link records parent as the predecessor of child.
func (s *Session) Link(child, parent *grid.Cell) {
	s.cameFrom[child] = parent
}

// Open reports c entering the frontier.
func (s *Session) Open(c *grid.Cell) {
	if s.opts.Marks && c != s.End {
		c.MarkOpen()
	}
	s.opts.Observer.OnOpen(c)
}

// Annotate stores the depth-first hop count on c.
func (s *Session) Annotate(c *grid.Cell, distance int) {
	if s.opts.Marks {
		c.SetDistance(distance)
	}
}

// Expanded reports that all neighbors of c were examined.
func (s *Session) Expanded(c *grid.Cell) {
	if s.opts.Marks && c != s.Start {
		c.MarkClosed()
	}
	s.opts.Observer.OnExpand(c)
}

// Succeed reconstructs the path to End and finalizes the result. End was
// popped too, so observers get its OnExpand before the path is traced.
func (s *Session) Succeed() *Result {
	s.opts.Observer.OnExpand(s.End)
	s.res.Status = StatusFound
	s.res.Path = reconstruct(s.cameFrom, s.End, s.Start, s.opts.Marks, s.opts.Observer.OnPathStep)
	return s.finish()
}

// Fail finalizes a run whose frontier ran dry.
func (s *Session) Fail() *Result {
	s.res.Status = StatusNoPath
	return s.finish()
}

// Abort finalizes a run stopped by Halted.
func (s *Session) Abort() *Result {
	s.res.Status = StatusAborted
	return s.finish()
}

func (s *Session) finish() *Result {
	s.res.Elapsed = time.Since(s.began)
	return s.res
}

package gridsearch

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/search"
)

// Comparison is one algorithm's run on its private copy of the grid.
type Comparison struct {
	Algorithm Algorithm
	Grid      *grid.Grid
	Result    *search.Result
}

// Compare runs each algorithm on its own clone of g, concurrently, and
// returns the runs in the order of algs (all five when algs is empty).
// g itself is never modified. Start and end are taken from the cell roles.
//
// Options are shared by every run; an observer passed here must be safe
// for concurrent use. ctx cancels all runs; it is applied after opts.
func Compare(ctx context.Context, g *grid.Grid, algs []Algorithm, opts ...search.Option) ([]Comparison, error) {
	if g == nil {
		return nil, search.ErrNilGrid
	}
	if _, _, err := g.Endpoints(); err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if len(algs) == 0 {
		algs = Algorithms()
	}
	for _, a := range algs {
		if _, err := a.Func(); err != nil {
			return nil, err
		}
	}

	out := make([]Comparison, len(algs))
	for i, a := range algs {
		out[i] = Comparison{Algorithm: a, Grid: g.Clone()}
	}

	eg, egCtx := errgroup.WithContext(ctx)
	runOpts := append(append([]search.Option{}, opts...), search.WithContext(egCtx))
	for i := range out {
		c := &out[i]
		eg.Go(func() error {
			start, end, err := c.Grid.Endpoints()
			if err != nil {
				return err
			}
			c.Result, err = Run(c.Algorithm, c.Grid, start, end, runOpts...)
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

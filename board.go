package gridsearch

import (
	"context"
	"errors"

	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/search"
)

// ErrNotReady is returned by Board.Run until start, end and an algorithm
// have been chosen.
var ErrNotReady = errors.New("gridsearch: board needs a start, an end and an algorithm")

// Board is the editing state of an interactive session: the grid, the
// chosen endpoints and the selected algorithm. It is not safe for
// concurrent use.
type Board struct {
	grid  *grid.Grid
	start *grid.Cell
	end   *grid.Cell
	alg   Algorithm
}

// NewBoard returns an empty size×size board with no algorithm selected.
func NewBoard(size int) (*Board, error) {
	g, err := grid.New(size)
	if err != nil {
		return nil, err
	}
	return &Board{grid: g}, nil
}

// BoardFrom wraps an existing grid, picking up the start and end roles it
// already holds.
func BoardFrom(g *grid.Grid) (*Board, error) {
	if g == nil {
		return nil, search.ErrNilGrid
	}
	b := &Board{grid: g}
	g.Each(func(c *grid.Cell) {
		switch {
		case c.IsStart():
			b.start = c
		case c.IsEnd():
			b.end = c
		}
	})
	return b, nil
}

func (b *Board) Grid() *grid.Grid     { return b.grid }
func (b *Board) Start() *grid.Cell    { return b.start }
func (b *Board) End() *grid.Cell      { return b.end }
func (b *Board) Algorithm() Algorithm { return b.alg }

// Paint applies the left-click rule at p: the first free click places the
// start, the next one the end, and every later click a barrier. Clicking
// an endpoint again does nothing.
func (b *Board) Paint(p grid.Position) error {
	c, err := b.grid.Cell(p)
	if err != nil {
		return err
	}
	switch {
	case b.start == nil && c != b.end:
		c.MarkStart()
		b.start = c
	case b.end == nil && c != b.start:
		c.MarkEnd()
		b.end = c
	case c != b.start && c != b.end:
		c.MarkBarrier()
	}
	return nil
}

// Erase resets the cell at p, forgetting it as start or end.
func (b *Board) Erase(p grid.Position) error {
	c, err := b.grid.Cell(p)
	if err != nil {
		return err
	}
	c.Reset()
	if c == b.start {
		b.start = nil
	}
	if c == b.end {
		b.end = nil
	}
	return nil
}

// Clear discards every role and mark and forgets both endpoints. The
// selected algorithm is kept.
func (b *Board) Clear() {
	b.grid.Reset()
	b.start, b.end = nil, nil
}

// Select chooses the algorithm used by Run.
func (b *Board) Select(a Algorithm) error {
	if _, err := a.Func(); err != nil {
		return err
	}
	b.alg = a
	return nil
}

// SelectKey chooses the algorithm bound to a shortcut key.
func (b *Board) SelectKey(key string) error {
	a, err := ParseAlgorithm(key)
	if err != nil {
		return err
	}
	b.alg = a
	return nil
}

// Ready reports whether Run can start.
func (b *Board) Ready() bool {
	return b.start != nil && b.end != nil && b.alg != None
}

// Run executes the selected algorithm on the board's grid. Marks from the
// previous run are cleared first; roles and barriers stay.
func (b *Board) Run(ctx context.Context, opts ...search.Option) (*search.Result, error) {
	if !b.Ready() {
		return nil, ErrNotReady
	}
	opts = append(opts, search.WithContext(ctx))
	return Run(b.alg, b.grid, b.start, b.end, opts...)
}

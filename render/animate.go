package render

import (
	"io"
	"sync"
	"time"

	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/search"
)

// Animator is a search.Observer that redraws the whole grid after every
// expansion and every backtrack step, pausing Delay between frames.
// Open events are folded into the next frame.
type Animator struct {
	W       io.Writer
	Grid    *grid.Grid
	Delay   time.Duration
	Colored bool

	mu     sync.Mutex
	frames int
	err    error
}

var _ search.Observer = (*Animator)(nil)

// NewAnimator returns an Animator drawing g to w.
func NewAnimator(w io.Writer, g *grid.Grid, delay time.Duration, colored bool) *Animator {
	return &Animator{W: w, Grid: g, Delay: delay, Colored: colored}
}

func (a *Animator) OnOpen(*grid.Cell) {}

func (a *Animator) OnExpand(*grid.Cell) { a.frame() }

func (a *Animator) OnPathStep(*grid.Cell) { a.frame() }

// Frames returns the number of frames drawn so far.
func (a *Animator) Frames() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.frames
}

// Err returns the first write error; drawing stops after it.
func (a *Animator) Err() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.err
}

func (a *Animator) frame() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.err != nil {
		return
	}
	out := Frame(a.Grid, a.Colored)
	if a.Colored {
		out = ansiHome + out
	}
	if _, err := io.WriteString(a.W, out); err != nil {
		a.err = err
		return
	}
	a.frames++
	if a.Delay > 0 {
		time.Sleep(a.Delay)
	}
}

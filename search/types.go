package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/gridsearch/grid"
)

// Sentinel errors for invalid search input.
var (
	// ErrNilGrid is returned when the grid pointer is nil.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrNilEndpoint is returned when start or end is nil.
	ErrNilEndpoint = errors.New("search: start and end must be set")

	// ErrEndpointNotInGrid is returned when start or end belongs to another grid.
	ErrEndpointNotInGrid = errors.New("search: endpoint does not belong to the grid")

	// ErrEndpointIsBarrier is returned when start or end is a barrier.
	ErrEndpointIsBarrier = errors.New("search: endpoint is a barrier")

	// ErrSameEndpoints is returned when start and end are the same cell.
	ErrSameEndpoints = errors.New("search: start and end must differ")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrStepLimit is recorded in Result.Err when WithStepLimit stops a run.
	ErrStepLimit = errors.New("search: step limit reached")
)

// Status is the outcome of one run.
type Status int

const (
	// StatusNoPath means the frontier was exhausted without reaching the end.
	StatusNoPath Status = iota
	// StatusFound means a full start-to-end path was reconstructed.
	StatusFound
	// StatusAborted means the run was cancelled before it could finish.
	StatusAborted
)

// String returns the lowercase status name.
func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusAborted:
		return "aborted"
	default:
		return "no_path"
	}
}

// MarshalText lets Status travel as a string in JSON.
func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText accepts the names produced by String.
func (s *Status) UnmarshalText(b []byte) error {
	switch string(b) {
	case "found":
		*s = StatusFound
	case "aborted":
		*s = StatusAborted
	case "no_path":
		*s = StatusNoPath
	default:
		return fmt.Errorf("search: unknown status %q", b)
	}
	return nil
}

// Observer receives visualization events. It never influences the search.
type Observer interface {
	// OnOpen is called when a cell enters the frontier.
	OnOpen(c *grid.Cell)
	// OnExpand is called once per cell processed by the main loop, the
	// end cell included.
	OnExpand(c *grid.Cell)
	// OnPathStep is called once per backtrack step during reconstruction.
	OnPathStep(c *grid.Cell)
}

// ObserverFuncs adapts plain functions to Observer; nil fields are skipped.
type ObserverFuncs struct {
	Open     func(c *grid.Cell)
	Expand   func(c *grid.Cell)
	PathStep func(c *grid.Cell)
}

func (o ObserverFuncs) OnOpen(c *grid.Cell) {
	if o.Open != nil {
		o.Open(c)
	}
}

func (o ObserverFuncs) OnExpand(c *grid.Cell) {
	if o.Expand != nil {
		o.Expand(c)
	}
}

func (o ObserverFuncs) OnPathStep(c *grid.Cell) {
	if o.PathStep != nil {
		o.PathStep(c)
	}
}

// Option configures a run via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters for one run.
type Options struct {
	// Ctx is polled once per loop iteration; Done aborts the run.
	Ctx context.Context

	// Observer receives open/expand/path events.
	Observer Observer

	// StepLimit, if > 0, aborts after that many expanded cells.
	StepLimit int

	// Marks enables the cell mark side effects (open, closed, path, distance).
	Marks bool

	err error
}

// DefaultOptions returns Options with a background context, a no-op
// observer, no step limit and marks enabled.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Observer: ObserverFuncs{},
		Marks:    true,
	}
}

// WithContext sets the cancellation context. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithObserver installs a step observer. nil is ignored.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observer = obs
		}
	}
}

// WithOnExpand installs fn as the per-step callback. fn runs once for
// every popped cell, so a found run reports len(Result.Explored) calls.
func WithOnExpand(fn func(c *grid.Cell)) Option {
	return WithObserver(ObserverFuncs{Expand: fn})
}

// WithStepLimit aborts the run after n expansions.
//
//	n > 0: limit
//	n == 0: no limit
//	n < 0: ErrOptionViolation
func WithStepLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: step limit cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.StepLimit = n
	}
}

// WithoutMarks disables cell mark side effects for headless runs.
func WithoutMarks() Option {
	return func(o *Options) {
		o.Marks = false
	}
}

// Result is the outcome of one run.
type Result struct {
	Algorithm string          `json:"algorithm"`
	Status    Status          `json:"status"`
	Path      []grid.Position `json:"path"`
	Explored  []grid.Position `json:"explored"`
	Steps     int             `json:"steps"`
	Elapsed   time.Duration   `json:"elapsed"`
	Err       error           `json:"-"`
}

// Found reports whether a path was found.
func (r *Result) Found() bool { return r.Status == StatusFound }

// Len returns the path length in cells, both endpoints included.
func (r *Result) Len() int { return len(r.Path) }

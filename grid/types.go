package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrBadSize indicates a grid dimension below 1.
	ErrBadSize = errors.New("grid: size must be at least 1")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
	// ErrNonSquare indicates text input that is not an N×N block.
	ErrNonSquare = errors.New("grid: rows must form a square")
	// ErrBadSymbol indicates an unknown character in the text format.
	ErrBadSymbol = errors.New("grid: unknown cell symbol")
	// ErrMultipleStart indicates more than one start cell.
	ErrMultipleStart = errors.New("grid: more than one start cell")
	// ErrMultipleEnd indicates more than one end cell.
	ErrMultipleEnd = errors.New("grid: more than one end cell")
	// ErrNoStart indicates the grid has no start cell.
	ErrNoStart = errors.New("grid: no start cell")
	// ErrNoEnd indicates the grid has no end cell.
	ErrNoEnd = errors.New("grid: no end cell")
	// ErrBadDensity indicates a barrier density outside [0,1].
	ErrBadDensity = errors.New("grid: density must be within [0,1]")
	// ErrMazeSize indicates a maze size that is even or below 3.
	ErrMazeSize = errors.New("grid: maze size must be odd and at least 3")
)

// Position is a (row, column) coordinate. Row grows downwards.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// String renders the position as "(row, col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Adjacent reports whether q is one of the four axis-aligned neighbors of p.
func (p Position) Adjacent(q Position) bool {
	dr, dc := p.Row-q.Row, p.Col-q.Col
	return dr*dr+dc*dc == 1
}

// Role is the semantic part a cell plays. Roles are mutually exclusive.
type Role uint8

const (
	// RoleNone is an ordinary traversable cell.
	RoleNone Role = iota
	// RoleStart marks the search origin.
	RoleStart
	// RoleEnd marks the search goal.
	RoleEnd
	// RoleBarrier marks a non-traversable cell.
	RoleBarrier
)

// String returns the lowercase role name.
func (r Role) String() string {
	switch r {
	case RoleStart:
		return "start"
	case RoleEnd:
		return "end"
	case RoleBarrier:
		return "barrier"
	default:
		return "none"
	}
}

// Mark is the per-run visualization state of a cell.
type Mark uint8

const (
	// MarkNone means the cell was not touched by the last run.
	MarkNone Mark = iota
	// MarkOpen means the cell was placed in a frontier.
	MarkOpen
	// MarkClosed means the cell was expanded.
	MarkClosed
	// MarkPath means the cell lies on the reconstructed path.
	MarkPath
)

// String returns the lowercase mark name.
func (m Mark) String() string {
	switch m {
	case MarkOpen:
		return "open"
	case MarkClosed:
		return "closed"
	case MarkPath:
		return "path"
	default:
		return "none"
	}
}

// neighborOffsets lists row/col deltas in the fixed order down, up, left, right.
var neighborOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, -1}, {0, 1}}

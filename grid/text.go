package grid

import (
	"fmt"
	"strings"
)

// Text format symbols.
const (
	SymbolOpen    = '.'
	SymbolBarrier = '#'
	SymbolStart   = 'S'
	SymbolEnd     = 'E'
)

// Parse builds a grid from N rows of N symbols each.
// Blank lines and surrounding whitespace are ignored. At most one start and
// one end are accepted; both may be absent.
func Parse(rows []string) (*Grid, error) {
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		if r = strings.TrimSpace(r); r != "" {
			lines = append(lines, r)
		}
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: got 0", ErrBadSize)
	}
	g, err := New(len(lines))
	if err != nil {
		return nil, err
	}
	var start, end *Cell
	for r, line := range lines {
		symbols := []rune(line)
		if len(symbols) != len(lines) {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonSquare, r, len(symbols), len(lines))
		}
		for c, s := range symbols {
			cell := g.cells[r][c]
			switch s {
			case SymbolOpen:
			case SymbolBarrier:
				cell.MarkBarrier()
			case SymbolStart:
				if start != nil {
					return nil, fmt.Errorf("%w: %v and %v", ErrMultipleStart, start.pos, cell.pos)
				}
				start = cell
				cell.MarkStart()
			case SymbolEnd:
				if end != nil {
					return nil, fmt.Errorf("%w: %v and %v", ErrMultipleEnd, end.pos, cell.pos)
				}
				end = cell
				cell.MarkEnd()
			default:
				return nil, fmt.Errorf("%w: %q at (%d, %d)", ErrBadSymbol, s, r, c)
			}
		}
	}

	return g, nil
}

// ParseString splits s on newlines and calls Parse.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.Split(s, "\n"))
}

// Rows renders the roles of every cell, one string per row.
func (g *Grid) Rows() []string {
	out := make([]string, g.size)
	var b strings.Builder
	for r, row := range g.cells {
		b.Reset()
		for _, c := range row {
			b.WriteRune(roleSymbol(c.role))
		}
		out[r] = b.String()
	}
	return out
}

// String renders the grid in the text format accepted by Parse.
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}

func roleSymbol(r Role) rune {
	switch r {
	case RoleBarrier:
		return SymbolBarrier
	case RoleStart:
		return SymbolStart
	case RoleEnd:
		return SymbolEnd
	default:
		return SymbolOpen
	}
}

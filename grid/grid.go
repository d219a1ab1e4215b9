package grid

import "fmt"

// Grid is a square matrix of cells, fixed at N×N on creation.
// It is not safe for concurrent use; one search owns it for a whole run.
type Grid struct {
	size  int
	cells [][]*Cell
}

// New builds an empty size×size grid.
// Returns ErrBadSize if size < 1.
// Complexity: O(N²) time and memory.
func New(size int) (*Grid, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadSize, size)
	}
	cells := make([][]*Cell, size)
	for r := 0; r < size; r++ {
		cells[r] = make([]*Cell, size)
		for c := 0; c < size; c++ {
			cells[r][c] = &Cell{pos: Position{Row: r, Col: c}}
		}
	}

	return &Grid{size: size, cells: cells}, nil
}

// Size returns N.
func (g *Grid) Size() int { return g.size }

// InBounds reports whether p lies inside the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.size && p.Col >= 0 && p.Col < g.size
}

// At returns the cell at (row, col) or nil when out of bounds.
func (g *Grid) At(row, col int) *Cell {
	if !g.InBounds(Position{Row: row, Col: col}) {
		return nil
	}
	return g.cells[row][col]
}

// Cell returns the cell at p, or ErrOutOfBounds.
func (g *Grid) Cell(p Position) (*Cell, error) {
	if !g.InBounds(p) {
		return nil, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, p, g.size, g.size)
	}
	return g.cells[p.Row][p.Col], nil
}

// Owns reports whether c is one of this grid's cells (pointer identity).
func (g *Grid) Owns(c *Cell) bool {
	if c == nil || !g.InBounds(c.pos) {
		return false
	}
	return g.cells[c.pos.Row][c.pos.Col] == c
}

// Neighbors returns the in-bounds, non-barrier cells adjacent to c, in the
// order down, up, left, right. The slice is rebuilt on every call.
func (g *Grid) Neighbors(c *Cell) []*Cell {
	out := make([]*Cell, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := g.At(c.pos.Row+d[0], c.pos.Col+d[1])
		if n == nil || n.IsBarrier() {
			continue
		}
		out = append(out, n)
	}

	return out
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(c *Cell)) {
	for _, row := range g.cells {
		for _, c := range row {
			fn(c)
		}
	}
}

// Endpoints scans for exactly one start and one end cell.
func (g *Grid) Endpoints() (start, end *Cell, err error) {
	g.Each(func(c *Cell) {
		if err != nil {
			return
		}
		switch c.role {
		case RoleStart:
			if start != nil {
				err = fmt.Errorf("%w: %v and %v", ErrMultipleStart, start.pos, c.pos)
				return
			}
			start = c
		case RoleEnd:
			if end != nil {
				err = fmt.Errorf("%w: %v and %v", ErrMultipleEnd, end.pos, c.pos)
				return
			}
			end = c
		}
	})
	switch {
	case err != nil:
		return nil, nil, err
	case start == nil:
		return nil, nil, ErrNoStart
	case end == nil:
		return nil, nil, ErrNoEnd
	}

	return start, end, nil
}

// ClearMarks drops run marks and distances on every cell; roles stay.
func (g *Grid) ClearMarks() {
	g.Each(func(c *Cell) { c.ClearMark() })
}

// Reset empties every cell, removing roles and marks.
func (g *Grid) Reset() {
	g.Each(func(c *Cell) { c.Reset() })
}

// Clone returns a deep copy with fresh cells, so two searches can run on
// disjoint instances of the same layout.
func (g *Grid) Clone() *Grid {
	cp := &Grid{size: g.size, cells: make([][]*Cell, g.size)}
	for r, row := range g.cells {
		cp.cells[r] = make([]*Cell, g.size)
		for c, cell := range row {
			dup := *cell
			cp.cells[r][c] = &dup
		}
	}

	return cp
}

// Count returns the number of cells with role r.
func (g *Grid) Count(r Role) int {
	n := 0
	g.Each(func(c *Cell) {
		if c.role == r {
			n++
		}
	})
	return n
}

package search

import (
	"math"

	"github.com/katalvlaran/gridsearch/grid"
)

// Infinity is the cost of a cell that has not been reached.
const Infinity = math.MaxInt

// Costs maps cells to their best known cost. Absent cells cost Infinity,
// which is the same as initializing every cell to +∞ up front.
type Costs map[*grid.Cell]int

// NewCosts returns a table where only start has a finite cost.
func NewCosts(start *grid.Cell, cost int) Costs {
	return Costs{start: cost}
}

// Get returns the cost of c or Infinity.
func (cs Costs) Get(c *grid.Cell) int {
	if v, ok := cs[c]; ok {
		return v
	}
	return Infinity
}

package grid

import (
	"fmt"
	"math/rand"

	"github.com/zyedidia/generic/stack"
)

// Scatter turns each cell without a role into a barrier with probability
// density. Start and end cells are never touched.
func (g *Grid) Scatter(rng *rand.Rand, density float64) error {
	if density < 0 || density > 1 {
		return fmt.Errorf("%w: got %v", ErrBadDensity, density)
	}
	g.Each(func(c *Cell) {
		if c.role == RoleNone && rng.Float64() < density {
			c.MarkBarrier()
		}
	})
	return nil
}

// Maze carves a perfect maze into a size×size grid with a randomized
// depth-first backtracker. Odd coordinates are rooms, the outer border is
// solid, and every room is reachable from every other room.
// No start or end is placed.
func Maze(size int, rng *rand.Rand) (*Grid, error) {
	if size < 3 || size%2 == 0 {
		return nil, fmt.Errorf("%w: got %d", ErrMazeSize, size)
	}
	g, err := New(size)
	if err != nil {
		return nil, err
	}
	g.Each(func(c *Cell) { c.MarkBarrier() })

	steps := [4][2]int{{2, 0}, {-2, 0}, {0, -2}, {0, 2}}
	first := g.cells[1][1]
	first.Reset()
	todo := stack.New[*Cell]()
	todo.Push(first)
	for todo.Size() > 0 {
		cur := todo.Peek()
		var next []*Cell
		for _, d := range steps {
			n := g.At(cur.pos.Row+d[0], cur.pos.Col+d[1])
			if n == nil || !n.IsBarrier() {
				continue
			}
			next = append(next, n)
		}
		if len(next) == 0 {
			todo.Pop()
			continue
		}
		n := next[rng.Intn(len(next))]
		// knock down the wall between cur and n
		g.cells[(cur.pos.Row+n.pos.Row)/2][(cur.pos.Col+n.pos.Col)/2].Reset()
		n.Reset()
		todo.Push(n)
	}

	return g, nil
}

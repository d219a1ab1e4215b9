package search

import (
	"fmt"

	"github.com/katalvlaran/gridsearch/grid"
)

// ReconstructPath backtracks from goal through cameFrom until it reaches a
// cell with no predecessor, marking each predecessor as on the path and
// calling onStep once per backtrack step. The returned positions run from
// start to goal inclusive.
//
// It is only meaningful after a successful search. cameFrom must be acyclic;
// a cycle is reported with a panic instead of looping forever.
func ReconstructPath(cameFrom map[*grid.Cell]*grid.Cell, goal, start *grid.Cell, onStep func(*grid.Cell)) []grid.Position {
	return reconstruct(cameFrom, goal, start, true, onStep)
}

func reconstruct(cameFrom map[*grid.Cell]*grid.Cell, goal, start *grid.Cell, mark bool, onStep func(*grid.Cell)) []grid.Position {
	path := make([]grid.Position, 0, 16)
	cur := goal
	for steps := 0; ; steps++ {
		prev, ok := cameFrom[cur]
		if !ok {
			break
		}
		if steps > len(cameFrom) {
			panic(fmt.Sprintf("search: predecessor cycle through %v", cur.Position()))
		}
		path = append(path, cur.Position())
		cur = prev
		if mark {
			cur.MarkPath()
		}
		if onStep != nil {
			onStep(cur)
		}
	}
	path = append(path, start.Position())
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Package bfs runs breadth-first search between two cells of a grid.Grid.
//
// What
//
//   - FIFO frontier; cells are expanded in level order.
//   - A neighbor is enqueued at most once, at the moment it is first
//     discovered, and its predecessor is fixed at that moment.
//   - The run ends when the end cell is dequeued (StatusFound) or the
//     queue empties (StatusNoPath).
//
// Why
//
//	With every move costing 1, level order yields a path with the fewest
//	cells. BFS is the reference the weighted algorithms degenerate to.
//
// Determinism
//
//	grid.Neighbors returns cells in the order down, up, left, right and the
//	queue is strictly FIFO, so the expansion order is fully reproducible.
//
// Complexity (V = N² cells)
//
//   - Time:   O(V)
//   - Memory: O(V)  (queue, seen set, predecessor map)
//
// Usage
//
//	res, err := bfs.Search(g, start, end,
//	    search.WithContext(ctx),
//	    search.WithOnExpand(func(c *grid.Cell) { redraw() }),
//	)
//	if err != nil {
//	    // invalid input, see search.Validate
//	}
//	if res.Found() {
//	    fmt.Println(res.Path)
//	}
package bfs

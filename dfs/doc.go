// Package dfs runs depth-first search between two cells of a grid.Grid.
//
// Key features:
//   - Explicit LIFO stack, no recursion, so large grids cannot overflow the
//     goroutine stack.
//   - A cell is pushed only while it is not yet expanded; duplicate entries
//     of a cell that got expanded in the meantime are discarded on pop.
//   - Each expanded cell is annotated with its hop count along the branch
//     that discovered it (grid.Cell.Distance), for coloring only.
//
// Guarantees:
//
//	DFS finds a path whenever one exists, but NOT the shortest one: the path
//	is whatever branch was explored first. Callers that need optimal
//	routes should use bfs, ucs, dijkstra or astar.
//
// Complexity:
//
//   - Time:   O(V + E) pushes, at most 4 per expanded cell.
//   - Memory: O(V) for the stack, closed set and predecessor map.
package dfs

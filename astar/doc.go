// Package astar runs A* search between two cells of a grid.Grid.
//
// What:
//
//	The frontier is ordered by f = g + h, where g is the number of moves
//	from start and h is the Manhattan distance to the end. Entries with
//	equal f leave the heap in insertion order.
//
// Why:
//
//	On a 4-connected unit-cost grid the Manhattan distance never
//	overestimates and is consistent, so A* returns a shortest path while
//	expanding no more cells than Dijkstra.
//
// Relaxation:
//
//	A neighbor is pushed again only on a strict improvement of g. Older
//	entries for the same cell stay queued and are skipped on pop once the
//	cell is closed.
//
// Complexity:
//
//   - Time:  O(V log V) worst case, usually far less with guidance.
//   - Space: O(V) plus stale heap entries.
//
// Errors:
//
//   - search.ErrNilGrid, search.ErrNilEndpoint, search.ErrEndpointNotInGrid,
//     search.ErrEndpointIsBarrier, search.ErrSameEndpoints for bad input.
//   - search.ErrOptionViolation for invalid options.
package astar

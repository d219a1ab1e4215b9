// Package dijkstra runs Dijkstra's shortest-path algorithm between two
// cells of a grid.Grid, treating every move as weight 1.
//
// Dijkstra and ucs produce identical routes here. They differ in how the
// frontier avoids duplicates:
//
//   - ucs pushes freely and discards stale entries on pop (lazy deletion).
//   - dijkstra keeps an in-frontier membership set and never pushes a cell
//     that is still pending; a strictly better cost only updates the
//     recorded cost and predecessor.
//
// With uniform weights a pending cell can never be improved (pops come out
// in non-decreasing cost), so every popped entry is current and each cell is
// expanded at most once.
//
// Complexity:
//
//   - Time:  O(V log V)
//   - Space: O(V)
//
// Example usage:
//
//	res, err := dijkstra.Search(g, start, end, search.WithContext(ctx))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("cells on path: %d\n", res.Len())
package dijkstra

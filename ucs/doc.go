// Package ucs runs uniform-cost search between two cells of a grid.Grid.
//
// The frontier is a min-priority queue keyed by (accumulated cost,
// insertion sequence). Decrease-key is lazy: an improved cell is pushed
// again and older, costlier entries stay in the heap until they are popped
// and discarded because the cell is already finalized.
//
// Relaxation: a neighbor is re-pushed only when cost(current)+1 is strictly
// below its recorded cost. The first pop of the end cell is authoritative,
// even if stale copies of it remain queued.
//
// With every move costing 1 the expansion order matches breadth-first
// search; the general machinery is kept so the algorithm reads as the
// textbook version.
//
// Complexity:
//
//   - Time:  O(V log V)
//   - Space: O(V) plus stale heap entries.
package ucs

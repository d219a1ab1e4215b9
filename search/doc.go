// Package search holds the contract shared by the bfs, dfs, ucs, dijkstra
// and astar packages: functional options, the step Observer, cancellation,
// the Result type, input validation, path reconstruction and the
// priority frontier keyed by (cost, insertion sequence).
//
// Execution model
//
//	Every algorithm runs as one synchronous call. Once per loop iteration it
//	polls its context (and the optional step limit); once per expanded cell
//	it notifies the Observer. Nothing runs in parallel, so the grid needs no
//	locking, but two runs must never share one grid at the same time.
//
// Outcomes
//
//   - StatusFound:  Result.Path holds positions from start to end inclusive.
//   - StatusNoPath: the frontier ran dry.
//   - StatusAborted: the context was done or the step limit hit;
//     Result.Err tells which. No partial path is ever returned.
//
// Errors (invalid input only):
//
//   - ErrNilGrid, ErrNilEndpoint, ErrEndpointNotInGrid,
//     ErrEndpointIsBarrier, ErrSameEndpoints, ErrOptionViolation.
package search

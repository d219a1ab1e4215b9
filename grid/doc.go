// Package grid models the square lattice that the search algorithms walk.
//
// What:
//
//   - Grid owns an N×N matrix of *Cell; each Cell has an immutable Position.
//   - A Cell carries a Role (none, start, end, barrier) and a per-run Mark
//     (open, closed, path) plus the DFS hop Distance used for coloring.
//   - Neighbors are computed on every call from the current barrier state,
//     in the fixed order down, up, left, right. Nothing is cached, so a
//     barrier painted between two runs is always respected.
//
// Why:
//
//   - Roles are semantic flags only; colors are derived by the render
//     package and never written back.
//   - Marks are visualization side effects and have no bearing on any
//     search decision. Grid.ClearMarks wipes them between runs.
//
// Extras:
//
//   - Parse/String: text format with '.', '#', 'S', 'E'.
//   - Scatter and Maze: barrier generators that keep endpoints traversable.
//   - Graph and HopDistance: export to a gonum graph and an independent
//     breadth-first hop count, used as an oracle for shortest paths.
//
// Complexity:
//
//   - Neighbors:   O(1).
//   - Clone:       O(N²).
//   - HopDistance: O(N²) time and memory.
//
// Errors:
//
//   - ErrBadSize:       size < 1.
//   - ErrOutOfBounds:   position outside the grid.
//   - ErrNonSquare:     text rows of differing length or count.
//   - ErrBadSymbol:     unknown character in the text format.
//   - ErrMultipleStart, ErrMultipleEnd, ErrNoStart, ErrNoEnd: endpoint scan.
//   - ErrBadDensity:    Scatter density outside [0,1].
//   - ErrMazeSize:      Maze size not odd or below 3.
package grid

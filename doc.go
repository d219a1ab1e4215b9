// Package gridsearch is a playground for classic shortest-path search on a
// square grid: paint a start, an end and some barriers, pick an algorithm,
// watch the frontier grow and the path appear.
//
// 🚀 What is inside?
//
//	• grid/     cells, roles, per-run marks, text format, mazes, gonum export
//	• search/   options, observer hooks, results, path reconstruction, frontier
//	• bfs/      breadth-first search (FIFO)
//	• dfs/      depth-first search (LIFO, any path)
//	• ucs/      uniform-cost search (lazy deletion)
//	• dijkstra/ Dijkstra with an in-frontier set
//	• astar/    A* with the Manhattan heuristic
//	• render/   ASCII frames, ANSI colors, PNG snapshots, animation
//	• server/   HTTP API and a WebSocket step stream
//
// This package ties them together: Algorithm names the five searches, Run
// dispatches to one of them, Compare races all of them on private clones and
// Board keeps the editing state of an interactive session.
//
// Quick example:
//
//	g, _ := grid.ParseString("S..\n#.#\n..E")
//	start, end, _ := g.Endpoints()
//	res, err := gridsearch.Run(gridsearch.AStar, g, start, end)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Status, res.Path)
//
// Every algorithm shares one contract: invalid input is an error, while
// "no path" and "cancelled" are reported through search.Result.Status.
package gridsearch

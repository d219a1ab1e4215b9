package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/gridsearch/bfs"
	"github.com/katalvlaran/gridsearch/grid"
)

// ExampleSearch routes through the single gap of a barrier row.
func ExampleSearch() {
	g, _ := grid.Parse([]string{
		"S..",
		"#.#",
		"..E",
	})
	start, end, _ := g.Endpoints()

	res, err := bfs.Search(g, start, end)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Status, res.Path)
	// Output:
	// found [(0, 0) (0, 1) (1, 1) (2, 1) (2, 2)]
}

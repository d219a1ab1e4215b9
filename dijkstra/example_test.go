package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/gridsearch/dijkstra"
	"github.com/katalvlaran/gridsearch/grid"
)

// ExampleSearch detours around a wall.
func ExampleSearch() {
	g, _ := grid.ParseString(
		"S#..\n" +
			".#.#\n" +
			"...#\n" +
			"##.E")
	start, end, _ := g.Endpoints()
	res, _ := dijkstra.Search(g, start, end)
	fmt.Println(res.Found(), res.Len())
	// Output:
	// true 7
}

package gridsearch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridsearch/astar"
	"github.com/katalvlaran/gridsearch/bfs"
	"github.com/katalvlaran/gridsearch/dfs"
	"github.com/katalvlaran/gridsearch/dijkstra"
	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/search"
	"github.com/katalvlaran/gridsearch/ucs"
)

// ErrUnknownAlgorithm is returned for names or keys that map to no algorithm.
var ErrUnknownAlgorithm = errors.New("gridsearch: unknown algorithm")

// Algorithm selects one of the five searches.
type Algorithm int

const (
	// None means no algorithm has been selected yet.
	None Algorithm = iota
	BFS
	DFS
	UCS
	Dijkstra
	AStar
)

// SearchFunc is the signature every algorithm package exports.
type SearchFunc func(g *grid.Grid, start, end *grid.Cell, opts ...search.Option) (*search.Result, error)

type entry struct {
	name  string
	title string
	key   string
	fn    SearchFunc
}

var table = map[Algorithm]entry{
	BFS:      {bfs.Name, "Breadth-First Search", "b", bfs.Search},
	DFS:      {dfs.Name, "Depth-First Search", "d", dfs.Search},
	UCS:      {ucs.Name, "Uniform-Cost Search", "u", ucs.Search},
	Dijkstra: {dijkstra.Name, "Dijkstra's Algorithm", "s", dijkstra.Search},
	AStar:    {astar.Name, "A* Search", "a", astar.Search},
}

// Algorithms lists every algorithm in a fixed order.
func Algorithms() []Algorithm {
	return []Algorithm{BFS, DFS, UCS, Dijkstra, AStar}
}

// String returns the short machine name, e.g. "astar".
func (a Algorithm) String() string {
	if s, ok := table[a]; ok {
		return s.name
	}
	return "none"
}

// Title returns the human-readable name.
func (a Algorithm) Title() string {
	if s, ok := table[a]; ok {
		return s.title
	}
	return "None"
}

// Key returns the single-letter shortcut.
func (a Algorithm) Key() string {
	return table[a].key
}

// MarshalText encodes the algorithm as its machine name.
func (a Algorithm) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText accepts anything ParseAlgorithm does.
func (a *Algorithm) UnmarshalText(b []byte) error {
	v, err := ParseAlgorithm(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// ParseAlgorithm resolves a machine name such as "bfs",
// a title or a shortcut key (a, b, u, d, s). Matching is case-insensitive.
func ParseAlgorithm(s string) (Algorithm, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	for _, a := range Algorithms() {
		e := table[a]
		if in == e.name || in == e.key || in == strings.ToLower(e.title) {
			return a, nil
		}
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Func returns the search function behind a.
func (a Algorithm) Func() (SearchFunc, error) {
	e, ok := table[a]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}
	return e.fn, nil
}

// Run executes algorithm a on g between start and end.
func Run(a Algorithm, g *grid.Grid, start, end *grid.Cell, opts ...search.Option) (*search.Result, error) {
	fn, err := a.Func()
	if err != nil {
		return nil, err
	}
	return fn(g, start, end, opts...)
}

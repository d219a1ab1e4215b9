package grid

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/traverse"
)

// NodeID maps p to its row-major gonum node ID.
func (g *Grid) NodeID(p Position) int64 {
	return int64(p.Row*g.size + p.Col)
}

// PositionOf maps a gonum node ID back to a position.
func (g *Grid) PositionOf(id int64) Position {
	return Position{Row: int(id) / g.size, Col: int(id) % g.size}
}

// Graph exports the current neighbor relation as an undirected gonum graph.
// Every non-barrier cell becomes a node; every neighbor pair becomes an edge.
// Complexity: O(N²) time and memory.
func (g *Grid) Graph() *simple.UndirectedGraph {
	ug := simple.NewUndirectedGraph()
	g.Each(func(c *Cell) {
		if !c.IsBarrier() {
			ug.AddNode(simple.Node(g.NodeID(c.pos)))
		}
	})
	g.Each(func(c *Cell) {
		if c.IsBarrier() {
			return
		}
		u := simple.Node(g.NodeID(c.pos))
		for _, n := range g.Neighbors(c) {
			v := simple.Node(g.NodeID(n.pos))
			if !ug.HasEdgeBetween(u.ID(), v.ID()) {
				ug.SetEdge(ug.NewEdge(u, v))
			}
		}
	})

	return ug
}

// HopDistance returns the fewest moves from one position to another over
// non-barrier cells, computed by an exhaustive breadth-first walk on the
// exported graph. ok is false when either end is a barrier, out of bounds,
// or unreachable.
func (g *Grid) HopDistance(from, to Position) (hops int, ok bool) {
	for _, p := range []Position{from, to} {
		if !g.InBounds(p) || g.cells[p.Row][p.Col].IsBarrier() {
			return 0, false
		}
	}
	ug := g.Graph()
	target := g.NodeID(to)
	var bf traverse.BreadthFirst
	found := bf.Walk(ug, ug.Node(g.NodeID(from)), func(n graph.Node, d int) bool {
		if n.ID() == target {
			hops = d
			return true
		}
		return false
	})
	if found == nil {
		return 0, false
	}

	return hops, true
}

// Reachable reports whether a barrier-free 4-connected route joins from and to.
func (g *Grid) Reachable(from, to Position) bool {
	_, ok := g.HopDistance(from, to)
	return ok
}

package grid_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridsearch/grid"
)

// BenchmarkNeighbors measures on-demand neighbor computation on a
// 200×200 grid with 30% barriers.
func BenchmarkNeighbors(b *testing.B) {
	g, err := grid.New(200)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	_ = g.Scatter(rand.New(rand.NewSource(42)), 0.3)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Each(func(c *grid.Cell) { _ = g.Neighbors(c) })
	}
}

// BenchmarkHopDistance measures the gonum oracle corner to corner.
func BenchmarkHopDistance(b *testing.B) {
	g, _ := grid.New(100)
	from, to := grid.Position{Row: 0, Col: 0}, grid.Position{Row: 99, Col: 99}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.HopDistance(from, to)
	}
}

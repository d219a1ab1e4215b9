package render

import (
	"errors"
	"fmt"
	"image"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/gridsearch/grid"
)

// ErrCellSize is returned when the requested cell size is not positive.
var ErrCellSize = errors.New("render: cell size must be positive")

// Image draws g with cellPx pixels per cell and grey grid lines. When path
// is not empty it is traced as a line through the cell centers.
func Image(g *grid.Grid, cellPx int, path []grid.Position) (image.Image, error) {
	dc, err := draw(g, cellPx, path)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// SavePNG writes the same picture as Image to filename.
func SavePNG(filename string, g *grid.Grid, cellPx int, path []grid.Position) error {
	dc, err := draw(g, cellPx, path)
	if err != nil {
		return err
	}
	if err = dc.SavePNG(filename); err != nil {
		return fmt.Errorf("render: save %s: %w", filename, err)
	}
	return nil
}

func draw(g *grid.Grid, cellPx int, path []grid.Position) (*gg.Context, error) {
	if g == nil {
		return nil, grid.ErrBadSize
	}
	if cellPx <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrCellSize, cellPx)
	}
	n := g.Size()
	side := n * cellPx
	dc := gg.NewContext(side, side)
	dc.SetColor(White)
	dc.Clear()

	// x follows the column, y the row
	maxDist := MaxDistance(g)
	px := float64(cellPx)
	g.Each(func(c *grid.Cell) {
		dc.SetColor(Shade(c, maxDist))
		dc.DrawRectangle(float64(c.Col())*px, float64(c.Row())*px, px, px)
		dc.Fill()
	})

	dc.SetColor(Grey)
	dc.SetLineWidth(1)
	for i := 0; i <= n; i++ {
		off := float64(i) * px
		dc.DrawLine(0, off, float64(side), off)
		dc.DrawLine(off, 0, off, float64(side))
	}
	dc.Stroke()

	if len(path) > 1 {
		dc.SetColor(Black)
		dc.SetLineWidth(px / 4)
		half := px / 2
		dc.MoveTo(float64(path[0].Col)*px+half, float64(path[0].Row)*px+half)
		for _, p := range path[1:] {
			dc.LineTo(float64(p.Col)*px+half, float64(p.Row)*px+half)
		}
		dc.Stroke()
	}
	return dc, nil
}

package render

import (
	"image/color"

	"github.com/katalvlaran/gridsearch/grid"
)

var (
	Red    = color.RGBA{R: 204, A: 255}
	Green  = color.RGBA{G: 204, A: 255}
	Blue   = color.RGBA{B: 255, A: 255}
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black  = color.RGBA{A: 255}
	Purple = color.RGBA{R: 136, G: 3, B: 185, A: 255}
	Pink   = color.RGBA{R: 249, G: 19, B: 180, A: 255}
	Grey   = color.RGBA{R: 128, G: 128, B: 128, A: 255}
)

// CellColor returns the display color of c. Roles win over marks.
func CellColor(c *grid.Cell) color.RGBA {
	switch {
	case c.IsStart():
		return Purple
	case c.IsEnd():
		return Blue
	case c.IsBarrier():
		return Black
	case c.IsPath():
		return Pink
	case c.IsClosed():
		return Red
	case c.IsOpen():
		return Green
	default:
		return White
	}
}

// Shade darkens closed cells by their depth-first distance relative to
// maxDist, down to half brightness. Other colors pass through.
func Shade(c *grid.Cell, maxDist int) color.RGBA {
	base := CellColor(c)
	if base != Red || maxDist <= 0 || c.Distance() <= 0 {
		return base
	}
	f := 1 - 0.5*float64(c.Distance())/float64(maxDist)
	return color.RGBA{R: uint8(float64(base.R) * f), A: 255}
}

// MaxDistance returns the largest distance annotation on g.
func MaxDistance(g *grid.Grid) int {
	m := 0
	g.Each(func(c *grid.Cell) {
		if c.Distance() > m {
			m = c.Distance()
		}
	})
	return m
}

// Symbol returns the one-rune text form of c.
func Symbol(c *grid.Cell) rune {
	switch {
	case c.IsStart():
		return 'S'
	case c.IsEnd():
		return 'E'
	case c.IsBarrier():
		return '#'
	case c.IsPath():
		return '*'
	case c.IsClosed():
		return 'x'
	case c.IsOpen():
		return 'o'
	default:
		return '.'
	}
}

package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/katalvlaran/gridsearch/grid"
)

const (
	ansiReset = "\x1b[0m"
	ansiHome  = "\x1b[H\x1b[2J"
)

// ColorSupported reports whether f is a terminal that should get ANSI colors.
func ColorSupported(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Frame renders g as text, one line per row. With colored set every cell
// is printed as a two-column block in its palette color.
func Frame(g *grid.Grid, colored bool) string {
	var sb strings.Builder
	maxDist := MaxDistance(g)
	for r := 0; r < g.Size(); r++ {
		for col := 0; col < g.Size(); col++ {
			c := g.At(r, col)
			if colored {
				rgb := Shade(c, maxDist)
				fmt.Fprintf(&sb, "\x1b[48;2;%d;%d;%dm  ", rgb.R, rgb.G, rgb.B)
				continue
			}
			sb.WriteRune(Symbol(c))
		}
		if colored {
			sb.WriteString(ansiReset)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// WriteFrame writes Frame(g, colored) to w.
func WriteFrame(w io.Writer, g *grid.Grid, colored bool) error {
	_, err := io.WriteString(w, Frame(g, colored))
	return err
}

// PrintPath writes the path report: the coordinates from start to goal and
// the length in cells, or "No path found" for an empty path.
func PrintPath(w io.Writer, path []grid.Position) error {
	if len(path) == 0 {
		_, err := fmt.Fprintln(w, "No path found")
		return err
	}
	var sb strings.Builder
	sb.WriteString("Path:\nStart:\n")
	for _, p := range path {
		sb.WriteString(p.String())
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "Goal\nLength: %d steps\n", len(path))
	_, err := io.WriteString(w, sb.String())
	return err
}

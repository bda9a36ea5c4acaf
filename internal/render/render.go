// Package render prints boolean grids as text.
package render

import (
	"bufio"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/OCharnyshevich/landmask/pkg/layer/grid"
)

// Options controls Text output.
type Options struct {
	Land, Sea rune // defaults '#' and '.'
	Axes      bool // mark the middle column with '|' and the middle row with a rule
	Color     bool // colour land and sea
}

var (
	landStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("34"))
	seaStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("27"))
	axisStyle = lipgloss.NewStyle().Faint(true)
)

// Text writes g with the highest Z row first, so north is up.
func Text(w io.Writer, g *grid.Grid[bool], opts Options) error {
	land, sea := opts.Land, opts.Sea
	if land == 0 {
		land = '#'
	}
	if sea == 0 {
		sea = '.'
	}

	paint := func(s lipgloss.Style, text string) string {
		if !opts.Color {
			return text
		}
		return s.Render(text)
	}

	width, depth := g.Width(), g.Depth()
	midX, midZ := width/2, depth/2

	bw := bufio.NewWriter(w)
	var line strings.Builder
	for z := depth - 1; z >= 0; z-- {
		line.Reset()
		for x := 0; x < width; x++ {
			if opts.Axes && x == midX {
				line.WriteString(paint(axisStyle, "|"))
			}
			if g.Get(x, z) {
				line.WriteString(paint(landStyle, string(land)))
			} else {
				line.WriteString(paint(seaStyle, string(sea)))
			}
		}
		line.WriteByte('\n')
		if _, err := bw.WriteString(line.String()); err != nil {
			return err
		}

		if opts.Axes && z == midZ {
			rule := strings.Repeat("=", midX) + " " + strings.Repeat("=", width-midX)
			if _, err := bw.WriteString(paint(axisStyle, rule) + "\n"); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// Stats summarises a land mask.
type Stats struct {
	Cells, Land int
}

// LandRatio returns the land fraction, or 0 for an empty grid.
func (s Stats) LandRatio() float64 {
	if s.Cells == 0 {
		return 0
	}
	return float64(s.Land) / float64(s.Cells)
}

// Summarize counts land cells in g.
func Summarize(g *grid.Grid[bool]) Stats {
	return Stats{
		Cells: g.Width() * g.Depth(),
		Land:  g.Count(func(v bool) bool { return v }),
	}
}

package tui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/penguin-warrior/internal/pixel"
)

// halfBlock shows the top pixel of a cell in the foreground colour and the
// bottom pixel in the background colour.
const halfBlock = "▀"

// cellKey identifies a (top, bottom) colour pair.
type cellKey struct {
	top, bottom color.RGBA
}

// Renderer turns a pixel surface into styled terminal text, two pixel rows
// per text row. Styles are cached per colour pair.
type Renderer struct {
	styles map[cellKey]lipgloss.Style
}

// NewRenderer creates a renderer with an empty style cache.
func NewRenderer() *Renderer {
	return &Renderer{styles: make(map[cellKey]lipgloss.Style)}
}

// SurfaceSize returns the pixel size that fills a terminal of cols×rows
// cells, leaving the last row for the footer.
func SurfaceSize(cols, rows int) (int, int) {
	return max(cols, 1), max(2*(rows-1), 2)
}

// Render converts the surface to a string.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
func (r *Renderer) Render(s *pixel.Surface) string {
	var sb strings.Builder
	rows := (s.Height() + 1) / 2
	sb.Grow(s.Width()*rows*4 + rows)

	for row := 0; row < rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}

		x := 0
		for x < s.Width() {
			start := r.cell(s, x, row)
			n := 0
			for x < s.Width() && r.cell(s, x, row) == start {
				n++
				x++
			}
			sb.WriteString(r.style(start).Render(strings.Repeat(halfBlock, n)))
		}
	}
	return sb.String()
}

// cell returns the colour pair shown by one text cell. A missing bottom
// row on odd-height surfaces renders black.
func (r *Renderer) cell(s *pixel.Surface, x, row int) cellKey {
	k := cellKey{top: s.At(x, 2*row)}
	if 2*row+1 < s.Height() {
		k.bottom = s.At(x, 2*row+1)
	}
	k.top.A, k.bottom.A = 0, 0
	return k
}

func (r *Renderer) style(k cellKey) lipgloss.Style {
	if st, ok := r.styles[k]; ok {
		return st
	}
	st := lipgloss.NewStyle().
		Foreground(lipgloss.Color(hex(k.top))).
		Background(lipgloss.Color(hex(k.bottom)))
	r.styles[k] = st
	return st
}

// hex formats a colour as #rrggbb.
func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

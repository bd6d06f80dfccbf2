package sink

import (
	"strings"

	"github.com/matzehuels/barrierkit/pkg/grid"
	"github.com/matzehuels/barrierkit/pkg/layout"
)

// Characters used by RenderText.
const (
	GlyphEmpty   = '.'
	GlyphBarrier = '#'
	GlyphCenter  = 'o'
)

// RenderText draws l with one character per cell, top row first. Centers
// are drawn over barrier cells.
func RenderText(l layout.Layout) string {
	cols := occupancy(l)
	centers := centerSet(l)

	var b strings.Builder
	b.Grow((l.Width + 1) * l.Height)
	for y := l.Height - 1; y >= 0; y-- {
		for x := 0; x < l.Width; x++ {
			switch {
			case centers[grid.Coord{X: x, Y: y}]:
				b.WriteByte(GlyphCenter)
			case cols[x][y]:
				b.WriteByte(GlyphBarrier)
			default:
				b.WriteByte(GlyphEmpty)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/barrierkit/pkg/layout"
)

// DefaultCellSize is the SVG edge length of one grid cell in pixels.
const DefaultCellSize = 6.0

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	cellSize  float64
	centers   bool
	gridLines bool
	title     string
	palette   Palette
}

// WithCellSize sets the cell edge length. Non-positive values are ignored.
func WithCellSize(px float64) SVGOption {
	return func(r *svgRenderer) {
		if px > 0 {
			r.cellSize = px
		}
	}
}

// WithCenters draws a ring around every cluster center.
func WithCenters() SVGOption { return func(r *svgRenderer) { r.centers = true } }

// WithGridLines draws the cell lattice.
func WithGridLines() SVGOption { return func(r *svgRenderer) { r.gridLines = true } }

// WithTitle embeds a <title> element.
func WithTitle(s string) SVGOption { return func(r *svgRenderer) { r.title = s } }

// WithPalette overrides the colors.
func WithPalette(p Palette) SVGOption { return func(r *svgRenderer) { r.palette = p } }

// RenderSVG draws l as an SVG document.
func RenderSVG(l layout.Layout, opts ...SVGOption) []byte {
	r := svgRenderer{cellSize: DefaultCellSize, palette: DefaultPalette}
	for _, opt := range opts {
		opt(&r)
	}

	cs := r.cellSize
	w, h := float64(l.Width)*cs, float64(l.Height)*cs

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n", w, h, w, h)
	if r.title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", escape(r.title))
	}
	fmt.Fprintf(&buf, `  <rect width="%.1f" height="%.1f" fill="%s"/>`+"\n", w, h, hex(r.palette.Background))

	if r.gridLines {
		r.renderLattice(&buf, l)
	}

	fmt.Fprintf(&buf, `  <g class="barriers" fill="%s">`+"\n", hex(r.palette.Barrier))
	for _, rn := range columnRuns(occupancy(l)) {
		// y grows upward in the grid, downward in SVG
		top := float64(l.Height-1-rn.y1) * cs
		fmt.Fprintf(&buf, `    <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f"/>`+"\n",
			float64(rn.x)*cs, top, cs, float64(rn.y1-rn.y0+1)*cs)
	}
	buf.WriteString("  </g>\n")

	if r.centers && len(l.Centers) > 0 {
		fmt.Fprintf(&buf, `  <g class="centers" fill="none" stroke="%s" stroke-width="%.1f">`+"\n",
			hex(r.palette.Center), max(1, cs/3))
		for _, c := range l.Centers {
			cx := (float64(c.X) + 0.5) * cs
			cy := (float64(l.Height-1-c.Y) + 0.5) * cs
			fmt.Fprintf(&buf, `    <circle cx="%.1f" cy="%.1f" r="%.1f"/>`+"\n", cx, cy, cs*1.5)
		}
		buf.WriteString("  </g>\n")
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r *svgRenderer) renderLattice(buf *bytes.Buffer, l layout.Layout) {
	cs := r.cellSize
	w, h := float64(l.Width)*cs, float64(l.Height)*cs
	buf.WriteString(`  <g class="lattice" stroke="#e2e0da" stroke-width="0.5">` + "\n")
	for x := 1; x < l.Width; x++ {
		fmt.Fprintf(buf, `    <line x1="%.1f" y1="0" x2="%.1f" y2="%.1f"/>`+"\n", float64(x)*cs, float64(x)*cs, h)
	}
	for y := 1; y < l.Height; y++ {
		fmt.Fprintf(buf, `    <line x1="0" y1="%.1f" x2="%.1f" y2="%.1f"/>`+"\n", float64(y)*cs, w, float64(y)*cs)
	}
	buf.WriteString("  </g>\n")
}

func escape(s string) string {
	var b bytes.Buffer
	for _, r := range s {
		switch r {
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '&':
			b.WriteString("&amp;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

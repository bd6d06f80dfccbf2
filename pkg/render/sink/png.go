package sink

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/barrierkit/pkg/layout"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale   int
	centers bool
	palette Palette
}

// WithScale sets the pixel size of one cell (default 4). Values below 1 are
// ignored.
func WithScale(s int) PNGOption {
	return func(r *pngRenderer) {
		if s >= 1 {
			r.scale = s
		}
	}
}

// WithPNGCenters paints cluster centers in the center color.
func WithPNGCenters() PNGOption { return func(r *pngRenderer) { r.centers = true } }

// WithPNGPalette overrides the colors.
func WithPNGPalette(p Palette) PNGOption { return func(r *pngRenderer) { r.palette = p } }

// RenderImage draws l at one pixel per cell.
func RenderImage(l layout.Layout, centers bool, p Palette) *image.NRGBA {
	img := imaging.New(l.Width, l.Height, p.Background)
	for _, c := range l.Locations {
		if c.In(l.Width, l.Height) {
			img.SetNRGBA(c.X, l.Height-1-c.Y, p.Barrier)
		}
	}
	if centers {
		for _, c := range l.Centers {
			if c.In(l.Width, l.Height) {
				img.SetNRGBA(c.X, l.Height-1-c.Y, p.Center)
			}
		}
	}
	return img
}

// RenderPNG draws l and encodes it as PNG.
func RenderPNG(l layout.Layout, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 4, palette: DefaultPalette}
	for _, opt := range opts {
		opt(&r)
	}

	var img image.Image = RenderImage(l, r.centers, r.palette)
	if r.scale > 1 {
		img = imaging.Resize(img, l.Width*r.scale, l.Height*r.scale, imaging.NearestNeighbor)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

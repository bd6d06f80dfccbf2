package sink

import (
	"fmt"
	"image/color"
)

// Palette holds the colors shared by the SVG and PNG renderers.
type Palette struct {
	Background color.NRGBA
	Barrier    color.NRGBA
	Center     color.NRGBA
}

// DefaultPalette draws dark barriers on a light field with red centers.
var DefaultPalette = Palette{
	Background: color.NRGBA{R: 0xf7, G: 0xf5, B: 0xf0, A: 0xff},
	Barrier:    color.NRGBA{R: 0x33, G: 0x33, B: 0x3d, A: 0xff},
	Center:     color.NRGBA{R: 0xd9, G: 0x4f, B: 0x4f, A: 0xff},
}

func hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

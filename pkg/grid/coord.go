package grid

import (
	"fmt"
	"math"
)

// Coord is an integer cell coordinate.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Sub returns the componentwise difference c - o.
func (c Coord) Sub(o Coord) Coord {
	return Coord{X: c.X - o.X, Y: c.Y - o.Y}
}

// Add returns the componentwise sum c + o.
func (c Coord) Add(o Coord) Coord {
	return Coord{X: c.X + o.X, Y: c.Y + o.Y}
}

// Length returns the Euclidean length of c treated as a vector.
func (c Coord) Length() float64 {
	return math.Hypot(float64(c.X), float64(c.Y))
}

// In reports whether c lies inside [0,w)×[0,h).
func (c Coord) In(w, h int) bool {
	return c.X >= 0 && c.X < w && c.Y >= 0 && c.Y < h
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

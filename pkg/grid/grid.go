package grid

import "fmt"

// Cell is the state of a single grid location.
type Cell uint16

const (
	// Empty marks an unoccupied cell.
	Empty Cell = 0

	// Barrier marks an impassable obstacle cell.
	Barrier Cell = 0xffff
)

// IsOccupant reports whether the cell holds an occupant index.
func (c Cell) IsOccupant() bool { return c != Empty && c != Barrier }

// Grid is a dense W×H field of cells. It is not safe for concurrent use.
type Grid struct {
	w, h  int
	cells []Cell
}

// New allocates an empty grid. Non-positive dimensions are rejected.
func New(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("grid: invalid dimensions %dx%d", w, h)
	}
	return &Grid{w: w, h: h, cells: make([]Cell, w*h)}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// InBounds reports whether c addresses a cell of g.
func (g *Grid) InBounds(c Coord) bool { return c.In(g.w, g.h) }

// Set stores v at c. It panics if c is outside the grid.
func (g *Grid) Set(c Coord, v Cell) {
	g.cells[g.index(c)] = v
}

// At returns the cell at c. It panics if c is outside the grid.
func (g *Grid) At(c Coord) Cell {
	return g.cells[g.index(c)]
}

// IsEmpty reports whether c is in bounds and empty.
func (g *Grid) IsEmpty(c Coord) bool {
	return g.InBounds(c) && g.At(c) == Empty
}

// IsBarrier reports whether c is in bounds and holds a barrier.
func (g *Grid) IsBarrier(c Coord) bool {
	return g.InBounds(c) && g.At(c) == Barrier
}

// ZeroFill resets every cell to Empty.
func (g *Grid) ZeroFill() {
	clear(g.cells)
}

// Count returns the number of cells equal to v.
func (g *Grid) Count(v Cell) int {
	n := 0
	for _, c := range g.cells {
		if c == v {
			n++
		}
	}
	return n
}

func (g *Grid) index(c Coord) int {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("grid: coordinate %v outside %dx%d", c, g.w, g.h))
	}
	return c.X*g.h + c.Y
}

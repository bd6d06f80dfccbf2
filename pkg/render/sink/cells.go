package sink

import (
	"github.com/matzehuels/barrierkit/pkg/grid"
	"github.com/matzehuels/barrierkit/pkg/layout"
)

// occupancy returns a column-major barrier mask for l, ignoring cells outside
// the grid.
func occupancy(l layout.Layout) [][]bool {
	cols := make([][]bool, l.Width)
	for x := range cols {
		cols[x] = make([]bool, l.Height)
	}
	for _, c := range l.Locations {
		if c.In(l.Width, l.Height) {
			cols[c.X][c.Y] = true
		}
	}
	return cols
}

// run is a vertical stretch of barrier cells in one column.
type run struct {
	x, y0, y1 int
}

// columnRuns collapses each column of the mask into maximal runs.
func columnRuns(cols [][]bool) []run {
	var runs []run
	for x, col := range cols {
		start := -1
		for y := 0; y <= len(col); y++ {
			on := y < len(col) && col[y]
			switch {
			case on && start < 0:
				start = y
			case !on && start >= 0:
				runs = append(runs, run{x: x, y0: start, y1: y - 1})
				start = -1
			}
		}
	}
	return runs
}

func centerSet(l layout.Layout) map[grid.Coord]bool {
	m := make(map[grid.Coord]bool, len(l.Centers))
	for _, c := range l.Centers {
		m[c] = true
	}
	return m
}

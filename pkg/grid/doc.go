// Package grid provides the discrete 2D simulation field that barrier layouts
// are stamped onto.
//
// # Cells
//
// A [Grid] is a dense W×H array of [Cell] values stored in column-major
// order. Every cell is either [Empty], [Barrier], or an occupant index in
// between (agents of the host simulation). Generators only ever write
// [Barrier]; occupant values are preserved for the simulation that owns the
// grid.
//
// # Coordinates
//
// [Coord] is a plain value type. Subtracting two coordinates and taking
// [Coord.Length] gives the Euclidean distance used for separation checks:
//
//	d := a.Sub(b).Length()
//
// # Neighborhoods
//
// [VisitNeighborhood] enumerates every in-grid cell within a radius of a
// center, clipping at the grid edges:
//
//	grid.VisitNeighborhood(g, grid.Coord{X: 10, Y: 10}, 3, func(c grid.Coord) {
//	    g.Set(c, grid.Barrier)
//	})
package grid

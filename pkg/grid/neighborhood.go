package grid

import "math"

// VisitNeighborhood calls fn for every cell of g within radius of center.
// The x extent is trunc(radius); for each column the y extent is
// trunc(sqrt(radius² - dx²)). Cells outside the grid are skipped, so a center
// near an edge yields a clipped disc.
func VisitNeighborhood(g *Grid, center Coord, radius float64, fn func(Coord)) {
	r := int(radius)
	for dx := -min(r, center.X); dx <= min(r, g.w-center.X-1); dx++ {
		extentY := int(math.Sqrt(radius*radius - float64(dx*dx)))
		for dy := -min(extentY, center.Y); dy <= min(extentY, g.h-center.Y-1); dy++ {
			fn(center.Add(Coord{X: dx, Y: dy}))
		}
	}
}

package barrier

import (
	"math"

	"github.com/matzehuels/barrierkit/pkg/grid"
)

// Result holds the records of one Generate call.
type Result struct {
	Kind Kind

	// Locations lists every cell set to grid.Barrier, in write order.
	// Overlapping shapes produce repeated entries.
	Locations []grid.Coord

	// Centers lists one coordinate per cluster for clustered kinds.
	Centers []grid.Coord

	// Attempts counts rejection-sampling rounds (zero for fixed kinds).
	Attempts int
}

// UniqueLocations returns Locations without repeats, keeping first
// occurrence order.
func (r *Result) UniqueLocations() []grid.Coord {
	seen := make(map[grid.Coord]struct{}, len(r.Locations))
	out := make([]grid.Coord, 0, len(r.Locations))
	for _, c := range r.Locations {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// NearestCenter returns the cluster center closest to c and its distance.
// ok is false when the result has no centers.
func (r *Result) NearestCenter(c grid.Coord) (center grid.Coord, dist float64, ok bool) {
	dist = math.Inf(1)
	for _, cc := range r.Centers {
		if d := cc.Sub(c).Length(); d < dist {
			center, dist, ok = cc, d, true
		}
	}
	return center, dist, ok
}

// NearBarrier reports whether any barrier cell of g lies within radius of c.
func NearBarrier(g *grid.Grid, c grid.Coord, radius float64) bool {
	found := false
	grid.VisitNeighborhood(g, c, radius, func(n grid.Coord) {
		if !found && g.At(n) == grid.Barrier {
			found = true
		}
	})
	return found
}

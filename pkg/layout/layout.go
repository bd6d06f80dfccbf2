// Package layout holds serializable snapshots of generated barrier layouts.
//
// A [Layout] captures everything needed to reproduce or re-render a
// generation run: the kind, grid size, seed and the two barrier records. It
// is the unit the pipeline caches and the JSON sink emits.
package layout

import (
	"github.com/matzehuels/barrierkit/pkg/barrier"
	"github.com/matzehuels/barrierkit/pkg/errors"
	"github.com/matzehuels/barrierkit/pkg/grid"
)

// Layout is a generated barrier layout.
type Layout struct {
	ID        string       `json:"id,omitempty"`
	Kind      barrier.Kind `json:"kind"`
	Width     int          `json:"width"`
	Height    int          `json:"height"`
	Seed      uint64       `json:"seed"`
	Attempts  int          `json:"attempts,omitempty"`
	Locations []grid.Coord `json:"locations"`
	Centers   []grid.Coord `json:"centers,omitempty"`
}

// FromResult snapshots a generator result for a w×h grid.
func FromResult(res *barrier.Result, w, h int, seed uint64) Layout {
	return Layout{
		Kind:      res.Kind,
		Width:     w,
		Height:    h,
		Seed:      seed,
		Attempts:  res.Attempts,
		Locations: res.Locations,
		Centers:   res.Centers,
	}
}

// Validate checks dimensions, kind and that all coordinates fit the grid.
func (l Layout) Validate() error {
	if err := errors.ValidateDimensions(l.Width, l.Height); err != nil {
		return err
	}
	if !l.Kind.Valid() {
		return errors.New(errors.ErrCodeInvalidKind, "unknown barrier kind %d", int(l.Kind))
	}
	for _, c := range l.Locations {
		if !c.In(l.Width, l.Height) {
			return errors.New(errors.ErrCodeInvalidInput, "location %v outside %dx%d", c, l.Width, l.Height)
		}
	}
	for _, c := range l.Centers {
		if !c.In(l.Width, l.Height) {
			return errors.New(errors.ErrCodeInvalidInput, "center %v outside %dx%d", c, l.Width, l.Height)
		}
	}
	return nil
}

// Grid rebuilds a grid with every location marked as a barrier.
func (l Layout) Grid() (*grid.Grid, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	g, err := grid.New(l.Width, l.Height)
	if err != nil {
		return nil, err
	}
	for _, c := range l.Locations {
		g.Set(c, grid.Barrier)
	}
	return g, nil
}

// CellCount returns the number of distinct barrier cells.
func (l Layout) CellCount() int {
	seen := make(map[grid.Coord]struct{}, len(l.Locations))
	for _, c := range l.Locations {
		seen[c] = struct{}{}
	}
	return len(seen)
}

package pipeline

import (
	"github.com/matzehuels/barrierkit/pkg/barrier"
	"github.com/matzehuels/barrierkit/pkg/grid"
	"github.com/matzehuels/barrierkit/pkg/layout"
	"github.com/matzehuels/barrierkit/pkg/random"
)

// GenerateLayout runs the barrier generator on a fresh grid without caching.
// Every call builds its own grid, generator and random source, so concurrent
// calls are safe.
func GenerateLayout(opts Options) (layout.Layout, error) {
	if err := opts.ValidateForGenerate(); err != nil {
		return layout.Layout{}, err
	}

	g, err := grid.New(opts.Width, opts.Height)
	if err != nil {
		return layout.Layout{}, err
	}
	gen := barrier.NewGenerator(
		barrier.WithMaxAttempts(opts.MaxAttempts),
		barrier.WithLogger(opts.Logger),
	)
	res, err := gen.Generate(g, opts.Kind, random.New(opts.Seed))
	if err != nil {
		return layout.Layout{}, err
	}
	return layout.FromResult(res, opts.Width, opts.Height, opts.Seed), nil
}

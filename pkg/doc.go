// Package pkg provides the core libraries for barrierkit obstacle layouts.
//
// # Overview
//
// Barrierkit fills a 2D simulation grid with barrier cells: fixed bars and
// staggered blocks, randomly placed bars, floating islands and evenly spaced
// spots. Every layout is reproducible from its kind, grid size and seed. The
// pkg directory is organized into these areas:
//
//  1. [grid] - The simulation grid, coordinates and neighborhood visits
//  2. [barrier] - Barrier kinds and the placement generator
//  3. [layout] - Serializable layouts and JSON import/export
//  4. [render] - SVG, PNG and text sinks
//  5. [pipeline] - Orchestration (generate → render) with caching
//
// # Architecture
//
// The typical data flow:
//
//	kind + grid size + seed
//	         ↓
//	    [barrier] package (place barrier cells on a [grid.Grid])
//	         ↓
//	    [layout] package (locations, centers, metadata)
//	         ↓
//	    [render/sink] package (SVG, PNG, text)
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/barrierkit/pkg/barrier"
//	    "github.com/matzehuels/barrierkit/pkg/grid"
//	    "github.com/matzehuels/barrierkit/pkg/layout"
//	    "github.com/matzehuels/barrierkit/pkg/random"
//	    "github.com/matzehuels/barrierkit/pkg/render/sink"
//	)
//
//	g, _ := grid.New(128, 128)
//	res, err := barrier.NewGenerator().Generate(g, barrier.KindIslands, random.New(42))
//	if err != nil {
//	    return err
//	}
//	l := layout.FromResult(res, 128, 128, 42)
//	svg := sink.RenderSVG(l, sink.WithCenters())
//
// Or let the pipeline handle defaults, caching and every output format:
//
//	runner := pipeline.NewRunner(nil, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Kind:    barrier.KindSpots,
//	    Formats: []string{pipeline.FormatSVG, pipeline.FormatPNG},
//	})
//
// # Supporting Packages
//
// [cache] - Cache backends (file, Redis, null) and key derivation.
//
// [errors] - Coded errors shared by the CLI and the HTTP API.
//
// [random] - The random source interface and its seeded PCG implementation.
//
// [observability] - Hooks for pipeline, cache and server events.
//
// [buildinfo] - Version information stamped at build time.
//
// # Testing
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/barrier/...  # Specific package
//	go test -run Example       # Examples only
//
// [grid]: https://pkg.go.dev/github.com/matzehuels/barrierkit/pkg/grid
// [grid.Grid]: https://pkg.go.dev/github.com/matzehuels/barrierkit/pkg/grid#Grid
// [barrier]: https://pkg.go.dev/github.com/matzehuels/barrierkit/pkg/barrier
// [layout]: https://pkg.go.dev/github.com/matzehuels/barrierkit/pkg/layout
// [render]: https://pkg.go.dev/github.com/matzehuels/barrierkit/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/barrierkit/pkg/render/sink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/barrierkit/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/barrierkit/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/barrierkit/pkg/errors
// [random]: https://pkg.go.dev/github.com/matzehuels/barrierkit/pkg/random
// [observability]: https://pkg.go.dev/github.com/matzehuels/barrierkit/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/barrierkit/pkg/buildinfo
package pkg

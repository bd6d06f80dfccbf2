// Package barrier generates obstacle layouts on a simulation [grid.Grid].
//
// # Overview
//
// A [Generator] stamps [grid.Barrier] onto a grid according to a layout
// [Kind] and records two outputs in a [Result]:
//
//   - Locations: every cell written during the call, in write order. A cell
//     covered by two overlapping shapes appears twice.
//   - Centers: one entry per cluster for layouts made of discrete clusters
//     (random bar, islands, spots); empty for single contiguous shapes.
//
// Every call starts from cleared records, so the result never mixes two
// layouts. The grid is expected to be empty where the layout lands; callers
// reset it with [grid.Grid.ZeroFill] between runs.
//
// # Kinds
//
//	0 none                 no barrier
//	1 vertical-bar         2-wide bar at x=W/2 spanning H/4..3H/4
//	2 random-vertical-bar  3-wide bar, H/2 tall, at a random midpoint
//	3 staggered-blocks     five blocks in a Z arrangement
//	4 horizontal-bar       3-tall bar at y=3H/4 spanning W/4..3W/4
//	5 islands              12 discs of radius 3, pairwise >= 12 apart
//	6 spots                5 discs of radius 5 down the vertical midline
//
// All geometry derives from the grid dimensions with truncating integer
// division.
//
// # Randomness
//
// Randomized kinds draw from a caller-supplied [random.Source], so a fixed
// seed reproduces a layout exactly:
//
//	gen := barrier.NewGenerator()
//	res, err := gen.Generate(g, barrier.KindIslands, random.New(42))
//
// # Failures
//
// An unknown kind is a caller bug and yields [errors.ErrCodeInvalidKind];
// [Generator.MustGenerate] turns any error into a panic for tools that want
// to fail fast. Layouts that do not fit the grid fail with
// [errors.ErrCodeGridTooSmall] before touching any cell. Rejection sampling is
// capped by [WithMaxAttempts] and fails with
// [errors.ErrCodePlacementExhausted].
//
// [errors.ErrCodeInvalidKind]: github.com/matzehuels/barrierkit/pkg/errors
// [errors.ErrCodeGridTooSmall]: github.com/matzehuels/barrierkit/pkg/errors
// [errors.ErrCodePlacementExhausted]: github.com/matzehuels/barrierkit/pkg/errors
package barrier

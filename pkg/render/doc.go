// Package render turns barrier layouts into viewable artifacts.
//
// # Overview
//
// Rendering works on a [layout.Layout] snapshot rather than a live grid, so
// cached layouts can be re-rendered without regenerating them. The [sink]
// subpackage provides the output formats:
//
//   - SVG: one rect per vertical run of barrier cells, optional center markers
//   - PNG: one pixel per cell, upscaled with nearest-neighbor filtering
//   - Text: one character per cell, for terminals and golden tests
//
// JSON output is the layout itself (see [layout.Marshal]).
//
// # Orientation
//
// All sinks draw y=0 at the bottom, matching the simulation's coordinate
// system, and x=0 on the left.
//
//	svg := sink.RenderSVG(l, sink.WithCellSize(6), sink.WithCenters())
//	png, err := sink.RenderPNG(l, sink.WithScale(4))
//
// [layout.Layout]: github.com/matzehuels/barrierkit/pkg/layout
// [layout.Marshal]: github.com/matzehuels/barrierkit/pkg/layout
// [sink]: github.com/matzehuels/barrierkit/pkg/render/sink
package render

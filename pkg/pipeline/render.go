package pipeline

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/barrierkit/pkg/errors"
	"github.com/matzehuels/barrierkit/pkg/layout"
	"github.com/matzehuels/barrierkit/pkg/render/sink"
)

// RenderArtifacts renders l into every requested format concurrently,
// without caching.
func RenderArtifacts(ctx context.Context, l layout.Layout, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	if err := opts.checkPNGSize(l.Width, l.Height); err != nil {
		return nil, err
	}

	var mu sync.Mutex
	out := make(map[string][]byte, len(opts.Formats))

	g, ctx := errgroup.WithContext(ctx)
	for _, format := range opts.Formats {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := renderFormat(l, format, opts)
			if err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "render %s", format)
			}
			mu.Lock()
			out[format] = data
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func renderFormat(l layout.Layout, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatSVG:
		svgOpts := []sink.SVGOption{
			sink.WithCellSize(opts.CellSize),
			sink.WithTitle(l.Kind.String() + " barrier layout"),
		}
		if opts.ShowCenters {
			svgOpts = append(svgOpts, sink.WithCenters())
		}
		if opts.GridLines {
			svgOpts = append(svgOpts, sink.WithGridLines())
		}
		return sink.RenderSVG(l, svgOpts...), nil
	case FormatPNG:
		pngOpts := []sink.PNGOption{sink.WithScale(opts.Scale)}
		if opts.ShowCenters {
			pngOpts = append(pngOpts, sink.WithPNGCenters())
		}
		return sink.RenderPNG(l, pngOpts...)
	case FormatJSON:
		return layout.Marshal(l)
	case FormatText:
		return []byte(sink.RenderText(l)), nil
	}
	return nil, ValidateFormat(format)
}

package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/barrierkit/pkg/cache"
	"github.com/matzehuels/barrierkit/pkg/errors"
	"github.com/matzehuels/barrierkit/pkg/layout"
	"github.com/matzehuels/barrierkit/pkg/observability"
)

// Runner executes the pipeline against a cache. It keeps no per-run state,
// so one Runner may serve concurrent requests.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner returns a runner. A nil cache disables caching, a nil keyer
// uses cache.DefaultKeyer and a nil logger uses log.Default().
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Execute runs generate and render.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	res := &Result{}

	start := time.Now()
	l, hit, err := r.GenerateWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, err
	}
	res.Layout = l
	res.CacheInfo.GenerateHit = hit
	res.Stats.GenerateTime = time.Since(start)
	res.Stats.Cells = l.CellCount()
	res.Stats.Centers = len(l.Centers)
	res.Stats.Attempts = l.Attempts

	r.Logger.Info("generated layout",
		"kind", l.Kind,
		"size", fmt.Sprintf("%dx%d", l.Width, l.Height),
		"cells", res.Stats.Cells,
		"cached", hit,
		"duration", res.Stats.GenerateTime)

	start = time.Now()
	artifacts, hit, err := r.RenderWithCacheInfo(ctx, l, opts)
	if err != nil {
		return nil, err
	}
	res.Artifacts = artifacts
	res.CacheInfo.RenderHit = hit
	res.Stats.RenderTime = time.Since(start)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", hit,
		"duration", res.Stats.RenderTime)

	return res, nil
}

// GenerateWithCacheInfo returns the layout for opts and whether it came from
// the cache. Refresh skips the lookup but still stores the new layout;
// NoStore skips the store.
func (r *Runner) GenerateWithCacheInfo(ctx context.Context, opts Options) (layout.Layout, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForGenerate(); err != nil {
		return layout.Layout{}, false, err
	}
	hooks := observability.Pipeline()
	key := r.Keyer.LayoutKey(opts.LayoutKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			if l, err := layout.Unmarshal(data); err == nil {
				observability.Cache().OnCacheHit(ctx, "layout")
				return l, true, nil
			}
		} else if err != nil {
			r.Logger.Warn("cache read failed", "err", err)
		}
		observability.Cache().OnCacheMiss(ctx, "layout")
	}

	hooks.OnGenerateStart(ctx, opts.Kind.String(), opts.Width, opts.Height)
	start := time.Now()
	l, err := GenerateLayout(opts)
	hooks.OnGenerateComplete(ctx, opts.Kind.String(), l.CellCount(), l.Attempts, time.Since(start), err)
	if err != nil {
		return layout.Layout{}, false, err
	}
	// Same inputs always map to the same ID, cached or not.
	l.ID = uuid.NewSHA1(uuid.NameSpaceURL, []byte(key)).String()

	if opts.NoStore {
		return l, false, nil
	}
	if data, err := layout.Marshal(l); err == nil {
		if err := r.Cache.Set(ctx, key, data, cache.TTLLayout); err != nil {
			r.Logger.Warn("cache write failed", "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "layout", len(data))
		}
	}
	return l, false, nil
}

// Generate is GenerateWithCacheInfo without the hit flag.
func (r *Runner) Generate(ctx context.Context, opts Options) (layout.Layout, error) {
	l, _, err := r.GenerateWithCacheInfo(ctx, opts)
	return l, err
}

// RenderWithCacheInfo renders l into opts.Formats. The hit flag is true only
// when every format came from the cache; otherwise the missing formats are
// rendered and stored.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, l layout.Layout, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	data, err := layout.Marshal(l)
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "serialize layout for cache key")
	}
	layoutHash := cache.Hash(data)

	artifacts := make(map[string][]byte, len(opts.Formats))
	var missing []string
	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		if !opts.Refresh {
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				artifacts[format] = data
				observability.Cache().OnCacheHit(ctx, "artifact")
				continue
			}
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
		missing = append(missing, format)
	}
	if len(missing) == 0 {
		return artifacts, true, nil
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, missing)
	start := time.Now()
	renderOpts := opts
	renderOpts.Formats = missing
	rendered, err := RenderArtifacts(ctx, l, renderOpts)
	hooks.OnRenderComplete(ctx, missing, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		artifacts[format] = data
		if opts.NoStore {
			continue
		}
		key := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err == nil {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}
	return artifacts, false, nil
}

// Render is RenderWithCacheInfo without the hit flag.
func (r *Runner) Render(ctx context.Context, l layout.Layout, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, l, opts)
	return artifacts, err
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// Package pipeline runs barrier generation and rendering with caching.
//
// The CLI and the HTTP server share this package so both apply the same
// defaults, validation and cache keys. A run has two stages:
//
//  1. Generate: build a grid, run the barrier generator, snapshot a layout
//  2. Render: turn the layout into one or more artifacts (svg, png, json, txt)
//
// Each stage is cached independently; a re-render with a different format
// reuses the cached layout.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	res, err := runner.Execute(ctx, pipeline.Options{
//	    Kind:    barrier.KindIslands,
//	    Seed:    7,
//	    Formats: []string{pipeline.FormatSVG},
//	})
//	svg := res.Artifacts[pipeline.FormatSVG]
package pipeline

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/barrierkit/pkg/barrier"
	"github.com/matzehuels/barrierkit/pkg/cache"
	"github.com/matzehuels/barrierkit/pkg/errors"
	"github.com/matzehuels/barrierkit/pkg/layout"
	"github.com/matzehuels/barrierkit/pkg/render/sink"
)

// Defaults shared by the CLI, config file and API.
const (
	// DefaultWidth and DefaultHeight match the usual simulation world size.
	DefaultWidth  = 128
	DefaultHeight = 128

	// DefaultScale is the PNG pixel size of one cell.
	DefaultScale = 4
)

// DefaultCellSize is the SVG edge length of one cell.
const DefaultCellSize = sink.DefaultCellSize

// MaxPixelSide caps each side of a rendered PNG.
const MaxPixelSide = 8192

// Output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
	FormatText = "txt"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatJSON: true,
	FormatText: true,
}

// Options configures a pipeline run. It doubles as the JSON request body of
// the API.
type Options struct {
	// Generate options
	Kind        barrier.Kind `json:"kind"`
	Width       int          `json:"width,omitempty"`
	Height      int          `json:"height,omitempty"`
	Seed        uint64       `json:"seed"`
	MaxAttempts int          `json:"max_attempts,omitempty"`
	Refresh     bool         `json:"refresh,omitempty"`
	NoStore     bool         `json:"-"` // skip cache writes

	// Render options
	Formats     []string `json:"formats,omitempty"`
	CellSize    float64  `json:"cell_size,omitempty"`
	Scale       int      `json:"scale,omitempty"`
	ShowCenters bool     `json:"show_centers,omitempty"`
	GridLines   bool     `json:"grid_lines,omitempty"`

	Logger *log.Logger `json:"-"`

	validated bool
}

// Result holds the outputs of a pipeline run.
type Result struct {
	Layout    layout.Layout
	Artifacts map[string][]byte
	Stats     Stats
	CacheInfo CacheInfo
}

// Stats holds timing and size information.
type Stats struct {
	Cells        int
	Centers      int
	Attempts     int
	GenerateTime time.Duration
	RenderTime   time.Duration
}

// CacheInfo records which stages were served from cache.
type CacheInfo struct {
	GenerateHit bool
	RenderHit   bool // all requested formats were cached
}

// ValidateFormat checks that format is supported. Formats are case-sensitive.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, json, txt)", format)
	}
	return nil
}

// ValidateFormats checks every entry of formats.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma-separated list, trimming blanks and dropping
// duplicates. An empty string yields the default format.
func ParseFormats(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{FormatSVG}
	}
	var out []string
	seen := make(map[string]bool)
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out
}

// ValidateAndSetDefaults applies defaults and validates every field. It is
// idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForGenerate(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForGenerate applies generation defaults and validates them.
func (o *Options) ValidateForGenerate() error {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.MaxAttempts == 0 {
		o.MaxAttempts = barrier.DefaultMaxAttempts
	}
	o.setLogger()

	if !o.Kind.Valid() {
		return errors.New(errors.ErrCodeInvalidKind, "unknown barrier kind %d", int(o.Kind))
	}
	if err := errors.ValidateDimensions(o.Width, o.Height); err != nil {
		return err
	}
	if o.MaxAttempts < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "max attempts must be positive, got %d", o.MaxAttempts)
	}
	return nil
}

// ValidateForRender applies render defaults and validates them.
func (o *Options) ValidateForRender() error {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.CellSize == 0 {
		o.CellSize = DefaultCellSize
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	o.setLogger()

	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.CellSize < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "cell size must be positive, got %g", o.CellSize)
	}
	if o.Scale < 0 || o.Scale > 64 {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be between 1 and 64, got %d", o.Scale)
	}
	return o.checkPNGSize(o.Width, o.Height)
}

// CheckPixelBudget rejects a PNG of a w×h grid at scale pixels per cell
// when either side would exceed MaxPixelSide.
func CheckPixelBudget(w, h, scale int) error {
	if w*scale > MaxPixelSide || h*scale > MaxPixelSide {
		return errors.New(errors.ErrCodeInvalidInput,
			"png of %dx%d cells at scale %d exceeds %d pixels per side", w, h, scale, MaxPixelSide)
	}
	return nil
}

// checkPNGSize applies CheckPixelBudget when PNG is among the formats.
func (o *Options) checkPNGSize(w, h int) error {
	if !slices.Contains(o.Formats, FormatPNG) {
		return nil
	}
	return CheckPixelBudget(w, h, o.Scale)
}

func (o *Options) setLogger() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// LayoutKeyOpts returns the cache key options for the generate stage.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Kind:        int(o.Kind),
		Width:       o.Width,
		Height:      o.Height,
		Seed:        o.Seed,
		MaxAttempts: o.MaxAttempts,
	}
}

// ArtifactKeyOpts returns the cache key options for one rendered format.
// Options that do not affect the format are left zero so they do not split
// the cache.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format}
	switch format {
	case FormatSVG:
		k.CellSize = o.CellSize
		k.Centers = o.ShowCenters
		k.GridLines = o.GridLines
	case FormatPNG:
		k.Scale = o.Scale
		k.Centers = o.ShowCenters
	}
	return k
}

// String summarizes the generate inputs for log lines.
func (o *Options) String() string {
	return fmt.Sprintf("%s %dx%d seed=%d", o.Kind, o.Width, o.Height, o.Seed)
}

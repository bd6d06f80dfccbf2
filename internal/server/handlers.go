package server

import (
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/barrierkit/pkg/barrier"
	"github.com/matzehuels/barrierkit/pkg/buildinfo"
	"github.com/matzehuels/barrierkit/pkg/errors"
	"github.com/matzehuels/barrierkit/pkg/layout"
	"github.com/matzehuels/barrierkit/pkg/pipeline"
)

// HeaderSeed reports the seed a layout was generated with, which matters
// when the request left it to the server.
const HeaderSeed = "X-Barrier-Seed"

var contentTypes = map[string]string{
	pipeline.FormatJSON: "application/json",
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatText: "text/plain; charset=utf-8",
}

type kindInfo struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Randomized  bool   `json:"randomized"`
	Clustered   bool   `json:"clustered"`
}

type layoutResponse struct {
	Layout layout.Layout `json:"layout"`
	Stats  statsResponse `json:"stats"`
}

type statsResponse struct {
	Cells       int   `json:"cells"`
	Centers     int   `json:"centers"`
	Attempts    int   `json:"attempts"`
	GenerateMS  int64 `json:"generate_ms"`
	GenerateHit bool  `json:"generate_cached"`
	RenderHit   bool  `json:"render_cached"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": buildinfo.Get().Version,
	})
}

func (s *Server) handleKinds(w http.ResponseWriter, r *http.Request) {
	kinds := barrier.Kinds()
	out := make([]kindInfo, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, kindInfo{
			ID:          int(k),
			Name:        k.String(),
			Description: k.Description(),
			Randomized:  k.Randomized(),
			Clustered:   k.Clustered(),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetLayout(w http.ResponseWriter, r *http.Request) {
	opts, err := s.parseQuery(r)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}

	res, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}

	format := opts.Formats[0]
	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set(HeaderSeed, strconv.FormatUint(res.Layout.Seed, 10))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifacts[format])
}

func (s *Server) handlePostLayout(w http.ResponseWriter, r *http.Request) {
	var opts pipeline.Options
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&opts); err != nil {
		if errors.GetCode(err) == "" {
			err = errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body")
		}
		writeError(w, s.logger, err)
		return
	}
	if err := s.checkSize(opts.Width, opts.Height); err != nil {
		writeError(w, s.logger, err)
		return
	}
	if opts.MaxAttempts > barrier.DefaultMaxAttempts {
		writeError(w, s.logger, errors.New(errors.ErrCodeInvalidInput,
			"max_attempts must not exceed %d", barrier.DefaultMaxAttempts))
		return
	}
	opts.Formats = []string{pipeline.FormatJSON}

	res, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	w.Header().Set(HeaderSeed, strconv.FormatUint(res.Layout.Seed, 10))
	writeJSON(w, http.StatusOK, layoutResponse{
		Layout: res.Layout,
		Stats: statsResponse{
			Cells:       res.Stats.Cells,
			Centers:     res.Stats.Centers,
			Attempts:    res.Stats.Attempts,
			GenerateMS:  res.Stats.GenerateTime.Milliseconds(),
			GenerateHit: res.CacheInfo.GenerateHit,
			RenderHit:   res.CacheInfo.RenderHit,
		},
	})
}

// parseQuery builds pipeline options from the path and query string. A
// missing seed is drawn at random and the result is not cached.
func (s *Server) parseQuery(r *http.Request) (pipeline.Options, error) {
	kind, err := barrier.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		return pipeline.Options{}, err
	}
	q := r.URL.Query()

	opts := pipeline.Options{
		Kind:    kind,
		Width:   pipeline.DefaultWidth,
		Height:  pipeline.DefaultHeight,
		Seed:    rand.Uint64(),
		Formats: []string{pipeline.FormatJSON},
	}
	if opts.Width, err = intParam(q.Get("width"), opts.Width); err != nil {
		return opts, err
	}
	if opts.Height, err = intParam(q.Get("height"), opts.Height); err != nil {
		return opts, err
	}
	if err := s.checkSize(opts.Width, opts.Height); err != nil {
		return opts, err
	}
	if v := q.Get("seed"); v != "" {
		if opts.Seed, err = strconv.ParseUint(v, 10, 64); err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "seed must be a non-negative integer, got %q", v)
		}
	} else {
		opts.NoStore = true
	}
	if v := q.Get("format"); v != "" {
		if err := pipeline.ValidateFormat(v); err != nil {
			return opts, err
		}
		opts.Formats = []string{v}
	}
	if v := q.Get("cell_size"); v != "" {
		if opts.CellSize, err = strconv.ParseFloat(v, 64); err != nil || opts.CellSize <= 0 {
			return opts, errors.New(errors.ErrCodeInvalidInput, "cell_size must be a positive number, got %q", v)
		}
	}
	if opts.Scale, err = intParam(q.Get("scale"), 0); err != nil {
		return opts, err
	}
	if opts.Formats[0] == pipeline.FormatPNG {
		scale := opts.Scale
		if scale == 0 {
			scale = pipeline.DefaultScale
		}
		if err := pipeline.CheckPixelBudget(opts.Width, opts.Height, scale); err != nil {
			return opts, err
		}
	}
	if v := q.Get("centers"); v != "" {
		if opts.ShowCenters, err = strconv.ParseBool(v); err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "centers must be a boolean, got %q", v)
		}
	}
	return opts, nil
}

func (s *Server) checkSize(w, h int) error {
	if w < 0 || h < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "grid dimensions must be positive, got %dx%d", w, h)
	}
	if limit := s.cfg.MaxDimension; limit > 0 && (w > limit || h > limit) {
		return errors.New(errors.ErrCodeInvalidInput, "grid dimensions too large: %dx%d (max %d)", w, h, limit)
	}
	return nil
}

// intParam parses a positive integer, returning def when v is empty.
func intParam(v string, def int) (int, error) {
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, errors.New(errors.ErrCodeInvalidInput, "expected a positive integer, got %q", v)
	}
	return n, nil
}

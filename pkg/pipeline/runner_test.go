package pipeline

import (
	"bytes"
	"context"
	"image/png"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/barrierkit/pkg/barrier"
	"github.com/matzehuels/barrierkit/pkg/cache"
	"github.com/matzehuels/barrierkit/pkg/errors"
	"github.com/matzehuels/barrierkit/pkg/layout"
	"github.com/matzehuels/barrierkit/pkg/observability"
)

func newTestRunner(t *testing.T) *Runner {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error: %v", err)
	}
	r := NewRunner(c, nil, nil)
	t.Cleanup(func() { r.Close() })
	return r
}

func TestGenerateLayout(t *testing.T) {
	l, err := GenerateLayout(Options{Kind: barrier.KindSpots, Width: 100, Height: 96})
	if err != nil {
		t.Fatalf("GenerateLayout() error: %v", err)
	}
	if l.Width != 100 || l.Height != 96 || l.Kind != barrier.KindSpots {
		t.Errorf("layout header = %v %dx%d", l.Kind, l.Width, l.Height)
	}
	if len(l.Centers) != 5 {
		t.Errorf("centers = %d, want 5", len(l.Centers))
	}
	if err := l.Validate(); err != nil {
		t.Errorf("generated layout is invalid: %v", err)
	}
}

func TestGenerateLayoutDeterministic(t *testing.T) {
	opts := Options{Kind: barrier.KindIslands, Seed: 1234}
	a, err := GenerateLayout(opts)
	if err != nil {
		t.Fatal(err)
	}
	b, err := GenerateLayout(opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(a.Centers) != len(b.Centers) {
		t.Fatalf("center counts differ: %d vs %d", len(a.Centers), len(b.Centers))
	}
	for i := range a.Centers {
		if a.Centers[i] != b.Centers[i] {
			t.Errorf("center %d differs: %v vs %v", i, a.Centers[i], b.Centers[i])
		}
	}
}

func TestGenerateLayoutErrors(t *testing.T) {
	_, err := GenerateLayout(Options{Kind: barrier.KindIslands, Width: 20, Height: 100})
	if !errors.Is(err, errors.ErrCodeGridTooSmall) {
		t.Errorf("islands on 20x100: err = %v, want GRID_TOO_SMALL", err)
	}

	_, err = GenerateLayout(Options{Kind: barrier.KindIslands, Width: 24, Height: 24, MaxAttempts: 50})
	if !errors.Is(err, errors.ErrCodePlacementExhausted) {
		t.Errorf("islands on 24x24: err = %v, want PLACEMENT_EXHAUSTED", err)
	}
}

func TestRenderArtifacts(t *testing.T) {
	l, err := GenerateLayout(Options{Kind: barrier.KindVerticalBar, Width: 16, Height: 12})
	if err != nil {
		t.Fatal(err)
	}

	arts, err := RenderArtifacts(context.Background(), l, Options{
		Formats:     []string{FormatSVG, FormatPNG, FormatJSON, FormatText},
		ShowCenters: true,
		Scale:       2,
	})
	if err != nil {
		t.Fatalf("RenderArtifacts() error: %v", err)
	}
	if len(arts) != 4 {
		t.Fatalf("artifacts = %d, want 4", len(arts))
	}

	if !bytes.HasPrefix(arts[FormatSVG], []byte("<svg")) {
		t.Error("svg artifact should start with <svg")
	}
	img, err := png.Decode(bytes.NewReader(arts[FormatPNG]))
	if err != nil {
		t.Fatalf("png artifact does not decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 24 {
		t.Errorf("png size = %dx%d, want 32x24", b.Dx(), b.Dy())
	}
	back, err := layout.Unmarshal(arts[FormatJSON])
	if err != nil {
		t.Fatalf("json artifact does not re-import: %v", err)
	}
	if back.CellCount() != l.CellCount() {
		t.Errorf("re-imported cells = %d, want %d", back.CellCount(), l.CellCount())
	}
	if rows := strings.Count(string(arts[FormatText]), "\n"); rows != 12 {
		t.Errorf("txt rows = %d, want 12", rows)
	}
}

func TestRenderArtifactsCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	l := layout.Layout{Width: 4, Height: 4}
	if _, err := RenderArtifacts(ctx, l, Options{Formats: []string{FormatText}}); err == nil {
		t.Error("canceled context should abort rendering")
	}
}

func TestRunnerExecuteCaches(t *testing.T) {
	r := newTestRunner(t)
	ctx := context.Background()
	opts := Options{Kind: barrier.KindIslands, Seed: 7, Formats: []string{FormatText, FormatJSON}}

	first, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if first.CacheInfo.GenerateHit || first.CacheInfo.RenderHit {
		t.Errorf("first run should miss: %+v", first.CacheInfo)
	}
	if first.Layout.ID == "" {
		t.Error("layout should get an ID")
	}
	if first.Stats.Centers != 12 {
		t.Errorf("Stats.Centers = %d, want 12", first.Stats.Centers)
	}

	second, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !second.CacheInfo.GenerateHit || !second.CacheInfo.RenderHit {
		t.Errorf("second run should hit: %+v", second.CacheInfo)
	}
	if second.Layout.ID != first.Layout.ID {
		t.Errorf("cached ID = %s, want %s", second.Layout.ID, first.Layout.ID)
	}
	if !bytes.Equal(second.Artifacts[FormatText], first.Artifacts[FormatText]) {
		t.Error("cached text artifact differs")
	}
}

func TestRenderArtifactsPixelBudget(t *testing.T) {
	l := layout.Layout{Kind: barrier.KindNone, Width: 2048, Height: 8}

	_, err := RenderArtifacts(context.Background(), l, Options{Formats: []string{FormatPNG}, Scale: 8})
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("oversized png: err = %v, want %s", err, errors.ErrCodeInvalidInput)
	}
	if _, err := RenderArtifacts(context.Background(), l, Options{Formats: []string{FormatPNG}, Scale: 4}); err != nil {
		t.Errorf("png at 8192 pixels should render: %v", err)
	}
}

func TestRunnerNoStore(t *testing.T) {
	r := newTestRunner(t)
	ctx := context.Background()
	opts := Options{Kind: barrier.KindSpots, Seed: 11, Formats: []string{FormatSVG}, NoStore: true}

	for i := range 2 {
		res, err := r.Execute(ctx, opts)
		if err != nil {
			t.Fatalf("Execute() error: %v", err)
		}
		if res.CacheInfo.GenerateHit || res.CacheInfo.RenderHit {
			t.Errorf("run %d should not hit the cache: %+v", i, res.CacheInfo)
		}
	}

	opts.NoStore = false
	if _, err := r.Execute(ctx, opts); err != nil {
		t.Fatal(err)
	}
	res, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !res.CacheInfo.GenerateHit || !res.CacheInfo.RenderHit {
		t.Errorf("stored run should hit: %+v", res.CacheInfo)
	}
}

func TestRunnerPartialRenderHit(t *testing.T) {
	r := newTestRunner(t)
	ctx := context.Background()
	opts := Options{Kind: barrier.KindSpots, Formats: []string{FormatText}}

	l, err := r.Generate(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.Render(ctx, l, opts); err != nil {
		t.Fatal(err)
	}

	opts.Formats = []string{FormatText, FormatSVG}
	arts, hit, err := r.RenderWithCacheInfo(ctx, l, opts)
	if err != nil {
		t.Fatal(err)
	}
	if hit {
		t.Error("svg was never rendered, so the render should not count as a hit")
	}
	if len(arts) != 2 {
		t.Errorf("artifacts = %d, want 2", len(arts))
	}
}

func TestRunnerRefresh(t *testing.T) {
	r := newTestRunner(t)
	ctx := context.Background()
	opts := Options{Kind: barrier.KindHorizontalBar}

	if _, err := r.Generate(ctx, opts); err != nil {
		t.Fatal(err)
	}
	opts.Refresh = true
	_, hit, err := r.GenerateWithCacheInfo(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if hit {
		t.Error("Refresh should bypass the cache")
	}
}

func TestRunnerErrorsPassThrough(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	_, err := r.Execute(context.Background(), Options{Kind: barrier.KindIslands, Width: 10, Height: 10})
	if !errors.Is(err, errors.ErrCodeGridTooSmall) {
		t.Errorf("err = %v, want GRID_TOO_SMALL", err)
	}
	_, err = r.Execute(context.Background(), Options{Kind: barrier.Kind(42)})
	if !errors.Is(err, errors.ErrCodeInvalidKind) {
		t.Errorf("err = %v, want INVALID_KIND", err)
	}
}

func TestRunnerHooks(t *testing.T) {
	rec := &recordingHooks{}
	observability.SetPipelineHooks(rec)
	observability.SetCacheHooks(rec)
	defer observability.Reset()

	r := newTestRunner(t)
	opts := Options{Kind: barrier.KindSpots, Formats: []string{FormatText}}
	if _, err := r.Execute(context.Background(), opts); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Execute(context.Background(), opts); err != nil {
		t.Fatal(err)
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	if rec.generated != 1 {
		t.Errorf("generate events = %d, want 1", rec.generated)
	}
	if rec.rendered != 1 {
		t.Errorf("render events = %d, want 1", rec.rendered)
	}
	if rec.hits["layout"] != 1 || rec.hits["artifact"] != 1 {
		t.Errorf("cache hits = %v", rec.hits)
	}
}

type recordingHooks struct {
	observability.NoopPipelineHooks
	observability.NoopCacheHooks

	mu        sync.Mutex
	generated int
	rendered  int
	hits      map[string]int
}

func (h *recordingHooks) OnGenerateComplete(context.Context, string, int, int, time.Duration, error) {
	h.mu.Lock()
	h.generated++
	h.mu.Unlock()
}

func (h *recordingHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {
	h.mu.Lock()
	h.rendered++
	h.mu.Unlock()
}

func (h *recordingHooks) OnCacheHit(_ context.Context, keyType string) {
	h.mu.Lock()
	if h.hits == nil {
		h.hits = make(map[string]int)
	}
	h.hits[keyType]++
	h.mu.Unlock()
}

package sink

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/matzehuels/barrierkit/pkg/barrier"
	"github.com/matzehuels/barrierkit/pkg/grid"
	"github.com/matzehuels/barrierkit/pkg/layout"
)

func testLayout() layout.Layout {
	return layout.Layout{
		Kind:   barrier.KindSpots,
		Width:  4,
		Height: 3,
		Locations: []grid.Coord{
			{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 2, Y: 2}, {X: 0, Y: 1},
		},
		Centers: []grid.Coord{{X: 2, Y: 2}},
	}
}

func TestRenderText(t *testing.T) {
	got := RenderText(testLayout())
	want := "..o.\n#...\n#...\n"
	if got != want {
		t.Errorf("RenderText() =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderTextEmpty(t *testing.T) {
	got := RenderText(layout.Layout{Width: 2, Height: 2})
	if got != "..\n..\n" {
		t.Errorf("RenderText() = %q", got)
	}
}

func TestRenderSVG(t *testing.T) {
	svg := string(RenderSVG(testLayout(), WithCellSize(10)))

	if !strings.HasPrefix(svg, "<svg") {
		t.Fatalf("output does not start with <svg: %q", svg[:20])
	}
	if !strings.Contains(svg, `viewBox="0 0 40.0 30.0"`) {
		t.Error("viewBox should be 40x30 for a 4x3 grid at cell size 10")
	}
	// background + one run in column 0 + one cell in column 2
	if n := strings.Count(svg, "<rect "); n != 3 {
		t.Errorf("rect count = %d, want 3", n)
	}
	if !strings.Contains(svg, `<rect x="0.0" y="10.0" width="10.0" height="20.0"/>`) {
		t.Error("column 0 run should be drawn as a single 2-cell rect at the bottom")
	}
	if strings.Contains(svg, "<circle") {
		t.Error("centers should not be drawn without WithCenters")
	}
}

func TestRenderSVGOptions(t *testing.T) {
	svg := string(RenderSVG(testLayout(),
		WithCenters(),
		WithGridLines(),
		WithTitle("spots <5>"),
		WithCellSize(-1),
	))

	if n := strings.Count(svg, "<circle"); n != 1 {
		t.Errorf("circle count = %d, want 1", n)
	}
	if !strings.Contains(svg, `class="lattice"`) {
		t.Error("lattice group missing")
	}
	if !strings.Contains(svg, "<title>spots &lt;5&gt;</title>") {
		t.Error("title should be escaped")
	}
	if !strings.Contains(svg, `width="24"`) {
		t.Error("non-positive cell size should fall back to the default")
	}
}

func TestRenderPNG(t *testing.T) {
	tests := []struct {
		name  string
		opts  []PNGOption
		wantW int
		wantH int
	}{
		{"default scale", nil, 16, 12},
		{"unit scale", []PNGOption{WithScale(1)}, 4, 3},
		{"large scale", []PNGOption{WithScale(10), WithPNGCenters()}, 40, 30},
		{"invalid scale ignored", []PNGOption{WithScale(0)}, 16, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := RenderPNG(testLayout(), tt.opts...)
			if err != nil {
				t.Fatalf("RenderPNG() error: %v", err)
			}
			img, err := png.Decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("png.Decode() error: %v", err)
			}
			b := img.Bounds()
			if b.Dx() != tt.wantW || b.Dy() != tt.wantH {
				t.Errorf("size = %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestRenderImagePixels(t *testing.T) {
	p := DefaultPalette
	img := RenderImage(testLayout(), true, p)

	// (0,0) is the bottom-left cell
	if got := img.NRGBAAt(0, 2); got != p.Barrier {
		t.Errorf("pixel (0,2) = %v, want barrier", got)
	}
	if got := img.NRGBAAt(2, 0); got != p.Center {
		t.Errorf("pixel (2,0) = %v, want center", got)
	}
	if got := img.NRGBAAt(3, 0); got != p.Background {
		t.Errorf("pixel (3,0) = %v, want background", got)
	}
}

func TestColumnRuns(t *testing.T) {
	cols := [][]bool{
		{true, true, false, true},
		{false, false, false, false},
		{true, true, true, true},
	}
	got := columnRuns(cols)
	want := []run{{0, 0, 1}, {0, 3, 3}, {2, 0, 3}}
	if len(got) != len(want) {
		t.Fatalf("runs = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("run[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

package barrier

import (
	"testing"

	"github.com/matzehuels/barrierkit/pkg/grid"
)

func TestNearestCenter(t *testing.T) {
	res := &Result{Centers: []grid.Coord{{X: 10, Y: 10}, {X: 40, Y: 10}}}
	c, d, ok := res.NearestCenter(grid.Coord{X: 34, Y: 18})
	if !ok {
		t.Fatal("NearestCenter should find a center")
	}
	if c != (grid.Coord{X: 40, Y: 10}) || d != 10 {
		t.Errorf("NearestCenter = %v, %v; want (40,10), 10", c, d)
	}

	if _, _, ok := (&Result{}).NearestCenter(grid.Coord{}); ok {
		t.Error("NearestCenter on empty result should report !ok")
	}
}

func TestNearBarrier(t *testing.T) {
	g, _ := grid.New(100, 100)
	if _, err := NewGenerator().Generate(g, KindVerticalBar, nil); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	tests := []struct {
		name   string
		at     grid.Coord
		radius float64
		want   bool
	}{
		{"on the bar", grid.Coord{X: 50, Y: 50}, 0, true},
		{"next to the bar", grid.Coord{X: 47, Y: 50}, 3, true},
		{"too far", grid.Coord{X: 40, Y: 50}, 5, false},
		{"beyond the bar end", grid.Coord{X: 50, Y: 80}, 4, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NearBarrier(g, tt.at, tt.radius); got != tt.want {
				t.Errorf("NearBarrier(%v, %v) = %v, want %v", tt.at, tt.radius, got, tt.want)
			}
		})
	}
}

func TestUniqueLocationsKeepsOrder(t *testing.T) {
	res := &Result{Locations: []grid.Coord{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 1}, {X: 3, Y: 3}}}
	got := res.UniqueLocations()
	want := []grid.Coord{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}}
	if len(got) != len(want) {
		t.Fatalf("UniqueLocations() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("UniqueLocations()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/barrierkit/pkg/barrier"
	"github.com/matzehuels/barrierkit/pkg/render/sink"
)

func update(t *testing.T, m previewModel, msg tea.Msg) (previewModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	pm, ok := next.(previewModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return pm, cmd
}

func TestPreviewCyclesKinds(t *testing.T) {
	m := newPreviewModel(barrier.KindSpots, 1, 128, 96, true)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Kind != barrier.KindNone {
		t.Errorf("right from spots = %s, want none", m.Kind)
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.Kind != barrier.KindSpots {
		t.Errorf("left from none = %s, want spots", m.Kind)
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'5'}})
	if m.Kind != barrier.KindIslands {
		t.Errorf("'5' = %s, want islands", m.Kind)
	}
	if m.Err != nil {
		t.Fatalf("islands on 128x96: %v", m.Err)
	}
	if len(m.Layout.Centers) != 12 {
		t.Errorf("islands has %d centers, want 12", len(m.Layout.Centers))
	}
}

func TestPreviewReseedAndCenters(t *testing.T) {
	m := newPreviewModel(barrier.KindIslands, 1, 128, 96, true)
	m.reseed = func() uint64 { return 99 }

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	if m.Seed != 99 || m.Layout.Seed != 99 {
		t.Errorf("seed = %d, layout seed = %d, want 99", m.Seed, m.Layout.Seed)
	}

	glyph := string(sink.GlyphCenter)
	shown := strings.Count(m.View(), glyph)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	if m.Centers {
		t.Error("'c' should hide centers")
	}
	if hidden := strings.Count(m.View(), glyph); hidden >= shown {
		t.Errorf("center glyphs: %d shown, %d hidden", shown, hidden)
	}
	if len(m.Layout.Centers) == 0 {
		t.Error("hiding centers must not drop them from the layout")
	}
}

func TestPreviewWindowSize(t *testing.T) {
	m := newPreviewModel(barrier.KindSpots, 1, 64, 32, false)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.Width != 100 || m.Height != 40-previewChrome {
		t.Errorf("size = %dx%d", m.Width, m.Height)
	}

	fixed := newPreviewModel(barrier.KindSpots, 1, 20, 10, true)
	fixed, _ = update(t, fixed, tea.WindowSizeMsg{Width: 100, Height: 40})
	if fixed.Width != 20 || fixed.Height != 10 {
		t.Errorf("fixed size changed to %dx%d", fixed.Width, fixed.Height)
	}
}

func TestPreviewShowsErrors(t *testing.T) {
	m := newPreviewModel(barrier.KindIslands, 1, 10, 10, true)
	if m.Err == nil {
		t.Fatal("islands on 10x10 should fail")
	}
	if !strings.Contains(m.View(), "islands") {
		t.Error("view should name the kind")
	}
}

func TestPreviewQuit(t *testing.T) {
	m := newPreviewModel(barrier.KindNone, 1, 8, 8, true)
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		_, cmd := update(t, m, msg)
		if cmd == nil {
			t.Errorf("%v should quit", msg)
			continue
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%v should return tea.Quit", msg)
		}
	}
}

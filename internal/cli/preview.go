package cli

import (
	"fmt"
	"math/rand/v2"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/barrierkit/pkg/barrier"
	"github.com/matzehuels/barrierkit/pkg/errors"
	"github.com/matzehuels/barrierkit/pkg/layout"
	"github.com/matzehuels/barrierkit/pkg/pipeline"
	"github.com/matzehuels/barrierkit/pkg/render/sink"
)

const (
	previewWidth  = 64
	previewHeight = 32

	// Rows taken by the header and help lines.
	previewChrome = 4
)

// previewCommand creates the interactive preview command.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		kind   string
		seed   uint64
		width  int
		height int
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Browse barrier layouts in the terminal",
		Long: `Preview renders layouts in the terminal and regenerates them as you
switch kinds or seeds. Without --width and --height the grid follows the
terminal size.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := barrier.ParseKind(kind)
			if err != nil {
				return err
			}
			fixed := cmd.Flags().Changed("width") || cmd.Flags().Changed("height")
			m := newPreviewModel(k, seed, width, height, fixed)
			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	f := cmd.Flags()
	f.StringVarP(&kind, "kind", "k", barrier.KindIslands.String(), "initial barrier kind")
	f.Uint64Var(&seed, "seed", 1, "initial seed")
	f.IntVar(&width, "width", previewWidth, "grid width (fixes the size)")
	f.IntVar(&height, "height", previewHeight, "grid height (fixes the size)")
	_ = cmd.RegisterFlagCompletionFunc("kind", completeKinds)

	return cmd
}

// previewModel is the bubbletea model for the preview command.
type previewModel struct {
	Kind    barrier.Kind
	Seed    uint64
	Width   int
	Height  int
	Centers bool
	Layout  layout.Layout
	Err     error

	fixed  bool
	reseed func() uint64
}

func newPreviewModel(kind barrier.Kind, seed uint64, w, h int, fixed bool) previewModel {
	m := previewModel{
		Kind:    kind,
		Seed:    seed,
		Width:   w,
		Height:  h,
		Centers: true,
		fixed:   fixed,
		reseed:  rand.Uint64,
	}
	return m.regenerate()
}

func (m previewModel) regenerate() previewModel {
	m.Layout, m.Err = pipeline.GenerateLayout(pipeline.Options{
		Kind:   m.Kind,
		Width:  m.Width,
		Height: m.Height,
		Seed:   m.Seed,
	})
	return m
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "right", "l":
			m.Kind = barrier.Kind((int(m.Kind) + 1) % len(barrier.Kinds()))
		case "left", "h":
			n := len(barrier.Kinds())
			m.Kind = barrier.Kind((int(m.Kind) + n - 1) % n)
		case "r":
			m.Seed = m.reseed()
		case "c":
			m.Centers = !m.Centers
			return m, nil
		default:
			k, err := barrier.ParseKind(key)
			if err != nil || len(key) != 1 {
				return m, nil
			}
			m.Kind = k
		}
		return m.regenerate(), nil
	case tea.WindowSizeMsg:
		if m.fixed {
			return m, nil
		}
		m.Width = max(msg.Width, 1)
		m.Height = max(msg.Height-previewChrome, 1)
		return m.regenerate(), nil
	}
	return m, nil
}

func (m previewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Kind.String()))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  %dx%d  seed %d", m.Width, m.Height, m.Seed)))
	if m.Err == nil && len(m.Layout.Centers) > 0 {
		b.WriteString(StyleDim.Render(fmt.Sprintf("  %d centers", len(m.Layout.Centers))))
	}
	b.WriteString("\n\n")

	if m.Err != nil {
		b.WriteString(StyleError.Render(errors.UserMessage(m.Err)))
		b.WriteString("\n")
	} else {
		l := m.Layout
		if !m.Centers {
			l.Centers = nil
		}
		b.WriteString(colorizeGrid(sink.RenderText(l)))
	}

	b.WriteString(StyleDim.Render("←/→ kind  0-6 select  r reseed  c centers  q quit"))
	return b.String()
}

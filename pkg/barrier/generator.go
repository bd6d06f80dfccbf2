package barrier

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/barrierkit/pkg/errors"
	"github.com/matzehuels/barrierkit/pkg/grid"
	"github.com/matzehuels/barrierkit/pkg/random"
)

// DefaultMaxAttempts caps rejection sampling for randomized kinds.
const DefaultMaxAttempts = 100_000

// Generator stamps barrier layouts onto grids. It keeps the most recent
// result for read-only queries. A Generator is not safe for concurrent use.
type Generator struct {
	maxAttempts int
	logger      *log.Logger
	last        *Result
}

// Option configures a Generator.
type Option func(*Generator)

// WithMaxAttempts sets the rejection-sampling cap. Values below 1 are ignored.
func WithMaxAttempts(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.maxAttempts = n
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *log.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// NewGenerator creates a generator with empty records.
func NewGenerator(opts ...Option) *Generator {
	gen := &Generator{
		maxAttempts: DefaultMaxAttempts,
		logger:      log.Default(),
		last:        &Result{},
	}
	for _, opt := range opts {
		opt(gen)
	}
	return gen
}

// Generate clears the previous records, computes the layout for kind on g
// and writes it. rng may be nil for kinds that are not randomized.
//
// On error the grid is left untouched and the records stay empty.
func (gen *Generator) Generate(g *grid.Grid, kind Kind, rng random.Source) (*Result, error) {
	gen.last = &Result{Kind: kind}

	if !kind.Valid() {
		return gen.last, errors.New(errors.ErrCodeInvalidKind, "unknown barrier kind %d", int(kind))
	}
	if g == nil {
		return gen.last, errors.New(errors.ErrCodeInvalidInput, "nil grid")
	}
	if kind.Randomized() && rng == nil {
		return gen.last, errors.New(errors.ErrCodeInvalidInput, "%s requires a random source", kind)
	}

	p := &plan{w: g.Width(), h: g.Height(), g: g}
	if err := gen.compute(p, kind, rng); err != nil {
		return gen.last, err
	}
	if c, ok := p.firstOutside(); ok {
		return gen.last, errors.New(errors.ErrCodeGridTooSmall,
			"%s does not fit a %dx%d grid: cell %v is outside", kind, p.w, p.h, c)
	}

	for _, c := range p.cells {
		g.Set(c, grid.Barrier)
	}
	gen.last.Locations = p.cells
	gen.last.Centers = p.centers
	gen.last.Attempts = p.attempts

	gen.logger.Debug("generated barrier",
		"kind", kind,
		"cells", len(p.cells),
		"centers", len(p.centers),
		"attempts", p.attempts)
	return gen.last, nil
}

// MustGenerate is Generate for callers where a failure is a programming
// error. It panics on any error.
func (gen *Generator) MustGenerate(g *grid.Grid, kind Kind, rng random.Source) *Result {
	res, err := gen.Generate(g, kind, rng)
	if err != nil {
		panic(fmt.Sprintf("barrier: %v", err))
	}
	return res
}

// Last returns the result of the most recent call.
func (gen *Generator) Last() *Result { return gen.last }

// Locations returns the barrier cells of the most recent call. The slice must
// not be modified.
func (gen *Generator) Locations() []grid.Coord { return gen.last.Locations }

// Centers returns the cluster centers of the most recent call. The slice must
// not be modified.
func (gen *Generator) Centers() []grid.Coord { return gen.last.Centers }

func (gen *Generator) compute(p *plan, kind Kind, rng random.Source) error {
	switch kind {
	case KindNone:
		return nil
	case KindVerticalBar:
		verticalBar(p)
	case KindRandomVerticalBar:
		return randomVerticalBar(p, rng, gen.maxAttempts)
	case KindStaggeredBlocks:
		staggeredBlocks(p)
	case KindHorizontalBar:
		horizontalBar(p)
	case KindIslands:
		return islands(p, rng, gen.maxAttempts)
	case KindSpots:
		spots(p)
	}
	return nil
}

// plan collects cell writes so a layout can be checked against the grid
// before any cell is touched.
type plan struct {
	w, h     int
	g        *grid.Grid
	cells    []grid.Coord
	centers  []grid.Coord
	attempts int
}

// box appends every cell of the inclusive rectangle, column by column.
func (p *plan) box(minX, minY, maxX, maxY int) {
	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			p.cells = append(p.cells, grid.Coord{X: x, Y: y})
		}
	}
}

// disc appends every in-grid cell within radius of center.
func (p *plan) disc(center grid.Coord, radius float64) {
	grid.VisitNeighborhood(p.g, center, radius, func(c grid.Coord) {
		p.cells = append(p.cells, c)
	})
}

func (p *plan) firstOutside() (grid.Coord, bool) {
	for _, c := range p.cells {
		if !c.In(p.w, p.h) {
			return c, true
		}
	}
	return grid.Coord{}, false
}

package barrier

import (
	"github.com/matzehuels/barrierkit/pkg/errors"
	"github.com/matzehuels/barrierkit/pkg/grid"
	"github.com/matzehuels/barrierkit/pkg/random"
)

const (
	islandRadius = 3.0
	islandMargin = int(islandRadius * 4)
	islandCount  = 12

	spotRadius = 5.0
	spotCount  = 5

	blockWidth = 2
)

func verticalBar(p *plan) {
	minX := p.w / 2
	maxX := minX + 1
	minY := p.h / 4
	maxY := minY + p.h/2
	p.box(minX, minY, maxX, maxY)
}

func horizontalBar(p *plan) {
	minX := p.w / 4
	maxX := minX + p.w/2
	minY := p.h/2 + p.h/4
	maxY := minY + 2
	p.box(minX, minY, maxX, maxY)
}

// randomVerticalBar places a 3-wide bar around a random midpoint. A draw
// whose bar would leave the grid is rejected and redrawn.
func randomVerticalBar(p *plan, rng random.Source, maxAttempts int) error {
	if p.w < 3 {
		return errors.New(errors.ErrCodeGridTooSmall, "%s needs a grid at least 3 wide, got %d", KindRandomVerticalBar, p.w)
	}
	halfH := p.h / 4
	for p.attempts < maxAttempts {
		p.attempts++
		mid := grid.Coord{
			X: int(rng.UintRange(uint(p.w/10), uint(p.w-p.w/10))),
			Y: int(rng.UintRange(uint(p.h/4), uint(p.h-p.h/4))),
		}
		minX, maxX := mid.X-1, mid.X+1
		minY, maxY := mid.Y-halfH, mid.Y+halfH
		if minX < 0 || maxX >= p.w || minY < 0 || maxY >= p.h {
			continue
		}
		p.centers = append(p.centers, mid)
		p.box(minX, minY, maxX, maxY)
		return nil
	}
	return errors.New(errors.ErrCodePlacementExhausted,
		"%s: no in-grid placement after %d attempts", KindRandomVerticalBar, p.attempts)
}

// staggeredBlocks draws five blocks: four at the quarter points in a Z
// order and one in the middle. Block height derives from the grid width.
func staggeredBlocks(p *plan) {
	blockHeight := p.w / 3

	x0 := p.w/4 - blockWidth/2
	y0 := p.h/4 - blockHeight/2
	x1 := x0 + blockWidth
	y1 := y0 + blockHeight
	p.box(x0, y0, x1, y1)

	x0 += p.w / 2
	x1 = x0 + blockWidth
	p.box(x0, y0, x1, y1)

	y0 += p.h / 2
	y1 = y0 + blockHeight
	p.box(x0, y0, x1, y1)

	x0 -= p.w / 2
	x1 = x0 + blockWidth
	p.box(x0, y0, x1, y1)

	x0 = p.w/2 - blockWidth/2
	x1 = x0 + blockWidth
	y0 = p.h/2 - blockHeight/2
	y1 = y0 + blockHeight
	p.box(x0, y0, x1, y1)
}

// islands resamples all centers until every pair is at least islandMargin
// apart, then stamps a disc at each.
func islands(p *plan, rng random.Source, maxAttempts int) error {
	if p.w-islandMargin < islandMargin || p.h-islandMargin < islandMargin {
		return errors.New(errors.ErrCodeGridTooSmall,
			"%s needs a grid of at least %dx%d, got %dx%d",
			KindIslands, 2*islandMargin, 2*islandMargin, p.w, p.h)
	}

	centers := make([]grid.Coord, islandCount)
	for {
		if p.attempts >= maxAttempts {
			return errors.New(errors.ErrCodePlacementExhausted,
				"%s: could not separate %d islands by %d cells on a %dx%d grid after %d attempts",
				KindIslands, islandCount, islandMargin, p.w, p.h, p.attempts)
		}
		p.attempts++
		for i := range centers {
			centers[i] = grid.Coord{
				X: int(rng.UintRange(uint(islandMargin), uint(p.w-islandMargin))),
				Y: int(rng.UintRange(uint(islandMargin), uint(p.h-islandMargin))),
			}
		}
		if separated(centers, float64(islandMargin)) {
			break
		}
	}

	for _, c := range centers {
		p.centers = append(p.centers, c)
		p.disc(c, islandRadius)
	}
	return nil
}

func separated(centers []grid.Coord, minDist float64) bool {
	for a := 0; a < len(centers)-1; a++ {
		for b := a + 1; b < len(centers); b++ {
			if centers[a].Sub(centers[b]).Length() < minDist {
				return false
			}
		}
	}
	return true
}

func spots(p *plan) {
	slice := p.h / (spotCount + 1)
	for n := 1; n <= spotCount; n++ {
		c := grid.Coord{X: p.w / 2, Y: n * slice}
		p.disc(c, spotRadius)
		p.centers = append(p.centers, c)
	}
}

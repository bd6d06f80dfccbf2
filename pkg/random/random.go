// Package random provides the injectable uniform integer source used by
// randomized barrier layouts.
//
// Generators never touch global random state: callers pass a [Source] per
// call, so seeding a [PCG] with the same value reproduces a layout exactly.
package random

import "math/rand/v2"

// Source draws uniform integers from an inclusive range.
type Source interface {
	// UintRange returns a uniform value in [lo, hi]. Callers guarantee lo <= hi.
	UintRange(lo, hi uint) uint
}

// PCG is a seeded Source backed by math/rand/v2's PCG generator.
// It is not safe for concurrent use.
type PCG struct {
	rng *rand.Rand
}

// New returns a PCG seeded with seed.
func New(seed uint64) *PCG {
	return &PCG{rng: rand.New(rand.NewPCG(seed, seed^0xdeadbeef))}
}

// UintRange returns a uniform value in [lo, hi]. If hi < lo it returns lo.
func (p *PCG) UintRange(lo, hi uint) uint {
	if hi <= lo {
		return lo
	}
	return lo + p.rng.UintN(hi-lo+1)
}

// Func adapts a plain function to Source.
type Func func(lo, hi uint) uint

// UintRange calls f(lo, hi).
func (f Func) UintRange(lo, hi uint) uint { return f(lo, hi) }

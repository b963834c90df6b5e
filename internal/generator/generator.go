// Package generator builds a referentially consistent synthetic dataset for
// the cinema schema: users, payment methods, sampled movies, devices and
// viewing history.
package generator

import (
	"math/rand"
	"time"
)

// Generator draws every random value of a run from one source against one clock.
// It is not safe for concurrent use.
type Generator struct {
	rnd  *rand.Rand
	seed int64
	now  time.Time
}

// New creates a generator. A zero seed is derived from now and reported by Seed.
func New(seed int64, now time.Time) *Generator {
	if seed == 0 {
		seed = now.UnixNano()
	}
	return &Generator{
		rnd:  rand.New(rand.NewSource(seed)),
		seed: seed,
		now:  now,
	}
}

// Seed returns the seed the random source was created from
func (g *Generator) Seed() int64 { return g.seed }

// Now returns the generation clock
func (g *Generator) Now() time.Time { return g.now }

func (g *Generator) today() time.Time { return dateOf(g.now) }

// between returns a uniform integer in [lo, hi]
func (g *Generator) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rnd.Intn(hi-lo+1)
}

func (g *Generator) chance(p float64) bool {
	return g.rnd.Float64() < p
}

// weighted returns the index of a choice drawn with the given weights
func (g *Generator) weighted(weights ...float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	x := g.rnd.Float64() * total
	acc := 0.0
	for i, w := range weights {
		acc += w
		if x < acc {
			return i
		}
	}
	return len(weights) - 1
}

func pick[T any](g *Generator, items []T) T {
	return items[g.rnd.Intn(len(items))]
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(dateOf(to).Sub(dateOf(from)).Hours() / 24)
}

package generator

import (
	"math/rand"
	"time"
)

// Source supplies the randomness behind every probability gate and pool
// selection, so tests can substitute a scripted sequence and assert exact
// branch selection.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// NewSource returns a time-seeded source. Runs are reproducible in shape, not
// byte-identical.
func NewSource() Source {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Between returns a uniform integer in [lo, hi], inclusive on both ends.
func Between(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.Intn(hi-lo+1)
}

// Chance reports true with probability p.
func Chance(src Source, p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return src.Float64() < p
}

// Pick returns a uniformly chosen element of items.
func Pick[T any](src Source, items []T) T {
	return items[src.Intn(len(items))]
}

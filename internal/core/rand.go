package core

import "math/rand"

// Rand is the random source the rules engine draws from. Injecting it keeps
// simulations reproducible and lets tests script exact sequences.
type Rand interface {
	// IntBetween returns a uniformly distributed integer in [lo, hi].
	IntBetween(lo, hi int) int
}

// SeededRand is a Rand backed by math/rand with an explicit seed.
type SeededRand struct {
	r *rand.Rand
}

// NewRand creates a seeded random source.
func NewRand(seed int64) *SeededRand {
	return &SeededRand{r: rand.New(rand.NewSource(seed))}
}

// IntBetween returns a uniformly distributed integer in [lo, hi].
func (s *SeededRand) IntBetween(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + s.r.Intn(hi-lo+1)
}

// SequenceRand replays a fixed list of values, clamped into the requested
// range. It wraps around when exhausted. Intended for tests.
type SequenceRand struct {
	Values []int
	next   int
}

// IntBetween returns the next scripted value clamped to [lo, hi].
func (s *SequenceRand) IntBetween(lo, hi int) int {
	if len(s.Values) == 0 {
		return lo
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	return Clamp(v, lo, hi)
}

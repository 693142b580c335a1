package rng

import (
	"math/rand"

	"github.com/cespare/xxhash/v2"
)

// Stream is one labelled, seeded source of randomness.
// The zero value is not usable; obtain streams from Controller.Stream or Child.
type Stream struct {
	label string
	seed  int64
	r     *rand.Rand
}

// newStream seeds a fresh math/rand source; equal seeds give equal sequences.
func newStream(label string, seed int64) *Stream {
	return &Stream{label: label, seed: seed, r: rand.New(rand.NewSource(seed))}
}

// Label returns the derivation path of s ("perturb", "label/color", ...).
func (s *Stream) Label() string { return s.label }

// Seed returns the derived seed of s.
func (s *Stream) Seed() int64 { return s.seed }

// Child derives an independent sub-stream from the seed of s, not from its
// current state, so children are stable no matter how many draws s made.
// Complexity: O(len(label)).
func (s *Stream) Child(label string) *Stream {
	return newStream(s.label+"/"+label, deriveSeed(s.seed, xxhash.Sum64String(label)))
}

// Intn returns a uniform int in [0, n). It panics if n <= 0, as math/rand does;
// callers check eligibility before drawing.
func (s *Stream) Intn(n int) int { return s.r.Intn(n) }

// Int63 returns a uniform non-negative int64.
func (s *Stream) Int63() int64 { return s.r.Int63() }

// Float64 returns a uniform float64 in [0.0, 1.0).
func (s *Stream) Float64() float64 { return s.r.Float64() }

// Perm returns a uniform permutation of 0..n-1.
func (s *Stream) Perm(n int) []int { return s.r.Perm(n) }

// Shuffle permutes n elements in place through swap (Fisher–Yates).
func (s *Stream) Shuffle(n int, swap func(i, j int)) { s.r.Shuffle(n, swap) }

// Pick draws an index with probability proportional to weights[i].
// Non-positive weights are never chosen. Returns -1 when no weight is positive.
//
// Complexity: O(len(weights)).
func (s *Stream) Pick(weights []float64) int {
	var total float64
	last := -1
	for i, w := range weights {
		if w > 0 {
			total += w
			last = i
		}
	}
	if last < 0 {
		return -1
	}

	x := s.r.Float64() * total
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if x < w {
			return i
		}
		x -= w
	}

	// Floating-point residue lands on the last positive weight.
	return last
}

// Sample returns k distinct indices from [0, n) in draw order using a partial
// Fisher–Yates shuffle. k is clamped to [0, n].
//
// Complexity: O(n) time, O(n) space.
func (s *Stream) Sample(n, k int) []int {
	if k > n {
		k = n
	}
	if k <= 0 {
		return []int{}
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + s.r.Intn(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}

	return idx[:k]
}

// SPDX-License-Identifier: MIT
// Package: lvsynth/compose
//
// links.go — motif-level link patterns.
//
// A pattern yields pairs (i, j) of instance indices; Compose then joins one
// stream-chosen node of instance i to one of instance j.
//
//	Pattern        pairs
//	sequential     (i, i+1)
//	er             every i<j with probability P
//	ba             preferential attachment, M links per new instance
//	sbm            every i<j with PIn inside a block, POut across blocks
//	star           (Center, i) for every i ≠ Center
//	hierarchical   cliques of Groups near-equal groups, leaders chained
//
// Zero parameters select defaults: P 0.1, M 1, PIn 0.6, POut 0.01, Groups 2,
// Center drawn from the stream when nil.

package compose

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvsynth/rng"
)

// LinkPattern enumerates motif-level link patterns.
type LinkPattern uint8

const (
	LinkNone LinkPattern = iota
	LinkSequential
	LinkErdosRenyi
	LinkBarabasiAlbert
	LinkBlocks
	LinkStar
	LinkHierarchical
)

var patternNames = [...]string{"none", "sequential", "er", "ba", "sbm", "star", "hierarchical"}

// Defaults for zero-valued link parameters.
const (
	DefaultLinkP      = 0.1
	DefaultLinkM      = 1
	DefaultLinkPIn    = 0.6
	DefaultLinkPOut   = 0.01
	DefaultLinkGroups = 2
)

// String returns the pattern name.
func (lp LinkPattern) String() string {
	if int(lp) < len(patternNames) {
		return patternNames[lp]
	}

	return fmt.Sprintf("pattern(%d)", lp)
}

// MarshalText implements encoding.TextMarshaler.
func (lp LinkPattern) MarshalText() ([]byte, error) {
	if int(lp) >= len(patternNames) {
		return nil, fmt.Errorf("link pattern %d: %w", lp, ErrBadPlan)
	}

	return []byte(lp.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (lp *LinkPattern) UnmarshalText(text []byte) error {
	want := strings.ToLower(strings.TrimSpace(string(text)))
	for i, n := range patternNames {
		if n == want {
			*lp = LinkPattern(i)
			return nil
		}
	}

	return fmt.Errorf("link pattern %q: %w", text, ErrBadPlan)
}

// Links configures a motif-level link pattern.
type Links struct {
	Pattern LinkPattern `json:"pattern" yaml:"pattern"`
	P       float64     `json:"p,omitempty" yaml:"p,omitempty"`
	M       int         `json:"m,omitempty" yaml:"m,omitempty"`
	Blocks  []int       `json:"blocks,omitempty" yaml:"blocks,omitempty"`
	PIn     float64     `json:"p_in,omitempty" yaml:"p_in,omitempty"`
	POut    float64     `json:"p_out,omitempty" yaml:"p_out,omitempty"`
	Center  *int        `json:"center,omitempty" yaml:"center,omitempty"`
	Groups  int         `json:"groups,omitempty" yaml:"groups,omitempty"`
}

// validate checks l for a plan of n requests.
func (l Links) validate(n int) error {
	if int(l.Pattern) >= len(patternNames) {
		return fmt.Errorf("%s: %v: %w", methodCompose, l.Pattern, ErrBadPlan)
	}
	for _, pr := range []struct {
		name string
		p    float64
	}{{"p", l.P}, {"p_in", l.PIn}, {"p_out", l.POut}} {
		if pr.p < 0 || pr.p > 1 {
			return fmt.Errorf("%s: links %s=%g outside [0,1]: %w", methodCompose, pr.name, pr.p, ErrBadPlan)
		}
	}
	if l.M < 0 || l.Groups < 0 {
		return fmt.Errorf("%s: links m=%d groups=%d: %w", methodCompose, l.M, l.Groups, ErrBadPlan)
	}
	for _, b := range l.Blocks {
		if b <= 0 {
			return fmt.Errorf("%s: links block size %d: %w", methodCompose, b, ErrBadPlan)
		}
	}
	if l.Center != nil && (*l.Center < 0 || (n > 0 && *l.Center >= n)) {
		return fmt.Errorf("%s: links center=%d with %d requests: %w", methodCompose, *l.Center, n, ErrBadPlan)
	}

	return nil
}

func orDefault[T int | float64](v, def T) T {
	if v == 0 {
		return def
	}

	return v
}

// pairs returns the instance pairs of l over n instances, in generation order.
func (l Links) pairs(n int, s *rng.Stream) [][2]int {
	if n <= 1 {
		return nil
	}
	switch l.Pattern {
	case LinkSequential:
		return sequentialPairs(n)
	case LinkErdosRenyi:
		return bernoulliPairs(n, s, func(int, int) float64 { return orDefault(l.P, DefaultLinkP) })
	case LinkBarabasiAlbert:
		return preferentialPairs(n, orDefault(l.M, DefaultLinkM), s)
	case LinkBlocks:
		if len(l.Blocks) == 0 {
			return bernoulliPairs(n, s, func(int, int) float64 { return orDefault(l.P, DefaultLinkP) })
		}
		block := blockAssignment(n, l.Blocks)
		pIn, pOut := orDefault(l.PIn, DefaultLinkPIn), orDefault(l.POut, DefaultLinkPOut)
		return bernoulliPairs(n, s, func(i, j int) float64 {
			if block[i] == block[j] {
				return pIn
			}
			return pOut
		})
	case LinkStar:
		var center int
		if l.Center != nil {
			center = *l.Center
		} else {
			center = s.Intn(n)
		}
		out := make([][2]int, 0, n-1)
		for i := 0; i < n; i++ {
			if i != center {
				out = append(out, [2]int{center, i})
			}
		}
		return out
	case LinkHierarchical:
		return hierarchicalPairs(n, orDefault(l.Groups, DefaultLinkGroups))
	default:
		return nil
	}
}

func sequentialPairs(n int) [][2]int {
	out := make([][2]int, 0, n-1)
	for i := 0; i+1 < n; i++ {
		out = append(out, [2]int{i, i + 1})
	}

	return out
}

// bernoulliPairs keeps each i<j with probability prob(i, j); one draw per pair.
func bernoulliPairs(n int, s *rng.Stream, prob func(i, j int) float64) [][2]int {
	var out [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if s.Float64() < prob(i, j) {
				out = append(out, [2]int{i, j})
			}
		}
	}

	return out
}

// preferentialPairs grows a Barabási–Albert graph: a star on m+1 instances,
// then every further instance links to m distinct earlier instances drawn
// with probability proportional to their degree.
func preferentialPairs(n, m int, s *rng.Stream) [][2]int {
	if m > n-1 {
		m = n - 1
	}
	var out [][2]int
	var repeated []int // each instance appears once per incident link
	for i := 1; i <= m; i++ {
		out = append(out, [2]int{0, i})
		repeated = append(repeated, 0, i)
	}
	for src := m + 1; src < n; src++ {
		chosen := make(map[int]struct{}, m)
		targets := make([]int, 0, m)
		for len(targets) < m {
			t := repeated[s.Intn(len(repeated))]
			if _, dup := chosen[t]; dup {
				continue
			}
			chosen[t] = struct{}{}
			targets = append(targets, t)
		}
		for _, t := range targets {
			out = append(out, [2]int{t, src})
			repeated = append(repeated, t, src)
		}
	}

	return out
}

// blockAssignment maps instance index to block; instances past the declared
// sizes fall into the last block.
func blockAssignment(n int, sizes []int) []int {
	out := make([]int, 0, n)
	for b, size := range sizes {
		for k := 0; k < size && len(out) < n; k++ {
			out = append(out, b)
		}
	}
	for len(out) < n {
		out = append(out, len(sizes)-1)
	}

	return out
}

// hierarchicalPairs splits n instances into groups of n/groups (remainder to
// the first groups), links each group as a clique, then chains group leaders.
func hierarchicalPairs(n, groups int) [][2]int {
	if groups > n {
		groups = n
	}
	var out [][2]int
	leaders := make([]int, 0, groups)
	start := 0
	for g := 0; g < groups; g++ {
		size := n / groups
		if g < n%groups {
			size++
		}
		leaders = append(leaders, start)
		for u := start; u < start+size; u++ {
			for v := u + 1; v < start+size; v++ {
				out = append(out, [2]int{u, v})
			}
		}
		start += size
	}
	for i := 0; i+1 < len(leaders); i++ {
		out = append(out, [2]int{leaders[i], leaders[i+1]})
	}

	return out
}

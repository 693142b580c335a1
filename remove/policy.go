// SPDX-License-Identifier: MIT
// Package: lvsynth/remove
//
// policy.go — the removal policy and its kinds.
//
// Contract:
//   • A Policy is pure data; it is evaluated against the graph at removal time.
//   • Count and Fraction are exclusive; Fraction is of the current node count,
//     rounded to nearest.
//   • Targeted removes exactly the named IDs and role holders; it takes
//     neither Count nor Fraction.

package remove

import (
	"fmt"
	"math"
	"strings"
)

// Kind selects how victims are chosen.
type Kind uint8

const (
	// Uniform draws nodes without replacement.
	Uniform Kind = iota
	// DegreeBiased draws one node at a time with probability proportional to
	// its current degree; uniform once every remaining degree is zero.
	DegreeBiased
	// Targeted removes IDs and the holders of Roles.
	Targeted
	// MotifGroup concentrates removals inside one motif instance, then takes
	// from the largest instances and tops up uniformly.
	MotifGroup
	// DegreeRank removes the Count highest (or lowest) degree nodes, ties by ID.
	DegreeRank
	// Centrality removes the Count nodes of highest betweenness, ties by ID.
	Centrality
	// ByAttribute removes nodes whose Key attribute equals Value, topped up
	// uniformly when too few match.
	ByAttribute
)

var kindNames = [...]string{"uniform", "degree_biased", "targeted", "motif_group", "degree_rank", "centrality", "by_attribute"}

// String returns the snake_case kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("kind(%d)", k)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if int(k) >= len(kindNames) {
		return nil, fmt.Errorf("kind %d: %w", k, ErrBadPolicy)
	}

	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	want := strings.ToLower(strings.TrimSpace(string(text)))
	for i, n := range kindNames {
		if n == want {
			*k = Kind(i)
			return nil
		}
	}

	return fmt.Errorf("kind %q: %w", text, ErrBadPolicy)
}

// Rank orders DegreeRank.
type Rank uint8

const (
	Highest Rank = iota
	Lowest
)

// MarshalText implements encoding.TextMarshaler.
func (r Rank) MarshalText() ([]byte, error) {
	if r == Lowest {
		return []byte("lowest"), nil
	}

	return []byte("highest"), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Rank) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "highest", "":
		*r = Highest
	case "lowest":
		*r = Lowest
	default:
		return fmt.Errorf("rank %q: %w", text, ErrBadPolicy)
	}

	return nil
}

// Policy describes one removal.
type Policy struct {
	Kind     Kind    `json:"kind" yaml:"kind"`
	Count    int     `json:"count,omitempty" yaml:"count,omitempty"`
	Fraction float64 `json:"fraction,omitempty" yaml:"fraction,omitempty"`

	// Targeted.
	IDs   []string `json:"ids,omitempty" yaml:"ids,omitempty"`
	Roles []string `json:"roles,omitempty" yaml:"roles,omitempty"`

	// DegreeRank.
	Rank Rank `json:"rank,omitempty" yaml:"rank,omitempty"`

	// ByAttribute; values compare by their printed form.
	Key   string `json:"key,omitempty" yaml:"key,omitempty"`
	Value any    `json:"value,omitempty" yaml:"value,omitempty"`
}

func (p Policy) validate() error {
	if int(p.Kind) >= len(kindNames) {
		return fmt.Errorf("%s: %v: %w", methodRemove, p.Kind, ErrBadPolicy)
	}
	switch {
	case p.Count < 0:
		return fmt.Errorf("%s(%s): count=%d < 0: %w", methodRemove, p.Kind, p.Count, ErrBadPolicy)
	case p.Fraction < 0 || p.Fraction > 1 || math.IsNaN(p.Fraction):
		return fmt.Errorf("%s(%s): fraction=%g outside [0,1]: %w", methodRemove, p.Kind, p.Fraction, ErrBadPolicy)
	case p.Count > 0 && p.Fraction > 0:
		return fmt.Errorf("%s(%s): both count and fraction set: %w", methodRemove, p.Kind, ErrBadPolicy)
	}
	switch p.Kind {
	case Targeted:
		if len(p.IDs) == 0 && len(p.Roles) == 0 {
			return fmt.Errorf("%s(%s): no ids or roles: %w", methodRemove, p.Kind, ErrBadPolicy)
		}
		if p.Count > 0 || p.Fraction > 0 {
			return fmt.Errorf("%s(%s): count or fraction given: %w", methodRemove, p.Kind, ErrBadPolicy)
		}
	case ByAttribute:
		if p.Key == "" {
			return fmt.Errorf("%s(%s): empty key: %w", methodRemove, p.Kind, ErrBadPolicy)
		}
	case DegreeRank:
		if p.Rank != Highest && p.Rank != Lowest {
			return fmt.Errorf("%s(%s): rank %d: %w", methodRemove, p.Kind, p.Rank, ErrBadPolicy)
		}
	}
	if p.Kind != Targeted && (len(p.IDs) > 0 || len(p.Roles) > 0) {
		return fmt.Errorf("%s(%s): ids or roles outside targeted: %w", methodRemove, p.Kind, ErrBadPolicy)
	}

	return nil
}

// count resolves the number of removals against n present nodes.
func (p Policy) count(n int) int {
	if p.Fraction > 0 {
		return int(math.Round(p.Fraction * float64(n)))
	}

	return p.Count
}

// random reports whether the kind consults the stream.
func (k Kind) random() bool {
	switch k {
	case Uniform, DegreeBiased, MotifGroup, ByAttribute:
		return true
	}

	return false
}

// SPDX-License-Identifier: MIT
// Package: lvsynth/motif
//
// kind.go — the closed set of built-in motif kinds and the Spec that sizes them.
//
// Contract:
//   • Kind is a tagged variant; dispatch is a table lookup, never string matching
//     beyond ParseKind/ParseSpec at the configuration boundary.
//   • Spec.Size == 0 selects the kind's default size.
//   • Sizes below the kind minimum fail with ErrTooFewNodes.

package motif

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind enumerates the built-in motif shapes.
type Kind uint8

const (
	// Cycle is a ring C_n; Size = node count (≥3). Cycle of size 3 is a triangle.
	Cycle Kind = iota + 1
	// House is a square with a triangular roof (5 nodes, 6 edges); Size is ignored.
	House
	// Chain is a path P_n; Size = node count (≥2).
	Chain
	// Star is a hub with Size leaves (≥1).
	Star
	// Gate is an entry and an exit joined by two parallel arms of Size nodes (≥1).
	Gate
	// Clique is the complete graph K_n; Size = node count (≥2).
	Clique
	// Wheel is a hub joined to every node of a rim cycle of Size nodes (≥3).
	Wheel
)

// kindInfo is the per-kind table row.
type kindInfo struct {
	name        string
	minSize     int
	defaultSize int
	sized       bool // false when Size does not apply (House)
	build       func(size int) constructor
}

var kinds = map[Kind]kindInfo{
	Cycle:  {name: "cycle", minSize: minCycleNodes, defaultSize: 3, sized: true, build: cycle},
	House:  {name: "house", build: func(int) constructor { return house() }},
	Chain:  {name: "chain", minSize: minChainNodes, defaultSize: 3, sized: true, build: chain},
	Star:   {name: "star", minSize: minStarLeaves, defaultSize: 3, sized: true, build: star},
	Gate:   {name: "gate", minSize: minGateArm, defaultSize: 1, sized: true, build: gate},
	Clique: {name: "clique", minSize: minCliqueNodes, defaultSize: 4, sized: true, build: clique},
	Wheel:  {name: "wheel", minSize: minWheelRim, defaultSize: 4, sized: true, build: wheel},
}

// aliases maps shorthand spec names to a fixed spec.
var aliases = map[string]Spec{
	"triangle": {Kind: Cycle, Size: 3},
	"square":   {Kind: Cycle, Size: 4},
}

// Kinds returns every built-in kind in declaration order.
func Kinds() []Kind {
	return []Kind{Cycle, House, Chain, Star, Gate, Clique, Wheel}
}

// String returns the lower-case kind name.
func (k Kind) String() string {
	if info, ok := kinds[k]; ok {
		return info.name
	}

	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// MarshalText implements encoding.TextMarshaler (YAML/JSON scalars).
func (k Kind) MarshalText() ([]byte, error) {
	if _, ok := kinds[k]; !ok {
		return nil, fmt.Errorf("MarshalText(%d): %w", k, ErrUnknownKind)
	}

	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed

	return nil
}

// ParseKind resolves a kind name case-insensitively.
func ParseKind(name string) (Kind, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, k := range Kinds() {
		if kinds[k].name == want {
			return k, nil
		}
	}

	return 0, fmt.Errorf("ParseKind(%q): %w", name, ErrUnknownKind)
}

// Spec selects a built-in kind and its size.
type Spec struct {
	Kind Kind `json:"kind" yaml:"kind"`
	Size int  `json:"size,omitempty" yaml:"size,omitempty"`
}

// ParseSpec reads "<kind>" or "<kind>_<size>" ("house", "cycle_4", "star_5"),
// plus the aliases "triangle" and "square".
func ParseSpec(text string) (Spec, error) {
	t := strings.ToLower(strings.TrimSpace(text))
	if s, ok := aliases[t]; ok {
		return s, nil
	}
	name, sizeText, hasSize := strings.Cut(t, "_")
	k, err := ParseKind(name)
	if err != nil {
		return Spec{}, fmt.Errorf("ParseSpec(%q): %w", text, ErrUnknownKind)
	}
	s := Spec{Kind: k}
	if hasSize {
		n, convErr := strconv.Atoi(sizeText)
		if convErr != nil {
			return Spec{}, fmt.Errorf("ParseSpec(%q): size %q: %w", text, sizeText, ErrUnknownKind)
		}
		s.Size = n
	}

	return s, nil
}

// resolved returns s with the default size applied, validating the minimum.
func (s Spec) resolved() (Spec, kindInfo, error) {
	info, ok := kinds[s.Kind]
	if !ok {
		return s, info, fmt.Errorf("Spec(%d): %w", s.Kind, ErrUnknownKind)
	}
	if !info.sized {
		return Spec{Kind: s.Kind}, info, nil
	}
	if s.Size == 0 {
		s.Size = info.defaultSize
	}
	if s.Size < info.minSize {
		return s, info, fmt.Errorf("%s: size=%d < min=%d: %w", info.name, s.Size, info.minSize, ErrTooFewNodes)
	}

	return s, info, nil
}

// Name returns the motif name produced by Build: "house" or "<kind>_<size>".
func (s Spec) Name() string {
	info, ok := kinds[s.Kind]
	if !ok {
		return s.Kind.String()
	}
	if !info.sized {
		return info.name
	}
	size := s.Size
	if size == 0 {
		size = info.defaultSize
	}

	return info.name + "_" + strconv.Itoa(size)
}

// Build instantiates the template described by s.
//
// Errors:
//   - ErrUnknownKind, ErrTooFewNodes.
func Build(s Spec) (*Motif, error) {
	r, info, err := s.resolved()
	if err != nil {
		return nil, err
	}
	d := newDraft()
	if err = info.build(r.Size)(d); err != nil {
		return nil, err
	}

	return New(r.Name(), d.g, d.roles)
}

// MustBuild is Build for static specs in tests and examples; it panics on error.
func MustBuild(s Spec) *Motif {
	m, err := Build(s)
	if err != nil {
		panic(err)
	}

	return m
}

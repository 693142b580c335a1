// SPDX-License-Identifier: MIT
// Package: lvsynth/compose
//
// plan.go — the CompositionPlan and its validation.
//
// Contract:
//   • A Plan is a plain value; Compose never mutates it.
//   • Zero-valued link parameters select documented defaults.
//   • Validation runs before any node is allocated.

package compose

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvsynth/core"
	"github.com/katalvlaran/lvsynth/motif"
)

// Strategy selects how motif instances are joined.
type Strategy uint8

const (
	// DisjointUnion keeps instances node-disjoint.
	DisjointUnion Strategy = iota
	// AnchorMerge unifies the nodes that play the same anchor role.
	AnchorMerge
	// RandomAttachment adds stream-drawn cross-instance edges up to a target.
	RandomAttachment
)

var strategyNames = [...]string{"disjoint_union", "anchor_merge", "random_attachment"}

// String returns the snake_case name of st.
func (st Strategy) String() string {
	if int(st) < len(strategyNames) {
		return strategyNames[st]
	}

	return fmt.Sprintf("strategy(%d)", st)
}

// MarshalText implements encoding.TextMarshaler.
func (st Strategy) MarshalText() ([]byte, error) {
	if int(st) >= len(strategyNames) {
		return nil, fmt.Errorf("strategy %d: %w", st, ErrBadPlan)
	}

	return []byte(st.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (st *Strategy) UnmarshalText(text []byte) error {
	want := strings.ToLower(strings.TrimSpace(string(text)))
	for i, n := range strategyNames {
		if n == want {
			*st = Strategy(i)
			return nil
		}
	}

	return fmt.Errorf("strategy %q: %w", text, ErrBadPlan)
}

// Request asks for one instance of Motif. Attrs are written on every node of
// the instance after the template attributes.
type Request struct {
	Motif *motif.Motif
	Attrs core.Attrs
}

// Repeat returns n requests for m, sharing attrs.
func Repeat(m *motif.Motif, n int, attrs core.Attrs) []Request {
	out := make([]Request, n)
	for i := range out {
		out[i] = Request{Motif: m, Attrs: attrs}
	}

	return out
}

// Plan describes one composition.
type Plan struct {
	// Requests are instantiated in order; order breaks attribute ties.
	Requests []Request
	// Strategy joins the instances.
	Strategy Strategy
	// Anchors lists the roles unified by AnchorMerge.
	Anchors []string
	// TargetEdges is the absolute edge total for RandomAttachment.
	TargetEdges int
	// TargetDensity is the fraction of the simple-graph maximum for
	// RandomAttachment; mutually exclusive with TargetEdges.
	TargetDensity float64
	// Links connects instances at motif level; the zero value adds nothing.
	Links Links
	// ExtraNodes are appended after composition, each attached to one existing node.
	ExtraNodes int
	// ExtraEdges are uniform non-adjacent pairs added last.
	ExtraEdges int
	// Directed builds a directed graph; motif edges keep their orientation.
	Directed bool
}

// needsStream reports whether p draws from the composition stream.
func (p Plan) needsStream() bool {
	return p.Strategy == RandomAttachment ||
		(p.Links.Pattern != LinkNone && len(p.Requests) > 1) ||
		p.ExtraNodes > 0 || p.ExtraEdges > 0
}

// validate checks p without touching a graph.
func (p Plan) validate() error {
	for i, r := range p.Requests {
		if r.Motif == nil {
			return fmt.Errorf("%s: request %d: nil motif: %w", methodCompose, i, ErrBadPlan)
		}
	}
	switch p.Strategy {
	case DisjointUnion:
	case AnchorMerge:
		if len(p.Anchors) == 0 {
			return fmt.Errorf("%s: anchor_merge without anchors: %w", methodCompose, ErrBadPlan)
		}
		for _, a := range p.Anchors {
			if a == "" {
				return fmt.Errorf("%s: empty anchor role: %w", methodCompose, ErrBadPlan)
			}
		}
	case RandomAttachment:
		switch {
		case p.TargetEdges < 0:
			return fmt.Errorf("%s: target_edges=%d < 0: %w", methodCompose, p.TargetEdges, ErrBadPlan)
		case p.TargetDensity < 0 || p.TargetDensity > 1:
			return fmt.Errorf("%s: target_density=%g outside [0,1]: %w", methodCompose, p.TargetDensity, ErrBadPlan)
		case p.TargetEdges > 0 && p.TargetDensity > 0:
			return fmt.Errorf("%s: both target_edges and target_density set: %w", methodCompose, ErrBadPlan)
		case p.TargetEdges == 0 && p.TargetDensity == 0:
			return fmt.Errorf("%s: random_attachment needs a target: %w", methodCompose, ErrBadPlan)
		}
	default:
		return fmt.Errorf("%s: %v: %w", methodCompose, p.Strategy, ErrBadPlan)
	}
	if p.ExtraNodes < 0 || p.ExtraEdges < 0 {
		return fmt.Errorf("%s: extra_nodes=%d extra_edges=%d: %w", methodCompose, p.ExtraNodes, p.ExtraEdges, ErrBadPlan)
	}

	return p.Links.validate(len(p.Requests))
}

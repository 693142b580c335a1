// SPDX-License-Identifier: MIT
// Package: lvsynth/perturb
//
// types.go — op kinds, budget, weights and the report.

package perturb

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/lvsynth/core"
)

// Kind is one atomic edit.
type Kind uint8

const (
	AddEdge Kind = iota
	RemoveEdge
	RewireEdge
	ToggleAttribute
)

var kindNames = [...]string{"add_edge", "remove_edge", "rewire_edge", "toggle_attribute"}

// Kinds returns every op kind in weight order.
func Kinds() []Kind { return []Kind{AddEdge, RemoveEdge, RewireEdge, ToggleAttribute} }

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
		return nil, fmt.Errorf("kind %d: %w", k, ErrBadWeights)
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

	return fmt.Errorf("kind %q: %w", text, ErrBadWeights)
}

// Base is what a fractional budget is a fraction of.
type Base uint8

const (
	Edges Base = iota
	Nodes
)

// MarshalText implements encoding.TextMarshaler.
func (b Base) MarshalText() ([]byte, error) {
	switch b {
	case Edges:
		return []byte("edges"), nil
	case Nodes:
		return []byte("nodes"), nil
	}

	return nil, fmt.Errorf("base %d: %w", b, ErrBadBudget)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Base) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "edges":
		*b = Edges
	case "nodes":
		*b = Nodes
	default:
		return fmt.Errorf("base %q: %w", text, ErrBadBudget)
	}

	return nil
}

// Budget is the number of ops to apply: an absolute Count, or a Fraction of
// the current edge or node count. The zero Budget is a no-op.
type Budget struct {
	Count    int     `json:"count,omitempty" yaml:"count,omitempty"`
	Fraction float64 `json:"fraction,omitempty" yaml:"fraction,omitempty"`
	Of       Base    `json:"of,omitempty" yaml:"of,omitempty"`
}

// resolve turns b into an op count against g, rounding to nearest.
func (b Budget) resolve(g *core.Graph) (int, error) {
	switch {
	case b.Count < 0:
		return 0, fmt.Errorf("%s: count=%d < 0: %w", methodPerturb, b.Count, ErrBadBudget)
	case b.Fraction < 0 || b.Fraction > 1 || math.IsNaN(b.Fraction):
		return 0, fmt.Errorf("%s: fraction=%g outside [0,1]: %w", methodPerturb, b.Fraction, ErrBadBudget)
	case b.Count > 0 && b.Fraction > 0:
		return 0, fmt.Errorf("%s: both count and fraction set: %w", methodPerturb, ErrBadBudget)
	case b.Fraction > 0:
		base := g.EdgeCount()
		if b.Of == Nodes {
			base = g.VertexCount()
		}
		return int(math.Round(b.Fraction * float64(base))), nil
	}

	return b.Count, nil
}

// Weights are the relative draw probabilities of each kind.
type Weights struct {
	AddEdge         float64 `json:"add_edge,omitempty" yaml:"add_edge,omitempty"`
	RemoveEdge      float64 `json:"remove_edge,omitempty" yaml:"remove_edge,omitempty"`
	RewireEdge      float64 `json:"rewire_edge,omitempty" yaml:"rewire_edge,omitempty"`
	ToggleAttribute float64 `json:"toggle_attribute,omitempty" yaml:"toggle_attribute,omitempty"`
}

// vector returns the weights indexed by Kind.
func (w Weights) vector() []float64 {
	return []float64{w.AddEdge, w.RemoveEdge, w.RewireEdge, w.ToggleAttribute}
}

func (w Weights) validate() error {
	positive := 0
	for i, v := range w.vector() {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s: %s=%g: %w", methodPerturb, Kind(i), v, ErrBadWeights)
		}
		if v > 0 {
			positive++
		}
	}
	if positive == 0 {
		return fmt.Errorf("%s: all weights zero: %w", methodPerturb, ErrBadWeights)
	}

	return nil
}

// Status tells whether a drawn op changed the graph.
type Status uint8

const (
	Applied Status = iota
	Skipped
)

// String returns "applied" or "skipped".
func (st Status) String() string {
	if st == Skipped {
		return "skipped"
	}

	return "applied"
}

// MarshalText implements encoding.TextMarshaler.
func (st Status) MarshalText() ([]byte, error) { return []byte(st.String()), nil }

// Op records one drawn edit.
//
//	add_edge          From-To is the new edge, NewEdge its ID
//	remove_edge       Edge, From-To describe the removed edge
//	rewire_edge       Edge (From-To) became NewEdge (From-NewTo)
//	toggle_attribute  Node's Key went from Old to New
type Op struct {
	Seq     int    `json:"seq" yaml:"seq"`
	Kind    Kind   `json:"kind" yaml:"kind"`
	Status  Status `json:"status" yaml:"status"`
	Edge    string `json:"edge,omitempty" yaml:"edge,omitempty"`
	From    string `json:"from,omitempty" yaml:"from,omitempty"`
	To      string `json:"to,omitempty" yaml:"to,omitempty"`
	NewTo   string `json:"new_to,omitempty" yaml:"new_to,omitempty"`
	NewEdge string `json:"new_edge,omitempty" yaml:"new_edge,omitempty"`
	Node    string `json:"node,omitempty" yaml:"node,omitempty"`
	Key     string `json:"key,omitempty" yaml:"key,omitempty"`
	Old     any    `json:"old,omitempty" yaml:"old,omitempty"`
	New     any    `json:"new,omitempty" yaml:"new,omitempty"`
	Reason  string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// Report is the full record of one Perturb call.
type Report struct {
	Ops         []Op              `json:"ops" yaml:"ops"`
	Budget      int               `json:"budget" yaml:"budget"`
	Applied     int               `json:"applied" yaml:"applied"`
	Skipped     int               `json:"skipped" yaml:"skipped"`
	Exhausted   bool              `json:"exhausted" yaml:"exhausted"`
	Added       []core.EdgeRecord `json:"added,omitempty" yaml:"added,omitempty"`
	Removed     []core.EdgeRecord `json:"removed,omitempty" yaml:"removed,omitempty"`
	NodesBefore int               `json:"nodes_before" yaml:"nodes_before"`
	NodesAfter  int               `json:"nodes_after" yaml:"nodes_after"`
	EdgesBefore int               `json:"edges_before" yaml:"edges_before"`
	EdgesAfter  int               `json:"edges_after" yaml:"edges_after"`
}

// AppliedOf returns how many ops of kind k were applied.
func (r *Report) AppliedOf(k Kind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == k && op.Status == Applied {
			n++
		}
	}

	return n
}

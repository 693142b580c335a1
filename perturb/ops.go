// SPDX-License-Identifier: MIT
// Package: lvsynth/perturb
//
// ops.go — eligibility, target selection and application of each kind.
//
// Eligible elements are always enumerated in sorted order (vertices
// lexicographically, edges by ID) before the stream is consulted.

package perturb

import (
	"fmt"

	"github.com/katalvlaran/lvsynth/core"
	"github.com/katalvlaran/lvsynth/rng"
)

// Skip reasons.
const (
	reasonNoOpenNode   = "no node has a non-neighbor"
	reasonNoEdge       = "graph has no edges"
	reasonNoRewireable = "no edge endpoint has a non-neighbor"
	reasonNoNode       = "graph has no nodes"
)

// engine is the working state of one Perturb call.
type engine struct {
	g    *core.Graph
	s    *rng.Stream
	opts Options
}

// apply runs one op of kind k. A nil error with Status Skipped means no target.
func (e *engine) apply(k Kind) (Op, error) {
	switch k {
	case AddEdge:
		return e.addEdge()
	case RemoveEdge:
		return e.removeEdge()
	case RewireEdge:
		return e.rewireEdge()
	case ToggleAttribute:
		return e.toggle()
	}

	return Op{}, fmt.Errorf("kind %d: %w", k, ErrBadWeights)
}

func skipped(reason string) Op { return Op{Status: Skipped, Reason: reason} }

func (e *engine) addEdge() (Op, error) {
	var open []string
	for _, v := range e.g.Vertices() {
		if len(e.nonNeighbors(v, "")) > 0 {
			open = append(open, v)
		}
	}
	if len(open) == 0 {
		return skipped(reasonNoOpenNode), nil
	}
	u := open[e.pickNode(open)]
	cands := e.nonNeighbors(u, "")
	w := cands[e.pickNode(cands)]

	eid, err := e.g.AddEdge(u, w)
	if err != nil {
		return Op{}, err
	}

	return Op{Status: Applied, From: u, To: w, NewEdge: eid}, nil
}

func (e *engine) removeEdge() (Op, error) {
	edges := e.g.Edges()
	if len(edges) == 0 {
		return skipped(reasonNoEdge), nil
	}
	victim := edges[e.pickEdge(edges)]
	if err := e.g.RemoveEdge(victim.ID); err != nil {
		return Op{}, err
	}

	return Op{Status: Applied, Edge: victim.ID, From: victim.From, To: victim.To}, nil
}

// rewireEdge replaces (u,v) by (u,w), w a non-neighbor of u, keeping attrs.
func (e *engine) rewireEdge() (Op, error) {
	var eligible []*core.Edge
	for _, ed := range e.g.Edges() {
		if len(e.nonNeighbors(ed.From, ed.To)) > 0 {
			eligible = append(eligible, ed)
		}
	}
	if len(eligible) == 0 {
		return skipped(reasonNoRewireable), nil
	}
	ed := eligible[e.pickEdge(eligible)]
	cands := e.nonNeighbors(ed.From, ed.To)
	w := cands[e.pickNode(cands)]

	if err := e.g.RemoveEdge(ed.ID); err != nil {
		return Op{}, err
	}
	eid, err := e.g.AddEdge(ed.From, w, core.WithEdgeAttrs(ed.Attrs))
	if err != nil {
		return Op{}, err
	}

	return Op{Status: Applied, Edge: ed.ID, From: ed.From, To: ed.To, NewTo: w, NewEdge: eid}, nil
}

// toggle flips a boolean node attribute; an absent or non-bool value reads as false.
func (e *engine) toggle() (Op, error) {
	nodes := e.g.Vertices()
	if len(nodes) == 0 {
		return skipped(reasonNoNode), nil
	}
	v := nodes[e.pickNode(nodes)]
	key := e.opts.ToggleKey
	old, _ := e.g.VertexAttr(v, key)
	cur, _ := old.(bool)
	if err := e.g.SetVertexAttr(v, key, !cur); err != nil {
		return Op{}, err
	}

	return Op{Status: Applied, Node: v, Key: key, Old: old, New: !cur}, nil
}

// nonNeighbors returns the sorted nodes w ∉ {u, exclude} with no u→w edge.
func (e *engine) nonNeighbors(u, exclude string) []string {
	nbrs, err := e.g.NeighborIDs(u)
	if err != nil {
		return nil
	}
	adj := make(map[string]struct{}, len(nbrs)+2)
	for _, n := range nbrs {
		adj[n] = struct{}{}
	}
	adj[u] = struct{}{}
	if exclude != "" {
		adj[exclude] = struct{}{}
	}
	var out []string
	for _, w := range e.g.Vertices() {
		if _, ok := adj[w]; !ok {
			out = append(out, w)
		}
	}

	return out
}

// pickNode draws an index into nodes per the selection rule.
func (e *engine) pickNode(nodes []string) int {
	if e.opts.Selection == DegreeWeighted {
		w := make([]float64, len(nodes))
		for i, n := range nodes {
			d, _ := e.g.Degree(n)
			w[i] = float64(d)
		}
		if i := e.s.Pick(w); i >= 0 {
			return i
		}
	}

	return e.s.Intn(len(nodes))
}

// pickEdge draws an index into edges; degree weight is the endpoint degree sum.
func (e *engine) pickEdge(edges []*core.Edge) int {
	if e.opts.Selection == DegreeWeighted {
		w := make([]float64, len(edges))
		for i, ed := range edges {
			du, _ := e.g.Degree(ed.From)
			dv, _ := e.g.Degree(ed.To)
			w[i] = float64(du + dv)
		}
		if i := e.s.Pick(w); i >= 0 {
			return i
		}
	}

	return e.s.Intn(len(edges))
}

// SPDX-License-Identifier: MIT
// Package: lvsynth/remove
//
// remove.go — Remove and its report.
//
// Contract:
//   • The input graph is never modified; victims are removed from a clone,
//     one at a time, together with their incident edges.
//   • Candidates are enumerated sorted before the stream is consulted.
//   • Connectivity is measured, never repaired.

package remove

import (
	"fmt"

	"github.com/katalvlaran/lvsynth/bfs"
	"github.com/katalvlaran/lvsynth/compose"
	"github.com/katalvlaran/lvsynth/core"
	"github.com/katalvlaran/lvsynth/rng"
)

const methodRemove = "Remove"

// Report records one removal.
type Report struct {
	Policy    Policy   `json:"policy" yaml:"policy"`
	Requested int      `json:"requested" yaml:"requested"`
	Removed   []string `json:"removed" yaml:"removed"`

	NodesBefore int `json:"nodes_before" yaml:"nodes_before"`
	NodesAfter  int `json:"nodes_after" yaml:"nodes_after"`
	EdgesBefore int `json:"edges_before" yaml:"edges_before"`
	EdgesAfter  int `json:"edges_after" yaml:"edges_after"`

	// Weakly connected components before and after.
	Before bfs.Summary `json:"before" yaml:"before"`
	After  bfs.Summary `json:"after" yaml:"after"`
}

// Remove deletes nodes from a clone of g as p directs. prov is needed only
// for Targeted roles and is preferred over the motif_id attribute by
// MotifGroup. s may be nil for Targeted, DegreeRank and Centrality.
//
// Errors:
//   - ErrGraphNil, ErrBadPolicy, ErrNoProvenance, rng.ErrNilStream (ErrConfiguration).
//   - ErrShortfall (ErrCapacity): more removals requested than nodes present.
//   - core.ErrVertexNotFound, ErrRoleNotFound (ErrNotFound): Targeted misses.
//
// Complexity: O(k·(V+E)) for DegreeBiased, O(V·E) for Centrality,
// O(V log V + k·d) otherwise.
func Remove(g *core.Graph, p Policy, s *rng.Stream, prov *compose.Provenance) (*core.Graph, *Report, error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}
	if err := p.validate(); err != nil {
		return nil, nil, err
	}
	if len(p.Roles) > 0 && prov.Len() == 0 {
		return nil, nil, fmt.Errorf("%s(%s): %w", methodRemove, p.Kind, ErrNoProvenance)
	}
	n := g.VertexCount()
	want := p.count(n)
	if want > n {
		return nil, nil, fmt.Errorf("%s(%s): %d requested, %d present, short by %d: %w",
			methodRemove, p.Kind, want, n, want-n, ErrShortfall)
	}
	if p.Kind.random() && want > 0 && s == nil {
		return nil, nil, fmt.Errorf("%s(%s): %w", methodRemove, p.Kind, rng.ErrNilStream)
	}

	before, err := bfs.Summarize(g)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", methodRemove, err)
	}
	r := &remover{g: g.Clone(), s: s, prov: prov}
	rep := &Report{
		Policy:      p,
		Requested:   want,
		NodesBefore: n,
		EdgesBefore: g.EdgeCount(),
		Before:      before,
	}

	var victims []string
	switch p.Kind {
	case Uniform:
		victims = r.sample(r.g.Vertices(), want)
	case DegreeBiased:
		err = r.degreeBiased(want)
	case Targeted:
		victims, err = r.targeted(p)
		rep.Requested = len(victims)
	case MotifGroup:
		victims = r.motifGroup(want)
	case DegreeRank:
		victims = r.degreeRank(want, p.Rank)
	case Centrality:
		victims, err = r.centrality(want)
	case ByAttribute:
		victims = r.byAttribute(want, p.Key, p.Value)
	}
	if err != nil {
		return nil, nil, err
	}
	for _, id := range victims {
		if err = r.drop(id); err != nil {
			return nil, nil, err
		}
	}

	after, err := bfs.Summarize(r.g)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", methodRemove, err)
	}
	rep.Removed = r.removed
	if rep.Removed == nil {
		rep.Removed = []string{}
	}
	rep.NodesAfter = r.g.VertexCount()
	rep.EdgesAfter = r.g.EdgeCount()
	rep.After = after

	return r.g, rep, nil
}

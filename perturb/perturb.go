// SPDX-License-Identifier: MIT
// Package: lvsynth/perturb
//
// perturb.go — Perturb: the budgeted edit loop.
//
// Loop contract:
//   • One kind is drawn per iteration from the positive weights.
//   • An op with no eligible target is recorded as skipped and does not
//     consume budget.
//   • When every positively weighted kind has been skipped since the last
//     applied op, no further op can succeed: the loop stops, Exhausted.

package perturb

import (
	"fmt"

	"github.com/katalvlaran/lvsynth/core"
	"github.com/katalvlaran/lvsynth/rng"
)

const methodPerturb = "Perturb"

// Perturb applies a budget of weighted random edits to a clone of g.
// g itself is never modified.
//
// Errors (all core.ErrConfiguration):
//   - ErrGraphNil, ErrBadBudget, ErrBadWeights, ErrOptionViolation.
//   - rng.ErrNilStream when the resolved budget is positive and s is nil.
//
// Complexity: O(B·(V+E)) for a budget of B ops.
func Perturb(g *core.Graph, budget Budget, weights Weights, s *rng.Stream, opts ...Option) (*core.Graph, *Report, error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, nil, o.err
	}
	if err := weights.validate(); err != nil {
		return nil, nil, err
	}
	n, err := budget.resolve(g)
	if err != nil {
		return nil, nil, err
	}
	if n > 0 && s == nil {
		return nil, nil, fmt.Errorf("%s: %w", methodPerturb, rng.ErrNilStream)
	}

	before := g.Snapshot()
	e := &engine{g: g.Clone(), s: s, opts: o}
	rep := &Report{
		Ops:         make([]Op, 0, n),
		Budget:      n,
		NodesBefore: len(before.Nodes),
		EdgesBefore: len(before.Edges),
	}

	vec := weights.vector()
	positive := 0
	for _, w := range vec {
		if w > 0 {
			positive++
		}
	}
	skippedKinds := make(map[Kind]struct{}, positive)
	for rep.Applied < n {
		k := Kind(s.Pick(vec))
		op, err := e.apply(k)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: op %d (%s): %w", methodPerturb, len(rep.Ops), k, err)
		}
		op.Seq = len(rep.Ops)
		op.Kind = k
		rep.Ops = append(rep.Ops, op)

		if op.Status == Applied {
			rep.Applied++
			clear(skippedKinds)
			continue
		}
		rep.Skipped++
		skippedKinds[k] = struct{}{}
		if len(skippedKinds) == positive {
			rep.Exhausted = true
			break
		}
	}

	after := e.g.Snapshot()
	rep.NodesAfter, rep.EdgesAfter = len(after.Nodes), len(after.Edges)
	rep.Added, rep.Removed = diffEdges(before.Edges, after.Edges)

	return e.g, rep, nil
}

// diffEdges returns the records present only in after, then only in before.
// Edge IDs are never reused, so the ID alone identifies an edge.
func diffEdges(before, after []core.EdgeRecord) (added, removed []core.EdgeRecord) {
	old := make(map[string]struct{}, len(before))
	for _, r := range before {
		old[r.ID] = struct{}{}
	}
	now := make(map[string]struct{}, len(after))
	for _, r := range after {
		now[r.ID] = struct{}{}
		if _, ok := old[r.ID]; !ok {
			added = append(added, r)
		}
	}
	for _, r := range before {
		if _, ok := now[r.ID]; !ok {
			removed = append(removed, r)
		}
	}

	return added, removed
}

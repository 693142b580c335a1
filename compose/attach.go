// SPDX-License-Identifier: MIT
// Package: lvsynth/compose
//
// attach.go — random attachment and extras.
//
// Contract:
//   • Candidates are enumerated in sorted order and drawn without
//     replacement, so no loop or duplicate edge is ever produced.
//   • A target above existing edges plus candidates fails up front with
//     ErrUnreachableTarget; nothing is added in that case.

package compose

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvsynth/core"
)

// attach adds cross-instance edges until the plan target is met.
func (c *composer) attach() error {
	n := c.g.VertexCount()
	maxEdges := n * (n - 1) / 2
	if c.plan.Directed {
		maxEdges = n * (n - 1)
	}
	target := c.plan.TargetEdges
	if target == 0 {
		target = int(math.Round(c.plan.TargetDensity * float64(maxEdges)))
	}

	have := c.g.EdgeCount()
	if target <= have {
		return nil
	}
	cands := c.crossPairs()
	need := target - have
	if need > len(cands) {
		return fmt.Errorf("%s: target=%d > edges=%d + candidates=%d: %w",
			methodCompose, target, have, len(cands), ErrUnreachableTarget)
	}

	return c.addPairs(cands, c.s.Sample(len(cands), need), OriginAttach)
}

// crossPairs lists every non-adjacent pair of nodes that share no instance.
func (c *composer) crossPairs() [][2]string {
	nodes := c.g.Vertices()
	inst := make(map[string]map[int]struct{}, len(nodes))
	for _, id := range nodes {
		set := make(map[int]struct{})
		for _, o := range c.prov.origins[id] {
			set[o.Instance] = struct{}{}
		}
		inst[id] = set
	}
	shared := func(a, b string) bool {
		for i := range inst[a] {
			if _, ok := inst[b][i]; ok {
				return true
			}
		}
		return false
	}

	return c.pairs(nodes, func(a, b string) bool { return !shared(a, b) })
}

// pairs enumerates non-adjacent pairs of nodes accepted by keep; ordered
// pairs for directed graphs, unordered otherwise.
func (c *composer) pairs(nodes []string, keep func(a, b string) bool) [][2]string {
	var out [][2]string
	for i, a := range nodes {
		for _, b := range nodes[i+1:] {
			if !keep(a, b) {
				continue
			}
			if !c.g.HasEdge(a, b) {
				out = append(out, [2]string{a, b})
			}
			if c.plan.Directed && !c.g.HasEdge(b, a) {
				out = append(out, [2]string{b, a})
			}
		}
	}

	return out
}

func (c *composer) addPairs(cands [][2]string, picks []int, origin string) error {
	for _, idx := range picks {
		p := cands[idx]
		if _, err := c.g.AddEdge(p[0], p[1], core.WithEdgeAttr(AttrOrigin, origin)); err != nil {
			return fmt.Errorf("%s: %s edge %s-%s: %w", methodCompose, origin, p[0], p[1], err)
		}
	}

	return nil
}

// extraNodes appends plan.ExtraNodes nodes, each joined to one existing node.
func (c *composer) extraNodes() error {
	for k := 0; k < c.plan.ExtraNodes; k++ {
		existing := c.g.Vertices()
		id := c.newID()
		if err := c.g.InsertVertex(id, core.Attrs{AttrMotif: OriginExtra}); err != nil {
			return fmt.Errorf("%s: extra node %s: %w", methodCompose, id, err)
		}
		if len(existing) == 0 {
			continue
		}
		peer := existing[c.s.Intn(len(existing))]
		if _, err := c.g.AddEdge(id, peer, core.WithEdgeAttr(AttrOrigin, OriginExtra)); err != nil {
			return fmt.Errorf("%s: extra node %s: %w", methodCompose, id, err)
		}
	}

	return nil
}

// extraEdges adds plan.ExtraEdges uniform non-adjacent pairs.
func (c *composer) extraEdges() error {
	if c.plan.ExtraEdges == 0 {
		return nil
	}
	cands := c.pairs(c.g.Vertices(), func(string, string) bool { return true })
	if c.plan.ExtraEdges > len(cands) {
		return fmt.Errorf("%s: extra_edges=%d > candidates=%d: %w",
			methodCompose, c.plan.ExtraEdges, len(cands), ErrUnreachableTarget)
	}

	return c.addPairs(cands, c.s.Sample(len(cands), c.plan.ExtraEdges), OriginExtra)
}

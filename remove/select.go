// SPDX-License-Identifier: MIT
// Package: lvsynth/remove
//
// select.go — victim selection per policy kind.

package remove

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvsynth/bfs"
	"github.com/katalvlaran/lvsynth/compose"
	"github.com/katalvlaran/lvsynth/core"
	"github.com/katalvlaran/lvsynth/rng"
)

// remover carries the working clone of one Remove call.
type remover struct {
	g       *core.Graph
	s       *rng.Stream
	prov    *compose.Provenance
	removed []string
}

func (r *remover) drop(id string) error {
	if err := r.g.RemoveVertex(id); err != nil {
		return fmt.Errorf("%s: %s: %w", methodRemove, id, err)
	}
	r.removed = append(r.removed, id)

	return nil
}

// sample draws k of ids without replacement, in draw order.
func (r *remover) sample(ids []string, k int) []string {
	if k <= 0 {
		return nil
	}
	idx := r.s.Sample(len(ids), k)
	out := make([]string, len(idx))
	for i, j := range idx {
		out[i] = ids[j]
	}

	return out
}

// degreeBiased removes k nodes, re-reading degrees after each one.
func (r *remover) degreeBiased(k int) error {
	for i := 0; i < k; i++ {
		ids := r.g.Vertices()
		deg := r.g.Degrees()
		w := make([]float64, len(ids))
		for j, id := range ids {
			w[j] = float64(deg[id])
		}
		pick := r.s.Pick(w)
		if pick < 0 {
			pick = r.s.Intn(len(ids))
		}
		if err := r.drop(ids[pick]); err != nil {
			return err
		}
	}

	return nil
}

// targeted lists IDs in the given order, then each role's holders sorted,
// without repeats.
func (r *remover) targeted(p Policy) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, id := range p.IDs {
		if !r.g.HasVertex(id) {
			return nil, fmt.Errorf("%s(%s): %q: %w", methodRemove, p.Kind, id, core.ErrVertexNotFound)
		}
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	for _, role := range p.Roles {
		holders := r.present(r.prov.NodesWithRole(role))
		if len(holders) == 0 {
			return nil, fmt.Errorf("%s(%s): %q: %w", methodRemove, p.Kind, role, ErrRoleNotFound)
		}
		for _, id := range holders {
			if !seen[id] {
				seen[id] = true
				out = append(out, id)
			}
		}
	}

	return out, nil
}

// present keeps the ids still in the graph.
func (r *remover) present(ids []string) []string {
	out := ids[:0:0]
	for _, id := range ids {
		if r.g.HasVertex(id) {
			out = append(out, id)
		}
	}

	return out
}

// groups returns the members of every motif instance, from provenance when
// present, otherwise from the motif_id attribute.
func (r *remover) groups() [][]string {
	var out [][]string
	if n := len(r.prov.Instances()); n > 0 {
		for i := 0; i < n; i++ {
			if members := r.present(r.prov.InstanceNodes(i)); len(members) > 0 {
				out = append(out, members)
			}
		}
		return out
	}

	by := make(map[string][]string)
	for _, id := range r.g.Vertices() {
		if v, ok := r.g.VertexAttr(id, compose.AttrMotifID); ok {
			key := fmt.Sprint(v)
			by[key] = append(by[key], id)
		}
	}
	keys := make([]string, 0, len(by))
	for k := range by {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out = append(out, by[k])
	}

	return out
}

// motifGroup takes k nodes from one random instance large enough; failing
// that, from the largest instances in turn, then uniformly from the rest.
func (r *remover) motifGroup(k int) []string {
	if k == 0 {
		return nil
	}
	groups := r.groups()
	var fit [][]string
	for _, grp := range groups {
		if len(grp) >= k {
			fit = append(fit, grp)
		}
	}
	if len(fit) > 0 {
		return r.sample(fit[r.s.Intn(len(fit))], k)
	}

	sort.SliceStable(groups, func(i, j int) bool { return len(groups[i]) > len(groups[j]) })
	taken := make(map[string]bool, k)
	var out []string
	for _, grp := range groups {
		if len(out) >= k {
			break
		}
		var free []string
		for _, id := range grp {
			if !taken[id] {
				free = append(free, id)
			}
		}
		for _, id := range r.sample(free, min(k-len(out), len(free))) {
			taken[id] = true
			out = append(out, id)
		}
	}
	if len(out) < k {
		var rest []string
		for _, id := range r.g.Vertices() {
			if !taken[id] {
				rest = append(rest, id)
			}
		}
		out = append(out, r.sample(rest, k-len(out))...)
	}

	return out
}

// degreeRank returns the k nodes of highest (or lowest) degree, ties by ID.
func (r *remover) degreeRank(k int, rank Rank) []string {
	ids := r.g.Vertices()
	deg := r.g.Degrees()
	sort.SliceStable(ids, func(i, j int) bool {
		if rank == Lowest {
			return deg[ids[i]] < deg[ids[j]]
		}
		return deg[ids[i]] > deg[ids[j]]
	})

	return ids[:k]
}

// centrality returns the k nodes of highest betweenness, ties by ID.
func (r *remover) centrality(k int) ([]string, error) {
	score, err := bfs.Betweenness(r.g)
	if err != nil {
		return nil, fmt.Errorf("%s(%s): %w", methodRemove, Centrality, err)
	}
	ids := r.g.Vertices()
	sort.SliceStable(ids, func(i, j int) bool { return score[ids[i]] > score[ids[j]] })

	return ids[:k], nil
}

// byAttribute samples k matching nodes, or takes every match and samples the
// remainder from the others.
func (r *remover) byAttribute(k int, key string, value any) []string {
	if k == 0 {
		return nil
	}
	want := fmt.Sprint(value)
	var match, other []string
	for _, id := range r.g.Vertices() {
		if v, ok := r.g.VertexAttr(id, key); ok && fmt.Sprint(v) == want {
			match = append(match, id)
		} else {
			other = append(other, id)
		}
	}
	if len(match) >= k {
		return r.sample(match, k)
	}

	return append(match, r.sample(other, k-len(match))...)
}

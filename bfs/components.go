// SPDX-License-Identifier: MIT
// Package: lvsynth/bfs
//
// components.go — weakly connected components.
//
// Contract:
//   • Direction is ignored (weak connectivity); undirected graphs get their
//     ordinary components.
//   • Components are sorted internally; the list is ordered by size
//     descending, ties by smallest member.

package bfs

import (
	"sort"

	"github.com/katalvlaran/lvsynth/core"
)

// Summary condenses the component structure of a graph.
type Summary struct {
	Components int `json:"components" yaml:"components"`
	Largest    int `json:"largest" yaml:"largest"`
}

// Components returns the weakly connected components of g.
// Complexity: O(V log V + E).
func Components(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	seen := make(map[string]bool, g.VertexCount())
	var out [][]string
	for _, v := range g.Vertices() {
		if seen[v] {
			continue
		}
		res, err := BFS(g, v, WithWeak())
		if err != nil {
			return nil, err
		}
		comp := append([]string(nil), res.Order...)
		for _, id := range comp {
			seen[id] = true
		}
		sort.Strings(comp)
		out = append(out, comp)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return out[i][0] < out[j][0]
	})

	return out, nil
}

// Summarize counts the components of g and the size of the largest.
// An empty graph has zero components of size zero.
func Summarize(g *core.Graph) (Summary, error) {
	comps, err := Components(g)
	if err != nil {
		return Summary{}, err
	}
	s := Summary{Components: len(comps)}
	if len(comps) > 0 {
		s.Largest = len(comps[0])
	}

	return s, nil
}

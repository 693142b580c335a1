// SPDX-License-Identifier: MIT
// Package: lvsynth/bfs
//
// betweenness.go — unweighted betweenness centrality (Brandes 2001).
//
// Contract:
//   • Shortest paths follow edge direction on directed graphs.
//   • Scores are raw pair counts; undirected scores are halved so each
//     unordered pair contributes once.
//   • Sources are processed in sorted order, so float sums are reproducible.

package bfs

import (
	"fmt"

	"github.com/katalvlaran/lvsynth/core"
)

// Betweenness returns the betweenness centrality of every vertex of g.
// Complexity: O(V·E) time, O(V + E) memory.
func Betweenness(g *core.Graph) (map[string]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	verts := g.Vertices()
	adj := make(map[string][]string, len(verts))
	for _, v := range verts {
		nbrs, err := g.NeighborIDs(v)
		if err != nil {
			return nil, fmt.Errorf("bfs: Betweenness: %w", err)
		}
		adj[v] = nbrs
	}

	cb := make(map[string]float64, len(verts))
	for _, v := range verts {
		cb[v] = 0
	}
	for _, s := range verts {
		accumulate(s, adj, cb)
	}
	if !g.Directed() {
		for v := range cb {
			cb[v] /= 2
		}
	}

	return cb, nil
}

// accumulate adds the dependencies of source s to cb.
func accumulate(s string, adj map[string][]string, cb map[string]float64) {
	stack := make([]string, 0, len(adj))
	preds := make(map[string][]string, len(adj))
	sigma := map[string]float64{s: 1}
	dist := map[string]int{s: 0}

	queue := []string{s}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		stack = append(stack, v)
		for _, w := range adj[v] {
			if w == v {
				continue
			}
			if _, ok := dist[w]; !ok {
				dist[w] = dist[v] + 1
				queue = append(queue, w)
			}
			if dist[w] == dist[v]+1 {
				sigma[w] += sigma[v]
				preds[w] = append(preds[w], v)
			}
		}
	}

	delta := make(map[string]float64, len(stack))
	for i := len(stack) - 1; i >= 0; i-- {
		w := stack[i]
		for _, v := range preds[w] {
			delta[v] += sigma[v] / sigma[w] * (1 + delta[w])
		}
		if w != s {
			cb[w] += delta[w]
		}
	}
}

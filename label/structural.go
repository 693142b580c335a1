// SPDX-License-Identifier: MIT
// Package: lvsynth/label
//
// structural.go — cycle-based structural labels.
//
// Edge direction is ignored. A house is the union of a triangle and a
// 4-cycle that share exactly two nodes. Precedence: house (0) over 4-cycle
// (2) over triangle (1); everything else is -1.

package label

import (
	"sort"

	"github.com/katalvlaran/lvsynth/core"
)

// Structural label values.
const (
	HouseLabel    = 0
	TriangleLabel = 1
	SquareLabel   = 2
	NoMotifLabel  = -1
)

type nodeSet map[string]struct{}

func setOf(ids ...string) nodeSet {
	s := make(nodeSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}

	return s
}

func (s nodeSet) subsetOf(t nodeSet) bool {
	for id := range s {
		if _, ok := t[id]; !ok {
			return false
		}
	}

	return true
}

func (s nodeSet) common(t nodeSet) int {
	n := 0
	for id := range s {
		if _, ok := t[id]; ok {
			n++
		}
	}

	return n
}

// StructuralLabels returns the structural label of every node of g.
// Complexity: O(V·d³) for maximum degree d.
func StructuralLabels(g *core.Graph) map[string]int {
	verts := g.Vertices()
	adj := make(map[string]nodeSet, len(verts))
	for _, v := range verts {
		nbrs, _ := g.AdjacentIDs(v)
		set := make(nodeSet, len(nbrs))
		for _, n := range nbrs {
			if n != v {
				set[n] = struct{}{}
			}
		}
		adj[v] = set
	}

	triangles := findTriangles(verts, adj)
	squares := findSquares(verts, adj)

	var houses []nodeSet
	for _, c3 := range triangles {
		for _, c4 := range squares {
			if c3.common(c4) != 2 {
				continue
			}
			h := make(nodeSet, 5)
			for id := range c3 {
				h[id] = struct{}{}
			}
			for id := range c4 {
				h[id] = struct{}{}
			}
			houses = append(houses, h)
		}
	}
	inHouse := func(c nodeSet) bool {
		for _, h := range houses {
			if c.subsetOf(h) {
				return true
			}
		}
		return false
	}

	labels := make(map[string]int, len(verts))
	for _, v := range verts {
		labels[v] = NoMotifLabel
	}
	for _, h := range houses {
		for id := range h {
			labels[id] = HouseLabel
		}
	}
	mark := func(cycles []nodeSet, value int) {
		for _, c := range cycles {
			if inHouse(c) {
				continue
			}
			for id := range c {
				if labels[id] == NoMotifLabel {
					labels[id] = value
				}
			}
		}
	}
	mark(squares, SquareLabel)
	mark(triangles, TriangleLabel)

	return labels
}

// findTriangles lists every triangle once (u < v < w).
func findTriangles(verts []string, adj map[string]nodeSet) []nodeSet {
	var out []nodeSet
	for _, u := range verts {
		for _, v := range sortedSet(adj[u]) {
			if v <= u {
				continue
			}
			for _, w := range sortedSet(adj[v]) {
				if w <= v {
					continue
				}
				if _, ok := adj[u][w]; ok {
					out = append(out, setOf(u, v, w))
				}
			}
		}
	}

	return out
}

// findSquares lists every 4-cycle once: for each diagonal a < c, every pair
// of common neighbors b, d closes a-b-c-d-a.
func findSquares(verts []string, adj map[string]nodeSet) []nodeSet {
	seen := make(map[[4]string]struct{})
	var out []nodeSet
	for _, a := range verts {
		via := make(map[string][]string)
		for _, b := range sortedSet(adj[a]) {
			for _, c := range sortedSet(adj[b]) {
				if c > a {
					via[c] = append(via[c], b)
				}
			}
		}
		for _, c := range sortedKeys(via) {
			bs := via[c]
			for i := 0; i < len(bs); i++ {
				for j := i + 1; j < len(bs); j++ {
					key := [4]string{a, bs[i], c, bs[j]}
					sort.Strings(key[:])
					if _, dup := seen[key]; dup {
						continue
					}
					seen[key] = struct{}{}
					out = append(out, setOf(key[:]...))
				}
			}
		}
	}

	return out
}

func sortedSet(s nodeSet) []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only configuration getters and the Stats summary.
// Policy:
//   - No algorithms here.
//   - Flags are immutable after construction.

package core

// Directed reports whether edges are ordered pairs.
// Complexity: O(1).
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Looped reports whether self-loops are permitted by policy.
// If false, AddEdge(v, v) returns ErrLoopNotAllowed.
// Complexity: O(1).
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges between the same endpoints are permitted.
// If false, a second AddEdge(from, to) returns ErrMultiEdgeNotAllowed.
// Complexity: O(1).
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}

// options reproduces the construction flags of g. Caller holds muVert.
func (g *Graph) options() []GraphOption {
	opts := []GraphOption{WithDirected(g.directed)}
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}

	return opts
}

// Stats produces a read-only snapshot of configuration flags and catalog sizes.
//
// Implementation:
//   - Stage 1: Under muVert.RLock, snapshot flags and the vertex count.
//   - Stage 2: Under muEdgeAdj.RLock, count edges, self-loops and isolated vertices.
//
// The two phases take the locks in the usual order and hold both, so the
// isolated-vertex count is consistent with the vertex catalog.
//
// Complexity: O(V + E).
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	stats := GraphStats{
		Directed:    g.directed,
		AllowsMulti: g.allowMulti,
		AllowsLoops: g.allowLoops,
		VertexCount: len(g.vertices),
		EdgeCount:   len(g.edges),
	}
	for _, e := range g.edges {
		if e.From == e.To {
			stats.SelfLoops++
		}
	}
	for id := range g.vertices {
		if len(g.adjacencyList[id]) == 0 && len(g.inbound[id]) == 0 {
			stats.Isolated++
		}
	}

	return &stats
}

// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - CloneEmpty/Clone carry over nextEdgeID, so edges added to a clone
//     continue the same textual sequence and never collide with copied edges.
// Concurrency:
//   - Read locks for snapshotting; the source graph is never mutated.

package core

import "sync/atomic"

// CloneEmpty returns a new Graph with identical configuration and vertices
// (attributes deep-copied) but no edges.
// Complexity: O(V + total attrs).
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return cloneVertices(g)
}

// Clone returns a deep copy of the Graph: configuration, vertices, edges,
// adjacency and every attribute map.
// Complexity: O(V + E + total attrs).
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := cloneVertices(g)
	for _, e := range g.edges {
		linkEdge(clone, e.clone())
	}

	return clone
}

// cloneVertices builds a fresh graph holding g's flags, counter and vertices.
// Caller holds muVert.
func cloneVertices(g *Graph) *Graph {
	clone := NewGraph(g.options()...)
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))
	for id, v := range g.vertices {
		clone.vertices[id] = &Vertex{ID: id, Attrs: v.Attrs.Clone()}
	}

	return clone
}

// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle, queries and degree.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap and incident-edge removal under muEdgeAdj.

package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under muVert write lock, register the vertex with an empty Attrs map.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id, Attrs: make(Attrs)}

	return nil
}

// InsertVertex adds a new vertex carrying a copy of attrs.
// Unlike AddVertex it is strict: an existing ID returns ErrDuplicateVertex.
//
// Complexity: O(len(attrs)).
func (g *Graph) InsertVertex(id string, attrs Attrs) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return ErrDuplicateVertex
	}
	g.vertices[id] = &Vertex{ID: id, Attrs: attrs.Clone()}

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes a vertex and all incident edges.
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Acquire muVert and muEdgeAdj write locks.
//   - Stage 3: Collect incident edge IDs from the outgoing/mirrored buckets and
//     the inbound index, then unlink each edge.
//   - Stage 4: Delete the vertex record and its buckets.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(deg(v)).
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.vertices[id]; !exists {
		return ErrVertexNotFound
	}

	incident := make(map[string]struct{})
	for _, bucket := range g.adjacencyList[id] {
		for eid := range bucket {
			incident[eid] = struct{}{}
		}
	}
	for _, bucket := range g.inbound[id] {
		for eid := range bucket {
			incident[eid] = struct{}{}
		}
	}
	for eid := range incident {
		removeAdjacency(g, g.edges[eid])
		delete(g.edges, eid)
	}

	delete(g.vertices, id)
	delete(g.adjacencyList, id)
	delete(g.inbound, id)

	return nil
}

// Vertices returns all vertex IDs in lexicographic ascending order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the current number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// Degree returns the number of edge endpoints at id.
//
// Policy:
//   - Undirected: every incident edge counts 1; a self-loop counts 2.
//   - Directed: in-degree + out-degree; a self-loop counts 2 (once each way).
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(number of distinct neighbors).
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}

	return degreeOf(g, id), nil
}

// Degrees returns the degree of every vertex in one pass.
// Complexity: O(V + E).
func (g *Graph) Degrees() map[string]int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make(map[string]int, len(g.vertices))
	for id := range g.vertices {
		out[id] = degreeOf(g, id)
	}

	return out
}

// degreeOf computes the degree of id. Caller holds muEdgeAdj.
func degreeOf(g *Graph, id string) int {
	var d int
	for to, bucket := range g.adjacencyList[id] {
		d += len(bucket)
		if to == id && !g.directed {
			d += len(bucket) // undirected loop: both endpoints at id
		}
	}
	if g.directed {
		for _, bucket := range g.inbound[id] {
			d += len(bucket)
		}
	}

	return d
}

// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle (AddEdge, RemoveEdge) and edge queries.
// Determinism:
//   - Edges() and EdgesBetween() sort by Edge.ID in numeric order (see lessEdgeID).
//   - nextEdgeID() is monotonic ("e" + decimal) and survives Clone.
// Concurrency:
//   - muVert (read) -> muEdgeAdj (write) for insertion; muEdgeAdj alone for removal.

package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

const edgeIDPrefix = "e"

// AddEdge creates a new edge from -> to and returns its unique Edge.ID.
//
// Implementation:
//   - Stage 1: Validate IDs and the loop policy.
//   - Stage 2: Under muVert read lock, require both endpoints to exist.
//   - Stage 3: Under muEdgeAdj write lock, enforce the multi-edge policy,
//     allocate an ID, store the edge and link adjacency (mirrored when undirected).
//
// Behavior highlights:
//   - Endpoints are never created implicitly; a missing endpoint is an error.
//   - Options run after the edge is built, so WithEdgeAttr always sees a non-nil map.
//
// Errors:
//   - ErrEmptyVertexID, ErrLoopNotAllowed, ErrVertexNotFound, ErrMultiEdgeNotAllowed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()

	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}
	if _, ok := g.vertices[from]; !ok {
		return "", ErrVertexNotFound
	}
	if _, ok := g.vertices[to]; !ok {
		return "", ErrVertexNotFound
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti && len(g.adjacencyList[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	e := &Edge{ID: nextEdgeID(g), From: from, To: to, Directed: g.directed, Attrs: make(Attrs)}
	for _, opt := range opts {
		opt(e)
	}
	linkEdge(g, e)

	return e.ID, nil
}

// RemoveEdge deletes the edge with the given ID and unlinks its adjacency.
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	removeAdjacency(g, e)
	delete(g.edges, eid)

	return nil
}

// HasEdge reports whether at least one edge from -> to exists.
// For undirected graphs the pair is unordered.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacencyList[from][to]) > 0
}

// Edge returns a detached copy of the edge with the given ID.
// Returns ErrEdgeNotFound if absent.
// Complexity: O(len(attrs)).
func (g *Graph) Edge(eid string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, ok := g.edges[eid]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e.clone(), nil
}

// EdgesBetween returns the IDs of all edges from -> to (unordered when undirected),
// sorted ascending.
// Complexity: O(k log k) for k parallel edges.
func (g *Graph) EdgesBetween(from, to string) []string {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	bucket := g.adjacencyList[from][to]
	out := make([]string, 0, len(bucket))
	for eid := range bucket {
		out = append(out, eid)
	}
	sort.Slice(out, func(i, j int) bool { return lessEdgeID(out[i], out[j]) })

	return out
}

// Edges returns detached copies of all edges sorted by ID.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e.clone())
	}
	sort.Slice(out, func(i, j int) bool { return lessEdgeID(out[i].ID, out[j].ID) })

	return out
}

// EdgeCount returns the total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// nextEdgeID returns a new unique textual edge ID ("e" + decimal counter).
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, len(edgeIDPrefix)+20)
	buf = append(buf, edgeIDPrefix...)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

// lessEdgeID orders edge IDs by length, then lexicographically, so generated
// IDs sort numerically ("e2" < "e10") and arbitrary IDs still get a total order.
func lessEdgeID(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}

	return a < b
}

// linkEdge stores e and registers it in adjacency. Caller holds muEdgeAdj.
func linkEdge(g *Graph, e *Edge) {
	g.edges[e.ID] = e
	ensureBucket(g.adjacencyList, e.From, e.To)[e.ID] = struct{}{}
	if e.From == e.To {
		if e.Directed {
			ensureBucket(g.inbound, e.To, e.From)[e.ID] = struct{}{}
		}
		return
	}
	if e.Directed {
		ensureBucket(g.inbound, e.To, e.From)[e.ID] = struct{}{}
	} else {
		ensureBucket(g.adjacencyList, e.To, e.From)[e.ID] = struct{}{}
	}
}

// ensureBucket returns index[a][b], creating the nested maps when missing.
func ensureBucket(index map[string]map[string]map[string]struct{}, a, b string) map[string]struct{} {
	inner, ok := index[a]
	if !ok {
		inner = make(map[string]map[string]struct{})
		index[a] = inner
	}
	bucket, ok := inner[b]
	if !ok {
		bucket = make(map[string]struct{})
		inner[b] = bucket
	}

	return bucket
}

// removeAdjacency unlinks e from every index it appears in. Caller holds muEdgeAdj.
func removeAdjacency(g *Graph, e *Edge) {
	dropFromBucket(g.adjacencyList, e.From, e.To, e.ID)
	if e.Directed {
		dropFromBucket(g.inbound, e.To, e.From, e.ID)
	} else if e.From != e.To {
		dropFromBucket(g.adjacencyList, e.To, e.From, e.ID)
	}
}

// dropFromBucket deletes eid from index[a][b] and prunes empty maps.
func dropFromBucket(index map[string]map[string]map[string]struct{}, a, b, eid string) {
	inner := index[a]
	if inner == nil {
		return
	}
	if bucket := inner[b]; bucket != nil {
		delete(bucket, eid)
		if len(bucket) == 0 {
			delete(inner, b)
		}
	}
	if len(inner) == 0 {
		delete(index, a)
	}
}

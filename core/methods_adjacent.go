// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, AdjacentIDs).
// Determinism:
//   - Neighbors() sorts by Edge.ID (numeric order).
//   - NeighborIDs() and AdjacentIDs() return unique IDs sorted lex asc.
// Concurrency:
//   - Read operations hold muVert then muEdgeAdj read locks.

package core

import "sort"

// Neighbors returns copies of the edges leaving id.
//
// Neighborhood policy:
//   - Directed graphs: edges with e.From == id.
//   - Undirected graphs: every incident edge; self-loops appear once.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(d log d).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	for _, bucket := range g.adjacencyList[id] {
		for eid := range bucket {
			out = append(out, g.edges[eid].clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return lessEdgeID(out[i].ID, out[j].ID) })

	return out, nil
}

// NeighborIDs returns the unique IDs reachable from id over one edge,
// following edge direction on directed graphs.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	return sortedKeys(g.adjacencyList[id], nil), nil
}

// AdjacentIDs returns the unique IDs sharing any edge with id, ignoring
// direction. On undirected graphs it equals NeighborIDs. Used for weak
// connectivity.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(d log d).
func (g *Graph) AdjacentIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	return sortedKeys(g.adjacencyList[id], g.inbound[id]), nil
}

// sortedKeys merges the key sets of a and b into a sorted slice.
func sortedKeys(a, b map[string]map[string]struct{}) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	for k := range a {
		seen[k] = struct{}{}
	}
	for k := range b {
		seen[k] = struct{}{}
	}
	ids := make([]string, 0, len(seen))
	for k := range seen {
		ids = append(ids, k)
	}
	sort.Strings(ids)

	return ids
}

// SPDX-License-Identifier: MIT
//
// File: snapshot.go
// Role: Plain-data exchange representation of a Graph.
// Determinism:
//   - Nodes are listed in Vertices() order, edges in Edges() order.
//   - Snapshot(FromSnapshot(s)) == s for every valid s in canonical order.

package core

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync/atomic"
)

// NodeRecord is one vertex of a Snapshot.
type NodeRecord struct {
	ID    string `json:"id" yaml:"id"`
	Attrs Attrs  `json:"attrs,omitempty" yaml:"attrs,omitempty"`
}

// EdgeRecord is one edge of a Snapshot.
type EdgeRecord struct {
	ID    string `json:"id" yaml:"id"`
	From  string `json:"from" yaml:"from"`
	To    string `json:"to" yaml:"to"`
	Attrs Attrs  `json:"attrs,omitempty" yaml:"attrs,omitempty"`
}

// Snapshot is a self-contained copy of a graph: an ordered node list, an
// ordered edge list of ID pairs and the attributes of both. It is enough for
// an external consumer to rebuild or draw the graph without this package.
type Snapshot struct {
	Directed   bool         `json:"directed" yaml:"directed"`
	Multigraph bool         `json:"multigraph,omitempty" yaml:"multigraph,omitempty"`
	Loops      bool         `json:"loops,omitempty" yaml:"loops,omitempty"`
	Nodes      []NodeRecord `json:"nodes" yaml:"nodes"`
	Edges      []EdgeRecord `json:"edges" yaml:"edges"`
}

// Snapshot returns the exchange representation of g. Attribute maps are copies.
// Complexity: O(V log V + E log E).
func (g *Graph) Snapshot() Snapshot {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	s := Snapshot{
		Directed:   g.directed,
		Multigraph: g.allowMulti,
		Loops:      g.allowLoops,
		Nodes:      make([]NodeRecord, 0, len(g.vertices)),
		Edges:      make([]EdgeRecord, 0, len(g.edges)),
	}
	for _, v := range g.vertices {
		s.Nodes = append(s.Nodes, NodeRecord{ID: v.ID, Attrs: v.Attrs.Clone()})
	}
	sort.Slice(s.Nodes, func(i, j int) bool { return s.Nodes[i].ID < s.Nodes[j].ID })
	for _, e := range g.edges {
		s.Edges = append(s.Edges, EdgeRecord{ID: e.ID, From: e.From, To: e.To, Attrs: e.Attrs.Clone()})
	}
	sort.Slice(s.Edges, func(i, j int) bool { return lessEdgeID(s.Edges[i].ID, s.Edges[j].ID) })

	return s
}

// FromSnapshot rebuilds a Graph from s, keeping node and edge IDs.
//
// Validation:
//   - Node and edge IDs must be non-empty and unique.
//   - Edges must reference listed nodes and respect the Loops/Multigraph flags.
//
// The edge ID counter resumes after the largest "e<n>" ID present.
//
// Errors:
//   - ErrBadSnapshot (an ErrConfiguration) with the offending record named.
//
// Complexity: O(V + E).
func FromSnapshot(s Snapshot) (*Graph, error) {
	opts := []GraphOption{WithDirected(s.Directed)}
	if s.Multigraph {
		opts = append(opts, WithMultiEdges())
	}
	if s.Loops {
		opts = append(opts, WithLoops())
	}
	g := NewGraph(opts...)

	for i, n := range s.Nodes {
		if n.ID == "" {
			return nil, fmt.Errorf("node #%d has empty id: %w", i, ErrBadSnapshot)
		}
		if _, dup := g.vertices[n.ID]; dup {
			return nil, fmt.Errorf("duplicate node %q: %w", n.ID, ErrBadSnapshot)
		}
		g.vertices[n.ID] = &Vertex{ID: n.ID, Attrs: n.Attrs.Clone()}
	}

	var maxSeq uint64
	for i, r := range s.Edges {
		switch {
		case r.ID == "":
			return nil, fmt.Errorf("edge #%d has empty id: %w", i, ErrBadSnapshot)
		case g.edges[r.ID] != nil:
			return nil, fmt.Errorf("duplicate edge %q: %w", r.ID, ErrBadSnapshot)
		case g.vertices[r.From] == nil || g.vertices[r.To] == nil:
			return nil, fmt.Errorf("edge %q references unknown node: %w", r.ID, ErrBadSnapshot)
		case r.From == r.To && !g.allowLoops:
			return nil, fmt.Errorf("edge %q is a self-loop: %w", r.ID, ErrBadSnapshot)
		case !g.allowMulti && len(g.adjacencyList[r.From][r.To]) > 0:
			return nil, fmt.Errorf("edge %q duplicates %s-%s: %w", r.ID, r.From, r.To, ErrBadSnapshot)
		}
		linkEdge(g, &Edge{ID: r.ID, From: r.From, To: r.To, Directed: g.directed, Attrs: r.Attrs.Clone()})
		if seq, ok := edgeSeq(r.ID); ok && seq > maxSeq {
			maxSeq = seq
		}
	}
	atomic.StoreUint64(&g.nextEdgeID, maxSeq)

	return g, nil
}

// SortEdgeIDs sorts ids in the order Edges() uses.
func SortEdgeIDs(ids []string) {
	sort.Slice(ids, func(i, j int) bool { return lessEdgeID(ids[i], ids[j]) })
}

// edgeSeq extracts n from a generated "e<n>" ID.
func edgeSeq(id string) (uint64, bool) {
	if !strings.HasPrefix(id, edgeIDPrefix) {
		return 0, false
	}
	n, err := strconv.ParseUint(id[len(edgeIDPrefix):], 10, 64)
	if err != nil {
		return 0, false
	}

	return n, true
}

// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge, Attrs, Graph, GraphOption, EdgeOption and NewGraph.
// Concurrency:
//   - muVert guards the vertex catalog and configuration flags.
//   - muEdgeAdj guards the edge catalog, adjacency and the inbound index.
//   - Lock order is always muVert -> muEdgeAdj.
// Determinism:
//   - Every enumeration surface sorts by ID before returning.

package core

import (
	"sort"
	"sync"
)

// Attrs is a key/value attribute mapping carried by vertices and edges.
type Attrs map[string]any

// Clone returns a copy of a. Nested maps and slices are copied one level deep
// so that a clone never aliases mutable containers of the source.
// A nil receiver yields an empty, non-nil map.
func (a Attrs) Clone() Attrs {
	out := make(Attrs, len(a))
	var (
		k string
		v any
	)
	for k, v = range a {
		out[k] = cloneValue(v)
	}

	return out
}

// Keys returns the attribute keys in ascending order.
func (a Attrs) Keys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// cloneValue copies the container kinds that attrs commonly hold after a YAML
// or JSON round trip. Scalars are returned as is.
func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return Attrs(t).Clone()
	case Attrs:
		return t.Clone()
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = cloneValue(t[i])
		}
		return out
	case []string:
		return append([]string(nil), t...)
	default:
		return v
	}
}

// Vertex represents a node in the graph.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Attrs stores the node attributes. Clone deep-copies it.
	Attrs Attrs
}

// Edge represents a connection between two vertices.
//
// For undirected graphs From/To keep the orientation the edge was added with;
// queries treat both endpoints symmetrically.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Directed mirrors the owning graph's directedness.
	Directed bool

	// Attrs stores the edge attributes.
	Attrs Attrs
}

// Other returns the endpoint of e opposite to id.
// For a self-loop it returns id itself.
func (e *Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// clone returns a detached copy of e.
func (e *Edge) clone() *Edge {
	return &Edge{ID: e.ID, From: e.From, To: e.To, Directed: e.Directed, Attrs: e.Attrs.Clone()}
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets whether edges are ordered pairs (true) or unordered (false).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithEdgeAttr sets a single attribute on the new edge.
func WithEdgeAttr(key string, value any) EdgeOption {
	return func(e *Edge) { e.Attrs[key] = value }
}

// WithEdgeAttrs copies attrs onto the new edge.
func WithEdgeAttrs(attrs Attrs) EdgeOption {
	return func(e *Edge) {
		for k, v := range attrs {
			e.Attrs[k] = cloneValue(v)
		}
	}
}

// Graph is the core in-memory graph data structure.
//
// It supports directed vs. undirected edges, parallel edges (multi-edges)
// and self-loops, each gated by a construction-time flag.
type Graph struct {
	muVert    sync.RWMutex // guards vertices and flags
	muEdgeAdj sync.RWMutex // guards edges, adjacency and inbound

	// Configuration flags
	directed   bool
	allowMulti bool
	allowLoops bool

	// Storage
	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacencyList[from][to][edgeID]; undirected edges are mirrored.
	adjacencyList map[string]map[string]map[string]struct{}

	// inbound[to][from][edgeID] for directed edges only.
	inbound map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph with the given options.
// By default the Graph is undirected, with no loops and no multi-edges.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:      make(map[string]*Vertex),
		edges:         make(map[string]*Edge),
		adjacencyList: make(map[string]map[string]map[string]struct{}),
		inbound:       make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// GraphStats is a read-only summary produced by Stats.
type GraphStats struct {
	Directed    bool
	AllowsMulti bool
	AllowsLoops bool
	VertexCount int
	EdgeCount   int
	SelfLoops   int
	Isolated    int
}

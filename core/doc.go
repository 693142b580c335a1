// Package core provides the thread-safe in-memory Graph that every lvsynth
// engine reads and writes.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Attribute maps on every vertex and edge (Attrs)
//   - Constant-time edge operations via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}, plus an inbound index for
//     directed edges so degree and vertex removal stay local
//   - Collision-free atomic Edge.ID generation ("e1", "e2", …) that survives Clone
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Deterministic iteration: Vertices(), Edges(), NeighborIDs(), AdjacentIDs()
// and Snapshot() all return sorted results, so every engine built on top can
// reproduce its output from a seed alone.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error                       // O(1), idempotent
//	InsertVertex(id string, attrs Attrs) error       // O(1), strict
//	HasVertex(id string) bool                        // O(1)
//	RemoveVertex(id string) error                    // O(deg(v))
//
//	// Edge lifecycle (endpoints must exist)
//	AddEdge(from, to string, opts ...EdgeOption) (edgeID string, err error)
//	RemoveEdge(edgeID string) error
//	HasEdge(from, to string) bool
//
//	// Query
//	Neighbors(id) / NeighborIDs(id) / AdjacentIDs(id)
//	Vertices() / Edges() / Edge(id) / EdgesBetween(from, to)
//	Degree(id) / Degrees() / VertexCount() / EdgeCount() / Stats()
//
//	// Attributes
//	SetVertexAttr / MergeVertexAttrs / VertexAttr / VertexAttrs / DeleteVertexAttr
//	SetEdgeAttr / EdgeAttr / EdgeAttrs
//
//	// Copies
//	Clone() / CloneEmpty() / Snapshot() / FromSnapshot(s)
//
// Errors:
//
// The package also defines the error taxonomy used across the module:
// ErrConfiguration, ErrComposition, ErrCapacity and ErrNotFound. Graph
// sentinels wrap one of them (ErrVertexNotFound and ErrEdgeNotFound are
// ErrNotFound; ErrEmptyVertexID and ErrBadSnapshot are ErrConfiguration),
// so errors.Is works on either level.
package core

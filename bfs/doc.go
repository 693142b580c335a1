// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first traversal over a core.Graph and the
// connectivity measures built on it.
//
//   - BFS walks from a start vertex, returning visit order and hop depth.
//     Options add cancellation, a visit hook and weak (direction-blind)
//     traversal. Components drives it with WithWeak.
//   - Components and Summarize report weakly connected components; the
//     removal engine uses them for its before/after connectivity report.
//   - Betweenness scores every vertex by the shortest paths through it; the
//     centrality removal policy ranks on it.
//
// Determinism: core returns neighbors sorted, so traversals and the float
// sums of Betweenness are reproducible.
//
// Complexity: BFS O(V+E); Components O(V log V + E); Betweenness O(V·E).
//
// Errors: ErrGraphNil and ErrOptionViolation wrap core.ErrConfiguration;
// ErrStartVertexNotFound wraps core.ErrNotFound.
package bfs

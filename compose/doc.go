// SPDX-License-Identifier: MIT

// Package compose assembles motif instances into one graph under an explicit
// merge policy and records where every node came from.
//
// A Plan lists motif requests in order plus a Strategy:
//
//   - DisjointUnion: instances share no nodes; node count is the sum of motif sizes.
//   - AnchorMerge: nodes playing a role listed in Plan.Anchors are unified
//     across instances, so m instances sharing one anchor lose m-1 nodes.
//     Attribute conflicts resolve last-write-wins in plan order. Motif edges
//     that merging turns into loops or duplicates are dropped and counted.
//   - RandomAttachment: after the union, cross-instance edges are drawn from
//     the stream until TargetEdges or TargetDensity is met.
//
// Optional extras run after the strategy: a motif-level link pattern
// (sequential, er, ba, sbm, star, hierarchical), ExtraNodes attached to
// random existing nodes, and ExtraEdges between random non-adjacent pairs.
//
// Global node IDs are "n0", "n1", ... and never reused. Every motif-derived
// node carries the attributes motif, motif_id ("<name>_<k>"), role and
// instance; every edge carries origin (motif, link, attach or extra).
//
// Determinism: Compose(plan, stream) is a pure function of its inputs.
package compose

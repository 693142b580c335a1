// SPDX-License-Identifier: MIT

// Package perturb applies a deterministic, seed-driven sequence of structural
// edits to a graph and reports every one of them.
//
// Perturb(g, budget, weights, stream, opts...) clones g, then repeatedly
// draws an op kind by weight and applies it to the clone:
//
//	add_edge          a node with a non-neighbor, joined to one of them
//	remove_edge       an existing edge
//	rewire_edge       (u,v) becomes (u,w) for a non-neighbor w; attrs move along
//	toggle_attribute  a boolean node attribute flips (absent reads as false)
//
// Targets are drawn uniformly, or by degree with WithSelection(DegreeWeighted).
// Node-level edits never remove nodes, so the node count is conserved.
//
// The budget is a Count or a Fraction of the current edges or nodes. Ops
// without an eligible target are recorded as skipped and do not consume the
// budget; when every weighted kind is stuck the run ends early and the report
// is marked Exhausted.
//
// Determinism: the same graph, budget, weights, options and stream yield the
// same graph and the same Report.
package perturb

// SPDX-License-Identifier: MIT

// Package motif provides the immutable building blocks that compose
// instantiates: a small template graph plus a mapping from symbolic role
// name to local node.
//
// Three ways to obtain a Motif:
//
//   - Build(Spec{Kind: Cycle, Size: 4}) for the closed set of built-in kinds
//     (Cycle, House, Chain, Star, Gate, Clique, Wheel);
//   - ParseTemplate / ParseTemplates for YAML documents;
//   - New for a graph assembled by hand.
//
// Built-in kinds bind every node to exactly one role. Dotted roles
// ("leaf.2") share a class ("leaf") that role-keyed policies match on:
//
//	Kind    roles
//	Cycle   anchor, ring.1 .. ring.n-1
//	House   base.0, base.1, eave.0, eave.1, roof
//	Chain   head, link.1 .. link.n-2, tail
//	Star    hub, leaf.0 .. leaf.k-1
//	Gate    entry, left.0 .. left.k-1, right.0 .. right.k-1, exit
//	Clique  anchor, member.1 .. member.n-1
//	Wheel   hub, rim.0 .. rim.k-1
//
// A Motif never changes after construction; accessors return copies.
// Every error wraps core.ErrConfiguration.
package motif

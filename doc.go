// Package lvsynth generates labelled synthetic graphs from reusable motifs,
// reproducibly from a single seed.
//
// 🚀 What is lvsynth?
//
//	A pipeline of small, deterministic engines over one in-memory graph:
//		• Motifs: cycles, houses, chains, stars, gates, cliques, wheels and YAML templates
//		• Composition: disjoint union, anchor merge, random attachment, link patterns
//		• Perturbation: budgeted add / remove / rewire / toggle edits with an op log
//		• Labels: categorical, degree-bucketed, role-correlated and structural ground truth
//		• Removal: uniform, degree-biased, targeted, motif, rank and centrality policies
//
// ✨ Why lvsynth?
//
//   - Reproducible – one seed, one independent stream per engine
//   - Traceable – provenance maps every node back to its motif instance and role
//   - Honest reports – every stage says what it did and what it could not do
//   - Copy-on-write – no stage mutates its input
//
// Packages:
//
//	core/     — Graph, Vertex, Edge types, thread-safe primitives and Snapshot
//	rng/      — seed controller and labelled streams
//	motif/    — built-in motif kinds, YAML templates and the motif library
//	compose/  — Compose and Provenance
//	perturb/  — Perturb and its op report
//	label/    — Assign and structural labels
//	remove/   — Remove and its connectivity report
//	bfs/      — traversal, weak components and betweenness
//	pipeline/ — YAML-configured runs, batches, logging and tracing
//
// Quick ASCII example (two triangles merged on their anchor A):
//
//	B       D
//	│ ╲   ╱ │
//	│   A   │
//	│ ╱   ╲ │
//	C       E
//
// See pipeline.Load for the configuration format.
package lvsynth

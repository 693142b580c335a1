// SPDX-License-Identifier: MIT

// Package label writes a categorical attribute onto the nodes or edges of a
// graph so that category frequencies match a requested distribution.
//
// Strategies:
//
//   - Categorical: weighted categories placed over a random order.
//   - DegreeBucketed: targets ordered by degree; categories fill their quotas
//     in listed order, lowest degree first (or highest with Descending).
//   - RoleCorrelated: one distribution per motif role, read from
//     compose.Provenance, with an optional fallback.
//   - Structural: house (0), 4-cycle (2), triangle (1) or none (-1) from
//     the cycles each node sits on.
//
// By default counts are fixed by largest remainder, so every achieved
// frequency is within 1/N of its target. WithSampling(Independent) draws each
// target on its own once the population reaches MinSampleSize and
// 16·p(1-p)/Tolerance², so sampling noise stays inside Tolerance. The Report
// lists requested and achieved frequencies and whether the Tolerance held.
//
// Assign never mutates its input; it labels and returns a clone.
package label

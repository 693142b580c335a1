// SPDX-License-Identifier: MIT
// Package: lvsynth/motif
//
// constants.go — method tags, size minima and role names of built-in kinds.

package motif

// Method tags used as error context.
const (
	methodCycle  = "Cycle"
	methodWheel  = "Wheel"
	methodChain  = "Chain"
	methodGate   = "Gate"
	methodStar   = "Star"
	methodHouse  = "House"
	methodClique = "Clique"
)

// Size minima per kind.
const (
	minCycleNodes  = 3
	minWheelRim    = 3
	minChainNodes  = 2
	minGateArm     = 1
	minStarLeaves  = 1
	minCliqueNodes = 2
)

// Role names and role classes of built-in kinds.
const (
	RoleAnchor = "anchor" // Cycle, Clique: node 0
	RoleHub    = "hub"    // Star, Wheel: center
	RoleHead   = "head"   // Chain: first node
	RoleTail   = "tail"   // Chain: last node
	RoleEntry  = "entry"  // Gate: arms start here
	RoleExit   = "exit"   // Gate: arms end here
	RoleRoof   = "roof"   // House: apex of the triangle

	ClassRing   = "ring"   // Cycle: ring.1 .. ring.n-1
	ClassRim    = "rim"    // Wheel: rim.0 .. rim.k-1
	ClassLink   = "link"   // Chain: link.1 .. link.n-2
	ClassLeaf   = "leaf"   // Star: leaf.0 .. leaf.k-1
	ClassLeft   = "left"   // Gate: left.0 .. left.k-1
	ClassRight  = "right"  // Gate: right.0 .. right.k-1
	ClassEave   = "eave"   // House: eave.0, eave.1 (shared with the roof)
	ClassBase   = "base"   // House: base.0, base.1
	ClassMember = "member" // Clique: member.1 .. member.n-1
)

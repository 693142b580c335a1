// SPDX-License-Identifier: MIT
// Package: lvsynth/motif
//
// impl_ring.go — Cycle(n) and Wheel(k) constructors.
//
// Contract:
//   • Cycle: nodes 0..n-1, edges i-(i+1)%n; node 0 is "anchor", others "ring.i".
//   • Wheel: hub 0 plus rim 1..k; edges hub-rim then the rim ring.
//   • Sizes are validated by Spec before the constructor runs.

package motif

// cycle returns the constructor of C_n.
func cycle(n int) constructor {
	return func(d *draft) error {
		if err := d.node(methodCycle, 0, RoleAnchor); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := d.node(methodCycle, i, indexed(ClassRing, i)); err != nil {
				return err
			}
		}
		for i := 0; i < n; i++ {
			if err := d.link(methodCycle, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}

// wheel returns the constructor of W_k (hub + k-node rim).
func wheel(k int) constructor {
	return func(d *draft) error {
		if err := d.node(methodWheel, 0, RoleHub); err != nil {
			return err
		}
		for i := 0; i < k; i++ {
			if err := d.node(methodWheel, i+1, indexed(ClassRim, i)); err != nil {
				return err
			}
		}
		// Spokes first, then the rim, so edge IDs group by structure.
		for i := 1; i <= k; i++ {
			if err := d.link(methodWheel, 0, i); err != nil {
				return err
			}
		}
		for i := 1; i <= k; i++ {
			next := i%k + 1
			if err := d.link(methodWheel, i, next); err != nil {
				return err
			}
		}

		return nil
	}
}

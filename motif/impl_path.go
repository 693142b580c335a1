// SPDX-License-Identifier: MIT
// Package: lvsynth/motif
//
// impl_path.go — Chain(n) and Gate(k) constructors.
//
// Contract:
//   • Chain: path 0-1-...-(n-1); "head", "link.i", "tail".
//   • Gate: entry 0, left arm 1..k, right arm k+1..2k, exit 2k+1; both arms
//     run entry → exit, giving a (2k+2)-cycle with labelled ends.

package motif

// chain returns the constructor of P_n.
func chain(n int) constructor {
	return func(d *draft) error {
		for i := 0; i < n; i++ {
			role := indexed(ClassLink, i)
			switch i {
			case 0:
				role = RoleHead
			case n - 1:
				role = RoleTail
			}
			if err := d.node(methodChain, i, role); err != nil {
				return err
			}
		}
		for i := 0; i+1 < n; i++ {
			if err := d.link(methodChain, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}

// gate returns the constructor of a gate with two arms of k nodes.
func gate(k int) constructor {
	return func(d *draft) error {
		entry, exit := 0, 2*k+1
		if err := d.node(methodGate, entry, RoleEntry); err != nil {
			return err
		}
		for i := 0; i < k; i++ {
			if err := d.node(methodGate, 1+i, indexed(ClassLeft, i)); err != nil {
				return err
			}
		}
		for i := 0; i < k; i++ {
			if err := d.node(methodGate, 1+k+i, indexed(ClassRight, i)); err != nil {
				return err
			}
		}
		if err := d.node(methodGate, exit, RoleExit); err != nil {
			return err
		}

		for _, start := range []int{1, 1 + k} {
			prev := entry
			for i := 0; i < k; i++ {
				if err := d.link(methodGate, prev, start+i); err != nil {
					return err
				}
				prev = start + i
			}
			if err := d.link(methodGate, prev, exit); err != nil {
				return err
			}
		}

		return nil
	}
}

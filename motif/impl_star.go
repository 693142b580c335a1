// SPDX-License-Identifier: MIT
// Package: lvsynth/motif
//
// impl_star.go — Star(k), Clique(n) and House constructors.
//
// Contract:
//   • Star: hub 0 joined to leaves 1..k ("leaf.0".."leaf.k-1").
//   • Clique: K_n, edges (i,j) for i<j in lexicographic order.
//   • House: square 0-1-2-3-0 with roof 4 on the 2-3 side; the triangle
//     2-3-4 and the square share exactly the nodes 2 and 3.

package motif

// star returns the constructor of S_k.
func star(k int) constructor {
	return func(d *draft) error {
		if err := d.node(methodStar, 0, RoleHub); err != nil {
			return err
		}
		for i := 0; i < k; i++ {
			if err := d.node(methodStar, i+1, indexed(ClassLeaf, i)); err != nil {
				return err
			}
		}
		for i := 1; i <= k; i++ {
			if err := d.link(methodStar, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// clique returns the constructor of K_n.
func clique(n int) constructor {
	return func(d *draft) error {
		if err := d.node(methodClique, 0, RoleAnchor); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := d.node(methodClique, i, indexed(ClassMember, i)); err != nil {
				return err
			}
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := d.link(methodClique, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// house returns the constructor of the 5-node house.
func house() constructor {
	return func(d *draft) error {
		roles := []string{
			indexed(ClassBase, 0), indexed(ClassBase, 1),
			indexed(ClassEave, 0), indexed(ClassEave, 1),
			RoleRoof,
		}
		for i, r := range roles {
			if err := d.node(methodHouse, i, r); err != nil {
				return err
			}
		}
		for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {2, 4}, {3, 4}} {
			if err := d.link(methodHouse, e[0], e[1]); err != nil {
				return err
			}
		}

		return nil
	}
}

// SPDX-License-Identifier: MIT
// Package: lvsynth/motif
//
// draft.go — mutable scratch space used by built-in constructors.
//
// Contract:
//   • Local node IDs are decimal indices "0", "1", ... in insertion order.
//   • Every node is bound to exactly one role at insertion.
//   • Edges are emitted in the order the constructor calls link.

package motif

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvsynth/core"
)

// constructor fills a draft; one per built-in kind, capturing its size.
type constructor func(d *draft) error

// draft accumulates a motif under construction.
type draft struct {
	g     *core.Graph
	roles map[string]string
}

func newDraft() *draft {
	return &draft{g: core.NewGraph(), roles: make(map[string]string)}
}

// localID renders a local node index.
func localID(i int) string { return strconv.Itoa(i) }

// indexed renders a dotted role name: indexed("leaf", 2) == "leaf.2".
func indexed(class string, i int) string { return class + "." + strconv.Itoa(i) }

// node adds local node i bound to role.
func (d *draft) node(method string, i int, role string) error {
	id := localID(i)
	if err := d.g.AddVertex(id); err != nil {
		return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
	}
	d.roles[role] = id

	return nil
}

// link adds the edge i-j.
func (d *draft) link(method string, i, j int) error {
	u, v := localID(i), localID(j)
	if _, err := d.g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%s-%s): %w", method, u, v, err)
	}

	return nil
}

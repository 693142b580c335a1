// SPDX-License-Identifier: MIT
// Package: lvsynth/motif
//
// motif.go — the immutable Motif template.
//
// Contract:
//   • A Motif never changes after New returns; accessors hand out copies.
//   • Every role maps to an existing local node; several roles may share a node.
//   • Role names may be dotted ("leaf.2"); RoleClass strips the suffix.

package motif

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/lvsynth/core"
)

const methodNew = "New"

// Motif is a small template graph plus a mapping from role name to local node.
type Motif struct {
	name   string
	graph  *core.Graph
	roles  map[string]string   // role → local node
	byNode map[string][]string // local node → sorted roles
}

// New validates and freezes a motif. g is cloned, so later changes to the
// caller's graph do not leak into the template.
//
// Errors:
//   - ErrBadTemplate: empty name or nil graph.
//   - ErrBadRole: empty role name or a role bound to a node not in g.
func New(name string, g *core.Graph, roles map[string]string) (*Motif, error) {
	if name == "" {
		return nil, fmt.Errorf("%s: empty name: %w", methodNew, ErrBadTemplate)
	}
	if g == nil {
		return nil, fmt.Errorf("%s(%s): nil graph: %w", methodNew, name, ErrBadTemplate)
	}

	m := &Motif{
		name:   name,
		graph:  g.Clone(),
		roles:  make(map[string]string, len(roles)),
		byNode: make(map[string][]string, len(roles)),
	}
	for role, node := range roles {
		if role == "" {
			return nil, fmt.Errorf("%s(%s): empty role name: %w", methodNew, name, ErrBadRole)
		}
		if !m.graph.HasVertex(node) {
			return nil, fmt.Errorf("%s(%s): role %q → missing node %q: %w", methodNew, name, role, node, ErrBadRole)
		}
		m.roles[role] = node
		m.byNode[node] = append(m.byNode[node], role)
	}
	for node := range m.byNode {
		sort.Strings(m.byNode[node])
	}

	return m, nil
}

// Name returns the motif name ("cycle_3", "house", or a template name).
func (m *Motif) Name() string { return m.name }

// Graph returns a deep copy of the template graph.
func (m *Motif) Graph() *core.Graph { return m.graph.Clone() }

// Directed reports whether the template edges are ordered.
func (m *Motif) Directed() bool { return m.graph.Directed() }

// Nodes returns the local node IDs in sorted order.
func (m *Motif) Nodes() []string { return m.graph.Vertices() }

// Edges returns copies of the template edges in ID order.
func (m *Motif) Edges() []*core.Edge { return m.graph.Edges() }

// NodeAttrs returns a copy of the template attributes of a local node.
func (m *Motif) NodeAttrs(local string) core.Attrs {
	attrs, err := m.graph.VertexAttrs(local)
	if err != nil {
		return core.Attrs{}
	}

	return attrs
}

// Size returns the node and edge counts.
func (m *Motif) Size() (nodes, edges int) {
	return m.graph.VertexCount(), m.graph.EdgeCount()
}

// Roles returns every role name in sorted order.
func (m *Motif) Roles() []string {
	out := make([]string, 0, len(m.roles))
	for r := range m.roles {
		out = append(out, r)
	}
	sort.Strings(out)

	return out
}

// Node returns the local node bound to role.
func (m *Motif) Node(role string) (string, bool) {
	n, ok := m.roles[role]
	return n, ok
}

// HasRole reports whether role is defined.
func (m *Motif) HasRole(role string) bool {
	_, ok := m.roles[role]
	return ok
}

// RolesOf returns the sorted roles bound to a local node (nil when none).
func (m *Motif) RolesOf(local string) []string {
	return append([]string(nil), m.byNode[local]...)
}

// RoleClass returns the part of role before the first '.'.
// RoleClass("leaf.3") == "leaf"; RoleClass("hub") == "hub".
func RoleClass(role string) string {
	if i := strings.IndexByte(role, '.'); i >= 0 {
		return role[:i]
	}

	return role
}

// SPDX-License-Identifier: MIT
// Package: lvsynth/compose
//
// compose.go — Compose: plan → (graph, provenance).
//
// Stages, in order:
//  1. instantiate every request (fresh global IDs, anchor binding when merging);
//  2. motif-level links;
//  3. random attachment up to the target;
//  4. extra nodes, then extra edges.
//
// Determinism: every enumeration is sorted before the stream is consulted.

package compose

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvsynth/core"
	"github.com/katalvlaran/lvsynth/motif"
	"github.com/katalvlaran/lvsynth/rng"
)

const methodCompose = "Compose"

// Node attribute keys written on every motif-derived node.
const (
	AttrMotif    = "motif"
	AttrMotifID  = "motif_id"
	AttrRole     = "role"
	AttrInstance = "instance"
)

// AttrOrigin is the edge attribute naming the stage that added an edge.
const AttrOrigin = "origin"

// Values of AttrOrigin, and the motif name given to extra nodes.
const (
	OriginMotif  = "motif"
	OriginLink   = "link"
	OriginAttach = "attach"
	OriginExtra  = "extra"
)

// Compose builds the graph described by plan, drawing from s.
// s may be nil when the plan needs no randomness.
//
// Errors:
//   - ErrBadPlan, rng.ErrNilStream (core.ErrConfiguration).
//   - ErrUndefinedRole, ErrAnchorConflict, ErrUnreachableTarget (core.ErrComposition).
//
// Complexity: O(V+E) for instantiation; O(V²) when candidate pairs are enumerated.
func Compose(plan Plan, s *rng.Stream) (*core.Graph, *Provenance, error) {
	if err := plan.validate(); err != nil {
		return nil, nil, err
	}
	if s == nil && plan.needsStream() {
		return nil, nil, fmt.Errorf("%s: %w", methodCompose, rng.ErrNilStream)
	}

	c := &composer{
		plan:    plan,
		s:       s,
		g:       core.NewGraph(core.WithDirected(plan.Directed)),
		prov:    newProvenance(),
		perName: make(map[string]int),
		anchors: make(map[string]string),
	}
	for i, r := range plan.Requests {
		if err := c.instantiate(i, r); err != nil {
			return nil, nil, err
		}
	}
	if err := c.link(); err != nil {
		return nil, nil, err
	}
	if plan.Strategy == RandomAttachment {
		if err := c.attach(); err != nil {
			return nil, nil, err
		}
	}
	if err := c.extraNodes(); err != nil {
		return nil, nil, err
	}
	if err := c.extraEdges(); err != nil {
		return nil, nil, err
	}

	return c.g, c.prov, nil
}

// composer carries the state of one Compose call.
type composer struct {
	plan    Plan
	s       *rng.Stream
	g       *core.Graph
	prov    *Provenance
	next    int               // next global node number
	perName map[string]int    // motif name → instances so far
	anchors map[string]string // anchor role → global node
}

func (c *composer) newID() string {
	id := "n" + strconv.Itoa(c.next)
	c.next++

	return id
}

// instantiate binds request i into the graph.
func (c *composer) instantiate(i int, r Request) error {
	m := r.Motif
	if c.plan.Strategy == AnchorMerge {
		for _, a := range c.plan.Anchors {
			if !m.HasRole(a) {
				return fmt.Errorf("%s: request %d (%s): role %q: %w", methodCompose, i, m.Name(), a, ErrUndefinedRole)
			}
		}
	}

	k := c.perName[m.Name()]
	c.perName[m.Name()]++
	inst := Instance{
		Index:   i,
		Motif:   m.Name(),
		MotifID: m.Name() + "_" + strconv.Itoa(k),
		Nodes:   make(map[string]string),
	}

	for _, local := range m.Nodes() {
		global, err := c.bind(i, m, local)
		if err != nil {
			return err
		}
		inst.Nodes[local] = global

		roles := m.RolesOf(local)
		attrs := m.NodeAttrs(local)
		for key, v := range r.Attrs {
			attrs[key] = v
		}
		attrs[AttrMotif] = m.Name()
		attrs[AttrMotifID] = inst.MotifID
		attrs[AttrInstance] = i
		if len(roles) > 0 {
			attrs[AttrRole] = roles[0]
		}
		if c.g.HasVertex(global) {
			err = c.g.MergeVertexAttrs(global, attrs)
		} else {
			err = c.g.InsertVertex(global, attrs)
		}
		if err != nil {
			return fmt.Errorf("%s: request %d: node %s: %w", methodCompose, i, global, err)
		}
		c.prov.record(global, Origin{Instance: i, Motif: m.Name(), MotifID: inst.MotifID, Local: local, Roles: roles})
	}

	for _, e := range m.Edges() {
		u, v := inst.Nodes[e.From], inst.Nodes[e.To]
		if u == v || c.g.HasEdge(u, v) {
			c.prov.collapsed++
			continue
		}
		if _, err := c.g.AddEdge(u, v, core.WithEdgeAttrs(e.Attrs), core.WithEdgeAttr(AttrOrigin, OriginMotif)); err != nil {
			return fmt.Errorf("%s: request %d: edge %s-%s: %w", methodCompose, i, u, v, err)
		}
	}
	c.prov.instances = append(c.prov.instances, inst)

	return nil
}

// bind returns the global node for a local node of request i. Outside
// AnchorMerge every local node gets a fresh ID.
func (c *composer) bind(i int, m *motif.Motif, local string) (string, error) {
	if c.plan.Strategy != AnchorMerge {
		return c.newID(), nil
	}

	var held []string
	bound := ""
	for _, a := range c.plan.Anchors {
		if n, _ := m.Node(a); n != local {
			continue
		}
		held = append(held, a)
		g, ok := c.anchors[a]
		if !ok {
			continue
		}
		if bound != "" && bound != g {
			return "", fmt.Errorf("%s: request %d (%s): node %s holds roles bound to %s and %s: %w",
				methodCompose, i, m.Name(), local, bound, g, ErrAnchorConflict)
		}
		bound = g
	}
	if bound == "" {
		bound = c.newID()
	}
	for _, a := range held {
		if _, ok := c.anchors[a]; !ok {
			c.anchors[a] = bound
		}
	}

	return bound, nil
}

// link applies the motif-level link pattern.
func (c *composer) link() error {
	for _, pr := range c.plan.Links.pairs(len(c.prov.instances), c.s) {
		a, b := c.prov.InstanceNodes(pr[0]), c.prov.InstanceNodes(pr[1])
		if len(a) == 0 || len(b) == 0 {
			continue
		}
		u, v := a[c.s.Intn(len(a))], b[c.s.Intn(len(b))]
		if u == v || c.g.HasEdge(u, v) {
			continue
		}
		if _, err := c.g.AddEdge(u, v, core.WithEdgeAttr(AttrOrigin, OriginLink)); err != nil {
			return fmt.Errorf("%s: link %d-%d: %w", methodCompose, pr[0], pr[1], err)
		}
		c.prov.links++
	}

	return nil
}

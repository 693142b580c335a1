// SPDX-License-Identifier: MIT
// Package: lvsynth/compose
//
// provenance.go — which motif instance and role produced each global node.
//
// Contract:
//   • Read-only after Compose returns; safe for concurrent readers.
//   • Origins of a node are kept in plan order; the last one is the
//     node's Origin (last writer wins, matching the node attributes).
//   • Nodes added as extras or later removed from a graph keep no or stale
//     entries; callers filter against the graph they hold.

package compose

import (
	"sort"

	"github.com/katalvlaran/lvsynth/motif"
)

// Origin records one (instance, local node) that mapped onto a global node.
type Origin struct {
	Instance int      `json:"instance" yaml:"instance"`
	Motif    string   `json:"motif" yaml:"motif"`
	MotifID  string   `json:"motif_id" yaml:"motif_id"`
	Local    string   `json:"local" yaml:"local"`
	Roles    []string `json:"roles,omitempty" yaml:"roles,omitempty"`
}

// Role returns the primary role of o (the first in sorted order), or "".
func (o Origin) Role() string {
	if len(o.Roles) == 0 {
		return ""
	}

	return o.Roles[0]
}

// Instance is one motif bound into the composed graph.
type Instance struct {
	Index   int               `json:"index" yaml:"index"`
	Motif   string            `json:"motif" yaml:"motif"`
	MotifID string            `json:"motif_id" yaml:"motif_id"`
	Nodes   map[string]string `json:"nodes" yaml:"nodes"` // local → global
}

// Provenance maps global nodes to their origins.
type Provenance struct {
	origins   map[string][]Origin
	instances []Instance
	collapsed int
	links     int
}

func newProvenance() *Provenance {
	return &Provenance{origins: make(map[string][]Origin)}
}

func (p *Provenance) record(global string, o Origin) {
	p.origins[global] = append(p.origins[global], o)
}

// Len returns the number of nodes with at least one origin.
func (p *Provenance) Len() int {
	if p == nil {
		return 0
	}

	return len(p.origins)
}

// Has reports whether id has an origin.
func (p *Provenance) Has(id string) bool {
	if p == nil {
		return false
	}
	_, ok := p.origins[id]

	return ok
}

// Origin returns the last origin written to id.
func (p *Provenance) Origin(id string) (Origin, bool) {
	if p == nil {
		return Origin{}, false
	}
	list := p.origins[id]
	if len(list) == 0 {
		return Origin{}, false
	}

	return cloneOrigin(list[len(list)-1]), true
}

// Origins returns every origin of id in plan order.
func (p *Provenance) Origins(id string) []Origin {
	if p == nil {
		return nil
	}
	list := p.origins[id]
	out := make([]Origin, len(list))
	for i, o := range list {
		out[i] = cloneOrigin(o)
	}

	return out
}

// Nodes returns every node with an origin, sorted.
func (p *Provenance) Nodes() []string {
	if p == nil {
		return nil
	}
	out := make([]string, 0, len(p.origins))
	for id := range p.origins {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Instances returns copies of every instance in plan order.
func (p *Provenance) Instances() []Instance {
	if p == nil {
		return nil
	}
	out := make([]Instance, len(p.instances))
	for i, in := range p.instances {
		nodes := make(map[string]string, len(in.Nodes))
		for k, v := range in.Nodes {
			nodes[k] = v
		}
		in.Nodes = nodes
		out[i] = in
	}

	return out
}

// InstanceNodes returns the sorted distinct global nodes of instance i.
func (p *Provenance) InstanceNodes(i int) []string {
	if p == nil || i < 0 || i >= len(p.instances) {
		return nil
	}

	return distinctValues(p.instances[i].Nodes)
}

// NodesWithRole returns the sorted nodes that played role in any origin.
// role matches either a full role ("leaf.2") or a role class ("leaf").
func (p *Provenance) NodesWithRole(role string) []string {
	if p == nil {
		return nil
	}
	var out []string
	for id, list := range p.origins {
		if originsHaveRole(list, role) {
			out = append(out, id)
		}
	}
	sort.Strings(out)

	return out
}

// RoleClass returns the class of the primary role of id's last origin.
func (p *Provenance) RoleClass(id string) (string, bool) {
	o, ok := p.Origin(id)
	if !ok || o.Role() == "" {
		return "", false
	}

	return motif.RoleClass(o.Role()), true
}

// Collapsed returns how many motif edges merging turned into duplicates or loops.
func (p *Provenance) Collapsed() int {
	if p == nil {
		return 0
	}

	return p.collapsed
}

// Links returns how many motif-level link edges were added.
func (p *Provenance) Links() int {
	if p == nil {
		return 0
	}

	return p.links
}

func originsHaveRole(list []Origin, role string) bool {
	for _, o := range list {
		for _, r := range o.Roles {
			if r == role || motif.RoleClass(r) == role {
				return true
			}
		}
	}

	return false
}

func cloneOrigin(o Origin) Origin {
	o.Roles = append([]string(nil), o.Roles...)
	return o
}

func distinctValues(m map[string]string) []string {
	seen := make(map[string]struct{}, len(m))
	out := make([]string, 0, len(m))
	for _, v := range m {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)

	return out
}

// SPDX-License-Identifier: MIT
// Package: lvsynth/motif
//
// template.go — data-driven motifs described as YAML documents.
//
// Document shape:
//
//	name: bowtie
//	directed: false
//	nodes: [l1, l2, c, r1, r2]
//	edges: [[l1, l2], [l2, c], [c, l1], [c, r1], [r1, r2], [r2, c]]
//	roles: {center: c, left.0: l1, left.1: l2}
//	attrs: {c: {weight: 2}}
//
// Contract:
//   • Decoding is strict: unknown fields fail with ErrBadTemplate.
//   • Every edge endpoint, role target and attrs key must be a listed node.
//   • A stream may hold several documents separated by "---".

package motif

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvsynth/core"
)

const methodTemplate = "Template"

// Template is the declarative form of a Motif.
type Template struct {
	Name     string                `json:"name" yaml:"name"`
	Directed bool                  `json:"directed,omitempty" yaml:"directed,omitempty"`
	Nodes    []string              `json:"nodes" yaml:"nodes"`
	Edges    [][2]string           `json:"edges,omitempty" yaml:"edges,omitempty"`
	Roles    map[string]string     `json:"roles,omitempty" yaml:"roles,omitempty"`
	Attrs    map[string]core.Attrs `json:"attrs,omitempty" yaml:"attrs,omitempty"`
}

// Build validates t and turns it into an immutable Motif.
//
// Errors:
//   - ErrBadTemplate: missing name, no nodes, duplicate node, dangling edge or attrs key.
//   - ErrBadRole: empty role or role bound to an unknown node.
func (t Template) Build() (*Motif, error) {
	if t.Name == "" {
		return nil, fmt.Errorf("%s: empty name: %w", methodTemplate, ErrBadTemplate)
	}
	if len(t.Nodes) == 0 {
		return nil, fmt.Errorf("%s(%s): no nodes: %w", methodTemplate, t.Name, ErrBadTemplate)
	}

	g := core.NewGraph(core.WithDirected(t.Directed))
	for _, id := range t.Nodes {
		if err := g.InsertVertex(id, t.Attrs[id]); err != nil {
			return nil, fmt.Errorf("%s(%s): node %q: %v: %w", methodTemplate, t.Name, id, err, ErrBadTemplate)
		}
	}
	for key := range t.Attrs {
		if !g.HasVertex(key) {
			return nil, fmt.Errorf("%s(%s): attrs for unknown node %q: %w", methodTemplate, t.Name, key, ErrBadTemplate)
		}
	}
	for _, e := range t.Edges {
		if _, err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("%s(%s): edge %s-%s: %v: %w", methodTemplate, t.Name, e[0], e[1], err, ErrBadTemplate)
		}
	}

	return New(t.Name, g, t.Roles)
}

// ParseTemplate decodes exactly one template document from r and builds it.
func ParseTemplate(r io.Reader) (*Motif, error) {
	ms, err := ParseTemplates(r)
	if err != nil {
		return nil, err
	}
	if len(ms) != 1 {
		return nil, fmt.Errorf("%s: want 1 document, got %d: %w", methodTemplate, len(ms), ErrBadTemplate)
	}

	return ms[0], nil
}

// ParseTemplates decodes every document in r, in stream order.
func ParseTemplates(r io.Reader) ([]*Motif, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var out []*Motif
	for i := 0; ; i++ {
		var t Template
		err := dec.Decode(&t)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: document %d: %v: %w", methodTemplate, i, err, ErrBadTemplate)
		}
		m, err := t.Build()
		if err != nil {
			return nil, fmt.Errorf("%s: document %d: %w", methodTemplate, i, err)
		}
		out = append(out, m)
	}

	return out, nil
}

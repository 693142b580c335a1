// SPDX-License-Identifier: MIT
//
// File: methods_attrs.go
// Role: Vertex and edge attribute access.
// Concurrency:
//   - Vertex attrs live under muVert; edge attrs under muEdgeAdj.
//   - Getters return copies; callers never hold references into the graph.

package core

// SetVertexAttr sets key=value on vertex id.
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(1).
func (g *Graph) SetVertexAttr(id, key string, value any) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()

	v, ok := g.vertices[id]
	if !ok {
		return ErrVertexNotFound
	}
	v.Attrs[key] = value

	return nil
}

// MergeVertexAttrs copies every entry of attrs onto vertex id, overwriting
// existing keys.
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(len(attrs)).
func (g *Graph) MergeVertexAttrs(id string, attrs Attrs) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()

	v, ok := g.vertices[id]
	if !ok {
		return ErrVertexNotFound
	}
	for k, val := range attrs {
		v.Attrs[k] = cloneValue(val)
	}

	return nil
}

// DeleteVertexAttr removes key from vertex id. Missing keys are a no-op.
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) DeleteVertexAttr(id, key string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()

	v, ok := g.vertices[id]
	if !ok {
		return ErrVertexNotFound
	}
	delete(v.Attrs, key)

	return nil
}

// VertexAttr returns the value stored under key on vertex id.
// The boolean is false when the vertex or the key is absent.
func (g *Graph) VertexAttr(id, key string) (any, bool) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return nil, false
	}
	val, ok := v.Attrs[key]

	return val, ok
}

// VertexAttrs returns a copy of every attribute of vertex id.
// Errors: ErrVertexNotFound.
func (g *Graph) VertexAttrs(id string) (Attrs, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v.Attrs.Clone(), nil
}

// SetEdgeAttr sets key=value on edge eid.
// Errors: ErrEdgeNotFound.
func (g *Graph) SetEdgeAttr(eid, key string, value any) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	e.Attrs[key] = value

	return nil
}

// EdgeAttr returns the value stored under key on edge eid.
func (g *Graph) EdgeAttr(eid, key string) (any, bool) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, ok := g.edges[eid]
	if !ok {
		return nil, false
	}
	val, ok := e.Attrs[key]

	return val, ok
}

// EdgeAttrs returns a copy of every attribute of edge eid.
// Errors: ErrEdgeNotFound.
func (g *Graph) EdgeAttrs(eid string) (Attrs, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, ok := g.edges[eid]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e.Attrs.Clone(), nil
}

// SPDX-License-Identifier: MIT
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsynth/core"
)

func TestAddVertex_Contract(t *testing.T) {
	g := core.NewGraph()
	MustErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID, "AddVertex(empty)")
	MustErrorIs(t, g.AddVertex(""), core.ErrConfiguration, "AddVertex(empty) class")

	MustNoError(t, g.AddVertex(VertexA), "AddVertex(A)")
	MustNoError(t, g.AddVertex(VertexA), "AddVertex(A) again")
	MustEqualInt(t, g.VertexCount(), 1, "VertexCount")

	MustErrorIs(t, g.InsertVertex(VertexA, nil), core.ErrDuplicateVertex, "InsertVertex(dup)")
	MustNoError(t, g.InsertVertex(VertexB, core.Attrs{"role": "hub"}), "InsertVertex(B)")
	v, ok := g.VertexAttr(VertexB, "role")
	require.True(t, ok)
	assert.Equal(t, "hub", v)
}

func TestAddEdge_Policies(t *testing.T) {
	tests := []struct {
		name     string
		opts     []core.GraphOption
		from, to string
		prepare  func(g *core.Graph)
		wantErr  error
	}{
		{name: "missing endpoint", from: VertexA, to: VertexX, wantErr: core.ErrVertexNotFound},
		{name: "empty id", from: "", to: VertexA, wantErr: core.ErrEmptyVertexID},
		{name: "loop rejected", from: VertexA, to: VertexA, wantErr: core.ErrLoopNotAllowed},
		{name: "loop allowed", opts: []core.GraphOption{core.WithLoops()}, from: VertexA, to: VertexA},
		{
			name: "duplicate rejected", from: VertexB, to: VertexA, wantErr: core.ErrMultiEdgeNotAllowed,
			prepare: func(g *core.Graph) { _, _ = g.AddEdge(VertexA, VertexB) },
		},
		{
			name: "duplicate allowed", opts: []core.GraphOption{core.WithMultiEdges()}, from: VertexA, to: VertexB,
			prepare: func(g *core.Graph) { _, _ = g.AddEdge(VertexA, VertexB) },
		},
		{
			name: "directed reverse is distinct", opts: []core.GraphOption{core.WithDirected(true)}, from: VertexB, to: VertexA,
			prepare: func(g *core.Graph) { _, _ = g.AddEdge(VertexA, VertexB) },
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := core.NewGraph(tc.opts...)
			require.NoError(t, g.AddVertex(VertexA))
			require.NoError(t, g.AddVertex(VertexB))
			if tc.prepare != nil {
				tc.prepare(g)
			}
			_, err := g.AddEdge(tc.from, tc.to)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestVertexNotFound_IsTaxonomyNotFound(t *testing.T) {
	g := core.NewGraph()
	err := g.RemoveVertex(VertexX)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	require.ErrorIs(t, err, core.ErrNotFound)
	require.ErrorIs(t, g.RemoveEdge("e42"), core.ErrNotFound)
}

func TestEdgeIDs_NumericOrderAndMonotonic(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	require.NoError(t, g.AddVertex(VertexA))
	require.NoError(t, g.AddVertex(VertexB))
	for i := 0; i < 11; i++ {
		_, err := g.AddEdge(VertexA, VertexB)
		require.NoError(t, err)
	}
	ids := ExtractEdgeIDs(g.Edges())
	require.Len(t, ids, 11)
	assert.Equal(t, "e1", ids[0])
	assert.Equal(t, "e2", ids[1])
	assert.Equal(t, "e11", ids[10])

	require.NoError(t, g.RemoveEdge("e11"))
	eid, err := g.AddEdge(VertexB, VertexA)
	require.NoError(t, err)
	assert.Equal(t, "e12", eid, "removed IDs are never reused")
}

func TestRemoveVertex_DropsIncidentEdges(t *testing.T) {
	g := NewTriangle(t)
	require.NoError(t, g.AddVertex(VertexD))
	_, err := g.AddEdge(VertexD, VertexA)
	require.NoError(t, err)

	require.NoError(t, g.RemoveVertex(VertexA))
	MustEqualInt(t, g.VertexCount(), 3, "VertexCount")
	MustEqualInt(t, g.EdgeCount(), 1, "EdgeCount")
	for _, e := range g.Edges() {
		assert.NotEqual(t, VertexA, e.From)
		assert.NotEqual(t, VertexA, e.To)
	}
	d, err := g.Degree(VertexD)
	require.NoError(t, err)
	assert.Equal(t, 0, d)
}

func TestRemoveVertex_Directed(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	for _, id := range []string{VertexA, VertexB, VertexC} {
		require.NoError(t, g.AddVertex(id))
	}
	_, _ = g.AddEdge(VertexA, VertexB)
	_, _ = g.AddEdge(VertexC, VertexB)
	_, _ = g.AddEdge(VertexB, VertexC)

	require.NoError(t, g.RemoveVertex(VertexB))
	assert.Equal(t, 0, g.EdgeCount())
	assert.Equal(t, 0, g.Stats().SelfLoops)
	assert.Equal(t, 2, g.Stats().Isolated)
}

func TestDegree_Policy(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	require.NoError(t, g.AddVertex(VertexA))
	require.NoError(t, g.AddVertex(VertexB))
	_, _ = g.AddEdge(VertexA, VertexA)
	_, _ = g.AddEdge(VertexA, VertexB)

	d, err := g.Degree(VertexA)
	require.NoError(t, err)
	assert.Equal(t, 3, d, "undirected loop counts twice")

	dg := core.NewGraph(core.WithDirected(true), core.WithLoops())
	require.NoError(t, dg.AddVertex(VertexA))
	require.NoError(t, dg.AddVertex(VertexB))
	_, _ = dg.AddEdge(VertexA, VertexA)
	_, _ = dg.AddEdge(VertexB, VertexA)
	degs := dg.Degrees()
	assert.Equal(t, map[string]int{VertexA: 3, VertexB: 1}, degs)

	_, err = g.Degree(VertexX)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestNeighborIDs_DirectedVsAdjacent(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	for _, id := range []string{VertexA, VertexB, VertexC} {
		require.NoError(t, g.AddVertex(id))
	}
	_, _ = g.AddEdge(VertexA, VertexB)
	_, _ = g.AddEdge(VertexC, VertexB)

	out, err := g.NeighborIDs(VertexB)
	require.NoError(t, err)
	assert.Empty(t, out)

	adj, err := g.AdjacentIDs(VertexB)
	require.NoError(t, err)
	assert.Equal(t, []string{VertexA, VertexC}, adj)
	MustSortedStrings(t, adj, "AdjacentIDs")

	assert.True(t, g.HasEdge(VertexA, VertexB))
	assert.False(t, g.HasEdge(VertexB, VertexA))
}

func TestClone_DeepCopiesAttrs(t *testing.T) {
	g := NewTriangle(t)
	require.NoError(t, g.SetVertexAttr(VertexA, "tags", []string{"x"}))
	require.NoError(t, g.SetEdgeAttr("e1", "w", 1))

	c := g.Clone()
	require.NoError(t, c.SetVertexAttr(VertexA, "role", "hub"))
	require.NoError(t, c.SetEdgeAttr("e1", "w", 2))
	require.NoError(t, c.RemoveEdge("e2"))

	_, ok := g.VertexAttr(VertexA, "role")
	assert.False(t, ok)
	w, _ := g.EdgeAttr("e1", "w")
	assert.Equal(t, 1, w)
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, 2, c.EdgeCount())

	eid, err := c.AddEdge(VertexB, VertexC)
	require.NoError(t, err)
	assert.Equal(t, "e4", eid, "clone continues the edge ID sequence")

	empty := g.CloneEmpty()
	assert.Equal(t, 3, empty.VertexCount())
	assert.Equal(t, 0, empty.EdgeCount())
}

func TestEdgeAttrOptions(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(VertexA))
	require.NoError(t, g.AddVertex(VertexB))
	eid, err := g.AddEdge(VertexA, VertexB, core.WithEdgeAttr("kind", "link"), core.WithEdgeAttrs(core.Attrs{"w": 3}))
	require.NoError(t, err)

	attrs, err := g.EdgeAttrs(eid)
	require.NoError(t, err)
	assert.Equal(t, core.Attrs{"kind": "link", "w": 3}, attrs)

	e, err := g.Edge(eid)
	require.NoError(t, err)
	assert.Equal(t, VertexB, e.Other(VertexA))
	assert.Equal(t, []string{eid}, g.EdgesBetween(VertexB, VertexA))
}

func TestAttrs_CloneAndKeys(t *testing.T) {
	var nilAttrs core.Attrs
	assert.NotNil(t, nilAttrs.Clone())

	a := core.Attrs{"b": 1, "a": map[string]any{"x": 1}}
	c := a.Clone()
	c["a"].(core.Attrs)["x"] = 2
	assert.Equal(t, 1, a["a"].(map[string]any)["x"])
	assert.Equal(t, []string{"a", "b"}, a.Keys())
}

func TestMergeAndDeleteVertexAttrs(t *testing.T) {
	g := NewTriangle(t)
	require.NoError(t, g.MergeVertexAttrs(VertexA, core.Attrs{"x": 1, "y": 2}))
	require.NoError(t, g.MergeVertexAttrs(VertexA, core.Attrs{"y": 3}))
	require.NoError(t, g.DeleteVertexAttr(VertexA, "x"))

	attrs, err := g.VertexAttrs(VertexA)
	require.NoError(t, err)
	assert.Equal(t, core.Attrs{"y": 3}, attrs)
	require.ErrorIs(t, g.MergeVertexAttrs(VertexX, nil), core.ErrVertexNotFound)
}

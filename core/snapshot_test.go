// SPDX-License-Identifier: MIT
package core_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvsynth/core"
)

func TestSnapshot_RoundTrip(t *testing.T) {
	g := NewTriangle(t)
	require.NoError(t, g.SetVertexAttr(VertexA, "motif", "cycle_3"))
	require.NoError(t, g.SetEdgeAttr("e2", "kind", "ring"))

	s := g.Snapshot()
	require.Equal(t, []string{VertexA, VertexB, VertexC}, []string{s.Nodes[0].ID, s.Nodes[1].ID, s.Nodes[2].ID})
	require.Len(t, s.Edges, 3)

	back, err := core.FromSnapshot(s)
	require.NoError(t, err)
	if diff := cmp.Diff(s, back.Snapshot()); diff != "" {
		t.Fatalf("snapshot round trip mismatch (-want +got):\n%s", diff)
	}

	eid, err := back.AddEdge(VertexA, VertexA)
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)
	require.Empty(t, eid)

	require.NoError(t, back.RemoveEdge("e3"))
	eid, err = back.AddEdge(VertexC, VertexA)
	require.NoError(t, err)
	require.Equal(t, "e4", eid, "counter resumes after the largest restored ID")
}

func TestSnapshot_YAML(t *testing.T) {
	g := NewTriangle(t, core.WithDirected(true))
	data, err := yaml.Marshal(g.Snapshot())
	require.NoError(t, err)

	var s core.Snapshot
	require.NoError(t, yaml.Unmarshal(data, &s))
	back, err := core.FromSnapshot(s)
	require.NoError(t, err)
	require.True(t, back.Directed())
	require.True(t, back.HasEdge(VertexA, VertexB))
	require.False(t, back.HasEdge(VertexB, VertexA))
}

func TestFromSnapshot_Invalid(t *testing.T) {
	tests := []struct {
		name string
		s    core.Snapshot
	}{
		{"empty node id", core.Snapshot{Nodes: []core.NodeRecord{{ID: ""}}}},
		{"duplicate node", core.Snapshot{Nodes: []core.NodeRecord{{ID: "a"}, {ID: "a"}}}},
		{"dangling edge", core.Snapshot{
			Nodes: []core.NodeRecord{{ID: "a"}},
			Edges: []core.EdgeRecord{{ID: "e1", From: "a", To: "b"}},
		}},
		{"loop without flag", core.Snapshot{
			Nodes: []core.NodeRecord{{ID: "a"}},
			Edges: []core.EdgeRecord{{ID: "e1", From: "a", To: "a"}},
		}},
		{"parallel without flag", core.Snapshot{
			Nodes: []core.NodeRecord{{ID: "a"}, {ID: "b"}},
			Edges: []core.EdgeRecord{{ID: "e1", From: "a", To: "b"}, {ID: "e2", From: "b", To: "a"}},
		}},
		{"duplicate edge id", core.Snapshot{
			Multigraph: true,
			Nodes:      []core.NodeRecord{{ID: "a"}, {ID: "b"}},
			Edges:      []core.EdgeRecord{{ID: "e1", From: "a", To: "b"}, {ID: "e1", From: "a", To: "b"}},
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := core.FromSnapshot(tc.s)
			require.ErrorIs(t, err, core.ErrBadSnapshot)
			require.ErrorIs(t, err, core.ErrConfiguration)
		})
	}
}

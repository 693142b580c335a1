// SPDX-License-Identifier: MIT
package compose_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsynth/compose"
	"github.com/katalvlaran/lvsynth/core"
	"github.com/katalvlaran/lvsynth/motif"
	"github.com/katalvlaran/lvsynth/rng"
)

var (
	triangle = motif.MustBuild(motif.Spec{Kind: motif.Cycle, Size: 3})
	square   = motif.MustBuild(motif.Spec{Kind: motif.Cycle, Size: 4})
	star3    = motif.MustBuild(motif.Spec{Kind: motif.Star, Size: 3})
)

func stream(seed int64) *rng.Stream { return rng.New(seed).Stream(rng.StreamCompose) }

func template(t *testing.T, doc string) *motif.Motif {
	t.Helper()
	m, err := motif.ParseTemplate(strings.NewReader(doc))
	require.NoError(t, err)

	return m
}

func TestCompose_TwoTrianglesDisjoint(t *testing.T) {
	g, prov, err := compose.Compose(compose.Plan{Requests: compose.Repeat(triangle, 2, nil)}, nil)
	require.NoError(t, err)
	assert.Equal(t, 6, g.VertexCount())
	assert.Equal(t, 6, g.EdgeCount())
	assert.Equal(t, 6, prov.Len())
	assert.Equal(t, []string{"n0", "n1", "n2"}, prov.InstanceNodes(0))
	assert.Equal(t, []string{"n3", "n4", "n5"}, prov.InstanceNodes(1))

	id, ok := g.VertexAttr("n4", compose.AttrMotifID)
	require.True(t, ok)
	assert.Equal(t, "cycle_3_1", id)
	inst, _ := g.VertexAttr("n4", compose.AttrInstance)
	assert.Equal(t, 1, inst)

	assert.Equal(t, []string{"n0", "n3"}, prov.NodesWithRole(motif.RoleAnchor))
	assert.Len(t, prov.NodesWithRole(motif.ClassRing), 4)
	class, ok := prov.RoleClass("n1")
	require.True(t, ok)
	assert.Equal(t, motif.ClassRing, class)
}

func TestCompose_NodeConservation(t *testing.T) {
	reqs := []compose.Request{{Motif: triangle}, {Motif: square}, {Motif: star3}, {Motif: square}}
	g, prov, err := compose.Compose(compose.Plan{Requests: reqs}, nil)
	require.NoError(t, err)
	assert.Equal(t, 3+4+4+4, g.VertexCount())
	assert.Equal(t, 3+4+3+4, g.EdgeCount())
	for _, id := range g.Vertices() {
		assert.Len(t, prov.Origins(id), 1, "node %s shared", id)
	}
}

func TestCompose_AnchorMerge(t *testing.T) {
	const m = 4
	reqs := make([]compose.Request, m)
	for i := range reqs {
		reqs[i] = compose.Request{Motif: square, Attrs: core.Attrs{"color": i}}
	}
	plan := compose.Plan{Requests: reqs, Strategy: compose.AnchorMerge, Anchors: []string{motif.RoleAnchor}}
	g, prov, err := compose.Compose(plan, nil)
	require.NoError(t, err)

	assert.Equal(t, m*4-(m-1), g.VertexCount(), "m instances on one role save m-1 nodes")
	assert.Equal(t, m*4, g.EdgeCount())
	assert.Zero(t, prov.Collapsed())

	hub := prov.NodesWithRole(motif.RoleAnchor)
	require.Equal(t, []string{"n0"}, hub)
	assert.Len(t, prov.Origins("n0"), m)

	color, _ := g.VertexAttr("n0", "color")
	assert.Equal(t, m-1, color, "last request in plan order wins")
	o, ok := prov.Origin("n0")
	require.True(t, ok)
	assert.Equal(t, m-1, o.Instance)
	d, err := g.Degree("n0")
	require.NoError(t, err)
	assert.Equal(t, 2*m, d)
}

func TestCompose_AnchorMergeErrors(t *testing.T) {
	plan := compose.Plan{
		Requests: []compose.Request{{Motif: square}, {Motif: star3}},
		Strategy: compose.AnchorMerge,
		Anchors:  []string{motif.RoleAnchor},
	}
	_, _, err := compose.Compose(plan, nil)
	require.ErrorIs(t, err, compose.ErrUndefinedRole)
	require.ErrorIs(t, err, core.ErrComposition)
	assert.Contains(t, err.Error(), `"anchor"`)

	pair := template(t, "name: pair\nnodes: [x, y]\nedges: [[x, y]]\nroles: {a: x, b: y}\n")
	solo := template(t, "name: solo\nnodes: [z]\nroles: {a: z, b: z}\n")
	plan = compose.Plan{
		Requests: []compose.Request{{Motif: pair}, {Motif: solo}},
		Strategy: compose.AnchorMerge,
		Anchors:  []string{"a", "b"},
	}
	_, _, err = compose.Compose(plan, nil)
	require.ErrorIs(t, err, compose.ErrAnchorConflict)

	_, _, err = compose.Compose(compose.Plan{Strategy: compose.AnchorMerge}, nil)
	require.ErrorIs(t, err, core.ErrConfiguration)
}

func TestCompose_AnchorMergeCollapsesEdges(t *testing.T) {
	pair := template(t, "name: pair\nnodes: [x, y]\nedges: [[x, y]]\nroles: {a: x, b: y}\n")
	solo := template(t, "name: solo\nnodes: [z]\nroles: {a: z, b: z}\n")
	plan := compose.Plan{
		Requests: []compose.Request{{Motif: solo}, {Motif: pair}},
		Strategy: compose.AnchorMerge,
		Anchors:  []string{"a", "b"},
	}
	g, prov, err := compose.Compose(plan, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, g.VertexCount())
	assert.Zero(t, g.EdgeCount())
	assert.Equal(t, 1, prov.Collapsed())
}

func TestCompose_RandomAttachment(t *testing.T) {
	plan := compose.Plan{
		Requests:    compose.Repeat(triangle, 2, nil),
		Strategy:    compose.RandomAttachment,
		TargetEdges: 9,
	}
	g, _, err := compose.Compose(plan, stream(7))
	require.NoError(t, err)
	assert.Equal(t, 9, g.EdgeCount())
	for _, e := range g.Edges() {
		origin, _ := g.EdgeAttr(e.ID, compose.AttrOrigin)
		if origin != compose.OriginAttach {
			continue
		}
		a, _ := g.VertexAttr(e.From, compose.AttrInstance)
		b, _ := g.VertexAttr(e.To, compose.AttrInstance)
		assert.NotEqual(t, a, b, "attachment edge %s stays inside one instance", e.ID)
	}

	plan.TargetEdges, plan.TargetDensity = 0, 1
	g, _, err = compose.Compose(plan, stream(7))
	require.NoError(t, err)
	assert.Equal(t, 15, g.EdgeCount(), "density 1 saturates the cross pairs")

	plan.TargetDensity, plan.TargetEdges = 0, 16
	_, _, err = compose.Compose(plan, stream(7))
	require.ErrorIs(t, err, compose.ErrUnreachableTarget)
	assert.Contains(t, err.Error(), "target=16")

	plan.TargetEdges = 0
	_, _, err = compose.Compose(plan, stream(7))
	require.ErrorIs(t, err, core.ErrConfiguration, "no target")
}

func TestCompose_ConfigurationErrors(t *testing.T) {
	_, _, err := compose.Compose(compose.Plan{
		Requests: compose.Repeat(triangle, 2, nil), Strategy: compose.RandomAttachment, TargetEdges: 7,
	}, nil)
	require.ErrorIs(t, err, rng.ErrNilStream)

	_, _, err = compose.Compose(compose.Plan{Requests: []compose.Request{{}}}, nil)
	require.ErrorIs(t, err, compose.ErrBadPlan)
	require.ErrorIs(t, err, core.ErrConfiguration)

	_, _, err = compose.Compose(compose.Plan{Strategy: compose.Strategy(9)}, nil)
	require.ErrorIs(t, err, compose.ErrBadPlan)

	_, _, err = compose.Compose(compose.Plan{Links: compose.Links{Pattern: compose.LinkErdosRenyi, P: 2}}, nil)
	require.ErrorIs(t, err, compose.ErrBadPlan)
}

func TestCompose_StarCenterOutOfRange(t *testing.T) {
	for _, center := range []int{-1, 3, 4} {
		c := center
		plan := compose.Plan{
			Requests: compose.Repeat(square, 3, nil),
			Links:    compose.Links{Pattern: compose.LinkStar, Center: &c},
		}
		_, _, err := compose.Compose(plan, stream(3))
		require.ErrorIs(t, err, compose.ErrBadPlan, "center %d", center)
		require.ErrorIs(t, err, core.ErrConfiguration)
	}

	last := 2
	plan := compose.Plan{
		Requests: compose.Repeat(square, 3, nil),
		Links:    compose.Links{Pattern: compose.LinkStar, Center: &last},
	}
	_, prov, err := compose.Compose(plan, stream(3))
	require.NoError(t, err)
	assert.Equal(t, 2, prov.Links())
}

func TestCompose_EmptyPlan(t *testing.T) {
	g, prov, err := compose.Compose(compose.Plan{}, nil)
	require.NoError(t, err)
	assert.Zero(t, g.VertexCount())
	assert.Zero(t, prov.Len())
	assert.Empty(t, prov.Instances())
}

func TestCompose_Links(t *testing.T) {
	zero := 0
	tests := []struct {
		name  string
		n     int
		links compose.Links
		want  int
	}{
		{"sequential", 4, compose.Links{Pattern: compose.LinkSequential}, 3},
		{"star", 5, compose.Links{Pattern: compose.LinkStar, Center: &zero}, 4},
		{"hierarchical", 4, compose.Links{Pattern: compose.LinkHierarchical}, 3},
		{"hierarchical one group", 4, compose.Links{Pattern: compose.LinkHierarchical, Groups: 1}, 6},
		{"ba", 6, compose.Links{Pattern: compose.LinkBarabasiAlbert, M: 2}, 2 + 3*2},
		{"single instance", 1, compose.Links{Pattern: compose.LinkSequential}, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			plan := compose.Plan{Requests: compose.Repeat(square, tc.n, nil), Links: tc.links}
			g, prov, err := compose.Compose(plan, stream(3))
			require.NoError(t, err)
			// Disjoint instances never share nodes, so no link is skipped.
			assert.Equal(t, tc.want, prov.Links())
			assert.Equal(t, 4*tc.n+tc.want, g.EdgeCount())
		})
	}
}

func TestCompose_Extras(t *testing.T) {
	plan := compose.Plan{Requests: compose.Repeat(triangle, 2, nil), ExtraNodes: 3, ExtraEdges: 2}
	g, prov, err := compose.Compose(plan, stream(11))
	require.NoError(t, err)
	assert.Equal(t, 9, g.VertexCount())
	assert.Equal(t, 6+3+2, g.EdgeCount())
	assert.Equal(t, 6, prov.Len(), "extras carry no provenance")
	for _, id := range []string{"n6", "n7", "n8"} {
		v, _ := g.VertexAttr(id, compose.AttrMotif)
		assert.Equal(t, compose.OriginExtra, v)
	}

	plan = compose.Plan{Requests: compose.Repeat(triangle, 1, nil), ExtraEdges: 1}
	_, _, err = compose.Compose(plan, stream(11))
	require.ErrorIs(t, err, compose.ErrUnreachableTarget)
}

func TestCompose_Deterministic(t *testing.T) {
	plan := compose.Plan{
		Requests:      []compose.Request{{Motif: triangle}, {Motif: square}, {Motif: star3}, {Motif: triangle}},
		Strategy:      compose.RandomAttachment,
		TargetDensity: 0.3,
		Links:         compose.Links{Pattern: compose.LinkErdosRenyi, P: 0.5},
		ExtraNodes:    2,
	}
	g1, p1, err := compose.Compose(plan, stream(42))
	require.NoError(t, err)
	g2, p2, err := compose.Compose(plan, stream(42))
	require.NoError(t, err)

	if diff := cmp.Diff(g1.Snapshot(), g2.Snapshot()); diff != "" {
		t.Fatalf("snapshot mismatch (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(p1.Instances(), p2.Instances()); diff != "" {
		t.Fatalf("instances mismatch (-first +second):\n%s", diff)
	}
	for _, id := range p1.Nodes() {
		if diff := cmp.Diff(p1.Origins(id), p2.Origins(id)); diff != "" {
			t.Fatalf("origins of %s (-first +second):\n%s", id, diff)
		}
	}
}

func TestStrategy_Text(t *testing.T) {
	var st compose.Strategy
	require.NoError(t, st.UnmarshalText([]byte("anchor_merge")))
	assert.Equal(t, compose.AnchorMerge, st)
	b, err := compose.RandomAttachment.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "random_attachment", string(b))
	assert.ErrorIs(t, st.UnmarshalText([]byte("glue")), compose.ErrBadPlan)

	var lp compose.LinkPattern
	require.NoError(t, lp.UnmarshalText([]byte("SBM")))
	assert.Equal(t, compose.LinkBlocks, lp)
}

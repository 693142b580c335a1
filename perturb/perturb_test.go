// SPDX-License-Identifier: MIT
package perturb_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsynth/compose"
	"github.com/katalvlaran/lvsynth/core"
	"github.com/katalvlaran/lvsynth/motif"
	"github.com/katalvlaran/lvsynth/perturb"
	"github.com/katalvlaran/lvsynth/rng"
)

func stream(seed int64) *rng.Stream { return rng.New(seed).Stream(rng.StreamPerturb) }

// composed returns count disjoint copies of the motif described by spec.
func composed(t *testing.T, spec string, count int) *core.Graph {
	t.Helper()
	s, err := motif.ParseSpec(spec)
	require.NoError(t, err)
	g, _, err := compose.Compose(compose.Plan{Requests: compose.Repeat(motif.MustBuild(s), count, nil)}, nil)
	require.NoError(t, err)

	return g
}

func TestPerturb_TwoTrianglesRemoveTwo(t *testing.T) {
	g := composed(t, "triangle", 2)
	require.Equal(t, 6, g.VertexCount())
	require.Equal(t, 6, g.EdgeCount())

	budget := perturb.Budget{Count: 2}
	weights := perturb.Weights{RemoveEdge: 1}
	out, rep, err := perturb.Perturb(g, budget, weights, stream(42))
	require.NoError(t, err)

	require.Len(t, rep.Ops, 2)
	for _, op := range rep.Ops {
		assert.Equal(t, perturb.RemoveEdge, op.Kind)
		assert.Equal(t, perturb.Applied, op.Status)
	}
	assert.Equal(t, 4, out.EdgeCount())
	assert.Equal(t, 6, out.VertexCount())
	assert.Equal(t, 6, g.EdgeCount(), "input graph untouched")
	assert.Len(t, rep.Removed, 2)
	assert.Empty(t, rep.Added)
	assert.Equal(t, 6, rep.EdgesBefore)
	assert.Equal(t, 4, rep.EdgesAfter)

	again, rep2, err := perturb.Perturb(g, budget, weights, stream(42))
	require.NoError(t, err)
	if diff := cmp.Diff(rep, rep2); diff != "" {
		t.Fatalf("report mismatch (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(out.Snapshot(), again.Snapshot()); diff != "" {
		t.Fatalf("graph mismatch (-first +second):\n%s", diff)
	}
}

func TestPerturb_NodeConservation(t *testing.T) {
	g := composed(t, "house", 3)
	weights := perturb.Weights{AddEdge: 1, RemoveEdge: 1, RewireEdge: 1}
	out, rep, err := perturb.Perturb(g, perturb.Budget{Count: 25}, weights, stream(5))
	require.NoError(t, err)

	assert.Equal(t, g.VertexCount(), out.VertexCount())
	assert.Equal(t, 25, rep.Applied)
	added := rep.AppliedOf(perturb.AddEdge)
	removed := rep.AppliedOf(perturb.RemoveEdge)
	assert.Equal(t, rep.EdgesBefore+added-removed, rep.EdgesAfter)
	assert.Equal(t, out.EdgeCount(), rep.EdgesAfter)
	assert.Equal(t, len(rep.Added)-len(rep.Removed), rep.EdgesAfter-rep.EdgesBefore)
	for _, e := range out.Edges() {
		assert.NotEqual(t, e.From, e.To, "no loops")
	}
}

func TestPerturb_Rewire(t *testing.T) {
	g := composed(t, "chain_4", 1)
	out, rep, err := perturb.Perturb(g, perturb.Budget{Count: 1}, perturb.Weights{RewireEdge: 1}, stream(1))
	require.NoError(t, err)
	require.Equal(t, 1, rep.Applied)

	op := rep.Ops[0]
	assert.False(t, out.HasEdge(op.From, op.To), "old edge gone")
	assert.True(t, out.HasEdge(op.From, op.NewTo))
	assert.False(t, g.HasEdge(op.From, op.NewTo), "rewired onto a former non-neighbor")
	origin, ok := out.EdgeAttr(op.NewEdge, compose.AttrOrigin)
	require.True(t, ok)
	assert.Equal(t, compose.OriginMotif, origin, "edge attributes carried over")
	assert.Equal(t, g.EdgeCount(), out.EdgeCount())
}

func TestPerturb_Exhausted(t *testing.T) {
	star := composed(t, "star_3", 1)
	_, rep, err := perturb.Perturb(star, perturb.Budget{Count: 1}, perturb.Weights{RewireEdge: 1}, stream(1))
	require.NoError(t, err)
	assert.True(t, rep.Exhausted, "the hub is adjacent to every leaf")
	assert.Zero(t, rep.Applied)
	require.Len(t, rep.Ops, 1)
	assert.Equal(t, perturb.Skipped, rep.Ops[0].Status)
	assert.NotEmpty(t, rep.Ops[0].Reason)

	empty := core.NewGraph()
	require.NoError(t, empty.AddVertex("a"))
	_, rep, err = perturb.Perturb(empty, perturb.Budget{Count: 3}, perturb.Weights{RemoveEdge: 1, AddEdge: 0}, stream(1))
	require.NoError(t, err)
	assert.True(t, rep.Exhausted)
	assert.Equal(t, 1, rep.Skipped)

	// Remove is stuck, add still works: not exhausted.
	pair := core.NewGraph()
	require.NoError(t, pair.AddVertex("a"))
	require.NoError(t, pair.AddVertex("b"))
	out, rep, err := perturb.Perturb(pair, perturb.Budget{Count: 1}, perturb.Weights{RemoveEdge: 1, AddEdge: 1}, stream(9))
	require.NoError(t, err)
	assert.False(t, rep.Exhausted)
	assert.Equal(t, 1, rep.Applied)
	assert.Equal(t, perturb.AddEdge, rep.Ops[len(rep.Ops)-1].Kind)
	assert.True(t, out.HasEdge("a", "b"))
}

func TestPerturb_Toggle(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("a"))
	out, rep, err := perturb.Perturb(g, perturb.Budget{Count: 3}, perturb.Weights{ToggleAttribute: 1}, stream(3),
		perturb.WithToggleKey("flag"))
	require.NoError(t, err)
	require.Len(t, rep.Ops, 3)
	assert.Nil(t, rep.Ops[0].Old)
	assert.Equal(t, true, rep.Ops[0].New)
	assert.Equal(t, true, rep.Ops[1].Old)
	assert.Equal(t, false, rep.Ops[1].New)
	v, ok := out.VertexAttr("a", "flag")
	require.True(t, ok)
	assert.Equal(t, true, v)
	_, ok = g.VertexAttr("a", "flag")
	assert.False(t, ok)
}

func TestPerturb_Fraction(t *testing.T) {
	g := composed(t, "triangle", 2)
	_, rep, err := perturb.Perturb(g, perturb.Budget{Fraction: 0.5}, perturb.Weights{ToggleAttribute: 1}, stream(2))
	require.NoError(t, err)
	assert.Equal(t, 3, rep.Budget)

	h := composed(t, "house", 1)
	_, rep, err = perturb.Perturb(h, perturb.Budget{Fraction: 0.5, Of: perturb.Nodes}, perturb.Weights{ToggleAttribute: 1}, stream(2))
	require.NoError(t, err)
	assert.Equal(t, 3, rep.Budget, "2.5 rounds to 3")

	out, rep, err := perturb.Perturb(h, perturb.Budget{}, perturb.Weights{AddEdge: 1}, nil)
	require.NoError(t, err, "zero budget needs no stream")
	assert.Zero(t, rep.Budget)
	assert.Equal(t, h.EdgeCount(), out.EdgeCount())
}

func TestPerturb_DegreeWeighted(t *testing.T) {
	g := composed(t, "triangle", 1)
	require.NoError(t, g.AddVertex("x"))
	require.NoError(t, g.AddVertex("y"))
	for seed := int64(0); seed < 10; seed++ {
		_, rep, err := perturb.Perturb(g, perturb.Budget{Count: 1}, perturb.Weights{AddEdge: 1}, stream(seed),
			perturb.WithSelection(perturb.DegreeWeighted))
		require.NoError(t, err)
		op := rep.Ops[0]
		assert.Contains(t, []string{"n0", "n1", "n2"}, op.From, "zero-degree nodes are never the first endpoint")
		assert.Contains(t, []string{"x", "y"}, op.To)
	}
}

func TestPerturb_MixedDegreeWeightedRerun(t *testing.T) {
	g := composed(t, "house", 2)
	require.NoError(t, g.AddVertex("loner"))
	budget := perturb.Budget{Count: 30}
	weights := perturb.Weights{AddEdge: 2, RemoveEdge: 1, RewireEdge: 1, ToggleAttribute: 1}
	opts := []perturb.Option{perturb.WithSelection(perturb.DegreeWeighted), perturb.WithToggleKey("flag")}

	first, rep, err := perturb.Perturb(g, budget, weights, stream(11), opts...)
	require.NoError(t, err)
	assert.Equal(t, 30, rep.Applied)
	assert.Equal(t, len(rep.Ops), rep.Applied+rep.Skipped)

	for i := 0; i < 3; i++ {
		again, rep2, err := perturb.Perturb(g, budget, weights, stream(11), opts...)
		require.NoError(t, err)
		if diff := cmp.Diff(rep.Ops, rep2.Ops); diff != "" {
			t.Fatalf("rerun %d: op log differs (-first +rerun):\n%s", i, diff)
		}
		if diff := cmp.Diff(first.Snapshot(), again.Snapshot()); diff != "" {
			t.Fatalf("rerun %d: graph differs (-first +rerun):\n%s", i, diff)
		}
	}
}

func TestPerturb_ConfigurationErrors(t *testing.T) {
	g := composed(t, "triangle", 1)
	w := perturb.Weights{RemoveEdge: 1}
	tests := []struct {
		name    string
		budget  perturb.Budget
		weights perturb.Weights
		s       *rng.Stream
		opts    []perturb.Option
		want    error
	}{
		{name: "negative count", budget: perturb.Budget{Count: -1}, weights: w, s: stream(1), want: perturb.ErrBadBudget},
		{name: "fraction above one", budget: perturb.Budget{Fraction: 1.5}, weights: w, s: stream(1), want: perturb.ErrBadBudget},
		{name: "both set", budget: perturb.Budget{Count: 1, Fraction: 0.5}, weights: w, s: stream(1), want: perturb.ErrBadBudget},
		{name: "negative weight", budget: perturb.Budget{Count: 1}, weights: perturb.Weights{AddEdge: -1, RemoveEdge: 1}, s: stream(1), want: perturb.ErrBadWeights},
		{name: "zero weights", budget: perturb.Budget{Count: 1}, s: stream(1), want: perturb.ErrBadWeights},
		{name: "empty toggle key", budget: perturb.Budget{Count: 1}, weights: w, s: stream(1), opts: []perturb.Option{perturb.WithToggleKey("")}, want: perturb.ErrOptionViolation},
		{name: "bad selection", budget: perturb.Budget{Count: 1}, weights: w, s: stream(1), opts: []perturb.Option{perturb.WithSelection(7)}, want: perturb.ErrOptionViolation},
		{name: "nil stream", budget: perturb.Budget{Count: 1}, weights: w, want: rng.ErrNilStream},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := perturb.Perturb(g, tc.budget, tc.weights, tc.s, tc.opts...)
			require.ErrorIs(t, err, tc.want)
			require.ErrorIs(t, err, core.ErrConfiguration)
		})
	}

	_, _, err := perturb.Perturb(nil, perturb.Budget{}, w, nil)
	require.ErrorIs(t, err, perturb.ErrGraphNil)
}

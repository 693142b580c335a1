// SPDX-License-Identifier: MIT
package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsynth/bfs"
	"github.com/katalvlaran/lvsynth/core"
)

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := build(t, false, nil, "A")
	_, err = bfs.BFS(g, "missing")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
	assert.ErrorIs(t, err, core.ErrNotFound)

	//nolint:staticcheck // a nil context is the violation under test
	_, err = bfs.BFS(g, "A", bfs.WithContext(nil))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
	assert.ErrorIs(t, err, core.ErrConfiguration)
}

func TestBFS_CycleDepths(t *testing.T) {
	g := build(t, false, [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}})
	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "C"}, res.Order)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}, res.Depth)
}

func TestBFS_Disconnected(t *testing.T) {
	g := build(t, false, [][2]string{{"X", "Y"}, {"P", "Q"}})
	res, err := bfs.BFS(g, "X")
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y"}, res.Order)
	assert.NotContains(t, res.Depth, "P")
}

func TestBFS_DirectedAndWeak(t *testing.T) {
	g := build(t, true, [][2]string{{"A", "B"}, {"C", "B"}})
	res, err := bfs.BFS(g, "B")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, res.Order, "no outgoing edges from B")

	res, err = bfs.BFS(g, "B", bfs.WithWeak())
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A", "C"}, res.Order)
}

func TestBFS_HookAndCancel(t *testing.T) {
	g := build(t, false, [][2]string{{"A", "B"}, {"B", "C"}})
	stop := errors.New("stop")
	_, err := bfs.BFS(g, "A", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "B" {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(g, "A", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestComponents(t *testing.T) {
	g := build(t, false, [][2]string{{"A", "B"}, {"B", "C"}, {"X", "Y"}}, "Z")
	comps, err := bfs.Components(g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B", "C"}, {"X", "Y"}, {"Z"}}, comps)

	sum, err := bfs.Summarize(g)
	require.NoError(t, err)
	assert.Equal(t, bfs.Summary{Components: 3, Largest: 3}, sum)

	d := build(t, true, [][2]string{{"A", "B"}, {"C", "B"}})
	sum, err = bfs.Summarize(d)
	require.NoError(t, err)
	assert.Equal(t, bfs.Summary{Components: 1, Largest: 3}, sum, "direction is ignored")

	sum, err = bfs.Summarize(core.NewGraph())
	require.NoError(t, err)
	assert.Zero(t, sum)

	_, err = bfs.Components(nil)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
}

func TestBetweenness(t *testing.T) {
	path := build(t, false, [][2]string{{"A", "B"}, {"B", "C"}})
	cb, err := bfs.Betweenness(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"A": 0, "B": 1, "C": 0}, cb)

	star := build(t, false, [][2]string{{"H", "L1"}, {"H", "L2"}, {"H", "L3"}})
	cb, err = bfs.Betweenness(star)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, cb["H"], 1e-9)
	assert.Zero(t, cb["L1"])

	// Square: each corner lies on half of the paths between its two neighbors.
	sq := build(t, false, [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}})
	cb, err = bfs.Betweenness(sq)
	require.NoError(t, err)
	for _, v := range []string{"A", "B", "C", "D"} {
		assert.InDelta(t, 0.5, cb[v], 1e-9, v)
	}

	dir := build(t, true, [][2]string{{"A", "B"}, {"B", "C"}})
	cb, err = bfs.Betweenness(dir)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, cb["B"], 1e-9)
}

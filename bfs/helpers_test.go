// SPDX-License-Identifier: MIT
package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsynth/core"
)

// build returns a graph holding every endpoint of edges plus extra isolated vertices.
func build(t testing.TB, directed bool, edges [][2]string, isolated ...string) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(directed))
	for _, e := range edges {
		require.NoError(t, g.AddVertex(e[0]))
		require.NoError(t, g.AddVertex(e[1]))
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}
	for _, v := range isolated {
		require.NoError(t, g.AddVertex(v))
	}

	return g
}

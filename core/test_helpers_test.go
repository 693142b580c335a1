// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for lvsynth/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Keep the helpers free of *testing.T usage inside goroutines.

package core_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/katalvlaran/lvsynth/core"
)

// Common vertex IDs used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexX = "X"
)

// Common concurrency sizes used across core tests.
const (
	NConcurrentAdds   = 200
	NConcurrentRounds = 100
	NReaders          = 50
	NCloners          = 20
)

// NewTriangle returns an undirected triangle A-B-C.
func NewTriangle(t *testing.T, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g := core.NewGraph(opts...)
	for _, id := range []string{VertexA, VertexB, VertexC} {
		MustNoError(t, g.AddVertex(id), "AddVertex("+id+")")
	}
	for _, p := range [][2]string{{VertexA, VertexB}, {VertexB, VertexC}, {VertexC, VertexA}} {
		_, err := g.AddEdge(p[0], p[1])
		MustNoError(t, err, "AddEdge("+p[0]+","+p[1]+")")
	}

	return g
}

// MustNoError fails the test immediately if err != nil.
func MustNoError(t *testing.T, err error, op string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", op, err)
	}
}

// MustErrorIs fails the test unless errors.Is(err, target).
func MustErrorIs(t *testing.T, err error, target error, op string) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("%s: got error %v, want errors.Is(_, %v)", op, err, target)
	}
}

// MustEqualInt fails the test if got != want.
func MustEqualInt(t *testing.T, got, want int, op string) {
	t.Helper()
	if got != want {
		t.Fatalf("%s: got %d, want %d", op, got, want)
	}
}

// MustSortedStrings fails the test unless ids are in ascending order.
func MustSortedStrings(t *testing.T, ids []string, op string) {
	t.Helper()
	if !sort.StringsAreSorted(ids) {
		t.Fatalf("%s: not sorted: %v", op, ids)
	}
}

// ExtractEdgeIDs returns the IDs of edges in the given order.
func ExtractEdgeIDs(edges []*core.Edge) []string {
	out := make([]string, len(edges))
	for i, e := range edges {
		out[i] = e.ID
	}

	return out
}

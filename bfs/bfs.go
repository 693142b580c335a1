// SPDX-License-Identifier: MIT
// Package: lvsynth/bfs
//
// bfs.go — the breadth-first walker.
//
// Determinism: neighbors are expanded in the sorted order core returns, so
// the visit sequence is reproducible.

package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvsynth/core"
)

type queueItem struct {
	id    string
	depth int
}

// walker holds the mutable state of one walk.
type walker struct {
	graph   *core.Graph
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// BFS walks g from startID.
//
// Errors:
//   - ErrGraphNil, ErrOptionViolation (core.ErrConfiguration).
//   - ErrStartVertexNotFound (core.ErrNotFound).
//   - ctx.Err() on cancellation, or the wrapped OnVisit error.
//
// Complexity: O(V + E) time, O(V) memory.
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &Result{
			Order: make([]string, 0, n),
			Depth: make(map[string]int, n),
		},
	}
	w.enqueue(startID, 0)

	return w.res, w.loop()
}

func (w *walker) enqueue(id string, d int) {
	w.visited[id] = true
	w.res.Depth[id] = d
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		if err := w.expand(item); err != nil {
			return err
		}
	}

	return nil
}

// expand enqueues every unseen neighbor one level down.
func (w *walker) expand(item queueItem) error {
	next := item.depth + 1
	nbrs, err := neighbors(w.graph, item.id, w.opts.Weak)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %q: %w", item.id, err)
	}
	for _, nbr := range nbrs {
		if w.visited[nbr] {
			continue
		}
		w.enqueue(nbr, next)
	}

	return nil
}

// neighbors returns the sorted IDs reachable in one hop from id.
func neighbors(g *core.Graph, id string, weak bool) ([]string, error) {
	if weak {
		return g.AdjacentIDs(id)
	}

	return g.NeighborIDs(id)
}

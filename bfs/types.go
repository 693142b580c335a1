// SPDX-License-Identifier: MIT
// Package: lvsynth/bfs
//
// types.go — options, sentinels and the traversal result.
//
// Option policy:
//   • Meaningless option values are recorded and surfaced as
//     ErrOptionViolation when the walk starts; nothing panics.

package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvsynth/core"
)

// Sentinel errors.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = fmt.Errorf("bfs: start vertex %w", core.ErrNotFound)

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = fmt.Errorf("bfs: graph is nil: %w", core.ErrConfiguration)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = fmt.Errorf("bfs: invalid option: %w", core.ErrConfiguration)
)

// Option configures a walk.
type Option func(*Options)

// Options holds walk parameters and hooks.
type Options struct {
	// Ctx is checked once per dequeue.
	Ctx context.Context

	// OnVisit runs when a vertex is visited; a non-nil error aborts the walk.
	OnVisit func(id string, depth int) error

	// Weak follows edges in both directions on directed graphs
	// (weak connectivity). Undirected graphs are unaffected.
	Weak bool

	err error
}

// DefaultOptions returns background context, no hook and strong
// (edge-direction) traversal.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(string, int) error { return nil },
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = fmt.Errorf("%w: nil context", ErrOptionViolation)
			return
		}
		o.Ctx = ctx
	}
}

// WithOnVisit registers the visit hook.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithWeak ignores edge direction.
func WithWeak() Option {
	return func(o *Options) { o.Weak = true }
}

// Result is the outcome of one walk.
type Result struct {
	Order []string       // visit sequence
	Depth map[string]int // hops from the start
}

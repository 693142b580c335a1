// SPDX-License-Identifier: MIT
// Package: lvsynth/label
//
// errors.go — sentinel errors for label assignment.

package label

import (
	"fmt"

	"github.com/katalvlaran/lvsynth/core"
)

var (
	// ErrBadStrategy indicates an empty key, missing categories, or weights
	// that are negative or all zero.
	ErrBadStrategy = fmt.Errorf("label: invalid strategy: %w", core.ErrConfiguration)

	// ErrNoProvenance indicates a role-correlated strategy without provenance.
	ErrNoProvenance = fmt.Errorf("label: role-correlated strategy needs provenance: %w", core.ErrConfiguration)

	// ErrUnsupportedTarget indicates edge targets with a node-only strategy.
	ErrUnsupportedTarget = fmt.Errorf("label: strategy does not label edges: %w", core.ErrConfiguration)

	// ErrOptionViolation indicates an Option given a meaningless value.
	ErrOptionViolation = fmt.Errorf("label: invalid option: %w", core.ErrConfiguration)

	// ErrGraphNil indicates a nil input graph.
	ErrGraphNil = fmt.Errorf("label: graph is nil: %w", core.ErrConfiguration)
)

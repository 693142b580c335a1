// SPDX-License-Identifier: MIT
// Package: lvsynth/remove
//
// errors.go — sentinel errors for node removal.

package remove

import (
	"fmt"

	"github.com/katalvlaran/lvsynth/core"
)

var (
	// ErrBadPolicy indicates a policy whose fields contradict its kind.
	ErrBadPolicy = fmt.Errorf("remove: invalid policy: %w", core.ErrConfiguration)

	// ErrNoProvenance indicates a role target without provenance.
	ErrNoProvenance = fmt.Errorf("remove: role targets need provenance: %w", core.ErrConfiguration)

	// ErrShortfall indicates more removals than the graph has nodes.
	ErrShortfall = fmt.Errorf("remove: not enough nodes: %w", core.ErrCapacity)

	// ErrRoleNotFound indicates a targeted role played by no present node.
	ErrRoleNotFound = fmt.Errorf("remove: role %w", core.ErrNotFound)

	// ErrGraphNil indicates a nil input graph.
	ErrGraphNil = fmt.Errorf("remove: graph is nil: %w", core.ErrConfiguration)
)

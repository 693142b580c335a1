// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: error taxonomy shared by every lvsynth package, plus graph sentinels.
//
// Error policy:
//   - Four taxonomy sentinels classify every failure the engine can return.
//   - Package sentinels wrap exactly one taxonomy sentinel, so callers can
//     branch with errors.Is on either the precise cause or its class.
//   - Call sites attach context with fmt.Errorf("%s: ...: %w", method, ..., err).

package core

import (
	"errors"
	"fmt"
)

// Taxonomy sentinels.
var (
	// ErrConfiguration marks a bad or missing option, a malformed seed, or a
	// strategy whose preconditions are not met by its inputs.
	ErrConfiguration = errors.New("configuration error")

	// ErrComposition marks a merge or attachment request that cannot be satisfied.
	ErrComposition = errors.New("composition error")

	// ErrCapacity marks a budget or count that exceeds what the graph holds.
	ErrCapacity = errors.New("capacity error")

	// ErrNotFound marks an operation that targets a nonexistent node or edge.
	ErrNotFound = errors.New("not found")
)

// Graph sentinels.
var (
	// ErrEmptyVertexID indicates that a vertex ID argument is empty.
	ErrEmptyVertexID = fmt.Errorf("core: vertex ID is empty: %w", ErrConfiguration)

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = fmt.Errorf("core: vertex %w", ErrNotFound)

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = fmt.Errorf("core: edge %w", ErrNotFound)

	// ErrDuplicateVertex indicates an explicit insert of an ID that already exists.
	ErrDuplicateVertex = errors.New("core: duplicate vertex")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrBadSnapshot indicates a Snapshot that does not describe a valid graph.
	ErrBadSnapshot = fmt.Errorf("core: invalid snapshot: %w", ErrConfiguration)
)

// SPDX-License-Identifier: MIT
// Package: lvsynth/compose
//
// errors.go — sentinel errors for composition.
//
// Error policy:
//   • Unsatisfiable merge or attachment requests wrap core.ErrComposition.
//   • Malformed plans wrap core.ErrConfiguration.

package compose

import (
	"fmt"

	"github.com/katalvlaran/lvsynth/core"
)

// ErrUndefinedRole indicates an anchor role that a requested motif does not define.
var ErrUndefinedRole = fmt.Errorf("compose: anchor role undefined: %w", core.ErrComposition)

// ErrAnchorConflict indicates one local node whose anchor roles are already
// bound to two different global nodes.
var ErrAnchorConflict = fmt.Errorf("compose: anchor conflict: %w", core.ErrComposition)

// ErrUnreachableTarget indicates an edge target above what the candidate pairs can supply.
var ErrUnreachableTarget = fmt.Errorf("compose: target unreachable: %w", core.ErrComposition)

// ErrBadPlan indicates a structurally invalid plan (nil motif, unknown strategy, bad target).
var ErrBadPlan = fmt.Errorf("compose: invalid plan: %w", core.ErrConfiguration)

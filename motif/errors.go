// SPDX-License-Identifier: MIT
// Package: lvsynth/motif
//
// errors.go — sentinel errors for the motif package.
//
// Error policy:
//   • Every sentinel wraps core.ErrConfiguration: a bad motif is a bad input.
//   • Implementations attach context with "%s: ...: %w" using a method tag.

package motif

import (
	"fmt"

	"github.com/katalvlaran/lvsynth/core"
)

// ErrTooFewNodes indicates a size parameter below the minimum for its kind.
var ErrTooFewNodes = fmt.Errorf("motif: size too small: %w", core.ErrConfiguration)

// ErrUnknownKind indicates a kind or spec string outside the closed Kind set.
var ErrUnknownKind = fmt.Errorf("motif: unknown kind: %w", core.ErrConfiguration)

// ErrBadRole indicates an empty role name or a role bound to a missing node.
var ErrBadRole = fmt.Errorf("motif: invalid role: %w", core.ErrConfiguration)

// ErrBadTemplate indicates a YAML template that does not describe a motif.
var ErrBadTemplate = fmt.Errorf("motif: invalid template: %w", core.ErrConfiguration)

// ErrDuplicateName indicates a second motif registered under an existing name.
var ErrDuplicateName = fmt.Errorf("motif: duplicate name: %w", core.ErrConfiguration)

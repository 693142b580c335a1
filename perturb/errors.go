// SPDX-License-Identifier: MIT
// Package: lvsynth/perturb
//
// errors.go — sentinel errors for the perturbation engine.
//
// Every sentinel wraps core.ErrConfiguration: the engine itself never fails
// on a valid graph; ops without a target are recorded as skipped instead.

package perturb

import (
	"fmt"

	"github.com/katalvlaran/lvsynth/core"
)

// ErrBadBudget indicates a negative count, a fraction outside [0,1], or both set.
var ErrBadBudget = fmt.Errorf("perturb: invalid budget: %w", core.ErrConfiguration)

// ErrBadWeights indicates a negative kind weight or all weights zero.
var ErrBadWeights = fmt.Errorf("perturb: invalid weights: %w", core.ErrConfiguration)

// ErrOptionViolation indicates an Option given a meaningless value.
var ErrOptionViolation = fmt.Errorf("perturb: invalid option: %w", core.ErrConfiguration)

// ErrGraphNil indicates a nil input graph.
var ErrGraphNil = fmt.Errorf("perturb: graph is nil: %w", core.ErrConfiguration)

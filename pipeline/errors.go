// SPDX-License-Identifier: MIT
// Package: lvsynth/pipeline
//
// errors.go — sentinel errors for configuration and runs.

package pipeline

import (
	"fmt"

	"github.com/katalvlaran/lvsynth/core"
)

var (
	// ErrBadConfig indicates a document that does not decode or validate.
	ErrBadConfig = fmt.Errorf("pipeline: invalid config: %w", core.ErrConfiguration)

	// ErrOptionViolation indicates an Option given a meaningless value.
	ErrOptionViolation = fmt.Errorf("pipeline: invalid option: %w", core.ErrConfiguration)
)

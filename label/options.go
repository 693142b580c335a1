// SPDX-License-Identifier: MIT
// Package: lvsynth/label
//
// options.go — target, sampling and tolerance options.

package label

import (
	"fmt"
	"strings"
)

// Target selects what is labelled.
type Target uint8

const (
	Nodes Target = iota
	Edges
)

// String returns "nodes" or "edges".
func (t Target) String() string {
	if t == Edges {
		return "edges"
	}

	return "nodes"
}

// MarshalText implements encoding.TextMarshaler.
func (t Target) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Target) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "nodes", "":
		*t = Nodes
	case "edges":
		*t = Edges
	default:
		return fmt.Errorf("target %q: %w", text, ErrOptionViolation)
	}

	return nil
}

// Method is how labels are allocated.
type Method uint8

const (
	// Quota allocates exact counts by largest remainder, then places them
	// over a shuffle. Frequency error stays below 1/N.
	Quota Method = iota
	// Independent draws every target on its own; used only when the
	// population reaches MinSampleSize and is large enough for Tolerance
	// to hold, otherwise Quota.
	Independent
	// Deterministic means no randomness was involved (Structural).
	Deterministic
)

var methodNames = [...]string{"quota", "independent", "deterministic"}

// String returns the method name.
func (m Method) String() string {
	if int(m) < len(methodNames) {
		return methodNames[m]
	}

	return fmt.Sprintf("method(%d)", m)
}

// MarshalText implements encoding.TextMarshaler.
func (m Method) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Method) UnmarshalText(text []byte) error {
	want := strings.ToLower(strings.TrimSpace(string(text)))
	if want == "" {
		*m = Quota
		return nil
	}
	for i, n := range methodNames {
		if n == want {
			*m = Method(i)
			return nil
		}
	}

	return fmt.Errorf("sampling %q: %w", text, ErrOptionViolation)
}

// Defaults.
const (
	DefaultTolerance     = 0.05
	DefaultMinSampleSize = 100
)

// Options holds assignment settings.
type Options struct {
	Target        Target
	Sampling      Method
	Tolerance     float64
	MinSampleSize int

	err error
}

// Option configures Assign.
type Option func(*Options)

// DefaultOptions returns node targets, quota sampling, tolerance 0.05 and
// minimum sample size 100.
func DefaultOptions() Options {
	return Options{Target: Nodes, Sampling: Quota, Tolerance: DefaultTolerance, MinSampleSize: DefaultMinSampleSize}
}

// WithTarget labels nodes or edges.
func WithTarget(t Target) Option {
	return func(o *Options) {
		if t != Nodes && t != Edges {
			o.err = fmt.Errorf("%w: target %d", ErrOptionViolation, t)
			return
		}
		o.Target = t
	}
}

// WithSampling selects Quota or Independent.
func WithSampling(m Method) Option {
	return func(o *Options) {
		if m != Quota && m != Independent {
			o.err = fmt.Errorf("%w: sampling %v", ErrOptionViolation, m)
			return
		}
		o.Sampling = m
	}
}

// WithTolerance sets the accepted frequency deviation, in (0, 1).
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if !(tol > 0 && tol < 1) {
			o.err = fmt.Errorf("%w: tolerance %g outside (0,1)", ErrOptionViolation, tol)
			return
		}
		o.Tolerance = tol
	}
}

// WithMinSampleSize sets the population from which the tolerance is
// guaranteed and independent sampling is allowed.
func WithMinSampleSize(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: min sample size %d < 1", ErrOptionViolation, n)
			return
		}
		o.MinSampleSize = n
	}
}

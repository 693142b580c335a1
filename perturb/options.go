// SPDX-License-Identifier: MIT
// Package: lvsynth/perturb
//
// options.go — functional options; violations surface as ErrOptionViolation.

package perturb

import (
	"fmt"
	"strings"
)

// Selection chooses how targets are drawn among eligible elements.
type Selection uint8

const (
	// Uniform gives every eligible element the same chance.
	Uniform Selection = iota
	// DegreeWeighted favors high-degree nodes (edges by endpoint degree sum);
	// falls back to uniform when every weight is zero.
	DegreeWeighted
)

var selectionNames = [...]string{"uniform", "degree_weighted"}

// String returns the snake_case selection name.
func (sel Selection) String() string {
	if int(sel) < len(selectionNames) {
		return selectionNames[sel]
	}

	return fmt.Sprintf("selection(%d)", sel)
}

// MarshalText implements encoding.TextMarshaler.
func (sel Selection) MarshalText() ([]byte, error) {
	if int(sel) >= len(selectionNames) {
		return nil, fmt.Errorf("%w: selection %d", ErrOptionViolation, sel)
	}

	return []byte(sel.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler; empty text is Uniform.
func (sel *Selection) UnmarshalText(text []byte) error {
	want := strings.ToLower(strings.TrimSpace(string(text)))
	if want == "" {
		*sel = Uniform
		return nil
	}
	for i, n := range selectionNames {
		if n == want {
			*sel = Selection(i)
			return nil
		}
	}

	return fmt.Errorf("%w: selection %q", ErrOptionViolation, text)
}

// DefaultToggleKey is the attribute flipped by toggle_attribute.
const DefaultToggleKey = "perturbed"

// Options holds engine settings.
type Options struct {
	Selection Selection
	ToggleKey string

	err error
}

// Option configures Perturb.
type Option func(*Options)

// DefaultOptions returns uniform selection and the "perturbed" toggle key.
func DefaultOptions() Options {
	return Options{Selection: Uniform, ToggleKey: DefaultToggleKey}
}

// WithSelection sets the target selection rule.
func WithSelection(sel Selection) Option {
	return func(o *Options) {
		if sel != Uniform && sel != DegreeWeighted {
			o.err = fmt.Errorf("%w: selection %d", ErrOptionViolation, sel)
			return
		}
		o.Selection = sel
	}
}

// WithToggleKey sets the boolean attribute flipped by toggle_attribute.
func WithToggleKey(key string) Option {
	return func(o *Options) {
		if key == "" {
			o.err = fmt.Errorf("%w: empty toggle key", ErrOptionViolation)
			return
		}
		o.ToggleKey = key
	}
}

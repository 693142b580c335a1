// SPDX-License-Identifier: MIT
// Package: lvsynth/label
//
// strategy.go — the closed set of labelling strategies.
//
// Contract:
//   • Strategy is a sealed interface; Assign dispatches with a type switch.
//   • Category weights are relative; they are normalized per distribution.

package label

import (
	"fmt"
	"math"
	"sort"
)

// Category is one label value and its relative weight.
type Category struct {
	Value  any     `json:"value" yaml:"value"`
	Weight float64 `json:"weight" yaml:"weight"`
}

// Uniform returns equally weighted categories for values.
func Uniform(values ...any) []Category {
	out := make([]Category, len(values))
	for i, v := range values {
		out[i] = Category{Value: v, Weight: 1}
	}

	return out
}

// Strategy is implemented by Categorical, DegreeBucketed, RoleCorrelated and Structural.
type Strategy interface {
	Name() string
	validate() error
}

// Categorical labels targets by a weighted distribution, placed at random.
type Categorical struct {
	Categories []Category
}

// DegreeBucketed sorts targets by degree (ties shuffled) and fills category
// quotas in listed order: the first category gets the lowest degrees, or the
// highest when Descending.
type DegreeBucketed struct {
	Categories []Category
	Descending bool
}

// RoleCorrelated uses a per-role distribution taken from provenance. Roles
// is keyed by full role ("leaf.2") or role class ("leaf"); the full role
// wins. Nodes matching neither use Fallback, or stay unlabelled when
// Fallback is empty.
type RoleCorrelated struct {
	Roles    map[string][]Category
	Fallback []Category
}

// Structural labels nodes by the cycles they sit on: 0 inside a house
// (a triangle and a 4-cycle sharing exactly two nodes), 2 on another
// 4-cycle, 1 on another triangle, -1 otherwise.
type Structural struct{}

// Strategy names.
const (
	NameCategorical    = "categorical"
	NameDegreeBucketed = "degree_bucketed"
	NameRoleCorrelated = "role_correlated"
	NameStructural     = "structural"
)

func (Categorical) Name() string    { return NameCategorical }
func (DegreeBucketed) Name() string { return NameDegreeBucketed }
func (RoleCorrelated) Name() string { return NameRoleCorrelated }
func (Structural) Name() string     { return NameStructural }

func (c Categorical) validate() error    { return validateCategories(NameCategorical, c.Categories) }
func (d DegreeBucketed) validate() error { return validateCategories(NameDegreeBucketed, d.Categories) }
func (Structural) validate() error       { return nil }

func (r RoleCorrelated) validate() error {
	if len(r.Roles) == 0 {
		return fmt.Errorf("%s: no roles: %w", NameRoleCorrelated, ErrBadStrategy)
	}
	for _, role := range sortedKeys(r.Roles) {
		if err := validateCategories(NameRoleCorrelated+"["+role+"]", r.Roles[role]); err != nil {
			return err
		}
	}
	if len(r.Fallback) > 0 {
		return validateCategories(NameRoleCorrelated+"[fallback]", r.Fallback)
	}

	return nil
}

func validateCategories(where string, cats []Category) error {
	if len(cats) == 0 {
		return fmt.Errorf("%s: no categories: %w", where, ErrBadStrategy)
	}
	var total float64
	for i, c := range cats {
		if c.Weight < 0 || math.IsNaN(c.Weight) || math.IsInf(c.Weight, 0) {
			return fmt.Errorf("%s: category %d weight=%g: %w", where, i, c.Weight, ErrBadStrategy)
		}
		total += c.Weight
	}
	if total == 0 {
		return fmt.Errorf("%s: all weights zero: %w", where, ErrBadStrategy)
	}

	return nil
}

// frequencies normalizes the weights of cats.
func frequencies(cats []Category) []float64 {
	var total float64
	for _, c := range cats {
		total += c.Weight
	}
	out := make([]float64, len(cats))
	for i, c := range cats {
		out[i] = c.Weight / total
	}

	return out
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// SPDX-License-Identifier: MIT
// Package: lvsynth/pipeline
//
// config.go — the YAML run description, its defaults and validation.
//
// Contract:
//   • Load decodes strictly: unknown keys are errors.
//   • Defaults are applied to a copy before a run; Validate never mutates.
//   • Every failure wraps ErrBadConfig (core.ErrConfiguration).

package pipeline

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvsynth/compose"
	"github.com/katalvlaran/lvsynth/core"
	"github.com/katalvlaran/lvsynth/label"
	"github.com/katalvlaran/lvsynth/motif"
	"github.com/katalvlaran/lvsynth/perturb"
	"github.com/katalvlaran/lvsynth/remove"
	"github.com/katalvlaran/lvsynth/rng"
)

const (
	methodLoad     = "Load"
	methodValidate = "Validate"
)

var validate = validator.New()

// Stage names a pipeline step. Compose always runs first and is not listed
// in Config.Stages; it only appears as a LabelConfig.After anchor.
type Stage string

const (
	StageCompose Stage = "compose"
	StagePerturb Stage = "perturb"
	StageLabel   Stage = "label"
	StageRemove  Stage = "remove"
)

// DefaultStages is the stage order used when a config lists none.
func DefaultStages() []Stage { return []Stage{StagePerturb, StageLabel, StageRemove} }

// Config describes one generation run.
type Config struct {
	// Seed is parsed by rng.Parse; Batch replaces it per run.
	Seed      string           `yaml:"seed"`
	Motifs    []MotifConfig    `yaml:"motifs" validate:"required,min=1,dive"`
	Templates []motif.Template `yaml:"templates,omitempty"`
	Compose   ComposeConfig    `yaml:"compose,omitempty"`
	Perturb   *PerturbConfig   `yaml:"perturb,omitempty"`
	Labels    []LabelConfig    `yaml:"labels,omitempty" validate:"unique=Key,dive"`
	Remove    *remove.Policy   `yaml:"remove,omitempty"`
	Stages    []Stage          `yaml:"stages,omitempty" validate:"unique,dive,oneof=perturb label remove"`
}

// MotifConfig requests Count instances of one motif.
type MotifConfig struct {
	// Motif is a template name or a built-in spec ("house", "star_4").
	Motif string     `yaml:"motif" validate:"required"`
	Count int        `yaml:"count,omitempty" validate:"gte=0"`
	Attrs core.Attrs `yaml:"attrs,omitempty"`
}

// ComposeConfig mirrors compose.Plan without the requests.
type ComposeConfig struct {
	Strategy      compose.Strategy `yaml:"strategy,omitempty"`
	Anchors       []string         `yaml:"anchors,omitempty" validate:"dive,required"`
	TargetEdges   int              `yaml:"target_edges,omitempty" validate:"gte=0"`
	TargetDensity float64          `yaml:"target_density,omitempty" validate:"gte=0,lte=1"`
	Links         compose.Links    `yaml:"links,omitempty"`
	ExtraNodes    int              `yaml:"extra_nodes,omitempty" validate:"gte=0"`
	ExtraEdges    int              `yaml:"extra_edges,omitempty" validate:"gte=0"`
	Directed      bool             `yaml:"directed,omitempty"`
}

// PerturbConfig is the perturbation stage. Zero weights default to equal
// add, remove and rewire weights.
type PerturbConfig struct {
	Budget    perturb.Budget    `yaml:"budget"`
	Weights   perturb.Weights   `yaml:"weights,omitempty"`
	Selection perturb.Selection `yaml:"selection,omitempty"`
	ToggleKey string            `yaml:"toggle_key,omitempty"`
}

// LabelConfig is one Assign call of the label stage.
type LabelConfig struct {
	Key           string                      `yaml:"key" validate:"required"`
	Strategy      string                      `yaml:"strategy" validate:"required,oneof=categorical degree_bucketed role_correlated structural"`
	Categories    []label.Category            `yaml:"categories,omitempty"`
	Roles         map[string][]label.Category `yaml:"roles,omitempty"`
	Fallback      []label.Category            `yaml:"fallback,omitempty"`
	Descending    bool                        `yaml:"descending,omitempty"`
	Target        label.Target                `yaml:"target,omitempty"`
	Sampling      label.Method                `yaml:"sampling,omitempty"`
	Tolerance     float64                     `yaml:"tolerance,omitempty" validate:"gte=0,lt=1"`
	MinSampleSize int                         `yaml:"min_sample_size,omitempty" validate:"gte=0"`

	// After runs this labelling right after the named stage instead of at
	// the label stage, e.g. the same structural key before and after
	// removal under two keys.
	After Stage `yaml:"after,omitempty" validate:"omitempty,oneof=compose perturb remove"`
}

// Load decodes a single YAML document from r, applies defaults and validates.
func Load(r io.Reader) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s: empty document: %w", methodLoad, ErrBadConfig)
		}
		return nil, fmt.Errorf("%s: %w: %w", methodLoad, ErrBadConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg.withDefaults(), nil
}

// withDefaults returns a copy of c with counts, weights and stage order
// filled in where left empty. c itself is not touched.
func (c *Config) withDefaults() *Config {
	out := *c
	out.Motifs = slices.Clone(c.Motifs)
	for i := range out.Motifs {
		if out.Motifs[i].Count == 0 {
			out.Motifs[i].Count = 1
		}
	}
	if c.Perturb != nil {
		pc := *c.Perturb
		if pc.Weights == (perturb.Weights{}) {
			pc.Weights = perturb.Weights{AddEdge: 1, RemoveEdge: 1, RewireEdge: 1}
		}
		out.Perturb = &pc
	}
	if len(out.Stages) == 0 {
		out.Stages = DefaultStages()
	}

	return &out
}

// Validate checks struct tags, label placement and the seed. Engine-level
// checks (budgets, policies, link parameters, category weights) run when the
// stage executes.
func (c *Config) Validate() error {
	if err := c.validateShape(); err != nil {
		return err
	}
	if _, err := rng.Parse(c.Seed); err != nil {
		return fmt.Errorf("%s: %w: %w", methodValidate, ErrBadConfig, err)
	}

	return nil
}

// validateShape is Validate without the seed.
func (c *Config) validateShape() error {
	if c == nil {
		return fmt.Errorf("%s: nil config: %w", methodValidate, ErrBadConfig)
	}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%s: %w: %w", methodValidate, ErrBadConfig, err)
	}
	stages := c.Stages
	if len(stages) == 0 {
		stages = DefaultStages()
	}
	for _, lc := range c.Labels {
		if lc.After == "" || lc.After == StageCompose || slices.Contains(stages, lc.After) {
			continue
		}
		return fmt.Errorf("%s: label %q after stage %q, which is not in stages: %w",
			methodValidate, lc.Key, lc.After, ErrBadConfig)
	}

	return nil
}

// strategy builds the label.Strategy lc names.
func (lc LabelConfig) strategy() (label.Strategy, error) {
	switch lc.Strategy {
	case label.NameCategorical:
		return label.Categorical{Categories: lc.Categories}, nil
	case label.NameDegreeBucketed:
		return label.DegreeBucketed{Categories: lc.Categories, Descending: lc.Descending}, nil
	case label.NameRoleCorrelated:
		return label.RoleCorrelated{Roles: lc.Roles, Fallback: lc.Fallback}, nil
	case label.NameStructural:
		return label.Structural{}, nil
	}

	return nil, fmt.Errorf("strategy %q: %w", lc.Strategy, ErrBadConfig)
}

// options turns the optional fields of lc into label options.
func (lc LabelConfig) options() []label.Option {
	opts := []label.Option{label.WithTarget(lc.Target), label.WithSampling(lc.Sampling)}
	if lc.Tolerance > 0 {
		opts = append(opts, label.WithTolerance(lc.Tolerance))
	}
	if lc.MinSampleSize > 0 {
		opts = append(opts, label.WithMinSampleSize(lc.MinSampleSize))
	}

	return opts
}

// options turns pc into perturb options.
func (pc PerturbConfig) options() []perturb.Option {
	opts := []perturb.Option{perturb.WithSelection(pc.Selection)}
	if pc.ToggleKey != "" {
		opts = append(opts, perturb.WithToggleKey(pc.ToggleKey))
	}

	return opts
}

// plan resolves the motif requests against a library holding the inline
// templates and returns the composition plan.
func (c *Config) plan() (compose.Plan, error) {
	lib, err := motif.NewLibrary()
	if err != nil {
		return compose.Plan{}, err
	}
	for _, t := range c.Templates {
		m, err := t.Build()
		if err != nil {
			return compose.Plan{}, err
		}
		if err = lib.Register(m); err != nil {
			return compose.Plan{}, err
		}
	}

	p := compose.Plan{
		Strategy:      c.Compose.Strategy,
		Anchors:       c.Compose.Anchors,
		TargetEdges:   c.Compose.TargetEdges,
		TargetDensity: c.Compose.TargetDensity,
		Links:         c.Compose.Links,
		ExtraNodes:    c.Compose.ExtraNodes,
		ExtraEdges:    c.Compose.ExtraEdges,
		Directed:      c.Compose.Directed,
	}
	for _, mc := range c.Motifs {
		m, err := lib.Resolve(mc.Motif)
		if err != nil {
			return compose.Plan{}, fmt.Errorf("motif %q: %w", mc.Motif, err)
		}
		p.Requests = append(p.Requests, compose.Repeat(m, mc.Count, mc.Attrs)...)
	}

	return p, nil
}

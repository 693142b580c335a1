// SPDX-License-Identifier: MIT
// Package: lvsynth/pipeline
//
// run.go — Run: compose, then the configured stages, each on its own stream.
//
// Contract:
//   • Streams: "compose", "perturb", "label/<key>", "remove"; a stage's draws
//     never shift another stage's.
//   • Stages without configuration are skipped and logged.
//   • Labels with After run right after that stage (or compose), the rest at
//     the label stage, each in listed order.
//   • ctx is checked before every stage; a run is otherwise synchronous.
//   • The run id is a name-based UUID of the seed: reruns share it.

package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/lvsynth/compose"
	"github.com/katalvlaran/lvsynth/core"
	"github.com/katalvlaran/lvsynth/label"
	"github.com/katalvlaran/lvsynth/perturb"
	"github.com/katalvlaran/lvsynth/remove"
	"github.com/katalvlaran/lvsynth/rng"
)

const methodRun = "Run"

// runNamespace scopes run ids.
var runNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/katalvlaran/lvsynth/pipeline"))

// RunID returns the id of the run seeded with seed.
func RunID(seed int64) string {
	return uuid.NewSHA1(runNamespace, []byte(strconv.FormatInt(seed, 10))).String()
}

// Result is everything one run produced.
type Result struct {
	RunID      string
	Seed       int64
	Graph      *core.Graph
	Provenance *compose.Provenance
	Perturb    *perturb.Report
	Labels     []*label.Report
	Remove     *remove.Report
	Snapshot   core.Snapshot
	Elapsed    time.Duration
}

// Run executes cfg once with the seed it names.
//
// Errors: ErrBadConfig or ErrOptionViolation (core.ErrConfiguration), any
// engine error wrapped with the failing stage, or ctx.Err().
func Run(ctx context.Context, cfg *Config, opts ...Option) (*Result, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	c, err := rng.Parse(cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", methodRun, ErrBadConfig, err)
	}

	return run(ctx, cfg.withDefaults(), c, o)
}

// runner carries one run.
type runner struct {
	cfg    *Config
	c      *rng.Controller
	log    *slog.Logger
	tracer trace.Tracer
	res    *Result
}

func run(ctx context.Context, cfg *Config, c *rng.Controller, o Options) (*Result, error) {
	id := RunID(c.Seed())
	r := &runner{
		cfg:    cfg,
		c:      c,
		log:    o.Logger.With(slog.String("run_id", id), slog.Int64("seed", c.Seed())),
		tracer: o.Tracer,
		res:    &Result{RunID: id, Seed: c.Seed()},
	}

	ctx, span := r.tracer.Start(ctx, "pipeline.Run", trace.WithAttributes(
		attribute.String("run.id", id),
		attribute.Int64("run.seed", c.Seed()),
	))
	defer span.End()
	start := time.Now()

	if err := r.execute(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		r.log.Error("run failed", slog.String("error", err.Error()))
		return nil, err
	}

	r.res.Snapshot = r.res.Graph.Snapshot()
	r.res.Elapsed = time.Since(start)
	span.SetAttributes(
		attribute.Int("graph.nodes", len(r.res.Snapshot.Nodes)),
		attribute.Int("graph.edges", len(r.res.Snapshot.Edges)),
	)
	span.SetStatus(codes.Ok, "")
	r.log.Info("run completed",
		slog.Int("nodes", len(r.res.Snapshot.Nodes)),
		slog.Int("edges", len(r.res.Snapshot.Edges)),
		slog.Duration("elapsed", r.res.Elapsed),
	)

	return r.res, nil
}

func (r *runner) execute(ctx context.Context) error {
	if err := r.stage(ctx, string(StageCompose), r.compose); err != nil {
		return err
	}
	if err := r.labels(ctx, StageCompose); err != nil {
		return err
	}
	for _, st := range r.cfg.Stages {
		var err error
		switch st {
		case StagePerturb:
			if r.cfg.Perturb == nil {
				r.log.Debug("stage skipped", slog.String("stage", string(st)))
				break
			}
			err = r.stage(ctx, string(st), r.perturb)
		case StageLabel:
			err = r.labels(ctx, "")
		case StageRemove:
			if r.cfg.Remove == nil {
				r.log.Debug("stage skipped", slog.String("stage", string(st)))
				break
			}
			err = r.stage(ctx, string(st), r.remove)
		default:
			err = fmt.Errorf("%s: stage %q: %w", methodRun, st, ErrBadConfig)
		}
		if err != nil {
			return err
		}
		if st != StageLabel {
			if err = r.labels(ctx, st); err != nil {
				return err
			}
		}
	}

	return nil
}

// labels runs, in listed order, every labelling placed after the given stage.
func (r *runner) labels(ctx context.Context, after Stage) error {
	for _, lc := range r.cfg.Labels {
		if lc.After != after {
			continue
		}
		if err := r.stage(ctx, "label/"+lc.Key, func() ([]attribute.KeyValue, error) { return r.label(lc) }); err != nil {
			return err
		}
	}

	return nil
}

// stage runs fn inside its own span after checking ctx.
func (r *runner) stage(ctx context.Context, name string, fn func() ([]attribute.KeyValue, error)) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: before %s: %w", methodRun, name, err)
	}
	_, span := r.tracer.Start(ctx, "pipeline."+name)
	defer span.End()
	start := time.Now()
	r.log.Debug("stage started", slog.String("stage", name))

	attrs, err := fn()
	if err != nil {
		err = fmt.Errorf("%s: %s: %w", methodRun, name, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	span.SetAttributes(attrs...)
	span.AddEvent("stage finished", trace.WithAttributes(attrs...))
	span.SetStatus(codes.Ok, "")
	r.log.Debug("stage finished", slog.String("stage", name), slog.Duration("elapsed", time.Since(start)))

	return nil
}

func (r *runner) compose() ([]attribute.KeyValue, error) {
	p, err := r.cfg.plan()
	if err != nil {
		return nil, err
	}
	g, prov, err := compose.Compose(p, r.c.Stream(rng.StreamCompose))
	if err != nil {
		return nil, err
	}
	r.res.Graph, r.res.Provenance = g, prov

	return []attribute.KeyValue{
		attribute.Int("motif.instances", len(prov.Instances())),
		attribute.Int("graph.nodes", g.VertexCount()),
		attribute.Int("graph.edges", g.EdgeCount()),
		attribute.Int("compose.collapsed", prov.Collapsed()),
	}, nil
}

func (r *runner) perturb() ([]attribute.KeyValue, error) {
	pc := r.cfg.Perturb
	g, rep, err := perturb.Perturb(r.res.Graph, pc.Budget, pc.Weights, r.c.Stream(rng.StreamPerturb), pc.options()...)
	if err != nil {
		return nil, err
	}
	r.res.Graph, r.res.Perturb = g, rep

	return []attribute.KeyValue{
		attribute.Int("perturb.budget", rep.Budget),
		attribute.Int("perturb.applied", rep.Applied),
		attribute.Int("perturb.skipped", rep.Skipped),
		attribute.Bool("perturb.exhausted", rep.Exhausted),
	}, nil
}

func (r *runner) label(lc LabelConfig) ([]attribute.KeyValue, error) {
	st, err := lc.strategy()
	if err != nil {
		return nil, err
	}
	s := r.c.Stream(rng.StreamLabel).Child(lc.Key)
	g, rep, err := label.Assign(r.res.Graph, lc.Key, st, s, r.res.Provenance, lc.options()...)
	if err != nil {
		return nil, err
	}
	r.res.Graph = g
	r.res.Labels = append(r.res.Labels, rep)

	return []attribute.KeyValue{
		attribute.String("label.strategy", rep.Strategy),
		attribute.String("label.method", rep.Method.String()),
		attribute.Int("label.labeled", rep.Labeled),
		attribute.Float64("label.max_deviation", rep.MaxDeviation),
		attribute.Bool("label.within_tolerance", rep.WithinTolerance),
	}, nil
}

func (r *runner) remove() ([]attribute.KeyValue, error) {
	g, rep, err := remove.Remove(r.res.Graph, *r.cfg.Remove, r.c.Stream(rng.StreamRemove), r.res.Provenance)
	if err != nil {
		return nil, err
	}
	r.res.Graph, r.res.Remove = g, rep

	return []attribute.KeyValue{
		attribute.String("remove.policy", rep.Policy.Kind.String()),
		attribute.Int("remove.removed", len(rep.Removed)),
		attribute.Int("components.before", rep.Before.Components),
		attribute.Int("components.after", rep.After.Components),
	}, nil
}

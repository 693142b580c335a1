// SPDX-License-Identifier: MIT
// Package: lvsynth/pipeline
//
// batch.go — independent runs over many seeds.

package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvsynth/rng"
)

const methodBatch = "Batch"

// Batch runs cfg once per seed, at most workers at a time. cfg.Seed is
// neither read nor validated. Results are in seed order; the first failure
// cancels the rest.
func Batch(ctx context.Context, cfg *Config, seeds []int64, workers int, opts ...Option) ([]*Result, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	if workers < 1 {
		return nil, fmt.Errorf("%s: workers=%d < 1: %w", methodBatch, workers, ErrOptionViolation)
	}
	if err = cfg.validateShape(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	ctx, span := o.Tracer.Start(ctx, "pipeline.Batch", trace.WithAttributes(
		attribute.Int("batch.runs", len(seeds)),
		attribute.Int("batch.workers", workers),
	))
	defer span.End()

	out := make([]*Result, len(seeds))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, seed := range seeds {
		i, seed := i, seed
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := run(gctx, cfg, rng.New(seed), o)
			if err != nil {
				return fmt.Errorf("%s: seed %d: %w", methodBatch, seed, err)
			}
			out[i] = res
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetStatus(codes.Ok, "")
	o.Logger.Info("batch completed", slog.Int("runs", len(seeds)), slog.Int("workers", workers))

	return out, nil
}

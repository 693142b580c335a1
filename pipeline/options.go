// SPDX-License-Identifier: MIT
// Package: lvsynth/pipeline
//
// options.go — logger and tracer injection.

package pipeline

import (
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// tracerName is the instrumentation scope of every pipeline span.
const tracerName = "lvsynth.pipeline"

// Options holds run settings.
type Options struct {
	Logger *slog.Logger
	Tracer trace.Tracer

	err error
}

// Option configures Run and Batch.
type Option func(*Options)

// DefaultOptions returns slog.Default() and the global tracer provider.
func DefaultOptions() Options {
	return Options{Logger: slog.Default(), Tracer: otel.Tracer(tracerName)}
}

// WithLogger sets the run logger; nil is a violation.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			o.err = fmt.Errorf("%w: nil logger", ErrOptionViolation)
			return
		}
		o.Logger = l
	}
}

// WithTracerProvider takes pipeline spans from tp; nil is a violation.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *Options) {
		if tp == nil {
			o.err = fmt.Errorf("%w: nil tracer provider", ErrOptionViolation)
			return
		}
		o.Tracer = tp.Tracer(tracerName)
	}
}

func newOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

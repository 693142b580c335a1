// SPDX-License-Identifier: MIT

// Package pipeline wires the engines into one seeded run described by YAML.
//
// A run composes the configured motifs, then executes the stages in the
// configured order (default: perturb, label, remove). Each engine draws from
// its own stream derived from the run seed, so a run is reproducible from
// its seed alone and the run id (a name-based UUID of the seed) is stable
// across reruns.
//
// A label entry with "after: compose", "after: perturb" or "after: remove"
// runs right after that stage instead, which lets one run record structural
// ground truth both before and after removal.
//
//	cfg, err := pipeline.Load(r)
//	res, err := pipeline.Run(ctx, cfg, pipeline.WithLogger(log))
//	all, err := pipeline.Batch(ctx, cfg, []int64{1, 2, 3}, 4)
//
// Runs emit OpenTelemetry spans ("pipeline.Run" and one per stage) on the
// global tracer provider unless WithTracerProvider is given, and log through
// slog.Default() unless WithLogger is given.
package pipeline

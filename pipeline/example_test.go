package pipeline_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/lvsynth/pipeline"
)

// ExampleRun composes two triangles and removes two edges, seed 42.
func ExampleRun() {
	cfg, err := pipeline.Load(strings.NewReader(`
seed: "42"
motifs:
  - motif: triangle
    count: 2
perturb:
  budget: {count: 2}
  weights: {remove_edge: 1}
`))
	if err != nil {
		fmt.Println(err)
		return
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	res, err := pipeline.Run(context.Background(), cfg, pipeline.WithLogger(logger))
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, op := range res.Perturb.Ops {
		fmt.Println(op.Seq, op.Kind, op.Status)
	}
	fmt.Printf("nodes=%d edges=%d\n", len(res.Snapshot.Nodes), len(res.Snapshot.Edges))

	// Output:
	// 0 remove_edge applied
	// 1 remove_edge applied
	// nodes=6 edges=4
}

package label_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvsynth/compose"
	"github.com/katalvlaran/lvsynth/label"
	"github.com/katalvlaran/lvsynth/motif"
	"github.com/katalvlaran/lvsynth/rng"
)

// ExampleAssign labels hubs and leaves of two stars from their roles.
func ExampleAssign() {
	star := motif.MustBuild(motif.Spec{Kind: motif.Star, Size: 3})
	g, prov, err := compose.Compose(compose.Plan{Requests: compose.Repeat(star, 2, nil)}, nil)
	if err != nil {
		fmt.Println(err)
		return
	}

	st := label.RoleCorrelated{Roles: map[string][]label.Category{
		motif.RoleHub:   label.Uniform("server"),
		motif.ClassLeaf: label.Uniform("client"),
	}}
	out, rep, err := label.Assign(g, "kind", st, rng.New(7).Stream(rng.StreamLabel), prov)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, id := range []string{"n0", "n1", "n4"} {
		v, _ := out.VertexAttr(id, "kind")
		fmt.Println(id, v)
	}
	for _, c := range rep.Categories {
		fmt.Println(c.Value, c.Count)
	}

	// Output:
	// n0 server
	// n1 client
	// n4 server
	// server 2
	// client 6
}

// ExampleStructuralLabels marks a house next to a lone triangle.
func ExampleStructuralLabels() {
	plan := compose.Plan{Requests: []compose.Request{
		{Motif: motif.MustBuild(motif.Spec{Kind: motif.House})},
		{Motif: motif.MustBuild(motif.Spec{Kind: motif.Cycle, Size: 3})},
	}}
	g, _, err := compose.Compose(plan, nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	labels := label.StructuralLabels(g)
	parts := make([]string, 0, len(labels))
	for _, id := range g.Vertices() {
		parts = append(parts, fmt.Sprintf("%s=%d", id, labels[id]))
	}
	fmt.Println(strings.Join(parts, " "))

	// Output:
	// n0=0 n1=0 n2=0 n3=0 n4=0 n5=1 n6=1 n7=1
}

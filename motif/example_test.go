package motif_test

import (
	"fmt"

	"github.com/katalvlaran/lvsynth/motif"
)

// ExampleBuild builds a star and lists the roles role-keyed policies see.
func ExampleBuild() {
	m, err := motif.Build(motif.Spec{Kind: motif.Star, Size: 3})
	if err != nil {
		fmt.Println(err)
		return
	}
	n, e := m.Size()
	fmt.Println(m.Name(), n, e)
	for _, r := range m.Roles() {
		local, _ := m.Node(r)
		fmt.Printf("%s=%s class=%s\n", r, local, motif.RoleClass(r))
	}

	// Output:
	// star_3 4 3
	// hub=0 class=hub
	// leaf.0=1 class=leaf
	// leaf.1=2 class=leaf
	// leaf.2=3 class=leaf
}

// SPDX-License-Identifier: MIT
// Package: lvsynth/label
//
// assign.go — Assign and the allocation helpers.
//
// Allocation contract:
//   • Quota: counts by largest remainder (ties by category order), placed
//     over a stream shuffle of the sorted targets. |achieved - requested| < 1/N.
//   • Independent: one weighted draw per target, only when N reaches both
//     MinSampleSize and the size at which every category stays within
//     Tolerance at four standard deviations (16·p(1-p)/Tolerance²).
//     Smaller populations fall back to Quota.
//   • Targets are enumerated sorted (node IDs, edge IDs) before any draw.

package label

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvsynth/compose"
	"github.com/katalvlaran/lvsynth/core"
	"github.com/katalvlaran/lvsynth/motif"
	"github.com/katalvlaran/lvsynth/rng"
)

const methodAssign = "Assign"

// fallbackGroup names the RoleCorrelated group of nodes without a role distribution.
const fallbackGroup = "*"

// Assign writes key on every target of a clone of g according to strategy.
// prov is needed only by RoleCorrelated; s may be nil only for Structural.
//
// Errors (all core.ErrConfiguration):
//   - ErrGraphNil, ErrBadStrategy, ErrOptionViolation, ErrUnsupportedTarget,
//     ErrNoProvenance, rng.ErrNilStream.
//
// Complexity: O(N log N) for N targets; Structural O(V·d³).
func Assign(g *core.Graph, key string, strategy Strategy, s *rng.Stream, prov *compose.Provenance, opts ...Option) (*core.Graph, *Report, error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}
	if key == "" {
		return nil, nil, fmt.Errorf("%s: empty key: %w", methodAssign, ErrBadStrategy)
	}
	if strategy == nil {
		return nil, nil, fmt.Errorf("%s(%s): nil strategy: %w", methodAssign, key, ErrBadStrategy)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, nil, o.err
	}
	if err := strategy.validate(); err != nil {
		return nil, nil, fmt.Errorf("%s(%s): %w", methodAssign, key, err)
	}
	switch strategy.(type) {
	case RoleCorrelated, Structural:
		if o.Target == Edges {
			return nil, nil, fmt.Errorf("%s(%s): %s: %w", methodAssign, key, strategy.Name(), ErrUnsupportedTarget)
		}
	}
	if _, ok := strategy.(RoleCorrelated); ok && prov.Len() == 0 {
		return nil, nil, fmt.Errorf("%s(%s): %w", methodAssign, key, ErrNoProvenance)
	}
	if _, ok := strategy.(Structural); !ok && s == nil {
		return nil, nil, fmt.Errorf("%s(%s): %w", methodAssign, key, rng.ErrNilStream)
	}

	a := &assigner{g: g.Clone(), key: key, s: s, opts: o}
	targets := a.targets()
	rep := &Report{
		Key:           key,
		Target:        o.Target,
		Strategy:      strategy.Name(),
		Population:    len(targets),
		Tolerance:     o.Tolerance,
		MinSampleSize: o.MinSampleSize,
	}

	var err error
	switch st := strategy.(type) {
	case Categorical:
		err = a.single(rep, a.distribute("all", a.shuffled(targets), st.Categories))
	case DegreeBucketed:
		err = a.single(rep, a.fill("all", a.byDegree(targets, st.Descending), st.Categories))
	case RoleCorrelated:
		err = a.roleCorrelated(rep, targets, st, prov)
	case Structural:
		err = a.structural(rep)
	default:
		err = fmt.Errorf("%s(%s): %T: %w", methodAssign, key, strategy, ErrBadStrategy)
	}
	if err != nil {
		return nil, nil, err
	}
	rep.WithinTolerance = rep.MaxDeviation <= rep.Tolerance

	return a.g, rep, nil
}

// assigner carries the working clone of one Assign call.
type assigner struct {
	g    *core.Graph
	key  string
	s    *rng.Stream
	opts Options
	err  error // first write failure
}

// targets returns the sorted node or edge IDs.
func (a *assigner) targets() []string {
	if a.opts.Target == Nodes {
		return a.g.Vertices()
	}
	edges := a.g.Edges()
	out := make([]string, len(edges))
	for i, e := range edges {
		out[i] = e.ID
	}

	return out
}

func (a *assigner) write(id string, v any) {
	if a.err != nil {
		return
	}
	var err error
	if a.opts.Target == Nodes {
		err = a.g.SetVertexAttr(id, a.key, v)
	} else {
		err = a.g.SetEdgeAttr(id, a.key, v)
	}
	if err != nil {
		a.err = fmt.Errorf("%s(%s): %s: %w", methodAssign, a.key, id, err)
	}
}

func (a *assigner) shuffled(ids []string) []string {
	out := append([]string(nil), ids...)
	a.s.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })

	return out
}

// byDegree shuffles ids, then stable-sorts them by degree so ties stay shuffled.
// An edge's degree is the sum of its endpoint degrees.
func (a *assigner) byDegree(ids []string, desc bool) []string {
	deg := a.g.Degrees()
	score := make(map[string]int, len(ids))
	for _, id := range ids {
		if a.opts.Target == Nodes {
			score[id] = deg[id]
			continue
		}
		if e, err := a.g.Edge(id); err == nil {
			score[id] = deg[e.From] + deg[e.To]
		}
	}
	out := a.shuffled(ids)
	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return score[out[i]] > score[out[j]]
		}
		return score[out[i]] < score[out[j]]
	})

	return out
}

// independentZ is the number of standard deviations Tolerance must cover
// before independent draws replace quotas.
const independentZ = 4

// independentFloor is the smallest population at which independent draws
// keep every category of freq within tol at independentZ deviations.
func independentFloor(freq []float64, tol float64) int {
	var worst float64
	for _, p := range freq {
		worst = math.Max(worst, p*(1-p))
	}

	return int(math.Ceil(independentZ * independentZ * worst / (tol * tol)))
}

// distribute labels order (already shuffled) by the configured method.
func (a *assigner) distribute(name string, order []string, cats []Category) Group {
	if a.opts.Sampling == Independent && len(order) >= a.opts.MinSampleSize &&
		len(order) >= independentFloor(frequencies(cats), a.opts.Tolerance) {
		w := make([]float64, len(cats))
		for i, c := range cats {
			w[i] = c.Weight
		}
		counts := make([]int, len(cats))
		for _, id := range order {
			i := a.s.Pick(w)
			a.write(id, cats[i].Value)
			counts[i]++
		}
		return newGroup(name, Independent, cats, counts)
	}

	return a.fill(name, order, cats)
}

// fill writes largest-remainder quotas over order, categories in listed order.
func (a *assigner) fill(name string, order []string, cats []Category) Group {
	counts := quotas(frequencies(cats), len(order))
	pos := 0
	for i, c := range counts {
		for k := 0; k < c; k++ {
			a.write(order[pos], cats[i].Value)
			pos++
		}
	}

	return newGroup(name, Quota, cats, counts)
}

// single folds one group into rep.
func (a *assigner) single(rep *Report, g Group) error {
	if a.err != nil {
		return a.err
	}
	rep.Method = g.Method
	rep.Labeled = g.Population
	rep.Categories = g.Categories
	rep.MaxDeviation = g.MaxDeviation
	rep.Groups = []Group{g}

	return nil
}

func (a *assigner) roleCorrelated(rep *Report, targets []string, st RoleCorrelated, prov *compose.Provenance) error {
	members := make(map[string][]string)
	for _, id := range targets {
		name := groupOf(id, st, prov)
		members[name] = append(members[name], id)
	}

	rep.Method = Quota
	for _, name := range sortedKeys(members) {
		cats := st.Roles[name]
		if name == fallbackGroup {
			cats = st.Fallback
		}
		if len(cats) == 0 {
			rep.Unlabeled += len(members[name])
			continue
		}
		g := a.distribute(name, a.shuffled(members[name]), cats)
		if g.Method == Independent {
			rep.Method = Independent
		}
		rep.Groups = append(rep.Groups, g)
		rep.Labeled += g.Population
		rep.MaxDeviation = math.Max(rep.MaxDeviation, g.MaxDeviation)
	}
	rep.Categories = aggregate(rep.Groups)

	return a.err
}

// groupOf picks the distribution of node id: full role, then role class, then fallback.
func groupOf(id string, st RoleCorrelated, prov *compose.Provenance) string {
	o, ok := prov.Origin(id)
	if !ok || o.Role() == "" {
		return fallbackGroup
	}
	if _, ok := st.Roles[o.Role()]; ok {
		return o.Role()
	}
	if class := motif.RoleClass(o.Role()); class != o.Role() {
		if _, ok := st.Roles[class]; ok {
			return class
		}
	}

	return fallbackGroup
}

func (a *assigner) structural(rep *Report) error {
	labels := StructuralLabels(a.g)
	values := []int{HouseLabel, TriangleLabel, SquareLabel, NoMotifLabel}
	counts := make([]int, len(values))
	for _, id := range a.g.Vertices() {
		v := labels[id]
		a.write(id, v)
		for i, want := range values {
			if v == want {
				counts[i]++
			}
		}
	}
	if a.err != nil {
		return a.err
	}

	rep.Method = Deterministic
	rep.Labeled = len(labels)
	for i, v := range values {
		st := CategoryStat{Value: v, Count: counts[i]}
		if rep.Labeled > 0 {
			st.Achieved = float64(counts[i]) / float64(rep.Labeled)
			st.Requested = st.Achieved
		}
		rep.Categories = append(rep.Categories, st)
	}

	return nil
}

// quotas splits n into counts proportional to freq by largest remainder;
// remainder ties go to the earlier category.
func quotas(freq []float64, n int) []int {
	counts := make([]int, len(freq))
	frac := make([]float64, len(freq))
	given := 0
	for i, f := range freq {
		exact := f * float64(n)
		counts[i] = int(math.Floor(exact))
		frac[i] = exact - float64(counts[i])
		given += counts[i]
	}
	order := make([]int, len(freq))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return frac[order[i]] > frac[order[j]] })
	for k := 0; given < n; k++ {
		counts[order[k%len(order)]]++
		given++
	}

	return counts
}

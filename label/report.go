// SPDX-License-Identifier: MIT
// Package: lvsynth/label
//
// report.go — what Assign achieved against what was requested.

package label

import (
	"fmt"
	"math"
)

// CategoryStat compares one category's requested and achieved frequency.
type CategoryStat struct {
	Value     any     `json:"value" yaml:"value"`
	Requested float64 `json:"requested" yaml:"requested"`
	Count     int     `json:"count" yaml:"count"`
	Achieved  float64 `json:"achieved" yaml:"achieved"`
	Deviation float64 `json:"deviation" yaml:"deviation"`
}

// Group is the outcome for one distribution (one role for RoleCorrelated,
// the whole population otherwise).
type Group struct {
	Name         string         `json:"name" yaml:"name"`
	Population   int            `json:"population" yaml:"population"`
	Method       Method         `json:"method" yaml:"method"`
	Categories   []CategoryStat `json:"categories" yaml:"categories"`
	MaxDeviation float64        `json:"max_deviation" yaml:"max_deviation"`
}

// Report is the full record of one Assign call.
type Report struct {
	Key             string         `json:"key" yaml:"key"`
	Target          Target         `json:"target" yaml:"target"`
	Strategy        string         `json:"strategy" yaml:"strategy"`
	Method          Method         `json:"method" yaml:"method"`
	Population      int            `json:"population" yaml:"population"`
	Labeled         int            `json:"labeled" yaml:"labeled"`
	Unlabeled       int            `json:"unlabeled,omitempty" yaml:"unlabeled,omitempty"`
	Categories      []CategoryStat `json:"categories" yaml:"categories"`
	MaxDeviation    float64        `json:"max_deviation" yaml:"max_deviation"`
	Tolerance       float64        `json:"tolerance" yaml:"tolerance"`
	MinSampleSize   int            `json:"min_sample_size" yaml:"min_sample_size"`
	WithinTolerance bool           `json:"within_tolerance" yaml:"within_tolerance"`
	Groups          []Group        `json:"groups,omitempty" yaml:"groups,omitempty"`
}

// Category returns the stat of the category whose value prints as v.
func (r *Report) Category(v any) (CategoryStat, bool) {
	want := fmt.Sprint(v)
	for _, c := range r.Categories {
		if fmt.Sprint(c.Value) == want {
			return c, true
		}
	}

	return CategoryStat{}, false
}

// newGroup fills the stats of one distribution.
func newGroup(name string, method Method, cats []Category, counts []int) Group {
	pop := 0
	for _, c := range counts {
		pop += c
	}
	freq := frequencies(cats)
	g := Group{Name: name, Population: pop, Method: method, Categories: make([]CategoryStat, len(cats))}
	for i, c := range cats {
		st := CategoryStat{Value: c.Value, Requested: freq[i], Count: counts[i]}
		if pop > 0 {
			st.Achieved = float64(counts[i]) / float64(pop)
			st.Deviation = math.Abs(st.Achieved - st.Requested)
		}
		g.MaxDeviation = math.Max(g.MaxDeviation, st.Deviation)
		g.Categories[i] = st
	}

	return g
}

// aggregate merges group stats by printed value, in first-seen order.
// Requested frequencies are population-weighted.
func aggregate(groups []Group) []CategoryStat {
	total := 0
	for _, g := range groups {
		total += g.Population
	}
	index := make(map[string]int)
	var out []CategoryStat
	for _, g := range groups {
		for _, c := range g.Categories {
			k := fmt.Sprint(c.Value)
			i, ok := index[k]
			if !ok {
				i = len(out)
				index[k] = i
				out = append(out, CategoryStat{Value: c.Value})
			}
			out[i].Count += c.Count
			if total > 0 {
				out[i].Requested += c.Requested * float64(g.Population) / float64(total)
			}
		}
	}
	for i := range out {
		if total > 0 {
			out[i].Achieved = float64(out[i].Count) / float64(total)
		}
		out[i].Deviation = math.Abs(out[i].Achieved - out[i].Requested)
	}

	return out
}

// File: stats.go
// Role: component-size statistics and the Histogram aggregate.
package analysis

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/percolate/core"
)

// Summary bundles the per-graph connectivity statistics one trial yields.
// MeanOtherOK is false when fewer than two components exist, in which case
// MeanOtherSize is 0 and carries no meaning.
type Summary struct {
	Sizes         []int
	GiantFraction float64
	MeanOtherSize float64
	MeanOtherOK   bool
}

// Sizes returns the component sizes of g, largest first (consumers treat
// the result as a multiset). Empty graph ⇒ empty slice.
func Sizes(g *core.Graph) []int {
	comps := Components(g)
	sizes := make([]int, len(comps))
	for i, c := range comps {
		sizes[i] = len(c)
	}

	return sizes
}

// GiantFraction returns |largest component| / |live nodes|, or 0 when no
// nodes remain.
func GiantFraction(g *core.Graph) float64 {
	if g == nil || g.NodeCount() == 0 {
		return 0
	}
	comps := Components(g)

	return float64(len(comps[0])) / float64(g.NodeCount())
}

// MeanOtherSize returns the arithmetic mean size of every component except
// the largest. ok is false when fewer than two components exist — a
// defined null result, not an error.
func MeanOtherSize(g *core.Graph) (mean float64, ok bool) {
	sizes := Sizes(g)
	if len(sizes) < 2 {
		return 0, false
	}
	others := make([]float64, len(sizes)-1)
	for i, s := range sizes[1:] {
		others[i] = float64(s)
	}

	return stat.Mean(others, nil), true
}

// Summarize computes all component statistics of g in one partition pass.
func Summarize(g *core.Graph) Summary {
	sizes := Sizes(g)
	out := Summary{Sizes: sizes}
	if len(sizes) == 0 {
		return out
	}
	out.GiantFraction = float64(sizes[0]) / float64(g.NodeCount())
	if len(sizes) < 2 {
		return out
	}
	others := make([]float64, len(sizes)-1)
	for i, s := range sizes[1:] {
		others[i] = float64(s)
	}
	out.MeanOtherSize = stat.Mean(others, nil)
	out.MeanOtherOK = true

	return out
}

// Histogram counts occurrences by integer key (component size or degree).
// The zero value is not ready; use NewHistogram.
type Histogram map[int]int

// NewHistogram returns an empty histogram.
func NewHistogram() Histogram { return make(Histogram) }

// Add records one occurrence of key.
func (h Histogram) Add(key int) { h[key]++ }

// AddAll records one occurrence per element of keys.
func (h Histogram) AddAll(keys []int) {
	for _, k := range keys {
		h.Add(k)
	}
}

// Merge folds other into h additively. Merging is associative and
// commutative, so partial histograms from parallel trials can be reduced
// in any order.
func (h Histogram) Merge(other Histogram) {
	for k, c := range other {
		h[k] += c
	}
}

// Total returns the sum of all counts.
func (h Histogram) Total() int {
	t := 0
	for _, c := range h {
		t += c
	}

	return t
}

// SizeCount is one (key, count) histogram bucket.
type SizeCount struct {
	Size  int
	Count int
}

// SortedCounts emits the histogram as (size, count) pairs sorted by size
// ascending — the plain numeric form external plotting consumes.
func (h Histogram) SortedCounts() []SizeCount {
	out := make([]SizeCount, 0, len(h))
	for k, c := range h {
		out = append(out, SizeCount{Size: k, Count: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Size < out[j].Size })

	return out
}

// SizeHistogram pools g's component sizes into a fresh histogram.
func SizeHistogram(g *core.Graph) Histogram {
	h := NewHistogram()
	h.AddAll(Sizes(g))

	return h
}

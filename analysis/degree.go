// File: degree.go
// Role: structural summaries of generated models (degree distribution,
// average degree, clustering coefficient). These describe the graph before
// removal; the percolation loop itself only consumes components.go.
package analysis

import (
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/percolate/core"
)

// DegreeDistribution returns a degree → node-count histogram over the
// live nodes of g.
func DegreeDistribution(g *core.Graph) Histogram {
	h := NewHistogram()
	if g == nil {
		return h
	}
	for _, id := range g.Nodes() {
		if d, err := g.Degree(id); err == nil {
			h.Add(d)
		}
	}

	return h
}

// AverageDegree returns the mean degree of g's live nodes, 0 when empty.
func AverageDegree(g *core.Graph) float64 {
	if g == nil || g.NodeCount() == 0 {
		return 0
	}
	degrees := make([]float64, 0, g.NodeCount())
	for _, id := range g.Nodes() {
		if d, err := g.Degree(id); err == nil {
			degrees = append(degrees, float64(d))
		}
	}

	return stat.Mean(degrees, nil)
}

// ClusteringCoefficient returns the mean local clustering coefficient over
// all live nodes. A node of degree < 2 contributes 0, matching the usual
// average-clustering convention. 0 when the graph is empty.
// Complexity: O(Σ deg²).
func ClusteringCoefficient(g *core.Graph) float64 {
	if g == nil || g.NodeCount() == 0 {
		return 0
	}
	locals := make([]float64, 0, g.NodeCount())
	for _, id := range g.Nodes() {
		nbrs, err := g.Neighbors(id)
		if err != nil {
			continue
		}
		k := len(nbrs)
		if k < 2 {
			locals = append(locals, 0)
			continue
		}
		links := 0
		for i := 0; i < k; i++ {
			for j := i + 1; j < k; j++ {
				if g.HasEdge(nbrs[i], nbrs[j]) {
					links++
				}
			}
		}
		locals = append(locals, 2*float64(links)/float64(k*(k-1)))
	}

	return stat.Mean(locals, nil)
}

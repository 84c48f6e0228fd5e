package analysis_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolate/analysis"
	"github.com/katalvlaran/percolate/attack"
	"github.com/katalvlaran/percolate/builder"
	"github.com/katalvlaran/percolate/core"
)

func TestComponents_EmptyAndNil(t *testing.T) {
	require.Empty(t, analysis.Components(nil))

	g, err := core.NewGraph(0)
	require.NoError(t, err)
	require.Empty(t, analysis.Components(g))
	require.Empty(t, analysis.Sizes(g))
	require.Zero(t, analysis.GiantFraction(g))

	_, ok := analysis.MeanOtherSize(g)
	require.False(t, ok, "mean over no components is undefined")
}

func TestComponents_Isolated(t *testing.T) {
	// ER with p=0: every node is its own component.
	g, err := builder.Build(builder.ErdosRenyi(100, 0))
	require.NoError(t, err)

	comps := analysis.Components(g)
	require.Len(t, comps, 100)
	for _, c := range comps {
		require.Len(t, c, 1)
	}
	require.InDelta(t, 0.01, analysis.GiantFraction(g), 1e-12)

	mean, ok := analysis.MeanOtherSize(g)
	require.True(t, ok)
	require.InDelta(t, 1.0, mean, 1e-12)
}

func TestComponents_Complete(t *testing.T) {
	// ER with p=1: one component holding everything.
	g, err := builder.Build(builder.ErdosRenyi(100, 1))
	require.NoError(t, err)

	comps := analysis.Components(g)
	require.Len(t, comps, 1)
	require.Len(t, comps[0], 100)
	require.Equal(t, 1.0, analysis.GiantFraction(g))

	_, ok := analysis.MeanOtherSize(g)
	require.False(t, ok, "a single component leaves no others to average")
}

func TestComponents_KnownPartition(t *testing.T) {
	// Two triangles and an isolated node: sizes 3,3,1.
	g, err := core.NewGraph(7)
	require.NoError(t, err)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 3}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	comps := analysis.Components(g)
	require.Equal(t, [][]int{{0, 1, 2}, {3, 4, 5}, {6}}, comps,
		"size desc, ties by smallest member, members ascending")
	require.Equal(t, []int{3, 3, 1}, analysis.Sizes(g))
	require.InDelta(t, 3.0/7.0, analysis.GiantFraction(g), 1e-12)

	mean, ok := analysis.MeanOtherSize(g)
	require.True(t, ok)
	require.InDelta(t, 2.0, mean, 1e-12, "(3+1)/2")
}

func TestComponents_AfterRemoval(t *testing.T) {
	// Star: removing the hub shatters the graph into leaves.
	g, err := builder.Build(builder.Star(10))
	require.NoError(t, err)
	require.Len(t, analysis.Components(g), 1)

	g.RemoveNodes([]int{0})
	comps := analysis.Components(g)
	require.Len(t, comps, 9)
	for _, c := range comps {
		require.Len(t, c, 1)
	}
}

func TestSummarize_MatchesPieces(t *testing.T) {
	g, err := builder.Build(builder.ErdosRenyi(300, 0.004), builder.WithSeed(17))
	require.NoError(t, err)
	_, err = attack.Random(g, 0.3, rand.New(rand.NewSource(4)))
	require.NoError(t, err)

	sum := analysis.Summarize(g)
	require.Equal(t, analysis.Sizes(g), sum.Sizes)
	require.Equal(t, analysis.GiantFraction(g), sum.GiantFraction)
	mean, ok := analysis.MeanOtherSize(g)
	require.Equal(t, ok, sum.MeanOtherOK)
	if ok {
		require.Equal(t, mean, sum.MeanOtherSize)
	}
}

func TestHistogram(t *testing.T) {
	require := require.New(t)

	h := analysis.NewHistogram()
	h.AddAll([]int{3, 1, 3, 7, 1, 3})
	require.Equal(6, h.Total())

	other := analysis.NewHistogram()
	other.Add(3)
	other.Add(2)
	h.Merge(other)

	require.Equal(8, h.Total())
	require.Equal([]analysis.SizeCount{
		{Size: 1, Count: 2},
		{Size: 2, Count: 1},
		{Size: 3, Count: 4},
		{Size: 7, Count: 1},
	}, h.SortedCounts())
}

func TestSizeHistogram_TotalIsNodeCount(t *testing.T) {
	g, err := builder.Build(builder.ErdosRenyi(500, 0.002), builder.WithSeed(8))
	require.NoError(t, err)
	_, err = attack.Targeted(g, 0.18)
	require.NoError(t, err)

	h := analysis.SizeHistogram(g)
	sum := 0
	for _, sc := range h.SortedCounts() {
		sum += sc.Size * sc.Count
	}
	require.Equal(t, g.NodeCount(), sum, "size-weighted total covers every live node")
}

func TestDegreeDistribution(t *testing.T) {
	g, err := builder.Build(builder.Star(5))
	require.NoError(t, err)

	h := analysis.DegreeDistribution(g)
	require.Equal(t, []analysis.SizeCount{
		{Size: 1, Count: 4},
		{Size: 4, Count: 1},
	}, h.SortedCounts())

	require.InDelta(t, 8.0/5.0, analysis.AverageDegree(g), 1e-12)
}

func TestClusteringCoefficient(t *testing.T) {
	complete, err := builder.Build(builder.Complete(6))
	require.NoError(t, err)
	require.InDelta(t, 1.0, analysis.ClusteringCoefficient(complete), 1e-12)

	path, err := builder.Build(builder.Path(6))
	require.NoError(t, err)
	require.Zero(t, analysis.ClusteringCoefficient(path), "no triangles anywhere")

	// Triangle with a pendant node attached to node 0:
	// locals = {0: 1/3, 1: 1, 2: 1, 3: 0} → mean 7/12.
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 0}, {0, 3}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	require.InDelta(t, 7.0/12.0, analysis.ClusteringCoefficient(g), 1e-12)
}

package builder_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolate/builder"
	"github.com/katalvlaran/percolate/core"
)

func TestErdosRenyi_Errors(t *testing.T) {
	if _, err := builder.Build(builder.ErdosRenyi(-1, 0.5), builder.WithSeed(1)); !errors.Is(err, builder.ErrTooFewNodes) {
		t.Errorf("negative n: want ErrTooFewNodes, got %v", err)
	}
	if _, err := builder.Build(builder.ErdosRenyi(10, -0.1), builder.WithSeed(1)); !errors.Is(err, builder.ErrInvalidProbability) {
		t.Errorf("p<0: want ErrInvalidProbability, got %v", err)
	}
	if _, err := builder.Build(builder.ErdosRenyi(10, 1.1), builder.WithSeed(1)); !errors.Is(err, builder.ErrInvalidProbability) {
		t.Errorf("p>1: want ErrInvalidProbability, got %v", err)
	}
	// stochastic sampling without an RNG
	if _, err := builder.Build(builder.ErdosRenyi(10, 0.5)); !errors.Is(err, builder.ErrNeedRandSource) {
		t.Errorf("no rng: want ErrNeedRandSource, got %v", err)
	}
	// p ∈ {0,1} is deterministic and must not require an RNG
	if _, err := builder.Build(builder.ErdosRenyi(10, 0)); err != nil {
		t.Errorf("p=0 without rng: unexpected error %v", err)
	}
	if _, err := builder.Build(builder.ErdosRenyi(10, 1)); err != nil {
		t.Errorf("p=1 without rng: unexpected error %v", err)
	}
}

func TestErdosRenyi_NodeCount(t *testing.T) {
	for _, tc := range []struct {
		n int
		p float64
	}{{0, 0.5}, {1, 0.5}, {10, 0.0}, {10, 0.3}, {100, 0.05}, {250, 1.0}} {
		g, err := builder.Build(builder.ErdosRenyi(tc.n, tc.p), builder.WithSeed(42))
		if err != nil {
			t.Fatalf("ErdosRenyi(%d,%v): %v", tc.n, tc.p, err)
		}
		if g.NodeCount() != tc.n {
			t.Errorf("ErdosRenyi(%d,%v): NodeCount = %d; want %d", tc.n, tc.p, g.NodeCount(), tc.n)
		}
	}
}

func TestErdosRenyi_DegenerateEdges(t *testing.T) {
	require := require.New(t)

	empty, err := builder.Build(builder.ErdosRenyi(100, 0))
	require.NoError(err)
	require.Equal(0, empty.EdgeCount(), "p=0 builds no edges")

	full, err := builder.Build(builder.ErdosRenyi(20, 1))
	require.NoError(err)
	require.Equal(20*19/2, full.EdgeCount(), "p=1 builds the complete graph")

	single, err := builder.Build(builder.ErdosRenyi(1, 0.9), builder.WithSeed(7))
	require.NoError(err)
	require.Equal(0, single.EdgeCount(), "n=1 admits no edges")
}

func TestErdosRenyi_Deterministic(t *testing.T) {
	a, err := builder.Build(builder.ErdosRenyi(300, 0.02), builder.WithSeed(99))
	if err != nil {
		t.Fatal(err)
	}
	b, err := builder.Build(builder.ErdosRenyi(300, 0.02), builder.WithSeed(99))
	if err != nil {
		t.Fatal(err)
	}
	if a.EdgeCount() != b.EdgeCount() {
		t.Fatalf("edge counts differ: %d vs %d", a.EdgeCount(), b.EdgeCount())
	}
	for _, u := range a.Nodes() {
		na, _ := a.Neighbors(u)
		nb, _ := b.Neighbors(u)
		require.Equal(t, na, nb, "neighborhood of %d differs across identically seeded runs", u)
	}
}

func TestErdosRenyi_EdgeDensity(t *testing.T) {
	// Loose statistical check: realized edge count near p·n(n-1)/2.
	const (
		n = 400
		p = 0.05
	)
	g, err := builder.Build(builder.ErdosRenyi(n, p), builder.WithSeed(5))
	if err != nil {
		t.Fatal(err)
	}
	want := p * float64(n*(n-1)/2)
	got := float64(g.EdgeCount())
	if got < 0.8*want || got > 1.2*want {
		t.Errorf("edge count %v too far from expectation %v", got, want)
	}
}

func TestBarabasiAlbert_Errors(t *testing.T) {
	for _, tc := range []struct {
		n, m int
	}{{10, 0}, {10, 10}, {10, 11}, {1, 1}, {0, 1}} {
		if _, err := builder.Build(builder.BarabasiAlbert(tc.n, tc.m), builder.WithSeed(1)); !errors.Is(err, builder.ErrInvalidAttachment) {
			t.Errorf("BarabasiAlbert(%d,%d): want ErrInvalidAttachment, got %v", tc.n, tc.m, err)
		}
	}
	if _, err := builder.Build(builder.BarabasiAlbert(10, 2)); !errors.Is(err, builder.ErrNeedRandSource) {
		t.Errorf("no rng: want ErrNeedRandSource, got %v", err)
	}
}

func TestBarabasiAlbert_Shape(t *testing.T) {
	require := require.New(t)
	const (
		n = 500
		m = 2
	)
	g, err := builder.Build(builder.BarabasiAlbert(n, m), builder.WithSeed(13))
	require.NoError(err)

	require.Equal(n, g.NodeCount())
	require.Equal(m*(n-m), g.EdgeCount(), "edgeless seed set gives exactly m(n-m) edges")

	// Every attached node received m edges at creation and can only have
	// gained more since.
	for id := m; id < n; id++ {
		d, derr := g.Degree(id)
		require.NoError(derr)
		require.GreaterOrEqual(d, m, "node %d", id)
	}

	// Connectivity: walk from node 0 and count reachable nodes.
	visited := make([]bool, n)
	queue := []int{0}
	visited[0] = true
	count := 0
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		count++
		nbrs, nerr := g.Neighbors(u)
		require.NoError(nerr)
		for _, v := range nbrs {
			if !visited[v] {
				visited[v] = true
				queue = append(queue, v)
			}
		}
	}
	require.Equal(n, count, "preferential attachment yields a connected graph")
}

func TestBarabasiAlbert_Deterministic(t *testing.T) {
	a, err := builder.Build(builder.BarabasiAlbert(200, 3), builder.WithSeed(21))
	if err != nil {
		t.Fatal(err)
	}
	b, err := builder.Build(builder.BarabasiAlbert(200, 3), builder.WithSeed(21))
	if err != nil {
		t.Fatal(err)
	}
	for _, u := range a.Nodes() {
		na, _ := a.Neighbors(u)
		nb, _ := b.Neighbors(u)
		require.Equal(t, na, nb, "neighborhood of %d differs across identically seeded runs", u)
	}
}

func TestGenerate_Dispatch(t *testing.T) {
	require := require.New(t)

	er, err := builder.Generate(builder.ErdosRenyiKind, 200, 4, builder.WithSeed(3))
	require.NoError(err)
	require.Equal(200, er.NodeCount())

	ba, err := builder.Generate(builder.BarabasiAlbertKind, 200, 4, builder.WithSeed(3))
	require.NoError(err)
	require.Equal(200, ba.NodeCount())
	require.Equal(2*(200-2), ba.EdgeCount(), "avg degree 4 maps to m=2")

	_, err = builder.Generate(builder.ErdosRenyiKind, 100, 0, builder.WithSeed(3))
	require.ErrorIs(err, builder.ErrInvalidAverageDegree)

	_, err = builder.Generate(builder.Kind(42), 100, 4, builder.WithSeed(3))
	require.ErrorIs(err, builder.ErrUnknownKind)
}

func TestParseKind(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want builder.Kind
	}{{"erdos_renyi", builder.ErdosRenyiKind}, {"barabasi_albert", builder.BarabasiAlbertKind}} {
		got, err := builder.ParseKind(tc.in)
		if err != nil || got != tc.want {
			t.Errorf("ParseKind(%q) = %v, %v; want %v", tc.in, got, err, tc.want)
		}
		if got.String() != tc.in {
			t.Errorf("Kind.String() = %q; want %q", got.String(), tc.in)
		}
	}
	if _, err := builder.ParseKind("watts_strogatz"); !errors.Is(err, builder.ErrUnknownKind) {
		t.Errorf("unknown name: want ErrUnknownKind, got %v", err)
	}
}

func TestFixtures(t *testing.T) {
	require := require.New(t)

	path, err := builder.Build(builder.Path(5))
	require.NoError(err)
	require.Equal(4, path.EdgeCount())
	require.True(path.HasEdge(0, 1) && path.HasEdge(3, 4))
	require.False(path.HasEdge(0, 4))

	cycle, err := builder.Build(builder.Cycle(6))
	require.NoError(err)
	require.Equal(6, cycle.EdgeCount())
	require.True(cycle.HasEdge(5, 0), "closing edge present")

	complete, err := builder.Build(builder.Complete(5))
	require.NoError(err)
	require.Equal(10, complete.EdgeCount())

	star, err := builder.Build(builder.Star(7))
	require.NoError(err)
	d0, _ := star.Degree(0)
	require.Equal(6, d0, "hub connects to every leaf")

	_, err = builder.Build(builder.Path(1))
	require.ErrorIs(err, builder.ErrTooFewNodes)
	_, err = builder.Build(builder.Cycle(2))
	require.ErrorIs(err, builder.ErrTooFewNodes)
	_, err = builder.Build(builder.Star(1))
	require.ErrorIs(err, builder.ErrTooFewNodes)
}

func TestCoreErrorsSurfaceThroughBuild(t *testing.T) {
	// A constructor bug connecting a node to itself must surface as a core
	// sentinel, not be silently clamped.
	bad := func(g *core.Graph) error { return g.AddEdge(1, 1) }
	g, err := builder.Build(builder.Path(3))
	if err != nil {
		t.Fatal(err)
	}
	if err = bad(g); !errors.Is(err, core.ErrSelfLoop) {
		t.Errorf("want ErrSelfLoop, got %v", err)
	}
}

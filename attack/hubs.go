package attack

import (
	"sort"

	"github.com/katalvlaran/percolate/core"
)

// rankedNode pairs a node id with its degree snapshot for sorting.
type rankedNode struct {
	id  int
	deg int
}

// Hubs returns the top-k live nodes of g ranked by degree descending,
// ties broken by ascending node id. The result is truncated to
// min(k, NodeCount); k ≤ 0 or a nil graph yields an empty ranking.
//
// Pure: g is not mutated, and repeated calls on an unmutated graph return
// the same ranking.
// Complexity: O(n log n).
func Hubs(g *core.Graph, k int) []int {
	if g == nil || k <= 0 {
		return []int{}
	}

	nodes := g.Nodes() // ascending ids
	ranked := make([]rankedNode, len(nodes))
	for i, id := range nodes {
		d, err := g.Degree(id)
		if err != nil {
			continue // unreachable: Nodes() only yields live ids
		}
		ranked[i] = rankedNode{id: id, deg: d}
	}

	// Stable sort over the id-ascending slice keeps ties in creation order.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].deg > ranked[j].deg
	})

	if k > len(ranked) {
		k = len(ranked)
	}
	top := make([]int, k)
	for i := 0; i < k; i++ {
		top[i] = ranked[i].id
	}

	return top
}

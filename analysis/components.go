// File: components.go
// Role: connected-component partition via union-find.
//
// It uses a disjoint-set structure with path compression and union by
// size, giving near-linear time over nodes + edges — the preferred
// approach at experiment scale (10k nodes across thousands of trials).
package analysis

import (
	"sort"

	"github.com/katalvlaran/percolate/core"
)

// dsu is a disjoint-set forest over the graph's id space.
// parent[v] == v marks a root; size is tracked per root only.
type dsu struct {
	parent []int
	size   []int
}

func newDSU(capacity int) *dsu {
	d := &dsu{
		parent: make([]int, capacity),
		size:   make([]int, capacity),
	}
	for v := range d.parent {
		d.parent[v] = v
		d.size[v] = 1
	}
	return d
}

// find walks to the root, halving the path as it goes.
func (d *dsu) find(v int) int {
	for d.parent[v] != v {
		d.parent[v] = d.parent[d.parent[v]] // point v at its grandparent
		v = d.parent[v]
	}
	return v
}

// union merges the sets holding u and v, attaching the smaller root
// under the larger.
func (d *dsu) union(u, v int) {
	ru, rv := d.find(u), d.find(v)
	if ru == rv {
		return
	}
	if d.size[ru] < d.size[rv] {
		ru, rv = rv, ru
	}
	d.parent[rv] = ru
	d.size[ru] += d.size[rv]
}

// Components returns the partition of g's live nodes into maximal
// connected components. Each component lists its ids ascending; the
// components are ordered by size descending, ties broken by smallest
// member id. A nil or empty graph yields an empty partition.
// Complexity: O((n + E) α(n)).
func Components(g *core.Graph) [][]int {
	if g == nil || g.NodeCount() == 0 {
		return [][]int{}
	}

	nodes := g.Nodes()
	d := newDSU(g.Cap())
	for _, u := range nodes {
		nbrs, err := g.Neighbors(u)
		if err != nil {
			continue // unreachable: Nodes() only yields live ids
		}
		for _, v := range nbrs {
			if u < v { // each undirected edge unions once
				d.union(u, v)
			}
		}
	}

	// Group live nodes by root. Iterating ids ascending keeps every
	// member list sorted without an extra pass.
	groups := make(map[int][]int, len(nodes))
	for _, u := range nodes {
		r := d.find(u)
		groups[r] = append(groups[r], u)
	}
	comps := make([][]int, 0, len(groups))
	for _, members := range groups {
		comps = append(comps, members)
	}
	sort.Slice(comps, func(i, j int) bool {
		if len(comps[i]) != len(comps[j]) {
			return len(comps[i]) > len(comps[j])
		}
		return comps[i][0] < comps[j][0]
	})

	return comps
}

// File: graph.go
// Role: Graph queries, edge mutation, node removal, induced subgraphs.
//
// Determinism:
//   - Nodes() and Neighbors() return ids sorted ascending.
package core

import (
	"fmt"
	"sort"
)

// Cap returns the size of the id space (the original node count n).
// Removed ids stay inside [0, Cap) forever.
func (g *Graph) Cap() int { return len(g.adj) }

// NodeCount returns the number of live nodes.
func (g *Graph) NodeCount() int { return g.nodes }

// EdgeCount returns the number of live edges.
func (g *Graph) EdgeCount() int { return g.edges }

// HasNode reports whether id is a live node.
func (g *Graph) HasNode(id int) bool {
	return id >= 0 && id < len(g.live) && g.live[id]
}

// HasEdge reports whether the undirected edge {u,v} is present.
func (g *Graph) HasEdge(u, v int) bool {
	if !g.HasNode(u) || !g.HasNode(v) {
		return false
	}
	_, ok := g.adj[u][v]

	return ok
}

// Nodes returns all live node ids in ascending order.
// Complexity: O(cap).
func (g *Graph) Nodes() []int {
	out := make([]int, 0, g.nodes)
	for id, ok := range g.live {
		if ok {
			out = append(out, id)
		}
	}

	return out
}

// Degree returns the number of neighbors of id.
// Returns ErrNodeNotFound for absent ids.
func (g *Graph) Degree(id int) (int, error) {
	if !g.HasNode(id) {
		return 0, fmt.Errorf("Degree(%d): %w", id, ErrNodeNotFound)
	}

	return len(g.adj[id]), nil
}

// Neighbors returns the neighbor ids of id in ascending order.
// Returns ErrNodeNotFound for absent ids.
// Complexity: O(deg log deg).
func (g *Graph) Neighbors(id int) ([]int, error) {
	if !g.HasNode(id) {
		return nil, fmt.Errorf("Neighbors(%d): %w", id, ErrNodeNotFound)
	}
	out := make([]int, 0, len(g.adj[id]))
	for v := range g.adj[id] {
		out = append(out, v)
	}
	sort.Ints(out)

	return out, nil
}

// AddEdge inserts the undirected edge {u,v}.
//
// Fails with ErrSelfLoop when u == v and ErrNodeNotFound when either
// endpoint is absent. Re-adding an existing edge is a no-op.
// Complexity: O(1) average.
func (g *Graph) AddEdge(u, v int) error {
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrSelfLoop)
	}
	if !g.HasNode(u) {
		return fmt.Errorf("AddEdge(%d,%d): u: %w", u, v, ErrNodeNotFound)
	}
	if !g.HasNode(v) {
		return fmt.Errorf("AddEdge(%d,%d): v: %w", u, v, ErrNodeNotFound)
	}
	if _, ok := g.adj[u][v]; ok {
		return nil // idempotent for duplicates
	}
	g.adj[u][v] = struct{}{}
	g.adj[v][u] = struct{}{}
	g.edges++

	return nil
}

// RemoveNodes deletes each listed node and all of its incident edges.
// Ids that are out of range or already removed are skipped silently, so a
// removal set may be applied twice without effect.
// Complexity: O(Σ deg(id)) over the removed ids.
func (g *Graph) RemoveNodes(ids []int) {
	for _, id := range ids {
		if !g.HasNode(id) {
			continue
		}
		for v := range g.adj[id] {
			delete(g.adj[v], id)
			g.edges--
		}
		g.adj[id] = make(map[int]struct{})
		g.live[id] = false
		g.nodes--
	}
}

// Induced returns a new Graph over the same id space containing only the
// listed live nodes and the edges with both endpoints among them.
// Ids that are absent in g are ignored. The receiver is not modified.
// Complexity: O(cap + |ids| + Σ deg(id)).
func (g *Graph) Induced(ids []int) *Graph {
	sub := &Graph{
		adj:  make([]map[int]struct{}, len(g.adj)),
		live: make([]bool, len(g.live)),
	}
	for i := range sub.adj {
		sub.adj[i] = make(map[int]struct{})
	}
	for _, id := range ids {
		if g.HasNode(id) && !sub.live[id] {
			sub.live[id] = true
			sub.nodes++
		}
	}
	for _, id := range ids {
		if !sub.live[id] {
			continue
		}
		for v := range g.adj[id] {
			if sub.live[v] && id < v { // count each undirected edge once
				sub.adj[id][v] = struct{}{}
				sub.adj[v][id] = struct{}{}
				sub.edges++
			}
		}
	}

	return sub
}

// Package core declares the Graph type, its sentinel errors, and the
// NewGraph constructor. Query and mutation methods live in graph.go.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidNodeCount indicates a negative node count passed to NewGraph.
	ErrInvalidNodeCount = errors.New("core: node count must be non-negative")

	// ErrNodeNotFound indicates an operation referenced an absent node
	// (out of range, or removed).
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrSelfLoop indicates an attempt to connect a node to itself.
	ErrSelfLoop = errors.New("core: self-loop not allowed")
)

// Graph is an undirected simple graph over the fixed id space 0..cap-1.
//
// Node slots are allocated once at construction; removal flips a live flag
// and detaches incident edges. Survivors keep their ids, so a Graph can be
// pruned by a removal strategy and then analyzed without any relabelling.
type Graph struct {
	adj   []map[int]struct{} // neighbor sets, indexed by node id
	live  []bool             // live[i] reports whether node i is present
	nodes int                // number of live nodes
	edges int                // number of live edges
}

// NewGraph creates a graph with n isolated live nodes, ids 0..n-1.
// Returns ErrInvalidNodeCount if n < 0.
// Complexity: O(n).
func NewGraph(n int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewGraph: n=%d: %w", n, ErrInvalidNodeCount)
	}
	g := &Graph{
		adj:   make([]map[int]struct{}, n),
		live:  make([]bool, n),
		nodes: n,
	}
	for i := 0; i < n; i++ {
		g.adj[i] = make(map[int]struct{})
		g.live[i] = true
	}

	return g, nil
}

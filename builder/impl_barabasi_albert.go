// SPDX-License-Identifier: MIT
// Package: percolate/builder
//
// impl_barabasi_albert.go - implementation of the BarabasiAlbert(n, m)
// constructor (preferential attachment).
//
// Model & seed policy (fixed for reproducibility):
//   - The seed set is the m nodes 0..m-1 with NO edges between them.
//   - The first attached node (id m) connects to all m seed nodes.
//   - Every later node i connects to m DISTINCT existing nodes drawn with
//     probability proportional to their current degree, implemented with a
//     repeated-endpoints pool: every endpoint of every installed edge is
//     appended to the pool, so a uniform draw from the pool is a
//     degree-proportional draw over nodes.
//   - No self-loops (i is added to the pool only after its edges are
//     chosen) and no duplicate targets per new node (draws are rejected
//     into a set until m distinct targets are collected).
//
// Consequences:
//   - The graph is connected and has exactly m·(n−m) edges.
//   - Every node with id ≥ m has degree ≥ m at creation time.
//
// Contract:
//   - 1 ≤ m < n (else ErrInvalidAttachment); n ≥ 0 (else ErrTooFewNodes).
//   - cfg.rng required (else ErrNeedRandSource).
//
// Complexity:
//   - Time O(n·m) expected; the duplicate-rejection loop terminates because
//     the pool always contains at least m distinct node ids when sampled.
//   - Space O(n·m) for the endpoint pool.
package builder

import (
	"fmt"

	"github.com/katalvlaran/percolate/core"
)

const methodBarabasiAlbert = "BarabasiAlbert"

// BarabasiAlbert returns a Constructor sampling a scale-free graph by
// preferential attachment with m edges per added node.
func BarabasiAlbert(n, m int) Constructor {
	return func(cfg builderConfig) (*core.Graph, error) {
		if n < 0 {
			return nil, fmt.Errorf("%s: n=%d: %w", methodBarabasiAlbert, n, ErrTooFewNodes)
		}
		if m < 1 || m >= n {
			return nil, fmt.Errorf("%s: m=%d not in [1,%d]: %w", methodBarabasiAlbert, m, n-1, ErrInvalidAttachment)
		}
		if cfg.rng == nil {
			return nil, fmt.Errorf("%s: %w", methodBarabasiAlbert, ErrNeedRandSource)
		}

		g, err := core.NewGraph(n)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodBarabasiAlbert, err)
		}

		// Targets of the first attached node: the whole seed set. Any
		// degree-proportional rule degenerates to this choice, since all
		// seed nodes start with degree zero.
		targets := make([]int, m)
		for i := range targets {
			targets[i] = i
		}

		// pool holds one entry per edge endpoint; sampling it uniformly is
		// sampling nodes proportionally to degree.
		pool := make([]int, 0, 2*m*(n-m))
		seen := make(map[int]struct{}, m)

		for source := m; source < n; source++ {
			for _, t := range targets {
				if err = g.AddEdge(source, t); err != nil {
					return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodBarabasiAlbert, source, t, err)
				}
				pool = append(pool, source, t)
			}
			if source == n-1 {
				break
			}

			// Draw the next m distinct targets from the endpoint pool.
			clear(seen)
			targets = targets[:0]
			for len(targets) < m {
				candidate := pool[cfg.rng.Intn(len(pool))]
				if _, dup := seen[candidate]; dup {
					continue
				}
				seen[candidate] = struct{}{}
				targets = append(targets, candidate)
			}
		}

		return g, nil
	}
}

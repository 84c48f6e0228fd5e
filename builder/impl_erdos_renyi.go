// SPDX-License-Identifier: MIT
// Package: percolate/builder
//
// impl_erdos_renyi.go - implementation of the ErdosRenyi(n, p) constructor.
//
// Model:
//   - G(n,p): every unordered pair {i,j}, i<j, is an edge independently
//     with probability p.
//
// Contract:
//   - n ≥ 0 (else ErrTooFewNodes); n ≤ 1 yields no edges.
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng required for 0 < p < 1 (else ErrNeedRandSource);
//     p ∈ {0,1} is deterministic and needs no RNG.
//
// Complexity:
//   - Expected time O(n + E): instead of testing every pair, the sampler
//     walks the linearized pair sequence in geometric jumps of
//     ⌊log(1−U)/log(1−p)⌋, touching only pairs that become edges.
//   - Space O(1) beyond the graph itself.
//
// Determinism:
//   - Pairs are visited in the fixed order (v=1..n-1; w=0..v-1), so a fixed
//     seed reproduces the exact edge set.
package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/percolate/core"
)

const (
	methodErdosRenyi = "ErdosRenyi"
	probMin          = 0.0
	probMax          = 1.0
)

// ErdosRenyi returns a Constructor sampling a G(n,p) random graph.
func ErdosRenyi(n int, p float64) Constructor {
	return func(cfg builderConfig) (*core.Graph, error) {
		if n < 0 {
			return nil, fmt.Errorf("%s: n=%d: %w", methodErdosRenyi, n, ErrTooFewNodes)
		}
		if p < probMin || p > probMax {
			return nil, fmt.Errorf("%s: p=%v not in [0,1]: %w", methodErdosRenyi, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return nil, fmt.Errorf("%s: %w", methodErdosRenyi, ErrNeedRandSource)
		}

		g, err := core.NewGraph(n)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodErdosRenyi, err)
		}
		if n <= 1 || p == probMin {
			return g, nil // no pairs to sample
		}

		if p == probMax {
			// Complete graph: deterministic, no draws.
			for v := 1; v < n; v++ {
				for w := 0; w < v; w++ {
					if err = g.AddEdge(v, w); err != nil {
						return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodErdosRenyi, v, w, err)
					}
				}
			}
			return g, nil
		}

		// Geometric gap sampling over the pair sequence
		// (1,0),(2,0),(2,1),(3,0),... — each row v holds pairs (v, 0..v-1).
		lp := math.Log1p(-p)
		v, w := 1, -1
		for v < n {
			lr := math.Log1p(-cfg.rng.Float64())
			w += 1 + int(lr/lp)
			for w >= v && v < n {
				w -= v
				v++
			}
			if v < n {
				if err = g.AddEdge(v, w); err != nil {
					return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodErdosRenyi, v, w, err)
				}
			}
		}

		return g, nil
	}
}

// SPDX-License-Identifier: MIT
// Package: percolate/builder
//
// impl_fixtures.go - deterministic fixture topologies: Path, Cycle,
// Complete, Star. Used by analysis and diameter tests, where graphs with
// known component structure and exact diameters are required.
//
// Contract (all fixtures):
//   - Nodes are 0..n-1; edges are emitted in a stable documented order.
//   - No RNG involved; Build(...) needs no options.
//   - Returns only sentinel errors; never panics at runtime.
package builder

import (
	"fmt"

	"github.com/katalvlaran/percolate/core"
)

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodComplete = "Complete"
	methodStar     = "Star"

	minPathNodes     = 2
	minCycleNodes    = 3
	minCompleteNodes = 1
	minStarNodes     = 2
)

// Path returns a Constructor building the simple path P_n:
// edges (i-1)–i for i = 1..n-1. Diameter n-1.
func Path(n int) Constructor {
	return func(builderConfig) (*core.Graph, error) {
		if n < minPathNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewNodes)
		}
		g, err := core.NewGraph(n)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodPath, err)
		}
		for i := 1; i < n; i++ {
			if err = g.AddEdge(i-1, i); err != nil {
				return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodPath, i-1, i, err)
			}
		}
		return g, nil
	}
}

// Cycle returns a Constructor building the simple cycle C_n:
// path edges plus the closing edge (n-1)–0. Diameter ⌊n/2⌋.
func Cycle(n int) Constructor {
	return func(cfg builderConfig) (*core.Graph, error) {
		if n < minCycleNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewNodes)
		}
		g, err := Path(n)(cfg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodCycle, err)
		}
		if err = g.AddEdge(n-1, 0); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodCycle, n-1, 0, err)
		}
		return g, nil
	}
}

// Complete returns a Constructor building the complete graph K_n.
// Diameter 1 for n ≥ 2.
func Complete(n int) Constructor {
	return func(builderConfig) (*core.Graph, error) {
		if n < minCompleteNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewNodes)
		}
		g, err := core.NewGraph(n)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodComplete, err)
		}
		for v := 1; v < n; v++ {
			for w := 0; w < v; w++ {
				if err = g.AddEdge(v, w); err != nil {
					return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodComplete, v, w, err)
				}
			}
		}
		return g, nil
	}
}

// Star returns a Constructor building the star S_n: node 0 is the hub,
// nodes 1..n-1 are leaves. Diameter 2 for n ≥ 3.
func Star(n int) Constructor {
	return func(builderConfig) (*core.Graph, error) {
		if n < minStarNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewNodes)
		}
		g, err := core.NewGraph(n)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodStar, err)
		}
		for i := 1; i < n; i++ {
			if err = g.AddEdge(0, i); err != nil {
				return nil, fmt.Errorf("%s: AddEdge(0,%d): %w", methodStar, i, err)
			}
		}
		return g, nil
	}
}

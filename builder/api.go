// SPDX-License-Identifier: MIT
// Package: percolate/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: Build(con, opts...) resolves options and runs the
//     constructor. All factories are declared in impl_*.go files.
//   - Functional options resolve into an immutable builderConfig.
//   - Determinism: same parameters, options and seed ⇒ identical graphs.
//   - Safety: never panic at runtime; return sentinel errors.
package builder

import (
	"fmt"

	"github.com/katalvlaran/percolate/core"
)

// Constructor builds a fresh core.Graph from the resolved builderConfig.
// Constructors MUST validate parameters early, return sentinel errors
// (never panic), and stay deterministic for a fixed config.
type Constructor func(cfg builderConfig) (*core.Graph, error)

// Build resolves the builder configuration from opts and applies con.
// The constructor error is wrapped once at this API boundary; branch with
// errors.Is against the builder sentinels.
func Build(con Constructor, opts ...Option) (*core.Graph, error) {
	cfg := newBuilderConfig(opts...)
	g, err := con(cfg)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	return g, nil
}

// Kind tags the random-graph models available to percolation experiments.
type Kind int

const (
	// ErdosRenyiKind selects the G(n,p) uniform random-graph model.
	ErdosRenyiKind Kind = iota

	// BarabasiAlbertKind selects the preferential-attachment scale-free model.
	BarabasiAlbertKind
)

// String returns the canonical lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case ErdosRenyiKind:
		return "erdos_renyi"
	case BarabasiAlbertKind:
		return "barabasi_albert"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps a canonical name to its Kind.
// Returns ErrUnknownKind for anything else.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "erdos_renyi":
		return ErdosRenyiKind, nil
	case "barabasi_albert":
		return BarabasiAlbertKind, nil
	default:
		return 0, fmt.Errorf("ParseKind(%q): %w", s, ErrUnknownKind)
	}
}

// Generate builds a graph of kind k with n nodes and the requested average
// degree, using the parameterization of the percolation study:
//
//	ER: p = avgDegree/(n-1)    (p = 0 when n ≤ 1)
//	BA: m = ⌊avgDegree/2⌋
//
// avgDegree must be positive; the derived parameter is validated by the
// underlying constructor (ErrInvalidProbability, ErrInvalidAttachment).
func Generate(k Kind, n int, avgDegree float64, opts ...Option) (*core.Graph, error) {
	if avgDegree <= 0 {
		return nil, fmt.Errorf("Generate(%s): avg degree %v: %w", k, avgDegree, ErrInvalidAverageDegree)
	}
	switch k {
	case ErdosRenyiKind:
		p := 0.0
		if n > 1 {
			p = avgDegree / float64(n-1)
		}
		return Build(ErdosRenyi(n, p), opts...)
	case BarabasiAlbertKind:
		return Build(BarabasiAlbert(n, int(avgDegree/2)), opts...)
	default:
		return nil, fmt.Errorf("Generate: kind %d: %w", int(k), ErrUnknownKind)
	}
}

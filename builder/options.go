// SPDX-License-Identifier: MIT
// Package: percolate/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   - Options are functional (type Option func(*builderConfig)).
//   - Option constructors validate and panic on meaningless inputs;
//     constructors themselves never panic at runtime.
//   - Determinism is explicit: seeding happens via WithSeed or WithRand,
//     never through hidden globals.
package builder

import "math/rand"

// Option customizes constructor behavior by mutating a builderConfig
// before graph construction begins.
type Option func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a fresh *rand.Rand with the given seed.
// Use this in tests and experiments to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

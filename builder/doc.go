// SPDX-License-Identifier: MIT
// Package: percolate/builder
//
// Package builder constructs core.Graph instances from canonical
// random-graph models and small deterministic topologies.
//
// What
//
//   - ErdosRenyi(n, p): each unordered node pair becomes an edge
//     independently with probability p, sampled in expected O(n + E) time
//     via geometric gap skipping (not an O(n²) Bernoulli scan).
//   - BarabasiAlbert(n, m): preferential attachment from an edgeless
//     m-node seed; every later node attaches to m distinct existing nodes
//     chosen proportionally to current degree, giving exactly m·(n−m) edges.
//   - Path, Cycle, Complete, Star: deterministic fixtures for tests and
//     examples.
//   - Generate(kind, n, avgDegree, opts...): dispatch by Kind with the
//     average-degree parameterization used by percolation experiments
//     (ER p = k̄/(n−1), BA m = ⌊k̄/2⌋).
//
// Determinism
//
//	All randomness flows through an explicit *rand.Rand supplied with
//	WithSeed or WithRand; there are no package globals. Fixed seed and
//	parameters ⇒ identical graphs.
//
// Error policy
//
//	Constructors validate early and return only sentinel errors wrapped
//	with context (%w); branch with errors.Is. Option constructors panic on
//	programmer error (nil RNG); algorithms never panic at runtime.
package builder

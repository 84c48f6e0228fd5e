// Package percolate studies the structural robustness of networks under
// node failure and attack: generate synthetic graphs from canonical
// random-graph models, knock nodes out, and measure how connectivity
// degrades as a function of the fraction removed.
//
// 🚀 What is percolate?
//
//	A reproducible, in-process percolation laboratory that brings together:
//		• core:       mutable undirected simple graph over stable integer ids
//		• builder:    Erdős–Rényi and Barabási–Albert generators + test topologies
//		• attack:     hub ranking, random (failure) and targeted (attack) removal
//		• analysis:   connected components, giant-component statistics, histograms
//		• diameter:   bounded double-sweep diameter estimation
//		• experiment: Monte-Carlo harness sweeping removal fractions in parallel
//
// ✨ Why choose percolate?
//
//   - Deterministic – every stochastic step flows through an explicit,
//     per-trial seeded RNG; same seed ⇒ same numbers, any worker count
//   - Scales – geometric-gap edge sampling and union-find keep 10k-node
//     graphs across tens of thousands of trials cheap
//   - Plain outputs – aggregates are numbers and sorted histograms, ready
//     for whatever plots them; no rendering concerns inside
//
// Data flows strictly downward:
//
//	experiment → builder → core → attack → core → analysis / diameter → aggregates
//
// Dive into each package's doc.go for contracts, invariants and complexity.
//
//	go get github.com/katalvlaran/percolate
package percolate

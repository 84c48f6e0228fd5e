// Package analysis partitions a pruned graph into connected components and
// derives the connectivity statistics percolation experiments track.
//
// What
//
//   - Components(g): the partition of live nodes into maximal connected
//     components, via union-find with path compression and union by size.
//   - Sizes, GiantFraction, MeanOtherSize, Summarize: component-size
//     statistics; the giant-component fraction S and the mean size <s> of
//     the non-giant components are the classic percolation observables.
//   - Histogram: an additive size→count aggregate with order-independent
//     Merge, emitted as sorted (size, count) pairs for external plotting.
//   - DegreeDistribution, AverageDegree, ClusteringCoefficient: structural
//     summaries of the generated models themselves.
//
// Boundary conditions
//
//	Statistics on an empty graph are defined values, never errors:
//	GiantFraction is 0, Sizes is empty, and MeanOtherSize reports
//	ok=false whenever fewer than two components exist. Total removal
//	(fraction 1.0) is an expected point of every sweep.
//
// Determinism
//
//	Components orders each component's ids ascending and sorts components
//	by size descending, ties by smallest member id, so identical graphs
//	produce byte-identical partitions.
//
// Complexity (n = live nodes, E = live edges)
//
//   - Components: O((n + E) α(n)) — effectively linear
//   - ClusteringCoefficient: O(Σ deg²) — intended for model inspection,
//     not for the inner Monte-Carlo loop
package analysis

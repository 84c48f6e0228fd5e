// Package diameter estimates the diameter of a graph's largest connected
// component with a bounded double-sweep heuristic.
//
// What
//
//	Estimate(g) isolates the largest component, runs a breadth-first
//	search from an arbitrary node, hops to the farthest node found, and
//	re-sweeps while the eccentricity keeps improving, up to a bound of
//	2 + ⌈log₂ |C|⌉ sweeps. The maximum eccentricity seen is returned.
//
// Accuracy
//
//	The result is a lower bound of the true diameter, exact on trees and
//	on graphs where the sweep converges — including the paths, cycles and
//	complete graphs used to validate it. Exact all-pairs BFS is
//	deliberately out of reach at experiment scale (10k nodes, thousands
//	of trials); the sweep bound guarantees termination and degrades to
//	the best value found so far rather than looping.
//
// Boundaries
//
//	An empty graph and a singleton component both yield 0.
//
// Complexity
//
//	O(sweeps · (n + E)) on the largest component, sweeps ≤ 2 + ⌈log₂ n⌉.
package diameter

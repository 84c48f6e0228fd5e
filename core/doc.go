// Package core provides the fundamental Graph type for percolation
// studies: a mutable, undirected, simple graph over stable integer ids.
//
// What
//
//   - Nodes are the integers 0..n-1 in creation order; ids are stable.
//     Removing a node deletes its membership and incident edges but never
//     renumbers survivors, so ids double as creation-order tie-breakers.
//   - Adjacency is symmetric (v ∈ adj[u] ⟺ u ∈ adj[v]); self-loops and
//     parallel edges are rejected, so degree(v) = |adj[v]| always holds.
//   - Induced extracts the subgraph spanned by a node subset over the same
//     id space, used to isolate a component before diameter estimation.
//
// Why
//
//   - Removal strategies mutate one trial's graph in place and analysis
//     reads it afterwards; a slot arena with live flags gives O(1)
//     membership, O(deg) removal and zero id churn.
//
// Concurrency
//
//	A Graph is confined to a single trial and must not be mutated
//	concurrently. The experiment harness gives every trial its own Graph,
//	so no locking is needed or provided.
//
// Complexity (n = |nodes|, E = |edges|)
//
//   - AddEdge / HasEdge / Degree: O(1) average
//   - RemoveNodes(S): O(Σ deg(s)) over s ∈ S
//   - Induced(S): O(|S| + Σ deg(s))
package core

// Package attack prunes graphs the way a percolation experiment does:
// random node failure and degree-targeted attack.
//
// What
//
//   - Hubs(g, k): the top-k nodes by degree — the ranking that targeted
//     removal attacks first.
//   - Random(g, fraction, rng): remove ⌊fraction·n⌋ distinct nodes chosen
//     uniformly without replacement (random failure).
//   - Targeted(g, fraction): remove the ⌊fraction·n⌋ highest-degree nodes,
//     ranked once against the pre-removal graph (coordinated attack).
//   - Remove(kind, g, fraction, rng): dispatch by Kind.
//
// Tie-breaking
//
//	Hub ranking orders by degree descending with ties broken by ascending
//	node id (creation order). Targeted removal is sensitive to this order
//	when many nodes share the minimum qualifying degree, so the tie-break
//	is part of the contract, not an accident of map iteration.
//
// Mutation
//
//	Both strategies mutate the given graph in place and return the removed
//	ids; there is no hidden copy. A pruned graph cannot be restored —
//	callers discard it after measurement.
package attack

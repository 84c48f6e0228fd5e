// File: removal.go
// Role: node-removal strategies (random failure, targeted attack).
//
// Both strategies compute count = ⌊fraction·NodeCount⌋ against the graph
// BEFORE any removal, mutate the graph in place, and return the removed
// ids. fraction outside [0,1] is rejected, never clamped.
package attack

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/percolate/core"
)

// Random removes ⌊fraction·n⌋ distinct nodes chosen uniformly without
// replacement and returns the removed ids in draw order.
//
// Requires rng for any fraction that removes at least one node; fraction 0
// (or one too small to reach a whole node) is a no-op and needs none.
// Complexity: O(n).
func Random(g *core.Graph, fraction float64, rng *rand.Rand) ([]int, error) {
	if g == nil {
		return nil, fmt.Errorf("Random: %w", ErrGraphNil)
	}
	if fraction < 0 || fraction > 1 {
		return nil, fmt.Errorf("Random: fraction=%v: %w", fraction, ErrInvalidFraction)
	}
	count := int(fraction * float64(g.NodeCount()))
	if count == 0 {
		return []int{}, nil
	}
	if rng == nil {
		return nil, fmt.Errorf("Random: %w", ErrNeedRandSource)
	}

	doomed, err := sampleWithoutReplacement(g.Nodes(), count, rng)
	if err != nil {
		return nil, fmt.Errorf("Random: %w", err)
	}
	g.RemoveNodes(doomed)

	return doomed, nil
}

// Targeted removes the ⌊fraction·n⌋ highest-degree nodes, with the hub
// ranking evaluated exactly once against the pre-removal graph, and
// returns the removed ids in ranking order.
// Complexity: O(n log n).
func Targeted(g *core.Graph, fraction float64) ([]int, error) {
	if g == nil {
		return nil, fmt.Errorf("Targeted: %w", ErrGraphNil)
	}
	if fraction < 0 || fraction > 1 {
		return nil, fmt.Errorf("Targeted: fraction=%v: %w", fraction, ErrInvalidFraction)
	}
	doomed := Hubs(g, int(fraction*float64(g.NodeCount())))
	g.RemoveNodes(doomed)

	return doomed, nil
}

// Remove dispatches to the strategy tagged by k. rng is used only by
// RandomFailure; TargetedAttack ignores it.
func Remove(k Kind, g *core.Graph, fraction float64, rng *rand.Rand) ([]int, error) {
	switch k {
	case RandomFailure:
		return Random(g, fraction, rng)
	case TargetedAttack:
		return Targeted(g, fraction)
	default:
		return nil, fmt.Errorf("Remove: kind %d: %w", int(k), ErrUnknownKind)
	}
}

// sampleWithoutReplacement draws count distinct elements from population
// via a partial Fisher–Yates shuffle. Fails with ErrSampleExhausted rather
// than retrying when count exceeds the population.
func sampleWithoutReplacement(population []int, count int, rng *rand.Rand) ([]int, error) {
	if count > len(population) {
		return nil, fmt.Errorf("sample %d of %d: %w", count, len(population), ErrSampleExhausted)
	}
	for i := 0; i < count; i++ {
		j := i + rng.Intn(len(population)-i)
		population[i], population[j] = population[j], population[i]
	}

	return population[:count], nil
}

// File: harness.go
// Role: Monte-Carlo execution — per-trial seeding, the worker pool, and
// the three experiment shapes.
package experiment

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/percolate/analysis"
	"github.com/katalvlaran/percolate/attack"
	"github.com/katalvlaran/percolate/builder"
	"github.com/katalvlaran/percolate/core"
	"github.com/katalvlaran/percolate/diameter"
)

// splitmix64 is the finalizer of the SplitMix64 generator: a cheap,
// well-mixed 64-bit permutation.
func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB

	return x ^ (x >> 31)
}

// trialSeed derives the private RNG seed of one (fraction, iteration)
// cell from the global seed. Deterministic, so reruns and different
// worker counts reproduce every trial exactly.
func trialSeed(seed int64, fracIdx, iter int) int64 {
	x := splitmix64(uint64(seed) ^ uint64(fracIdx)<<32)
	x = splitmix64(x ^ uint64(iter))

	return int64(x)
}

// runTrial generates one fresh graph and prunes it at the given fraction.
// The same rng drives generation and removal, mirroring one independent
// trial of the study.
func runTrial(cfg Config, fraction float64, rng *rand.Rand) (*core.Graph, error) {
	g, err := builder.Generate(cfg.Generator, cfg.Nodes, cfg.AvgDegree, builder.WithRand(rng))
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	if _, err = attack.Remove(cfg.Strategy, g, fraction, rng); err != nil {
		return nil, fmt.Errorf("remove: %w", err)
	}

	return g, nil
}

// forEachTrial runs cfg.Iterations independent trials at one fraction on
// the worker pool. measure is called once per trial with the iteration
// index and the pruned graph; it must write only into its own slot of a
// caller-owned slice, which is what makes lock-free reduction possible.
func forEachTrial(ctx context.Context, cfg Config, fracIdx int, fraction float64, measure func(iter int, g *core.Graph)) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.workers())

	for iter := 0; iter < cfg.Iterations; iter++ {
		iter := iter
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			rng := rand.New(rand.NewSource(trialSeed(cfg.Seed, fracIdx, iter)))
			g, err := runTrial(cfg, fraction, rng)
			if err != nil {
				return fmt.Errorf("fraction %v, trial %d: %w", fraction, iter, err)
			}
			measure(iter, g)

			return nil
		})
	}

	return eg.Wait()
}

// ComponentSizes runs the component-size experiment: for each fraction,
// pool every component size from every trial into one histogram.
// Defaults to DefaultComponentFractions when cfg.Fractions is empty.
func ComponentSizes(ctx context.Context, cfg Config, opts ...Option) ([]FractionHistogram, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := newOptions(opts...)
	grid := cfg.fractions(DefaultComponentFractions)

	out := make([]FractionHistogram, len(grid))
	for fi, fraction := range grid {
		start := time.Now()
		partial := make([]analysis.Histogram, cfg.Iterations)
		err := forEachTrial(ctx, cfg, fi, fraction, func(iter int, g *core.Graph) {
			partial[iter] = analysis.SizeHistogram(g)
		})
		if err != nil {
			return nil, err
		}

		pooled := analysis.NewHistogram()
		for _, h := range partial {
			pooled.Merge(h)
		}
		out[fi] = FractionHistogram{Fraction: fraction, Sizes: pooled}
		o.log.Info().
			Float64("fraction", fraction).
			Int("trials", cfg.Iterations).
			Dur("elapsed", time.Since(start)).
			Msg("component-size fraction complete")
	}

	return out, nil
}

// Robustness runs the robustness experiment: for each fraction of a dense
// sweep, average the giant-component fraction and the mean non-giant
// component size across trials. Defaults to DefaultSweepFractions.
func Robustness(ctx context.Context, cfg Config, opts ...Option) ([]RobustnessPoint, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := newOptions(opts...)
	grid := cfg.fractions(DefaultSweepFractions)

	out := make([]RobustnessPoint, len(grid))
	for fi, fraction := range grid {
		start := time.Now()
		summaries := make([]analysis.Summary, cfg.Iterations)
		err := forEachTrial(ctx, cfg, fi, fraction, func(iter int, g *core.Graph) {
			summaries[iter] = analysis.Summarize(g)
		})
		if err != nil {
			return nil, err
		}

		giants := make([]float64, cfg.Iterations)
		others := make([]float64, 0, cfg.Iterations)
		for i, s := range summaries {
			giants[i] = s.GiantFraction
			if s.MeanOtherOK {
				others = append(others, s.MeanOtherSize)
			}
		}
		point := RobustnessPoint{
			Fraction:      fraction,
			GiantFraction: stat.Mean(giants, nil),
		}
		if len(others) > 0 {
			point.MeanOtherSize = stat.Mean(others, nil)
			point.MeanOtherOK = true
		}
		out[fi] = point
		o.log.Info().
			Float64("fraction", fraction).
			Int("trials", cfg.Iterations).
			Dur("elapsed", time.Since(start)).
			Msg("robustness fraction complete")
	}

	return out, nil
}

// DiameterRobustness runs the diameter experiment: for each fraction of
// the sweep, average the estimated diameter of the largest component
// across trials. Defaults to DefaultSweepFractions.
func DiameterRobustness(ctx context.Context, cfg Config, opts ...Option) ([]DiameterPoint, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := newOptions(opts...)
	grid := cfg.fractions(DefaultSweepFractions)

	out := make([]DiameterPoint, len(grid))
	for fi, fraction := range grid {
		start := time.Now()
		estimates := make([]float64, cfg.Iterations)
		err := forEachTrial(ctx, cfg, fi, fraction, func(iter int, g *core.Graph) {
			estimates[iter] = float64(diameter.Estimate(g))
		})
		if err != nil {
			return nil, err
		}

		out[fi] = DiameterPoint{Fraction: fraction, Diameter: stat.Mean(estimates, nil)}
		o.log.Info().
			Float64("fraction", fraction).
			Int("trials", cfg.Iterations).
			Dur("elapsed", time.Since(start)).
			Msg("diameter fraction complete")
	}

	return out, nil
}

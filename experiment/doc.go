// Package experiment orchestrates the Monte-Carlo percolation study:
// sweep removal fractions, run independent trials at each fraction, and
// aggregate connectivity measurements.
//
// What
//
//   - ComponentSizes: pool every component size from every trial into one
//     histogram per fraction (defaults to the classic {0.05, 0.18, 0.45}).
//   - Robustness: average the giant-component fraction S and the mean
//     non-giant size <s> per fraction over a dense sweep (default 30
//     evenly spaced fractions in [0,1]).
//   - DiameterRobustness: average the estimated diameter of the largest
//     component over the same sweep.
//
// Each trial independently generates a fresh graph (Config.Generator,
// Nodes, AvgDegree), prunes it (Config.Strategy, current fraction), and
// measures the survivor. Trials never share state.
//
// Reproducibility & parallelism
//
//	Every (fraction, iteration) cell derives its own RNG seed from the
//	global Config.Seed through a splitmix64 mix, so trials are
//	statistically independent yet fully reproducible. Cells are
//	embarrassingly parallel: an errgroup worker pool (Config.Workers,
//	default GOMAXPROCS) executes them concurrently, each writing into its
//	own result slot; aggregation then reduces slots in index order, so
//	results are identical for any worker count.
//
// Validation
//
//	Config is validated once at experiment setup (never re-validated per
//	trial); invalid parameters surface as ErrInvalidConfig before any
//	graph is built. Per-trial degeneracies — total removal, singleton
//	components — are defined values, never errors, so a sweep always
//	covers fraction 1.0.
//
// Progress
//
//	The harness is silent by default; inject a zerolog.Logger with
//	WithLogger to get one event per completed fraction.
package experiment

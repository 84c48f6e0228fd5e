// Package experiment declares the experiment Config, result point types,
// sentinel errors, and harness options.
package experiment

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/percolate/analysis"
	"github.com/katalvlaran/percolate/attack"
	"github.com/katalvlaran/percolate/builder"
)

// ErrInvalidConfig indicates experiment parameters that fail validation:
// non-positive node count, degree or iteration count, a fraction outside
// [0,1], or an unknown generator/strategy kind.
var ErrInvalidConfig = errors.New("experiment: invalid config")

// defaultSweepPoints is the resolution of the dense fraction sweep used by
// the robustness and diameter experiments.
const defaultSweepPoints = 30

// Config fixes one experiment: which model, which removal strategy, the
// graph scale, the fraction grid, and the Monte-Carlo budget.
//
// Validated once at experiment setup via Validate; the harness never
// re-validates per trial.
type Config struct {
	// Generator selects the random-graph model.
	Generator builder.Kind `validate:"min=0,max=1"`

	// Strategy selects the removal strategy.
	Strategy attack.Kind `validate:"min=0,max=1"`

	// Nodes is the node count of every generated graph.
	Nodes int `validate:"gt=0"`

	// AvgDegree parameterizes both models (ER p = k̄/(n-1), BA m = ⌊k̄/2⌋).
	AvgDegree float64 `validate:"gt=0"`

	// Fractions is the removal-fraction grid; empty selects the
	// experiment's default grid.
	Fractions []float64 `validate:"omitempty,dive,gte=0,lte=1"`

	// Iterations is the number of independent trials per fraction.
	Iterations int `validate:"gt=0"`

	// Seed anchors every per-trial RNG stream.
	Seed int64

	// Workers bounds trial concurrency; 0 means GOMAXPROCS.
	Workers int `validate:"gte=0"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate reports whether the configuration can run.
// All failures wrap ErrInvalidConfig.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// workers resolves the effective pool size.
func (c Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}

	return runtime.GOMAXPROCS(0)
}

// fractions resolves the effective fraction grid.
func (c Config) fractions(defaults func() []float64) []float64 {
	if len(c.Fractions) > 0 {
		return c.Fractions
	}

	return defaults()
}

// DefaultComponentFractions returns the fixed grid of the component-size
// experiment: one fraction below, near, and above the percolation
// threshold of a k̄=4 random graph.
func DefaultComponentFractions() []float64 {
	return []float64{0.05, 0.18, 0.45}
}

// DefaultSweepFractions returns 30 evenly spaced fractions spanning [0,1].
func DefaultSweepFractions() []float64 {
	return floats.Span(make([]float64, defaultSweepPoints), 0, 1)
}

// FractionHistogram is the component-size aggregate at one fraction: all
// component sizes from all trials pooled into a single histogram.
type FractionHistogram struct {
	Fraction float64
	Sizes    analysis.Histogram
}

// RobustnessPoint is the robustness aggregate at one fraction. MeanOtherOK
// is false when no trial produced a defined mean non-giant size (e.g. the
// graph stayed fully connected, or nothing remained).
type RobustnessPoint struct {
	Fraction      float64
	GiantFraction float64
	MeanOtherSize float64
	MeanOtherOK   bool
}

// DiameterPoint is the mean estimated diameter at one fraction.
type DiameterPoint struct {
	Fraction float64
	Diameter float64
}

// Option customizes harness behavior.
type Option func(*options)

type options struct {
	log zerolog.Logger
}

func newOptions(opts ...Option) options {
	o := options{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithLogger injects a logger for per-fraction progress events.
// The harness stays silent without it.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = l }
}

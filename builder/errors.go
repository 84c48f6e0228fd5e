// SPDX-License-Identifier: MIT
// Package: percolate/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with
//     errors.Is(err, ErrX).
//   - Implementations attach context via %w wrapping at the call site;
//     sentinels themselves carry no parameters.
package builder

import "errors"

// ErrTooFewNodes indicates a node count below the constructor's minimum
// (negative n for generators; model-specific minima for fixtures).
var ErrTooFewNodes = errors.New("builder: node count too small")

// ErrInvalidProbability indicates a connection probability outside the
// closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrInvalidAttachment indicates a Barabási–Albert attachment parameter m
// outside the valid range [1, n-1].
var ErrInvalidAttachment = errors.New("builder: attachment parameter out of range")

// ErrNeedRandSource indicates a stochastic constructor was invoked without
// an RNG (WithSeed or WithRand must be supplied).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidAverageDegree indicates a non-positive average degree passed
// to Generate.
var ErrInvalidAverageDegree = errors.New("builder: average degree must be positive")

// ErrUnknownKind indicates a Kind value outside the declared generator set.
var ErrUnknownKind = errors.New("builder: unknown generator kind")

// Package attack declares removal-strategy kinds and sentinel errors.
package attack

import (
	"errors"
	"fmt"
)

// Sentinel errors for removal operations.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("attack: graph is nil")

	// ErrInvalidFraction indicates a removal fraction outside [0,1].
	ErrInvalidFraction = errors.New("attack: fraction out of range")

	// ErrNeedRandSource indicates random removal was requested without an RNG.
	ErrNeedRandSource = errors.New("attack: rng is required")

	// ErrSampleExhausted indicates a sample larger than the remaining
	// population was requested. Unreachable through the fraction API; kept
	// as a guard against future samplers.
	ErrSampleExhausted = errors.New("attack: sample exceeds population")

	// ErrUnknownKind indicates a Kind value outside the declared strategy set.
	ErrUnknownKind = errors.New("attack: unknown removal kind")
)

// Kind tags the node-removal strategies.
type Kind int

const (
	// RandomFailure removes uniformly random nodes.
	RandomFailure Kind = iota

	// TargetedAttack removes highest-degree nodes first.
	TargetedAttack
)

// String returns the canonical lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case RandomFailure:
		return "random"
	case TargetedAttack:
		return "targeted"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps a canonical name to its Kind.
// Returns ErrUnknownKind for anything else.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "random":
		return RandomFailure, nil
	case "targeted":
		return TargetedAttack, nil
	default:
		return 0, fmt.Errorf("ParseKind(%q): %w", s, ErrUnknownKind)
	}
}

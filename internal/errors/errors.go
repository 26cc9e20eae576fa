// Package errors defines the error taxonomy shared by every layer of the
// prover: user errors, budget exhaustion, and internal consistency
// failures. Each taxonomy member is a gopkg.in/src-d/go-errors.v1 Kind,
// so call sites construct typed errors with ErrXxx.New(...) and test for
// membership with ErrXxx.Is(err).
package errors

import (
	goerrors "gopkg.in/src-d/go-errors.v1"
)

// Kind classifies an error for the purposes of Prover.Saturate's Outcome.
type Kind int

const (
	// KindUser covers malformed initial clauses, type mismatches at
	// ingress, and unknown symbols. Surfaced as Outcome.Error; never
	// aborts the prover.
	KindUser Kind = iota
	// KindTimeout covers step and wall-clock budget exhaustion.
	// Surfaced as Outcome.Timeout; prover state remains valid.
	KindTimeout
	// KindInternal covers invariant violations: inconsistent bindings
	// where the invariants forbid them, interner corruption, a
	// TypeMismatch or DeBruijnUnbound escaping an inference. The
	// saturation is irrecoverable once this occurs.
	KindInternal
	// KindConfig covers incomplete Prover configuration: no selection
	// function, no ordering. Caught at Prover.New, before any clause
	// is processed.
	KindConfig
)

func (k Kind) String() string {
	switch k {
	case KindUser:
		return "user"
	case KindTimeout:
		return "timeout"
	case KindInternal:
		return "internal"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

var (
	// ErrUser is the kind for caller-facing input mistakes.
	ErrUser = goerrors.NewKind("user error: %s")
	// ErrTimeout is the kind returned when a deadline or step budget
	// is exhausted mid-saturation.
	ErrTimeout = goerrors.NewKind("saturation budget exhausted: %s")
	// ErrInternal is the kind for invariant violations that should
	// never occur outside a bug in the core itself.
	ErrInternal = goerrors.NewKind("internal prover error: %s")
	// ErrConfig is the kind for incomplete or contradictory
	// configuration supplied to Prover.New.
	ErrConfig = goerrors.NewKind("invalid prover configuration: %s")

	// ErrSignatureConflict is raised when a symbol is declared twice
	// with incompatible types.
	ErrSignatureConflict = goerrors.NewKind("symbol %q already declared with incompatible type")
	// ErrTypeMismatch is raised when a term or substitution would be
	// constructed with an ill-typed application.
	ErrTypeMismatch = goerrors.NewKind("type mismatch: %s")
	// ErrDeBruijnUnbound is raised when a lift would expose a negative
	// de Bruijn index.
	ErrDeBruijnUnbound = goerrors.NewKind("de Bruijn index unbound after lift: %s")
	// ErrInconsistentBinding is raised when a substitution bind would
	// rebind a variable to an incompatible value.
	ErrInconsistentBinding = goerrors.NewKind("inconsistent binding for %s")
	// ErrFrozen is raised when code attempts to mutate an interned
	// clause outside of the one-time selection step.
	ErrFrozen = goerrors.NewKind("clause %d is frozen and cannot be mutated: %s")
)

// Classify maps an error produced anywhere in the prover to the Kind an
// Outcome should report. Unrecognized errors default to KindInternal,
// since an un-taxonomized failure is itself a bug.
func Classify(err error) Kind {
	switch {
	case err == nil:
		return KindUser
	case ErrTimeout.Is(err):
		return KindTimeout
	case ErrConfig.Is(err):
		return KindConfig
	case ErrUser.Is(err), ErrSignatureConflict.Is(err):
		return KindUser
	default:
		return KindInternal
	}
}

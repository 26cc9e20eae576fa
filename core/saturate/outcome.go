package saturate

import (
	"github.com/zetaprover/zeta/core/clause"
	"github.com/zetaprover/zeta/core/proof"
)

// Kind is the result of a saturation run — SPEC_FULL.md §6's
// Outcome ∈ {Refutation(proof), Saturated, Timeout, Error(kind)}.
type Kind int

const (
	Saturated Kind = iota
	Refutation
	Timeout
	Error
)

func (k Kind) String() string {
	switch k {
	case Saturated:
		return "saturated"
	case Refutation:
		return "refutation"
	case Timeout:
		return "timeout"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Outcome is the given-clause loop's terminal result. Proof is
// populated for Refutation (and is otherwise the partial DAG recorded
// so far, useful for diagnostics even on Saturated/Timeout). Empty
// names the derived empty clause on Refutation. Err carries the
// classified failure on Error.
type Outcome struct {
	Kind  Kind
	Proof *proof.DAG
	Empty clause.Id
	Err   error
}

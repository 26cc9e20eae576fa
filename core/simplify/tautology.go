package simplify

import (
	"github.com/zetaprover/zeta/core/clause"
	"github.com/zetaprover/zeta/core/literal"
)

// IsTautology reports whether c is always true: either it still
// carries a reflexive-positive literal — core/clause.Table.Make keeps
// exactly one such literal, and only that one, when every literal of a
// non-empty input clause was reflexive-positive, so the clause doesn't
// alias the empty clause's representation — or it contains a literal
// and its exact negation over the same atom (s ≈ t and s ≉ t, sides in
// either order) — SPEC_FULL.md §4.K.7. Duplicate and reflexive-negative
// literals are handled at clause-creation time and never make a clause
// a tautology on their own.
func IsTautology(c *clause.Clause) bool {
	lits := c.Literals()
	for _, l := range lits {
		if l.IsTrivial() {
			return true
		}
	}
	for i := range lits {
		for j := i + 1; j < len(lits); j++ {
			if lits[i].Sign() == lits[j].Sign() {
				continue
			}
			if sameAtom(lits[i], lits[j]) {
				return true
			}
		}
	}
	return false
}

// sameAtom reports whether two literals share the same pair of sides
// (in either order), ignoring sign — terms are hash-consed, so this is
// a pointer comparison, the same identity check literal.Equal uses
// internally before its sign comparison.
func sameAtom(a, b *literal.Literal) bool {
	if a.Lhs() == b.Lhs() && a.Rhs() == b.Rhs() {
		return true
	}
	return a.Lhs() == b.Rhs() && a.Rhs() == b.Lhs()
}

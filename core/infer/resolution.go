package infer

import (
	"github.com/zetaprover/zeta/core/clause"
	"github.com/zetaprover/zeta/core/literal"
	"github.com/zetaprover/zeta/core/subst"
	"github.com/zetaprover/zeta/core/unify"
)

// EqualityResolution applies SPEC_FULL.md §4.K.2: given a clause
// C ∨ s ≉ t, if s and t unify under mgu and (s ≉ t)σ is eligible in
// Cσ ∪ {(s ≉ t)σ}, the inference removes the literal and emits Cσ —
// the simplest generating rule, since it needs no second premise.
func EqualityResolution(ctx *Context, c *clause.Clause, litIdx int) (*clause.Clause, bool, error) {
	lit := c.Literals()[litIdx]
	if lit.Sign() {
		return nil, false, nil
	}

	mgu, ok := unify.Unify(ctx.Terms, subst.Empty(),
		unify.Scoped{Term: lit.Lhs(), Scope: 0},
		unify.Scoped{Term: lit.Rhs(), Scope: 0})
	if !ok {
		return nil, false, nil
	}

	renaming := sharedRenaming()
	litsσ, err := substLits(ctx, renaming, mgu, c.Literals(), 0)
	if err != nil {
		return nil, false, err
	}

	if !eligible(ctx.Ord, c, litsσ, litIdx) {
		return nil, false, nil
	}

	out := make([]*literal.Literal, 0, len(litsσ)-1)
	for i, l := range litsσ {
		if i == litIdx {
			continue
		}
		out = append(out, l)
	}

	result, err := ctx.Clauses.Make(ctx.Terms, ctx.Types, out, ctx.Ord, clause.Proof{
		Rule:    "equality_resolution",
		Parents: []clause.Id{c.Id()},
	}, c.Penalty())
	if err != nil {
		return nil, false, err
	}
	return result, true, nil
}

package infer

import (
	"github.com/zetaprover/zeta/core/clause"
	"github.com/zetaprover/zeta/core/literal"
	"github.com/zetaprover/zeta/core/order"
	"github.com/zetaprover/zeta/core/subst"
	"github.com/zetaprover/zeta/core/unify"
)

// EqualityFactoring applies SPEC_FULL.md §4.K.3: given two positive
// equations s ≈ t (at sIdx) and s' ≈ t' (at sPrimeIdx) in the same
// clause, if s and s' unify under σ, sσ is not strictly smaller than
// tσ, and (s ≈ t)σ is maximal in Cσ, the inference drops s ≈ t, keeps
// s' ≈ t', and adds the negated equation t ≉ t' — merging the two
// literals' right-hand sides instead of leaving both equations in the
// clause, which is what licenses factoring to terminate chains of
// equal terms that superposition alone would keep regenerating.
func EqualityFactoring(ctx *Context, c *clause.Clause, sIdx, sPrimeIdx int) (*clause.Clause, bool, error) {
	if sIdx == sPrimeIdx {
		return nil, false, nil
	}
	lits := c.Literals()
	litS, litSPrime := lits[sIdx], lits[sPrimeIdx]
	if !litS.Sign() || !litSPrime.Sign() {
		return nil, false, nil
	}

	mgu, ok := unify.Unify(ctx.Terms, subst.Empty(),
		unify.Scoped{Term: litS.Lhs(), Scope: 0},
		unify.Scoped{Term: litSPrime.Lhs(), Scope: 0})
	if !ok {
		return nil, false, nil
	}

	renaming := sharedRenaming()
	litsσ, err := substLits(ctx, renaming, mgu, lits, 0)
	if err != nil {
		return nil, false, err
	}

	sσ, tσ := litsσ[sIdx].Lhs(), litsσ[sIdx].Rhs()
	if ctx.Ord.Compare(sσ, tσ) == order.Less {
		return nil, false, nil
	}
	if !isMaximal(ctx.Ord, litsσ, sIdx) {
		return nil, false, nil
	}

	tPrimeσ := litsσ[sPrimeIdx].Rhs()

	out := make([]*literal.Literal, 0, len(litsσ))
	for i, l := range litsσ {
		if i == sIdx {
			continue
		}
		out = append(out, l)
	}
	out = append(out, literal.MkNeq(tσ, tPrimeσ))

	result, err := ctx.Clauses.Make(ctx.Terms, ctx.Types, out, ctx.Ord, clause.Proof{
		Rule:    "equality_factoring",
		Parents: []clause.Id{c.Id()},
	}, c.Penalty())
	if err != nil {
		return nil, false, err
	}
	return result, true, nil
}

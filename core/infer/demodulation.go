package infer

import (
	"github.com/zetaprover/zeta/core/clause"
	"github.com/zetaprover/zeta/core/index"
	"github.com/zetaprover/zeta/core/literal"
	"github.com/zetaprover/zeta/core/order"
	"github.com/zetaprover/zeta/core/subst"
	"github.com/zetaprover/zeta/core/term"
)

// Demodulation applies SPEC_FULL.md §4.K.4's simplification rule: rule
// must be a unit, positive equation l ≈ r; match is a one-directional
// matcher (rule's l is the pattern, at ruleScope) of the subterm at pos
// on side of target's literal litIdx, supplied by the caller
// (core/simplify finds it by walking the target's positions with
// unify.Match; core/index is not consulted). Rewriting is licensed only when lσ ≻ rσ, so repeated
// demodulation always strictly decreases the target under the term
// ordering and the simplification loop terminates.
func Demodulation(
	ctx *Context,
	rule *clause.Clause,
	target *clause.Clause, litIdx int, side index.Side, pos term.Position,
	match *subst.Subst, ruleScope int,
) (*clause.Clause, bool, error) {
	if len(rule.Literals()) != 1 || !rule.Literals()[0].Sign() {
		return nil, false, nil
	}
	ruleLit := rule.Literals()[0]

	renaming := sharedRenaming()
	lσ, err := term.ApplySubst(ctx.Terms, ctx.Types, renaming, match, ruleLit.Lhs(), ruleScope)
	if err != nil {
		return nil, false, err
	}
	rσ, err := term.ApplySubst(ctx.Terms, ctx.Types, renaming, match, ruleLit.Rhs(), ruleScope)
	if err != nil {
		return nil, false, err
	}
	if ctx.Ord.Compare(lσ, rσ) != order.Greater {
		return nil, false, nil
	}

	targetLit := target.Literals()[litIdx]
	var sideTerm, otherTerm *term.Term
	if side == index.Lhs {
		sideTerm, otherTerm = targetLit.Lhs(), targetLit.Rhs()
	} else {
		sideTerm, otherTerm = targetLit.Rhs(), targetLit.Lhs()
	}

	rewritten, err := term.ReplaceAt(ctx.Terms, ctx.Types, sideTerm, pos, rσ)
	if err != nil {
		return nil, false, err
	}

	var newLit *literal.Literal
	if side == index.Lhs {
		newLit = orientedLiteral(rewritten, otherTerm, targetLit.Sign())
	} else {
		newLit = orientedLiteral(otherTerm, rewritten, targetLit.Sign())
	}

	out := make([]*literal.Literal, len(target.Literals()))
	copy(out, target.Literals())
	out[litIdx] = newLit

	result, err := ctx.Clauses.Make(ctx.Terms, ctx.Types, out, ctx.Ord, clause.Proof{
		Rule:    "demodulation",
		Parents: []clause.Id{target.Id(), rule.Id()},
	}, target.Penalty())
	if err != nil {
		return nil, false, err
	}
	return result, true, nil
}

package infer

import (
	"github.com/zetaprover/zeta/core/clause"
	"github.com/zetaprover/zeta/core/literal"
	"github.com/zetaprover/zeta/core/subst"
	"github.com/zetaprover/zeta/core/term"
	"github.com/zetaprover/zeta/core/unify"
)

// NegativeSimplifyReflect applies SPEC_FULL.md §4.K.5: rule is a unit,
// positive equation l ≈ r in the simplification set. If target's
// literal at litIdx is a negative equation that is an instance of
// l ≈ r under some matcher (either orientation), that literal is
// always false — l ≈ r holds for every instance, so its negation
// cannot — and is deleted as a redundant disjunct. Unlike
// Superposition/EqualityFactoring this never introduces a new
// variable scope: the matcher is found internally, since both sides of
// the rule must be matched by one consistent substitution rather than
// by a position search.
func NegativeSimplifyReflect(ctx *Context, rule *clause.Clause, target *clause.Clause, litIdx int) (*clause.Clause, bool, error) {
	if len(rule.Literals()) != 1 || !rule.Literals()[0].Sign() {
		return nil, false, nil
	}
	targetLit := target.Literals()[litIdx]
	if targetLit.Sign() {
		return nil, false, nil
	}
	return reflectSimplify(ctx, rule.Literals()[0], target, litIdx, "negative_simplify_reflect")
}

// PositiveSimplifyReflect is NegativeSimplifyReflect's dual: rule is a
// unit, negative disequation l ≉ r, and target's literal at litIdx is
// a positive equation that is an instance of it — always false for the
// same reason, and deleted.
func PositiveSimplifyReflect(ctx *Context, rule *clause.Clause, target *clause.Clause, litIdx int) (*clause.Clause, bool, error) {
	if len(rule.Literals()) != 1 || rule.Literals()[0].Sign() {
		return nil, false, nil
	}
	targetLit := target.Literals()[litIdx]
	if !targetLit.Sign() {
		return nil, false, nil
	}
	return reflectSimplify(ctx, rule.Literals()[0], target, litIdx, "positive_simplify_reflect")
}

func reflectSimplify(ctx *Context, ruleLit *literal.Literal, target *clause.Clause, litIdx int, ruleName string) (*clause.Clause, bool, error) {
	targetLit := target.Literals()[litIdx]
	if !equationInstance(ctx, ruleLit, targetLit) {
		return nil, false, nil
	}

	lits := target.Literals()
	out := make([]*literal.Literal, 0, len(lits)-1)
	for i, l := range lits {
		if i == litIdx {
			continue
		}
		out = append(out, l)
	}

	result, err := ctx.Clauses.Make(ctx.Terms, ctx.Types, out, ctx.Ord, clause.Proof{
		Rule:    ruleName,
		Parents: []clause.Id{target.Id()},
	}, target.Penalty())
	if err != nil {
		return nil, false, err
	}
	return result, true, nil
}

// equationInstance reports whether instance's two sides are the image
// of pattern's two sides under one matching substitution, in either
// orientation — i.e. instance is literally pattern(σ) as an unordered
// pair.
func equationInstance(ctx *Context, pattern, instance *literal.Literal) bool {
	return orientationMatches(ctx, pattern.Lhs(), pattern.Rhs(), instance.Lhs(), instance.Rhs()) ||
		orientationMatches(ctx, pattern.Lhs(), pattern.Rhs(), instance.Rhs(), instance.Lhs())
}

func orientationMatches(ctx *Context, patternLhs, patternRhs, instanceLhs, instanceRhs *term.Term) bool {
	m, ok := unify.Match(ctx.Terms, subst.Empty(),
		unify.Scoped{Term: patternLhs, Scope: 0},
		unify.Scoped{Term: instanceLhs, Scope: 1})
	if !ok {
		return false
	}
	renaming := sharedRenaming()
	patternRhsσ, err := term.ApplySubst(ctx.Terms, ctx.Types, renaming, m, patternRhs, 0)
	if err != nil {
		return false
	}
	return patternRhsσ == instanceRhs
}

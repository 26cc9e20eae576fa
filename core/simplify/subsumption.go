package simplify

import (
	"github.com/zetaprover/zeta/core/clause"
	"github.com/zetaprover/zeta/core/literal"
	"github.com/zetaprover/zeta/core/subst"
	"github.com/zetaprover/zeta/core/unify"
)

// Subsumes reports whether a subsumes b (SPEC_FULL.md §4.K.6): some
// substitution σ, binding only a's variables, maps every literal of a
// into a literal actually present in b. The search backtracks over
// which literal of b each literal of a maps to (and which of the two
// equation orientations), threading one substitution across all of
// a's literals via repeated unify.Match calls — a's variables must
// bind consistently everywhere they recur.
//
// This is a direct backtracking search, not an indexed one: the
// simplification and active sets subsumption runs against are orders
// of magnitude smaller than the clause space core/index covers, and a
// feature-vector or trie-based subsumption index is out of scope here.
func Subsumes(ctx *Context, a, b *clause.Clause) bool {
	return subsumeFrom(ctx, a.Literals(), 0, b.Literals(), subst.Empty())
}

func subsumeFrom(ctx *Context, aLits []*literal.Literal, i int, bLits []*literal.Literal, s *subst.Subst) bool {
	if i == len(aLits) {
		return true
	}
	lit := aLits[i]
	for _, cand := range bLits {
		if lit.Sign() != cand.Sign() {
			continue
		}
		if next, ok := matchLiteral(ctx, s, lit, cand, false); ok && subsumeFrom(ctx, aLits, i+1, bLits, next) {
			return true
		}
		if next, ok := matchLiteral(ctx, s, lit, cand, true); ok && subsumeFrom(ctx, aLits, i+1, bLits, next) {
			return true
		}
	}
	return false
}

// matchLiteral extends base so that lit's sides match cand's sides —
// straight if swapped is false, crosswise if true — returning the
// extended substitution on success. unify.Match threads base through
// both calls, so a variable bound while matching lit's first side must
// bind consistently when matching its second.
func matchLiteral(ctx *Context, base *subst.Subst, lit, cand *literal.Literal, swapped bool) (*subst.Subst, bool) {
	candLhs, candRhs := cand.Lhs(), cand.Rhs()
	if swapped {
		candLhs, candRhs = candRhs, candLhs
	}
	s1, ok := unify.Match(ctx.Terms, base,
		unify.Scoped{Term: lit.Lhs(), Scope: 0},
		unify.Scoped{Term: candLhs, Scope: 1})
	if !ok {
		return nil, false
	}
	return unify.Match(ctx.Terms, s1,
		unify.Scoped{Term: lit.Rhs(), Scope: 0},
		unify.Scoped{Term: candRhs, Scope: 1})
}

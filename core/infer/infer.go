// Package infer implements the generating inference rules of
// SPEC_FULL.md §4.K: superposition, equality resolution, and equality
// factoring. Every rule checks ordering and eligibility after applying
// its unifier and silently declines (returns ok == false, not an
// error) when a check fails — "this rule does not apply" is routine,
// mirroring core/unify's Fail-is-not-an-error convention.
package infer

import (
	"github.com/zetaprover/zeta/core/clause"
	"github.com/zetaprover/zeta/core/literal"
	"github.com/zetaprover/zeta/core/order"
	"github.com/zetaprover/zeta/core/subst"
	"github.com/zetaprover/zeta/core/term"
	"github.com/zetaprover/zeta/core/types"
)

// Context bundles the tables every rule needs to build substituted
// literals and intern the resulting clause. One Context is shared by
// every rule invocation within a saturation run.
type Context struct {
	Terms   *term.Table
	Types   *types.Table
	Clauses *clause.Table
	Ord     order.Ordering
}

// substLits applies sub (with renaming) to every literal of c, at
// scope, returning a fresh slice in the same order — so an index into
// the input clause's literal array is still valid against the result.
func substLits(ctx *Context, renaming *subst.Renaming, sub *subst.Subst, lits []*literal.Literal, scope int) ([]*literal.Literal, error) {
	out := make([]*literal.Literal, len(lits))
	for i, l := range lits {
		nl, err := literal.ApplySubst(ctx.Terms, ctx.Types, renaming, sub, l, scope)
		if err != nil {
			return nil, err
		}
		out[i] = nl
	}
	return out, nil
}

// sharedRenaming returns a fresh renaming scratch for one inference
// step. The starting bound is irrelevant to correctness here — Fresh
// keys on (varID, scope), and the two premises of an inference always
// use distinct scopes — but NewRenaming's contract asks for one, so 0
// is passed as a harmless baseline.
func sharedRenaming() *subst.Renaming {
	return subst.NewRenaming(0)
}

// dominated reports whether some literal other than lits[i] strictly
// exceeds it under ord — the complement of "maximal".
func dominated(ord order.Ordering, lits []*literal.Literal, i int) bool {
	for j := range lits {
		if j == i {
			continue
		}
		if literal.ComparePartial(ord, lits[j], lits[i]) == order.Greater {
			return true
		}
	}
	return false
}

// tiedOrDominated additionally treats an equal-ranked literal as
// disqualifying — the "strictly maximal" condition superposition
// requires of its rewriting equation (equality factoring only checks
// plain maximality), so a clause is never used to rewrite with a
// literal that merely ties another.
func tiedOrDominated(ord order.Ordering, lits []*literal.Literal, i int) bool {
	for j := range lits {
		if j == i {
			continue
		}
		switch literal.ComparePartial(ord, lits[j], lits[i]) {
		case order.Greater, order.Equal:
			return true
		}
	}
	return false
}

func isMaximal(ord order.Ordering, lits []*literal.Literal, i int) bool {
	return !dominated(ord, lits, i)
}

func isStrictlyMaximal(ord order.Ordering, lits []*literal.Literal, i int) bool {
	return !tiedOrDominated(ord, lits, i)
}

func hasAnySelected(c *clause.Clause) bool {
	for i := range c.Literals() {
		if c.IsSelected(i) {
			return true
		}
	}
	return false
}

// eligible reports whether literal i of c (already substituted into
// lits, index-for-index aligned with c.Literals()) is eligible to
// participate as the rewritten/resolved-upon literal of an inference:
// selected if the clause has any selection, maximal among lits
// otherwise.
func eligible(ord order.Ordering, c *clause.Clause, lits []*literal.Literal, i int) bool {
	if hasAnySelected(c) {
		return c.IsSelected(i)
	}
	return isMaximal(ord, lits, i)
}

// orient returns (greater, lesser, true) if one of a, b strictly
// exceeds the other under ord, or (nil, nil, false) if they tie or are
// incomparable — used to pick which side of a positive equation plays
// "l" (the side that must dominate) without the caller having to
// commit to an orientation up front.
func orient(ord order.Ordering, a, b *term.Term) (*term.Term, *term.Term, bool) {
	switch ord.Compare(a, b) {
	case order.Greater:
		return a, b, true
	case order.Less:
		return b, a, true
	default:
		return nil, nil, false
	}
}

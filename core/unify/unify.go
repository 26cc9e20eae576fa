// Package unify implements the shared lock-step term walk behind
// unification, one-sided matching, and variant checking (SPEC_FULL.md
// §4.E). All three differ only in which side of the walk may bind a
// variable; Unify lets either side bind with an occurs check, Match
// lets only the pattern side bind, and Variant (in variant.go) requires
// a bijective renaming instead of arbitrary binding.
package unify

import (
	"github.com/zetaprover/zeta/core/subst"
	"github.com/zetaprover/zeta/core/term"
)

// Scoped pairs a term with the scope tag that distinguishes its
// variables from the other side's during one unification attempt.
type Scoped struct {
	Term  *term.Term
	Scope int
}

// Unify attempts to unify a and b under their respective scopes,
// starting from base (typically subst.Empty()). A variable on either
// side may bind to anything of compatible type; occurs-check across
// scopes is mandatory. Returns the most general unifier and true on
// success, or (nil, false) on failure — Fail is not an error value,
// per SPEC_FULL.md §4.E, since "this rule does not apply" is routine.
func Unify(tb *term.Table, base *subst.Subst, a Scoped, b Scoped) (*subst.Subst, bool) {
	return step(tb, base, a, b, bindPolicy{left: true, right: true})
}

type bindPolicy struct {
	left, right bool
}

func step(tb *term.Table, s *subst.Subst, a, b Scoped, pol bindPolicy) (*subst.Subst, bool) {
	// Dereference both sides first so an already-bound variable acts
	// like the term it resolves to.
	if a.Term.Shape() == term.FreeVar {
		if v, vs, ok := s.Deref(a.Term.VarID(), a.Scope); ok {
			return step(tb, s, Scoped{v, vs}, b, pol)
		}
	}
	if b.Term.Shape() == term.FreeVar {
		if v, vs, ok := s.Deref(b.Term.VarID(), b.Scope); ok {
			return step(tb, s, a, Scoped{v, vs}, pol)
		}
	}

	if a.Term == b.Term && (a.Scope == b.Scope || a.Term.Ground()) {
		// Interned pointer equality settles the pair when both sides
		// share a scope or the term has no free variable; the same
		// non-ground term in two scopes still binds its variables below.
		return s, true
	}
	if a.Term.Shape() == term.FreeVar && pol.left {
		return bindVar(s, a, b)
	}
	if b.Term.Shape() == term.FreeVar && pol.right {
		return bindVar(s, b, a)
	}
	if a.Term.Shape() != b.Term.Shape() {
		return nil, false
	}
	switch a.Term.Shape() {
	case term.BoundVar, term.Const, term.FreeVar:
		// Already excluded the equal case above; different
		// bound-var/const/unbindable-var identities never unify.
		return nil, false
	case term.App:
		if len(a.Term.Args()) != len(b.Term.Args()) {
			return nil, false
		}
		next, ok := step(tb, s, Scoped{a.Term.Head(), a.Scope}, Scoped{b.Term.Head(), b.Scope}, pol)
		if !ok {
			return nil, false
		}
		s = next
		for i := range a.Term.Args() {
			next, ok = step(tb, s, Scoped{a.Term.Args()[i], a.Scope}, Scoped{b.Term.Args()[i], b.Scope}, pol)
			if !ok {
				return nil, false
			}
			s = next
		}
		return s, true
	case term.Lambda:
		if a.Term.ArgType() != b.Term.ArgType() {
			return nil, false
		}
		return step(tb, s, Scoped{a.Term.Body(), a.Scope}, Scoped{b.Term.Body(), b.Scope}, pol)
	}
	return nil, false
}

func bindVar(s *subst.Subst, v Scoped, val Scoped) (*subst.Subst, bool) {
	if v.Term.Type() != val.Term.Type() {
		return nil, false
	}
	if occurs(s, v.Term.VarID(), v.Scope, val) {
		return nil, false
	}
	newS, err := s.Bind(v.Term.VarID(), v.Scope, val.Term, val.Scope)
	if err != nil {
		return nil, false
	}
	return newS, true
}

// occurs reports whether (varID, scope) occurs in val after fully
// dereferencing val through s — the mandatory occurs check for Unify.
func occurs(s *subst.Subst, varID, scope int, val Scoped) bool {
	t := val.Term
	if t.Shape() == term.FreeVar {
		if t.VarID() == varID && val.Scope == scope {
			return true
		}
		if v, vs, ok := s.Deref(t.VarID(), val.Scope); ok {
			return occurs(s, varID, scope, Scoped{v, vs})
		}
		return false
	}
	switch t.Shape() {
	case term.App:
		if occurs(s, varID, scope, Scoped{t.Head(), val.Scope}) {
			return true
		}
		for _, arg := range t.Args() {
			if occurs(s, varID, scope, Scoped{arg, val.Scope}) {
				return true
			}
		}
		return false
	case term.Lambda:
		return occurs(s, varID, scope, Scoped{t.Body(), val.Scope})
	default:
		return false
	}
}

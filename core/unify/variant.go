package unify

import (
	"github.com/zetaprover/zeta/core/subst"
	"github.com/zetaprover/zeta/core/term"
)

// Variant reports whether a and b are identical up to a bijective
// renaming of free variables — neither side "binds" in the unify/match
// sense, both sides must agree on a one-to-one variable correspondence.
// Used by clause-set deduplication and indexing, where two clauses that
// differ only in variable names are the same clause.
func Variant(a Scoped, b Scoped) bool {
	vs := &variantState{
		ltr: make(map[subst.ScopedVar]subst.ScopedVar),
		rtl: make(map[subst.ScopedVar]subst.ScopedVar),
	}
	return vs.walk(a, b)
}

type variantState struct {
	ltr, rtl map[subst.ScopedVar]subst.ScopedVar
}

func (vs *variantState) walk(a, b Scoped) bool {
	if a.Term.Shape() != b.Term.Shape() {
		return false
	}
	switch a.Term.Shape() {
	case term.FreeVar:
		ak := subst.ScopedVar{VarID: a.Term.VarID(), Scope: a.Scope}
		bk := subst.ScopedVar{VarID: b.Term.VarID(), Scope: b.Scope}
		if a.Term.Type() != b.Term.Type() {
			return false
		}
		if existing, ok := vs.ltr[ak]; ok {
			return existing == bk
		}
		if _, taken := vs.rtl[bk]; taken {
			return false
		}
		vs.ltr[ak] = bk
		vs.rtl[bk] = ak
		return true
	case term.BoundVar, term.Const:
		return a.Term == b.Term
	case term.App:
		if len(a.Term.Args()) != len(b.Term.Args()) {
			return false
		}
		if !vs.walk(Scoped{a.Term.Head(), a.Scope}, Scoped{b.Term.Head(), b.Scope}) {
			return false
		}
		for i := range a.Term.Args() {
			if !vs.walk(Scoped{a.Term.Args()[i], a.Scope}, Scoped{b.Term.Args()[i], b.Scope}) {
				return false
			}
		}
		return true
	case term.Lambda:
		if a.Term.ArgType() != b.Term.ArgType() {
			return false
		}
		return vs.walk(Scoped{a.Term.Body(), a.Scope}, Scoped{b.Term.Body(), b.Scope})
	}
	return false
}

// Package subst implements scoped substitutions and renamings
// (SPEC_FULL.md §4.D): a Subst maps a (variable, scope) pair to a
// (term, scope) pair, built functionally by chained Bind calls, and a
// Renaming materialises scoped variables into fresh unscoped ones.
//
// Subst and Renaming satisfy term.Binding and term.Renamer
// structurally, so core/term never imports core/subst (this package
// imports core/term, not the reverse).
package subst

import (
	"fmt"

	"github.com/zetaprover/zeta/core/term"
	protoerrors "github.com/zetaprover/zeta/internal/errors"
)

// ScopedVar is a (variable id, scope) key.
type ScopedVar struct {
	VarID int
	Scope int
}

type binding struct {
	key    ScopedVar
	value  *term.Term
	vScope int
	parent *binding
}

// Subst is an immutable chain of (ScopedVar -> (Term, scope)) bindings.
// The zero value is the empty substitution.
type Subst struct {
	tail *binding
}

// Empty returns the substitution that binds nothing.
func Empty() *Subst { return &Subst{} }

// Deref follows the binding chain for (varID, scope), and if the bound
// value is itself a free variable, follows its binding too, stopping at
// either a non-variable term or an unbound (var, scope) position. This
// satisfies term.Binding, so a *Subst can be passed directly to
// term.ApplySubst.
func (s *Subst) Deref(varID, scope int) (*term.Term, int, bool) {
	key := ScopedVar{VarID: varID, Scope: scope}
	for b := s.tail; b != nil; b = b.parent {
		if b.key != key {
			continue
		}
		if b.value.Shape() == term.FreeVar {
			if nt, ns, ok := s.Deref(b.value.VarID(), b.vScope); ok {
				return nt, ns, true
			}
			return b.value, b.vScope, true
		}
		return b.value, b.vScope, true
	}
	return nil, 0, false
}

// Bind returns a new substitution extending s with varID@scope bound to
// val@valScope. Rebinding the same (varID, scope) to a structurally
// different canonical value is InconsistentBinding; rebinding to the
// same canonical value is a no-op that returns s unchanged.
func (s *Subst) Bind(varID, scope int, val *term.Term, valScope int) (*Subst, error) {
	if existing, existingScope, ok := s.Deref(varID, scope); ok {
		canonVal, canonScope := canonicalize(s, val, valScope)
		if existing == canonVal && existingScope == canonScope {
			return s, nil
		}
		return nil, protoerrors.ErrInconsistentBinding.New(fmt.Sprintf("X%d@%d", varID, scope))
	}
	return &Subst{tail: &binding{
		key:    ScopedVar{VarID: varID, Scope: scope},
		value:  val,
		vScope: valScope,
		parent: s.tail,
	}}, nil
}

func canonicalize(s *Subst, t *term.Term, scope int) (*term.Term, int) {
	if t.Shape() == term.FreeVar {
		if nt, ns, ok := s.Deref(t.VarID(), scope); ok {
			return canonicalize(s, nt, ns)
		}
	}
	return t, scope
}

// Merge returns the union of s1 and s2. Bindings present in only one
// side carry over unchanged; bindings present in both must agree or
// Merge fails with InconsistentBinding.
func Merge(s1, s2 *Subst) (*Subst, error) {
	result := s1
	var err error
	for b := s2.tail; b != nil; b = b.parent {
		result, err = result.Bind(b.key.VarID, b.key.Scope, b.value, b.vScope)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

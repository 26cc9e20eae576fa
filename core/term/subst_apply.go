package term

// Binding is the minimal view of a substitution that term.ApplySubst
// needs: dereference a (varID, scope) pair to either a bound term (in
// some scope) or report it unbound. core/subst.Subst satisfies this
// interface structurally; term does not import core/subst, avoiding an
// import cycle between the two packages (core/subst's bindings are
// themselves *term.Term values).
type Binding interface {
	Deref(varID, scope int) (t *Term, tScope int, bound bool)
}

// Renamer materialises a scoped free variable into a fresh, unscoped
// variable id. core/subst.Renaming satisfies this interface.
type Renamer interface {
	Fresh(varID, scope int) int
}

// ApplySubst produces a fresh term equal to t with every free variable
// either substituted (if bound in b) or renamed through r (if unbound),
// all at the given scope. Ground subterms are returned unchanged
// without allocating, satisfying the "no duplicate allocation for
// ground subterms" contract. A free variable that b leaves unbound is
// still renamed through r, so a non-ground t comes back as a new term
// unless r maps each of its variables to its own id.
func ApplySubst(tb *Table, tt typeTable, renaming Renamer, b Binding, t *Term, scope int) (*Term, error) {
	if t.ground {
		return t, nil
	}
	switch t.shape {
	case BoundVar:
		return t, nil
	case FreeVar:
		bound, boundScope, ok := b.Deref(t.varID, scope)
		if ok {
			// The bound value may itself carry free variables scoped
			// to boundScope; re-apply recursively in that scope so
			// chains of bindings resolve fully.
			return ApplySubst(tb, tt, renaming, b, bound, boundScope)
		}
		fresh := renaming.Fresh(t.varID, scope)
		return tb.Var(fresh, t.ty), nil
	case Const:
		return t, nil
	case App:
		newHead, err := ApplySubst(tb, tt, renaming, b, t.head, scope)
		if err != nil {
			return nil, err
		}
		newArgs := make([]*Term, len(t.args))
		changed := newHead != t.head
		for i, a := range t.args {
			na, err := ApplySubst(tb, tt, renaming, b, a, scope)
			if err != nil {
				return nil, err
			}
			newArgs[i] = na
			if na != a {
				changed = true
			}
		}
		if !changed {
			return t, nil
		}
		return tb.App(newHead, newArgs)
	case Lambda:
		newBody, err := ApplySubst(tb, tt, renaming, b, t.body, scope)
		if err != nil {
			return nil, err
		}
		if newBody == t.body {
			return t, nil
		}
		return tb.Lambda(t.argType, newBody, tt), nil
	}
	return t, nil
}

// typeTable is the minimal view of core/types.Table that ApplySubst
// needs, again to avoid forcing every caller to thread a concrete
// *types.Table where a narrower capability would do.
type typeTable interface {
	Function(result *Type_, args []*Type_) *Type_
}

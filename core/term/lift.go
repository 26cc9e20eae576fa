package term

import protoerrors "github.com/zetaprover/zeta/internal/errors"

// Lift shifts every de Bruijn index in t that is >= cutoff up by n
// (cutoff starts at 0 and increases by one per binder crossed). It is
// used when a term built outside a binder is moved under one (e.g.
// constructing a quantified literal from a previously-built body).
// n must be >= 0; a negative effective index after shifting is
// ErrDeBruijnUnbound.
func Lift(tb *Table, tt typeTable, t *Term, n int) (*Term, error) {
	return lift(tb, tt, t, n, 0)
}

func lift(tb *Table, tt typeTable, t *Term, n, cutoff int) (*Term, error) {
	switch t.shape {
	case BoundVar:
		if t.index < cutoff {
			return t, nil
		}
		newIndex := t.index + n
		if newIndex < 0 {
			return nil, protoerrors.ErrDeBruijnUnbound.New(t.String())
		}
		return tb.BVar(newIndex, t.ty), nil
	case FreeVar, Const:
		return t, nil
	case App:
		newHead, err := lift(tb, tt, t.head, n, cutoff)
		if err != nil {
			return nil, err
		}
		newArgs := make([]*Term, len(t.args))
		changed := newHead != t.head
		for i, a := range t.args {
			na, err := lift(tb, tt, a, n, cutoff)
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
		newBody, err := lift(tb, tt, t.body, n, cutoff+1)
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

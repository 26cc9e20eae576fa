package unify

import (
	"github.com/zetaprover/zeta/core/subst"
	"github.com/zetaprover/zeta/core/term"
)

// Match attempts to match pattern against instance: only pattern's
// variables may bind, and they must bind consistently across the whole
// term. A free variable occurring on the instance side is treated as
// rigid — it can only match a pattern variable already bound to it, or
// an unbound pattern variable, never the reverse. Used by demodulation
// and subsumption, where the "pattern" is the simplifying/subsuming
// side and the "instance" must not be disturbed.
func Match(tb *term.Table, base *subst.Subst, pattern Scoped, instance Scoped) (*subst.Subst, bool) {
	return step(tb, base, pattern, instance, bindPolicy{left: true, right: false})
}

package saturate

import (
	"github.com/zetaprover/zeta/core/clause"
	"github.com/zetaprover/zeta/core/index"
	"github.com/zetaprover/zeta/core/infer"
	"github.com/zetaprover/zeta/core/literal"
	"github.com/zetaprover/zeta/core/plugin"
	"github.com/zetaprover/zeta/core/term"
)

// generate produces every superposition-calculus consequence of given
// against the active set (SPEC_FULL.md §4.K, §4.M step 6): the unary
// rules applied to given alone, superposition with given supplying the
// rewriting equation (searched against the whole index, which by this
// point already contains given itself — covering given rewriting into
// any active clause, including a renamed copy of itself), and
// superposition with every other active clause supplying the equation
// and given as the rewritten target (every other pairing already had
// its turn when the other clause was itself given, so this direction
// only needs to consider given as the new passive target).
func (l *Loop) generate(given *clause.Clause, span plugin.StepSpan) ([]*clause.Clause, error) {
	ctx := l.cfg.Ctx
	tb := ctx.Terms
	var out []*clause.Clause

	resolutions := 0
	for i, lit := range given.Literals() {
		if lit.Sign() {
			continue
		}
		c, ok, err := infer.EqualityResolution(ctx, given, i)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, c)
			resolutions++
		}
	}
	span.Generated("equality_resolution", resolutions)

	factors := 0
	for i, li := range given.Literals() {
		if !li.Sign() {
			continue
		}
		for j, lj := range given.Literals() {
			if i == j || !lj.Sign() {
				continue
			}
			c, ok, err := infer.EqualityFactoring(ctx, given, i, j)
			if err != nil {
				return nil, err
			}
			if ok {
				out = append(out, c)
				factors++
			}
		}
	}
	span.Generated("equality_factoring", factors)

	superGivenActive := 0
	for i, lit := range given.Literals() {
		if !lit.Sign() {
			continue
		}
		for _, eqSide := range eqSides(lit) {
			for _, cand := range l.active.Index().RetrieveUnifiable(tb, eqSide.term, 0, 1) {
				passive, ok := l.active.Get(cand.Entry.ClauseID)
				if !ok {
					continue
				}
				c, applied, err := infer.Superposition(ctx,
					given, i, 0,
					passive, cand.Entry.LitIndex, cand.Entry.Side, cand.Entry.Position, 1,
					cand.Subst)
				if err != nil {
					return nil, err
				}
				if applied {
					out = append(out, c)
					superGivenActive++
				}
			}
		}
	}
	span.Generated("superposition_given_active", superGivenActive)

	superGivenPassive := 0
	for _, other := range l.active.Clauses() {
		if other.Id() == given.Id() {
			continue
		}
		for i, lit := range other.Literals() {
			if !lit.Sign() {
				continue
			}
			for _, eqSide := range eqSides(lit) {
				for _, cand := range l.active.Index().RetrieveUnifiable(tb, eqSide.term, 0, 1) {
					if cand.Entry.ClauseID != given.Id() {
						continue
					}
					c, applied, err := infer.Superposition(ctx,
						other, i, 0,
						given, cand.Entry.LitIndex, cand.Entry.Side, cand.Entry.Position, 1,
						cand.Subst)
					if err != nil {
						return nil, err
					}
					if applied {
						out = append(out, c)
						superGivenPassive++
					}
				}
			}
		}
	}
	span.Generated("superposition_other_active", superGivenPassive)

	return out, nil
}

type equationSide struct {
	side index.Side
	term *term.Term
}

func eqSides(lit *literal.Literal) []equationSide {
	return []equationSide{
		{index.Lhs, lit.Lhs()},
		{index.Rhs, lit.Rhs()},
	}
}

package infer

import (
	"github.com/zetaprover/zeta/core/clause"
	"github.com/zetaprover/zeta/core/index"
	"github.com/zetaprover/zeta/core/literal"
	"github.com/zetaprover/zeta/core/order"
	"github.com/zetaprover/zeta/core/subst"
	"github.com/zetaprover/zeta/core/term"
)

// Superposition applies the active-premise rule of SPEC_FULL.md
// §4.K.1: given an equation l ≈ r in active (at activeEqIdx) and a
// unifier mgu of l with the subterm at pos on side passiveSide of
// passive's literal at passiveLitIdx, rewrite that subterm to r and
// emit the combined clause. mgu, the position, and the two scopes are
// exactly what index.Index.RetrieveUnifiable returns when querying the
// passive clause's indexed subterm against active's equation side —
// this function performs the calculus's ordering and eligibility
// checks, not the search.
//
// Returns ok == false (no error) whenever a side condition fails: that
// is an ordinary "this inference is not licensed", not a failure.
func Superposition(
	ctx *Context,
	active *clause.Clause, activeEqIdx int, activeScope int,
	passive *clause.Clause, passiveLitIdx int, passiveSide index.Side, pos term.Position, passiveScope int,
	mgu *subst.Subst,
) (*clause.Clause, bool, error) {
	activeEq := active.Literals()[activeEqIdx]
	if !activeEq.Sign() {
		return nil, false, nil
	}

	renaming := sharedRenaming()

	activeLits, err := substLits(ctx, renaming, mgu, active.Literals(), activeScope)
	if err != nil {
		return nil, false, err
	}
	passiveLits, err := substLits(ctx, renaming, mgu, passive.Literals(), passiveScope)
	if err != nil {
		return nil, false, err
	}

	eqσ := activeLits[activeEqIdx]
	l, r, ok := orient(ctx.Ord, eqσ.Lhs(), eqσ.Rhs())
	if !ok {
		return nil, false, nil
	}

	passiveLitσ := passiveLits[passiveLitIdx]
	var s, tOther *term.Term
	if passiveSide == index.Lhs {
		s, tOther = passiveLitσ.Lhs(), passiveLitσ.Rhs()
	} else {
		s, tOther = passiveLitσ.Rhs(), passiveLitσ.Lhs()
	}
	if ctx.Ord.Compare(s, tOther) != order.Greater {
		return nil, false, nil
	}
	// The unified subterm must be the equation's greater side l; a
	// unifier found against r does not license a rewrite.
	if term.At(s, pos) != l {
		return nil, false, nil
	}

	if !isStrictlyMaximal(ctx.Ord, activeLits, activeEqIdx) {
		return nil, false, nil
	}
	if !eligible(ctx.Ord, passive, passiveLits, passiveLitIdx) {
		return nil, false, nil
	}

	rewritten, err := term.ReplaceAt(ctx.Terms, ctx.Types, s, pos, r)
	if err != nil {
		return nil, false, err
	}

	var newLit *literal.Literal
	if passiveSide == index.Lhs {
		newLit = orientedLiteral(rewritten, tOther, passiveLitσ.Sign())
	} else {
		newLit = orientedLiteral(tOther, rewritten, passiveLitσ.Sign())
	}

	out := make([]*literal.Literal, 0, len(activeLits)-1+len(passiveLits))
	for i, lit := range activeLits {
		if i == activeEqIdx {
			continue
		}
		out = append(out, lit)
	}
	for i, lit := range passiveLits {
		if i == passiveLitIdx {
			out = append(out, newLit)
			continue
		}
		out = append(out, lit)
	}

	result, err := ctx.Clauses.Make(ctx.Terms, ctx.Types, out, ctx.Ord, clause.Proof{
		Rule:    "superposition",
		Parents: []clause.Id{active.Id(), passive.Id()},
	}, active.Penalty()+passive.Penalty())
	if err != nil {
		return nil, false, err
	}
	return result, true, nil
}

func orientedLiteral(lhs, rhs *term.Term, sign bool) *literal.Literal {
	if sign {
		return literal.MkEq(lhs, rhs)
	}
	return literal.MkNeq(lhs, rhs)
}

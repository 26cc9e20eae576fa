package simplify

import (
	"github.com/zetaprover/zeta/core/clause"
	"github.com/zetaprover/zeta/core/index"
	"github.com/zetaprover/zeta/core/infer"
	"github.com/zetaprover/zeta/core/subst"
	"github.com/zetaprover/zeta/core/term"
	"github.com/zetaprover/zeta/core/unify"
)

// ForwardSimplify reduces c against simplSet — SPEC_FULL.md §4.L's
// given-clause preprocessing step — until no rule applies. A tautology
// or a clause subsumed by simplSet is discarded outright (ok=false,
// nil). Otherwise demodulation and simplify-reflect are retried in a
// fixpoint loop, since rewriting a literal can expose a new site for a
// rule that did not previously apply.
func ForwardSimplify(ctx *Context, simplSet []*clause.Clause, c *clause.Clause) (*clause.Clause, bool, error) {
	current := c
	for {
		if IsTautology(current) {
			return nil, false, nil
		}
		subsumed := false
		for _, other := range simplSet {
			if other.Id() == current.Id() {
				continue
			}
			if Subsumes(ctx, other, current) {
				subsumed = true
				break
			}
		}
		if subsumed {
			return nil, false, nil
		}

		rewritten, ok, err := tryDemodulateStep(ctx, simplSet, current)
		if err != nil {
			return nil, false, err
		}
		if ok {
			current = rewritten
			continue
		}

		reflected, ok, err := tryReflectStep(ctx, simplSet, current)
		if err != nil {
			return nil, false, err
		}
		if ok {
			current = reflected
			continue
		}

		return current, true, nil
	}
}

// tryDemodulateStep looks for a single rewrite of target by some unit
// positive equation in simplSet, returning the first one it finds. It
// walks every non-variable position of every literal side and attempts
// a structural match of the rule's left-hand side there; a successful
// match is handed to infer.Demodulation, which itself checks the
// ordering side condition lσ ≻ rσ.
func tryDemodulateStep(ctx *Context, simplSet []*clause.Clause, target *clause.Clause) (*clause.Clause, bool, error) {
	for _, rule := range simplSet {
		if rule.Id() == target.Id() || !isUnitPositiveEquation(rule) {
			continue
		}
		ruleLit := rule.Literals()[0]
		for litIdx, lit := range target.Literals() {
			sides := []struct {
				side index.Side
				term *term.Term
			}{{index.Lhs, lit.Lhs()}, {index.Rhs, lit.Rhs()}}
			for _, sd := range sides {
				match, pos, hit := findMatchSite(ctx, ruleLit.Lhs(), sd.term)
				if !hit {
					continue
				}
				result, applied, err := infer.Demodulation(ctx, rule, target, litIdx, sd.side, pos, match, 0)
				if err != nil {
					return nil, false, err
				}
				if applied {
					return result, true, nil
				}
			}
		}
	}
	return nil, false, nil
}

// findMatchSite walks every non-variable position of host looking for
// one where pattern structurally matches, returning the first hit.
func findMatchSite(ctx *Context, pattern, host *term.Term) (*subst.Subst, term.Position, bool) {
	var match *subst.Subst
	var pos term.Position
	var hit bool
	term.AllPositions(host, func(o term.Occurrence) bool {
		if isVariableTerm(o.Term) {
			return true
		}
		m, ok := unify.Match(ctx.Terms, subst.Empty(),
			unify.Scoped{Term: pattern, Scope: 0},
			unify.Scoped{Term: o.Term, Scope: 1})
		if !ok {
			return true
		}
		match, pos, hit = m, o.Pos, true
		return false
	})
	return match, pos, hit
}

// tryReflectStep looks for a single literal of target that a unit
// equation in simplSet can delete via NegativeSimplifyReflect or
// PositiveSimplifyReflect.
func tryReflectStep(ctx *Context, simplSet []*clause.Clause, target *clause.Clause) (*clause.Clause, bool, error) {
	for _, rule := range simplSet {
		if rule.Id() == target.Id() || !isUnitEquation(rule) {
			continue
		}
		ruleLit := rule.Literals()[0]
		for litIdx := range target.Literals() {
			var result *clause.Clause
			var applied bool
			var err error
			if ruleLit.Sign() {
				result, applied, err = infer.NegativeSimplifyReflect(ctx, rule, target, litIdx)
			} else {
				result, applied, err = infer.PositiveSimplifyReflect(ctx, rule, target, litIdx)
			}
			if err != nil {
				return nil, false, err
			}
			if applied {
				return result, true, nil
			}
		}
	}
	return nil, false, nil
}

func isVariableTerm(t *term.Term) bool {
	return t.Shape() == term.FreeVar || t.Shape() == term.BoundVar
}

func isUnitPositiveEquation(c *clause.Clause) bool {
	return len(c.Literals()) == 1 && c.Literals()[0].Sign()
}

func isUnitEquation(c *clause.Clause) bool {
	return len(c.Literals()) == 1
}

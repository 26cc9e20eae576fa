// Package selection implements the selection functions of
// SPEC_FULL.md §4.I: a selection function takes a clause and returns
// the subset of negative-literal indices that must be resolved upon
// before any positive literal in the clause is used for superposition.
package selection

import (
	"github.com/zetaprover/zeta/core/clause"
	"github.com/zetaprover/zeta/core/literal"
	"github.com/zetaprover/zeta/core/order"
	"github.com/zetaprover/zeta/core/term"
)

// Func is the shape Clause.Select expects: a clause in, a set of
// literal indices to select out.
type Func func(*clause.Clause) []int

// None selects nothing, forcing ordinary maximal-literal superposition
// over every literal. The weakest and cheapest selection function.
func None(*clause.Clause) []int { return nil }

// AllNegative selects every negative literal in the clause.
func AllNegative(c *clause.Clause) []int {
	var out []int
	for i, l := range c.Literals() {
		if !l.Sign() {
			out = append(out, i)
		}
	}
	return out
}

// FirstNegative selects only the first negative literal, in the
// clause's canonical (post-interning) order.
func FirstNegative(c *clause.Clause) []int {
	for i, l := range c.Literals() {
		if !l.Sign() {
			return []int{i}
		}
	}
	return nil
}

// Complex builds the selection function that picks the maximal
// negative literal containing the deepest variable occurrence, ties
// broken by literal size (SPEC_FULL.md §4.I). ord is not consulted:
// maximality is read from the clause's cached maximal-literal bitmap,
// computed under the ordering the clause was created (or last
// invalidated) with.
func Complex(ord order.Ordering) Func {
	return func(c *clause.Clause) []int {
		best := -1
		bestDepth := -1
		bestSize := -1
		for i, l := range c.Literals() {
			if l.Sign() || !c.IsMaximal(i) {
				continue
			}
			depth := deepestVarDepth(l)
			size := termSize(l.Lhs()) + termSize(l.Rhs())
			if depth > bestDepth || (depth == bestDepth && size > bestSize) {
				best, bestDepth, bestSize = i, depth, size
			}
		}
		if best < 0 {
			return nil
		}
		return []int{best}
	}
}

func deepestVarDepth(l *literal.Literal) int {
	d := varDepth(l.Lhs(), 0)
	if rd := varDepth(l.Rhs(), 0); rd > d {
		d = rd
	}
	return d
}

// varDepth returns the greatest depth (root = 0) at which a free
// variable occurs in t, or -1 if t is ground.
func varDepth(t *term.Term, depth int) int {
	switch t.Shape() {
	case term.FreeVar:
		return depth
	case term.App:
		best := varDepth(t.Head(), depth+1)
		for _, a := range t.Args() {
			if d := varDepth(a, depth+1); d > best {
				best = d
			}
		}
		return best
	case term.Lambda:
		return varDepth(t.Body(), depth+1)
	default:
		return -1
	}
}

func termSize(t *term.Term) int {
	switch t.Shape() {
	case term.App:
		n := termSize(t.Head())
		for _, a := range t.Args() {
			n += termSize(a)
		}
		return n
	case term.Lambda:
		return 1 + termSize(t.Body())
	default:
		return 1
	}
}

// Package literal implements oriented equations with a sign and a
// cached ordering tag (SPEC_FULL.md §4.G). A propositional atom P with
// sign σ is represented as the equation P ≈ ⊤ with sign σ, so the
// clause and inference layers only ever need to reason about
// equations.
package literal

import (
	"github.com/mitchellh/hashstructure"

	"github.com/zetaprover/zeta/core/order"
	"github.com/zetaprover/zeta/core/symbol"
	"github.com/zetaprover/zeta/core/term"
	"github.com/zetaprover/zeta/core/types"
)

// Literal is s ≈ t (positive) or s ≉ t (negative), plus a cached
// orientation tag computed lazily from an Ordering. Values are not
// hash-consed — identity is structural, via Equal — since the clause
// layer (which is hash-consed) owns the canonical literal multiset.
type Literal struct {
	lhs, rhs *term.Term
	positive bool

	tagValid bool
	tag      order.Cmp
}

// TrueConst materialises the $true atom used to encode propositional
// literals as equations; tb/tt/symTab must be the same tables used to
// build every other term in the saturation context.
func TrueConst(tb *term.Table, tt *types.Table, symTab *symbol.Table, ty *types.Type) *term.Term {
	trueSym, _ := symTab.Lookup("$true")
	return tb.Const(trueSym, ty)
}

// MkEq returns the positive equation s ≈ t.
func MkEq(s, t *term.Term) *Literal {
	return &Literal{lhs: s, rhs: t, positive: true}
}

// MkNeq returns the negative equation s ≉ t.
func MkNeq(s, t *term.Term) *Literal {
	return &Literal{lhs: s, rhs: t, positive: false}
}

// MkProp returns the propositional literal atom with the given sign,
// encoded as atom ≈ ⊤ (or ≉ ⊤).
func MkProp(atom *term.Term, trueConst *term.Term, sign bool) *Literal {
	return &Literal{lhs: atom, rhs: trueConst, positive: sign}
}

// Lhs and Rhs return the literal's two sides.
func (l *Literal) Lhs() *term.Term { return l.lhs }
func (l *Literal) Rhs() *term.Term { return l.rhs }

// Sign reports the literal's polarity: true for s ≈ t, false for
// s ≉ t.
func (l *Literal) Sign() bool { return l.positive }

// IsTrivial reports whether the literal is reflexive and positive
// (s ≈ s), hence always true — dropped at clause-creation time.
func (l *Literal) IsTrivial() bool {
	return l.positive && l.lhs == l.rhs
}

// IsAbsurd reports whether the literal is reflexive and negative
// (s ≉ s), hence always false.
func (l *Literal) IsAbsurd() bool {
	return !l.positive && l.lhs == l.rhs
}

// Tag returns the literal's cached side-orientation (Compare(lhs, rhs)
// under ord), computing and caching it on first use. A later
// InvalidateTag call (e.g. after the owning Precedence gains a symbol)
// forces the next Tag call to recompute.
func (l *Literal) Tag(ord order.Ordering) order.Cmp {
	if !l.tagValid {
		l.tag = ord.Compare(l.lhs, l.rhs)
		l.tagValid = true
	}
	return l.tag
}

// InvalidateTag clears the cached orientation, per SPEC_FULL.md §5's
// precedence-mutation invalidation requirement.
func (l *Literal) InvalidateTag() {
	l.tagValid = false
}

// ApplySubst returns the literal obtained by applying the substitution
// to both sides. The result's tag is uncached: a substitution can
// change which side of an equation dominates, so the caller must call
// Tag again under the ordering before relying on orientation.
func ApplySubst(tb *term.Table, tt *types.Table, renaming term.Renamer, b term.Binding, l *Literal, scope int) (*Literal, error) {
	lhs, err := term.ApplySubst(tb, tt, renaming, b, l.lhs, scope)
	if err != nil {
		return nil, err
	}
	rhs, err := term.ApplySubst(tb, tt, renaming, b, l.rhs, scope)
	if err != nil {
		return nil, err
	}
	return &Literal{lhs: lhs, rhs: rhs, positive: l.positive}, nil
}

// Hash returns a structural hash of l over its (hash-consed) sides and
// sign, used to produce the canonical literal order required before
// clause interning (SPEC_FULL.md §4.H step 3) and as an ingredient of
// the owning clause's own hash-cons key.
func Hash(l *Literal) uint64 {
	h, _ := hashstructure.Hash(struct {
		Lhs  uint64
		Rhs  uint64
		Sign bool
	}{Lhs: l.lhs.StructuralHash(), Rhs: l.rhs.StructuralHash(), Sign: l.positive}, nil)
	return h
}

// Equal reports structural equality: same sides (pointer-equal, since
// terms are hash-consed) in either order, and same sign.
func (l *Literal) Equal(other *Literal) bool {
	if l.positive != other.positive {
		return false
	}
	if l.lhs == other.lhs && l.rhs == other.rhs {
		return true
	}
	return l.lhs == other.rhs && l.rhs == other.lhs
}

// ComparePartial returns the literal ordering induced by ord: a
// positive literal s ≈ t is treated as the multiset {s, t}; a negative
// literal s ≉ t is treated as {s, s, t, t}, so that a negative literal
// is never smaller than the positive literal over the same atoms —
// the standard Bachmair-Ganzinger literal ordering used to pick
// maximal literals within a clause.
func ComparePartial(ord order.Ordering, a, b *Literal) order.Cmp {
	return multisetCompare(ord, a.multiset(), b.multiset())
}

func (l *Literal) multiset() []*term.Term {
	if l.positive {
		return []*term.Term{l.lhs, l.rhs}
	}
	return []*term.Term{l.lhs, l.lhs, l.rhs, l.rhs}
}

// multisetCompare is the Dershowitz-Manna multiset extension of ord,
// duplicated (rather than imported) from core/order's unexported
// helper of the same shape: cancel pointer-identical elements, then
// require every surviving loser to be strictly dominated by some
// surviving winner.
func multisetCompare(ord order.Ordering, as, bs []*term.Term) order.Cmp {
	aRem := append([]*term.Term(nil), as...)
	bRem := append([]*term.Term(nil), bs...)
	for i := 0; i < len(aRem); {
		matched := -1
		for j, b := range bRem {
			if aRem[i] == b {
				matched = j
				break
			}
		}
		if matched >= 0 {
			aRem = append(aRem[:i], aRem[i+1:]...)
			bRem = append(bRem[:matched], bRem[matched+1:]...)
			continue
		}
		i++
	}
	if len(aRem) == 0 && len(bRem) == 0 {
		return order.Equal
	}
	if len(aRem) == 0 {
		return order.Less
	}
	if len(bRem) == 0 {
		return order.Greater
	}
	if dominatesAll(ord, aRem, bRem) {
		return order.Greater
	}
	if dominatesAll(ord, bRem, aRem) {
		return order.Less
	}
	return order.Incomparable
}

func dominatesAll(ord order.Ordering, winners, losers []*term.Term) bool {
	for _, y := range losers {
		dominated := false
		for _, x := range winners {
			if ord.Compare(x, y) == order.Greater {
				dominated = true
				break
			}
		}
		if !dominated {
			return false
		}
	}
	return true
}

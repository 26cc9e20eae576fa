// Package order implements term orderings (SPEC_FULL.md §4.F):
// a Precedence (total symbol order plus per-symbol status) and two
// reduction orderings built on top of it, KBO and RPO. Both orderings
// are stable under substitution and total on ground terms.
package order

import (
	"sync"

	"github.com/zetaprover/zeta/core/symbol"
	"github.com/zetaprover/zeta/core/term"
)

// Ordering is the capability core/literal, core/clause, and core/infer
// need from a term ordering: KBO and RPO both satisfy it, and callers
// above this package depend on the interface rather than on one
// concrete comparator so the choice of ordering is a construction-time
// decision (SPEC_FULL.md §4.F).
type Ordering interface {
	Compare(s, t *term.Term) Cmp
}

// Status controls how an ordering compares the arguments of two terms
// sharing the same head symbol.
type Status int

const (
	// Lexicographic compares arguments left to right, first difference
	// decides.
	Lexicographic Status = iota
	// Multiset compares arguments as a multiset (used for AC/commutative
	// symbols where argument order carries no meaning).
	Multiset
)

// Cmp is the result of comparing two terms under an ordering.
type Cmp int

const (
	Less Cmp = iota
	Equal
	Greater
	Incomparable
)

func (c Cmp) String() string {
	switch c {
	case Less:
		return "<"
	case Equal:
		return "="
	case Greater:
		return ">"
	default:
		return "?"
	}
}

// Precedence is a total order on symbols plus a status per symbol. It
// is mutated whenever a new symbol enters the signature (e.g. a
// Skolem constant introduced mid-run); every ordering built on it must
// be told to invalidate any cache keyed by precedence-dependent
// comparisons (SPEC_FULL.md §5, Open Question 3).
type Precedence struct {
	mu     sync.RWMutex
	rank   map[symbol.Tag]int
	status map[symbol.Tag]Status
	next   int
	gen    int
}

// NewPrecedence returns an empty precedence; symbols are ranked in the
// order they are first added via Append.
func NewPrecedence() *Precedence {
	return &Precedence{
		rank:   make(map[symbol.Tag]int),
		status: make(map[symbol.Tag]Status),
	}
}

// Append assigns sym the next-highest rank if it has none yet, with
// the given status. Re-appending an already-ranked symbol is a no-op
// for its rank, but updates its status — which still bumps Generation,
// since a status change can flip an argument-list comparison under KBO
// or RPO just as a rank change can.
func (p *Precedence) Append(sym *symbol.Symbol, status Status) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.rank[sym.Tag()]; !ok {
		p.rank[sym.Tag()] = p.next
		p.next++
	}
	p.status[sym.Tag()] = status
	p.gen++
}

// Compare returns how a and b rank: Less if a precedes b, Greater if
// b precedes a, Equal if they are the same symbol. An unranked symbol
// compares Incomparable against anything, including itself, forcing
// callers to Append before use.
func (p *Precedence) Compare(a, b *symbol.Symbol) Cmp {
	p.mu.RLock()
	defer p.mu.RUnlock()
	ra, aok := p.rank[a.Tag()]
	rb, bok := p.rank[b.Tag()]
	if !aok || !bok {
		return Incomparable
	}
	switch {
	case ra < rb:
		return Less
	case ra > rb:
		return Greater
	default:
		return Equal
	}
}

// StatusOf returns sym's status, defaulting to Lexicographic for an
// unranked symbol.
func (p *Precedence) StatusOf(sym *symbol.Symbol) Status {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if st, ok := p.status[sym.Tag()]; ok {
		return st
	}
	return Lexicographic
}

// Generation increases by one on every Append, so a cache built on top
// of a Precedence can detect staleness without a separate invalidation
// call — callers compare a stashed generation to Generation().
func (p *Precedence) Generation() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.gen
}

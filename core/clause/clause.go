// Package clause implements the clause creation pipeline and the
// hash-consed clause record of SPEC_FULL.md §4.H: dedup/trivial-literal
// removal, dense variable renumbering, canonical sort, and the
// maximal/selected-literal bitmap caches.
package clause

import (
	"sort"
	"sync"

	"github.com/mitchellh/hashstructure"
	"github.com/pilosa/pilosa/roaring"

	"github.com/zetaprover/zeta/core/literal"
	"github.com/zetaprover/zeta/core/order"
	"github.com/zetaprover/zeta/core/subst"
	"github.com/zetaprover/zeta/core/term"
	"github.com/zetaprover/zeta/core/types"
	protoerrors "github.com/zetaprover/zeta/internal/errors"
)

// Id is a clause's stable integer handle, used by the proof DAG and by
// checkpoint restore instead of a pointer.
type Id uint64

// BoolLit is one AVATAR trail entry: a split atom id and the sign the
// clause assumes for it. The pure first-order core never populates a
// trail; it exists so a future AVATAR plugin has somewhere to put one
// (SPEC_FULL.md §5, Open Question 2).
type BoolLit struct {
	Atom int
	Sign bool
}

// Proof records how a clause was derived: the rule name and the ids of
// its parent clauses. Input clauses use Rule "input" with no parents.
type Proof struct {
	Rule    string
	Parents []Id
	Detail  string
}

// Clause is a hash-consed, ordered literal array plus its provenance
// and caches. Two Clauses are equal iff they are the same pointer:
// construction always goes through Table.Make, which performs the
// hash-cons lookup. Every field is fixed at creation except the
// selected-literal bitmap, which Select sets exactly once, and the
// maximal-literal bitmap, which InvalidateOrderingCache recomputes.
type Clause struct {
	id      Id
	lits    []*literal.Literal
	numVars int
	weight  int

	maxLiterals *roaring.Bitmap
	selected    *roaring.Bitmap
	selectedSet bool

	proof   Proof
	trail   []BoolLit
	penalty int
	hash    uint64
}

// Id returns the clause's stable integer handle.
func (c *Clause) Id() Id { return c.id }

// Literals returns the clause's literal array in canonical order.
func (c *Clause) Literals() []*literal.Literal { return c.lits }

// NumVars returns the number of distinct free variables, which after
// renumbering occupy the dense range [0, NumVars()).
func (c *Clause) NumVars() int { return c.numVars }

// Weight returns the clause's cached term-size weight, used by the
// passive set's priority function.
func (c *Clause) Weight() int { return c.weight }

// Proof returns the clause's derivation record.
func (c *Clause) Proof() Proof { return c.proof }

// Trail returns the clause's AVATAR assumption set, nil for ordinary
// first-order clauses.
func (c *Clause) Trail() []BoolLit { return c.trail }

// Penalty returns the clause's passive-set priority modifier.
func (c *Clause) Penalty() int { return c.penalty }

// StructuralHash returns the cached hash-cons bucket key.
func (c *Clause) StructuralHash() uint64 { return c.hash }

// IsEmpty reports whether the clause has no literals — the refutation
// witness.
func (c *Clause) IsEmpty() bool { return len(c.lits) == 0 }

// IsMaximal reports whether the literal at index i is maximal under
// the ordering used to create (or last invalidate) this clause.
func (c *Clause) IsMaximal(i int) bool {
	return c.maxLiterals != nil && c.maxLiterals.Contains(uint64(i))
}

// IsSelected reports whether the literal at index i is selected. Always
// false until Select has been called.
func (c *Clause) IsSelected(i int) bool {
	return c.selectedSet && c.selected != nil && c.selected.Contains(uint64(i))
}

// Select runs selFn once over the clause's literals, recording the
// resulting set of selected-literal indices. A second call is Frozen:
// the selected cache is the one field interning leaves open, and it
// is set exactly once (SPEC_FULL.md §4.H).
func (c *Clause) Select(selFn func(*Clause) []int) error {
	if c.selectedSet {
		return protoerrors.ErrFrozen.New(c.id, "literal selection already ran")
	}
	bm := roaring.NewBitmap()
	for _, i := range selFn(c) {
		_, _ = bm.Add(uint64(i))
	}
	c.selected = bm
	c.selectedSet = true
	return nil
}

// InvalidateOrderingCache recomputes the maximal-literal bitmap and
// clears every literal's cached orientation tag under ord — called by
// the owning Prover whenever its Precedence gains a new symbol (e.g.
// Skolemisation introduces one mid-run), per SPEC_FULL.md §5.
func (c *Clause) InvalidateOrderingCache(ord order.Ordering) {
	for _, l := range c.lits {
		l.InvalidateTag()
	}
	c.maxLiterals = maximalLiteralBitmap(c.lits, ord)
}

// Table hash-conses Clauses, assigning each a stable Id in creation
// order. Private to one saturation context, like term.Table.
type Table struct {
	mu     sync.Mutex
	byHash map[uint64][]*Clause
	nextID Id
}

// NewTable returns an empty clause table.
func NewTable() *Table {
	return &Table{byHash: make(map[uint64][]*Clause)}
}

// Make runs the creation pipeline exactly once: drop duplicate and
// trivially-true literals, renumber free variables densely from 0,
// sort literals by literal hash, then intern. ord supplies the term
// ordering used to compute the maximal-literal cache. If an
// α-equivalent clause already exists, Make returns the existing
// pointer and proof/penalty/trail are discarded in favour of whichever
// derivation interned first.
func (t *Table) Make(tb *term.Table, tt *types.Table, lits []*literal.Literal, ord order.Ordering, proof Proof, penalty int) (*Clause, error) {
	kept := dedupeAndDropTrivial(lits)
	renamed, numVars, err := renumberVars(tb, tt, kept)
	if err != nil {
		return nil, err
	}
	sort.Slice(renamed, func(i, j int) bool {
		return literal.Hash(renamed[i]) < literal.Hash(renamed[j])
	})

	h := hashClauseLiterals(renamed)
	cand := &Clause{lits: renamed, numVars: numVars, proof: proof, penalty: penalty, hash: h}

	existing := t.intern(cand)
	if existing != cand {
		return existing, nil
	}
	cand.weight = clauseWeight(renamed)
	cand.maxLiterals = maximalLiteralBitmap(renamed, ord)
	cand.selected = roaring.NewBitmap()
	return cand, nil
}

// ById returns the clause assigned id, if this table produced one —
// used by checkpoint restore and the proof DAG to resolve a stable
// integer handle back to a pointer.
func (t *Table) ById(id Id) (*Clause, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, bucket := range t.byHash {
		for _, c := range bucket {
			if c.id == id {
				return c, true
			}
		}
	}
	return nil, false
}

func (t *Table) intern(cand *Clause) *Clause {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, existing := range t.byHash[cand.hash] {
		if clausesEqual(existing, cand) {
			return existing
		}
	}
	cand.id = t.nextID
	t.nextID++
	t.byHash[cand.hash] = append(t.byHash[cand.hash], cand)
	return cand
}

func clausesEqual(a, b *Clause) bool {
	if len(a.lits) != len(b.lits) {
		return false
	}
	for i := range a.lits {
		if !a.lits[i].Equal(b.lits[i]) {
			return false
		}
	}
	return true
}

// dedupeAndDropTrivial drops duplicate literals and reflexive-positive
// (always-true) ones. If every literal in a non-empty lits is dropped
// this way, the clause is a tautology (s≈s ∨ s≈s ∨ ...), not the empty
// clause — so one trivial literal is kept rather than letting the
// result alias a genuinely empty, refuting clause. A clause that
// started empty (e.g. the last literal resolved away by
// infer.EqualityResolution) is unaffected: lits is already empty on
// entry, so there is nothing to keep.
func dedupeAndDropTrivial(lits []*literal.Literal) []*literal.Literal {
	kept := make([]*literal.Literal, 0, len(lits))
	for _, l := range lits {
		if l.IsTrivial() {
			continue
		}
		dup := false
		for _, k := range kept {
			if k.Equal(l) {
				dup = true
				break
			}
		}
		if !dup {
			kept = append(kept, l)
		}
	}
	if len(kept) == 0 && len(lits) > 0 {
		kept = append(kept, lits[0])
	}
	return kept
}

// renumberVars renames every free variable occurring across lits to a
// dense id starting at 0, in order of first occurrence (lhs before
// rhs, literal by literal), so that two clauses built from
// α-equivalent literal lists always hash-cons to the same clause.
func renumberVars(tb *term.Table, tt *types.Table, lits []*literal.Literal) ([]*literal.Literal, int, error) {
	varTypes := make(map[int]*types.Type)
	var discovery []int
	for _, l := range lits {
		collectVars(l.Lhs(), varTypes, &discovery)
		collectVars(l.Rhs(), varTypes, &discovery)
	}
	if len(discovery) == 0 {
		return lits, 0, nil
	}

	const scope = 0
	s := subst.Empty()
	var err error
	for newID, oldID := range discovery {
		s, err = s.Bind(oldID, scope, tb.Var(newID, varTypes[oldID]), scope)
		if err != nil {
			return nil, 0, err
		}
	}
	renaming := subst.NewRenaming(len(discovery))

	out := make([]*literal.Literal, len(lits))
	for i, l := range lits {
		nl, err := literal.ApplySubst(tb, tt, renaming, s, l, scope)
		if err != nil {
			return nil, 0, err
		}
		out[i] = nl
	}
	return out, len(discovery), nil
}

func collectVars(t *term.Term, types_ map[int]*types.Type, order_ *[]int) {
	switch t.Shape() {
	case term.FreeVar:
		if _, ok := types_[t.VarID()]; !ok {
			types_[t.VarID()] = t.Type()
			*order_ = append(*order_, t.VarID())
		}
	case term.App:
		collectVars(t.Head(), types_, order_)
		for _, a := range t.Args() {
			collectVars(a, types_, order_)
		}
	case term.Lambda:
		collectVars(t.Body(), types_, order_)
	}
}

func hashClauseLiterals(lits []*literal.Literal) uint64 {
	hashes := make([]uint64, len(lits))
	for i, l := range lits {
		hashes[i] = literal.Hash(l)
	}
	h, _ := hashstructure.Hash(hashes, nil)
	return h
}

func clauseWeight(lits []*literal.Literal) int {
	w := 0
	for _, l := range lits {
		w += termSize(l.Lhs()) + termSize(l.Rhs())
	}
	return w
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

// maximalLiteralBitmap marks every literal not strictly dominated by
// another literal in the clause under the Bachmair-Ganzinger literal
// ordering induced by ord.
func maximalLiteralBitmap(lits []*literal.Literal, ord order.Ordering) *roaring.Bitmap {
	bm := roaring.NewBitmap()
	for i := range lits {
		dominated := false
		for j := range lits {
			if i == j {
				continue
			}
			if literal.ComparePartial(ord, lits[j], lits[i]) == order.Greater {
				dominated = true
				break
			}
		}
		if !dominated {
			_, _ = bm.Add(uint64(i))
		}
	}
	return bm
}

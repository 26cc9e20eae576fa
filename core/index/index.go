// Package index implements the term index of SPEC_FULL.md §4.J: a
// coarse symbol-fingerprint filter over a persistent radix tree,
// refined by an exact unify/match call on every candidate it returns.
// False positives from the filter are expected and harmless; false
// negatives are not allowed.
package index

import (
	"encoding/binary"
	"sync"

	iradix "github.com/hashicorp/go-immutable-radix"

	"github.com/zetaprover/zeta/core/clause"
	"github.com/zetaprover/zeta/core/subst"
	"github.com/zetaprover/zeta/core/symbol"
	"github.com/zetaprover/zeta/core/term"
	"github.com/zetaprover/zeta/core/unify"
)

// Entry is the payload associated with one indexed subterm: the
// clause it came from, which literal, and the position locating the
// subterm within that literal's side (empty Position for the
// literal's own top-level side). Position is the same type
// core/term.ReplaceAt consumes, so a demodulation rewrite can apply
// directly to an Entry without re-deriving its location.
type Entry struct {
	Term     *term.Term
	ClauseID clause.Id
	LitIndex int
	Side     Side
	Position term.Position
}

// Side distinguishes a literal's two sides, since both are indexed
// independently.
type Side int

const (
	Lhs Side = iota
	Rhs
)

// Candidate is one verified retrieval result: the indexed entry plus
// the substitution the matching relation produced.
type Candidate struct {
	Entry Entry
	Subst *subst.Subst
}

var variableKey = []byte{0}

// Index is a persistent, fingerprint-keyed map from a term's top
// symbol to the entries indexed under it, refined by unify.Unify /
// unify.Match on retrieval. Safe for concurrent use.
type Index struct {
	mu   sync.Mutex
	tree *iradix.Tree
}

// New returns an empty index.
func New() *Index {
	return &Index{tree: iradix.New()}
}

// Insert associates payload with every indexable non-variable subterm
// of t: t itself and, recursively, every argument and lambda body, per
// SPEC_FULL.md §4.J. A bare variable subterm is never itself indexed —
// every consumer of this index targets a rewrite or unification
// position, and the superposition rule already forbids that position
// from being a variable — but a query may still legitimately be a
// variable, matching every indexed entry. entry.Term and
// entry.Position are overwritten per subterm; callers should pass
// entry with ClauseID/LitIndex/Side already set and Position/Term left
// zero.
func (ix *Index) Insert(t *term.Term, entry Entry) {
	term.AllPositions(t, func(occ term.Occurrence) bool {
		if !isVariable(occ.Term) {
			e := entry
			e.Term = occ.Term
			e.Position = occ.Pos
			ix.insertOne(occ.Term, e)
		}
		return true
	})
}

// Remove deletes every entry previously inserted for t under the same
// ClauseID/LitIndex/Side, across all of t's subterm positions.
func (ix *Index) Remove(t *term.Term, clauseID clause.Id, litIndex int, side Side) {
	term.AllPositions(t, func(occ term.Occurrence) bool {
		if !isVariable(occ.Term) {
			ix.removeOne(occ.Term, clauseID, litIndex, side)
		}
		return true
	})
}

// InsertRoot associates payload with t itself only — no recursive
// subterm descent — for indexes where the only valid application
// position is the whole term, such as a demodulator set keyed by a
// unit rule's left-hand side: the rule's pattern can never legitimately
// match at one of its own proper subterms.
func (ix *Index) InsertRoot(t *term.Term, entry Entry) {
	if isVariable(t) {
		return
	}
	entry.Term = t
	entry.Position = nil
	ix.insertOne(t, entry)
}

func (ix *Index) insertOne(t *term.Term, entry Entry) {
	k := fingerprint(t)
	ix.mu.Lock()
	defer ix.mu.Unlock()
	bucket, _ := ix.tree.Get(k)
	var entries []Entry
	if bucket != nil {
		entries = bucket.([]Entry)
	}
	entries = append(entries, entry)
	newTree, _, _ := ix.tree.Insert(k, entries)
	ix.tree = newTree
}

func (ix *Index) removeOne(t *term.Term, clauseID clause.Id, litIndex int, side Side) {
	k := fingerprint(t)
	ix.mu.Lock()
	defer ix.mu.Unlock()
	bucket, ok := ix.tree.Get(k)
	if !ok {
		return
	}
	entries := bucket.([]Entry)
	kept := entries[:0:0]
	for _, e := range entries {
		if e.ClauseID == clauseID && e.LitIndex == litIndex && e.Side == side {
			continue
		}
		kept = append(kept, e)
	}
	var newTree *iradix.Tree
	if len(kept) == 0 {
		newTree, _, _ = ix.tree.Delete(k)
	} else {
		newTree, _, _ = ix.tree.Insert(k, kept)
	}
	ix.tree = newTree
}

// RetrieveUnifiable returns every indexed entry whose term unifies
// with query (scoped under queryScope), together with the unifier.
func (ix *Index) RetrieveUnifiable(tb *term.Table, query *term.Term, queryScope, indexScope int) []Candidate {
	var out []Candidate
	for _, e := range ix.candidates(query) {
		s, ok := unify.Unify(tb, subst.Empty(),
			unify.Scoped{Term: e.Term, Scope: indexScope},
			unify.Scoped{Term: query, Scope: queryScope})
		if ok {
			out = append(out, Candidate{Entry: e, Subst: s})
		}
	}
	return out
}

// RetrieveGeneralizations returns every indexed entry that is a
// generalization of query: the indexed term is the pattern, query is
// the rigid instance.
func (ix *Index) RetrieveGeneralizations(tb *term.Table, query *term.Term, queryScope, indexScope int) []Candidate {
	var out []Candidate
	for _, e := range ix.candidates(query) {
		s, ok := unify.Match(tb, subst.Empty(),
			unify.Scoped{Term: e.Term, Scope: indexScope},
			unify.Scoped{Term: query, Scope: queryScope})
		if ok {
			out = append(out, Candidate{Entry: e, Subst: s})
		}
	}
	return out
}

// RetrieveInstances returns every indexed entry that is an instance of
// query: query is the pattern, the indexed term is the rigid instance.
// When query has a concrete top symbol, only entries sharing its
// fingerprint can possibly be instances, since every indexed entry is
// itself non-variable (see Insert) and specializing query can only
// change what lies below its own top symbol, never the symbol itself.
func (ix *Index) RetrieveInstances(tb *term.Table, query *term.Term, queryScope, indexScope int) []Candidate {
	var pool []Entry
	if isVariable(query) {
		pool = ix.allEntries()
	} else {
		pool, _ = ix.bucket(fingerprint(query))
	}
	var out []Candidate
	for _, e := range pool {
		s, ok := unify.Match(tb, subst.Empty(),
			unify.Scoped{Term: query, Scope: queryScope},
			unify.Scoped{Term: e.Term, Scope: indexScope})
		if ok {
			out = append(out, Candidate{Entry: e, Subst: s})
		}
	}
	return out
}

// candidates returns the coarse filter pool for a unifiable or
// generalization retrieval: entries sharing query's fingerprint, or
// every indexed entry when query itself is a variable (a variable can
// unify/match anything, and no indexed entry is ever itself a bare
// variable — see Insert).
func (ix *Index) candidates(query *term.Term) []Entry {
	if isVariable(query) {
		return ix.allEntries()
	}
	same, _ := ix.bucket(fingerprint(query))
	return same
}

func (ix *Index) bucket(k []byte) ([]Entry, bool) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	v, ok := ix.tree.Get(k)
	if !ok {
		return nil, false
	}
	return v.([]Entry), true
}

func (ix *Index) allEntries() []Entry {
	ix.mu.Lock()
	tree := ix.tree
	ix.mu.Unlock()

	var out []Entry
	tree.Root().Walk(func(_ []byte, v interface{}) bool {
		out = append(out, v.([]Entry)...)
		return false
	})
	return out
}

func isVariable(t *term.Term) bool {
	return t.Shape() == term.FreeVar || t.Shape() == term.BoundVar
}

// fingerprint is the one-level coarse key used to bucket a term:
// variables share a single reserved key (variableKey), constants and
// applications key on their head symbol tag.
func fingerprint(t *term.Term) []byte {
	switch t.Shape() {
	case term.FreeVar, term.BoundVar:
		return variableKey
	case term.Lambda:
		return []byte{3}
	case term.App:
		head := t.Head()
		if head.Shape() != term.Const {
			// Applied variable head: no fixed symbol to key on,
			// so treat it like a variable for filtering purposes.
			return variableKey
		}
		return constKey(head.Symbol().Tag())
	default: // Const
		return constKey(t.Symbol().Tag())
	}
}

func constKey(tag symbol.Tag) []byte {
	buf := make([]byte, 9)
	buf[0] = 1
	binary.BigEndian.PutUint64(buf[1:], uint64(tag))
	return buf
}

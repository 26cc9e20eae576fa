package saturate

import (
	"github.com/zetaprover/zeta/core/clause"
	"github.com/zetaprover/zeta/core/index"
)

// ActiveSet is the saturation loop's active clause set: every clause
// that has already served as a given clause, kept alongside a term
// index over both sides of every one of its literals so superposition
// can retrieve rewrite candidates in either direction (SPEC_FULL.md
// §4.J, §4.M step 6).
type ActiveSet struct {
	clauses map[clause.Id]*clause.Clause
	order   []clause.Id
	index   *index.Index
}

// NewActiveSet returns an empty active set.
func NewActiveSet() *ActiveSet {
	return &ActiveSet{clauses: make(map[clause.Id]*clause.Clause), index: index.New()}
}

// Add inserts c into the set and indexes every literal side's
// subterms. A no-op if c is already active (clauses are hash-consed,
// so the same derivation can be generated more than once).
func (a *ActiveSet) Add(c *clause.Clause) {
	if _, ok := a.clauses[c.Id()]; ok {
		return
	}
	a.clauses[c.Id()] = c
	a.order = append(a.order, c.Id())
	for i, lit := range c.Literals() {
		a.index.Insert(lit.Lhs(), index.Entry{ClauseID: c.Id(), LitIndex: i, Side: index.Lhs})
		a.index.Insert(lit.Rhs(), index.Entry{ClauseID: c.Id(), LitIndex: i, Side: index.Rhs})
	}
}

// Remove deletes c from the set and its index entries, for backward
// simplification's "remove clauses the new clause made redundant"
// step.
func (a *ActiveSet) Remove(id clause.Id) {
	c, ok := a.clauses[id]
	if !ok {
		return
	}
	delete(a.clauses, id)
	for i := range a.order {
		if a.order[i] == id {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
	for i, lit := range c.Literals() {
		a.index.Remove(lit.Lhs(), id, i, index.Lhs)
		a.index.Remove(lit.Rhs(), id, i, index.Rhs)
	}
}

// Get resolves a clause id to its pointer, for turning an index entry
// back into the clause it came from.
func (a *ActiveSet) Get(id clause.Id) (*clause.Clause, bool) {
	c, ok := a.clauses[id]
	return c, ok
}

// Clauses returns every active clause, in insertion order.
func (a *ActiveSet) Clauses() []*clause.Clause {
	out := make([]*clause.Clause, 0, len(a.order))
	for _, id := range a.order {
		out = append(out, a.clauses[id])
	}
	return out
}

// Index returns the set's term index, queried by Loop.generate for
// superposition candidates.
func (a *ActiveSet) Index() *index.Index { return a.index }

// Len reports the number of active clauses.
func (a *ActiveSet) Len() int { return len(a.clauses) }

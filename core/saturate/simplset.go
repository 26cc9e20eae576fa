package saturate

import "github.com/zetaprover/zeta/core/clause"

// SimplSet is the running set of clauses forward/backward
// simplification is checked against (SPEC_FULL.md §4.L, §4.M). Every
// active clause also lives here; it is a separate type rather than a
// reuse of ActiveSet because the two sets are conceptually distinct
// collaborators in core/simplify's signatures ([]*clause.Clause) even
// though this prover keeps them in lockstep.
type SimplSet struct {
	byID  map[clause.Id]*clause.Clause
	order []clause.Id
}

// NewSimplSet returns an empty simplification set.
func NewSimplSet() *SimplSet {
	return &SimplSet{byID: make(map[clause.Id]*clause.Clause)}
}

// Add inserts c, a no-op if already present.
func (s *SimplSet) Add(c *clause.Clause) {
	if _, ok := s.byID[c.Id()]; ok {
		return
	}
	s.byID[c.Id()] = c
	s.order = append(s.order, c.Id())
}

// Remove deletes the clause with the given id, a no-op if absent.
func (s *SimplSet) Remove(id clause.Id) {
	if _, ok := s.byID[id]; !ok {
		return
	}
	delete(s.byID, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Clauses returns every member, in insertion order, ready to pass
// straight to simplify.ForwardSimplify / simplify.BackwardSimplify.
func (s *SimplSet) Clauses() []*clause.Clause {
	out := make([]*clause.Clause, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// Len reports the number of members.
func (s *SimplSet) Len() int { return len(s.byID) }

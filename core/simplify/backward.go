package simplify

import "github.com/zetaprover/zeta/core/clause"

// BackwardSimplify checks newClause against every other member of
// candidates — the active-set side of SPEC_FULL.md §4.L's
// simplification step, run once per clause newly admitted to the
// simplification set. subsumed collects clauses that newClause now
// makes redundant outright; rewritable collects clauses newClause (a
// unit positive equation) can demodulate at some position. Both are
// detection only: the caller is responsible for discarding subsumed
// clauses and for kicking rewritable ones back to the passive set,
// where ForwardSimplify will perform the actual rewrite against the
// updated simplification set.
func BackwardSimplify(ctx *Context, candidates []*clause.Clause, newClause *clause.Clause) (subsumed, rewritable []*clause.Clause, err error) {
	isRule := isUnitPositiveEquation(newClause)
	for _, other := range candidates {
		if other.Id() == newClause.Id() {
			continue
		}
		if Subsumes(ctx, newClause, other) {
			subsumed = append(subsumed, other)
			continue
		}
		if !isRule {
			continue
		}
		_, hit, stepErr := tryDemodulateStep(ctx, []*clause.Clause{newClause}, other)
		if stepErr != nil {
			return nil, nil, stepErr
		}
		if hit {
			rewritable = append(rewritable, other)
		}
	}
	return subsumed, rewritable, nil
}

// Package proof implements the proof DAG of SPEC_FULL.md §6: a record
// of every clause derivation, keyed by the stable integer clause.Id
// handles that already solve the cyclic-reference problem (Design
// Note: "Cyclic references → arena + stable integer handles").
package proof

import "github.com/zetaprover/zeta/core/clause"

// Step is one node of the DAG: a derived clause's rule name, parent
// clause ids, and any rule-specific detail (e.g. the substitution
// rendered to a string), mirroring clause.Proof but addressed by id
// rather than embedded in the Clause itself, so the DAG can be walked
// (and serialized) without holding the clause table alive.
type Step struct {
	Clause  clause.Id
	Rule    string
	Parents []clause.Id
	Detail  string
}

// DAG accumulates Steps as clauses are derived during saturation. Not
// safe for concurrent use — like the saturation loop itself, it is
// single-threaded (SPEC_FULL.md §5).
type DAG struct {
	steps map[clause.Id]Step
	order []clause.Id
}

// New returns an empty proof DAG.
func New() *DAG {
	return &DAG{steps: make(map[clause.Id]Step)}
}

// Record adds c's derivation to the DAG, deriving the Step directly
// from the clause's own embedded Proof. Re-recording the same clause
// id is a no-op: a clause interns once, so its derivation never
// changes after the fact.
func (d *DAG) Record(c *clause.Clause) {
	if _, ok := d.steps[c.Id()]; ok {
		return
	}
	p := c.Proof()
	d.steps[c.Id()] = Step{
		Clause:  c.Id(),
		Rule:    p.Rule,
		Parents: p.Parents,
		Detail:  p.Detail,
	}
	d.order = append(d.order, c.Id())
}

// Step returns the recorded derivation of id, if any.
func (d *DAG) Step(id clause.Id) (Step, bool) {
	s, ok := d.steps[id]
	return s, ok
}

// Ancestors returns every step id reachable by following parent edges
// from id, including id itself, in the order steps were first visited
// (id, then its parents' subgraphs depth-first). A clause not
// recorded in the DAG (e.g. referenced by id only, never derived
// through this DAG) is still listed, but no parents are followed from
// it; this is not an error.
func (d *DAG) Ancestors(id clause.Id) []clause.Id {
	seen := make(map[clause.Id]bool)
	var out []clause.Id
	var visit func(clause.Id)
	visit = func(cur clause.Id) {
		if seen[cur] {
			return
		}
		seen[cur] = true
		step, ok := d.steps[cur]
		out = append(out, cur)
		if !ok {
			return
		}
		for _, p := range step.Parents {
			visit(p)
		}
	}
	visit(id)
	return out
}

// Len returns the number of recorded steps.
func (d *DAG) Len() int { return len(d.order) }

// Package plugin implements the external-interfaces hook surface of
// SPEC_FULL.md §6: the core never calls back into induction, AVATAR,
// meta-prover, or arithmetic logic directly — it only ever invokes the
// synchronous function values a caller registers here.
package plugin

import (
	"github.com/zetaprover/zeta/core/clause"
	"github.com/zetaprover/zeta/core/index"
)

// UnaryHook generates clauses from a single clause — e.g. a future
// cancellative-arithmetic or AVATAR-splitting plugin, never implemented
// in core. Must not mutate c.
type UnaryHook func(c *clause.Clause) []*clause.Clause

// BinaryHook generates clauses from a pair, with read access to the
// active set's term index so a plugin can run its own retrieval
// queries rather than re-deriving candidate positions. Must not
// mutate either clause.
type BinaryHook func(a, b *clause.Clause, idx *index.Index) []*clause.Clause

// SimplifyHook rewrites a clause to a (possibly identical) simplified
// form, run alongside the core's own forward simplification.
type SimplifyHook func(c *clause.Clause) *clause.Clause

// RedundancyHook reports whether a clause should be treated as
// redundant for reasons the core's own subsumption/tautology checks
// don't cover.
type RedundancyHook func(c *clause.Clause) bool

// SelectionHook is the same shape as core/selection.Func, named
// locally so this package does not have to import core/selection
// purely for a type alias target.
type SelectionHook func(c *clause.Clause) []int

// Hooks bundles every extension point a Prover accepts. Every field is
// optional; a nil hook is simply never invoked. All hooks are
// synchronous callbacks invoked on the saturation loop's own thread —
// they may allocate new clauses but must never mutate an existing one
// (SPEC_FULL.md §6).
type Hooks struct {
	Unary       []UnaryHook
	Binary      []BinaryHook
	Simplify    []SimplifyHook
	Redundancy  []RedundancyHook
	Selection   SelectionHook
	Events      *EventBus
}

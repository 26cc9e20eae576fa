// Package saturate implements the given-clause saturation loop of
// SPEC_FULL.md §4.M: the active/passive/simplification sets, and the
// step that pops a clause, simplifies it, generates its consequences
// against the active set, and loops until refutation or saturation.
package saturate

import (
	"context"

	"github.com/zetaprover/zeta/core/clause"
	"github.com/zetaprover/zeta/core/infer"
	"github.com/zetaprover/zeta/core/plugin"
	"github.com/zetaprover/zeta/core/proof"
	"github.com/zetaprover/zeta/core/selection"
	"github.com/zetaprover/zeta/core/simplify"
	protoerrors "github.com/zetaprover/zeta/internal/errors"
)

// Config bundles everything one saturation run needs: the shared
// term/type/clause tables and ordering, the selection function every
// popped given clause is run through exactly once, and optional
// extension points.
type Config struct {
	Ctx       *infer.Context
	Selection selection.Func
	Hooks     *plugin.Hooks
	Tracer    *plugin.Tracer
}

// Loop is one given-clause saturation run. Not safe for concurrent
// use — the core is single-threaded by design (SPEC_FULL.md §5).
type Loop struct {
	cfg     Config
	active  *ActiveSet
	passive *PassiveSet
	simpl   *SimplSet
	dag     *proof.DAG
	step    int
}

// New returns an empty loop ready to accept initial clauses.
func New(cfg Config) *Loop {
	if cfg.Tracer == nil {
		cfg.Tracer = plugin.NewNoopTracer()
	}
	return &Loop{
		cfg:     cfg,
		active:  NewActiveSet(),
		passive: NewPassiveSet(),
		simpl:   NewSimplSet(),
		dag:     proof.New(),
	}
}

// AddInitial seeds the passive set with an input clause and records it
// in the proof DAG as an axiom.
func (l *Loop) AddInitial(c *clause.Clause) {
	l.dag.Record(c)
	l.passive.Insert(c)
}

// Proof returns the run's proof DAG: complete on Refutation, partial
// but still inspectable on any other outcome.
func (l *Loop) Proof() *proof.DAG { return l.dag }

// Active exposes the active set, satisfying SPEC_FULL.md §6's
// "accessors... for iterating current clauses (for checkpointing and
// for plugins)".
func (l *Loop) Active() *ActiveSet { return l.active }

// Passive exposes the passive set for the same reason.
func (l *Loop) Passive() *PassiveSet { return l.passive }

// Step returns the number of given-clause steps taken so far.
func (l *Loop) Step() int { return l.step }

// Run drives the given-clause loop (SPEC_FULL.md §4.M) until
// refutation, saturation, an exhausted budget, or an internal error.
// ctx's deadline/cancellation is polled between given-clause steps
// only, never mid-inference (SPEC_FULL.md §5). maxSteps <= 0 means no
// step cap.
func (l *Loop) Run(ctx context.Context, maxSteps int) Outcome {
	for {
		select {
		case <-ctx.Done():
			return Outcome{Kind: Timeout, Proof: l.dag}
		default:
		}
		if maxSteps > 0 && l.step >= maxSteps {
			return Outcome{Kind: Timeout, Proof: l.dag}
		}

		given, ok := l.passive.PopBest()
		if !ok {
			return Outcome{Kind: Saturated, Proof: l.dag}
		}
		l.step++
		span := l.cfg.Tracer.StartStep(ctx, l.step, given)

		outcome, done := l.step1(given, span)
		span.Finish()
		if done {
			return outcome
		}
	}
}

// step1 runs one full given-clause step on given. done is true when
// the run must terminate with outcome; otherwise the loop continues.
func (l *Loop) step1(given *clause.Clause, span plugin.StepSpan) (Outcome, bool) {
	ctx := l.cfg.Ctx

	simplified, kept, err := simplify.ForwardSimplify(ctx, l.simpl.Clauses(), given)
	if err != nil {
		return Outcome{Kind: Error, Proof: l.dag, Err: err}, true
	}
	if !kept {
		return Outcome{}, false
	}
	given = simplified

	if given.IsEmpty() {
		l.dag.Record(given)
		l.publish(plugin.EmptyClauseFound, given, "")
		return Outcome{Kind: Refutation, Proof: l.dag, Empty: given.Id()}, true
	}

	if err := given.Select(l.cfg.Selection); err != nil {
		if protoerrors.ErrFrozen.Is(err) {
			// The passive set keeps duplicates: a clause popped a
			// second time was already selected by its first pop.
			return Outcome{}, false
		}
		return Outcome{Kind: Error, Proof: l.dag, Err: err}, true
	}

	if l.subsumedByActive(given) {
		return Outcome{}, false
	}

	subsumed, rewritable, err := simplify.BackwardSimplify(ctx, l.active.Clauses(), given)
	if err != nil {
		return Outcome{Kind: Error, Proof: l.dag, Err: err}, true
	}
	for _, s := range subsumed {
		l.retire(s, "subsumption")
	}
	for _, r := range rewritable {
		l.retire(r, "demodulation-candidate")
		l.passive.Insert(r)
	}

	l.active.Add(given)
	l.simpl.Add(given)
	l.publish(plugin.ClauseAddedToActive, given, "")

	generated, err := l.generate(given, span)
	if err != nil {
		return Outcome{Kind: Error, Proof: l.dag, Err: err}, true
	}
	for _, g := range generated {
		gs, kept, err := simplify.ForwardSimplify(ctx, l.simpl.Clauses(), g)
		if err != nil {
			return Outcome{Kind: Error, Proof: l.dag, Err: err}, true
		}
		if !kept {
			continue
		}
		l.dag.Record(gs)
		if gs.IsEmpty() {
			l.publish(plugin.EmptyClauseFound, gs, "")
			return Outcome{Kind: Refutation, Proof: l.dag, Empty: gs.Id()}, true
		}
		l.passive.Insert(gs)
	}

	return Outcome{}, false
}

func (l *Loop) publish(kind plugin.EventKind, c *clause.Clause, reason string) {
	if l.cfg.Hooks == nil || l.cfg.Hooks.Events == nil {
		return
	}
	l.cfg.Hooks.Events.Publish(plugin.Event{Kind: kind, Clause: c, Reason: reason})
}

func (l *Loop) retire(c *clause.Clause, reason string) {
	l.active.Remove(c.Id())
	l.simpl.Remove(c.Id())
	l.passive.Remove(c.Id())
	l.publish(plugin.ClauseRemovedFromActive, c, reason)
}

func (l *Loop) subsumedByActive(given *clause.Clause) bool {
	for _, other := range l.active.Clauses() {
		if simplify.Subsumes(l.cfg.Ctx, other, given) {
			return true
		}
	}
	return false
}

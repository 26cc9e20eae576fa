package plugin

import (
	"context"

	"github.com/opentracing/opentracing-go"

	"github.com/zetaprover/zeta/core/clause"
)

// Tracer wraps opentracing.Tracer with the one span shape the
// saturation loop needs: one span per given-clause step, tagged with
// the given clause's id and closed when the step finishes. Default is
// opentracing.NoopTracer, so a Prover configured without tracing pays
// only the cost of a no-op interface call per step.
type Tracer struct {
	tracer opentracing.Tracer
}

// NewTracer wraps t. Passing nil is equivalent to NewNoopTracer.
func NewTracer(t opentracing.Tracer) *Tracer {
	if t == nil {
		t = opentracing.NoopTracer{}
	}
	return &Tracer{tracer: t}
}

// NewNoopTracer returns a Tracer that records nothing, the default for
// a Prover that does not configure one.
func NewNoopTracer() *Tracer {
	return NewTracer(opentracing.NoopTracer{})
}

// StepSpan is one given-clause step's span, carrying the go context it
// was started under so the caller can thread it into any traced
// collaborator invoked during the step.
type StepSpan struct {
	Span opentracing.Span
	Ctx  context.Context
}

// StartStep starts a span named "given_clause_step", tagged with the
// given clause's id, step number, and literal count.
func (tr *Tracer) StartStep(ctx context.Context, stepNum int, given *clause.Clause) StepSpan {
	span, spanCtx := opentracing.StartSpanFromContextWithTracer(ctx, tr.tracer, "given_clause_step")
	span.SetTag("zeta.step", stepNum)
	span.SetTag("zeta.clause_id", uint64(given.Id()))
	span.SetTag("zeta.clause_literals", len(given.Literals()))
	return StepSpan{Span: span, Ctx: spanCtx}
}

// Generated records how many new clauses a rule produced during the
// step the span covers.
func (s StepSpan) Generated(rule string, n int) {
	s.Span.SetTag("zeta.generated."+rule, n)
}

// Finish closes the step's span.
func (s StepSpan) Finish() {
	s.Span.Finish()
}

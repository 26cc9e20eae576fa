// Package zeta is the root ingress API of SPEC_FULL.md §6: Prover
// wraps one saturation context (symbol/type/term/clause tables, an
// ordering, a selection function) and exposes Prover.New,
// Prover.AddInitial, and Prover.Saturate over the core/saturate loop.
package zeta

import (
	"context"

	"github.com/hashicorp/go-multierror"
	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"

	"github.com/zetaprover/zeta/core/clause"
	"github.com/zetaprover/zeta/core/infer"
	"github.com/zetaprover/zeta/core/literal"
	"github.com/zetaprover/zeta/core/order"
	"github.com/zetaprover/zeta/core/plugin"
	"github.com/zetaprover/zeta/core/proof"
	"github.com/zetaprover/zeta/core/saturate"
	"github.com/zetaprover/zeta/core/selection"
	"github.com/zetaprover/zeta/core/symbol"
	"github.com/zetaprover/zeta/core/term"
	"github.com/zetaprover/zeta/core/types"

	internalconfig "github.com/zetaprover/zeta/internal/config"
	zetaerrors "github.com/zetaprover/zeta/internal/errors"
	"github.com/zetaprover/zeta/internal/logging"
	"github.com/zetaprover/zeta/internal/metrics"
)

// Config is the caller-facing configuration for Prover.New, re-exported
// from internal/config so a caller never has to import the internal
// package directly.
type Config = internalconfig.Config

// Default returns the configuration a bare New(Default()) uses.
func Default() Config { return internalconfig.Default() }

// Load reads Config from a YAML file, as internal/config.Load.
func Load(path string) (Config, error) { return internalconfig.Load(path) }

// Prover is one saturation context: the symbol/type/term/clause tables
// that every constructed value is interned against, the configured
// ordering and selection function, and the given-clause loop itself.
// Not safe for concurrent use (SPEC_FULL.md §5) — a process hosts
// multiple independent Provers by constructing one per context.
type Prover struct {
	runID string

	symbols *symbol.Table
	types   *types.Table
	terms   *term.Table
	clauses *clause.Table
	sig     *types.Signature
	prec    *order.Precedence
	ord     order.Ordering

	boolType *types.Type
	trueTerm *term.Term

	loop  *saturate.Loop
	hooks *plugin.Hooks

	log     *logrus.Entry
	metrics *metrics.Registry
}

// New builds a Prover from cfg: the symbol/type/term tables, a
// precedence seeded with $true and $false, the configured
// ordering and selection function, and an empty saturation loop.
// Incomplete configuration (no selection function, no ordering) is
// rejected here as ErrConfig, per spec.md §7.
func New(cfg Config) (*Prover, error) {
	if err := internalconfig.Validate(cfg); err != nil {
		return nil, err
	}

	p := &Prover{
		runID:   uuid.NewV4().String(),
		symbols: symbol.NewTable(),
		types:   types.NewTable(),
		terms:   term.NewTable(),
		clauses: clause.NewTable(),
		sig:     types.NewSignature(),
		prec:    order.NewPrecedence(),
		hooks:   &plugin.Hooks{Events: plugin.NewEventBus()},
		log:     logging.New(),
	}

	boolSym := p.symbols.Intern("$o", 0)
	p.boolType = p.types.Atomic(boolSym)
	p.trueTerm = literal.TrueConst(p.terms, p.types, p.symbols, p.boolType)
	trueSym, _ := p.symbols.Lookup("$true")
	p.prec.Append(trueSym, order.Lexicographic)
	falseSym, _ := p.symbols.Lookup("$false")
	p.prec.Append(falseSym, order.Lexicographic)

	switch cfg.Ordering {
	case internalconfig.OrderingKBO:
		kbo := order.NewKBO(p.prec)
		for name, w := range cfg.SymbolWeights {
			sym := p.symbols.Intern(name, 0)
			p.prec.Append(sym, order.Lexicographic)
			kbo.SetWeight(sym, w)
		}
		p.ord = kbo
	case internalconfig.OrderingRPO:
		p.ord = order.NewRPO(p.prec)
		for name := range cfg.SymbolWeights {
			p.prec.Append(p.symbols.Intern(name, 0), order.Lexicographic)
		}
	default:
		return nil, zetaerrors.ErrConfig.New("unknown ordering " + string(cfg.Ordering))
	}

	selFn, err := selectionFunc(cfg.Selection, p.ord)
	if err != nil {
		return nil, err
	}

	if cfg.MetricsEnabled {
		p.metrics = metrics.New()
	}

	p.loop = saturate.New(saturate.Config{
		Ctx: &infer.Context{
			Terms:   p.terms,
			Types:   p.types,
			Clauses: p.clauses,
			Ord:     p.ord,
		},
		Selection: selFn,
		Hooks:     p.hooks,
		Tracer:    plugin.NewNoopTracer(),
	})

	return p, nil
}

func selectionFunc(name internalconfig.Selection, ord order.Ordering) (selection.Func, error) {
	switch name {
	case internalconfig.SelectionNone:
		return selection.None, nil
	case internalconfig.SelectionAllNegative:
		return selection.AllNegative, nil
	case internalconfig.SelectionFirstNegative:
		return selection.FirstNegative, nil
	case internalconfig.SelectionComplex:
		return selection.Complex(ord), nil
	default:
		return nil, zetaerrors.ErrConfig.New("unknown selection function " + string(name))
	}
}

// RunID returns the per-Prover run identifier used to tag log lines
// and, by checkpoint.Store, snapshot file names.
func (p *Prover) RunID() string { return p.runID }

// Symbols, Types, Terms, Clauses, Signature, Precedence, and Ordering
// expose the tables a caller needs to build EqTriple values or to
// declare new symbols (e.g. for Skolemization between runs).
func (p *Prover) Symbols() *symbol.Table         { return p.symbols }
func (p *Prover) Types() *types.Table            { return p.types }
func (p *Prover) Terms() *term.Table             { return p.terms }
func (p *Prover) Clauses() *clause.Table         { return p.clauses }
func (p *Prover) Signature() *types.Signature    { return p.sig }
func (p *Prover) Precedence() *order.Precedence  { return p.prec }
func (p *Prover) Ordering() order.Ordering       { return p.ord }

// Hooks exposes the plugin extension points (SPEC_FULL.md §6); a
// caller registers hooks before calling Saturate.
func (p *Prover) Hooks() *plugin.Hooks { return p.hooks }

// AddSkolemSymbol declares a fresh Skolem-attributed symbol mid-run and
// appends it to the precedence, then invalidates every active clause's
// ordering caches (literal orientation tags and the maximal-literal
// bitmap) — resolving spec.md §9's Open Question 3 (cache invalidation
// on precedence update).
func (p *Prover) AddSkolemSymbol(name string, ty *types.Type) *symbol.Symbol {
	sym := p.symbols.Intern(name, symbol.Skolem)
	_ = p.sig.Declare(sym, ty)
	p.prec.Append(sym, order.Lexicographic)
	if p.loop != nil {
		for _, c := range p.loop.Active().Clauses() {
			c.InvalidateOrderingCache(p.ord)
		}
	}
	return sym
}

// EqTriple is one ingress literal: sign plus the two sides of an
// equation, matching spec.md §6's "lists of (sign, left term, right
// term) triples" literal input format exactly — there is no concrete
// file format in the core, so this is the caller's own responsibility
// to produce from whatever surface syntax they parse.
type EqTriple struct {
	Sign bool
	Lhs  *term.Term
	Rhs  *term.Term
}

// Prop builds the EqTriple encoding of a propositional literal atom
// with the given sign, as atom ≈ ⊤ / atom ≉ ⊤ (spec.md §4.G: "Propositional
// literals are encoded as P ≈ ⊤").
func (p *Prover) Prop(atom *term.Term, sign bool) EqTriple {
	return EqTriple{Sign: sign, Lhs: atom, Rhs: p.trueTerm}
}

// AddInitial constructs a clause from triples and an origin label,
// seeds it into the passive set, and records it in the proof DAG as an
// input clause. A malformed (empty) triple list is rejected as
// ErrUser rather than silently accepted.
func (p *Prover) AddInitial(triples []EqTriple, origin string) error {
	c, err := p.makeClause(triples, origin)
	if err != nil {
		return err
	}
	p.loop.AddInitial(c)
	return nil
}

// AddInitialBatch adds every clause in batches, aggregating any
// malformed-clause failures with go-multierror so one bad clause in a
// large batch does not hide the others' errors (SPEC_FULL.md §7).
func (p *Prover) AddInitialBatch(batches [][]EqTriple, origin string) error {
	var result *multierror.Error
	for _, triples := range batches {
		if err := p.AddInitial(triples, origin); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

func (p *Prover) makeClause(triples []EqTriple, origin string) (*clause.Clause, error) {
	if len(triples) == 0 {
		return nil, zetaerrors.ErrUser.New("clause has no literals")
	}
	lits := make([]*literal.Literal, 0, len(triples))
	for _, tr := range triples {
		if tr.Lhs == nil || tr.Rhs == nil {
			return nil, zetaerrors.ErrUser.New("literal has a nil side")
		}
		if tr.Lhs.Type() != tr.Rhs.Type() {
			return nil, zetaerrors.ErrTypeMismatch.New("equation sides have different types")
		}
		if tr.Sign {
			lits = append(lits, literal.MkEq(tr.Lhs, tr.Rhs))
		} else {
			lits = append(lits, literal.MkNeq(tr.Lhs, tr.Rhs))
		}
	}
	return p.clauses.Make(p.terms, p.types, lits, p.ord, clause.Proof{Rule: "input", Detail: origin}, 0)
}

// Outcome is the public result of a saturation run, re-exported from
// core/saturate so a caller never has to import the core package
// directly.
type Outcome = saturate.Outcome

// Re-export the Outcome.Kind constants under the root package.
const (
	Saturated  = saturate.Saturated
	Refutation = saturate.Refutation
	Timeout    = saturate.Timeout
	Error      = saturate.Error
)

// Saturate drives the given-clause loop (SPEC_FULL.md §4.M) until
// refutation, saturation, ctx's deadline, or maxSteps is reached.
// maxSteps <= 0 means no step cap; the configured time budget, if any,
// is applied to ctx before the call if the caller used WithBudget.
func (p *Prover) Saturate(ctx context.Context, maxSteps int) Outcome {
	out := p.loop.Run(ctx, maxSteps)
	logging.Outcome(p.log, out.Kind.String(), p.loop.Step())
	if p.metrics != nil {
		generated := map[string]int{}
		p.metrics.Observe(p.loop.Active().Len(), p.loop.Passive().Len(), generated)
	}
	if out.Kind == saturate.Error {
		logging.InternalError(p.log, out.Err)
	}
	return out
}

// WithBudget returns a context carrying cfg's configured wall-clock
// time budget, or a cancellable child of ctx with no deadline if none
// was configured. The returned
// cancel func must be called once the caller is done with the
// context, per context.WithTimeout's own contract.
func WithBudget(ctx context.Context, cfg Config) (context.Context, context.CancelFunc) {
	if cfg.TimeBudget <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, cfg.TimeBudget)
}

// Snapshot is a point-in-time, read-only view of a Prover's saturation
// state, used for checkpointing (checkpoint.Store) and plugin
// introspection — SPEC_FULL.md §6's "accessors... for iterating
// current clauses".
type Snapshot struct {
	RunID       string
	Step        int
	ActiveIDs   []clause.Id
	PassiveSize int
	SimplIDs    []clause.Id
	Proof       *proof.DAG
}

// Snapshot captures the current state. It is cheap: active ids are
// copied, the proof DAG pointer is shared (the DAG is append-only and
// only ever grows between snapshots). SimplIDs is left nil.
func (p *Prover) Snapshot() Snapshot {
	active := p.loop.Active().Clauses()
	activeIDs := make([]clause.Id, len(active))
	for i, c := range active {
		activeIDs[i] = c.Id()
	}
	return Snapshot{
		RunID:       p.runID,
		Step:        p.loop.Step(),
		ActiveIDs:   activeIDs,
		PassiveSize: p.loop.Passive().Len(),
		Proof:       p.loop.Proof(),
	}
}

// ActiveSize and PassiveSize report the current set sizes directly,
// for a caller that only wants the counts (SPEC_FULL.md §6).
func (p *Prover) ActiveSize() int  { return p.loop.Active().Len() }
func (p *Prover) PassiveSize() int { return p.loop.Passive().Len() }

// ResolveClause resolves a clause.Id back to its pointer, for a
// checkpoint restoring proof steps or a plugin inspecting a Snapshot's
// ActiveIDs.
func (p *Prover) ResolveClause(id clause.Id) (*clause.Clause, bool) {
	return p.clauses.ById(id)
}


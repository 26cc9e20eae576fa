package simplify_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zetaprover/zeta/core/clause"
	"github.com/zetaprover/zeta/core/literal"
	"github.com/zetaprover/zeta/core/order"
	"github.com/zetaprover/zeta/core/simplify"
	"github.com/zetaprover/zeta/core/symbol"
	"github.com/zetaprover/zeta/core/term"
	"github.com/zetaprover/zeta/core/types"
)

type fixture struct {
	symTab    *symbol.Table
	tyTab     *types.Table
	termTab   *term.Table
	iType     *types.Type
	prec      *order.Precedence
	kbo       *order.KBO
	clauseTab *clause.Table
	ctx       *simplify.Context
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	symTab := symbol.NewTable()
	tyTab := types.NewTable()
	iSym := symTab.Intern("$i", 0)
	prec := order.NewPrecedence()
	kbo := order.NewKBO(prec)
	termTab := term.NewTable()
	clauseTab := clause.NewTable()
	return &fixture{
		symTab:    symTab,
		tyTab:     tyTab,
		termTab:   termTab,
		iType:     tyTab.Atomic(iSym),
		prec:      prec,
		kbo:       kbo,
		clauseTab: clauseTab,
		ctx:       &simplify.Context{Terms: termTab, Types: tyTab, Clauses: clauseTab, Ord: kbo},
	}
}

func (f *fixture) constTerm(name string) *term.Term {
	sym := f.symTab.Intern(name, 0)
	f.prec.Append(sym, order.Lexicographic)
	return f.termTab.Const(sym, f.iType)
}

func (f *fixture) app(t *testing.T, name string, args ...*term.Term) *term.Term {
	sym := f.symTab.Intern(name, 0)
	f.prec.Append(sym, order.Lexicographic)
	argTypes := make([]*types.Type, len(args))
	for i := range args {
		argTypes[i] = f.iType
	}
	head := f.termTab.Const(sym, f.tyTab.Function(f.iType, argTypes))
	out, err := f.termTab.App(head, args)
	require.NoError(t, err)
	return out
}

func (f *fixture) freeVar(id int) *term.Term { return f.termTab.Var(id, f.iType) }

func (f *fixture) make(t *testing.T, lits []*literal.Literal) *clause.Clause {
	t.Helper()
	c, err := f.clauseTab.Make(f.termTab, f.tyTab, lits, f.kbo, clause.Proof{Rule: "input"}, 0)
	require.NoError(t, err)
	return c
}

func TestIsTautologyDetectsOppositeSignLiterals(t *testing.T) {
	f := newFixture(t)
	a := f.constTerm("a")
	b := f.constTerm("b")

	c := f.make(t, []*literal.Literal{literal.MkEq(a, b), literal.MkNeq(a, b)})
	require.True(t, simplify.IsTautology(c))

	// Swapped sides still count as the same atom.
	swapped := f.make(t, []*literal.Literal{literal.MkEq(a, b), literal.MkNeq(b, a)})
	require.True(t, simplify.IsTautology(swapped))
}

func TestIsTautologyFalseWhenNoComplementaryPair(t *testing.T) {
	f := newFixture(t)
	a := f.constTerm("a")
	b := f.constTerm("b")
	cConst := f.constTerm("c")

	c := f.make(t, []*literal.Literal{literal.MkEq(a, b), literal.MkNeq(a, cConst)})
	require.False(t, simplify.IsTautology(c))
}

func TestSubsumesUnitMatchesInstance(t *testing.T) {
	f := newFixture(t)
	a := f.constTerm("a")
	b := f.constTerm("b")
	x := f.freeVar(1)

	general := f.make(t, []*literal.Literal{literal.MkEq(x, b)})
	instance := f.make(t, []*literal.Literal{literal.MkEq(a, b), literal.MkNeq(a, a)})

	require.True(t, simplify.Subsumes(f.ctx, general, instance))
}

func TestSubsumesFailsOnSignMismatch(t *testing.T) {
	f := newFixture(t)
	a := f.constTerm("a")
	b := f.constTerm("b")

	general := f.make(t, []*literal.Literal{literal.MkEq(a, b)})
	instance := f.make(t, []*literal.Literal{literal.MkNeq(a, b)})

	require.False(t, simplify.Subsumes(f.ctx, general, instance))
}

func TestSubsumesRequiresEveryLiteralMapped(t *testing.T) {
	f := newFixture(t)
	a := f.constTerm("a")
	b := f.constTerm("b")
	cConst := f.constTerm("c")
	x := f.freeVar(1)
	y := f.freeVar(2)

	// general has two literals; instance only matches one of them.
	general := f.make(t, []*literal.Literal{literal.MkEq(x, b), literal.MkEq(y, cConst)})
	instance := f.make(t, []*literal.Literal{literal.MkEq(a, b)})

	require.False(t, simplify.Subsumes(f.ctx, general, instance))
}

func TestForwardSimplifyDropsTautology(t *testing.T) {
	f := newFixture(t)
	a := f.constTerm("a")
	b := f.constTerm("b")

	c := f.make(t, []*literal.Literal{literal.MkEq(a, b), literal.MkNeq(a, b)})

	result, ok, err := simplify.ForwardSimplify(f.ctx, nil, c)
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, result)
}

func TestForwardSimplifyDropsSubsumedClause(t *testing.T) {
	f := newFixture(t)
	a := f.constTerm("a")
	b := f.constTerm("b")
	x := f.freeVar(1)

	rule := f.make(t, []*literal.Literal{literal.MkEq(x, b)})
	target := f.make(t, []*literal.Literal{literal.MkEq(a, b)})

	result, ok, err := simplify.ForwardSimplify(f.ctx, []*clause.Clause{rule}, target)
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, result)
}

func TestForwardSimplifyDemodulatesAgainstUnitRule(t *testing.T) {
	f := newFixture(t)
	a := f.constTerm("a")
	b := f.constTerm("b")
	cConst := f.constTerm("c")
	ga := f.app(t, "g", a)
	hga := f.app(t, "h", ga)

	rule := f.make(t, []*literal.Literal{literal.MkEq(ga, b)})
	target := f.make(t, []*literal.Literal{literal.MkNeq(hga, cConst)})

	result, ok, err := simplify.ForwardSimplify(f.ctx, []*clause.Clause{rule}, target)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, result.Literals(), 1)

	hb := f.app(t, "h", b)
	require.True(t, result.Literals()[0].Equal(literal.MkNeq(hb, cConst)))
}

func TestForwardSimplifyReflectsAgainstUnitRule(t *testing.T) {
	f := newFixture(t)
	a := f.constTerm("a")
	b := f.constTerm("b")
	cConst := f.constTerm("c")
	d := f.constTerm("d")

	rule := f.make(t, []*literal.Literal{literal.MkEq(a, b)})
	target := f.make(t, []*literal.Literal{
		literal.MkNeq(a, b),
		literal.MkEq(cConst, d),
	})

	result, ok, err := simplify.ForwardSimplify(f.ctx, []*clause.Clause{rule}, target)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, result.Literals(), 1)
	require.True(t, result.Literals()[0].Equal(literal.MkEq(cConst, d)))
}

func TestForwardSimplifyFixpointWhenNoRuleApplies(t *testing.T) {
	f := newFixture(t)
	a := f.constTerm("a")
	b := f.constTerm("b")
	cConst := f.constTerm("c")
	d := f.constTerm("d")

	unrelated := f.make(t, []*literal.Literal{literal.MkEq(cConst, d)})
	target := f.make(t, []*literal.Literal{literal.MkNeq(a, b)})

	result, ok, err := simplify.ForwardSimplify(f.ctx, []*clause.Clause{unrelated}, target)
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, result.Literals()[0].Equal(literal.MkNeq(a, b)))
}

func TestBackwardSimplifyFindsSubsumedAndRewritable(t *testing.T) {
	f := newFixture(t)
	a := f.constTerm("a")
	b := f.constTerm("b")
	cConst := f.constTerm("c")
	x := f.freeVar(1)
	ga := f.app(t, "g", a)
	hga := f.app(t, "h", ga)

	newRule := f.make(t, []*literal.Literal{literal.MkEq(ga, b)})
	// newRule's single ground literal matches straight into this clause's
	// first literal (identical sides, empty substitution), so newRule
	// subsumes it outright regardless of the unrelated second literal.
	subsumedTarget := f.make(t, []*literal.Literal{literal.MkEq(ga, b), literal.MkEq(x, cConst)})
	rewritableTarget := f.make(t, []*literal.Literal{literal.MkNeq(hga, cConst)})

	subsumed, rewritable, err := simplify.BackwardSimplify(f.ctx,
		[]*clause.Clause{newRule, subsumedTarget, rewritableTarget}, newRule)
	require.NoError(t, err)
	require.Len(t, subsumed, 1)
	require.Equal(t, subsumedTarget.Id(), subsumed[0].Id())
	require.Len(t, rewritable, 1)
	require.Equal(t, rewritableTarget.Id(), rewritable[0].Id())
}

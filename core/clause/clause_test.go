package clause_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zetaprover/zeta/core/clause"
	"github.com/zetaprover/zeta/core/literal"
	"github.com/zetaprover/zeta/core/order"
	"github.com/zetaprover/zeta/core/symbol"
	"github.com/zetaprover/zeta/core/term"
	"github.com/zetaprover/zeta/core/types"
)

type fixture struct {
	symTab  *symbol.Table
	tyTab   *types.Table
	termTab *term.Table
	iType   *types.Type
	prec    *order.Precedence
	kbo     *order.KBO
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	symTab := symbol.NewTable()
	tyTab := types.NewTable()
	iSym := symTab.Intern("$i", 0)
	prec := order.NewPrecedence()
	return &fixture{
		symTab:  symTab,
		tyTab:   tyTab,
		termTab: term.NewTable(),
		iType:   tyTab.Atomic(iSym),
		prec:    prec,
		kbo:     order.NewKBO(prec),
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

func (f *fixture) freeVar(id int) *term.Term {
	return f.termTab.Var(id, f.iType)
}

func TestMakeDropsTrivialAndDuplicateLiterals(t *testing.T) {
	f := newFixture(t)
	a := f.constTerm("a")
	b := f.constTerm("b")

	lits := []*literal.Literal{
		literal.MkEq(a, a),
		literal.MkNeq(a, b),
		literal.MkNeq(a, b),
	}

	table := clause.NewTable()
	c, err := table.Make(f.termTab, f.tyTab, lits, f.kbo, clause.Proof{Rule: "input"}, 0)
	require.NoError(t, err)
	require.Len(t, c.Literals(), 1)
	require.False(t, c.Literals()[0].Sign())
}

func TestMakeRenumbersVariablesDensely(t *testing.T) {
	f := newFixture(t)
	p := f.constTerm("p")
	x5 := f.freeVar(5)
	x9 := f.freeVar(9)

	lits := []*literal.Literal{
		literal.MkEq(x9, p),
		literal.MkNeq(x5, x9),
	}

	table := clause.NewTable()
	c, err := table.Make(f.termTab, f.tyTab, lits, f.kbo, clause.Proof{Rule: "input"}, 0)
	require.NoError(t, err)
	require.Equal(t, 2, c.NumVars())

	seen := make(map[int]bool)
	for _, l := range c.Literals() {
		for _, side := range []*term.Term{l.Lhs(), l.Rhs()} {
			if side.Shape() == term.FreeVar {
				seen[side.VarID()] = true
			}
		}
	}
	require.Len(t, seen, 2)
	for id := range seen {
		require.Less(t, id, 2)
		require.GreaterOrEqual(t, id, 0)
	}
}

func TestMakeInternsAlphaEquivalentClauses(t *testing.T) {
	f := newFixture(t)
	p := f.constTerm("p")
	x1 := f.freeVar(1)
	y7 := f.freeVar(7)

	table := clause.NewTable()
	c1, err := table.Make(f.termTab, f.tyTab, []*literal.Literal{literal.MkEq(x1, p)}, f.kbo, clause.Proof{Rule: "input"}, 0)
	require.NoError(t, err)
	c2, err := table.Make(f.termTab, f.tyTab, []*literal.Literal{literal.MkEq(y7, p)}, f.kbo, clause.Proof{Rule: "input"}, 0)
	require.NoError(t, err)

	require.Same(t, c1, c2)
}

func TestMakeDistinctClausesGetDistinctIds(t *testing.T) {
	f := newFixture(t)
	a := f.constTerm("a")
	b := f.constTerm("b")

	table := clause.NewTable()
	c1, err := table.Make(f.termTab, f.tyTab, []*literal.Literal{literal.MkNeq(a, a)}, f.kbo, clause.Proof{Rule: "input"}, 0)
	require.NoError(t, err)
	c2, err := table.Make(f.termTab, f.tyTab, []*literal.Literal{literal.MkNeq(b, b)}, f.kbo, clause.Proof{Rule: "input"}, 0)
	require.NoError(t, err)

	require.NotSame(t, c1, c2)
	require.NotEqual(t, c1.Id(), c2.Id())
}

func TestMaximalLiteralBitmapMarksNonDominatedLiterals(t *testing.T) {
	f := newFixture(t)
	a := f.constTerm("a")
	b := f.constTerm("b")
	g := f.app(t, "g", a)

	lits := []*literal.Literal{
		literal.MkNeq(g, a),
		literal.MkNeq(a, b),
	}

	table := clause.NewTable()
	c, err := table.Make(f.termTab, f.tyTab, lits, f.kbo, clause.Proof{Rule: "input"}, 0)
	require.NoError(t, err)

	maximal := 0
	for i := range c.Literals() {
		if c.IsMaximal(i) {
			maximal++
		}
	}
	require.GreaterOrEqual(t, maximal, 1)
}

func TestSelectRunsOnceThenFreezes(t *testing.T) {
	f := newFixture(t)
	a := f.constTerm("a")
	b := f.constTerm("b")

	lits := []*literal.Literal{literal.MkNeq(a, b)}
	table := clause.NewTable()
	c, err := table.Make(f.termTab, f.tyTab, lits, f.kbo, clause.Proof{Rule: "input"}, 0)
	require.NoError(t, err)

	err = c.Select(func(cl *clause.Clause) []int { return []int{0} })
	require.NoError(t, err)
	require.True(t, c.IsSelected(0))

	err = c.Select(func(cl *clause.Clause) []int { return nil })
	require.Error(t, err)
}

func TestEmptyClauseIsEmpty(t *testing.T) {
	table := clause.NewTable()
	f := newFixture(t)
	c, err := table.Make(f.termTab, f.tyTab, nil, f.kbo, clause.Proof{Rule: "superposition"}, 0)
	require.NoError(t, err)
	require.True(t, c.IsEmpty())
}

package order_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zetaprover/zeta/core/order"
	"github.com/zetaprover/zeta/core/symbol"
	"github.com/zetaprover/zeta/core/term"
	"github.com/zetaprover/zeta/core/types"
)

type rpoFixture struct {
	symTab  *symbol.Table
	tyTab   *types.Table
	termTab *term.Table
	iType   *types.Type
	prec    *order.Precedence
	rpo     *order.RPO
}

func newRPOFixture(t *testing.T) *rpoFixture {
	t.Helper()
	symTab := symbol.NewTable()
	tyTab := types.NewTable()
	iSym := symTab.Intern("$i", 0)
	prec := order.NewPrecedence()
	return &rpoFixture{
		symTab:  symTab,
		tyTab:   tyTab,
		termTab: term.NewTable(),
		iType:   tyTab.Atomic(iSym),
		prec:    prec,
		rpo:     order.NewRPO(prec),
	}
}

func (f *rpoFixture) sym(name string) *symbol.Symbol {
	return f.symTab.Intern(name, 0)
}

func (f *rpoFixture) app(sym *symbol.Symbol, args ...*term.Term) *term.Term {
	argTypes := make([]*types.Type, len(args))
	for i := range args {
		argTypes[i] = f.iType
	}
	head := f.termTab.Const(sym, f.tyTab.Function(f.iType, argTypes))
	if len(args) == 0 {
		return head
	}
	out, err := f.termTab.App(head, args)
	if err != nil {
		panic(err)
	}
	return out
}

func (f *rpoFixture) v(id int) *term.Term {
	return f.termTab.Var(id, f.iType)
}

func TestRPOHeadDominatesLowerPrecedenceArguments(t *testing.T) {
	f := newRPOFixture(t)
	g := f.sym("g")
	a := f.sym("a")
	f.prec.Append(a, order.Lexicographic)
	f.prec.Append(g, order.Lexicographic)

	// g ranked above a, so g() > a().
	require.Equal(t, order.Greater, f.rpo.Compare(f.app(g), f.app(a)))
}

func TestRPOTermExceedsItsOwnArgument(t *testing.T) {
	f := newRPOFixture(t)
	g := f.sym("g")
	f.prec.Append(g, order.Lexicographic)
	x := f.v(0)
	gx := f.app(g, x)

	require.Equal(t, order.Greater, f.rpo.Compare(gx, x))
}

func TestRPOVariablesIncomparableUnlessEqual(t *testing.T) {
	f := newRPOFixture(t)
	x := f.v(0)
	y := f.v(1)

	require.Equal(t, order.Equal, f.rpo.Compare(x, x))
	require.Equal(t, order.Incomparable, f.rpo.Compare(x, y))
}

func TestRPOSameHeadLexicographicArguments(t *testing.T) {
	f := newRPOFixture(t)
	g := f.sym("g")
	a := f.sym("a")
	b := f.sym("b")
	// g outranks both argument constants, so the same-head
	// lexicographic comparison decides rather than an argument
	// "embedding" the whole other side.
	f.prec.Append(a, order.Lexicographic)
	f.prec.Append(b, order.Lexicographic)
	f.prec.Append(g, order.Lexicographic)

	lhs := f.app(g, f.app(b), f.app(a))
	rhs := f.app(g, f.app(a), f.app(a))
	require.Equal(t, order.Greater, f.rpo.Compare(lhs, rhs))
}

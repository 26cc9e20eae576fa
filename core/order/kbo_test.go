package order_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zetaprover/zeta/core/order"
	"github.com/zetaprover/zeta/core/symbol"
	"github.com/zetaprover/zeta/core/term"
	"github.com/zetaprover/zeta/core/types"
)

type kboFixture struct {
	symTab  *symbol.Table
	tyTab   *types.Table
	termTab *term.Table
	iType   *types.Type
	prec    *order.Precedence
	kbo     *order.KBO
}

func newKBOFixture(t *testing.T) *kboFixture {
	t.Helper()
	symTab := symbol.NewTable()
	tyTab := types.NewTable()
	iSym := symTab.Intern("$i", 0)
	prec := order.NewPrecedence()
	return &kboFixture{
		symTab:  symTab,
		tyTab:   tyTab,
		termTab: term.NewTable(),
		iType:   tyTab.Atomic(iSym),
		prec:    prec,
		kbo:     order.NewKBO(prec),
	}
}

func (f *kboFixture) sym(name string) *symbol.Symbol {
	return f.symTab.Intern(name, 0)
}

func (f *kboFixture) app(sym *symbol.Symbol, args ...*term.Term) *term.Term {
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

func (f *kboFixture) v(id int) *term.Term {
	return f.termTab.Var(id, f.iType)
}

func TestKBOVariableNeverExceedsProperSubterm(t *testing.T) {
	f := newKBOFixture(t)
	g := f.sym("g")
	f.prec.Append(g, order.Lexicographic)
	x := f.v(0)
	gx := f.app(g, x)

	require.Equal(t, order.Greater, f.kbo.Compare(gx, x))
	require.Equal(t, order.Less, f.kbo.Compare(x, gx))
}

func TestKBOHeavierGroundTermWins(t *testing.T) {
	f := newKBOFixture(t)
	a := f.sym("a")
	b := f.sym("b")
	f.prec.Append(a, order.Lexicographic)
	f.prec.Append(b, order.Lexicographic)
	f.kbo.SetWeight(a, 1)
	f.kbo.SetWeight(b, 5)

	require.Equal(t, order.Greater, f.kbo.Compare(f.app(b), f.app(a)))
}

func TestKBOPrecedenceBreaksWeightTie(t *testing.T) {
	f := newKBOFixture(t)
	a := f.sym("a")
	b := f.sym("b")
	f.prec.Append(a, order.Lexicographic)
	f.prec.Append(b, order.Lexicographic)

	require.Equal(t, order.Less, f.kbo.Compare(f.app(a), f.app(b)))
	require.Equal(t, order.Greater, f.kbo.Compare(f.app(b), f.app(a)))
}

func TestKBOLexicographicArgumentTieBreak(t *testing.T) {
	f := newKBOFixture(t)
	g := f.sym("g")
	a := f.sym("a")
	b := f.sym("b")
	f.prec.Append(g, order.Lexicographic)
	f.prec.Append(a, order.Lexicographic)
	f.prec.Append(b, order.Lexicographic)

	// g(a, b) vs g(a, a): equal weight (same head, same first arg),
	// second argument decides via precedence.
	lhs := f.app(g, f.app(a), f.app(b))
	rhs := f.app(g, f.app(a), f.app(a))
	require.Equal(t, order.Greater, f.kbo.Compare(lhs, rhs))
}

func TestKBOIdenticalTermsAreEqual(t *testing.T) {
	f := newKBOFixture(t)
	g := f.sym("g")
	f.prec.Append(g, order.Lexicographic)
	x := f.v(0)
	term1 := f.app(g, x)

	require.Equal(t, order.Equal, f.kbo.Compare(term1, term1))
}

func TestKBOStableUnderSubstitution(t *testing.T) {
	f := newKBOFixture(t)
	g := f.sym("g")
	a := f.sym("a")
	f.prec.Append(g, order.Lexicographic)
	f.prec.Append(a, order.Lexicographic)
	x := f.v(0)
	gx := f.app(g, x)

	// gx > x for any instance of x, so substituting x := a must not
	// flip g(a) < a.
	require.Equal(t, order.Greater, f.kbo.Compare(gx, x))
	ga := f.app(g, f.app(a))
	require.Equal(t, order.Greater, f.kbo.Compare(ga, f.app(a)))
}

package literal_test

import (
	"testing"

	"github.com/stretchr/testify/require"

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

func TestMkEqReflexiveIsTrivial(t *testing.T) {
	f := newFixture(t)
	a := f.constTerm("a")

	lit := literal.MkEq(a, a)
	require.True(t, lit.IsTrivial())
	require.False(t, lit.IsAbsurd())
}

func TestMkNeqReflexiveIsAbsurd(t *testing.T) {
	f := newFixture(t)
	a := f.constTerm("a")

	lit := literal.MkNeq(a, a)
	require.True(t, lit.IsAbsurd())
	require.False(t, lit.IsTrivial())
}

func TestTagComputesAndCaches(t *testing.T) {
	f := newFixture(t)
	a := f.constTerm("a")
	b := f.constTerm("b")
	lit := literal.MkEq(a, b)

	tag := lit.Tag(f.kbo)
	require.Equal(t, f.kbo.Compare(a, b), tag)

	// Invalidating and recomputing with the same ordering must agree.
	lit.InvalidateTag()
	require.Equal(t, tag, lit.Tag(f.kbo))
}

func TestEqualIgnoresSideOrder(t *testing.T) {
	f := newFixture(t)
	a := f.constTerm("a")
	b := f.constTerm("b")

	l1 := literal.MkEq(a, b)
	l2 := literal.MkEq(b, a)
	l3 := literal.MkNeq(a, b)

	require.True(t, l1.Equal(l2))
	require.False(t, l1.Equal(l3))
}

func TestComparePartialNegativeDominatesPositiveOverSameAtoms(t *testing.T) {
	f := newFixture(t)
	a := f.constTerm("a")
	b := f.constTerm("b")

	pos := literal.MkEq(a, b)
	neg := literal.MkNeq(a, b)

	require.Equal(t, order.Greater, literal.ComparePartial(f.kbo, neg, pos))
	require.Equal(t, order.Less, literal.ComparePartial(f.kbo, pos, neg))
}

func TestComparePartialHeavierAtomsWin(t *testing.T) {
	f := newFixture(t)
	a := f.constTerm("a")
	g := f.app(t, "g", a)

	small := literal.MkEq(a, a)
	big := literal.MkEq(g, a)

	require.Equal(t, order.Greater, literal.ComparePartial(f.kbo, big, small))
}

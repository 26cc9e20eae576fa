package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zetaprover/zeta"
	"github.com/zetaprover/zeta/core/term"
)

func newTestParser(t *testing.T) *parser {
	t.Helper()
	p, err := zeta.New(zeta.Default())
	require.NoError(t, err)
	return newParser(p)
}

func TestParseTermConstant(t *testing.T) {
	pr := newTestParser(t)
	tm, err := pr.parseTerm("a")
	require.NoError(t, err)
	require.Equal(t, term.Const, tm.Shape())
}

func TestParseTermVariableIsUppercase(t *testing.T) {
	pr := newTestParser(t)
	x, err := pr.parseTerm("X")
	require.NoError(t, err)
	require.Equal(t, term.FreeVar, x.Shape())

	again, err := pr.parseTerm("X")
	require.NoError(t, err)
	require.Equal(t, x, again, "the same variable name within one clause must reuse the same id")
}

func TestParseTermNestedApplication(t *testing.T) {
	pr := newTestParser(t)
	tm, err := pr.parseTerm("f(g(a), X)")
	require.NoError(t, err)
	require.Equal(t, term.App, tm.Shape())
	require.Len(t, tm.Args(), 2)
	require.Equal(t, term.App, tm.Args()[0].Shape())
	require.Equal(t, term.FreeVar, tm.Args()[1].Shape())
}

func TestParseClausesSplitsOnBlankLines(t *testing.T) {
	pr := newTestParser(t)
	clauses, err := pr.parseClauses("= a b\n\n!= a b\n# a comment\n= c d\n")
	require.NoError(t, err)
	require.Len(t, clauses, 2)
	require.Len(t, clauses[0], 1)
	require.Len(t, clauses[1], 2)
}

func TestParseLineRejectsUnknownSign(t *testing.T) {
	pr := newTestParser(t)
	_, err := pr.parseLine("~ a b")
	require.Error(t, err)
}

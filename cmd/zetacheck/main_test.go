package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunRefutesDirectContradiction(t *testing.T) {
	input := "!= a a\n"
	var out bytes.Buffer
	code := run(nil, strings.NewReader(input), &out)
	require.Equal(t, 0, code)
	require.Contains(t, out.String(), "refutation")
}

func TestRunSaturatesOnUnitEquation(t *testing.T) {
	input := "= a b\n"
	var out bytes.Buffer
	code := run(nil, strings.NewReader(input), &out)
	require.Equal(t, 0, code)
	require.Contains(t, out.String(), "saturated")
}

func TestRunReportsParseErrorOnMalformedLine(t *testing.T) {
	input := "bogus line\n"
	var out bytes.Buffer
	code := run(nil, strings.NewReader(input), &out)
	require.Equal(t, 1, code)
	require.Contains(t, out.String(), "parse error")
}

func TestRunDerivesRefutationFromTransitiveChain(t *testing.T) {
	input := "= a b\n" +
		"\n" +
		"= b c\n" +
		"\n" +
		"!= a c\n"
	var out bytes.Buffer
	code := run([]string{"-max-steps", "1000"}, strings.NewReader(input), &out)
	require.Equal(t, 0, code)
	require.Contains(t, out.String(), "refutation")
}

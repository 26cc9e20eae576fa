package main

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/zetaprover/zeta"
	"github.com/zetaprover/zeta/core/order"
	"github.com/zetaprover/zeta/core/term"
	"github.com/zetaprover/zeta/core/types"
)

// parser builds zeta.EqTriple values from the whitespace-delimited
// literal triple format named in SPEC_FULL.md §10: "sign left right"
// lines, clauses separated by blank lines; a line starting with "#" is
// a comment and does not end the current clause.
// This is not a parser of logic syntax (CNF conversion and TPTP/file
// parsing remain non-goals per spec.md §1); every function symbol is
// uniform-sort ($i -> $i -> ... -> $i), which is enough to exercise
// the core's own literal input format without inventing a type
// system for the CLI.
type parser struct {
	p    *zeta.Prover
	iTy  *types.Type
	vars map[string]int
	next int
}

func newParser(p *zeta.Prover) *parser {
	iSym := p.Symbols().Intern("$i", 0)
	return &parser{p: p, iTy: p.Types().Atomic(iSym), vars: make(map[string]int)}
}

// parseClauses splits src into blank-line-separated clause blocks and
// parses each into a slice of zeta.EqTriple. Lines starting with "#"
// are comments.
func (pr *parser) parseClauses(src string) ([][]zeta.EqTriple, error) {
	var clauses [][]zeta.EqTriple
	var cur []zeta.EqTriple

	flush := func() {
		if len(cur) > 0 {
			clauses = append(clauses, cur)
			cur = nil
		}
	}

	for _, raw := range strings.Split(src, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			pr.vars = make(map[string]int)
			flush()
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}
		triple, err := pr.parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("parsing line %q: %w", line, err)
		}
		cur = append(cur, triple)
	}
	pr.vars = make(map[string]int)
	flush()
	return clauses, nil
}

func (pr *parser) parseLine(line string) (zeta.EqTriple, error) {
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return zeta.EqTriple{}, fmt.Errorf("empty literal")
	}
	var sign bool
	rest := line
	switch fields[0] {
	case "=":
		sign = true
		rest = strings.TrimSpace(strings.TrimPrefix(line, "="))
	case "!=":
		sign = false
		rest = strings.TrimSpace(strings.TrimPrefix(line, "!="))
	default:
		return zeta.EqTriple{}, fmt.Errorf("literal must start with '=' or '!=', got %q", fields[0])
	}

	lhsSrc, rhsSrc, ok := splitTopLevel(rest)
	if !ok {
		return zeta.EqTriple{}, fmt.Errorf("expected two space-separated terms after sign, got %q", rest)
	}
	lhs, err := pr.parseTerm(lhsSrc)
	if err != nil {
		return zeta.EqTriple{}, err
	}
	rhs, err := pr.parseTerm(rhsSrc)
	if err != nil {
		return zeta.EqTriple{}, err
	}
	return zeta.EqTriple{Sign: sign, Lhs: lhs, Rhs: rhs}, nil
}

// splitTopLevel splits s into exactly two terms at the first space
// that is not nested inside parentheses.
func splitTopLevel(s string) (string, string, bool) {
	depth := 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ' ':
			if depth == 0 {
				return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+1:]), true
			}
		}
	}
	return "", "", false
}

// parseTerm parses a single term: NAME or NAME(arg, arg, ...), where a
// NAME starting with an uppercase letter is a per-clause free
// variable and anything else is a constant or function symbol.
func (pr *parser) parseTerm(s string) (*term.Term, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty term")
	}
	name, argsSrc, hasArgs := splitHead(s)
	if name == "" {
		return nil, fmt.Errorf("malformed term %q", s)
	}
	if !hasArgs && isVariableName(name) {
		id, ok := pr.vars[name]
		if !ok {
			id = pr.next
			pr.next++
			pr.vars[name] = id
		}
		return pr.p.Terms().Var(id, pr.iTy), nil
	}

	var args []*term.Term
	if hasArgs {
		for _, argSrc := range splitArgs(argsSrc) {
			arg, err := pr.parseTerm(argSrc)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
	}

	funcTy := pr.iTy
	if len(args) > 0 {
		argTypes := make([]*types.Type, len(args))
		for i := range args {
			argTypes[i] = pr.iTy
		}
		funcTy = pr.p.Types().Function(pr.iTy, argTypes)
	}
	sym := pr.p.Symbols().Intern(name, 0)
	pr.p.Precedence().Append(sym, order.Lexicographic)
	head := pr.p.Terms().Const(sym, funcTy)
	if len(args) == 0 {
		return head, nil
	}
	return pr.p.Terms().App(head, args)
}

func isVariableName(s string) bool {
	return unicode.IsUpper(rune(s[0]))
}

// splitHead splits "f(a, b)" into ("f", "a, b", true), or "a" into
// ("a", "", false).
func splitHead(s string) (string, string, bool) {
	open := strings.IndexByte(s, '(')
	if open < 0 {
		return s, "", false
	}
	if !strings.HasSuffix(s, ")") {
		return "", "", false
	}
	return s[:open], s[open+1 : len(s)-1], true
}

// splitArgs splits a top-level comma list, respecting nested parens.
func splitArgs(s string) []string {
	var args []string
	depth := 0
	start := 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				args = append(args, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	args = append(args, strings.TrimSpace(s[start:]))
	return args
}

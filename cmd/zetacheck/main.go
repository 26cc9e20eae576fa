// Command zetacheck is a tiny ingress convenience over the zeta
// library's literal-triple input format (SPEC_FULL.md §10): it reads
// whitespace-delimited clauses from stdin, drives Prover.Saturate, and
// reports the outcome. It is not a logic-syntax parser — CNF
// conversion and TPTP/file-format parsing remain explicit non-goals of
// the core (spec.md §1) — merely a demonstration of the ingress API,
// the same role the teacher's `_example`/`driver/_example` mains play
// for its own query engine.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/zetaprover/zeta"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

func run(args []string, in io.Reader, out io.Writer) int {
	fs := flag.NewFlagSet("zetacheck", flag.ContinueOnError)
	configPath := fs.String("config", "", "optional YAML config file (internal/config.Config)")
	maxSteps := fs.Int("max-steps", 10000, "given-clause step cap (<=0 for unbounded)")
	verbose := fs.Bool("v", false, "enable trace-level logging")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *verbose {
		logrus.SetLevel(logrus.TraceLevel)
	}

	cfg := zeta.Default()
	if *configPath != "" {
		loaded, err := zeta.Load(*configPath)
		if err != nil {
			fmt.Fprintln(out, "error loading config:", err)
			return 1
		}
		cfg = loaded
	}

	prover, err := zeta.New(cfg)
	if err != nil {
		fmt.Fprintln(out, "error constructing prover:", err)
		return 1
	}

	src, err := io.ReadAll(in)
	if err != nil {
		fmt.Fprintln(out, "error reading input:", err)
		return 1
	}

	pr := newParser(prover)
	clauses, err := pr.parseClauses(string(src))
	if err != nil {
		fmt.Fprintln(out, "parse error:", err)
		return 1
	}
	if err := prover.AddInitialBatch(clauses, "stdin"); err != nil {
		fmt.Fprintln(out, "ingress error:", err)
		return 1
	}

	ctx, cancel := zeta.WithBudget(context.Background(), cfg)
	defer cancel()

	outcome := prover.Saturate(ctx, *maxSteps)
	fmt.Fprintln(out, outcome.Kind)
	switch outcome.Kind {
	case zeta.Refutation:
		fmt.Fprintln(out, "empty clause:", outcome.Empty)
		for _, id := range outcome.Proof.Ancestors(outcome.Empty) {
			step, ok := outcome.Proof.Step(id)
			if !ok {
				continue
			}
			fmt.Fprintf(out, "  clause %d <- %s %v\n", step.Clause, step.Rule, step.Parents)
		}
		return 0
	case zeta.Error:
		fmt.Fprintln(out, "error:", outcome.Err)
		return 1
	case zeta.Timeout:
		return 3
	default:
		return 0
	}
}

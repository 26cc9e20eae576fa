// Package simplify implements the redundancy-elimination layer of
// SPEC_FULL.md §4.L: tautology deletion, clause subsumption, and the
// forward/backward simplification passes that drive demodulation and
// simplify-reflect against a running simplification set.
package simplify

import "github.com/zetaprover/zeta/core/infer"

// Context is core/infer's Context, reused rather than re-bundled: both
// packages need the same term/type/clause tables and ordering, and
// every simplification rule here is implemented by calling straight
// into a core/infer rule once a candidate site is found.
type Context = infer.Context

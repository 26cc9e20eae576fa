// Package types implements the simple polymorphic type system described
// in SPEC_FULL.md §4.B: atomic types built from a symbol and function
// types built from a result type plus an argument-type list. Types are
// hash-consed separately from terms, using the same intern-then-confirm
// idiom (grounded on the teacher's direct mitchellh/hashstructure
// dependency) as core/term and core/clause.
package types

import (
	"strings"
	"sync"

	"github.com/mitchellh/hashstructure"

	protoerrors "github.com/zetaprover/zeta/internal/errors"

	"github.com/zetaprover/zeta/core/symbol"
)

// Kind distinguishes the two Type shapes.
type Kind uint8

const (
	// Atomic is a type built directly from a symbol (e.g. $i, $o).
	Atomic Kind = iota
	// Function is a type of the shape args -> result.
	Function
)

// Type is a hash-consed, immutable type tree. Two Types are equal iff
// they are the same pointer: construction always goes through a Table,
// which performs the hash-cons lookup.
type Type struct {
	kind   Kind
	sym    *symbol.Symbol // set iff kind == Atomic
	result *Type          // set iff kind == Function
	args   []*Type        // set iff kind == Function; never empty post-collapse
	hash   uint64
}

// Kind reports the type's shape.
func (t *Type) Kind() Kind { return t.kind }

// Symbol returns the atomic type's underlying symbol. Panics if
// Kind() != Atomic; callers are expected to switch on Kind first,
// mirroring the core/term "view" contract.
func (t *Type) Symbol() *symbol.Symbol {
	if t.kind != Atomic {
		panic("types: Symbol called on non-atomic type")
	}
	return t.sym
}

// Result returns a function type's result type.
func (t *Type) Result() *Type {
	if t.kind != Function {
		return t
	}
	return t.result
}

// Args returns a function type's argument types. Empty for an atomic
// type.
func (t *Type) Args() []*Type {
	if t.kind != Function {
		return nil
	}
	return t.args
}

// Arity is len(Args()).
func (t *Type) Arity() int { return len(t.Args()) }

// StructuralHash returns the cached structural hash used as the
// hash-cons bucket key.
func (t *Type) StructuralHash() uint64 { return t.hash }

func (t *Type) String() string {
	if t.kind == Atomic {
		return t.sym.Name()
	}
	parts := make([]string, len(t.args))
	for i, a := range t.args {
		parts[i] = a.String()
	}
	return "(" + strings.Join(parts, " * ") + ") > " + t.result.String()
}

// Table hash-conses Types. Private to one saturation context, like
// symbol.Table.
type Table struct {
	mu     sync.Mutex
	byHash map[uint64][]*Type
}

// NewTable returns an empty type table.
func NewTable() *Table {
	return &Table{byHash: make(map[uint64][]*Type)}
}

type typeShape struct {
	Kind   Kind
	SymTag symbol.Tag
	Result uint64
	Args   []uint64
}

// Atomic returns the canonical atomic type over sym.
func (tb *Table) Atomic(sym *symbol.Symbol) *Type {
	shape := typeShape{Kind: Atomic, SymTag: sym.Tag()}
	h, _ := hashstructure.Hash(shape, nil)
	return tb.intern(&Type{kind: Atomic, sym: sym, hash: h}, h)
}

// Function returns the canonical function type over args -> result. A
// zero-length args collapses to result itself, per SPEC_FULL.md §4.B.
func (tb *Table) Function(result *Type, args []*Type) *Type {
	if len(args) == 0 {
		return result
	}
	argHashes := make([]uint64, len(args))
	for i, a := range args {
		argHashes[i] = a.hash
	}
	shape := typeShape{Kind: Function, Result: result.hash, Args: argHashes}
	h, _ := hashstructure.Hash(shape, nil)
	argsCopy := append([]*Type(nil), args...)
	return tb.intern(&Type{kind: Function, result: result, args: argsCopy, hash: h}, h)
}

func (tb *Table) intern(candidate *Type, h uint64) *Type {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	for _, existing := range tb.byHash[h] {
		if typesStructurallyEqual(existing, candidate) {
			return existing
		}
	}
	tb.byHash[h] = append(tb.byHash[h], candidate)
	return candidate
}

func typesStructurallyEqual(a, b *Type) bool {
	if a.kind != b.kind {
		return false
	}
	if a.kind == Atomic {
		return a.sym.Equal(b.sym)
	}
	if a.result != b.result || len(a.args) != len(b.args) {
		return false
	}
	for i := range a.args {
		if a.args[i] != b.args[i] {
			return false
		}
	}
	return true
}

// Apply applies a function type to a list of concrete argument types,
// checking pointwise equality and returning the result type, or
// ErrTypeMismatch.
func (t *Type) Apply(argTypes []*Type) (*Type, error) {
	if t.kind != Function {
		if len(argTypes) == 0 {
			return t, nil
		}
		return nil, protoerrors.ErrTypeMismatch.New("cannot apply non-function type " + t.String())
	}
	if len(argTypes) != len(t.args) {
		return nil, protoerrors.ErrTypeMismatch.New("arity mismatch applying " + t.String())
	}
	for i, want := range t.args {
		if want != argTypes[i] {
			return nil, protoerrors.ErrTypeMismatch.New("argument " + want.String() + " != " + argTypes[i].String())
		}
	}
	return t.result, nil
}

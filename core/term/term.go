// Package term implements the hash-consed first-order (and staged
// higher-order) term representation of SPEC_FULL.md §4.C: bound
// variable, free variable, constant, application, and lambda shapes,
// interned so that equal(a, b) iff a and b are the same pointer.
package term

import (
	"fmt"
	"strings"
	"sync"

	"github.com/mitchellh/hashstructure"

	"github.com/zetaprover/zeta/core/symbol"
	"github.com/zetaprover/zeta/core/types"
	protoerrors "github.com/zetaprover/zeta/internal/errors"
)

// Shape is the tag of a Term's variant.
type Shape uint8

const (
	// BoundVar is a de Bruijn-indexed bound variable.
	BoundVar Shape = iota
	// FreeVar is an integer-identified free (schematic) variable.
	FreeVar
	// Const is a nullary or applied-elsewhere symbol occurrence.
	Const
	// App is a left-flat application of a head term to one or more
	// arguments; the head is never itself an App of the same shape.
	App
	// Lambda is a one-argument abstraction over a body term.
	Lambda
)

func (s Shape) String() string {
	switch s {
	case BoundVar:
		return "bvar"
	case FreeVar:
		return "var"
	case Const:
		return "const"
	case App:
		return "app"
	case Lambda:
		return "lambda"
	default:
		return "?"
	}
}

// Term is a hash-consed node. Every exported constructor on Table
// returns the canonical pointer for its shape and fields; callers never
// construct a Term literal directly.
type Term struct {
	shape Shape

	index int // BoundVar: de Bruijn index

	varID int // FreeVar: integer id

	sym *symbol.Symbol // Const: symbol

	head *Term   // App: head term (never itself an App)
	args []*Term // App: non-empty argument list

	argType *Type_ // Lambda: argument type (alias to avoid clash below)
	body    *Term  // Lambda: body term

	ty       *types.Type
	ground   bool
	maxVarID int // -1 if no free variable occurs
	hash     uint64
}

// Type_ is a local alias so the struct field above reads naturally;
// it is simply *types.Type.
type Type_ = types.Type

// Shape returns the variant tag.
func (t *Term) Shape() Shape { return t.shape }

// Type returns the term's cached result type in O(1).
func (t *Term) Type() *types.Type { return t.ty }

// Ground reports whether the term contains no free variable.
func (t *Term) Ground() bool { return t.ground }

// MaxVarID returns the greatest free-variable id occurring in t, or -1
// if t is ground.
func (t *Term) MaxVarID() int { return t.maxVarID }

// StructuralHash returns the cached structural hash used as the
// hash-cons bucket key. Equal terms (post-interning, pointer-equal)
// always share this hash; it is exposed so core/clause and core/index
// can reuse it without recomputing.
func (t *Term) StructuralHash() uint64 { return t.hash }

// Index returns a BoundVar's de Bruijn index. Panics on any other
// shape.
func (t *Term) Index() int {
	t.mustBe(BoundVar)
	return t.index
}

// VarID returns a FreeVar's integer id. Panics on any other shape.
func (t *Term) VarID() int {
	t.mustBe(FreeVar)
	return t.varID
}

// Symbol returns a Const's symbol. Panics on any other shape.
func (t *Term) Symbol() *symbol.Symbol {
	t.mustBe(Const)
	return t.sym
}

// Head returns an App's head term. Panics on any other shape.
func (t *Term) Head() *Term {
	t.mustBe(App)
	return t.head
}

// Args returns an App's argument list. Panics on any other shape.
func (t *Term) Args() []*Term {
	t.mustBe(App)
	return t.args
}

// ArgType returns a Lambda's argument type. Panics on any other shape.
func (t *Term) ArgType() *types.Type {
	t.mustBe(Lambda)
	return t.argType
}

// Body returns a Lambda's body term. Panics on any other shape.
func (t *Term) Body() *Term {
	t.mustBe(Lambda)
	return t.body
}

func (t *Term) mustBe(s Shape) {
	if t.shape != s {
		panic(fmt.Sprintf("term: expected shape %s, got %s", s, t.shape))
	}
}

func (t *Term) String() string {
	switch t.shape {
	case BoundVar:
		return fmt.Sprintf("#%d", t.index)
	case FreeVar:
		return fmt.Sprintf("X%d", t.varID)
	case Const:
		return t.sym.Name()
	case App:
		parts := make([]string, len(t.args))
		for i, a := range t.args {
			parts[i] = a.String()
		}
		return t.head.String() + "(" + strings.Join(parts, ", ") + ")"
	case Lambda:
		return fmt.Sprintf("\\%s. %s", t.argType.String(), t.body.String())
	default:
		return "?"
	}
}

// Table hash-conses Terms; private to one saturation context.
type Table struct {
	mu     sync.Mutex
	byHash map[uint64][]*Term
}

// NewTable returns an empty term table.
func NewTable() *Table {
	return &Table{byHash: make(map[uint64][]*Term)}
}

// Clear empties the table, per the Design Notes' manual-clear
// requirement for explicit intern tables.
func (tb *Table) Clear() {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	tb.byHash = make(map[uint64][]*Term)
}

type shapeKey struct {
	Shape   Shape
	Index   int
	VarID   int
	SymTag  symbol.Tag
	Head    uint64
	Args    []uint64
	ArgType uint64
	Body    uint64
}

func (tb *Table) intern(candidate *Term, eq func(*Term) bool) *Term {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	for _, existing := range tb.byHash[candidate.hash] {
		if eq(existing) {
			return existing
		}
	}
	tb.byHash[candidate.hash] = append(tb.byHash[candidate.hash], candidate)
	return candidate
}

// BVar returns the canonical bound variable with the given de Bruijn
// index and type.
func (tb *Table) BVar(index int, ty *types.Type) *Term {
	k := shapeKey{Shape: BoundVar, Index: index, ArgType: ty.StructuralHash()}
	h, _ := hashstructure.Hash(k, nil)
	cand := &Term{shape: BoundVar, index: index, ty: ty, ground: true, maxVarID: -1, hash: h}
	return tb.intern(cand, func(e *Term) bool {
		return e.shape == BoundVar && e.index == index && e.ty == ty
	})
}

// Var returns the canonical free variable with the given integer id
// and type.
func (tb *Table) Var(id int, ty *types.Type) *Term {
	k := shapeKey{Shape: FreeVar, VarID: id, ArgType: ty.StructuralHash()}
	h, _ := hashstructure.Hash(k, nil)
	cand := &Term{shape: FreeVar, varID: id, ty: ty, ground: false, maxVarID: id, hash: h}
	return tb.intern(cand, func(e *Term) bool {
		return e.shape == FreeVar && e.varID == id && e.ty == ty
	})
}

// Const returns the canonical constant over sym with the given type.
func (tb *Table) Const(sym *symbol.Symbol, ty *types.Type) *Term {
	k := shapeKey{Shape: Const, SymTag: sym.Tag(), ArgType: ty.StructuralHash()}
	h, _ := hashstructure.Hash(k, nil)
	cand := &Term{shape: Const, sym: sym, ty: ty, ground: true, maxVarID: -1, hash: h}
	return tb.intern(cand, func(e *Term) bool {
		return e.shape == Const && e.sym.Equal(sym) && e.ty == ty
	})
}

// App returns the canonical application of head to args. head must not
// itself be an App (applications are left-flat: a multi-argument
// application is represented as one App node with the full argument
// list, never as nested single-argument Apps). The result type is
// computed from head's function type and cached; a mismatch is
// ErrTypeMismatch.
func (tb *Table) App(head *Term, args []*Term) (*Term, error) {
	if len(args) == 0 {
		return head, nil
	}
	if head.shape == App {
		return nil, protoerrors.ErrTypeMismatch.New("app: head must not itself be an application (left-flat invariant)")
	}
	argTypes := make([]*types.Type, len(args))
	for i, a := range args {
		argTypes[i] = a.ty
	}
	resultTy, err := head.ty.Apply(argTypes)
	if err != nil {
		return nil, err
	}
	ground := head.ground
	maxVar := head.maxVarID
	argHashes := make([]uint64, len(args))
	for i, a := range args {
		ground = ground && a.ground
		if a.maxVarID > maxVar {
			maxVar = a.maxVarID
		}
		argHashes[i] = a.hash
	}
	k := shapeKey{Shape: App, Head: head.hash, Args: argHashes}
	h, _ := hashstructure.Hash(k, nil)
	argsCopy := append([]*Term(nil), args...)
	cand := &Term{shape: App, head: head, args: argsCopy, ty: resultTy, ground: ground, maxVarID: maxVar, hash: h}
	return tb.intern(cand, func(e *Term) bool {
		if e.shape != App || e.head != head || len(e.args) != len(args) {
			return false
		}
		for i := range args {
			if e.args[i] != args[i] {
				return false
			}
		}
		return true
	}), nil
}

// Lambda returns the canonical abstraction over argType with the given
// body. The lambda's type is argType -> body.Type(). tt supplies the
// Function type constructor; callers pass a *types.Table (or anything
// narrower satisfying typeTable).
func (tb *Table) Lambda(argType *types.Type, body *Term, tt typeTable) *Term {
	ty := tt.Function(body.ty, []*types.Type{argType})
	k := shapeKey{Shape: Lambda, ArgType: argType.StructuralHash(), Body: body.hash}
	h, _ := hashstructure.Hash(k, nil)
	cand := &Term{shape: Lambda, argType: argType, body: body, ty: ty, ground: body.ground, maxVarID: body.maxVarID, hash: h}
	return tb.intern(cand, func(e *Term) bool {
		return e.shape == Lambda && e.argType == argType && e.body == body
	})
}

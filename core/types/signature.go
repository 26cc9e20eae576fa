package types

import (
	"sync"

	protoerrors "github.com/zetaprover/zeta/internal/errors"

	"github.com/zetaprover/zeta/core/symbol"
)

// Signature maps symbols to their declared type. A base signature
// contains the built-in connectives and, when the arithmetic extension
// is enabled by a plugin, arithmetic symbols too — the core only
// reserves the slots, per SPEC_FULL.md §4.A.
type Signature struct {
	mu    sync.Mutex
	types map[symbol.Tag]*Type
}

// NewSignature returns an empty signature.
func NewSignature() *Signature {
	return &Signature{types: make(map[symbol.Tag]*Type)}
}

// Declare records sym's type. Declaring the same symbol twice with the
// same type is a no-op; declaring it twice with different types is a
// SignatureConflict.
func (s *Signature) Declare(sym *symbol.Symbol, ty *Type) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.types[sym.Tag()]; ok {
		if existing != ty {
			return protoerrors.ErrSignatureConflict.New(sym.Name())
		}
		return nil
	}
	s.types[sym.Tag()] = ty
	return nil
}

// Lookup returns the declared type of sym, if any.
func (s *Signature) Lookup(sym *symbol.Symbol) (*Type, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ty, ok := s.types[sym.Tag()]
	return ty, ok
}

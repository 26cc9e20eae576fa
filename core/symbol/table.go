// Package symbol interns function-symbol names into small, comparable
// Symbol values. Identity is by an integer Tag: two Symbols are equal
// iff their tags are equal, which makes Symbol usable as a map key and
// gives O(1) equality, hashing, and precedence comparison throughout
// the rest of the core.
package symbol

import (
	"fmt"
	"sync"
)

// Tag uniquely identifies an interned symbol within one Table.
type Tag uint32

// Symbol is a uniquely tagged function-symbol name plus its attribute
// bitset. Symbols are only ever produced by Table.Intern, so every
// Symbol with a given Tag, within a given Table, is the same pointer.
type Symbol struct {
	tag  Tag
	name string
	attr Attr
}

// Tag returns the symbol's unique integer identity.
func (s *Symbol) Tag() Tag { return s.tag }

// Name returns the symbol's interned name.
func (s *Symbol) Name() string { return s.name }

// Attr returns the symbol's attribute bitset.
func (s *Symbol) Attr() Attr { return s.attr }

// Equal reports whether s and other are the same interned symbol.
// Since symbols are only ever handed out by Table.Intern, pointer
// equality and tag equality always agree; both are provided so callers
// that only have tags (e.g. after deserializing a checkpoint) can still
// compare.
func (s *Symbol) Equal(other *Symbol) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.tag == other.tag
}

func (s *Symbol) String() string {
	if s.attr == 0 {
		return s.name
	}
	return fmt.Sprintf("%s[%s]", s.name, s.attr)
}

// Table is an interning table: one fresh Tag per distinct name. A Table
// is private to one saturation context; a process may host several
// independent Tables to run several independent provers, per the
// concurrency model in SPEC_FULL.md §5.
type Table struct {
	mu      sync.Mutex
	byName  map[string]*Symbol
	byTag   []*Symbol
	nextTag Tag
}

// NewTable returns an empty interning table pre-populated with the base
// signature's connective symbols (true, false, not, and, or, imply, eq,
// forall, exists).
func NewTable() *Table {
	t := &Table{byName: make(map[string]*Symbol)}
	for _, b := range baseConnectives {
		t.Intern(b.name, b.attr)
	}
	return t
}

var baseConnectives = []struct {
	name string
	attr Attr
}{
	{"$true", 0},
	{"$false", 0},
	{"$not", 0},
	{"$and", AC},
	{"$or", AC},
	{"$imply", 0},
	{"$eq", Commutative},
	{"$forall", Binder},
	{"$exists", Binder},
}

// Intern returns the canonical Symbol for name, creating it with attr
// if this is the first time name has been seen. A later call with the
// same name returns the original Symbol unchanged: attributes are
// fixed at first interning, matching "intern a name once."
func (t *Table) Intern(name string, attr Attr) *Symbol {
	t.mu.Lock()
	defer t.mu.Unlock()
	if s, ok := t.byName[name]; ok {
		return s
	}
	s := &Symbol{tag: t.nextTag, name: name, attr: attr}
	t.nextTag++
	t.byName[name] = s
	t.byTag = append(t.byTag, s)
	return s
}

// Lookup returns the symbol previously interned under name, if any.
func (t *Table) Lookup(name string) (*Symbol, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.byName[name]
	return s, ok
}

// ByTag returns the symbol with the given tag, if it was interned by
// this table. Used by checkpoint restore to rebuild signatures from
// stable integer handles.
func (t *Table) ByTag(tag Tag) (*Symbol, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if int(tag) < 0 || int(tag) >= len(t.byTag) {
		return nil, false
	}
	return t.byTag[tag], true
}

// Len returns the number of distinct symbols interned so far.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.byTag)
}

// Clear empties the table. Hash-consed weak tables in the original
// system relied on GC eviction; this table instead supports manual
// clear between problems, per the Design Notes' "explicit intern
// tables... the table must support manual clear."
func (t *Table) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.byName = make(map[string]*Symbol)
	t.byTag = nil
	t.nextTag = 0
}

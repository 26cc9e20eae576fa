package subst

// Renaming is a mutable scratch map materialising scoped variables into
// fresh, unscoped variable ids. It is scoped to one inference step: the
// caller allocates one, uses it across every ApplySubst call belonging
// to that inference, then calls Clear before the next inference
// (SPEC_FULL.md §5). Clear drops the cached mappings only: ids
// allocated afterwards continue from where the previous inference
// stopped.
type Renaming struct {
	next  int
	cache map[ScopedVar]int
}

// NewRenaming returns a renaming that allocates fresh ids starting
// strictly above startAbove — the maximum free-variable id of any
// clause participating in the inference that will use it.
func NewRenaming(startAbove int) *Renaming {
	return &Renaming{next: startAbove + 1, cache: make(map[ScopedVar]int)}
}

// Fresh returns the fresh variable id for (varID, scope), allocating
// one on first access and reusing it on subsequent accesses within the
// same renaming's lifetime. Satisfies term.Renamer.
func (r *Renaming) Fresh(varID, scope int) int {
	key := ScopedVar{VarID: varID, Scope: scope}
	if id, ok := r.cache[key]; ok {
		return id
	}
	id := r.next
	r.next++
	r.cache[key] = id
	return id
}

// Clear empties the renaming, ready for reuse by the next inference
// step.
func (r *Renaming) Clear() {
	r.cache = make(map[ScopedVar]int)
}

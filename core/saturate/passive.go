package saturate

import (
	"container/heap"

	"github.com/zetaprover/zeta/core/clause"
)

// PassiveSet is the given-clause loop's priority queue of clauses
// awaiting processing, ordered by weight-plus-penalty with ties broken
// by clause id (SPEC_FULL.md §4.M: "deterministic... priority ties are
// broken by clause id"). container/heap is stdlib and the pack carries
// no ecosystem priority-queue dependency, so there is nothing to wire
// here beyond the ordering itself.
type PassiveSet struct {
	items []*clause.Clause
}

// NewPassiveSet returns an empty passive set.
func NewPassiveSet() *PassiveSet {
	ps := &PassiveSet{}
	heap.Init(ps)
	return ps
}

func priority(c *clause.Clause) int { return c.Weight() + c.Penalty() }

func (p *PassiveSet) Len() int { return len(p.items) }

func (p *PassiveSet) Less(i, j int) bool {
	wi, wj := priority(p.items[i]), priority(p.items[j])
	if wi != wj {
		return wi < wj
	}
	return p.items[i].Id() < p.items[j].Id()
}

func (p *PassiveSet) Swap(i, j int) { p.items[i], p.items[j] = p.items[j], p.items[i] }

func (p *PassiveSet) Push(x interface{}) { p.items = append(p.items, x.(*clause.Clause)) }

func (p *PassiveSet) Pop() interface{} {
	old := p.items
	n := len(old)
	item := old[n-1]
	p.items = old[:n-1]
	return item
}

// Insert pushes c onto the heap. A clause already queued (same id) is
// pushed again rather than deduplicated: heap.Fix-based dedup would
// need an index map the clause table doesn't otherwise require, and a
// duplicate pop of an already-selected clause is skipped by the loop
// when Select reports it frozen.
func (p *PassiveSet) Insert(c *clause.Clause) { heap.Push(p, c) }

// PopBest removes and returns the highest-priority (lowest weight,
// then lowest id) clause, or ok=false if the set is empty.
func (p *PassiveSet) PopBest() (*clause.Clause, bool) {
	if p.Len() == 0 {
		return nil, false
	}
	return heap.Pop(p).(*clause.Clause), true
}

// Remove deletes every queued occurrence of id — used when a clause is
// cancelled because a backward-simplification step made it redundant
// before it was ever popped as the given clause.
func (p *PassiveSet) Remove(id clause.Id) {
	for i := 0; i < p.Len(); {
		if p.items[i].Id() == id {
			heap.Remove(p, i)
			continue
		}
		i++
	}
}

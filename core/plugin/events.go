package plugin

import "github.com/zetaprover/zeta/core/clause"

// EventKind names one of the three clause lifecycle signals
// SPEC_FULL.md §6 requires: added-to-active, removed-from-active, and
// found-empty (refutation).
type EventKind int

const (
	ClauseAddedToActive EventKind = iota
	ClauseRemovedFromActive
	EmptyClauseFound
)

// Event is published on every lifecycle transition. Reason is only
// populated for ClauseRemovedFromActive and names the rule that made
// Clause redundant ("subsumption" or "demodulation-candidate").
type Event struct {
	Kind   EventKind
	Clause *clause.Clause
	Reason string
}

// Listener receives published events synchronously, on the
// saturation loop's own thread.
type Listener func(Event)

// EventBus is an explicit, typed replacement for a mutable list of
// signal callbacks (Design Note: "Callbacks via mutable signal lists →
// explicit event bus") — subscribers register against one of the three
// known EventKinds rather than appending to a single untyped slice
// every publisher and subscriber must agree on the shape of.
type EventBus struct {
	listeners map[EventKind][]Listener
}

// NewEventBus returns an empty bus.
func NewEventBus() *EventBus {
	return &EventBus{listeners: make(map[EventKind][]Listener)}
}

// Subscribe registers fn to run on every future Publish of kind.
func (b *EventBus) Subscribe(kind EventKind, fn Listener) {
	b.listeners[kind] = append(b.listeners[kind], fn)
}

// Publish synchronously invokes every listener subscribed to ev.Kind,
// in subscription order.
func (b *EventBus) Publish(ev Event) {
	for _, fn := range b.listeners[ev.Kind] {
		fn(ev)
	}
}

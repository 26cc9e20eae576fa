package plugin_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zetaprover/zeta/core/clause"
	"github.com/zetaprover/zeta/core/literal"
	"github.com/zetaprover/zeta/core/order"
	"github.com/zetaprover/zeta/core/plugin"
	"github.com/zetaprover/zeta/core/symbol"
	"github.com/zetaprover/zeta/core/term"
	"github.com/zetaprover/zeta/core/types"
)

func TestEventBusDeliversOnlyToSubscribedKind(t *testing.T) {
	bus := plugin.NewEventBus()

	var added, removed, empty int
	bus.Subscribe(plugin.ClauseAddedToActive, func(plugin.Event) { added++ })
	bus.Subscribe(plugin.ClauseRemovedFromActive, func(plugin.Event) { removed++ })
	bus.Subscribe(plugin.EmptyClauseFound, func(plugin.Event) { empty++ })

	bus.Publish(plugin.Event{Kind: plugin.ClauseAddedToActive})
	bus.Publish(plugin.Event{Kind: plugin.ClauseAddedToActive})
	bus.Publish(plugin.Event{Kind: plugin.EmptyClauseFound})

	require.Equal(t, 2, added)
	require.Equal(t, 0, removed)
	require.Equal(t, 1, empty)
}

func TestEventBusMultipleListenersSameKind(t *testing.T) {
	bus := plugin.NewEventBus()
	var calls []int
	bus.Subscribe(plugin.ClauseAddedToActive, func(plugin.Event) { calls = append(calls, 1) })
	bus.Subscribe(plugin.ClauseAddedToActive, func(plugin.Event) { calls = append(calls, 2) })

	bus.Publish(plugin.Event{Kind: plugin.ClauseAddedToActive})
	require.Equal(t, []int{1, 2}, calls)
}

func TestNoopTracerStartStepAndFinish(t *testing.T) {
	symTab := symbol.NewTable()
	tyTab := types.NewTable()
	iSym := symTab.Intern("$i", 0)
	iType := tyTab.Atomic(iSym)
	prec := order.NewPrecedence()
	aSym := symTab.Intern("a", 0)
	prec.Append(aSym, order.Lexicographic)
	kbo := order.NewKBO(prec)
	tb := term.NewTable()
	ct := clause.NewTable()

	a := tb.Const(aSym, iType)
	c, err := ct.Make(tb, tyTab, []*literal.Literal{literal.MkEq(a, a)}, kbo, clause.Proof{Rule: "input"}, 0)
	require.NoError(t, err)

	tr := plugin.NewNoopTracer()
	span := tr.StartStep(context.Background(), 1, c)
	span.Generated("superposition", 3)
	span.Finish()
}

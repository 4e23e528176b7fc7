package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransitionTo_ForwardChain(t *testing.T) {
	chain := []OrderStatus{
		OrderPending,
		OrderConfirmed,
		OrderInProgress,
		OrderOutForDelivery,
		OrderDelivered,
	}

	for i := 0; i < len(chain)-1; i++ {
		assert.True(t, chain[i].CanTransitionTo(chain[i+1]),
			"%s -> %s should be allowed", chain[i], chain[i+1])
	}
}

func TestOrderStatus_CanTransitionTo_NoBackwardMoves(t *testing.T) {
	chain := []OrderStatus{
		OrderPending,
		OrderConfirmed,
		OrderInProgress,
		OrderOutForDelivery,
		OrderDelivered,
	}

	for i := range chain {
		for j := 0; j <= i; j++ {
			assert.False(t, chain[i].CanTransitionTo(chain[j]),
				"%s -> %s should be rejected", chain[i], chain[j])
		}
	}
}

func TestOrderStatus_CanTransitionTo_NoSkips(t *testing.T) {
	assert.False(t, OrderPending.CanTransitionTo(OrderInProgress))
	assert.False(t, OrderPending.CanTransitionTo(OrderDelivered))
	assert.False(t, OrderConfirmed.CanTransitionTo(OrderOutForDelivery))
}

func TestOrderStatus_CanTransitionTo_Cancellation(t *testing.T) {
	for _, s := range []OrderStatus{OrderPending, OrderConfirmed, OrderInProgress, OrderOutForDelivery} {
		assert.True(t, s.CanTransitionTo(OrderCancelled), "%s should be cancellable", s)
	}
}

func TestOrderStatus_CanTransitionTo_TerminalStatesAreFinal(t *testing.T) {
	all := []OrderStatus{
		OrderPending,
		OrderConfirmed,
		OrderInProgress,
		OrderOutForDelivery,
		OrderDelivered,
		OrderCancelled,
	}

	for _, terminal := range []OrderStatus{OrderDelivered, OrderCancelled} {
		assert.True(t, terminal.IsTerminal())
		for _, next := range all {
			assert.False(t, terminal.CanTransitionTo(next),
				"%s -> %s should be rejected", terminal, next)
		}
	}
}

func TestOrderStatus_CanTransitionTo_UnknownStatus(t *testing.T) {
	assert.False(t, OrderPending.CanTransitionTo(OrderStatus("shipped")))
	assert.False(t, OrderStatus("bogus").IsValid())
}

func TestTotalPrice(t *testing.T) {
	items := []OrderItem{
		{Name: "Shirt", Price: 5, Quantity: 2},
		{Name: "Suit", Price: 12.5, Quantity: 1},
	}

	assert.InDelta(t, 22.5, TotalPrice(items), 1e-9)
	assert.Zero(t, TotalPrice(nil))
}

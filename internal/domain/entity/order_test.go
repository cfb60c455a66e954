package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderForwardTransitions(t *testing.T) {
	assert.True(t, CanTransitionOrderStatus(OrderStatusPlaced, OrderStatusConfirmed))
	assert.True(t, CanTransitionOrderStatus(OrderStatusConfirmed, OrderStatusShipped))
	assert.True(t, CanTransitionOrderStatus(OrderStatusShipped, OrderStatusDelivered))

	// No skipping steps.
	assert.False(t, CanTransitionOrderStatus(OrderStatusPlaced, OrderStatusShipped))
	assert.False(t, CanTransitionOrderStatus(OrderStatusPlaced, OrderStatusDelivered))
	assert.False(t, CanTransitionOrderStatus(OrderStatusConfirmed, OrderStatusDelivered))

	// No going backwards.
	assert.False(t, CanTransitionOrderStatus(OrderStatusShipped, OrderStatusConfirmed))
	assert.False(t, CanTransitionOrderStatus(OrderStatusDelivered, OrderStatusShipped))
}

func TestOrderCancelAndDispute(t *testing.T) {
	for _, from := range []string{OrderStatusPlaced, OrderStatusConfirmed, OrderStatusShipped} {
		assert.True(t, CanTransitionOrderStatus(from, OrderStatusCancelled), "cancel from %s", from)
		assert.True(t, CanTransitionOrderStatus(from, OrderStatusDisputed), "dispute from %s", from)
	}

	// Terminal states stay terminal.
	assert.False(t, CanTransitionOrderStatus(OrderStatusDelivered, OrderStatusCancelled))
	assert.False(t, CanTransitionOrderStatus(OrderStatusCancelled, OrderStatusDisputed))
	assert.False(t, CanTransitionOrderStatus(OrderStatusCancelled, OrderStatusCancelled))

	// A disputed order is resolved out of band, not re-disputed or cancelled.
	assert.False(t, CanTransitionOrderStatus(OrderStatusDisputed, OrderStatusDisputed))
	assert.False(t, CanTransitionOrderStatus(OrderStatusDisputed, OrderStatusCancelled))
}

func TestIsTerminalOrderStatus(t *testing.T) {
	assert.True(t, IsTerminalOrderStatus(OrderStatusDelivered))
	assert.True(t, IsTerminalOrderStatus(OrderStatusCancelled))
	assert.False(t, IsTerminalOrderStatus(OrderStatusPlaced))
	assert.False(t, IsTerminalOrderStatus(OrderStatusDisputed))
}

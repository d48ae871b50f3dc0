package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition_HappyPath(t *testing.T) {
	path := []OrderStatus{
		OrderStatusPending,
		OrderStatusConfirmed,
		OrderStatusPreparing,
		OrderStatusReadyForPickup,
		OrderStatusDriverAssigned,
		OrderStatusPickedUp,
		OrderStatusDelivered,
	}
	for i := 0; i < len(path)-1; i++ {
		assert.True(t, CanTransition(path[i], path[i+1]),
			"%s -> %s should be allowed", path[i], path[i+1])
	}
}

func TestCanTransition_NoSkipping(t *testing.T) {
	assert.False(t, CanTransition(OrderStatusPending, OrderStatusPreparing))
	assert.False(t, CanTransition(OrderStatusConfirmed, OrderStatusReadyForPickup))
	assert.False(t, CanTransition(OrderStatusPreparing, OrderStatusDelivered))
}

func TestCanTransition_NoGoingBack(t *testing.T) {
	assert.False(t, CanTransition(OrderStatusConfirmed, OrderStatusPending))
	assert.False(t, CanTransition(OrderStatusPickedUp, OrderStatusDriverAssigned))
}

func TestCanTransition_CancelFromAnyNonTerminal(t *testing.T) {
	for _, from := range []OrderStatus{
		OrderStatusPending,
		OrderStatusConfirmed,
		OrderStatusPreparing,
		OrderStatusReadyForPickup,
		OrderStatusDriverAssigned,
		OrderStatusPickedUp,
	} {
		assert.True(t, CanTransition(from, OrderStatusCancelled),
			"%s -> cancelled should be allowed", from)
	}
}

func TestCanTransition_TerminalStatesAreFinal(t *testing.T) {
	all := []OrderStatus{
		OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusReadyForPickup, OrderStatusDriverAssigned,
		OrderStatusPickedUp, OrderStatusDelivered, OrderStatusCancelled,
	}
	for _, to := range all {
		assert.False(t, CanTransition(OrderStatusDelivered, to),
			"delivered -> %s should be rejected", to)
		assert.False(t, CanTransition(OrderStatusCancelled, to),
			"cancelled -> %s should be rejected", to)
	}
}

func TestOrderStatus_IsValid(t *testing.T) {
	assert.True(t, OrderStatusPreparing.IsValid())
	assert.False(t, OrderStatus("in_flight").IsValid())
}

func TestOrder_TotalsConsistent(t *testing.T) {
	order := &Order{
		Items: []OrderItem{
			{Name: "Doro Wat", UnitPrice: 250, Quantity: 2},
			{Name: "Injera", UnitPrice: 15, Quantity: 4},
		},
		DeliveryFee: 60,
		Tax:         84,
		Total:       704,
	}
	assert.True(t, order.TotalsConsistent())

	order.Total = 700
	assert.False(t, order.TotalsConsistent())
}

func TestOrder_IsCashOnDelivery(t *testing.T) {
	assert.True(t, (&Order{PaymentMethod: PaymentCashOnDelivery}).IsCashOnDelivery())
	assert.False(t, (&Order{PaymentMethod: PaymentWallet}).IsCashOnDelivery())
}

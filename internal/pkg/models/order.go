package models

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the status of an order in its lifecycle
type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusConfirmed      OrderStatus = "confirmed"
	OrderStatusPreparing      OrderStatus = "preparing"
	OrderStatusReadyForPickup OrderStatus = "ready_for_pickup"
	OrderStatusDriverAssigned OrderStatus = "driver_assigned"
	OrderStatusPickedUp       OrderStatus = "picked_up"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusCancelled      OrderStatus = "cancelled"
)

// orderTransitions is the explicit lifecycle graph. Cancellation is handled
// separately: it is reachable from every state except the terminal ones.
var orderTransitions = map[OrderStatus]OrderStatus{
	OrderStatusPending:        OrderStatusConfirmed,
	OrderStatusConfirmed:      OrderStatusPreparing,
	OrderStatusPreparing:      OrderStatusReadyForPickup,
	OrderStatusReadyForPickup: OrderStatusDriverAssigned,
	OrderStatusDriverAssigned: OrderStatusPickedUp,
	OrderStatusPickedUp:       OrderStatusDelivered,
}

// IsTerminal reports whether no further transition is possible
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// IsValid reports whether s is a known status value
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusReadyForPickup, OrderStatusDriverAssigned,
		OrderStatusPickedUp, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// CanTransition reports whether an order may move from -> to. The lifecycle
// is strictly monotonic along the graph; cancelled is the escape hatch from
// any non-terminal state.
func CanTransition(from, to OrderStatus) bool {
	if from.IsTerminal() {
		return false
	}
	if to == OrderStatusCancelled {
		return true
	}
	return orderTransitions[from] == to
}

// AssignableStatuses are the states in which an unassigned order is a
// candidate for driver assignment.
var AssignableStatuses = []OrderStatus{OrderStatusPreparing, OrderStatusReadyForPickup}

// PaymentMethod distinguishes cash-on-delivery, which interacts with the
// driver credit ledger, from prepaid methods which do not.
type PaymentMethod string

const (
	PaymentCashOnDelivery PaymentMethod = "cash_on_delivery"
	PaymentWallet         PaymentMethod = "wallet"
	PaymentCard           PaymentMethod = "card"
)

// OrderItem is a single line of an order
type OrderItem struct {
	Name           string   `json:"name" db:"name"`
	UnitPrice      float64  `json:"unit_price" db:"unit_price"`
	Quantity       int      `json:"quantity" db:"quantity"`
	Customizations []string `json:"customizations,omitempty"`
}

// LineTotal returns unit price times quantity
func (i OrderItem) LineTotal() float64 {
	return i.UnitPrice * float64(i.Quantity)
}

// Order represents a customer order
type Order struct {
	ID              uuid.UUID     `json:"id" db:"id"`
	OrderNumber     string        `json:"order_number" db:"order_number"`
	CustomerID      uuid.UUID     `json:"customer_id" db:"customer_id"`
	RestaurantID    uuid.UUID     `json:"restaurant_id" db:"restaurant_id"`
	DriverID        *uuid.UUID    `json:"driver_id,omitempty" db:"driver_id"`
	Status          OrderStatus   `json:"status" db:"status"`
	Items           []OrderItem   `json:"items"`
	DeliveryFee     float64       `json:"delivery_fee" db:"delivery_fee"`
	Tax             float64       `json:"tax" db:"tax"`
	Total           float64       `json:"total" db:"total"`
	PaymentMethod   PaymentMethod `json:"payment_method" db:"payment_method"`
	DeliveryAddress string        `json:"delivery_address" db:"delivery_address"`
	NeedsSettlement bool          `json:"needs_settlement" db:"needs_settlement"`
	CreatedAt       time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at" db:"updated_at"`
}

// IsCashOnDelivery reports whether the order settles through driver credit
func (o *Order) IsCashOnDelivery() bool {
	return o.PaymentMethod == PaymentCashOnDelivery
}

// TotalsConsistent checks that total equals the sum of line totals plus
// delivery fee and tax, within a half-santim tolerance.
func (o *Order) TotalsConsistent() bool {
	sum := o.DeliveryFee + o.Tax
	for _, item := range o.Items {
		sum += item.LineTotal()
	}
	return math.Abs(sum-o.Total) < 0.005
}

// OrderCreate is the checkout payload that produces an Order in pending
type OrderCreate struct {
	CustomerID      uuid.UUID     `json:"customer_id"`
	RestaurantID    uuid.UUID     `json:"restaurant_id"`
	Items           []OrderItem   `json:"items"`
	DeliveryFee     float64       `json:"delivery_fee"`
	Tax             float64       `json:"tax"`
	Total           float64       `json:"total"`
	PaymentMethod   PaymentMethod `json:"payment_method"`
	DeliveryAddress string        `json:"delivery_address"`
}

// TransitionRequest advances an order to a target status
type TransitionRequest struct {
	TargetStatus OrderStatus `json:"target_status"`
}

// Assignment is the result of binding a driver to an order
type Assignment struct {
	OrderID    uuid.UUID `json:"order_id"`
	DriverID   uuid.UUID `json:"driver_id"`
	AssignedAt time.Time `json:"assigned_at"`
}

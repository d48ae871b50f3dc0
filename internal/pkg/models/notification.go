package models

import (
	"time"

	"github.com/google/uuid"
)

// Event payloads published to NATS and fanned out to dashboard clients.
// Transport is NATS plus the WebSocket bridge; these are the wire shapes.

// DriverRegisteredEvent announces a new driver awaiting approval
type DriverRegisteredEvent struct {
	DriverID    uuid.UUID `json:"driver_id"`
	FullName    string    `json:"full_name"`
	PhoneNumber string    `json:"phone_number"`
	CreatedAt   time.Time `json:"created_at"`
}

// DriverStatusEvent announces approval / online / availability changes
type DriverStatusEvent struct {
	DriverID    uuid.UUID `json:"driver_id"`
	IsApproved  bool      `json:"is_approved"`
	IsOnline    bool      `json:"is_online"`
	IsAvailable bool      `json:"is_available"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DriverLocationEvent carries a driver location report
type DriverLocationEvent struct {
	DriverID  uuid.UUID `json:"driver_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Geohash   string    `json:"geohash"`
	Timestamp time.Time `json:"timestamp"`
}

// CreditDecisionEvent announces an approve/reject decision on a credit request
type CreditDecisionEvent struct {
	RequestID  uuid.UUID           `json:"request_id"`
	DriverID   uuid.UUID           `json:"driver_id"`
	Amount     float64             `json:"amount"`
	Status     CreditRequestStatus `json:"status"`
	Reason     string              `json:"reason,omitempty"`
	NewBalance float64             `json:"new_balance,omitempty"`
	DecidedBy  uuid.UUID           `json:"decided_by"`
	DecidedAt  time.Time           `json:"decided_at"`
}

// CreditReconcileEvent flags a post-delivery debit that could not be applied
// and needs manual reconciliation
type CreditReconcileEvent struct {
	OrderID   uuid.UUID `json:"order_id"`
	DriverID  uuid.UUID `json:"driver_id"`
	Amount    float64   `json:"amount"`
	Reason    string    `json:"reason"`
	Timestamp time.Time `json:"timestamp"`
}

// OrderEvent announces order creation and status changes. ActorID is the
// admin, driver or customer who caused the change; system-driven changes
// (the assignment sweep) carry the zero UUID and omit the field.
type OrderEvent struct {
	OrderID      uuid.UUID   `json:"order_id"`
	OrderNumber  string      `json:"order_number"`
	RestaurantID uuid.UUID   `json:"restaurant_id"`
	CustomerID   uuid.UUID   `json:"customer_id"`
	DriverID     *uuid.UUID  `json:"driver_id,omitempty"`
	Status       OrderStatus `json:"status"`
	Total        float64     `json:"total"`
	ActorID      uuid.UUID   `json:"actor_id,omitempty"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// OrderAssignedEvent announces a driver binding
type OrderAssignedEvent struct {
	OrderID     uuid.UUID `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	DriverID    uuid.UUID `json:"driver_id"`
	AssignedAt  time.Time `json:"assigned_at"`
}

// RestaurantEvent announces restaurant onboarding and approval changes
type RestaurantEvent struct {
	RestaurantID uuid.UUID `json:"restaurant_id"`
	Name         string    `json:"name"`
	IsApproved   bool      `json:"is_approved"`
	IsActive     bool      `json:"is_active"`
	UpdatedAt    time.Time `json:"updated_at"`
}

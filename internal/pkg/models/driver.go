package models

import (
	"time"

	"github.com/google/uuid"
)

// Driver represents a delivery driver in the marketplace.
//
// A driver can only be assigned to an order when IsApproved, IsOnline and
// IsAvailable are all true. CreditBalance is denominated in ETB and never
// goes negative: deductions are guarded at the storage layer.
type Driver struct {
	ID            uuid.UUID `json:"id" db:"id"`
	PhoneNumber   string    `json:"phone_number" db:"phone_number"`
	FullName      string    `json:"full_name" db:"full_name"`
	VehicleType   string    `json:"vehicle_type" db:"vehicle_type"`
	VehiclePlate  string    `json:"vehicle_plate" db:"vehicle_plate"`
	IsApproved    bool      `json:"is_approved" db:"is_approved"`
	IsOnline      bool      `json:"is_online" db:"is_online"`
	IsAvailable   bool      `json:"is_available" db:"is_available"`
	CreditBalance float64   `json:"credit_balance" db:"credit_balance"`
	LastOnlineAt  time.Time `json:"last_online_at" db:"last_online_at"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// CanTakeOrders reports whether the driver is assignable at all,
// independent of any balance requirement.
func (d *Driver) CanTakeOrders() bool {
	return d.IsApproved && d.IsOnline && d.IsAvailable
}

// DriverRegistration is the payload for driver onboarding
type DriverRegistration struct {
	PhoneNumber  string `json:"phone_number"`
	FullName     string `json:"full_name"`
	VehicleType  string `json:"vehicle_type"`
	VehiclePlate string `json:"vehicle_plate"`
}

// DriverStatusRequest toggles the online or available flag
type DriverStatusRequest struct {
	IsOnline    *bool `json:"is_online,omitempty"`
	IsAvailable *bool `json:"is_available,omitempty"`
}

// DriverLocationRequest is a driver location report
type DriverLocationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Restaurant represents a restaurant on the marketplace. It only appears in
// customer listings and accepts orders once IsApproved and IsActive are both
// true.
type Restaurant struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	PhoneNumber string    `json:"phone_number" db:"phone_number"`
	Email       string    `json:"email" db:"email"`
	Address     string    `json:"address" db:"address"`
	Latitude    float64   `json:"latitude" db:"latitude"`
	Longitude   float64   `json:"longitude" db:"longitude"`
	IsApproved  bool      `json:"is_approved" db:"is_approved"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// AcceptsOrders reports whether the restaurant passes both approval gates
func (r *Restaurant) AcceptsOrders() bool {
	return r.IsApproved && r.IsActive
}

// RestaurantOnboarding is the superadmin-driven creation payload
type RestaurantOnboarding struct {
	Name        string  `json:"name"`
	PhoneNumber string  `json:"phone_number"`
	Email       string  `json:"email"`
	Address     string  `json:"address"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Admin roles
const (
	RoleSuperAdmin      = "superadmin"
	RoleRestaurantAdmin = "restaurant_admin"
	RoleDriver          = "driver"
)

// Admin represents a dashboard operator account
type Admin struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	Email        string     `json:"email" db:"email"`
	FullName     string     `json:"full_name" db:"full_name"`
	PasswordHash string     `json:"-" db:"password_hash"`
	Role         string     `json:"role" db:"role"`
	RestaurantID *uuid.UUID `json:"restaurant_id,omitempty" db:"restaurant_id"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

// LoginRequest is the dashboard login payload
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the issued token and basic profile
type LoginResponse struct {
	Token    string    `json:"token"`
	AdminID  uuid.UUID `json:"admin_id"`
	Role     string    `json:"role"`
	FullName string    `json:"full_name"`
}

// AdminCreate is the superadmin payload for creating operator accounts
type AdminCreate struct {
	Email        string     `json:"email"`
	FullName     string     `json:"full_name"`
	Password     string     `json:"password"`
	Role         string     `json:"role"`
	RestaurantID *uuid.UUID `json:"restaurant_id,omitempty"`
}

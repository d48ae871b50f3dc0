package models

import (
	"time"

	"github.com/google/uuid"
)

// CreditRequestStatus represents the decision state of a credit top-up request
type CreditRequestStatus string

const (
	CreditRequestPending  CreditRequestStatus = "pending"
	CreditRequestApproved CreditRequestStatus = "approved"
	CreditRequestRejected CreditRequestStatus = "rejected"
)

// CreditRequest is a driver-submitted top-up request awaiting a single admin
// decision. A driver has at most one pending request at any time; the
// constraint is enforced by a partial unique index on (driver_id) where
// status = 'pending'. A request is immutable once decided.
type CreditRequest struct {
	ID              uuid.UUID           `json:"id" db:"id"`
	DriverID        uuid.UUID           `json:"driver_id" db:"driver_id"`
	Amount          float64             `json:"amount" db:"amount"`
	ProofImageURL   string              `json:"proof_image_url" db:"proof_image_url"`
	Status          CreditRequestStatus `json:"status" db:"status"`
	DecidedBy       *uuid.UUID          `json:"decided_by,omitempty" db:"decided_by"`
	RejectionReason string              `json:"rejection_reason,omitempty" db:"rejection_reason"`
	CreatedAt       time.Time           `json:"created_at" db:"created_at"`
	DecidedAt       *time.Time          `json:"decided_at,omitempty" db:"decided_at"`
}

// CreditRequestSubmit is the driver-facing submission payload
type CreditRequestSubmit struct {
	Amount        float64 `json:"amount"`
	ProofImageURL string  `json:"proof_image_url"`
}

// CreditStatus is the read-only composite view polled by the driver app:
// the current pending request (if any) plus the running balance.
type CreditStatus struct {
	DriverID       uuid.UUID      `json:"driver_id"`
	CreditBalance  float64        `json:"credit_balance"`
	PendingRequest *CreditRequest `json:"pending_request,omitempty"`
}

// BalanceAdjustment is a manual admin credit or debit
type BalanceAdjustment struct {
	Amount float64 `json:"amount"`
	Note   string  `json:"note,omitempty"`
}

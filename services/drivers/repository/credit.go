package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/gebeta-delivery/gebeta/internal/pkg/apperrors"
	"github.com/gebeta-delivery/gebeta/internal/pkg/models"
)

// Postgres error codes checked against the credit_requests constraints
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// CreditRepo implements the drivers.CreditRepo interface. The one-pending-
// request-per-driver invariant lives in the credit_requests_pending_uniq
// partial unique index, not in application checks.
type CreditRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewCreditRepository creates a new credit repository
func NewCreditRepository(cfg *models.Config, db *sqlx.DB) *CreditRepo {
	return &CreditRepo{cfg: cfg, db: db}
}

// CreditBalance increases the driver balance and returns the new value
func (r *CreditRepo) CreditBalance(ctx context.Context, driverID uuid.UUID, amount float64) (float64, error) {
	query := `
		UPDATE drivers
		SET credit_balance = credit_balance + $2, updated_at = $3
		WHERE id = $1
		RETURNING credit_balance
	`
	var balance float64
	err := r.db.QueryRowContext(ctx, query, driverID, amount, time.Now()).Scan(&balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, apperrors.ErrDriverNotFound
		}
		return 0, fmt.Errorf("failed to credit balance: %w", err)
	}
	return balance, nil
}

// DebitBalance decreases the driver balance, guarded so the balance can
// never go negative. The balance check and the subtraction are one UPDATE.
func (r *CreditRepo) DebitBalance(ctx context.Context, driverID uuid.UUID, amount float64) (float64, error) {
	query := `
		UPDATE drivers
		SET credit_balance = credit_balance - $2, updated_at = $3
		WHERE id = $1 AND credit_balance >= $2
		RETURNING credit_balance
	`
	var balance float64
	err := r.db.QueryRowContext(ctx, query, driverID, amount, time.Now()).Scan(&balance)
	if err == nil {
		return balance, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("failed to debit balance: %w", err)
	}

	// Distinguish a missing driver from an insufficient balance
	if _, err := r.GetBalance(ctx, driverID); err != nil {
		return 0, err
	}
	return 0, apperrors.ErrInsufficientBalance
}

// GetBalance returns the current balance, side-effect free
func (r *CreditRepo) GetBalance(ctx context.Context, driverID uuid.UUID) (float64, error) {
	var balance float64
	err := r.db.GetContext(ctx, &balance, `SELECT credit_balance FROM drivers WHERE id = $1`, driverID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, apperrors.ErrDriverNotFound
		}
		return 0, fmt.Errorf("failed to get balance: %w", err)
	}
	return balance, nil
}

// CreateRequest inserts a pending credit request. A concurrent second
// submission loses against the partial unique index and surfaces as
// ErrRequestAlreadyPending.
func (r *CreditRepo) CreateRequest(ctx context.Context, request *models.CreditRequest) error {
	query := `
		INSERT INTO credit_requests (
			id, driver_id, amount, proof_image_url, status, created_at
		) VALUES (
			:id, :driver_id, :amount, :proof_image_url, :status, :created_at
		)
	`
	_, err := r.db.NamedExecContext(ctx, query, request)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgUniqueViolation:
				return apperrors.ErrRequestAlreadyPending
			case pgForeignKeyViolation:
				return apperrors.ErrDriverNotFound
			}
		}
		return fmt.Errorf("failed to insert credit request: %w", err)
	}
	return nil
}

// GetRequest retrieves a credit request by id
func (r *CreditRepo) GetRequest(ctx context.Context, id uuid.UUID) (*models.CreditRequest, error) {
	var request models.CreditRequest
	err := r.db.GetContext(ctx, &request, `SELECT * FROM credit_requests WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to get credit request: %w", err)
	}
	return &request, nil
}

// GetPendingRequest returns the driver's open request, or nil when none
func (r *CreditRepo) GetPendingRequest(ctx context.Context, driverID uuid.UUID) (*models.CreditRequest, error) {
	var request models.CreditRequest
	query := `SELECT * FROM credit_requests WHERE driver_id = $1 AND status = $2`
	err := r.db.GetContext(ctx, &request, query, driverID, models.CreditRequestPending)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get pending credit request: %w", err)
	}
	return &request, nil
}

// ListPendingRequests lists all open requests, oldest first
func (r *CreditRepo) ListPendingRequests(ctx context.Context) ([]models.CreditRequest, error) {
	var out []models.CreditRequest
	query := `SELECT * FROM credit_requests WHERE status = $1 ORDER BY created_at ASC`
	if err := r.db.SelectContext(ctx, &out, query, models.CreditRequestPending); err != nil {
		return nil, fmt.Errorf("failed to list pending credit requests: %w", err)
	}
	return out, nil
}

// DecideRequest closes a pending request with a status-guarded update, so a
// concurrent approve and reject can never both win.
func (r *CreditRepo) DecideRequest(ctx context.Context, id uuid.UUID, status models.CreditRequestStatus, adminID uuid.UUID, reason string) (bool, error) {
	query := `
		UPDATE credit_requests
		SET status = $2, decided_by = $3, rejection_reason = $4, decided_at = $5
		WHERE id = $1 AND status = $6
	`
	res, err := r.db.ExecContext(ctx, query, id, status, adminID, reason, time.Now(), models.CreditRequestPending)
	if err != nil {
		return false, fmt.Errorf("failed to decide credit request: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return affected == 1, nil
}

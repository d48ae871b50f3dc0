package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/gebeta-delivery/gebeta/internal/pkg/apperrors"
	"github.com/gebeta-delivery/gebeta/internal/pkg/database"
	"github.com/gebeta-delivery/gebeta/internal/pkg/models"
)

// DriverRepo implements the drivers.DriverRepo interface over Postgres and a
// Redis location pool
type DriverRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewDriverRepository creates a new driver repository
func NewDriverRepository(
	cfg *models.Config,
	db *sqlx.DB,
	redisClient *database.RedisClient,
) *DriverRepo {
	return &DriverRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}

// CreateDriver inserts a new driver in pending-approval state
func (r *DriverRepo) CreateDriver(ctx context.Context, driver *models.Driver) error {
	query := `
		INSERT INTO drivers (
			id, phone_number, full_name, vehicle_type, vehicle_plate,
			is_approved, is_online, is_available, credit_balance,
			last_online_at, created_at, updated_at
		) VALUES (
			:id, :phone_number, :full_name, :vehicle_type, :vehicle_plate,
			:is_approved, :is_online, :is_available, :credit_balance,
			:last_online_at, :created_at, :updated_at
		)
	`
	if _, err := r.db.NamedExecContext(ctx, query, driver); err != nil {
		return fmt.Errorf("failed to insert driver: %w", err)
	}
	return nil
}

// GetDriver retrieves a driver by id
func (r *DriverRepo) GetDriver(ctx context.Context, id uuid.UUID) (*models.Driver, error) {
	query := `SELECT * FROM drivers WHERE id = $1`

	var driver models.Driver
	if err := r.db.GetContext(ctx, &driver, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrDriverNotFound
		}
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}
	return &driver, nil
}

// ListPendingApproval lists drivers awaiting onboarding approval
func (r *DriverRepo) ListPendingApproval(ctx context.Context) ([]models.Driver, error) {
	query := `SELECT * FROM drivers WHERE is_approved = FALSE ORDER BY created_at ASC`

	var out []models.Driver
	if err := r.db.SelectContext(ctx, &out, query); err != nil {
		return nil, fmt.Errorf("failed to list pending drivers: %w", err)
	}
	return out, nil
}

// SetApproval flips the onboarding approval gate
func (r *DriverRepo) SetApproval(ctx context.Context, id uuid.UUID, approved bool) error {
	query := `UPDATE drivers SET is_approved = $2, updated_at = $3 WHERE id = $1`
	return r.execExpectingDriver(ctx, query, id, approved, time.Now())
}

// SetOnline updates the online flag; going offline also clears availability
// so an offline driver can never be picked by the assignment policy.
func (r *DriverRepo) SetOnline(ctx context.Context, id uuid.UUID, online bool) error {
	query := `
		UPDATE drivers
		SET is_online = $2,
		    is_available = CASE WHEN $2 THEN is_available ELSE FALSE END,
		    last_online_at = CASE WHEN $2 THEN $3 ELSE last_online_at END,
		    updated_at = $3
		WHERE id = $1
	`
	return r.execExpectingDriver(ctx, query, id, online, time.Now())
}

// SetAvailable updates the availability flag
func (r *DriverRepo) SetAvailable(ctx context.Context, id uuid.UUID, available bool) error {
	query := `UPDATE drivers SET is_available = $2, updated_at = $3 WHERE id = $1`
	return r.execExpectingDriver(ctx, query, id, available, time.Now())
}

// DeleteDriver removes a driver record (explicit admin action only)
func (r *DriverRepo) DeleteDriver(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM drivers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete driver: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrDriverNotFound
	}
	return nil
}

// ReserveDriver atomically claims the driver for an assignment. The guard
// re-checks every eligibility flag so two orders can never claim the same
// driver: only one UPDATE sees is_available = TRUE.
func (r *DriverRepo) ReserveDriver(ctx context.Context, id uuid.UUID, minBalance float64) (bool, error) {
	query := `
		UPDATE drivers
		SET is_available = FALSE, updated_at = $3
		WHERE id = $1
		  AND is_approved = TRUE
		  AND is_online = TRUE
		  AND is_available = TRUE
		  AND credit_balance >= $2
	`
	res, err := r.db.ExecContext(ctx, query, id, minBalance, time.Now())
	if err != nil {
		return false, fmt.Errorf("failed to reserve driver: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return affected == 1, nil
}

// ReleaseDriver returns the driver to the available pool after an order
// reaches a terminal state
func (r *DriverRepo) ReleaseDriver(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE drivers SET is_available = TRUE, updated_at = $2 WHERE id = $1 AND is_online = TRUE`
	if _, err := r.db.ExecContext(ctx, query, id, time.Now()); err != nil {
		return fmt.Errorf("failed to release driver: %w", err)
	}
	return nil
}

// CandidatesByLastOnline lists assignable drivers with the required balance,
// earliest last_online_at first
func (r *DriverRepo) CandidatesByLastOnline(ctx context.Context, minBalance float64, limit int) ([]models.Driver, error) {
	query := `
		SELECT * FROM drivers
		WHERE is_approved = TRUE AND is_online = TRUE AND is_available = TRUE
		  AND credit_balance >= $1
		ORDER BY last_online_at ASC
		LIMIT $2
	`
	var out []models.Driver
	if err := r.db.SelectContext(ctx, &out, query, minBalance, limit); err != nil {
		return nil, fmt.Errorf("failed to list assignable drivers: %w", err)
	}
	return out, nil
}

func (r *DriverRepo) execExpectingDriver(ctx context.Context, query string, args ...interface{}) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update driver: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrDriverNotFound
	}
	return nil
}

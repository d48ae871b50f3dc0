package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/gebeta-delivery/gebeta/internal/pkg/apperrors"
	"github.com/gebeta-delivery/gebeta/internal/pkg/models"
)

// AdminRepo implements the admins.AdminRepo interface backed by PostgreSQL
type AdminRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(cfg *models.Config, db *sqlx.DB) *AdminRepo {
	return &AdminRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateAdmin inserts a new operator account
func (r *AdminRepo) CreateAdmin(ctx context.Context, admin *models.Admin) error {
	query := `
		INSERT INTO admins (
			id, email, full_name, password_hash, role, restaurant_id,
			created_at, updated_at
		) VALUES (
			:id, :email, :full_name, :password_hash, :role, :restaurant_id,
			:created_at, :updated_at
		)`
	_, err := r.db.NamedExecContext(ctx, query, admin)
	return err
}

// GetAdmin retrieves an admin by id
func (r *AdminRepo) GetAdmin(ctx context.Context, id uuid.UUID) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.GetContext(ctx, &admin, `SELECT * FROM admins WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}

// GetAdminByEmail retrieves an admin by email, the login lookup
func (r *AdminRepo) GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.GetContext(ctx, &admin, `SELECT * FROM admins WHERE email = $1`, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}

// ListAdmins lists all operator accounts
func (r *AdminRepo) ListAdmins(ctx context.Context) ([]models.Admin, error) {
	var admins []models.Admin
	err := r.db.SelectContext(ctx, &admins, `SELECT * FROM admins ORDER BY created_at DESC`)
	return admins, err
}

// DeleteAdmin removes an operator account
func (r *AdminRepo) DeleteAdmin(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM admins WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrAdminNotFound
	}
	return nil
}

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

// RestaurantRepo implements the restaurants.RestaurantRepo interface backed
// by PostgreSQL
type RestaurantRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewRestaurantRepository creates a new restaurant repository
func NewRestaurantRepository(cfg *models.Config, db *sqlx.DB) *RestaurantRepo {
	return &RestaurantRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateRestaurant inserts a new restaurant
func (r *RestaurantRepo) CreateRestaurant(ctx context.Context, restaurant *models.Restaurant) error {
	query := `
		INSERT INTO restaurants (
			id, name, phone_number, email, address, latitude, longitude,
			is_approved, is_active, created_at, updated_at
		) VALUES (
			:id, :name, :phone_number, :email, :address, :latitude, :longitude,
			:is_approved, :is_active, :created_at, :updated_at
		)`
	_, err := r.db.NamedExecContext(ctx, query, restaurant)
	return err
}

// GetRestaurant retrieves a restaurant by id
func (r *RestaurantRepo) GetRestaurant(ctx context.Context, id uuid.UUID) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := r.db.GetContext(ctx, &restaurant, `SELECT * FROM restaurants WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrRestaurantNotFound
		}
		return nil, err
	}
	return &restaurant, nil
}

// ListRestaurants lists all restaurants, newest first
func (r *RestaurantRepo) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	err := r.db.SelectContext(ctx, &restaurants, `SELECT * FROM restaurants ORDER BY created_at DESC`)
	return restaurants, err
}

// ListPendingApproval lists restaurants awaiting the admin decision
func (r *RestaurantRepo) ListPendingApproval(ctx context.Context) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	err := r.db.SelectContext(ctx, &restaurants, `
		SELECT * FROM restaurants WHERE is_approved = FALSE ORDER BY created_at ASC`)
	return restaurants, err
}

// SetApproval records the admin approval decision
func (r *RestaurantRepo) SetApproval(ctx context.Context, id uuid.UUID, approved bool) error {
	return r.execExpectingRestaurant(ctx, `
		UPDATE restaurants SET is_approved = $2, updated_at = NOW() WHERE id = $1`,
		id, approved)
}

// SetActive toggles the listing flag
func (r *RestaurantRepo) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return r.execExpectingRestaurant(ctx, `
		UPDATE restaurants SET is_active = $2, updated_at = NOW() WHERE id = $1`,
		id, active)
}

// DeleteRestaurant removes a restaurant
func (r *RestaurantRepo) DeleteRestaurant(ctx context.Context, id uuid.UUID) error {
	return r.execExpectingRestaurant(ctx, `DELETE FROM restaurants WHERE id = $1`, id)
}

func (r *RestaurantRepo) execExpectingRestaurant(ctx context.Context, query string, args ...interface{}) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrRestaurantNotFound
	}
	return nil
}

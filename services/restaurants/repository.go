package restaurants

import (
	"context"

	"github.com/google/uuid"

	"github.com/gebeta-delivery/gebeta/internal/pkg/models"
)

// RestaurantRepo defines restaurant data access operations
type RestaurantRepo interface {
	CreateRestaurant(ctx context.Context, restaurant *models.Restaurant) error
	GetRestaurant(ctx context.Context, id uuid.UUID) (*models.Restaurant, error)
	ListRestaurants(ctx context.Context) ([]models.Restaurant, error)
	ListPendingApproval(ctx context.Context) ([]models.Restaurant, error)
	SetApproval(ctx context.Context, id uuid.UUID, approved bool) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	DeleteRestaurant(ctx context.Context, id uuid.UUID) error
}

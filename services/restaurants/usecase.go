package restaurants

import (
	"context"

	"github.com/google/uuid"

	"github.com/gebeta-delivery/gebeta/internal/pkg/models"
)

// RestaurantUC defines restaurant business logic
type RestaurantUC interface {
	Onboard(ctx context.Context, req models.RestaurantOnboarding) (*models.Restaurant, error)
	GetRestaurant(ctx context.Context, id uuid.UUID) (*models.Restaurant, error)
	ListRestaurants(ctx context.Context) ([]models.Restaurant, error)
	ListPendingApproval(ctx context.Context) ([]models.Restaurant, error)
	DecideApproval(ctx context.Context, restaurantID, adminID uuid.UUID, approve bool) error
	SetActive(ctx context.Context, restaurantID uuid.UUID, active bool) error
	DeleteRestaurant(ctx context.Context, restaurantID, adminID uuid.UUID) error
}

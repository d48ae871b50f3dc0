package gateway

import (
	"context"

	"github.com/google/uuid"

	"github.com/gebeta-delivery/gebeta/internal/pkg/models"
	"github.com/gebeta-delivery/gebeta/services/orders"
	"github.com/gebeta-delivery/gebeta/services/restaurants"
)

// RestaurantAdapter exposes the restaurants service to the orders service
type RestaurantAdapter struct {
	restaurantUC restaurants.RestaurantUC
}

// NewRestaurantAdapter creates a restaurant port over the restaurants use case
func NewRestaurantAdapter(restaurantUC restaurants.RestaurantUC) orders.RestaurantPort {
	return &RestaurantAdapter{restaurantUC: restaurantUC}
}

// GetRestaurant retrieves a restaurant by id
func (a *RestaurantAdapter) GetRestaurant(ctx context.Context, id uuid.UUID) (*models.Restaurant, error) {
	return a.restaurantUC.GetRestaurant(ctx, id)
}

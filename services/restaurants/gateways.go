package restaurants

import (
	"context"

	"github.com/gebeta-delivery/gebeta/internal/pkg/models"
)

// RestaurantGW defines the gateway for publishing restaurant events
type RestaurantGW interface {
	PublishRestaurantCreated(ctx context.Context, restaurant *models.Restaurant) error
	PublishRestaurantUpdated(ctx context.Context, restaurant *models.Restaurant) error
}

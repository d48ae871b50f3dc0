package orders

import (
	"context"

	"github.com/google/uuid"

	"github.com/gebeta-delivery/gebeta/internal/pkg/models"
)

// OrderGW defines the gateway for publishing order events. Status updates
// carry the actor who caused the change; uuid.Nil marks a system-driven
// change such as the assignment sweep.
type OrderGW interface {
	PublishOrderCreated(ctx context.Context, order *models.Order) error
	PublishOrderStatusUpdated(ctx context.Context, order *models.Order, actorID uuid.UUID) error
	PublishOrderAssigned(ctx context.Context, event models.OrderAssignedEvent) error
}

// DriverPort is the slice of the drivers service the assignment policy and
// delivery settlement need.
type DriverPort interface {
	NearestAvailable(ctx context.Context, location models.Location, radiusKm float64) ([]models.NearbyDriver, error)
	FallbackCandidates(ctx context.Context, minBalance float64, limit int) ([]models.Driver, error)
	Reserve(ctx context.Context, driverID uuid.UUID, minBalance float64) (bool, error)
	Release(ctx context.Context, driverID uuid.UUID) error
	DebitForDelivery(ctx context.Context, driverID, orderID uuid.UUID, amount float64) error
}

// RestaurantPort is the slice of the restaurants service order creation and
// assignment need.
type RestaurantPort interface {
	GetRestaurant(ctx context.Context, id uuid.UUID) (*models.Restaurant, error)
}

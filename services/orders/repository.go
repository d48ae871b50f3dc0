package orders

import (
	"context"

	"github.com/google/uuid"

	"github.com/gebeta-delivery/gebeta/internal/pkg/models"
)

// OrderRepo defines order data access. Status moves and driver binding are
// guarded conditional updates so concurrent admin actions and sweep workers
// cannot double-apply.
type OrderRepo interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error)
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]models.Order, error)
	ListByDriver(ctx context.Context, driverID uuid.UUID) ([]models.Order, error)

	// UpdateStatus moves the order from -> to. Returns false when the order
	// exists but is no longer in the from status.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.OrderStatus) (bool, error)

	// AssignDriver binds a driver to an unassigned order still in an
	// assignable status. Returns false when the guard fails.
	AssignDriver(ctx context.Context, orderID, driverID uuid.UUID) (bool, error)

	// ListUnassigned returns the oldest unassigned assignable orders, the
	// working set of the retry sweep.
	ListUnassigned(ctx context.Context, limit int) ([]models.Order, error)

	// SetNeedsSettlement flags an order whose delivery debit failed
	SetNeedsSettlement(ctx context.Context, orderID uuid.UUID) error
}

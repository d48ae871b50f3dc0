package orders

import (
	"context"

	"github.com/google/uuid"

	"github.com/gebeta-delivery/gebeta/internal/pkg/models"
)

// OrderUC defines order business logic
type OrderUC interface {
	Create(ctx context.Context, req models.OrderCreate) (*models.Order, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error)
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]models.Order, error)
	ListByDriver(ctx context.Context, driverID uuid.UUID) ([]models.Order, error)

	// TransitionStatus advances the order lifecycle and runs the side effects
	// that hang off particular states: assignment attempts on kitchen
	// progress, the cash settlement debit on delivery, driver release on the
	// terminal states. actorID identifies the admin or driver making the
	// change and is carried on the published status event.
	TransitionStatus(ctx context.Context, orderID uuid.UUID, target models.OrderStatus, actorID uuid.UUID) (*models.Order, error)
	Cancel(ctx context.Context, orderID uuid.UUID, actorID uuid.UUID) (*models.Order, error)

	// TryAssign runs the assignment policy for a single order
	TryAssign(ctx context.Context, orderID uuid.UUID) (*models.Assignment, error)

	// RunSweeper blocks, periodically retrying assignment for unassigned
	// orders until ctx is cancelled.
	RunSweeper(ctx context.Context)
}

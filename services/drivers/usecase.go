package drivers

import (
	"context"

	"github.com/google/uuid"

	"github.com/gebeta-delivery/gebeta/internal/pkg/models"
)

// DriverUC defines driver business logic
type DriverUC interface {
	RegisterDriver(ctx context.Context, reg models.DriverRegistration) (*models.Driver, error)
	GetDriver(ctx context.Context, id uuid.UUID) (*models.Driver, error)
	ListPendingApproval(ctx context.Context) ([]models.Driver, error)
	DecideApproval(ctx context.Context, driverID, adminID uuid.UUID, approve bool) error
	UpdateStatus(ctx context.Context, driverID uuid.UUID, req models.DriverStatusRequest) (*models.Driver, error)
	UpdateLocation(ctx context.Context, driverID uuid.UUID, req models.DriverLocationRequest) error
	DeleteDriver(ctx context.Context, driverID, adminID uuid.UUID) error

	// Assignment support, consumed by the orders service
	NearestAvailable(ctx context.Context, location models.Location, radiusKm float64) ([]models.NearbyDriver, error)
	FallbackCandidates(ctx context.Context, minBalance float64, limit int) ([]models.Driver, error)
	ReserveEligible(ctx context.Context, driverID uuid.UUID, minBalance float64) (bool, error)
	Release(ctx context.Context, driverID uuid.UUID) error
}

// CreditUC defines the credit ledger and request queue business logic
type CreditUC interface {
	Submit(ctx context.Context, driverID uuid.UUID, req models.CreditRequestSubmit) (*models.CreditRequest, error)
	Approve(ctx context.Context, requestID, adminID uuid.UUID) error
	Reject(ctx context.Context, requestID, adminID uuid.UUID, reason string) error
	GetStatus(ctx context.Context, driverID uuid.UUID) (*models.CreditStatus, error)
	ListPending(ctx context.Context) ([]models.CreditRequest, error)

	// ManualAdjust credits (positive amount) or debits (negative amount) a
	// driver balance by direct admin action.
	ManualAdjust(ctx context.Context, driverID, adminID uuid.UUID, amount float64) (float64, error)

	// DebitForDelivery settles a completed cash-on-delivery order against the
	// driver balance. An insufficient balance is reported, not clamped.
	DebitForDelivery(ctx context.Context, driverID, orderID uuid.UUID, amount float64) error
}

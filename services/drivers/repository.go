package drivers

import (
	"context"

	"github.com/google/uuid"

	"github.com/gebeta-delivery/gebeta/internal/pkg/models"
)

// DriverRepo defines driver data access operations. Flag mutations that back
// assignment invariants are atomic conditional updates, not read-then-write.
type DriverRepo interface {
	CreateDriver(ctx context.Context, driver *models.Driver) error
	GetDriver(ctx context.Context, id uuid.UUID) (*models.Driver, error)
	ListPendingApproval(ctx context.Context) ([]models.Driver, error)
	SetApproval(ctx context.Context, id uuid.UUID, approved bool) error
	SetOnline(ctx context.Context, id uuid.UUID, online bool) error
	SetAvailable(ctx context.Context, id uuid.UUID, available bool) error
	DeleteDriver(ctx context.Context, id uuid.UUID) error

	// ReserveDriver flips is_available to false only if the driver is still
	// approved, online, available and holds at least minBalance. Returns
	// false when another caller won the race or eligibility lapsed.
	ReserveDriver(ctx context.Context, id uuid.UUID, minBalance float64) (bool, error)
	ReleaseDriver(ctx context.Context, id uuid.UUID) error

	// CandidatesByLastOnline lists assignable drivers ordered by earliest
	// last_online_at, the fallback when no geo candidates exist.
	CandidatesByLastOnline(ctx context.Context, minBalance float64, limit int) ([]models.Driver, error)

	// Location pool (Redis)
	AddAvailableDriver(ctx context.Context, driverID string, location *models.Location) error
	RemoveAvailableDriver(ctx context.Context, driverID string) error
	FindNearbyDrivers(ctx context.Context, location *models.Location, radiusKm float64) ([]models.NearbyDriver, error)
}

// CreditRepo defines the credit ledger and credit request data access.
// Balance mutations and request decisions are status/amount-guarded updates.
type CreditRepo interface {
	CreditBalance(ctx context.Context, driverID uuid.UUID, amount float64) (float64, error)
	DebitBalance(ctx context.Context, driverID uuid.UUID, amount float64) (float64, error)
	GetBalance(ctx context.Context, driverID uuid.UUID) (float64, error)

	CreateRequest(ctx context.Context, request *models.CreditRequest) error
	GetRequest(ctx context.Context, id uuid.UUID) (*models.CreditRequest, error)
	GetPendingRequest(ctx context.Context, driverID uuid.UUID) (*models.CreditRequest, error)
	ListPendingRequests(ctx context.Context) ([]models.CreditRequest, error)

	// DecideRequest closes a pending request. Returns false when the request
	// exists but was already decided by a concurrent admin action.
	DecideRequest(ctx context.Context, id uuid.UUID, status models.CreditRequestStatus, adminID uuid.UUID, reason string) (bool, error)
}

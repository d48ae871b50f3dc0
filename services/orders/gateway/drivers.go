package gateway

import (
	"context"

	"github.com/google/uuid"

	"github.com/gebeta-delivery/gebeta/internal/pkg/models"
	"github.com/gebeta-delivery/gebeta/services/drivers"
	"github.com/gebeta-delivery/gebeta/services/orders"
)

// DriverAdapter exposes the drivers service to the orders service in-process.
// The marketplace runs as one binary, so the port is a direct call rather
// than a network hop.
type DriverAdapter struct {
	driverUC drivers.DriverUC
	creditUC drivers.CreditUC
}

// NewDriverAdapter creates a driver port over the drivers use cases
func NewDriverAdapter(driverUC drivers.DriverUC, creditUC drivers.CreditUC) orders.DriverPort {
	return &DriverAdapter{
		driverUC: driverUC,
		creditUC: creditUC,
	}
}

// NearestAvailable returns drivers near the location, nearest first
func (a *DriverAdapter) NearestAvailable(ctx context.Context, location models.Location, radiusKm float64) ([]models.NearbyDriver, error) {
	return a.driverUC.NearestAvailable(ctx, location, radiusKm)
}

// FallbackCandidates lists assignable drivers by earliest last-online time
func (a *DriverAdapter) FallbackCandidates(ctx context.Context, minBalance float64, limit int) ([]models.Driver, error) {
	return a.driverUC.FallbackCandidates(ctx, minBalance, limit)
}

// Reserve atomically claims an eligible driver
func (a *DriverAdapter) Reserve(ctx context.Context, driverID uuid.UUID, minBalance float64) (bool, error) {
	return a.driverUC.ReserveEligible(ctx, driverID, minBalance)
}

// Release returns the driver to the available pool
func (a *DriverAdapter) Release(ctx context.Context, driverID uuid.UUID) error {
	return a.driverUC.Release(ctx, driverID)
}

// DebitForDelivery settles a completed cash order against the driver balance
func (a *DriverAdapter) DebitForDelivery(ctx context.Context, driverID, orderID uuid.UUID, amount float64) error {
	return a.creditUC.DebitForDelivery(ctx, driverID, orderID, amount)
}

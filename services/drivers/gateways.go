package drivers

import (
	"context"

	"github.com/gebeta-delivery/gebeta/internal/pkg/models"
)

// DriverGW defines the gateway for publishing driver and credit events
type DriverGW interface {
	PublishDriverRegistered(ctx context.Context, driver *models.Driver) error
	PublishDriverStatusUpdated(ctx context.Context, driver *models.Driver) error
	PublishDriverLocationUpdated(ctx context.Context, event models.DriverLocationEvent) error
	PublishCreditDecision(ctx context.Context, event models.CreditDecisionEvent) error
	PublishCreditReconcile(ctx context.Context, event models.CreditReconcileEvent) error
}

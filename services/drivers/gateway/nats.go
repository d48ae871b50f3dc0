package gateway

import (
	"context"
	"encoding/json"

	"github.com/gebeta-delivery/gebeta/internal/pkg/constants"
	"github.com/gebeta-delivery/gebeta/internal/pkg/models"
	natspkg "github.com/gebeta-delivery/gebeta/internal/pkg/nats"
	"github.com/gebeta-delivery/gebeta/services/drivers"
)

// DriverGW handles NATS publishing for driver and credit events
type DriverGW struct {
	natsClient *natspkg.Client
}

// NewDriverGW creates a new driver gateway
func NewDriverGW(client *natspkg.Client) drivers.DriverGW {
	return &DriverGW{natsClient: client}
}

// PublishDriverRegistered publishes a driver registration event
func (g *DriverGW) PublishDriverRegistered(ctx context.Context, driver *models.Driver) error {
	event := models.DriverRegisteredEvent{
		DriverID:    driver.ID,
		FullName:    driver.FullName,
		PhoneNumber: driver.PhoneNumber,
		CreatedAt:   driver.CreatedAt,
	}
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(constants.SubjectDriverRegistered, data)
}

// PublishDriverStatusUpdated publishes a driver flag change event
func (g *DriverGW) PublishDriverStatusUpdated(ctx context.Context, driver *models.Driver) error {
	event := models.DriverStatusEvent{
		DriverID:    driver.ID,
		IsApproved:  driver.IsApproved,
		IsOnline:    driver.IsOnline,
		IsAvailable: driver.IsAvailable,
		UpdatedAt:   driver.UpdatedAt,
	}
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(constants.SubjectDriverStatusUpdated, data)
}

// PublishDriverLocationUpdated publishes a driver location report
func (g *DriverGW) PublishDriverLocationUpdated(ctx context.Context, event models.DriverLocationEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(constants.SubjectDriverLocationUpdated, data)
}

// PublishCreditDecision publishes a credit request decision
func (g *DriverGW) PublishCreditDecision(ctx context.Context, event models.CreditDecisionEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	subject := constants.SubjectCreditApproved
	if event.Status == models.CreditRequestRejected {
		subject = constants.SubjectCreditRejected
	}
	return g.natsClient.Publish(subject, data)
}

// PublishCreditReconcile publishes a settlement failure for manual follow-up
func (g *DriverGW) PublishCreditReconcile(ctx context.Context, event models.CreditReconcileEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(constants.SubjectCreditReconcile, data)
}

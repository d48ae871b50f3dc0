package gateway

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/gebeta-delivery/gebeta/internal/pkg/constants"
	"github.com/gebeta-delivery/gebeta/internal/pkg/models"
	natspkg "github.com/gebeta-delivery/gebeta/internal/pkg/nats"
	"github.com/gebeta-delivery/gebeta/services/orders"
)

// OrderGW handles NATS publishing for order events
type OrderGW struct {
	natsClient *natspkg.Client
}

// NewOrderGW creates a new order gateway
func NewOrderGW(client *natspkg.Client) orders.OrderGW {
	return &OrderGW{natsClient: client}
}

// PublishOrderCreated publishes an order creation event. The customer who
// placed the order is the acting party.
func (g *OrderGW) PublishOrderCreated(ctx context.Context, order *models.Order) error {
	return g.publish(constants.SubjectOrderCreated, orderEvent(order, order.CustomerID))
}

// PublishOrderStatusUpdated publishes an order status change event
func (g *OrderGW) PublishOrderStatusUpdated(ctx context.Context, order *models.Order, actorID uuid.UUID) error {
	return g.publish(constants.SubjectOrderStatusUpdated, orderEvent(order, actorID))
}

// PublishOrderAssigned publishes a driver binding event
func (g *OrderGW) PublishOrderAssigned(ctx context.Context, event models.OrderAssignedEvent) error {
	return g.publish(constants.SubjectOrderAssigned, event)
}

func (g *OrderGW) publish(subject string, event interface{}) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(subject, data)
}

func orderEvent(order *models.Order, actorID uuid.UUID) models.OrderEvent {
	return models.OrderEvent{
		OrderID:      order.ID,
		OrderNumber:  order.OrderNumber,
		RestaurantID: order.RestaurantID,
		CustomerID:   order.CustomerID,
		DriverID:     order.DriverID,
		Status:       order.Status,
		Total:        order.Total,
		ActorID:      actorID,
		UpdatedAt:    order.UpdatedAt,
	}
}

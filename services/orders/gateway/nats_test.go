package gateway

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/gebeta-delivery/gebeta/internal/pkg/models"
)

func TestOrderEvent_CarriesActor(t *testing.T) {
	driverID := uuid.New()
	adminID := uuid.New()
	order := &models.Order{
		ID:           uuid.New(),
		OrderNumber:  "GB-20260828-A1B2C3",
		RestaurantID: uuid.New(),
		CustomerID:   uuid.New(),
		DriverID:     &driverID,
		Status:       models.OrderStatusDriverAssigned,
		Total:        704,
	}

	event := orderEvent(order, adminID)

	assert.Equal(t, order.ID, event.OrderID)
	assert.Equal(t, adminID, event.ActorID)
	assert.Equal(t, driverID, *event.DriverID)
	assert.Equal(t, models.OrderStatusDriverAssigned, event.Status)
}

func TestOrderEvent_SystemChangeHasNoActor(t *testing.T) {
	event := orderEvent(&models.Order{ID: uuid.New()}, uuid.Nil)
	assert.Equal(t, uuid.Nil, event.ActorID)
}

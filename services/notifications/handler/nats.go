package handler

import (
	"encoding/json"

	"github.com/nats-io/nats.go"

	"github.com/gebeta-delivery/gebeta/internal/pkg/constants"
	"github.com/gebeta-delivery/gebeta/internal/pkg/logger"
	"github.com/gebeta-delivery/gebeta/internal/pkg/models"
	natspkg "github.com/gebeta-delivery/gebeta/internal/pkg/nats"
	ws "github.com/gebeta-delivery/gebeta/internal/pkg/websocket"
)

// NatsHandler bridges domain events from NATS onto the WebSocket fan-out.
// Superadmin dashboards get everything; drivers only receive events about
// themselves.
type NatsHandler struct {
	natsClient *natspkg.Client
	wsManager  *ws.Manager
	subs       []*nats.Subscription
}

// NewNatsHandler creates a new notification bridge
func NewNatsHandler(natsClient *natspkg.Client, wsManager *ws.Manager) *NatsHandler {
	return &NatsHandler{
		natsClient: natsClient,
		wsManager:  wsManager,
	}
}

// InitSubscriptions subscribes to all dashboard-relevant subjects
func (h *NatsHandler) InitSubscriptions() error {
	routes := []struct {
		subject string
		handler nats.MsgHandler
	}{
		{constants.SubjectDriverRegistered, h.handleDriverRegistered},
		{constants.SubjectDriverStatusUpdated, h.handleDriverStatus},
		{constants.SubjectDriverLocationUpdated, h.handleDriverLocation},
		{constants.SubjectCreditApproved, h.handleCreditDecision},
		{constants.SubjectCreditRejected, h.handleCreditDecision},
		{constants.SubjectCreditReconcile, h.handleCreditReconcile},
		{constants.SubjectOrderCreated, h.handleOrderCreated},
		{constants.SubjectOrderStatusUpdated, h.handleOrderStatus},
		{constants.SubjectOrderAssigned, h.handleOrderAssigned},
		{constants.SubjectRestaurantCreated, h.handleRestaurant},
		{constants.SubjectRestaurantUpdated, h.handleRestaurant},
	}

	for _, route := range routes {
		sub, err := h.natsClient.Subscribe(route.subject, route.handler)
		if err != nil {
			return err
		}
		h.subs = append(h.subs, sub)
	}

	logger.Info("Notification subscriptions initialized",
		logger.Int("subjects", len(routes)))
	return nil
}

// Close drains all subscriptions
func (h *NatsHandler) Close() {
	for _, sub := range h.subs {
		if err := sub.Unsubscribe(); err != nil {
			logger.Warn("Failed to unsubscribe", logger.Err(err))
		}
	}
}

func (h *NatsHandler) handleDriverRegistered(msg *nats.Msg) {
	var event models.DriverRegisteredEvent
	if !h.decode(msg, &event) {
		return
	}
	h.wsManager.BroadcastToRole(models.RoleSuperAdmin, constants.EventDriverRegistered, event)
}

func (h *NatsHandler) handleDriverStatus(msg *nats.Msg) {
	var event models.DriverStatusEvent
	if !h.decode(msg, &event) {
		return
	}
	h.wsManager.BroadcastToRole(models.RoleSuperAdmin, constants.EventDriverStatusUpdated, event)
	h.wsManager.SendToUser(event.DriverID.String(), constants.EventDriverStatusUpdated, event)
}

func (h *NatsHandler) handleDriverLocation(msg *nats.Msg) {
	var event models.DriverLocationEvent
	if !h.decode(msg, &event) {
		return
	}
	h.wsManager.BroadcastToRole(models.RoleSuperAdmin, constants.EventDriverLocationUpdated, event)
}

func (h *NatsHandler) handleCreditDecision(msg *nats.Msg) {
	var event models.CreditDecisionEvent
	if !h.decode(msg, &event) {
		return
	}
	wsEvent := constants.EventCreditRequestApproved
	if event.Status == models.CreditRequestRejected {
		wsEvent = constants.EventCreditRequestRejected
	}
	h.wsManager.BroadcastToRole(models.RoleSuperAdmin, wsEvent, event)
	h.wsManager.SendToUser(event.DriverID.String(), wsEvent, event)
}

func (h *NatsHandler) handleCreditReconcile(msg *nats.Msg) {
	var event models.CreditReconcileEvent
	if !h.decode(msg, &event) {
		return
	}
	h.wsManager.BroadcastToRole(models.RoleSuperAdmin, constants.EventCreditReconcile, event)
}

func (h *NatsHandler) handleOrderCreated(msg *nats.Msg) {
	var event models.OrderEvent
	if !h.decode(msg, &event) {
		return
	}
	h.wsManager.BroadcastToRole(models.RoleSuperAdmin, constants.EventOrderCreated, event)
}

func (h *NatsHandler) handleOrderStatus(msg *nats.Msg) {
	var event models.OrderEvent
	if !h.decode(msg, &event) {
		return
	}
	h.wsManager.BroadcastToRole(models.RoleSuperAdmin, constants.EventOrderStatusUpdated, event)
	if event.DriverID != nil {
		h.wsManager.SendToUser(event.DriverID.String(), constants.EventOrderStatusUpdated, event)
	}
}

func (h *NatsHandler) handleOrderAssigned(msg *nats.Msg) {
	var event models.OrderAssignedEvent
	if !h.decode(msg, &event) {
		return
	}
	h.wsManager.BroadcastToRole(models.RoleSuperAdmin, constants.EventOrderAssigned, event)
	h.wsManager.SendToUser(event.DriverID.String(), constants.EventOrderAssigned, event)
}

func (h *NatsHandler) handleRestaurant(msg *nats.Msg) {
	var event models.RestaurantEvent
	if !h.decode(msg, &event) {
		return
	}
	h.wsManager.BroadcastToRole(models.RoleSuperAdmin, constants.EventRestaurantCreated, event)
}

func (h *NatsHandler) decode(msg *nats.Msg, target interface{}) bool {
	if err := json.Unmarshal(msg.Data, target); err != nil {
		logger.Error("Failed to decode event",
			logger.String("subject", msg.Subject),
			logger.Err(err))
		return false
	}
	return true
}

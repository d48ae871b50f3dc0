package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gebeta-delivery/gebeta/internal/pkg/apperrors"
	"github.com/gebeta-delivery/gebeta/internal/pkg/logger"
	"github.com/gebeta-delivery/gebeta/internal/pkg/models"
	"github.com/gebeta-delivery/gebeta/services/orders"
)

// OrderUC implements the orders.OrderUC interface. The lifecycle is enforced
// twice: CanTransition gates the request, and the status-guarded update in the
// repository settles races between concurrent actors.
type OrderUC struct {
	cfg            *models.Config
	orderRepo      orders.OrderRepo
	orderGW        orders.OrderGW
	driverPort     orders.DriverPort
	restaurantPort orders.RestaurantPort
}

// NewOrderUC creates a new order use case
func NewOrderUC(
	cfg *models.Config,
	orderRepo orders.OrderRepo,
	orderGW orders.OrderGW,
	driverPort orders.DriverPort,
	restaurantPort orders.RestaurantPort,
) *OrderUC {
	return &OrderUC{
		cfg:            cfg,
		orderRepo:      orderRepo,
		orderGW:        orderGW,
		driverPort:     driverPort,
		restaurantPort: restaurantPort,
	}
}

// Create validates the checkout payload against the restaurant gates and the
// totals invariant and persists the order in pending.
func (uc *OrderUC) Create(ctx context.Context, req models.OrderCreate) (*models.Order, error) {
	if len(req.Items) == 0 || strings.TrimSpace(req.DeliveryAddress) == "" {
		return nil, apperrors.ErrMissingField
	}
	for _, item := range req.Items {
		if strings.TrimSpace(item.Name) == "" || item.Quantity <= 0 || item.UnitPrice < 0 {
			return nil, apperrors.ErrInvalidOrder
		}
	}
	switch req.PaymentMethod {
	case models.PaymentCashOnDelivery, models.PaymentWallet, models.PaymentCard:
	default:
		return nil, apperrors.ErrInvalidOrder
	}

	restaurant, err := uc.restaurantPort.GetRestaurant(ctx, req.RestaurantID)
	if err != nil {
		return nil, err
	}
	if !restaurant.AcceptsOrders() {
		return nil, apperrors.ErrRestaurantNotOpen
	}

	now := time.Now()
	order := &models.Order{
		ID:              uuid.New(),
		OrderNumber:     newOrderNumber(now),
		CustomerID:      req.CustomerID,
		RestaurantID:    req.RestaurantID,
		Status:          models.OrderStatusPending,
		Items:           req.Items,
		DeliveryFee:     req.DeliveryFee,
		Tax:             req.Tax,
		Total:           req.Total,
		PaymentMethod:   req.PaymentMethod,
		DeliveryAddress: req.DeliveryAddress,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if !order.TotalsConsistent() {
		return nil, apperrors.ErrInvalidOrder
	}

	if err := uc.orderRepo.CreateOrder(ctx, order); err != nil {
		return nil, err
	}

	logger.Info("Order created",
		logger.String("order_id", order.ID.String()),
		logger.String("order_number", order.OrderNumber),
		logger.String("restaurant_id", order.RestaurantID.String()),
		logger.Float64("total", order.Total))

	if err := uc.orderGW.PublishOrderCreated(ctx, order); err != nil {
		logger.Warn("Failed to publish order created event",
			logger.String("order_id", order.ID.String()),
			logger.Err(err))
	}
	return order, nil
}

// GetOrder retrieves an order by id
func (uc *OrderUC) GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	return uc.orderRepo.GetOrder(ctx, id)
}

// ListByRestaurant lists a restaurant's orders
func (uc *OrderUC) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]models.Order, error) {
	return uc.orderRepo.ListByRestaurant(ctx, restaurantID)
}

// ListByDriver lists a driver's orders
func (uc *OrderUC) ListByDriver(ctx context.Context, driverID uuid.UUID) ([]models.Order, error) {
	return uc.orderRepo.ListByDriver(ctx, driverID)
}

// TransitionStatus advances the order and runs the state's side effects.
// Assignment and settlement failures never roll the transition back; they are
// logged and escalated instead. actorID travels with the status event so
// consumers can tell who made the change.
func (uc *OrderUC) TransitionStatus(ctx context.Context, orderID uuid.UUID, target models.OrderStatus, actorID uuid.UUID) (*models.Order, error) {
	if !target.IsValid() {
		return nil, apperrors.ErrInvalidTransition
	}

	order, err := uc.orderRepo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !models.CanTransition(order.Status, target) {
		return nil, apperrors.ErrInvalidTransition
	}
	if target == models.OrderStatusDriverAssigned && order.DriverID == nil {
		return nil, apperrors.ErrInvalidTransition
	}

	moved, err := uc.orderRepo.UpdateStatus(ctx, orderID, order.Status, target)
	if err != nil {
		return nil, err
	}
	if !moved {
		return nil, apperrors.ErrInvalidTransition
	}

	logger.Info("Order status updated",
		logger.String("order_id", orderID.String()),
		logger.String("from", string(order.Status)),
		logger.String("to", string(target)),
		logger.String("actor_id", actorID.String()))

	switch target {
	case models.OrderStatusPreparing, models.OrderStatusReadyForPickup:
		if order.DriverID == nil {
			if _, err := uc.TryAssign(ctx, orderID); err != nil {
				logger.Warn("Assignment attempt failed, order queued for sweep",
					logger.String("order_id", orderID.String()),
					logger.Err(err))
			}
		}
	case models.OrderStatusDelivered:
		uc.settleDelivery(ctx, order)
	case models.OrderStatusCancelled:
		if order.DriverID != nil {
			if err := uc.driverPort.Release(ctx, *order.DriverID); err != nil {
				logger.Warn("Failed to release driver of cancelled order",
					logger.String("order_id", orderID.String()),
					logger.String("driver_id", order.DriverID.String()),
					logger.Err(err))
			}
		}
	}

	updated, err := uc.orderRepo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := uc.orderGW.PublishOrderStatusUpdated(ctx, updated, actorID); err != nil {
		logger.Warn("Failed to publish order status event",
			logger.String("order_id", orderID.String()),
			logger.Err(err))
	}
	return updated, nil
}

// Cancel moves the order to cancelled from any non-terminal state
func (uc *OrderUC) Cancel(ctx context.Context, orderID uuid.UUID, actorID uuid.UUID) (*models.Order, error) {
	return uc.TransitionStatus(ctx, orderID, models.OrderStatusCancelled, actorID)
}

// settleDelivery releases the driver and, for cash-on-delivery, debits the
// collected total from the driver balance. A balance that can't cover the
// total flags the order for manual settlement; the delivery itself stands.
func (uc *OrderUC) settleDelivery(ctx context.Context, order *models.Order) {
	if order.DriverID == nil {
		return
	}
	driverID := *order.DriverID

	if order.IsCashOnDelivery() {
		err := uc.driverPort.DebitForDelivery(ctx, driverID, order.ID, order.Total)
		if err != nil {
			logger.Error("Delivery debit failed",
				logger.String("order_id", order.ID.String()),
				logger.String("driver_id", driverID.String()),
				logger.Float64("amount", order.Total),
				logger.Err(err))
			if errors.Is(err, apperrors.ErrInsufficientBalance) {
				if flagErr := uc.orderRepo.SetNeedsSettlement(ctx, order.ID); flagErr != nil {
					logger.Error("Failed to flag order for settlement",
						logger.String("order_id", order.ID.String()),
						logger.Err(flagErr))
				}
			}
		}
	}

	if err := uc.driverPort.Release(ctx, driverID); err != nil {
		logger.Warn("Failed to release driver after delivery",
			logger.String("order_id", order.ID.String()),
			logger.String("driver_id", driverID.String()),
			logger.Err(err))
	}
}

// newOrderNumber builds a short human-readable order reference
func newOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:6])
	return "GB-" + now.Format("20060102") + "-" + suffix
}

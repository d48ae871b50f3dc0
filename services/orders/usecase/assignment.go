package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gebeta-delivery/gebeta/internal/pkg/apperrors"
	"github.com/gebeta-delivery/gebeta/internal/pkg/logger"
	"github.com/gebeta-delivery/gebeta/internal/pkg/models"
)

// TryAssign runs the assignment policy for one order: nearest available
// driver within the search radius around the restaurant, then the drivers
// with the earliest last-online time when the geo search comes up empty.
// Each candidate is claimed with an atomic reservation, so losing a race to
// another order just moves the loop to the next candidate.
func (uc *OrderUC) TryAssign(ctx context.Context, orderID uuid.UUID) (*models.Assignment, error) {
	order, err := uc.orderRepo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.DriverID != nil {
		return nil, apperrors.ErrOrderAlreadyAssigned
	}
	assignable := false
	for _, s := range models.AssignableStatuses {
		if order.Status == s {
			assignable = true
			break
		}
	}
	if !assignable {
		return nil, apperrors.ErrOrderNotAssignable
	}

	restaurant, err := uc.restaurantPort.GetRestaurant(ctx, order.RestaurantID)
	if err != nil {
		return nil, err
	}

	// Cash orders need a driver who can cover the collected total
	minBalance := 0.0
	if order.IsCashOnDelivery() {
		minBalance = order.Total
	}

	pickup := models.Location{
		Latitude:  restaurant.Latitude,
		Longitude: restaurant.Longitude,
	}
	nearby, err := uc.driverPort.NearestAvailable(ctx, pickup, uc.cfg.Assignment.SearchRadiusKm)
	if err != nil {
		logger.Warn("Geo search failed, falling back to last-online ordering",
			logger.String("order_id", orderID.String()),
			logger.Err(err))
		nearby = nil
	}

	for _, candidate := range nearby {
		driverID, err := uuid.Parse(candidate.DriverID)
		if err != nil {
			continue
		}
		assignment, ok := uc.claimAndBind(ctx, order, driverID, minBalance)
		if ok {
			return assignment, nil
		}
	}

	fallback, err := uc.driverPort.FallbackCandidates(ctx, minBalance, uc.cfg.Assignment.FallbackCandidates)
	if err != nil {
		return nil, err
	}
	for _, candidate := range fallback {
		assignment, ok := uc.claimAndBind(ctx, order, candidate.ID, minBalance)
		if ok {
			return assignment, nil
		}
	}

	return nil, apperrors.ErrNoEligibleDriver
}

// claimAndBind reserves the driver, binds it to the order and advances a
// ready order to driver_assigned. A reservation that can't be bound is
// released so the driver isn't stranded.
func (uc *OrderUC) claimAndBind(ctx context.Context, order *models.Order, driverID uuid.UUID, minBalance float64) (*models.Assignment, bool) {
	reserved, err := uc.driverPort.Reserve(ctx, driverID, minBalance)
	if err != nil {
		logger.Warn("Driver reservation failed",
			logger.String("driver_id", driverID.String()),
			logger.Err(err))
		return nil, false
	}
	if !reserved {
		return nil, false
	}

	bound, err := uc.orderRepo.AssignDriver(ctx, order.ID, driverID)
	if err != nil || !bound {
		if err != nil {
			logger.Warn("Driver binding failed",
				logger.String("order_id", order.ID.String()),
				logger.String("driver_id", driverID.String()),
				logger.Err(err))
		}
		if releaseErr := uc.driverPort.Release(ctx, driverID); releaseErr != nil {
			logger.Warn("Failed to release driver after binding failure",
				logger.String("driver_id", driverID.String()),
				logger.Err(releaseErr))
		}
		return nil, false
	}

	assignment := &models.Assignment{
		OrderID:    order.ID,
		DriverID:   driverID,
		AssignedAt: time.Now(),
	}

	// An order already waiting at the pass moves straight to driver_assigned.
	// Status-update consumers hear about the advance too, not just the
	// binding; the sweep has no acting admin, so the event carries no actor.
	if order.Status == models.OrderStatusReadyForPickup {
		advanced, err := uc.orderRepo.UpdateStatus(ctx, order.ID, models.OrderStatusReadyForPickup, models.OrderStatusDriverAssigned)
		if err != nil {
			logger.Warn("Failed to advance assigned order",
				logger.String("order_id", order.ID.String()),
				logger.Err(err))
		}
		if advanced {
			moved := *order
			moved.Status = models.OrderStatusDriverAssigned
			moved.DriverID = &driverID
			if err := uc.orderGW.PublishOrderStatusUpdated(ctx, &moved, uuid.Nil); err != nil {
				logger.Warn("Failed to publish order status event",
					logger.String("order_id", order.ID.String()),
					logger.Err(err))
			}
		}
	}

	logger.Info("Driver assigned",
		logger.String("order_id", order.ID.String()),
		logger.String("order_number", order.OrderNumber),
		logger.String("driver_id", driverID.String()))

	if err := uc.orderGW.PublishOrderAssigned(ctx, models.OrderAssignedEvent{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		DriverID:    driverID,
		AssignedAt:  assignment.AssignedAt,
	}); err != nil {
		logger.Warn("Failed to publish order assigned event",
			logger.String("order_id", order.ID.String()),
			logger.Err(err))
	}
	return assignment, true
}

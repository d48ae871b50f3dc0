package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/gebeta-delivery/gebeta/internal/pkg/apperrors"
	"github.com/gebeta-delivery/gebeta/internal/pkg/models"
)

func assignmentConfig() *models.Config {
	return &models.Config{
		Assignment: models.AssignmentConfig{
			SearchRadiusKm:     5,
			FallbackCandidates: 10,
		},
	}
}

func unassignedOrder(orderID uuid.UUID, restaurantID uuid.UUID) *models.Order {
	return &models.Order{
		ID:            orderID,
		OrderNumber:   "GB-20260827-A1B2C3",
		RestaurantID:  restaurantID,
		Status:        models.OrderStatusPreparing,
		PaymentMethod: models.PaymentCashOnDelivery,
		Total:         704,
	}
}

func TestTryAssign_NearestDriverWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newOrderMocks(ctrl)
	orderID := uuid.New()
	restaurantID := uuid.New()
	driverID := uuid.New()

	m.orderRepo.EXPECT().
		GetOrder(gomock.Any(), orderID).
		Return(unassignedOrder(orderID, restaurantID), nil)
	m.restaurantPort.EXPECT().
		GetRestaurant(gomock.Any(), restaurantID).
		Return(openRestaurant(restaurantID), nil)
	m.driverPort.EXPECT().
		NearestAvailable(gomock.Any(), gomock.Any(), 5.0).
		Return([]models.NearbyDriver{
			{DriverID: driverID.String(), DistanceKm: 1.2},
		}, nil)
	// Cash order: the reservation carries the collected total as minimum balance
	m.driverPort.EXPECT().Reserve(gomock.Any(), driverID, 704.0).Return(true, nil)
	m.orderRepo.EXPECT().AssignDriver(gomock.Any(), orderID, driverID).Return(true, nil)
	m.orderGW.EXPECT().PublishOrderAssigned(gomock.Any(), gomock.Any()).Return(nil)

	assignment, err := m.uc(assignmentConfig()).TryAssign(context.Background(), orderID)

	assert.NoError(t, err)
	assert.Equal(t, driverID, assignment.DriverID)
	assert.Equal(t, orderID, assignment.OrderID)
}

func TestTryAssign_ReserveRaceMovesToNextCandidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newOrderMocks(ctrl)
	orderID := uuid.New()
	restaurantID := uuid.New()
	busyDriver := uuid.New()
	freeDriver := uuid.New()

	m.orderRepo.EXPECT().
		GetOrder(gomock.Any(), orderID).
		Return(unassignedOrder(orderID, restaurantID), nil)
	m.restaurantPort.EXPECT().
		GetRestaurant(gomock.Any(), restaurantID).
		Return(openRestaurant(restaurantID), nil)
	m.driverPort.EXPECT().
		NearestAvailable(gomock.Any(), gomock.Any(), 5.0).
		Return([]models.NearbyDriver{
			{DriverID: busyDriver.String(), DistanceKm: 0.8},
			{DriverID: freeDriver.String(), DistanceKm: 2.1},
		}, nil)
	// The nearest driver is claimed by another order, or can't cover the total
	m.driverPort.EXPECT().Reserve(gomock.Any(), busyDriver, 704.0).Return(false, nil)
	m.driverPort.EXPECT().Reserve(gomock.Any(), freeDriver, 704.0).Return(true, nil)
	m.orderRepo.EXPECT().AssignDriver(gomock.Any(), orderID, freeDriver).Return(true, nil)
	m.orderGW.EXPECT().PublishOrderAssigned(gomock.Any(), gomock.Any()).Return(nil)

	assignment, err := m.uc(assignmentConfig()).TryAssign(context.Background(), orderID)

	assert.NoError(t, err)
	assert.Equal(t, freeDriver, assignment.DriverID)
}

func TestTryAssign_GeoEmptyFallsBackToLastOnline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newOrderMocks(ctrl)
	orderID := uuid.New()
	restaurantID := uuid.New()
	driverID := uuid.New()

	m.orderRepo.EXPECT().
		GetOrder(gomock.Any(), orderID).
		Return(unassignedOrder(orderID, restaurantID), nil)
	m.restaurantPort.EXPECT().
		GetRestaurant(gomock.Any(), restaurantID).
		Return(openRestaurant(restaurantID), nil)
	m.driverPort.EXPECT().
		NearestAvailable(gomock.Any(), gomock.Any(), 5.0).
		Return(nil, nil)
	m.driverPort.EXPECT().
		FallbackCandidates(gomock.Any(), 704.0, 10).
		Return([]models.Driver{{ID: driverID}}, nil)
	m.driverPort.EXPECT().Reserve(gomock.Any(), driverID, 704.0).Return(true, nil)
	m.orderRepo.EXPECT().AssignDriver(gomock.Any(), orderID, driverID).Return(true, nil)
	m.orderGW.EXPECT().PublishOrderAssigned(gomock.Any(), gomock.Any()).Return(nil)

	assignment, err := m.uc(assignmentConfig()).TryAssign(context.Background(), orderID)

	assert.NoError(t, err)
	assert.Equal(t, driverID, assignment.DriverID)
}

func TestTryAssign_GeoErrorStillFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newOrderMocks(ctrl)
	orderID := uuid.New()
	restaurantID := uuid.New()
	driverID := uuid.New()

	m.orderRepo.EXPECT().
		GetOrder(gomock.Any(), orderID).
		Return(unassignedOrder(orderID, restaurantID), nil)
	m.restaurantPort.EXPECT().
		GetRestaurant(gomock.Any(), restaurantID).
		Return(openRestaurant(restaurantID), nil)
	m.driverPort.EXPECT().
		NearestAvailable(gomock.Any(), gomock.Any(), 5.0).
		Return(nil, errors.New("redis: connection refused"))
	m.driverPort.EXPECT().
		FallbackCandidates(gomock.Any(), 704.0, 10).
		Return([]models.Driver{{ID: driverID}}, nil)
	m.driverPort.EXPECT().Reserve(gomock.Any(), driverID, 704.0).Return(true, nil)
	m.orderRepo.EXPECT().AssignDriver(gomock.Any(), orderID, driverID).Return(true, nil)
	m.orderGW.EXPECT().PublishOrderAssigned(gomock.Any(), gomock.Any()).Return(nil)

	_, err := m.uc(assignmentConfig()).TryAssign(context.Background(), orderID)
	assert.NoError(t, err)
}

func TestTryAssign_Exhausted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newOrderMocks(ctrl)
	orderID := uuid.New()
	restaurantID := uuid.New()

	m.orderRepo.EXPECT().
		GetOrder(gomock.Any(), orderID).
		Return(unassignedOrder(orderID, restaurantID), nil)
	m.restaurantPort.EXPECT().
		GetRestaurant(gomock.Any(), restaurantID).
		Return(openRestaurant(restaurantID), nil)
	m.driverPort.EXPECT().
		NearestAvailable(gomock.Any(), gomock.Any(), 5.0).
		Return(nil, nil)
	m.driverPort.EXPECT().
		FallbackCandidates(gomock.Any(), 704.0, 10).
		Return(nil, nil)

	_, err := m.uc(assignmentConfig()).TryAssign(context.Background(), orderID)
	assert.ErrorIs(t, err, apperrors.ErrNoEligibleDriver)
}

func TestTryAssign_AlreadyAssigned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newOrderMocks(ctrl)
	orderID := uuid.New()
	driverID := uuid.New()

	order := unassignedOrder(orderID, uuid.New())
	order.DriverID = &driverID
	m.orderRepo.EXPECT().GetOrder(gomock.Any(), orderID).Return(order, nil)

	_, err := m.uc(assignmentConfig()).TryAssign(context.Background(), orderID)
	assert.ErrorIs(t, err, apperrors.ErrOrderAlreadyAssigned)
	// The admin-facing message names the actual condition
	assert.Contains(t, err.Error(), "already has a driver")
}

func TestTryAssign_NotAssignableStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newOrderMocks(ctrl)
	orderID := uuid.New()

	order := unassignedOrder(orderID, uuid.New())
	order.Status = models.OrderStatusPending
	m.orderRepo.EXPECT().GetOrder(gomock.Any(), orderID).Return(order, nil)

	_, err := m.uc(assignmentConfig()).TryAssign(context.Background(), orderID)
	assert.ErrorIs(t, err, apperrors.ErrOrderNotAssignable)
	assert.Contains(t, err.Error(), "not in an assignable status")
}

func TestTryAssign_BindFailureReleasesDriver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newOrderMocks(ctrl)
	orderID := uuid.New()
	restaurantID := uuid.New()
	driverID := uuid.New()

	m.orderRepo.EXPECT().
		GetOrder(gomock.Any(), orderID).
		Return(unassignedOrder(orderID, restaurantID), nil)
	m.restaurantPort.EXPECT().
		GetRestaurant(gomock.Any(), restaurantID).
		Return(openRestaurant(restaurantID), nil)
	m.driverPort.EXPECT().
		NearestAvailable(gomock.Any(), gomock.Any(), 5.0).
		Return([]models.NearbyDriver{{DriverID: driverID.String()}}, nil)
	m.driverPort.EXPECT().Reserve(gomock.Any(), driverID, 704.0).Return(true, nil)
	// The order got a driver in between; the reservation must be undone
	m.orderRepo.EXPECT().AssignDriver(gomock.Any(), orderID, driverID).Return(false, nil)
	m.driverPort.EXPECT().Release(gomock.Any(), driverID).Return(nil)
	m.driverPort.EXPECT().
		FallbackCandidates(gomock.Any(), 704.0, 10).
		Return(nil, nil)

	_, err := m.uc(assignmentConfig()).TryAssign(context.Background(), orderID)
	assert.ErrorIs(t, err, apperrors.ErrNoEligibleDriver)
}

func TestTryAssign_ReadyOrderAdvancesToDriverAssigned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newOrderMocks(ctrl)
	orderID := uuid.New()
	restaurantID := uuid.New()
	driverID := uuid.New()

	order := unassignedOrder(orderID, restaurantID)
	order.Status = models.OrderStatusReadyForPickup
	order.PaymentMethod = models.PaymentWallet

	m.orderRepo.EXPECT().GetOrder(gomock.Any(), orderID).Return(order, nil)
	m.restaurantPort.EXPECT().
		GetRestaurant(gomock.Any(), restaurantID).
		Return(openRestaurant(restaurantID), nil)
	m.driverPort.EXPECT().
		NearestAvailable(gomock.Any(), gomock.Any(), 5.0).
		Return([]models.NearbyDriver{{DriverID: driverID.String()}}, nil)
	// Wallet order: no balance floor
	m.driverPort.EXPECT().Reserve(gomock.Any(), driverID, 0.0).Return(true, nil)
	m.orderRepo.EXPECT().AssignDriver(gomock.Any(), orderID, driverID).Return(true, nil)
	m.orderRepo.EXPECT().
		UpdateStatus(gomock.Any(), orderID, models.OrderStatusReadyForPickup, models.OrderStatusDriverAssigned).
		Return(true, nil)
	// Status-update subscribers hear about the advance, not just the binding
	m.orderGW.EXPECT().
		PublishOrderStatusUpdated(gomock.Any(), gomock.Any(), uuid.Nil).
		DoAndReturn(func(ctx context.Context, moved *models.Order, actorID uuid.UUID) error {
			assert.Equal(t, models.OrderStatusDriverAssigned, moved.Status)
			assert.Equal(t, driverID, *moved.DriverID)
			return nil
		})
	m.orderGW.EXPECT().PublishOrderAssigned(gomock.Any(), gomock.Any()).Return(nil)

	assignment, err := m.uc(assignmentConfig()).TryAssign(context.Background(), orderID)

	assert.NoError(t, err)
	assert.Equal(t, driverID, assignment.DriverID)
}

package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/gebeta-delivery/gebeta/internal/pkg/models"
)

func TestSweepOnce_AssignsBacklog(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newOrderMocks(ctrl)
	cfg := assignmentConfig()
	cfg.Assignment.SweepBatchSize = 20

	restaurantID := uuid.New()
	staleID := uuid.New()
	freshID := uuid.New()
	driverID := uuid.New()

	m.orderRepo.EXPECT().
		ListUnassigned(gomock.Any(), 20).
		Return([]models.Order{{ID: staleID}, {ID: freshID}}, nil)

	// First order finds a driver
	m.orderRepo.EXPECT().
		GetOrder(gomock.Any(), staleID).
		Return(unassignedOrder(staleID, restaurantID), nil)
	m.restaurantPort.EXPECT().
		GetRestaurant(gomock.Any(), restaurantID).
		Return(openRestaurant(restaurantID), nil)
	m.driverPort.EXPECT().
		NearestAvailable(gomock.Any(), gomock.Any(), 5.0).
		Return([]models.NearbyDriver{{DriverID: driverID.String()}}, nil)
	m.driverPort.EXPECT().Reserve(gomock.Any(), driverID, 704.0).Return(true, nil)
	m.orderRepo.EXPECT().AssignDriver(gomock.Any(), staleID, driverID).Return(true, nil)
	m.orderGW.EXPECT().PublishOrderAssigned(gomock.Any(), gomock.Any()).Return(nil)

	// Second order comes up empty and stays queued for the next sweep
	m.orderRepo.EXPECT().
		GetOrder(gomock.Any(), freshID).
		Return(unassignedOrder(freshID, restaurantID), nil)
	m.restaurantPort.EXPECT().
		GetRestaurant(gomock.Any(), restaurantID).
		Return(openRestaurant(restaurantID), nil)
	m.driverPort.EXPECT().
		NearestAvailable(gomock.Any(), gomock.Any(), 5.0).
		Return(nil, nil)
	m.driverPort.EXPECT().
		FallbackCandidates(gomock.Any(), 704.0, 10).
		Return(nil, nil)

	m.uc(cfg).sweepOnce(context.Background())
}

func TestSweepOnce_SkipsOrderAssignedSinceListing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newOrderMocks(ctrl)
	cfg := assignmentConfig()
	cfg.Assignment.SweepBatchSize = 20

	orderID := uuid.New()
	driverID := uuid.New()

	m.orderRepo.EXPECT().
		ListUnassigned(gomock.Any(), 20).
		Return([]models.Order{{ID: orderID}}, nil)

	// A concurrent admin assignment landed between listing and the retry
	order := unassignedOrder(orderID, uuid.New())
	order.DriverID = &driverID
	m.orderRepo.EXPECT().GetOrder(gomock.Any(), orderID).Return(order, nil)

	m.uc(cfg).sweepOnce(context.Background())
}

func TestRunSweeper_ZeroIntervalDoesNotPanic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newOrderMocks(ctrl)
	cfg := assignmentConfig()
	cfg.Assignment.SweepIntervalSecs = 0

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Must fall back to the default interval and exit on the cancelled context
	m.uc(cfg).RunSweeper(ctx)
}

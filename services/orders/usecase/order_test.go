package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/gebeta-delivery/gebeta/internal/pkg/apperrors"
	"github.com/gebeta-delivery/gebeta/internal/pkg/models"
	"github.com/gebeta-delivery/gebeta/services/orders/mocks"
)

type orderMocks struct {
	orderRepo      *mocks.MockOrderRepo
	orderGW        *mocks.MockOrderGW
	driverPort     *mocks.MockDriverPort
	restaurantPort *mocks.MockRestaurantPort
}

func newOrderMocks(ctrl *gomock.Controller) orderMocks {
	return orderMocks{
		orderRepo:      mocks.NewMockOrderRepo(ctrl),
		orderGW:        mocks.NewMockOrderGW(ctrl),
		driverPort:     mocks.NewMockDriverPort(ctrl),
		restaurantPort: mocks.NewMockRestaurantPort(ctrl),
	}
}

func (m orderMocks) uc(cfg *models.Config) *OrderUC {
	return NewOrderUC(cfg, m.orderRepo, m.orderGW, m.driverPort, m.restaurantPort)
}

func openRestaurant(id uuid.UUID) *models.Restaurant {
	return &models.Restaurant{
		ID:         id,
		Name:       "Kategna",
		IsApproved: true,
		IsActive:   true,
		Latitude:   9.0108,
		Longitude:  38.7613,
	}
}

func validCreate(restaurantID uuid.UUID) models.OrderCreate {
	return models.OrderCreate{
		CustomerID:   uuid.New(),
		RestaurantID: restaurantID,
		Items: []models.OrderItem{
			{Name: "Doro Wat", UnitPrice: 250, Quantity: 2},
			{Name: "Injera", UnitPrice: 15, Quantity: 4},
		},
		DeliveryFee:     60,
		Tax:             84,
		Total:           704,
		PaymentMethod:   models.PaymentCashOnDelivery,
		DeliveryAddress: "Bole, Addis Ababa",
	}
}

func TestOrderCreate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newOrderMocks(ctrl)
	restaurantID := uuid.New()

	m.restaurantPort.EXPECT().
		GetRestaurant(gomock.Any(), restaurantID).
		Return(openRestaurant(restaurantID), nil)
	m.orderRepo.EXPECT().
		CreateOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, order *models.Order) error {
			assert.Equal(t, models.OrderStatusPending, order.Status)
			assert.NotEmpty(t, order.OrderNumber)
			return nil
		})
	m.orderGW.EXPECT().PublishOrderCreated(gomock.Any(), gomock.Any()).Return(nil)

	order, err := m.uc(&models.Config{}).Create(context.Background(), validCreate(restaurantID))

	assert.NoError(t, err)
	assert.NotNil(t, order)
	assert.Equal(t, 704.0, order.Total)
}

func TestOrderCreate_TotalsMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newOrderMocks(ctrl)
	restaurantID := uuid.New()

	m.restaurantPort.EXPECT().
		GetRestaurant(gomock.Any(), restaurantID).
		Return(openRestaurant(restaurantID), nil)

	req := validCreate(restaurantID)
	req.Total = 650

	_, err := m.uc(&models.Config{}).Create(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrInvalidOrder)
}

func TestOrderCreate_RestaurantNotOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newOrderMocks(ctrl)
	restaurantID := uuid.New()

	closed := openRestaurant(restaurantID)
	closed.IsActive = false
	m.restaurantPort.EXPECT().
		GetRestaurant(gomock.Any(), restaurantID).
		Return(closed, nil)

	_, err := m.uc(&models.Config{}).Create(context.Background(), validCreate(restaurantID))
	assert.ErrorIs(t, err, apperrors.ErrRestaurantNotOpen)
}

func TestOrderCreate_NoItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newOrderMocks(ctrl)

	req := validCreate(uuid.New())
	req.Items = nil

	_, err := m.uc(&models.Config{}).Create(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrMissingField)
}

func TestTransitionStatus_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newOrderMocks(ctrl)
	orderID := uuid.New()
	adminID := uuid.New()

	m.orderRepo.EXPECT().
		GetOrder(gomock.Any(), orderID).
		Return(&models.Order{ID: orderID, Status: models.OrderStatusPending}, nil)
	m.orderRepo.EXPECT().
		UpdateStatus(gomock.Any(), orderID, models.OrderStatusPending, models.OrderStatusConfirmed).
		Return(true, nil)
	m.orderRepo.EXPECT().
		GetOrder(gomock.Any(), orderID).
		Return(&models.Order{ID: orderID, Status: models.OrderStatusConfirmed}, nil)
	// The acting admin travels with the status event
	m.orderGW.EXPECT().PublishOrderStatusUpdated(gomock.Any(), gomock.Any(), adminID).Return(nil)

	order, err := m.uc(&models.Config{}).TransitionStatus(context.Background(), orderID, models.OrderStatusConfirmed, adminID)

	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusConfirmed, order.Status)
}

func TestTransitionStatus_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newOrderMocks(ctrl)
	orderID := uuid.New()

	m.orderRepo.EXPECT().
		GetOrder(gomock.Any(), orderID).
		Return(&models.Order{ID: orderID, Status: models.OrderStatusPending}, nil)

	_, err := m.uc(&models.Config{}).TransitionStatus(context.Background(), orderID, models.OrderStatusDelivered, uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func TestTransitionStatus_DriverAssignedWithoutDriver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newOrderMocks(ctrl)
	orderID := uuid.New()

	m.orderRepo.EXPECT().
		GetOrder(gomock.Any(), orderID).
		Return(&models.Order{ID: orderID, Status: models.OrderStatusReadyForPickup}, nil)

	_, err := m.uc(&models.Config{}).TransitionStatus(context.Background(), orderID, models.OrderStatusDriverAssigned, uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func TestTransitionStatus_RaceLost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newOrderMocks(ctrl)
	orderID := uuid.New()

	m.orderRepo.EXPECT().
		GetOrder(gomock.Any(), orderID).
		Return(&models.Order{ID: orderID, Status: models.OrderStatusPending}, nil)
	// The guarded update finds the row already moved by a concurrent actor
	m.orderRepo.EXPECT().
		UpdateStatus(gomock.Any(), orderID, models.OrderStatusPending, models.OrderStatusConfirmed).
		Return(false, nil)

	_, err := m.uc(&models.Config{}).TransitionStatus(context.Background(), orderID, models.OrderStatusConfirmed, uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func TestTransitionStatus_DeliveredDebitsCashOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newOrderMocks(ctrl)
	orderID := uuid.New()
	driverID := uuid.New()

	order := &models.Order{
		ID:            orderID,
		Status:        models.OrderStatusPickedUp,
		DriverID:      &driverID,
		PaymentMethod: models.PaymentCashOnDelivery,
		Total:         704,
	}

	m.orderRepo.EXPECT().GetOrder(gomock.Any(), orderID).Return(order, nil)
	m.orderRepo.EXPECT().
		UpdateStatus(gomock.Any(), orderID, models.OrderStatusPickedUp, models.OrderStatusDelivered).
		Return(true, nil)
	m.driverPort.EXPECT().DebitForDelivery(gomock.Any(), driverID, orderID, 704.0).Return(nil)
	m.driverPort.EXPECT().Release(gomock.Any(), driverID).Return(nil)
	m.orderRepo.EXPECT().
		GetOrder(gomock.Any(), orderID).
		Return(&models.Order{ID: orderID, Status: models.OrderStatusDelivered, DriverID: &driverID}, nil)
	m.orderGW.EXPECT().PublishOrderStatusUpdated(gomock.Any(), gomock.Any(), driverID).Return(nil)

	updated, err := m.uc(&models.Config{}).TransitionStatus(context.Background(), orderID, models.OrderStatusDelivered, driverID)

	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusDelivered, updated.Status)
}

func TestTransitionStatus_DeliveredInsufficientBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newOrderMocks(ctrl)
	orderID := uuid.New()
	driverID := uuid.New()

	order := &models.Order{
		ID:            orderID,
		Status:        models.OrderStatusPickedUp,
		DriverID:      &driverID,
		PaymentMethod: models.PaymentCashOnDelivery,
		Total:         704,
	}

	m.orderRepo.EXPECT().GetOrder(gomock.Any(), orderID).Return(order, nil)
	m.orderRepo.EXPECT().
		UpdateStatus(gomock.Any(), orderID, models.OrderStatusPickedUp, models.OrderStatusDelivered).
		Return(true, nil)
	m.driverPort.EXPECT().
		DebitForDelivery(gomock.Any(), driverID, orderID, 704.0).
		Return(apperrors.ErrInsufficientBalance)
	// Delivery stands; the order is flagged and the driver still released
	m.orderRepo.EXPECT().SetNeedsSettlement(gomock.Any(), orderID).Return(nil)
	m.driverPort.EXPECT().Release(gomock.Any(), driverID).Return(nil)
	m.orderRepo.EXPECT().
		GetOrder(gomock.Any(), orderID).
		Return(&models.Order{ID: orderID, Status: models.OrderStatusDelivered, DriverID: &driverID, NeedsSettlement: true}, nil)
	m.orderGW.EXPECT().PublishOrderStatusUpdated(gomock.Any(), gomock.Any(), driverID).Return(nil)

	updated, err := m.uc(&models.Config{}).TransitionStatus(context.Background(), orderID, models.OrderStatusDelivered, driverID)

	assert.NoError(t, err)
	assert.True(t, updated.NeedsSettlement)
}

func TestTransitionStatus_DeliveredWalletSkipsDebit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newOrderMocks(ctrl)
	orderID := uuid.New()
	driverID := uuid.New()

	order := &models.Order{
		ID:            orderID,
		Status:        models.OrderStatusPickedUp,
		DriverID:      &driverID,
		PaymentMethod: models.PaymentWallet,
		Total:         704,
	}

	m.orderRepo.EXPECT().GetOrder(gomock.Any(), orderID).Return(order, nil)
	m.orderRepo.EXPECT().
		UpdateStatus(gomock.Any(), orderID, models.OrderStatusPickedUp, models.OrderStatusDelivered).
		Return(true, nil)
	m.driverPort.EXPECT().Release(gomock.Any(), driverID).Return(nil)
	m.orderRepo.EXPECT().
		GetOrder(gomock.Any(), orderID).
		Return(&models.Order{ID: orderID, Status: models.OrderStatusDelivered, DriverID: &driverID}, nil)
	m.orderGW.EXPECT().PublishOrderStatusUpdated(gomock.Any(), gomock.Any(), driverID).Return(nil)

	_, err := m.uc(&models.Config{}).TransitionStatus(context.Background(), orderID, models.OrderStatusDelivered, driverID)
	assert.NoError(t, err)
}

func TestCancel_ReleasesAssignedDriver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newOrderMocks(ctrl)
	orderID := uuid.New()
	driverID := uuid.New()
	adminID := uuid.New()

	m.orderRepo.EXPECT().
		GetOrder(gomock.Any(), orderID).
		Return(&models.Order{ID: orderID, Status: models.OrderStatusDriverAssigned, DriverID: &driverID}, nil)
	m.orderRepo.EXPECT().
		UpdateStatus(gomock.Any(), orderID, models.OrderStatusDriverAssigned, models.OrderStatusCancelled).
		Return(true, nil)
	m.driverPort.EXPECT().Release(gomock.Any(), driverID).Return(nil)
	m.orderRepo.EXPECT().
		GetOrder(gomock.Any(), orderID).
		Return(&models.Order{ID: orderID, Status: models.OrderStatusCancelled}, nil)
	m.orderGW.EXPECT().PublishOrderStatusUpdated(gomock.Any(), gomock.Any(), adminID).Return(nil)

	order, err := m.uc(&models.Config{}).Cancel(context.Background(), orderID, adminID)

	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, order.Status)
}

package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/gebeta-delivery/gebeta/internal/pkg/apperrors"
	"github.com/gebeta-delivery/gebeta/internal/pkg/models"
	"github.com/gebeta-delivery/gebeta/services/drivers/mocks"
)

func TestRegisterDriver_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDriverRepo(ctrl)
	mockGW := mocks.NewMockDriverGW(ctrl)

	mockRepo.EXPECT().
		CreateDriver(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, driver *models.Driver) error {
			assert.False(t, driver.IsApproved)
			assert.False(t, driver.IsOnline)
			assert.Equal(t, 0.0, driver.CreditBalance)
			return nil
		})
	mockGW.EXPECT().PublishDriverRegistered(gomock.Any(), gomock.Any()).Return(nil)

	uc := NewDriverUC(&models.Config{}, mockRepo, mockGW)
	driver, err := uc.RegisterDriver(context.Background(), models.DriverRegistration{
		PhoneNumber: "+251911234567",
		FullName:    "Abebe Kebede",
		VehicleType: "motorcycle",
	})

	assert.NoError(t, err)
	assert.NotNil(t, driver)
	assert.Equal(t, "Abebe Kebede", driver.FullName)
}

func TestRegisterDriver_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewDriverUC(&models.Config{}, mocks.NewMockDriverRepo(ctrl), mocks.NewMockDriverGW(ctrl))

	_, err := uc.RegisterDriver(context.Background(), models.DriverRegistration{FullName: "Abebe Kebede"})
	assert.ErrorIs(t, err, apperrors.ErrMissingField)

	_, err = uc.RegisterDriver(context.Background(), models.DriverRegistration{PhoneNumber: "+251911234567"})
	assert.ErrorIs(t, err, apperrors.ErrMissingField)
}

func TestUpdateStatus_OfflineRemovesFromGeoPool(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDriverRepo(ctrl)
	mockGW := mocks.NewMockDriverGW(ctrl)
	driverID := uuid.New()
	offline := false

	mockRepo.EXPECT().SetOnline(gomock.Any(), driverID, false).Return(nil)
	mockRepo.EXPECT().RemoveAvailableDriver(gomock.Any(), driverID.String()).Return(nil)
	mockRepo.EXPECT().
		GetDriver(gomock.Any(), driverID).
		Return(&models.Driver{ID: driverID, IsOnline: false}, nil)
	mockGW.EXPECT().PublishDriverStatusUpdated(gomock.Any(), gomock.Any()).Return(nil)

	uc := NewDriverUC(&models.Config{}, mockRepo, mockGW)
	driver, err := uc.UpdateStatus(context.Background(), driverID, models.DriverStatusRequest{IsOnline: &offline})

	assert.NoError(t, err)
	assert.False(t, driver.IsOnline)
}

func TestUpdateStatus_NoFlags(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewDriverUC(&models.Config{}, mocks.NewMockDriverRepo(ctrl), mocks.NewMockDriverGW(ctrl))

	_, err := uc.UpdateStatus(context.Background(), uuid.New(), models.DriverStatusRequest{})
	assert.ErrorIs(t, err, apperrors.ErrMissingField)
}

func TestUpdateLocation_Unapproved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDriverRepo(ctrl)
	driverID := uuid.New()

	mockRepo.EXPECT().
		GetDriver(gomock.Any(), driverID).
		Return(&models.Driver{ID: driverID, IsApproved: false}, nil)

	uc := NewDriverUC(&models.Config{}, mockRepo, mocks.NewMockDriverGW(ctrl))
	err := uc.UpdateLocation(context.Background(), driverID, models.DriverLocationRequest{
		Latitude:  9.0108,
		Longitude: 38.7613,
	})
	assert.ErrorIs(t, err, apperrors.ErrDriverNotApproved)
}

func TestUpdateLocation_InvalidCoordinates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewDriverUC(&models.Config{}, mocks.NewMockDriverRepo(ctrl), mocks.NewMockDriverGW(ctrl))

	err := uc.UpdateLocation(context.Background(), uuid.New(), models.DriverLocationRequest{
		Latitude:  120,
		Longitude: 38.7613,
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidLocation)
}

func TestUpdateLocation_OnlineDriverAddedToGeoPool(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDriverRepo(ctrl)
	mockGW := mocks.NewMockDriverGW(ctrl)
	driverID := uuid.New()

	cfg := &models.Config{
		Assignment: models.AssignmentConfig{GeohashPrecision: 7},
	}

	mockRepo.EXPECT().
		GetDriver(gomock.Any(), driverID).
		Return(&models.Driver{ID: driverID, IsApproved: true, IsOnline: true}, nil)
	mockRepo.EXPECT().
		AddAvailableDriver(gomock.Any(), driverID.String(), gomock.Any()).
		Return(nil)
	mockGW.EXPECT().
		PublishDriverLocationUpdated(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, event models.DriverLocationEvent) error {
			assert.Equal(t, driverID, event.DriverID)
			assert.NotEmpty(t, event.Geohash)
			return nil
		})

	uc := NewDriverUC(cfg, mockRepo, mockGW)
	err := uc.UpdateLocation(context.Background(), driverID, models.DriverLocationRequest{
		Latitude:  9.0108,
		Longitude: 38.7613,
		Address:   "Bole Road",
	})
	assert.NoError(t, err)
}

func TestReserveEligible_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDriverRepo(ctrl)
	mockGW := mocks.NewMockDriverGW(ctrl)
	driverID := uuid.New()

	mockRepo.EXPECT().ReserveDriver(gomock.Any(), driverID, 704.0).Return(true, nil)
	mockRepo.EXPECT().RemoveAvailableDriver(gomock.Any(), driverID.String()).Return(nil)
	mockRepo.EXPECT().
		GetDriver(gomock.Any(), driverID).
		Return(&models.Driver{ID: driverID, IsAvailable: false}, nil)
	mockGW.EXPECT().PublishDriverStatusUpdated(gomock.Any(), gomock.Any()).Return(nil)

	uc := NewDriverUC(&models.Config{}, mockRepo, mockGW)
	reserved, err := uc.ReserveEligible(context.Background(), driverID, 704)

	assert.NoError(t, err)
	assert.True(t, reserved)
}

func TestReserveEligible_RaceLost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDriverRepo(ctrl)
	driverID := uuid.New()

	// Another assignment got there first; no pool removal, no status event
	mockRepo.EXPECT().ReserveDriver(gomock.Any(), driverID, 0.0).Return(false, nil)

	uc := NewDriverUC(&models.Config{}, mockRepo, mocks.NewMockDriverGW(ctrl))
	reserved, err := uc.ReserveEligible(context.Background(), driverID, 0)

	assert.NoError(t, err)
	assert.False(t, reserved)
}

func TestRelease_PublishesStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDriverRepo(ctrl)
	mockGW := mocks.NewMockDriverGW(ctrl)
	driverID := uuid.New()

	mockRepo.EXPECT().ReleaseDriver(gomock.Any(), driverID).Return(nil)
	mockRepo.EXPECT().
		GetDriver(gomock.Any(), driverID).
		Return(&models.Driver{ID: driverID, IsAvailable: true}, nil)
	mockGW.EXPECT().PublishDriverStatusUpdated(gomock.Any(), gomock.Any()).Return(nil)

	uc := NewDriverUC(&models.Config{}, mockRepo, mockGW)
	err := uc.Release(context.Background(), driverID)
	assert.NoError(t, err)
}

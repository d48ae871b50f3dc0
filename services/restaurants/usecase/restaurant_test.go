package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/gebeta-delivery/gebeta/internal/pkg/apperrors"
	"github.com/gebeta-delivery/gebeta/internal/pkg/models"
	"github.com/gebeta-delivery/gebeta/services/restaurants/mocks"
)

func TestOnboard_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRestaurantRepo(ctrl)
	mockGW := mocks.NewMockRestaurantGW(ctrl)

	mockRepo.EXPECT().
		CreateRestaurant(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, restaurant *models.Restaurant) error {
			assert.False(t, restaurant.IsApproved)
			assert.False(t, restaurant.IsActive)
			return nil
		})
	mockGW.EXPECT().PublishRestaurantCreated(gomock.Any(), gomock.Any()).Return(nil)

	uc := NewRestaurantUC(&models.Config{}, mockRepo, mockGW)
	restaurant, err := uc.Onboard(context.Background(), models.RestaurantOnboarding{
		Name:      "Kategna",
		Address:   "Bole Medhanialem, Addis Ababa",
		Latitude:  9.0108,
		Longitude: 38.7613,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Kategna", restaurant.Name)
	assert.False(t, restaurant.AcceptsOrders())
}

func TestOnboard_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewRestaurantUC(&models.Config{}, mocks.NewMockRestaurantRepo(ctrl), mocks.NewMockRestaurantGW(ctrl))

	_, err := uc.Onboard(context.Background(), models.RestaurantOnboarding{Address: "Bole"})
	assert.ErrorIs(t, err, apperrors.ErrMissingField)

	_, err = uc.Onboard(context.Background(), models.RestaurantOnboarding{Name: "Kategna"})
	assert.ErrorIs(t, err, apperrors.ErrMissingField)
}

func TestOnboard_InvalidLocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewRestaurantUC(&models.Config{}, mocks.NewMockRestaurantRepo(ctrl), mocks.NewMockRestaurantGW(ctrl))

	_, err := uc.Onboard(context.Background(), models.RestaurantOnboarding{
		Name:      "Kategna",
		Address:   "Bole",
		Latitude:  95,
		Longitude: 38.7613,
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidLocation)
}

func TestDecideApproval_PublishesUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRestaurantRepo(ctrl)
	mockGW := mocks.NewMockRestaurantGW(ctrl)
	restaurantID := uuid.New()

	mockRepo.EXPECT().SetApproval(gomock.Any(), restaurantID, true).Return(nil)
	mockRepo.EXPECT().
		GetRestaurant(gomock.Any(), restaurantID).
		Return(&models.Restaurant{ID: restaurantID, IsApproved: true}, nil)
	mockGW.EXPECT().PublishRestaurantUpdated(gomock.Any(), gomock.Any()).Return(nil)

	uc := NewRestaurantUC(&models.Config{}, mockRepo, mockGW)
	err := uc.DecideApproval(context.Background(), restaurantID, uuid.New(), true)
	assert.NoError(t, err)
}

func TestDecideApproval_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRestaurantRepo(ctrl)
	restaurantID := uuid.New()

	mockRepo.EXPECT().
		SetApproval(gomock.Any(), restaurantID, false).
		Return(apperrors.ErrRestaurantNotFound)

	uc := NewRestaurantUC(&models.Config{}, mockRepo, mocks.NewMockRestaurantGW(ctrl))
	err := uc.DecideApproval(context.Background(), restaurantID, uuid.New(), false)
	assert.ErrorIs(t, err, apperrors.ErrRestaurantNotFound)
}

func TestSetActive_PublishesUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRestaurantRepo(ctrl)
	mockGW := mocks.NewMockRestaurantGW(ctrl)
	restaurantID := uuid.New()

	mockRepo.EXPECT().SetActive(gomock.Any(), restaurantID, true).Return(nil)
	mockRepo.EXPECT().
		GetRestaurant(gomock.Any(), restaurantID).
		Return(&models.Restaurant{ID: restaurantID, IsApproved: true, IsActive: true}, nil)
	mockGW.EXPECT().
		PublishRestaurantUpdated(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, restaurant *models.Restaurant) error {
			assert.True(t, restaurant.AcceptsOrders())
			return nil
		})

	uc := NewRestaurantUC(&models.Config{}, mockRepo, mockGW)
	err := uc.SetActive(context.Background(), restaurantID, true)
	assert.NoError(t, err)
}

func TestDeleteRestaurant_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRestaurantRepo(ctrl)
	restaurantID := uuid.New()

	mockRepo.EXPECT().DeleteRestaurant(gomock.Any(), restaurantID).Return(nil)

	uc := NewRestaurantUC(&models.Config{}, mockRepo, mocks.NewMockRestaurantGW(ctrl))
	err := uc.DeleteRestaurant(context.Background(), restaurantID, uuid.New())
	assert.NoError(t, err)
}

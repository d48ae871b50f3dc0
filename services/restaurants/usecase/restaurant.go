package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gebeta-delivery/gebeta/internal/pkg/apperrors"
	"github.com/gebeta-delivery/gebeta/internal/pkg/logger"
	"github.com/gebeta-delivery/gebeta/internal/pkg/models"
	"github.com/gebeta-delivery/gebeta/services/restaurants"
)

// RestaurantUC implements the restaurants.RestaurantUC interface
type RestaurantUC struct {
	cfg            *models.Config
	restaurantRepo restaurants.RestaurantRepo
	restaurantGW   restaurants.RestaurantGW
}

// NewRestaurantUC creates a new restaurant use case
func NewRestaurantUC(
	cfg *models.Config,
	restaurantRepo restaurants.RestaurantRepo,
	restaurantGW restaurants.RestaurantGW,
) *RestaurantUC {
	return &RestaurantUC{
		cfg:            cfg,
		restaurantRepo: restaurantRepo,
		restaurantGW:   restaurantGW,
	}
}

// Onboard creates a restaurant in pending-approval state. It stays out of
// customer listings until approved and activated.
func (uc *RestaurantUC) Onboard(ctx context.Context, req models.RestaurantOnboarding) (*models.Restaurant, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Address) == "" {
		return nil, apperrors.ErrMissingField
	}
	location := models.Location{Latitude: req.Latitude, Longitude: req.Longitude}
	if !location.IsValid() {
		return nil, apperrors.ErrInvalidLocation
	}

	now := time.Now()
	restaurant := &models.Restaurant{
		ID:          uuid.New(),
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Address:     req.Address,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		IsApproved:  false,
		IsActive:    false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.restaurantRepo.CreateRestaurant(ctx, restaurant); err != nil {
		return nil, err
	}

	logger.Info("Restaurant onboarded",
		logger.String("restaurant_id", restaurant.ID.String()),
		logger.String("name", restaurant.Name))

	if err := uc.restaurantGW.PublishRestaurantCreated(ctx, restaurant); err != nil {
		logger.Warn("Failed to publish restaurant created event",
			logger.String("restaurant_id", restaurant.ID.String()),
			logger.Err(err))
	}
	return restaurant, nil
}

// GetRestaurant retrieves a restaurant by id
func (uc *RestaurantUC) GetRestaurant(ctx context.Context, id uuid.UUID) (*models.Restaurant, error) {
	return uc.restaurantRepo.GetRestaurant(ctx, id)
}

// ListRestaurants lists all restaurants
func (uc *RestaurantUC) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	return uc.restaurantRepo.ListRestaurants(ctx)
}

// ListPendingApproval lists restaurants awaiting onboarding approval
func (uc *RestaurantUC) ListPendingApproval(ctx context.Context) ([]models.Restaurant, error) {
	return uc.restaurantRepo.ListPendingApproval(ctx)
}

// DecideApproval records the admin's onboarding decision
func (uc *RestaurantUC) DecideApproval(ctx context.Context, restaurantID, adminID uuid.UUID, approve bool) error {
	if err := uc.restaurantRepo.SetApproval(ctx, restaurantID, approve); err != nil {
		return err
	}

	logger.Info("Restaurant approval decided",
		logger.String("restaurant_id", restaurantID.String()),
		logger.String("admin_id", adminID.String()),
		logger.Bool("approved", approve))

	uc.publishUpdate(ctx, restaurantID)
	return nil
}

// SetActive toggles whether the restaurant appears in listings
func (uc *RestaurantUC) SetActive(ctx context.Context, restaurantID uuid.UUID, active bool) error {
	if err := uc.restaurantRepo.SetActive(ctx, restaurantID, active); err != nil {
		return err
	}
	uc.publishUpdate(ctx, restaurantID)
	return nil
}

// DeleteRestaurant removes a restaurant by explicit admin action
func (uc *RestaurantUC) DeleteRestaurant(ctx context.Context, restaurantID, adminID uuid.UUID) error {
	if err := uc.restaurantRepo.DeleteRestaurant(ctx, restaurantID); err != nil {
		return err
	}
	logger.Info("Restaurant deleted",
		logger.String("restaurant_id", restaurantID.String()),
		logger.String("admin_id", adminID.String()))
	return nil
}

func (uc *RestaurantUC) publishUpdate(ctx context.Context, restaurantID uuid.UUID) {
	restaurant, err := uc.restaurantRepo.GetRestaurant(ctx, restaurantID)
	if err != nil {
		return
	}
	if err := uc.restaurantGW.PublishRestaurantUpdated(ctx, restaurant); err != nil {
		logger.Warn("Failed to publish restaurant updated event",
			logger.String("restaurant_id", restaurantID.String()),
			logger.Err(err))
	}
}

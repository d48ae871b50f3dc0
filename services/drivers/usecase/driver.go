package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gebeta-delivery/gebeta/internal/pkg/apperrors"
	"github.com/gebeta-delivery/gebeta/internal/pkg/logger"
	"github.com/gebeta-delivery/gebeta/internal/pkg/models"
	"github.com/gebeta-delivery/gebeta/internal/utils"
	"github.com/gebeta-delivery/gebeta/services/drivers"
)

// DriverUC implements the drivers.DriverUC interface
type DriverUC struct {
	cfg        *models.Config
	driverRepo drivers.DriverRepo
	driverGW   drivers.DriverGW
}

// NewDriverUC creates a new driver use case
func NewDriverUC(
	cfg *models.Config,
	driverRepo drivers.DriverRepo,
	driverGW drivers.DriverGW,
) *DriverUC {
	return &DriverUC{
		cfg:        cfg,
		driverRepo: driverRepo,
		driverGW:   driverGW,
	}
}

// RegisterDriver creates a driver in pending-approval state and announces it
// to the superadmin dashboard.
func (uc *DriverUC) RegisterDriver(ctx context.Context, reg models.DriverRegistration) (*models.Driver, error) {
	if strings.TrimSpace(reg.PhoneNumber) == "" || strings.TrimSpace(reg.FullName) == "" {
		return nil, apperrors.ErrMissingField
	}

	now := time.Now()
	driver := &models.Driver{
		ID:            uuid.New(),
		PhoneNumber:   reg.PhoneNumber,
		FullName:      reg.FullName,
		VehicleType:   reg.VehicleType,
		VehiclePlate:  reg.VehiclePlate,
		IsApproved:    false,
		IsOnline:      false,
		IsAvailable:   false,
		CreditBalance: 0,
		LastOnlineAt:  now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uc.driverRepo.CreateDriver(ctx, driver); err != nil {
		return nil, err
	}

	if err := uc.driverGW.PublishDriverRegistered(ctx, driver); err != nil {
		logger.Warn("Failed to publish driver registered event",
			logger.String("driver_id", driver.ID.String()),
			logger.Err(err))
	}

	return driver, nil
}

// GetDriver retrieves a driver by id
func (uc *DriverUC) GetDriver(ctx context.Context, id uuid.UUID) (*models.Driver, error) {
	return uc.driverRepo.GetDriver(ctx, id)
}

// ListPendingApproval lists drivers awaiting onboarding approval
func (uc *DriverUC) ListPendingApproval(ctx context.Context) ([]models.Driver, error) {
	return uc.driverRepo.ListPendingApproval(ctx)
}

// DecideApproval records the admin's onboarding decision for the driver
func (uc *DriverUC) DecideApproval(ctx context.Context, driverID, adminID uuid.UUID, approve bool) error {
	if err := uc.driverRepo.SetApproval(ctx, driverID, approve); err != nil {
		return err
	}

	logger.Info("Driver approval decided",
		logger.String("driver_id", driverID.String()),
		logger.String("admin_id", adminID.String()),
		logger.Bool("approved", approve))

	uc.publishStatus(ctx, driverID)
	return nil
}

// UpdateStatus toggles the driver's online and/or available flags
func (uc *DriverUC) UpdateStatus(ctx context.Context, driverID uuid.UUID, req models.DriverStatusRequest) (*models.Driver, error) {
	if req.IsOnline == nil && req.IsAvailable == nil {
		return nil, apperrors.ErrMissingField
	}

	if req.IsOnline != nil {
		if err := uc.driverRepo.SetOnline(ctx, driverID, *req.IsOnline); err != nil {
			return nil, err
		}
		if !*req.IsOnline {
			// An offline driver must never linger in the geo pool
			if err := uc.driverRepo.RemoveAvailableDriver(ctx, driverID.String()); err != nil {
				logger.Warn("Failed to remove offline driver from geo pool",
					logger.String("driver_id", driverID.String()),
					logger.Err(err))
			}
		}
	}
	if req.IsAvailable != nil {
		if err := uc.driverRepo.SetAvailable(ctx, driverID, *req.IsAvailable); err != nil {
			return nil, err
		}
	}

	driver, err := uc.driverRepo.GetDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}

	if err := uc.driverGW.PublishDriverStatusUpdated(ctx, driver); err != nil {
		logger.Warn("Failed to publish driver status event",
			logger.String("driver_id", driverID.String()),
			logger.Err(err))
	}
	return driver, nil
}

// UpdateLocation records a driver location report in the geo pool and fans
// it out to the dashboard map.
func (uc *DriverUC) UpdateLocation(ctx context.Context, driverID uuid.UUID, req models.DriverLocationRequest) error {
	location := models.Location{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Address:   req.Address,
		Timestamp: time.Now(),
	}
	if !location.IsValid() {
		return apperrors.ErrInvalidLocation
	}

	driver, err := uc.driverRepo.GetDriver(ctx, driverID)
	if err != nil {
		return err
	}
	if !driver.IsApproved {
		return apperrors.ErrDriverNotApproved
	}

	if driver.IsOnline {
		if err := uc.driverRepo.AddAvailableDriver(ctx, driverID.String(), &location); err != nil {
			return err
		}
	}

	event := models.DriverLocationEvent{
		DriverID:  driverID,
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
		Geohash:   utils.EncodeLocation(location, uc.cfg.Assignment.GeohashPrecision),
		Timestamp: location.Timestamp,
	}
	if err := uc.driverGW.PublishDriverLocationUpdated(ctx, event); err != nil {
		logger.Warn("Failed to publish driver location event",
			logger.String("driver_id", driverID.String()),
			logger.Err(err))
	}
	return nil
}

// DeleteDriver removes a driver by explicit admin action
func (uc *DriverUC) DeleteDriver(ctx context.Context, driverID, adminID uuid.UUID) error {
	if err := uc.driverRepo.DeleteDriver(ctx, driverID); err != nil {
		return err
	}
	if err := uc.driverRepo.RemoveAvailableDriver(ctx, driverID.String()); err != nil {
		logger.Warn("Failed to remove deleted driver from geo pool",
			logger.String("driver_id", driverID.String()),
			logger.Err(err))
	}
	logger.Info("Driver deleted",
		logger.String("driver_id", driverID.String()),
		logger.String("admin_id", adminID.String()))
	return nil
}

// NearestAvailable returns drivers near the location, nearest first
func (uc *DriverUC) NearestAvailable(ctx context.Context, location models.Location, radiusKm float64) ([]models.NearbyDriver, error) {
	return uc.driverRepo.FindNearbyDrivers(ctx, &location, radiusKm)
}

// FallbackCandidates lists assignable drivers by earliest last_online_at
func (uc *DriverUC) FallbackCandidates(ctx context.Context, minBalance float64, limit int) ([]models.Driver, error) {
	return uc.driverRepo.CandidatesByLastOnline(ctx, minBalance, limit)
}

// ReserveEligible atomically claims a driver for assignment. On success the
// driver is also dropped from the geo pool so later searches skip it.
func (uc *DriverUC) ReserveEligible(ctx context.Context, driverID uuid.UUID, minBalance float64) (bool, error) {
	reserved, err := uc.driverRepo.ReserveDriver(ctx, driverID, minBalance)
	if err != nil || !reserved {
		return false, err
	}

	if err := uc.driverRepo.RemoveAvailableDriver(ctx, driverID.String()); err != nil {
		logger.Warn("Failed to remove reserved driver from geo pool",
			logger.String("driver_id", driverID.String()),
			logger.Err(err))
	}
	uc.publishStatus(ctx, driverID)
	return true, nil
}

// Release returns the driver to the available pool
func (uc *DriverUC) Release(ctx context.Context, driverID uuid.UUID) error {
	if err := uc.driverRepo.ReleaseDriver(ctx, driverID); err != nil {
		return err
	}
	uc.publishStatus(ctx, driverID)
	return nil
}

func (uc *DriverUC) publishStatus(ctx context.Context, driverID uuid.UUID) {
	driver, err := uc.driverRepo.GetDriver(ctx, driverID)
	if err != nil {
		return
	}
	if err := uc.driverGW.PublishDriverStatusUpdated(ctx, driver); err != nil {
		logger.Warn("Failed to publish driver status event",
			logger.String("driver_id", driverID.String()),
			logger.Err(err))
	}
}

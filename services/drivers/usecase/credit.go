package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gebeta-delivery/gebeta/internal/pkg/apperrors"
	"github.com/gebeta-delivery/gebeta/internal/pkg/logger"
	"github.com/gebeta-delivery/gebeta/internal/pkg/models"
	"github.com/gebeta-delivery/gebeta/services/drivers"
)

// CreditUC implements the drivers.CreditUC interface. Credit application is
// tied to winning the status-guarded decision update, which keeps balance
// mutation at-most-once per request.
type CreditUC struct {
	cfg        *models.Config
	creditRepo drivers.CreditRepo
	driverGW   drivers.DriverGW
}

// NewCreditUC creates a new credit use case
func NewCreditUC(
	cfg *models.Config,
	creditRepo drivers.CreditRepo,
	driverGW drivers.DriverGW,
) *CreditUC {
	return &CreditUC{
		cfg:        cfg,
		creditRepo: creditRepo,
		driverGW:   driverGW,
	}
}

// Submit creates a pending top-up request. The storage layer rejects a
// second open request for the same driver.
func (uc *CreditUC) Submit(ctx context.Context, driverID uuid.UUID, req models.CreditRequestSubmit) (*models.CreditRequest, error) {
	if req.Amount <= 0 {
		return nil, apperrors.ErrInvalidAmount
	}
	if strings.TrimSpace(req.ProofImageURL) == "" {
		return nil, apperrors.ErrMissingField
	}

	request := &models.CreditRequest{
		ID:            uuid.New(),
		DriverID:      driverID,
		Amount:        req.Amount,
		ProofImageURL: req.ProofImageURL,
		Status:        models.CreditRequestPending,
		CreatedAt:     time.Now(),
	}
	if err := uc.creditRepo.CreateRequest(ctx, request); err != nil {
		return nil, err
	}

	logger.Info("Credit request submitted",
		logger.String("request_id", request.ID.String()),
		logger.String("driver_id", driverID.String()),
		logger.Float64("amount", req.Amount))
	return request, nil
}

// Approve closes the request and credits the driver balance
func (uc *CreditUC) Approve(ctx context.Context, requestID, adminID uuid.UUID) error {
	request, err := uc.creditRepo.GetRequest(ctx, requestID)
	if err != nil {
		return err
	}

	decided, err := uc.creditRepo.DecideRequest(ctx, requestID, models.CreditRequestApproved, adminID, "")
	if err != nil {
		return err
	}
	if !decided {
		return apperrors.ErrRequestNotPending
	}

	newBalance, err := uc.creditRepo.CreditBalance(ctx, request.DriverID, request.Amount)
	if err != nil {
		// The request is already closed; the missed credit needs manual
		// reconciliation rather than a retry that could double-apply.
		logger.Error("Credit request approved but balance credit failed",
			logger.String("request_id", requestID.String()),
			logger.String("driver_id", request.DriverID.String()),
			logger.Float64("amount", request.Amount),
			logger.Err(err))
		uc.publishReconcile(ctx, models.CreditReconcileEvent{
			DriverID:  request.DriverID,
			Amount:    request.Amount,
			Reason:    "approved top-up could not be credited",
			Timestamp: time.Now(),
		})
		return err
	}

	uc.publishDecision(ctx, models.CreditDecisionEvent{
		RequestID:  requestID,
		DriverID:   request.DriverID,
		Amount:     request.Amount,
		Status:     models.CreditRequestApproved,
		NewBalance: newBalance,
		DecidedBy:  adminID,
		DecidedAt:  time.Now(),
	})
	return nil
}

// Reject closes the request with a mandatory human-readable reason
func (uc *CreditUC) Reject(ctx context.Context, requestID, adminID uuid.UUID, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return apperrors.ErrReasonRequired
	}

	request, err := uc.creditRepo.GetRequest(ctx, requestID)
	if err != nil {
		return err
	}

	decided, err := uc.creditRepo.DecideRequest(ctx, requestID, models.CreditRequestRejected, adminID, reason)
	if err != nil {
		return err
	}
	if !decided {
		return apperrors.ErrRequestNotPending
	}

	uc.publishDecision(ctx, models.CreditDecisionEvent{
		RequestID: requestID,
		DriverID:  request.DriverID,
		Amount:    request.Amount,
		Status:    models.CreditRequestRejected,
		Reason:    reason,
		DecidedBy: adminID,
		DecidedAt: time.Now(),
	})
	return nil
}

// GetStatus returns the driver's pending request plus balance, the composite
// view polled by the driver app.
func (uc *CreditUC) GetStatus(ctx context.Context, driverID uuid.UUID) (*models.CreditStatus, error) {
	balance, err := uc.creditRepo.GetBalance(ctx, driverID)
	if err != nil {
		return nil, err
	}
	pending, err := uc.creditRepo.GetPendingRequest(ctx, driverID)
	if err != nil {
		return nil, err
	}
	return &models.CreditStatus{
		DriverID:       driverID,
		CreditBalance:  balance,
		PendingRequest: pending,
	}, nil
}

// ListPending lists open requests for the admin review queue
func (uc *CreditUC) ListPending(ctx context.Context) ([]models.CreditRequest, error) {
	return uc.creditRepo.ListPendingRequests(ctx)
}

// ManualAdjust applies a direct admin credit (positive) or debit (negative)
func (uc *CreditUC) ManualAdjust(ctx context.Context, driverID, adminID uuid.UUID, amount float64) (float64, error) {
	if amount == 0 {
		return 0, apperrors.ErrInvalidAmount
	}

	var (
		newBalance float64
		err        error
	)
	if amount > 0 {
		newBalance, err = uc.creditRepo.CreditBalance(ctx, driverID, amount)
	} else {
		newBalance, err = uc.creditRepo.DebitBalance(ctx, driverID, -amount)
	}
	if err != nil {
		return 0, err
	}

	logger.Info("Manual balance adjustment applied",
		logger.String("driver_id", driverID.String()),
		logger.String("admin_id", adminID.String()),
		logger.Float64("amount", amount),
		logger.Float64("new_balance", newBalance))
	return newBalance, nil
}

// DebitForDelivery settles a completed cash-on-delivery order. When the
// balance can't cover the total, the failure is escalated for manual
// reconciliation; the balance is never clamped or driven negative.
func (uc *CreditUC) DebitForDelivery(ctx context.Context, driverID, orderID uuid.UUID, amount float64) error {
	if amount <= 0 {
		return apperrors.ErrInvalidAmount
	}

	newBalance, err := uc.creditRepo.DebitBalance(ctx, driverID, amount)
	if err != nil {
		if err == apperrors.ErrInsufficientBalance {
			uc.publishReconcile(ctx, models.CreditReconcileEvent{
				OrderID:   orderID,
				DriverID:  driverID,
				Amount:    amount,
				Reason:    "delivery debit exceeds credit balance",
				Timestamp: time.Now(),
			})
		}
		return err
	}

	logger.Info("Delivery debit applied",
		logger.String("driver_id", driverID.String()),
		logger.String("order_id", orderID.String()),
		logger.Float64("amount", amount),
		logger.Float64("new_balance", newBalance))
	return nil
}

func (uc *CreditUC) publishDecision(ctx context.Context, event models.CreditDecisionEvent) {
	if err := uc.driverGW.PublishCreditDecision(ctx, event); err != nil {
		logger.Warn("Failed to publish credit decision event",
			logger.String("request_id", event.RequestID.String()),
			logger.Err(err))
	}
}

func (uc *CreditUC) publishReconcile(ctx context.Context, event models.CreditReconcileEvent) {
	if err := uc.driverGW.PublishCreditReconcile(ctx, event); err != nil {
		logger.Warn("Failed to publish credit reconcile event",
			logger.String("driver_id", event.DriverID.String()),
			logger.Err(err))
	}
}

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
	"github.com/gebeta-delivery/gebeta/services/drivers/mocks"
)

func TestCreditSubmit_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCreditRepo(ctrl)
	mockGW := mocks.NewMockDriverGW(ctrl)
	driverID := uuid.New()

	mockRepo.EXPECT().
		CreateRequest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, request *models.CreditRequest) error {
			assert.Equal(t, driverID, request.DriverID)
			assert.Equal(t, models.CreditRequestPending, request.Status)
			assert.Equal(t, 500.0, request.Amount)
			return nil
		})

	uc := NewCreditUC(&models.Config{}, mockRepo, mockGW)
	request, err := uc.Submit(context.Background(), driverID, models.CreditRequestSubmit{
		Amount:        500,
		ProofImageURL: "https://cdn.example.com/proof/abc.jpg",
	})

	assert.NoError(t, err)
	assert.NotNil(t, request)
	assert.Equal(t, models.CreditRequestPending, request.Status)
}

func TestCreditSubmit_InvalidAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewCreditUC(&models.Config{}, mocks.NewMockCreditRepo(ctrl), mocks.NewMockDriverGW(ctrl))

	_, err := uc.Submit(context.Background(), uuid.New(), models.CreditRequestSubmit{
		Amount:        0,
		ProofImageURL: "https://cdn.example.com/proof/abc.jpg",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)

	_, err = uc.Submit(context.Background(), uuid.New(), models.CreditRequestSubmit{
		Amount:        -100,
		ProofImageURL: "https://cdn.example.com/proof/abc.jpg",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
}

func TestCreditSubmit_MissingProof(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewCreditUC(&models.Config{}, mocks.NewMockCreditRepo(ctrl), mocks.NewMockDriverGW(ctrl))

	_, err := uc.Submit(context.Background(), uuid.New(), models.CreditRequestSubmit{Amount: 500})
	assert.ErrorIs(t, err, apperrors.ErrMissingField)
}

func TestCreditSubmit_AlreadyPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCreditRepo(ctrl)
	mockRepo.EXPECT().
		CreateRequest(gomock.Any(), gomock.Any()).
		Return(apperrors.ErrRequestAlreadyPending)

	uc := NewCreditUC(&models.Config{}, mockRepo, mocks.NewMockDriverGW(ctrl))

	_, err := uc.Submit(context.Background(), uuid.New(), models.CreditRequestSubmit{
		Amount:        500,
		ProofImageURL: "https://cdn.example.com/proof/abc.jpg",
	})
	assert.ErrorIs(t, err, apperrors.ErrRequestAlreadyPending)
}

func TestCreditApprove_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCreditRepo(ctrl)
	mockGW := mocks.NewMockDriverGW(ctrl)

	requestID := uuid.New()
	adminID := uuid.New()
	driverID := uuid.New()

	mockRepo.EXPECT().
		GetRequest(gomock.Any(), requestID).
		Return(&models.CreditRequest{
			ID:       requestID,
			DriverID: driverID,
			Amount:   50,
			Status:   models.CreditRequestPending,
		}, nil)
	mockRepo.EXPECT().
		DecideRequest(gomock.Any(), requestID, models.CreditRequestApproved, adminID, "").
		Return(true, nil)
	mockRepo.EXPECT().
		CreditBalance(gomock.Any(), driverID, 50.0).
		Return(150.0, nil)
	mockGW.EXPECT().
		PublishCreditDecision(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, event models.CreditDecisionEvent) error {
			assert.Equal(t, models.CreditRequestApproved, event.Status)
			assert.Equal(t, 150.0, event.NewBalance)
			return nil
		})

	uc := NewCreditUC(&models.Config{}, mockRepo, mockGW)
	err := uc.Approve(context.Background(), requestID, adminID)
	assert.NoError(t, err)
}

func TestCreditApprove_AlreadyDecided(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCreditRepo(ctrl)
	requestID := uuid.New()

	mockRepo.EXPECT().
		GetRequest(gomock.Any(), requestID).
		Return(&models.CreditRequest{ID: requestID, Status: models.CreditRequestRejected}, nil)
	mockRepo.EXPECT().
		DecideRequest(gomock.Any(), requestID, models.CreditRequestApproved, gomock.Any(), "").
		Return(false, nil)

	uc := NewCreditUC(&models.Config{}, mockRepo, mocks.NewMockDriverGW(ctrl))
	err := uc.Approve(context.Background(), requestID, uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrRequestNotPending)
}

func TestCreditApprove_CreditFailureEscalates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCreditRepo(ctrl)
	mockGW := mocks.NewMockDriverGW(ctrl)

	requestID := uuid.New()
	driverID := uuid.New()
	dbErr := errors.New("connection reset")

	mockRepo.EXPECT().
		GetRequest(gomock.Any(), requestID).
		Return(&models.CreditRequest{ID: requestID, DriverID: driverID, Amount: 200}, nil)
	mockRepo.EXPECT().
		DecideRequest(gomock.Any(), requestID, models.CreditRequestApproved, gomock.Any(), "").
		Return(true, nil)
	mockRepo.EXPECT().
		CreditBalance(gomock.Any(), driverID, 200.0).
		Return(0.0, dbErr)
	// The request is already closed; the miss goes to manual reconciliation
	mockGW.EXPECT().
		PublishCreditReconcile(gomock.Any(), gomock.Any()).
		Return(nil)

	uc := NewCreditUC(&models.Config{}, mockRepo, mockGW)
	err := uc.Approve(context.Background(), requestID, uuid.New())
	assert.ErrorIs(t, err, dbErr)
}

func TestCreditReject_ReasonRequired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewCreditUC(&models.Config{}, mocks.NewMockCreditRepo(ctrl), mocks.NewMockDriverGW(ctrl))

	err := uc.Reject(context.Background(), uuid.New(), uuid.New(), "  ")
	assert.ErrorIs(t, err, apperrors.ErrReasonRequired)
}

func TestCreditReject_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCreditRepo(ctrl)
	mockGW := mocks.NewMockDriverGW(ctrl)

	requestID := uuid.New()
	adminID := uuid.New()
	driverID := uuid.New()
	reason := "proof image unreadable"

	mockRepo.EXPECT().
		GetRequest(gomock.Any(), requestID).
		Return(&models.CreditRequest{ID: requestID, DriverID: driverID, Amount: 300}, nil)
	mockRepo.EXPECT().
		DecideRequest(gomock.Any(), requestID, models.CreditRequestRejected, adminID, reason).
		Return(true, nil)
	mockGW.EXPECT().
		PublishCreditDecision(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, event models.CreditDecisionEvent) error {
			assert.Equal(t, models.CreditRequestRejected, event.Status)
			assert.Equal(t, reason, event.Reason)
			return nil
		})

	uc := NewCreditUC(&models.Config{}, mockRepo, mockGW)
	err := uc.Reject(context.Background(), requestID, adminID, reason)
	assert.NoError(t, err)
}

func TestManualAdjust_CreditAndDebit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCreditRepo(ctrl)
	driverID := uuid.New()
	adminID := uuid.New()

	mockRepo.EXPECT().CreditBalance(gomock.Any(), driverID, 100.0).Return(300.0, nil)
	mockRepo.EXPECT().DebitBalance(gomock.Any(), driverID, 50.0).Return(250.0, nil)

	uc := NewCreditUC(&models.Config{}, mockRepo, mocks.NewMockDriverGW(ctrl))

	balance, err := uc.ManualAdjust(context.Background(), driverID, adminID, 100)
	assert.NoError(t, err)
	assert.Equal(t, 300.0, balance)

	balance, err = uc.ManualAdjust(context.Background(), driverID, adminID, -50)
	assert.NoError(t, err)
	assert.Equal(t, 250.0, balance)

	_, err = uc.ManualAdjust(context.Background(), driverID, adminID, 0)
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
}

func TestDebitForDelivery_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCreditRepo(ctrl)
	driverID := uuid.New()
	orderID := uuid.New()

	mockRepo.EXPECT().DebitBalance(gomock.Any(), driverID, 704.0).Return(296.0, nil)

	uc := NewCreditUC(&models.Config{}, mockRepo, mocks.NewMockDriverGW(ctrl))
	err := uc.DebitForDelivery(context.Background(), driverID, orderID, 704)
	assert.NoError(t, err)
}

func TestDebitForDelivery_InsufficientBalanceEscalates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCreditRepo(ctrl)
	mockGW := mocks.NewMockDriverGW(ctrl)
	driverID := uuid.New()
	orderID := uuid.New()

	mockRepo.EXPECT().
		DebitBalance(gomock.Any(), driverID, 704.0).
		Return(0.0, apperrors.ErrInsufficientBalance)
	mockGW.EXPECT().
		PublishCreditReconcile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, event models.CreditReconcileEvent) error {
			assert.Equal(t, orderID, event.OrderID)
			assert.Equal(t, driverID, event.DriverID)
			assert.Equal(t, 704.0, event.Amount)
			return nil
		})

	uc := NewCreditUC(&models.Config{}, mockRepo, mockGW)
	err := uc.DebitForDelivery(context.Background(), driverID, orderID, 704)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientBalance)
}

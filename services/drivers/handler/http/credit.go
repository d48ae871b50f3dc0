package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/gebeta-delivery/gebeta/internal/pkg/middleware"
	"github.com/gebeta-delivery/gebeta/internal/pkg/models"
	nrpkg "github.com/gebeta-delivery/gebeta/internal/pkg/newrelic"
	"github.com/gebeta-delivery/gebeta/internal/utils"
	"github.com/gebeta-delivery/gebeta/services/drivers"
)

// CreditHandler handles HTTP requests for the credit ledger and request queue
type CreditHandler struct {
	creditUC drivers.CreditUC
}

// NewCreditHandler creates a new credit HTTP handler
func NewCreditHandler(creditUC drivers.CreditUC) *CreditHandler {
	return &CreditHandler{creditUC: creditUC}
}

// Submit files a top-up request for the calling driver
func (h *CreditHandler) Submit(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Credit.Submit")

	driverID, ok := middleware.ActorID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreditRequestSubmit
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	request, err := h.creditUC.Submit(c.Request().Context(), driverID, req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Credit request submitted", request)
}

// GetStatus returns the calling driver's balance and pending request
func (h *CreditHandler) GetStatus(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Credit.GetStatus")

	driverID, ok := middleware.ActorID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	status, err := h.creditUC.GetStatus(c.Request().Context(), driverID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", status)
}

// ListPending lists open requests for the admin review queue
func (h *CreditHandler) ListPending(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Credit.ListPending")

	pending, err := h.creditUC.ListPending(c.Request().Context())
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", pending)
}

// Approve approves a credit request and credits the balance
func (h *CreditHandler) Approve(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Credit.Approve")

	requestID, err := uuid.Parse(c.Param("requestID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid request ID")
	}
	adminID, ok := middleware.ActorID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.creditUC.Approve(c.Request().Context(), requestID, adminID); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Credit request approved", nil)
}

// rejectRequest carries the mandatory rejection reason
type rejectRequest struct {
	Reason string `json:"reason"`
}

// Reject rejects a credit request with a reason
func (h *CreditHandler) Reject(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Credit.Reject")

	requestID, err := uuid.Parse(c.Param("requestID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid request ID")
	}
	adminID, ok := middleware.ActorID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req rejectRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if err := h.creditUC.Reject(c.Request().Context(), requestID, adminID, req.Reason); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Credit request rejected", nil)
}

// AdjustBalance applies a manual admin credit or debit
func (h *CreditHandler) AdjustBalance(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Credit.AdjustBalance")

	driverID, err := uuid.Parse(c.Param("driverID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid driver ID")
	}
	adminID, ok := middleware.ActorID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.BalanceAdjustment
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	newBalance, err := h.creditUC.ManualAdjust(c.Request().Context(), driverID, adminID, req.Amount)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Balance adjusted", map[string]float64{
		"new_balance": newBalance,
	})
}

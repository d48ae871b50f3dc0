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

// DriverHandler handles HTTP requests for driver operations
type DriverHandler struct {
	driverUC drivers.DriverUC
}

// NewDriverHandler creates a new driver HTTP handler
func NewDriverHandler(driverUC drivers.DriverUC) *DriverHandler {
	return &DriverHandler{driverUC: driverUC}
}

// Register handles driver onboarding submissions
func (h *DriverHandler) Register(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Drivers.Register")

	var req models.DriverRegistration
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	driver, err := h.driverUC.RegisterDriver(c.Request().Context(), req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Driver registered, awaiting approval", driver)
}

// GetDriver returns a single driver
func (h *DriverHandler) GetDriver(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Drivers.GetDriver")

	driverID, err := uuid.Parse(c.Param("driverID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid driver ID")
	}

	driver, err := h.driverUC.GetDriver(c.Request().Context(), driverID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", driver)
}

// ListPendingApproval lists drivers awaiting the admin decision
func (h *DriverHandler) ListPendingApproval(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Drivers.ListPendingApproval")

	pending, err := h.driverUC.ListPendingApproval(c.Request().Context())
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", pending)
}

// Approve approves a driver registration
func (h *DriverHandler) Approve(c echo.Context) error {
	return h.decideApproval(c, true, "Drivers.Approve")
}

// Reject rejects a driver registration
func (h *DriverHandler) Reject(c echo.Context) error {
	return h.decideApproval(c, false, "Drivers.Reject")
}

func (h *DriverHandler) decideApproval(c echo.Context, approve bool, txnName string) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, txnName)

	driverID, err := uuid.Parse(c.Param("driverID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid driver ID")
	}
	adminID, ok := middleware.ActorID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.driverUC.DecideApproval(c.Request().Context(), driverID, adminID, approve); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	message := "Driver approved"
	if !approve {
		message = "Driver rejected"
	}
	return utils.SuccessResponse(c, http.StatusOK, message, nil)
}

// UpdateStatus toggles the calling driver's online/available flags
func (h *DriverHandler) UpdateStatus(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Drivers.UpdateStatus")

	driverID, ok := middleware.ActorID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.DriverStatusRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	driver, err := h.driverUC.UpdateStatus(c.Request().Context(), driverID, req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Status updated", driver)
}

// UpdateLocation records the calling driver's location report
func (h *DriverHandler) UpdateLocation(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Drivers.UpdateLocation")

	driverID, ok := middleware.ActorID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.DriverLocationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if err := h.driverUC.UpdateLocation(c.Request().Context(), driverID, req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Location updated", nil)
}

// Delete removes a driver by explicit admin action
func (h *DriverHandler) Delete(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Drivers.Delete")

	driverID, err := uuid.Parse(c.Param("driverID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid driver ID")
	}
	adminID, ok := middleware.ActorID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.driverUC.DeleteDriver(c.Request().Context(), driverID, adminID); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Driver deleted", nil)
}

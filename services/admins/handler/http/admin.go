package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/gebeta-delivery/gebeta/internal/pkg/middleware"
	"github.com/gebeta-delivery/gebeta/internal/pkg/models"
	nrpkg "github.com/gebeta-delivery/gebeta/internal/pkg/newrelic"
	"github.com/gebeta-delivery/gebeta/internal/utils"
	"github.com/gebeta-delivery/gebeta/services/admins"
)

// AdminHandler handles HTTP requests for operator accounts and auth
type AdminHandler struct {
	adminUC admins.AdminUC
}

// NewAdminHandler creates a new admin HTTP handler
func NewAdminHandler(adminUC admins.AdminUC) *AdminHandler {
	return &AdminHandler{adminUC: adminUC}
}

// Login issues a JWT for a valid email/password pair
func (h *AdminHandler) Login(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Admins.Login")

	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	resp, err := h.adminUC.Login(c.Request().Context(), req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", resp)
}

// Create adds an operator account
func (h *AdminHandler) Create(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Admins.Create")

	creatorID, ok := middleware.ActorID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.AdminCreate
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	admin, err := h.adminUC.CreateAdmin(c.Request().Context(), creatorID, req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Admin created", admin)
}

// List returns all operator accounts
func (h *AdminHandler) List(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Admins.List")

	list, err := h.adminUC.ListAdmins(c.Request().Context())
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", list)
}

// Delete removes an operator account
func (h *AdminHandler) Delete(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Admins.Delete")

	adminID, err := uuid.Parse(c.Param("adminID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid admin ID")
	}
	creatorID, ok := middleware.ActorID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.adminUC.DeleteAdmin(c.Request().Context(), adminID, creatorID); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Admin deleted", nil)
}

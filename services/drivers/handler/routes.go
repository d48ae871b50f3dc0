package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/gebeta-delivery/gebeta/internal/pkg/middleware"
	"github.com/gebeta-delivery/gebeta/internal/pkg/models"
	"github.com/gebeta-delivery/gebeta/services/drivers"
	httpHandler "github.com/gebeta-delivery/gebeta/services/drivers/handler/http"
)

// Handler combines the HTTP handlers for the drivers service
type Handler struct {
	driverHTTP *httpHandler.DriverHandler
	creditHTTP *httpHandler.CreditHandler
	cfg        *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(driverUC drivers.DriverUC, creditUC drivers.CreditUC, cfg *models.Config) *Handler {
	return &Handler{
		driverHTTP: httpHandler.NewDriverHandler(driverUC),
		creditHTTP: httpHandler.NewCreditHandler(creditUC),
		cfg:        cfg,
	}
}

// RegisterRoutes registers all driver and credit routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.JWTAuthMiddleware(h.cfg.JWT)

	// Public onboarding
	e.POST("/drivers/register", h.driverHTTP.Register)

	// Driver app surface
	driver := e.Group("/driver", auth, middleware.RequireRole(models.RoleDriver))
	driver.PUT("/status", h.driverHTTP.UpdateStatus)
	driver.POST("/location", h.driverHTTP.UpdateLocation)
	driver.GET("/credit", h.creditHTTP.GetStatus)
	driver.POST("/credit/requests", h.creditHTTP.Submit)

	// Superadmin surface
	admin := e.Group("/admin", auth, middleware.RequireRole(models.RoleSuperAdmin))
	admin.GET("/drivers/pending", h.driverHTTP.ListPendingApproval)
	admin.GET("/drivers/:driverID", h.driverHTTP.GetDriver)
	admin.POST("/drivers/:driverID/approve", h.driverHTTP.Approve)
	admin.POST("/drivers/:driverID/reject", h.driverHTTP.Reject)
	admin.POST("/drivers/:driverID/balance", h.creditHTTP.AdjustBalance)
	admin.DELETE("/drivers/:driverID", h.driverHTTP.Delete)
	admin.GET("/credit/requests", h.creditHTTP.ListPending)
	admin.POST("/credit/requests/:requestID/approve", h.creditHTTP.Approve)
	admin.POST("/credit/requests/:requestID/reject", h.creditHTTP.Reject)
}

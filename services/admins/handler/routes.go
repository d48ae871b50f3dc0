package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/gebeta-delivery/gebeta/internal/pkg/middleware"
	"github.com/gebeta-delivery/gebeta/internal/pkg/models"
	"github.com/gebeta-delivery/gebeta/services/admins"
	httpHandler "github.com/gebeta-delivery/gebeta/services/admins/handler/http"
)

// Handler combines the HTTP handlers for the admins service
type Handler struct {
	adminHTTP *httpHandler.AdminHandler
	cfg       *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(adminUC admins.AdminUC, cfg *models.Config) *Handler {
	return &Handler{
		adminHTTP: httpHandler.NewAdminHandler(adminUC),
		cfg:       cfg,
	}
}

// RegisterRoutes registers auth and account management routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.JWTAuthMiddleware(h.cfg.JWT)

	e.POST("/auth/login", h.adminHTTP.Login)

	admin := e.Group("/admin", auth, middleware.RequireRole(models.RoleSuperAdmin))
	admin.POST("/accounts", h.adminHTTP.Create)
	admin.GET("/accounts", h.adminHTTP.List)
	admin.DELETE("/accounts/:adminID", h.adminHTTP.Delete)
}

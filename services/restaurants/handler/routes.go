package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/gebeta-delivery/gebeta/internal/pkg/middleware"
	"github.com/gebeta-delivery/gebeta/internal/pkg/models"
	"github.com/gebeta-delivery/gebeta/services/restaurants"
	httpHandler "github.com/gebeta-delivery/gebeta/services/restaurants/handler/http"
)

// Handler combines the HTTP handlers for the restaurants service
type Handler struct {
	restaurantHTTP *httpHandler.RestaurantHandler
	cfg            *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(restaurantUC restaurants.RestaurantUC, cfg *models.Config) *Handler {
	return &Handler{
		restaurantHTTP: httpHandler.NewRestaurantHandler(restaurantUC),
		cfg:            cfg,
	}
}

// RegisterRoutes registers all restaurant routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.JWTAuthMiddleware(h.cfg.JWT)

	// Public listing
	e.GET("/restaurants", h.restaurantHTTP.List)
	e.GET("/restaurants/:restaurantID", h.restaurantHTTP.GetRestaurant)

	// Superadmin surface
	admin := e.Group("/admin", auth, middleware.RequireRole(models.RoleSuperAdmin))
	admin.POST("/restaurants", h.restaurantHTTP.Onboard)
	admin.GET("/restaurants/pending", h.restaurantHTTP.ListPendingApproval)
	admin.POST("/restaurants/:restaurantID/approve", h.restaurantHTTP.Approve)
	admin.POST("/restaurants/:restaurantID/reject", h.restaurantHTTP.Reject)
	admin.PUT("/restaurants/:restaurantID/active", h.restaurantHTTP.SetActive)
	admin.DELETE("/restaurants/:restaurantID", h.restaurantHTTP.Delete)
}

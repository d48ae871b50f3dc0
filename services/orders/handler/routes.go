package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/gebeta-delivery/gebeta/internal/pkg/middleware"
	"github.com/gebeta-delivery/gebeta/internal/pkg/models"
	"github.com/gebeta-delivery/gebeta/services/orders"
	httpHandler "github.com/gebeta-delivery/gebeta/services/orders/handler/http"
)

// Handler combines the HTTP handlers for the orders service
type Handler struct {
	orderHTTP *httpHandler.OrderHandler
	cfg       *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(orderUC orders.OrderUC, cfg *models.Config) *Handler {
	return &Handler{
		orderHTTP: httpHandler.NewOrderHandler(orderUC),
		cfg:       cfg,
	}
}

// RegisterRoutes registers all order routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.JWTAuthMiddleware(h.cfg.JWT)

	// Checkout surface
	e.POST("/orders", h.orderHTTP.Create)
	e.GET("/orders/:orderID", h.orderHTTP.GetOrder)

	// Driver app surface
	driver := e.Group("/driver", auth, middleware.RequireRole(models.RoleDriver))
	driver.GET("/orders", h.orderHTTP.ListMine)
	driver.POST("/orders/:orderID/transition", h.orderHTTP.DriverTransition)

	// Restaurant dashboard surface
	restaurant := e.Group("/restaurant", auth, middleware.RequireRole(models.RoleRestaurantAdmin, models.RoleSuperAdmin))
	restaurant.GET("/:restaurantID/orders", h.orderHTTP.ListByRestaurant)
	restaurant.POST("/orders/:orderID/transition", h.orderHTTP.Transition)

	// Superadmin surface
	admin := e.Group("/admin", auth, middleware.RequireRole(models.RoleSuperAdmin))
	admin.POST("/orders/:orderID/transition", h.orderHTTP.Transition)
	admin.POST("/orders/:orderID/cancel", h.orderHTTP.Cancel)
	admin.POST("/orders/:orderID/assign", h.orderHTTP.Assign)
	admin.GET("/restaurants/:restaurantID/orders", h.orderHTTP.ListByRestaurant)
}

package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/gebeta-delivery/gebeta/internal/pkg/middleware"
	"github.com/gebeta-delivery/gebeta/internal/pkg/models"
	nrpkg "github.com/gebeta-delivery/gebeta/internal/pkg/newrelic"
	"github.com/gebeta-delivery/gebeta/internal/utils"
	"github.com/gebeta-delivery/gebeta/services/orders"
)

// OrderHandler handles HTTP requests for order operations
type OrderHandler struct {
	orderUC orders.OrderUC
}

// NewOrderHandler creates a new order HTTP handler
func NewOrderHandler(orderUC orders.OrderUC) *OrderHandler {
	return &OrderHandler{orderUC: orderUC}
}

// Create handles checkout submissions
func (h *OrderHandler) Create(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Orders.Create")

	var req models.OrderCreate
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	order, err := h.orderUC.Create(c.Request().Context(), req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Order created", order)
}

// GetOrder returns a single order with its items
func (h *OrderHandler) GetOrder(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Orders.GetOrder")

	orderID, err := uuid.Parse(c.Param("orderID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid order ID")
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), orderID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", order)
}

// ListByRestaurant lists a restaurant's orders
func (h *OrderHandler) ListByRestaurant(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Orders.ListByRestaurant")

	restaurantID, err := uuid.Parse(c.Param("restaurantID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid restaurant ID")
	}

	list, err := h.orderUC.ListByRestaurant(c.Request().Context(), restaurantID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", list)
}

// ListMine lists the calling driver's orders
func (h *OrderHandler) ListMine(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Orders.ListMine")

	driverID, ok := middleware.ActorID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	list, err := h.orderUC.ListByDriver(c.Request().Context(), driverID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", list)
}

// Transition advances an order by admin action
func (h *OrderHandler) Transition(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Orders.Transition")

	orderID, err := uuid.Parse(c.Param("orderID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid order ID")
	}
	adminID, ok := middleware.ActorID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.TransitionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	order, err := h.orderUC.TransitionStatus(c.Request().Context(), orderID, req.TargetStatus, adminID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Order status updated", order)
}

// DriverTransition advances an order by its assigned driver. Only picked_up
// and delivered are driver-reportable, and only on the driver's own order.
func (h *OrderHandler) DriverTransition(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Orders.DriverTransition")

	orderID, err := uuid.Parse(c.Param("orderID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid order ID")
	}
	driverID, ok := middleware.ActorID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.TransitionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.TargetStatus != models.OrderStatusPickedUp && req.TargetStatus != models.OrderStatusDelivered {
		return utils.ForbiddenResponse(c, "Drivers may only report pickup and delivery")
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), orderID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	if order.DriverID == nil || *order.DriverID != driverID {
		return utils.ForbiddenResponse(c, "Order is not assigned to this driver")
	}

	updated, err := h.orderUC.TransitionStatus(c.Request().Context(), orderID, req.TargetStatus, driverID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Order status updated", updated)
}

// Cancel cancels an order from any non-terminal state
func (h *OrderHandler) Cancel(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Orders.Cancel")

	orderID, err := uuid.Parse(c.Param("orderID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid order ID")
	}
	adminID, ok := middleware.ActorID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	order, err := h.orderUC.Cancel(c.Request().Context(), orderID, adminID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Order cancelled", order)
}

// Assign forces an assignment attempt for an order
func (h *OrderHandler) Assign(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Orders.Assign")

	orderID, err := uuid.Parse(c.Param("orderID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid order ID")
	}

	assignment, err := h.orderUC.TryAssign(c.Request().Context(), orderID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Driver assigned", assignment)
}

package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/gebeta-delivery/gebeta/internal/pkg/middleware"
	"github.com/gebeta-delivery/gebeta/internal/pkg/models"
	nrpkg "github.com/gebeta-delivery/gebeta/internal/pkg/newrelic"
	"github.com/gebeta-delivery/gebeta/internal/utils"
	"github.com/gebeta-delivery/gebeta/services/restaurants"
)

// RestaurantHandler handles HTTP requests for restaurant operations
type RestaurantHandler struct {
	restaurantUC restaurants.RestaurantUC
}

// NewRestaurantHandler creates a new restaurant HTTP handler
func NewRestaurantHandler(restaurantUC restaurants.RestaurantUC) *RestaurantHandler {
	return &RestaurantHandler{restaurantUC: restaurantUC}
}

// Onboard creates a restaurant in pending-approval state
func (h *RestaurantHandler) Onboard(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Restaurants.Onboard")

	var req models.RestaurantOnboarding
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	restaurant, err := h.restaurantUC.Onboard(c.Request().Context(), req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Restaurant onboarded, awaiting approval", restaurant)
}

// GetRestaurant returns a single restaurant
func (h *RestaurantHandler) GetRestaurant(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Restaurants.GetRestaurant")

	restaurantID, err := uuid.Parse(c.Param("restaurantID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid restaurant ID")
	}

	restaurant, err := h.restaurantUC.GetRestaurant(c.Request().Context(), restaurantID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", restaurant)
}

// List returns all restaurants
func (h *RestaurantHandler) List(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Restaurants.List")

	list, err := h.restaurantUC.ListRestaurants(c.Request().Context())
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", list)
}

// ListPendingApproval lists restaurants awaiting the admin decision
func (h *RestaurantHandler) ListPendingApproval(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Restaurants.ListPendingApproval")

	pending, err := h.restaurantUC.ListPendingApproval(c.Request().Context())
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", pending)
}

// Approve approves a restaurant onboarding
func (h *RestaurantHandler) Approve(c echo.Context) error {
	return h.decideApproval(c, true, "Restaurants.Approve")
}

// Reject rejects a restaurant onboarding
func (h *RestaurantHandler) Reject(c echo.Context) error {
	return h.decideApproval(c, false, "Restaurants.Reject")
}

func (h *RestaurantHandler) decideApproval(c echo.Context, approve bool, txnName string) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, txnName)

	restaurantID, err := uuid.Parse(c.Param("restaurantID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid restaurant ID")
	}
	adminID, ok := middleware.ActorID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.restaurantUC.DecideApproval(c.Request().Context(), restaurantID, adminID, approve); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	message := "Restaurant approved"
	if !approve {
		message = "Restaurant rejected"
	}
	return utils.SuccessResponse(c, http.StatusOK, message, nil)
}

// activeRequest carries the listing flag
type activeRequest struct {
	IsActive bool `json:"is_active"`
}

// SetActive toggles whether the restaurant appears in listings
func (h *RestaurantHandler) SetActive(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Restaurants.SetActive")

	restaurantID, err := uuid.Parse(c.Param("restaurantID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid restaurant ID")
	}

	var req activeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if err := h.restaurantUC.SetActive(c.Request().Context(), restaurantID, req.IsActive); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Restaurant updated", nil)
}

// Delete removes a restaurant by explicit admin action
func (h *RestaurantHandler) Delete(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Restaurants.Delete")

	restaurantID, err := uuid.Parse(c.Param("restaurantID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid restaurant ID")
	}
	adminID, ok := middleware.ActorID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.restaurantUC.DeleteRestaurant(c.Request().Context(), restaurantID, adminID); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Restaurant deleted", nil)
}

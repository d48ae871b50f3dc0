package constants

// WebSocket event names pushed to dashboard clients
const (
	EventDriverRegistered      = "driver_registered"
	EventDriverStatusUpdated   = "driver_status_updated"
	EventDriverLocationUpdated = "driver_location_updated"
	EventCreditRequestApproved = "credit_request_approved"
	EventCreditRequestRejected = "credit_request_rejected"
	EventCreditReconcile       = "credit_reconcile_required"
	EventOrderCreated          = "order_created"
	EventOrderStatusUpdated    = "order_status_updated"
	EventOrderAssigned         = "order_assigned"
	EventRestaurantCreated     = "restaurant_created"
	EventError                 = "error"
)

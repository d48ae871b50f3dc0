package constants

// NATS Subjects
const (
	// Driver events
	SubjectDriverRegistered      = "driver.registered"
	SubjectDriverStatusUpdated   = "driver.status_updated"
	SubjectDriverLocationUpdated = "driver.location_updated"

	// Credit events
	SubjectCreditApproved  = "credit.approved"
	SubjectCreditRejected  = "credit.rejected"
	SubjectCreditReconcile = "credit.reconcile"

	// Order events
	SubjectOrderCreated       = "order.created"
	SubjectOrderStatusUpdated = "order.status_updated"
	SubjectOrderAssigned      = "order.assigned"

	// Restaurant events
	SubjectRestaurantCreated = "restaurant.created"
	SubjectRestaurantUpdated = "restaurant.updated"
)

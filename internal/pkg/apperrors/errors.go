package apperrors

import "errors"

// Domain errors returned by usecases and repositories. Handlers map these to
// HTTP status codes; the message text is safe to show to admins directly.
var (
	// Not found
	ErrDriverNotFound     = errors.New("driver not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrRequestNotFound    = errors.New("credit request not found")
	ErrAdminNotFound      = errors.New("admin account not found")

	// Invalid input
	ErrInvalidAmount   = errors.New("amount must be greater than zero")
	ErrReasonRequired  = errors.New("a rejection reason is required")
	ErrInvalidOrder    = errors.New("order items and totals do not add up")
	ErrMissingField    = errors.New("a required field is missing")
	ErrInvalidLocation = errors.New("invalid location coordinates")

	// Invalid state
	ErrRequestAlreadyPending = errors.New("driver already has a pending credit request")
	ErrRequestNotPending     = errors.New("credit request has already been decided")
	ErrInvalidTransition     = errors.New("order status transition is not allowed")
	ErrOrderAlreadyAssigned  = errors.New("order already has a driver assigned")
	ErrOrderNotAssignable    = errors.New("order is not in an assignable status")
	ErrDriverNotApproved     = errors.New("driver has not been approved")
	ErrRestaurantNotOpen     = errors.New("restaurant is not accepting orders")

	// Operational
	ErrInsufficientBalance = errors.New("insufficient credit balance")
	ErrNoEligibleDriver    = errors.New("no eligible driver available")
	ErrInvalidCredentials  = errors.New("invalid email or password")
)

// IsNotFound reports whether err is one of the not-found sentinels.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrDriverNotFound) ||
		errors.Is(err, ErrOrderNotFound) ||
		errors.Is(err, ErrRestaurantNotFound) ||
		errors.Is(err, ErrRequestNotFound) ||
		errors.Is(err, ErrAdminNotFound)
}

// IsInvalidInput reports whether err is a validation failure.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrReasonRequired) ||
		errors.Is(err, ErrInvalidOrder) ||
		errors.Is(err, ErrMissingField) ||
		errors.Is(err, ErrInvalidLocation)
}

// IsInvalidState reports whether err means the operation is not valid for the
// entity's current status or flags.
func IsInvalidState(err error) bool {
	return errors.Is(err, ErrRequestAlreadyPending) ||
		errors.Is(err, ErrRequestNotPending) ||
		errors.Is(err, ErrInvalidTransition) ||
		errors.Is(err, ErrOrderAlreadyAssigned) ||
		errors.Is(err, ErrOrderNotAssignable) ||
		errors.Is(err, ErrDriverNotApproved) ||
		errors.Is(err, ErrRestaurantNotOpen)
}

package errs

// Error kinds shared by the usecase and handler layers.
// Lower layers return their own errors; usecases attach one of these with Mark.
var (
	// Admission
	ErrInvalidDateRange = New("invalid date range")
	ErrMissingFields    = New("missing required fields")
	ErrListingNotFound  = New("listing not found")
	ErrDateConflict     = New("dates conflict with an existing reservation")

	// Cancellation / ownership
	ErrNotAuthorized       = New("not authorized")
	ErrReservationNotFound = New("reservation not found")

	// Users
	ErrUserNotFound = New("user not found")

	// Validation errors
	ErrDomainValidation = New("domain validation error")

	// Collaborator failures (transaction abort, lock timeout, connection loss)
	ErrStorage = New("storage failure")
)

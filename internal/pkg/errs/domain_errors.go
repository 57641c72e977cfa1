package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Room / room type errors
	ErrRoomNotFound        = errors.New("room not found")
	ErrRoomTypeNotFound    = errors.New("room type not found")
	ErrDuplicateRoomNumber = errors.New("room number already in use")

	// Guest errors
	ErrGuestNotFound = errors.New("guest profile not found")

	// Reservation errors
	ErrReservationNotFound   = errors.New("reservation not found")
	ErrArrivalInPast         = errors.New("arrival date is in the past")
	ErrInvalidStayPeriod     = errors.New("invalid stay period")
	ErrRoomUnavailable       = errors.New("room is not available for the requested period")
	ErrNightsAlreadyExpanded = errors.New("reservation nights already expanded")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

package packages

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidTrackingNumber = errors.New("invalid tracking number")
	ErrInvalidPackageType    = errors.New("invalid package type")
	ErrInvalidWeight         = errors.New("invalid weight")
	ErrInvalidAmount         = errors.New("invalid amount")
	ErrInvalidParty          = errors.New("invalid sender or receiver details")

	ErrPackageNotFound        = errors.New("package not found")
	ErrTrackingNumberConflict = errors.New("tracking number already exists")

	ErrInvalidTransition      = errors.New("invalid status transition")
	ErrTerminalState          = errors.New("package is in a terminal state")
	ErrDeliveryNotConfirmed   = errors.New("delivery code is not confirmed")
	ErrConcurrentModification = errors.New("package was modified concurrently")
)

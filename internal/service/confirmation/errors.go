package confirmation

import "errors"

var (
	ErrInvalidCode      = errors.New("invalid delivery code")
	ErrAlreadyDelivered = errors.New("package already delivered")
)

package tracking

import "errors"

var ErrInvalidTrackingNumber = errors.New("invalid tracking number")

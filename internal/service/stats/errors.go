package stats

import "errors"

var ErrInvalidUserID = errors.New("invalid user id")

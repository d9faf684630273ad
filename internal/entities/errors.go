package entities

import "errors"

var ErrUnknownStatus = errors.New("unknown package status")

package constants

import "errors"

// Static errors for err113 compliance.
var (
	ErrUnknownConfigKey = errors.New("unknown configuration key")
	ErrInvalidOutput    = errors.New("invalid output format, use table, json or yaml")
	ErrInvalidFlag      = errors.New("invalid flag value")
)

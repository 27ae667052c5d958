package validator

import "errors"

var (
	// ErrValidationFailed is matched by errors.Is against any ValidationErrors value.
	ErrValidationFailed = errors.New("validation failed")
)

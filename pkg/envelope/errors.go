package envelope

import "errors"

var (
	// ErrMissingUUID signals a builder configured without a resource UUID.
	ErrMissingUUID = errors.New("envelope: resource uuid is required")
	// ErrMissingFieldName signals a builder configured without a field name.
	ErrMissingFieldName = errors.New("envelope: field name is required")
)

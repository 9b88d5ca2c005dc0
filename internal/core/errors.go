package core

import "errors"

var (
	// ErrInvalidDimensions reports a field allocation with a non-positive size.
	ErrInvalidDimensions = errors.New("invalid field dimensions")

	// ErrOutOfBounds reports a coordinate access outside the field.
	ErrOutOfBounds = errors.New("coordinates out of bounds")

	// ErrInvalidParameter reports a rejected parameter value.
	ErrInvalidParameter = errors.New("invalid parameter value")
)

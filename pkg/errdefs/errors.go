package errdefs

import "errors"

var (
	// ErrInvalidParameter signals that the user input is invalid.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrUnsupported indicates that the action was not supported.
	ErrUnsupported = errors.New("unsupported")
)

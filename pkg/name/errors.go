package name

import (
	"errors"
)

var (
	// ErrUnknownProvider is an error for when an unknown cloud provider key
	// is supplied.
	ErrUnknownProvider = errors.New("unknown cloud provider")
	// ErrNameFormat is an error for when an image name does not follow the
	// naming convention of the provider.
	ErrNameFormat = errors.New("bad image name")
)

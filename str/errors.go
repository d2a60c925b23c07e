package str

import "go.trai.ch/zerr"

var (
	// ErrInvalidArgument is returned when an argument is outside the domain of an operation.
	ErrInvalidArgument = zerr.New("invalid argument")

	// ErrUnsupported is returned when an operation is recognized but has no implementation on this host.
	ErrUnsupported = zerr.New("unsupported operation")
)

package render

import "errors"

var (
	// ErrNoContainer is returned by Mount when no container was supplied.
	ErrNoContainer = errors.New("render: no container to mount into")

	// ErrInvalidSize is returned by Mount for a non-positive surface size.
	ErrInvalidSize = errors.New("render: surface size must be positive")

	// ErrUnknownKind is returned for an unregistered renderer kind.
	ErrUnknownKind = errors.New("render: unknown renderer kind")
)

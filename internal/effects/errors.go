package effects

import "errors"

// Domain errors for effect construction and lookup.
var (
	// ErrUnknownEffect indicates a name with no registered constructor.
	ErrUnknownEffect = errors.New("effects: unknown effect")

	// ErrUnknownPalette indicates a gradient palette name that does not exist.
	ErrUnknownPalette = errors.New("effects: unknown palette")

	// ErrInvalidSize indicates a zero or negative canvas dimension.
	ErrInvalidSize = errors.New("effects: canvas size must be positive")
)

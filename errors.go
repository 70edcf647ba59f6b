package skinresolver

import "errors"

var (
	// ErrSourceNotFound is returned when the skin source (file, URL) is
	// missing or unreachable.
	ErrSourceNotFound = errors.New("skin source not found")
	// ErrInvalidDimension is returned for non-positive target sizes, scale
	// factors below one, and mismatched operand sizes.
	ErrInvalidDimension = errors.New("invalid dimension")
	// ErrOutOfBounds is returned when a crop rectangle is not inside the
	// source image.
	ErrOutOfBounds = errors.New("rectangle out of bounds")
	// ErrUnknownBodyPart is returned for BodyPart values outside the table.
	ErrUnknownBodyPart = errors.New("unknown body part")
)

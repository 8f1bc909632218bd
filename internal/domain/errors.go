package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidParameterRange marks inputs outside the range an engine accepts.
// Engines fail fast with it and never return a partial result.
var ErrInvalidParameterRange = errors.New("invalid parameter range")

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameterRange, fmt.Sprintf(format, args...))
}

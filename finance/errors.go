package finance

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput reports a parameter outside the formula's domain.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidRate reports a rate the formula cannot use. It matches ErrInvalidInput.
	ErrInvalidRate = fmt.Errorf("%w: invalid rate", ErrInvalidInput)
	// ErrNumericOverflow reports a result too large for a float64.
	ErrNumericOverflow = errors.New("numeric overflow")
)

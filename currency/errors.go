package currency

import (
	"errors"
	"fmt"
)

// ErrInvalidPairString is returned when a pair string cannot be split into a
// base and quote code
var ErrInvalidPairString = errors.New("invalid currency pair string")

func errInvalidPairString(s string) error {
	return fmt.Errorf("%w: %q", ErrInvalidPairString, s)
}

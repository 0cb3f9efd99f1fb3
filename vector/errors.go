package vector

import (
	"errors"
	"fmt"
)

// ErrDimension is returned when a slice cannot be converted into a vector
// because its length does not match the vector's dimension.
var ErrDimension = errors.New("vector: slice length does not match dimension")

// DimensionError wraps ErrDimension with the expected and actual lengths.
func DimensionError(want, got int) error {
	return fmt.Errorf("%w: want %d, got %d", ErrDimension, want, got)
}

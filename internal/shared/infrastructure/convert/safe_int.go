// Package convert provides checked integer conversions.
package convert

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrOutOfRange is returned when a value does not fit the target type.
var ErrOutOfRange = errors.New("integer out of range")

// Int64ToInt32 converts v to int32, returning ErrOutOfRange on overflow.
func Int64ToInt32(v int64) (int32, error) {
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0, fmt.Errorf("%w: %d does not fit in int32", ErrOutOfRange, v)
	}
	return int32(v), nil
}

// ParsePositiveInt32 parses a base-10 integer in [1, MaxInt32].
func ParsePositiveInt32(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", s, err)
	}
	if v < 1 {
		return 0, fmt.Errorf("%w: %d is not positive", ErrOutOfRange, v)
	}
	return Int64ToInt32(v)
}

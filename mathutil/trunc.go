package mathutil

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Trunc drops the fractional part of f and saturates to the uint64 range.
// NaN maps to 0.
func Trunc[F constraints.Float](f F) uint64 {
	v := float64(f)
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= math.MaxUint64:
		return math.MaxUint64
	default:
		return uint64(v)
	}
}

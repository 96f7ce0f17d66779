// Package scalar provides checked conversions between numeric types and
// width-native square roots for the vector package.
package scalar

import (
	"errors"
	"fmt"
	"math"
	"unsafe"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Number is any built-in integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// ErrRange reports a conversion whose source value cannot be represented
// in the target type.
var ErrRange = errors.New("scalar: value out of range")

// Convert converts v to T. Conversions to a floating-point target never
// fail: NaN and infinities pass through, and a narrowing float conversion
// may overflow to an infinity. Conversions to an integer target fail with
// ErrRange when v is NaN, infinite, or outside T's range; fractional
// values are truncated toward zero.
func Convert[T Number, S Number](v S) (T, error) {
	if isFloat[T]() {
		return T(v), nil
	}
	if isFloat[S]() {
		return floatToInt[T](float64(v))
	}
	return intToInt[T](v)
}

// Sqrt computes the square root in the width of T. float32 arguments use
// math32 so they never round-trip through float64. For integer T the
// result is truncated toward zero.
func Sqrt[T Number](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Sqrt(v))
	case float64:
		return T(math.Sqrt(v))
	}
	return T(math.Sqrt(float64(x)))
}

func floatToInt[T Number](f float64) (T, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("scalar: cannot convert %v to integer: %w", f, ErrRange)
	}
	f = math.Trunc(f)
	lo, hi := intRange[T]()
	// hi is exclusive: 2^(bits-1) itself is one past the largest signed
	// value, and unlike the inclusive maximum it is float64-exact.
	if f < lo || f >= hi {
		return 0, fmt.Errorf("scalar: %v overflows target type: %w", f, ErrRange)
	}
	return T(f), nil
}

func intToInt[T Number, S Number](v S) (T, error) {
	t := T(v)
	// A wrapped conversion either fails the round trip or flips the sign
	// (same-width signed/unsigned round-trips cleanly, so check both).
	if S(t) != v || (t < 0) != (v < 0) {
		return 0, fmt.Errorf("scalar: %v overflows target type: %w", v, ErrRange)
	}
	return t, nil
}

func intRange[T Number]() (lo, hi float64) {
	bits := int(unsafe.Sizeof(T(0))) * 8
	if isSigned[T]() {
		hi = math.Ldexp(1, bits-1)
		return -hi, hi
	}
	return 0, math.Ldexp(1, bits)
}

func isFloat[T Number]() bool {
	var one T = 1
	return one/2 != 0
}

func isSigned[T Number]() bool {
	var t T
	t--
	return t < 0
}

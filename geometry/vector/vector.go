// Package vector provides a generic three-component vector type with the
// usual Euclidean operations.
package vector

import (
	"vec3/internal/scalar"
)

// Number is any built-in integer or floating-point type. Construction and
// the algebraic operations are defined for all of them; Length and
// Normalize are meaningful for floating-point element types.
type Number = scalar.Number

// ErrRange reports a constructor whose source value cannot be represented
// in the element type.
var ErrRange = scalar.ErrRange

// Vec3 is a three-component vector with element type T. It is a plain
// value: assignment copies, and every operation returns a new vector.
type Vec3[T Number] struct{ X, Y, Z T }

// Zero returns the zero vector.
func Zero[T Number]() Vec3[T] { return Vec3[T]{} }

// New creates a vector from its components.
func New[T Number](x, y, z T) Vec3[T] { return Vec3[T]{X: x, Y: y, Z: z} }

// Splat creates a vector with all three components set to s, converted to
// the element type. It fails with ErrRange when s is out of T's range; NaN
// and infinities convert freely between floating-point types and are never
// a failure.
func Splat[T Number, S Number](s S) (Vec3[T], error) {
	c, err := scalar.Convert[T](s)
	if err != nil {
		return Vec3[T]{}, err
	}
	return Vec3[T]{X: c, Y: c, Z: c}, nil
}

// From broadcasts a scalar to all three components, with the same
// conversion semantics as Splat.
func From[T Number, S Number](s S) (Vec3[T], error) { return Splat[T](s) }

// FromXYZ creates a vector from three components of a possibly different
// numeric type, converting each independently with Splat's semantics.
// On failure no vector is produced.
func FromXYZ[T Number, S Number](x, y, z S) (Vec3[T], error) {
	cx, err := scalar.Convert[T](x)
	if err != nil {
		return Vec3[T]{}, err
	}
	cy, err := scalar.Convert[T](y)
	if err != nil {
		return Vec3[T]{}, err
	}
	cz, err := scalar.Convert[T](z)
	if err != nil {
		return Vec3[T]{}, err
	}
	return Vec3[T]{X: cx, Y: cy, Z: cz}, nil
}

// MustSplat is Splat that panics on conversion failure.
func MustSplat[T Number, S Number](s S) Vec3[T] {
	v, err := Splat[T](s)
	if err != nil {
		panic(err)
	}
	return v
}

// MustFromXYZ is FromXYZ that panics on conversion failure.
func MustFromXYZ[T Number, S Number](x, y, z S) Vec3[T] {
	v, err := FromXYZ[T](x, y, z)
	if err != nil {
		panic(err)
	}
	return v
}

// Add returns the sum of two vectors.
func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns the difference between two vectors.
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Mul scales a vector by a scalar.
func (v Vec3[T]) Mul(k T) Vec3[T] { return Vec3[T]{v.X * k, v.Y * k, v.Z * k} }

// Neg returns the componentwise negation.
func (v Vec3[T]) Neg() Vec3[T] { return Vec3[T]{-v.X, -v.Y, -v.Z} }

// Dot returns the dot product of two vectors.
func (v Vec3[T]) Dot(o Vec3[T]) T { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// LengthSquared returns the squared Euclidean length, Dot(v, v).
func (v Vec3[T]) LengthSquared() T { return v.Dot(v) }

// Length returns the Euclidean length. For integer element types the
// result is truncated toward zero.
func (v Vec3[T]) Length() T { return scalar.Sqrt(v.LengthSquared()) }

// Cross returns the cross product of two vectors.
func (v Vec3[T]) Cross(o Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Normalize returns a unit vector in the same direction. A vector whose
// squared length is not strictly positive (the zero vector, or one with a
// NaN component) is returned unchanged.
func (v Vec3[T]) Normalize() Vec3[T] {
	lsq := v.LengthSquared()
	if !(lsq > 0) {
		return v
	}
	return v.Mul(1 / scalar.Sqrt(lsq))
}

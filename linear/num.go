// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"math"
	"unsafe"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Float is the element type of vectors, matrices and
// quaternions.
type Float interface {
	constraints.Float
}

// Bits returns the number of bits in T (either 32 or 64).
func Bits[T Float]() int { return int(unsafe.Sizeof(T(0))) * 8 }

// Epsilon returns the machine epsilon of T.
func Epsilon[T Float]() T {
	if Bits[T]() == 32 {
		return T(0x1p-23)
	}
	return T(0x1p-52)
}

// The functions below use math32 for single-precision
// values so they need not round-trip through float64.

// Sqrt returns the square root of x.
func Sqrt[T Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Sqrt(v))
	}
	return T(math.Sqrt(float64(x)))
}

// Sin returns the sine of x.
func Sin[T Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Sin(v))
	}
	return T(math.Sin(float64(x)))
}

// Cos returns the cosine of x.
func Cos[T Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Cos(v))
	}
	return T(math.Cos(float64(x)))
}

// Acos returns the arccosine of x.
// x is clamped to [-1, 1].
func Acos[T Float](x T) T {
	x = max(-1, min(1, x))
	if v, ok := any(x).(float32); ok {
		return T(math32.Acos(v))
	}
	return T(math.Acos(float64(x)))
}

// Abs returns the absolute value of x.
func Abs[T Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Package floathelp holds the float32 math helpers shared by the vector
// packages. The stdlib math package works on float64 only; these wrappers
// keep the casts in one place.
package floathelp

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Epsilon is the tolerance below which a float32 magnitude is treated as zero.
// It is the distance between 1.0 and the next representable float32.
const Epsilon float32 = 1.1920928955078125e-7

func Sqrt(f float32) float32 {
	return float32(math.Sqrt(float64(f)))
}

func Abs(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}

func ToRadians(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}

func ToDegrees(radians float64) float64 {
	return radians * (180 / math.Pi)
}

// CosDeg is the cosine of an angle given in degrees.
func CosDeg(degrees float64) float32 {
	return float32(math.Cos(ToRadians(degrees)))
}

// SinDeg is the sine of an angle given in degrees.
func SinDeg(degrees float64) float32 {
	return float32(math.Sin(ToRadians(degrees)))
}

// IsEqual reports whether a and b differ by no more than Epsilon.
func IsEqual(a, b float32) bool {
	return Abs(a-b) <= Epsilon
}

// IsFinite reports whether f is neither NaN nor infinite.
func IsFinite(f float32) bool {
	f64 := float64(f)
	return !math.IsNaN(f64) && !math.IsInf(f64, 0)
}

func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

package vmath

import "math"

// Real is the scalar type every geometric quantity is built from. Switching
// the renderer to another precision is a matter of changing this alias and
// the wrappers below; nothing outside this file names float64 directly.
type Real = float64

// Epsilon is the default tolerance for geometric degeneracy tests
// (parallel rays, zero determinants).
const Epsilon Real = 1e-8

const Pi Real = math.Pi

func Sqrt(x Real) Real        { return math.Sqrt(x) }
func Abs(x Real) Real         { return math.Abs(x) }
func Sin(x Real) Real         { return math.Sin(x) }
func Cos(x Real) Real         { return math.Cos(x) }
func Tan(x Real) Real         { return math.Tan(x) }
func Acos(x Real) Real        { return math.Acos(x) }
func Atan2(y, x Real) Real    { return math.Atan2(y, x) }
func Pow(x, y Real) Real      { return math.Pow(x, y) }
func Mod(x, y Real) Real      { return math.Mod(x, y) }
func Inf() Real               { return math.Inf(1) }
func IsInf(x Real) bool       { return math.IsInf(x, 0) }
func Floor(x Real) Real       { return math.Floor(x) }
func Min(a, b Real) Real      { return math.Min(a, b) }
func Max(a, b Real) Real      { return math.Max(a, b) }
func Radians(deg Real) Real   { return deg * Pi / 180 }

// Fract01 wraps x into [0, 1), mapping negative fractional values onto the
// positive side. Used for periodic UV coordinates.
func Fract01(x Real) Real {
	f := Mod(Mod(x, 1)+1, 1)
	if f == 1 { // Mod can land exactly on 1 after the shift
		return 0
	}
	return f
}

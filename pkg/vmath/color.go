package vmath

// Color is an RGB triple with linear components. It shares Vec3's arithmetic
// so shading code can accumulate and scale contributions directly.
type Color = Vec3

// NewColor creates a color from linear RGB components
func NewColor(r, g, b Real) Color {
	return Color{X: r, Y: g, Z: b}
}

// Black is the zero contribution
func Black() Color { return Color{} }

// White is full intensity in all channels
func White() Color { return Color{X: 1, Y: 1, Z: 1} }

// GammaCorrect applies gamma correction to color values
func GammaCorrect(c Color, gamma Real) Color {
	invGamma := 1.0 / gamma
	return Color{
		X: Pow(c.X, invGamma),
		Y: Pow(c.Y, invGamma),
		Z: Pow(c.Z, invGamma),
	}
}

// Luminance returns the perceptual luminance of an RGB color
// using the standard weights 0.299*R + 0.587*G + 0.114*B.
func Luminance(c Color) Real {
	return 0.299*c.X + 0.587*c.Y + 0.114*c.Z
}

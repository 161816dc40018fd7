package vmath

// Vec2 represents a 2D vector, used for UV coordinates and sample points
type Vec2 struct {
	X, Y Real
}

// NewVec2 creates a new Vec2
func NewVec2(x, y Real) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the sum of two vectors
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns the difference of two vectors
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale returns the vector scaled by a scalar
func (v Vec2) Scale(s Real) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dot returns the dot product of two vectors
func (v Vec2) Dot(other Vec2) Real {
	return v.X*other.X + v.Y*other.Y
}

// Length returns the magnitude of the vector
func (v Vec2) Length() Real {
	return Sqrt(v.X*v.X + v.Y*v.Y)
}

package vmath

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z Real
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z Real) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns the difference of two vectors
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns the vector scaled by a scalar
func (v Vec3) Scale(s Real) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) Real {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors (right-handed)
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() Real {
	return Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() Real {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalize returns a unit vector in the same direction.
// The zero vector is the caller's responsibility; it is returned unchanged.
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		return v
	}
	return Vec3{v.X / length, v.Y / length, v.Z / length}
}

// MulVec returns component-wise multiplication of two vectors
func (v Vec3) MulVec(other Vec3) Vec3 {
	return Vec3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// Clamp returns a vector with components clamped to [lo, hi]
func (v Vec3) Clamp(lo, hi Real) Vec3 {
	return Vec3{
		X: Max(lo, Min(hi, v.X)),
		Y: Max(lo, Min(hi, v.Y)),
		Z: Max(lo, Min(hi, v.Z)),
	}
}

// Reflect returns v mirrored about the unit normal n: 2(v·n)n − v.
// Both the light-direction convention (pointing away from the surface) and
// the Phong highlight test rely on this form.
func (v Vec3) Reflect(n Vec3) Vec3 {
	return n.Scale(2 * v.Dot(n)).Sub(v)
}

// Ray represents a parametric line with an origin and direction
type Ray struct {
	Origin Vec3
	Dir    Vec3
}

// NewRay creates a new ray
func NewRay(origin, dir Vec3) Ray {
	return Ray{Origin: origin, Dir: dir}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t Real) Vec3 {
	return r.Origin.Add(r.Dir.Scale(t))
}

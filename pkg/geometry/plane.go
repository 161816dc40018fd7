package geometry

import "github.com/fathom3d/fathom/pkg/vmath"

// Plane represents an infinite plane defined by an anchor point, a normal,
// and a right vector that fixes the orientation of the UV grid on the plane.
type Plane struct {
	Anchor vmath.Vec3
	Normal vmath.Vec3 // unit length
	Right  vmath.Vec3 // unit length, u axis of the UV grid

	uvBasis vmath.Mat3 // cached inverse of [right, right×normal, normal]
}

// NewPlane creates a new plane. Normal and right are normalized; right must
// not be parallel to normal.
func NewPlane(anchor, normal, right vmath.Vec3) *Plane {
	n := normal.Normalize()
	r := right.Normalize()
	f := r.Cross(n)

	// Columns of the basis matrix are the plane's u axis, its v axis
	// and the normal. Inverting once here turns the per-hit 3×3 solve
	// into a matrix-vector product.
	basis := vmath.Mat3{
		r.X, f.X, n.X,
		r.Y, f.Y, n.Y,
		r.Z, f.Z, n.Z,
	}
	return &Plane{
		Anchor:  anchor,
		Normal:  n,
		Right:   r,
		uvBasis: basis.Inverse(),
	}
}

// Intersect solves t = (anchor − origin)·n / (dir·n). A ray parallel to the
// plane never hits.
func (p *Plane) Intersect(ray vmath.Ray) []Hit {
	denom := ray.Dir.Dot(p.Normal)
	if vmath.Abs(denom) < vmath.Epsilon {
		return nil
	}

	t := p.Anchor.Sub(ray.Origin).Dot(p.Normal) / denom
	point := ray.At(t)
	return []Hit{{
		T:      t,
		Point:  point,
		Normal: p.Normal,
		UV:     p.uv(point),
	}}
}

// uv expresses the hit in the plane's (right, right×normal, normal) frame
// and wraps the planar coordinates into [0,1). The wrap is required because
// the raw solve produces negative fractional coordinates behind the anchor.
func (p *Plane) uv(point vmath.Vec3) vmath.Vec2 {
	local := p.uvBasis.MulVec(point.Sub(p.Anchor))
	return vmath.NewVec2(vmath.Fract01(local.X), vmath.Fract01(local.Y))
}

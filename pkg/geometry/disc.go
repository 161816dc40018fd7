package geometry

import "github.com/fathom3d/fathom/pkg/vmath"

// Disc is a bounded circular patch of a plane.
type Disc struct {
	Center vmath.Vec3
	Normal vmath.Vec3 // unit length
	Right  vmath.Vec3 // unit length, angular origin of the polar UV
	Radius vmath.Real

	up vmath.Vec3 // cached normal×right
}

// NewDisc creates a new disc; normal and right are normalized
func NewDisc(center, normal, right vmath.Vec3, radius vmath.Real) *Disc {
	n := normal.Normalize()
	r := right.Normalize()
	return &Disc{
		Center: center,
		Normal: n,
		Right:  r,
		Radius: radius,
		up:     n.Cross(r),
	}
}

// Intersect is the plane test restricted to |hit − center| ≤ radius.
// UV is polar: u the angle from the right vector over 2π, v the
// radius-normalized distance from the center.
func (d *Disc) Intersect(ray vmath.Ray) []Hit {
	denom := ray.Dir.Dot(d.Normal)
	if vmath.Abs(denom) < vmath.Epsilon {
		return nil
	}

	t := d.Center.Sub(ray.Origin).Dot(d.Normal) / denom
	point := ray.At(t)
	offset := point.Sub(d.Center)
	distSq := offset.LengthSquared()
	if distSq > d.Radius*d.Radius {
		return nil
	}

	angle := vmath.Atan2(offset.Dot(d.up), offset.Dot(d.Right))
	return []Hit{{
		T:      t,
		Point:  point,
		Normal: d.Normal,
		UV: vmath.NewVec2(
			vmath.Fract01(angle/(2*vmath.Pi)),
			vmath.Sqrt(distSq)/d.Radius,
		),
	}}
}

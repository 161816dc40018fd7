package geometry

import "github.com/fathom3d/fathom/pkg/vmath"

// Cylinder is a finite open-ended cylinder around the y axis, centered at
// the origin, spanning y in [−height/2, height/2]. Scene transforms place it
// anywhere else.
type Cylinder struct {
	Radius vmath.Real
	Height vmath.Real
}

// NewCylinder creates a new cylinder
func NewCylinder(radius, height vmath.Real) *Cylinder {
	return &Cylinder{Radius: radius, Height: height}
}

// Intersect solves the quadratic in x/z of the infinite cylinder and keeps
// the roots whose y lies within the height bounds. UV combines the angular
// position (u) with the normalized height (v).
func (c *Cylinder) Intersect(ray vmath.Ray) []Hit {
	a := ray.Dir.X*ray.Dir.X + ray.Dir.Z*ray.Dir.Z
	if a < vmath.Epsilon {
		return nil // ray parallel to the axis
	}
	b := 2 * (ray.Origin.X*ray.Dir.X + ray.Origin.Z*ray.Dir.Z)
	k := ray.Origin.X*ray.Origin.X + ray.Origin.Z*ray.Origin.Z - c.Radius*c.Radius

	discriminant := b*b - 4*a*k
	if discriminant < 0 {
		return nil
	}

	var roots []vmath.Real
	if discriminant == 0 {
		roots = []vmath.Real{-b / (2 * a)}
	} else {
		sqrtD := vmath.Sqrt(discriminant)
		roots = []vmath.Real{(-b - sqrtD) / (2 * a), (-b + sqrtD) / (2 * a)}
	}

	halfH := c.Height / 2
	var hits []Hit
	for _, t := range roots {
		point := ray.At(t)
		if point.Y < -halfH || point.Y > halfH {
			continue
		}
		hits = append(hits, Hit{
			T:      t,
			Point:  point,
			Normal: vmath.NewVec3(point.X/c.Radius, 0, point.Z/c.Radius),
			UV: vmath.NewVec2(
				vmath.Fract01(vmath.Atan2(point.X, point.Z)/(2*vmath.Pi)),
				(point.Y+halfH)/c.Height,
			),
		})
	}
	return hits
}

package geometry

import "github.com/fathom3d/fathom/pkg/vmath"

// Sphere represents a sphere shape
type Sphere struct {
	Center vmath.Vec3
	Radius vmath.Real
}

// NewSphere creates a new sphere
func NewSphere(center vmath.Vec3, radius vmath.Real) *Sphere {
	return &Sphere{Center: center, Radius: radius}
}

// Intersect solves the classic quadratic at² + bt + c = 0.
// A negative discriminant is a miss, zero is a single tangential hit, and a
// positive discriminant yields the near and far hits in that order.
func (s *Sphere) Intersect(ray vmath.Ray) []Hit {
	oc := ray.Origin.Sub(s.Center)
	a := ray.Dir.Dot(ray.Dir)
	b := 2.0 * ray.Dir.Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	if discriminant == 0 {
		t := -b / (2 * a)
		return []Hit{s.hitAt(ray, t)}
	}

	sqrtD := vmath.Sqrt(discriminant)
	near := (-b - sqrtD) / (2 * a)
	far := (-b + sqrtD) / (2 * a)
	return []Hit{s.hitAt(ray, near), s.hitAt(ray, far)}
}

func (s *Sphere) hitAt(ray vmath.Ray, t vmath.Real) Hit {
	point := ray.At(t)
	local := point.Sub(s.Center).Scale(1.0 / s.Radius)
	return Hit{
		T:      t,
		Point:  point,
		Normal: local,
		UV:     sphereUV(local),
	}
}

// sphereUV is the longitude/latitude parameterization of the unit direction:
// u = atan2(x, z) / 2π wrapped into [0,1), v = −acos(y) / π.
func sphereUV(local vmath.Vec3) vmath.Vec2 {
	u := vmath.Fract01(vmath.Atan2(local.X, local.Z) / (2 * vmath.Pi))
	v := -vmath.Acos(vmath.Max(-1, vmath.Min(1, local.Y))) / vmath.Pi
	return vmath.NewVec2(u, v)
}

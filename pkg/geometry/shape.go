// Package geometry holds the ray/primitive intersection routines. Every
// shape is an immutable value; Intersect allocates nothing persistent and is
// safe to call concurrently on the same shape.
package geometry

import "github.com/fathom3d/fathom/pkg/vmath"

// Hit is one ray/surface intersection: the ray parameter together with the
// surface point data shading needs, produced in one step so callers never
// recompute UVs.
type Hit struct {
	T      vmath.Real
	Point  vmath.Vec3
	Normal vmath.Vec3 // unit length
	UV     vmath.Vec2
}

// Shape is anything a ray can intersect. Intersect returns every
// intersection along the ray, in no guaranteed order; callers filter and
// sort. A miss is the empty slice, never an error. A tangential hit
// (discriminant exactly zero) is reported once, not twice.
type Shape interface {
	Intersect(ray vmath.Ray) []Hit
}

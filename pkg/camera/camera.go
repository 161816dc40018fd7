// Package camera maps pixel sample points to world-space rays. Each model
// shares the same orthonormal eye basis, built once at construction; per
// pixel work is a handful of multiply-adds.
package camera

import "github.com/fathom3d/fathom/pkg/vmath"

// Camera generates a ray for a pixel sample point. The pixel coordinate is
// in pixel units with the y axis already pointing up (the renderer flips
// image rows before calling). lens is a unit-disc sample for models with a
// physical aperture; others ignore it. The second return is false when the
// pixel lies outside the camera's projection domain (fisheye image circle),
// in which case the sample contributes nothing.
type Camera interface {
	Ray(width, height int, pixel vmath.Vec2, lens vmath.Vec2) (vmath.Ray, bool)
}

// Basis is the orthonormal eye frame (u right, v up, w opposite the gaze)
// every camera model is built on.
type Basis struct {
	Eye     vmath.Vec3
	U, V, W vmath.Vec3
}

// NewBasis builds the frame by Gram–Schmidt from eye, gaze and up:
// w = −normalize(gaze), u = normalize(up × w), v = w × u.
// Gaze and up must be non-zero and non-parallel.
func NewBasis(eye, gaze, up vmath.Vec3) Basis {
	w := gaze.Normalize().Negate()
	u := up.Cross(w).Normalize()
	v := w.Cross(u)
	return Basis{Eye: eye, U: u, V: v, W: w}
}

package camera

import "github.com/fathom3d/fathom/pkg/vmath"

// Spherical is the equirectangular panoramic camera: pixel offsets map
// linearly to azimuth and elevation, with independent horizontal and
// vertical fields of view (a full panorama is hfov = 2π, vfov = π).
type Spherical struct {
	basis    Basis
	halfHFOV vmath.Real
	halfVFOV vmath.Real
}

// NewSpherical creates a spherical camera from full view angles in radians
func NewSpherical(eye, gaze, up vmath.Vec3, hfov, vfov vmath.Real) *Spherical {
	return &Spherical{
		basis:    NewBasis(eye, gaze, up),
		halfHFOV: hfov / 2,
		halfVFOV: vfov / 2,
	}
}

// Ray maps the normalized pixel offset to (azimuth, elevation), converts to
// the polar angles phi = π − azimuth, theta = π/2 − elevation, and rebuilds
// the direction from spherical coordinates in the eye frame.
func (c *Spherical) Ray(width, height int, pixel vmath.Vec2, _ vmath.Vec2) (vmath.Ray, bool) {
	nx := 2*pixel.X/vmath.Real(width) - 1  // [-1, 1] across the image
	ny := 2*pixel.Y/vmath.Real(height) - 1

	azimuth := nx * c.halfHFOV
	elevation := ny * c.halfVFOV

	phi := vmath.Pi - azimuth
	theta := vmath.Pi/2 - elevation

	sinTheta := vmath.Sin(theta)
	dir := c.basis.U.Scale(sinTheta * vmath.Sin(phi)).
		Add(c.basis.V.Scale(vmath.Cos(theta))).
		Add(c.basis.W.Scale(sinTheta * vmath.Cos(phi)))
	return vmath.NewRay(c.basis.Eye, dir), true
}

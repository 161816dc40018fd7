package camera

import "github.com/fathom3d/fathom/pkg/vmath"

// Fisheye maps pixels inside the image circle to directions whose angle from
// the gaze axis grows linearly with the pixel's distance from the image
// center (equidistant fisheye projection).
type Fisheye struct {
	basis   Basis
	halfFOV vmath.Real // angular radius of the image circle
}

// NewFisheye creates a fisheye camera; fov is the full view angle in radians
// across the image circle.
func NewFisheye(eye, gaze, up vmath.Vec3, fov vmath.Real) *Fisheye {
	return &Fisheye{basis: NewBasis(eye, gaze, up), halfFOV: fov / 2}
}

// Ray returns no ray for pixels outside the inscribed image circle; the
// renderer skips those samples.
func (c *Fisheye) Ray(width, height int, pixel vmath.Vec2, _ vmath.Vec2) (vmath.Ray, bool) {
	dx := pixel.X - vmath.Real(width)/2
	dy := pixel.Y - vmath.Real(height)/2
	halfMin := vmath.Min(vmath.Real(width), vmath.Real(height)) / 2

	r := vmath.Sqrt(dx*dx+dy*dy) / halfMin
	if r > 1 {
		return vmath.Ray{}, false
	}

	psi := c.halfFOV * r           // angle from the optical axis
	azimuth := vmath.Atan2(dy, dx) // of the pixel offset in the image plane

	sinPsi := vmath.Sin(psi)
	dir := c.basis.U.Scale(sinPsi * vmath.Cos(azimuth)).
		Add(c.basis.V.Scale(sinPsi * vmath.Sin(azimuth))).
		Add(c.basis.W.Scale(-vmath.Cos(psi)))
	return vmath.NewRay(c.basis.Eye, dir), true
}

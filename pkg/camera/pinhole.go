package camera

import "github.com/fathom3d/fathom/pkg/vmath"

// Pinhole is the ideal perspective camera: every ray passes through the eye.
type Pinhole struct {
	basis    Basis
	halfVFOV vmath.Real // vertical field of view, halved at construction
}

// NewPinhole creates a pinhole camera with the given vertical field of view
// in radians.
func NewPinhole(eye, gaze, up vmath.Vec3, vfov vmath.Real) *Pinhole {
	return &Pinhole{
		basis:    NewBasis(eye, gaze, up),
		halfVFOV: vfov / 2,
	}
}

// Ray places the image plane at the distance where the screen height spans
// the field of view, so direction = −w·(h/2 / tan(vfov/2)) + u·dx + v·dy.
func (c *Pinhole) Ray(width, height int, pixel vmath.Vec2, _ vmath.Vec2) (vmath.Ray, bool) {
	planeDist := vmath.Real(height) / 2 / vmath.Tan(c.halfVFOV)
	dir := c.basis.W.Scale(-planeDist).
		Add(c.basis.U.Scale(pixel.X - vmath.Real(width)/2)).
		Add(c.basis.V.Scale(pixel.Y - vmath.Real(height)/2)).
		Normalize()
	return vmath.NewRay(c.basis.Eye, dir), true
}

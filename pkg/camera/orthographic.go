package camera

import "github.com/fathom3d/fathom/pkg/vmath"

// Orthographic projects along a constant direction; the ray origin slides
// across the image plane instead.
type Orthographic struct {
	basis Basis
	Scale vmath.Real // world-space height of the view volume
}

// NewOrthographic creates an orthographic camera; scale is the world height
// covered by the image.
func NewOrthographic(eye, gaze, up vmath.Vec3, scale vmath.Real) *Orthographic {
	return &Orthographic{basis: NewBasis(eye, gaze, up), Scale: scale}
}

// Ray offsets the eye within the image rectangle (aspect-corrected
// horizontally) and fires along −w.
func (c *Orthographic) Ray(width, height int, pixel vmath.Vec2, _ vmath.Vec2) (vmath.Ray, bool) {
	w := vmath.Real(width)
	h := vmath.Real(height)
	aspect := w / h
	origin := c.basis.Eye.
		Add(c.basis.U.Scale(aspect * c.Scale * (pixel.X - w/2) / w)).
		Add(c.basis.V.Scale(c.Scale * (pixel.Y - h/2) / h))
	return vmath.NewRay(origin, c.basis.W.Negate()), true
}

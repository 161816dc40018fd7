package camera

import "github.com/fathom3d/fathom/pkg/vmath"

// ThinLens is the perspective camera with a finite aperture: rays originate
// on a lens disc around the eye and converge on the focal plane, producing
// depth-of-field blur away from it.
type ThinLens struct {
	basis       Basis
	halfVFOV    vmath.Real
	LensRadius  vmath.Real
	FocalLength vmath.Real
}

// NewThinLens creates a thin-lens camera. vfov is the vertical field of view
// in radians; focalLength is the eye distance of the plane in perfect focus.
func NewThinLens(eye, gaze, up vmath.Vec3, vfov, lensRadius, focalLength vmath.Real) *ThinLens {
	return &ThinLens{
		basis:       NewBasis(eye, gaze, up),
		halfVFOV:    vfov / 2,
		LensRadius:  lensRadius,
		FocalLength: focalLength,
	}
}

// Ray finds the pinhole ray's intersection with the focal plane, then bends
// the ray to start from a lens-radius-scaled disc sample. All rays through
// one pixel meet at the focal point, so geometry on the focal plane stays
// sharp.
func (c *ThinLens) Ray(width, height int, pixel vmath.Vec2, lens vmath.Vec2) (vmath.Ray, bool) {
	planeDist := vmath.Real(height) / 2 / vmath.Tan(c.halfVFOV)
	dir := c.basis.W.Scale(-planeDist).
		Add(c.basis.U.Scale(pixel.X - vmath.Real(width)/2)).
		Add(c.basis.V.Scale(pixel.Y - vmath.Real(height)/2))

	// Scale the image-plane direction so its depth along the gaze equals
	// the focal length.
	focalPoint := c.basis.Eye.Add(dir.Scale(c.FocalLength / planeDist))

	origin := c.basis.Eye.
		Add(c.basis.U.Scale(lens.X * c.LensRadius)).
		Add(c.basis.V.Scale(lens.Y * c.LensRadius))

	return vmath.NewRay(origin, focalPoint.Sub(origin).Normalize()), true
}

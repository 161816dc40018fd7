package lights

import (
	"math/rand"

	"github.com/fathom3d/fathom/pkg/geometry"
	"github.com/fathom3d/fathom/pkg/sampling"
	"github.com/fathom3d/fathom/pkg/vmath"
)

// AmbientOccluder is an ambient light attenuated by local visibility: each
// query casts one hemisphere-sampled shadow ray of bounded length and
// reports dark if it hits anything within range. A single call is a one
// sample estimate; the renderer's per-pixel sample loop is what averages it
// into a smooth occlusion term.
type AmbientOccluder struct {
	Emission vmath.Color
	Distance vmath.Real // occlusion search radius
	Patterns sampling.HemiSet
}

// NewAmbientOccluder creates an ambient-occlusion light. patterns must be
// hemisphere-warped; distance bounds how far occluders can reach.
func NewAmbientOccluder(emission vmath.Color, distance vmath.Real, patterns sampling.HemiSet) *AmbientOccluder {
	return &AmbientOccluder{Emission: emission, Distance: distance, Patterns: patterns}
}

func (l *AmbientOccluder) DirectionFrom(sp geometry.Hit) vmath.Vec3 { return sp.Normal }
func (l *AmbientOccluder) Color() vmath.Color                       { return l.Emission }

// Illuminates builds a tangent frame around the surface normal, bends one
// hemisphere sample into it, and casts a bounded shadow ray.
func (l *AmbientOccluder) Illuminates(sp geometry.Hit, shadow ShadowTest, rng *rand.Rand) bool {
	pattern := l.Patterns.Choose(rng)
	sample := pattern[rng.Intn(len(pattern))]

	// Frame the hemisphere's pole along the normal with a random tangent,
	// so the azimuthal seam rotates between calls.
	w := sp.Normal
	tangent := vmath.NewVec3(rng.Float64()-0.5, rng.Float64()-0.5, rng.Float64()-0.5)
	u := tangent.Cross(w).Normalize()
	v := w.Cross(u)

	dir := u.Scale(sample.X).Add(v.Scale(sample.Y)).Add(w.Scale(sample.Z))
	_, blocked := shadow(vmath.NewRay(sp.Point, dir), l.Distance)
	return !blocked
}

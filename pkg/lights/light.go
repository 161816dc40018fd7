// Package lights defines the light model. Each light answers two questions
// about a surface point: which direction light arrives from, and whether the
// point is illuminated at all. Visibility runs through an injected shadow
// test so lights stay testable without a scene.
package lights

import (
	"math/rand"

	"github.com/fathom3d/fathom/pkg/geometry"
	"github.com/fathom3d/fathom/pkg/vmath"
)

// ShadowTest casts an occlusion ray and reports the nearest hit distance, if
// any. maxDist bounds the search; pass vmath.Inf() for an unbounded ray.
// The renderer supplies a closure over the scene; tests supply mocks.
type ShadowTest func(ray vmath.Ray, maxDist vmath.Real) (vmath.Real, bool)

// Light is one source of direct illumination.
type Light interface {
	// DirectionFrom returns the unit direction from the surface point
	// toward the light.
	DirectionFrom(sp geometry.Hit) vmath.Vec3

	// Color returns the light's radiant color.
	Color() vmath.Color

	// Illuminates reports whether the surface point receives this light,
	// using shadow for occlusion queries. Lights that sample (ambient
	// occlusion) draw from rng; deterministic lights ignore it.
	Illuminates(sp geometry.Hit, shadow ShadowTest, rng *rand.Rand) bool
}

// Directional is an infinitely distant light with a constant direction.
type Directional struct {
	Dir      vmath.Vec3 // unit direction toward the light
	Emission vmath.Color
}

// NewDirectional creates a directional light; dir points toward the light
func NewDirectional(dir vmath.Vec3, emission vmath.Color) *Directional {
	return &Directional{Dir: dir.Normalize(), Emission: emission}
}

func (l *Directional) DirectionFrom(geometry.Hit) vmath.Vec3 { return l.Dir }
func (l *Directional) Color() vmath.Color                    { return l.Emission }

// Illuminates requires the surface to face the light and the unbounded
// shadow ray to find no occluder.
func (l *Directional) Illuminates(sp geometry.Hit, shadow ShadowTest, _ *rand.Rand) bool {
	if l.Dir.Dot(sp.Normal) <= 0 {
		return false
	}
	_, blocked := shadow(vmath.NewRay(sp.Point, l.Dir), vmath.Inf())
	return !blocked
}

// Point is an omnidirectional light at a position.
type Point struct {
	Position vmath.Vec3
	Emission vmath.Color
}

// NewPoint creates a point light
func NewPoint(position vmath.Vec3, emission vmath.Color) *Point {
	return &Point{Position: position, Emission: emission}
}

func (l *Point) DirectionFrom(sp geometry.Hit) vmath.Vec3 {
	return l.Position.Sub(sp.Point).Normalize()
}

func (l *Point) Color() vmath.Color { return l.Emission }

// Illuminates requires a front-facing surface and no occluder nearer than
// the light itself; geometry behind the light does not shadow it.
func (l *Point) Illuminates(sp geometry.Hit, shadow ShadowTest, _ *rand.Rand) bool {
	toLight := l.Position.Sub(sp.Point)
	dist := toLight.Length()
	dir := toLight.Scale(1 / dist)
	if dir.Dot(sp.Normal) <= 0 {
		return false
	}
	_, blocked := shadow(vmath.NewRay(sp.Point, dir), dist)
	return !blocked
}

// Spot is a point light restricted to a cone.
type Spot struct {
	Position     vmath.Vec3
	Axis         vmath.Vec3 // unit direction the cone opens toward
	Emission     vmath.Color
	cosHalfAngle vmath.Real
}

// NewSpot creates a spot light aimed along axis with the given full cone
// angle in radians.
func NewSpot(position, axis vmath.Vec3, emission vmath.Color, coneAngle vmath.Real) *Spot {
	return &Spot{
		Position:     position,
		Axis:         axis.Normalize(),
		Emission:     emission,
		cosHalfAngle: vmath.Cos(coneAngle / 2),
	}
}

func (l *Spot) DirectionFrom(sp geometry.Hit) vmath.Vec3 {
	return l.Position.Sub(sp.Point).Normalize()
}

func (l *Spot) Color() vmath.Color { return l.Emission }

// Illuminates is the point-light test plus the cone test: the direction from
// the light to the point must lie within the half angle of the axis.
func (l *Spot) Illuminates(sp geometry.Hit, shadow ShadowTest, rng *rand.Rand) bool {
	toLight := l.Position.Sub(sp.Point)
	dist := toLight.Length()
	dir := toLight.Scale(1 / dist)
	if dir.Dot(sp.Normal) <= 0 {
		return false
	}
	if dir.Negate().Dot(l.Axis) <= l.cosHalfAngle {
		return false // outside the cone
	}
	_, blocked := shadow(vmath.NewRay(sp.Point, dir), dist)
	return !blocked
}

// Ambient is a constant fill light with no direction and no shadows. Its
// reported direction is the surface normal, which makes diffuse shading
// degenerate to a flat ambient term.
type Ambient struct {
	Emission vmath.Color
}

// NewAmbient creates an ambient light
func NewAmbient(emission vmath.Color) *Ambient {
	return &Ambient{Emission: emission}
}

func (l *Ambient) DirectionFrom(sp geometry.Hit) vmath.Vec3 { return sp.Normal }
func (l *Ambient) Color() vmath.Color                       { return l.Emission }

func (l *Ambient) Illuminates(geometry.Hit, ShadowTest, *rand.Rand) bool { return true }

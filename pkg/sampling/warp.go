package sampling

import (
	"math/rand"

	"github.com/fathom3d/fathom/pkg/vmath"
)

// DiscPattern is a pattern warped onto the unit disc, for lens sampling.
type DiscPattern []vmath.Vec2

// HemiPattern is a pattern warped onto the unit hemisphere about +z,
// for ambient-occlusion direction sampling.
type HemiPattern []vmath.Vec3

// HemiSet is a set of hemisphere patterns, drawn from like Set.
type HemiSet struct {
	Patterns []HemiPattern
}

// ToDisc maps every pattern of the set onto the unit disc with Shirley's
// concentric mapping, which preserves the stratification of the square.
func ToDisc(s Set) []DiscPattern {
	out := make([]DiscPattern, len(s.Patterns))
	for i, p := range s.Patterns {
		d := make(DiscPattern, len(p))
		for j, pt := range p {
			d[j] = ConcentricDisc(pt)
		}
		out[i] = d
	}
	return out
}

// ConcentricDisc warps one unit-square point onto the unit disc
func ConcentricDisc(sample vmath.Vec2) vmath.Vec2 {
	// Map to [-1,1]² and handle the degenerate center point
	x := 2*sample.X - 1
	y := 2*sample.Y - 1
	if x == 0 && y == 0 {
		return vmath.Vec2{}
	}

	var r, theta vmath.Real
	if vmath.Abs(x) > vmath.Abs(y) {
		r = x
		theta = vmath.Pi / 4 * (y / x)
	} else {
		r = y
		theta = vmath.Pi/2 - vmath.Pi/4*(x/y)
	}
	return vmath.NewVec2(r*vmath.Cos(theta), r*vmath.Sin(theta))
}

// ToHemisphere maps every pattern of the set onto the unit hemisphere with a
// cosine-power density, exponent e controlling concentration toward the pole
// (e=1 is the cosine distribution used for ambient occlusion).
func ToHemisphere(s Set, e vmath.Real) HemiSet {
	out := make([]HemiPattern, len(s.Patterns))
	for i, p := range s.Patterns {
		h := make(HemiPattern, len(p))
		for j, pt := range p {
			h[j] = CosinePowerHemisphere(pt, e)
		}
		out[i] = h
	}
	return HemiSet{Patterns: out}
}

// CosinePowerHemisphere warps one unit-square point onto the hemisphere
// with density proportional to cos(theta)^e.
func CosinePowerHemisphere(sample vmath.Vec2, e vmath.Real) vmath.Vec3 {
	phi := 2 * vmath.Pi * sample.X
	cosTheta := vmath.Pow(1-sample.Y, 1/(e+1))
	sinTheta := vmath.Sqrt(vmath.Max(0, 1-cosTheta*cosTheta))
	return vmath.NewVec3(
		sinTheta*vmath.Cos(phi),
		sinTheta*vmath.Sin(phi),
		cosTheta,
	)
}

// Choose draws one hemisphere pattern uniformly at random from the set
func (h HemiSet) Choose(rng *rand.Rand) HemiPattern {
	if len(h.Patterns) == 1 {
		return h.Patterns[0]
	}
	return h.Patterns[rng.Intn(len(h.Patterns))]
}

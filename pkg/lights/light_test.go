package lights

import (
	"math"
	"math/rand"
	"testing"

	"github.com/fathom3d/fathom/pkg/geometry"
	"github.com/fathom3d/fathom/pkg/sampling"
	"github.com/fathom3d/fathom/pkg/vmath"
)

// surfacePoint is a hit on the ground plane facing up, the workhorse of
// these tests.
func surfacePoint() geometry.Hit {
	return geometry.Hit{
		Point:  vmath.NewVec3(0, 0, 0),
		Normal: vmath.NewVec3(0, 1, 0),
	}
}

func noShadow(vmath.Ray, vmath.Real) (vmath.Real, bool) { return 0, false }

// occluderAt blocks every shadow ray with a hit at the given distance,
// honoring the maxDist bound the way the renderer's scene query does.
func occluderAt(dist vmath.Real) ShadowTest {
	return func(_ vmath.Ray, maxDist vmath.Real) (vmath.Real, bool) {
		if !math.IsInf(maxDist, 1) && dist >= maxDist {
			return 0, false
		}
		return dist, true
	}
}

func TestDirectional_Illuminates(t *testing.T) {
	light := NewDirectional(vmath.NewVec3(0, 1, 0), vmath.White())
	rng := rand.New(rand.NewSource(1))

	if !light.Illuminates(surfacePoint(), noShadow, rng) {
		t.Error("Expected an unoccluded front-facing point to be lit")
	}
	if light.Illuminates(surfacePoint(), occluderAt(100), rng) {
		t.Error("Expected any occluder to shadow a directional light")
	}
}

func TestDirectional_BackFace(t *testing.T) {
	light := NewDirectional(vmath.NewVec3(0, -1, 0), vmath.White())
	rng := rand.New(rand.NewSource(1))

	if light.Illuminates(surfacePoint(), noShadow, rng) {
		t.Error("Expected a surface facing away from the light to be dark")
	}
}

func TestDirectional_NormalizesDirection(t *testing.T) {
	light := NewDirectional(vmath.NewVec3(0, 5, 0), vmath.White())
	if math.Abs(light.DirectionFrom(surfacePoint()).Length()-1) > 1e-12 {
		t.Error("Expected a unit light direction")
	}
}

func TestPoint_OccluderBeyondLight(t *testing.T) {
	light := NewPoint(vmath.NewVec3(0, 5, 0), vmath.White())
	rng := rand.New(rand.NewSource(1))

	if !light.Illuminates(surfacePoint(), noShadow, rng) {
		t.Error("Expected an unoccluded point to be lit")
	}
	if light.Illuminates(surfacePoint(), occluderAt(2), rng) {
		t.Error("Expected an occluder between point and light to shadow")
	}
	if !light.Illuminates(surfacePoint(), occluderAt(10), rng) {
		t.Error("Expected geometry behind the light to cast no shadow")
	}
}

func TestPoint_DirectionFrom(t *testing.T) {
	light := NewPoint(vmath.NewVec3(3, 4, 0), vmath.White())
	dir := light.DirectionFrom(surfacePoint())
	if dir.Sub(vmath.NewVec3(0.6, 0.8, 0)).Length() > 1e-12 {
		t.Errorf("Expected direction (0.6, 0.8, 0), got %v", dir)
	}
}

func TestSpot_ConeTest(t *testing.T) {
	// Light above the origin aiming straight down, 90° cone: points within
	// 45° of the axis are inside.
	light := NewSpot(vmath.NewVec3(0, 5, 0), vmath.NewVec3(0, -1, 0), vmath.White(), vmath.Radians(90))
	rng := rand.New(rand.NewSource(1))

	inside := surfacePoint()
	if !light.Illuminates(inside, noShadow, rng) {
		t.Error("Expected a point on the axis to be lit")
	}

	outside := geometry.Hit{
		Point:  vmath.NewVec3(10, 0, 0),
		Normal: vmath.NewVec3(0, 1, 0),
	}
	if light.Illuminates(outside, noShadow, rng) {
		t.Error("Expected a point far outside the cone to be dark")
	}
}

func TestSpot_ShadowedInsideCone(t *testing.T) {
	light := NewSpot(vmath.NewVec3(0, 5, 0), vmath.NewVec3(0, -1, 0), vmath.White(), vmath.Radians(90))
	rng := rand.New(rand.NewSource(1))

	if light.Illuminates(surfacePoint(), occluderAt(2), rng) {
		t.Error("Expected an occluder inside the cone to shadow")
	}
	if !light.Illuminates(surfacePoint(), occluderAt(10), rng) {
		t.Error("Expected geometry behind the light to cast no shadow")
	}
}

func TestAmbient_AlwaysIlluminates(t *testing.T) {
	light := NewAmbient(vmath.NewColor(0.2, 0.2, 0.2))
	rng := rand.New(rand.NewSource(1))

	if !light.Illuminates(surfacePoint(), occluderAt(0.1), rng) {
		t.Error("Expected ambient light to ignore occlusion")
	}
	if dir := light.DirectionFrom(surfacePoint()); dir != vmath.NewVec3(0, 1, 0) {
		t.Errorf("Expected the surface normal as direction, got %v", dir)
	}
}

func TestAmbientOccluder_OpenAndBlocked(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	patterns := sampling.ToHemisphere(sampling.MultiJittered(4, 4, 4, rng), 1)
	light := NewAmbientOccluder(vmath.NewColor(0.3, 0.3, 0.3), 5, patterns)

	if !light.Illuminates(surfacePoint(), noShadow, rng) {
		t.Error("Expected an open hemisphere to be lit")
	}
	if light.Illuminates(surfacePoint(), occluderAt(1), rng) {
		t.Error("Expected a nearby occluder to darken the point")
	}
	// Occluders beyond the search radius do not count
	if !light.Illuminates(surfacePoint(), occluderAt(50), rng) {
		t.Error("Expected occluders beyond the distance bound to be ignored")
	}
}

func TestAmbientOccluder_ShadowRaysLeaveSurface(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	patterns := sampling.ToHemisphere(sampling.Jittered(4, 4, 4, rng), 1)
	light := NewAmbientOccluder(vmath.NewColor(0.3, 0.3, 0.3), 5, patterns)

	sp := surfacePoint()
	capture := func(ray vmath.Ray, _ vmath.Real) (vmath.Real, bool) {
		if ray.Dir.Dot(sp.Normal) < 0 {
			t.Errorf("Shadow ray %v points into the surface", ray.Dir)
		}
		return 0, false
	}
	for i := 0; i < 100; i++ {
		light.Illuminates(sp, capture, rng)
	}
}

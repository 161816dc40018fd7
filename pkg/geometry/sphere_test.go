package geometry

import (
	"math"
	"testing"

	"github.com/fathom3d/fathom/pkg/vmath"
)

func TestSphere_Intersect_ThroughCenter(t *testing.T) {
	sphere := NewSphere(vmath.NewVec3(0, 0, 0), 2.0)
	ray := vmath.NewRay(vmath.NewVec3(0, 0, 4), vmath.NewVec3(0, 0, -1))

	hits := sphere.Intersect(ray)
	if len(hits) != 2 {
		t.Fatalf("Expected 2 hits, got %d", len(hits))
	}
	if math.Abs(hits[0].T-2.0) > 1e-12 || math.Abs(hits[1].T-6.0) > 1e-12 {
		t.Errorf("Expected t=2 and t=6, got t=%f and t=%f", hits[0].T, hits[1].T)
	}
}

func TestSphere_Intersect_Miss(t *testing.T) {
	sphere := NewSphere(vmath.NewVec3(0, 0, 0), 1.0)
	ray := vmath.NewRay(vmath.NewVec3(2, 0, 0), vmath.NewVec3(0, 1, 0))

	if hits := sphere.Intersect(ray); len(hits) != 0 {
		t.Errorf("Expected miss, got %d hits", len(hits))
	}
}

func TestSphere_Intersect_Tangent(t *testing.T) {
	// A grazing ray with discriminant exactly zero yields one hit, not two
	sphere := NewSphere(vmath.NewVec3(0, 0, 0), 2.0)
	ray := vmath.NewRay(vmath.NewVec3(2, 0, 4), vmath.NewVec3(0, 0, -1))

	hits := sphere.Intersect(ray)
	if len(hits) != 1 {
		t.Fatalf("Expected 1 tangential hit, got %d", len(hits))
	}
	if math.Abs(hits[0].T-4.0) > 1e-12 {
		t.Errorf("Expected t=4, got t=%f", hits[0].T)
	}
}

func TestSphere_Intersect_PointMatchesRayAt(t *testing.T) {
	sphere := NewSphere(vmath.NewVec3(1, 2, -1), 1.5)
	ray := vmath.NewRay(vmath.NewVec3(0.5, 0, 4), vmath.NewVec3(0.1, 0.3, -1).Normalize())

	for _, h := range sphere.Intersect(ray) {
		p := ray.At(h.T)
		if p.Sub(h.Point).Length() > 1e-9 {
			t.Errorf("ray.At(%f)=%v does not reproduce hit point %v", h.T, p, h.Point)
		}
	}
}

func TestSphere_Intersect_NormalAndUV(t *testing.T) {
	sphere := NewSphere(vmath.NewVec3(0, 0, 0), 1.0)
	ray := vmath.NewRay(vmath.NewVec3(0, 0, 4), vmath.NewVec3(0, 0, -1))

	hits := sphere.Intersect(ray)
	if len(hits) != 2 {
		t.Fatalf("Expected 2 hits, got %d", len(hits))
	}

	// Near hit faces the ray
	if hits[0].Normal.Sub(vmath.NewVec3(0, 0, 1)).Length() > 1e-12 {
		t.Errorf("Expected normal (0,0,1), got %v", hits[0].Normal)
	}

	for i, h := range hits {
		if h.UV.X < 0 || h.UV.X >= 1 {
			t.Errorf("hit %d: u=%f outside [0,1)", i, h.UV.X)
		}
		if h.UV.Y < -1 || h.UV.Y > 0 {
			t.Errorf("hit %d: v=%f outside [-1,0]", i, h.UV.Y)
		}
	}

	// Equator point (0,0,1): v = -acos(0)/pi = -0.5
	if math.Abs(hits[0].UV.Y-(-0.5)) > 1e-12 {
		t.Errorf("Expected v=-0.5 at the equator, got %f", hits[0].UV.Y)
	}
}

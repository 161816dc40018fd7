package geometry

import (
	"math"
	"testing"

	"github.com/fathom3d/fathom/pkg/vmath"
)

func TestBox_Intersect_MissBesideFootprint(t *testing.T) {
	box := NewBox(vmath.NewVec3(-2, -2, -2), vmath.NewVec3(2, 2, 2))
	ray := vmath.NewRay(vmath.NewVec3(6, 0, 5), vmath.NewVec3(0, 0, -1))

	if hits := box.Intersect(ray); len(hits) != 0 {
		t.Errorf("Expected miss, got %d hits", len(hits))
	}
}

func TestBox_Intersect_ThroughCenter(t *testing.T) {
	box := NewBox(vmath.NewVec3(-2, -2, -2), vmath.NewVec3(2, 2, 2))
	ray := vmath.NewRay(vmath.NewVec3(0, 0, 5), vmath.NewVec3(0, 0, -1))

	hits := box.Intersect(ray)
	if len(hits) != 2 {
		t.Fatalf("Expected 2 hits, got %d", len(hits))
	}

	// Order is by face, not by t; collect both parameters
	ts := []vmath.Real{hits[0].T, hits[1].T}
	lo := math.Min(ts[0], ts[1])
	hi := math.Max(ts[0], ts[1])
	if math.Abs(lo-3.0) > 1e-12 || math.Abs(hi-7.0) > 1e-12 {
		t.Errorf("Expected t=3 and t=7, got %f and %f", lo, hi)
	}

	for _, h := range hits {
		p := ray.At(h.T)
		if p.Sub(h.Point).Length() > 1e-12 {
			t.Errorf("ray.At(%f) does not reproduce hit point", h.T)
		}
	}
}

func TestBox_Intersect_EdgeGrazeIsMiss(t *testing.T) {
	// The face containment test is an open interval: a ray passing exactly
	// along an edge touches no face.
	box := NewBox(vmath.NewVec3(-2, -2, -2), vmath.NewVec3(2, 2, 2))
	ray := vmath.NewRay(vmath.NewVec3(2, 0, 5), vmath.NewVec3(0, 0, -1))

	if hits := box.Intersect(ray); len(hits) != 0 {
		t.Errorf("Expected edge graze to miss, got %d hits", len(hits))
	}
}

func TestBox_Intersect_FaceNormal(t *testing.T) {
	box := NewBox(vmath.NewVec3(-1, -1, -1), vmath.NewVec3(1, 1, 1))
	ray := vmath.NewRay(vmath.NewVec3(5, 0.5, 0.5), vmath.NewVec3(-1, 0, 0))

	hits := box.Intersect(ray)
	if len(hits) != 2 {
		t.Fatalf("Expected 2 hits, got %d", len(hits))
	}
	for _, h := range hits {
		if math.Abs(math.Abs(h.Normal.X)-1) > 1e-12 || h.Normal.Y != 0 || h.Normal.Z != 0 {
			t.Errorf("Expected ±x face normal, got %v", h.Normal)
		}
		if h.UV.X <= 0 || h.UV.X >= 1 || h.UV.Y <= 0 || h.UV.Y >= 1 {
			t.Errorf("Expected interior UV, got %v", h.UV)
		}
	}
}

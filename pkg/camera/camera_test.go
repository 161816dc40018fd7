package camera

import (
	"math"
	"testing"

	"github.com/fathom3d/fathom/pkg/vmath"
)

func vec3Near(a, b vmath.Vec3, tol vmath.Real) bool {
	return a.Sub(b).Length() <= tol
}

func TestNewBasis_StandardFrame(t *testing.T) {
	b := NewBasis(vmath.NewVec3(0, 0, 0), vmath.NewVec3(0, 0, -1), vmath.NewVec3(0, 1, 0))

	if !vec3Near(b.U, vmath.NewVec3(1, 0, 0), 1e-12) {
		t.Errorf("Expected u=(1,0,0), got %v", b.U)
	}
	if !vec3Near(b.V, vmath.NewVec3(0, 1, 0), 1e-12) {
		t.Errorf("Expected v=(0,1,0), got %v", b.V)
	}
	if !vec3Near(b.W, vmath.NewVec3(0, 0, 1), 1e-12) {
		t.Errorf("Expected w=(0,0,1), got %v", b.W)
	}
}

func TestNewBasis_Orthonormal(t *testing.T) {
	// Skewed gaze and non-perpendicular up still produce an orthonormal frame
	b := NewBasis(vmath.NewVec3(1, 2, 3), vmath.NewVec3(1, -1, -2), vmath.NewVec3(0.2, 1, 0.1))

	for name, v := range map[string]vmath.Vec3{"u": b.U, "v": b.V, "w": b.W} {
		if math.Abs(v.Length()-1) > 1e-12 {
			t.Errorf("Expected unit %s, got length %f", name, v.Length())
		}
	}
	if math.Abs(b.U.Dot(b.V)) > 1e-12 || math.Abs(b.V.Dot(b.W)) > 1e-12 || math.Abs(b.U.Dot(b.W)) > 1e-12 {
		t.Error("Expected mutually perpendicular basis vectors")
	}
}

func TestPinhole_CenterRayFollowsGaze(t *testing.T) {
	cam := NewPinhole(vmath.NewVec3(0, 0, 0), vmath.NewVec3(0, 0, -1), vmath.NewVec3(0, 1, 0), vmath.Radians(90))

	ray, ok := cam.Ray(640, 480, vmath.NewVec2(320, 240), vmath.Vec2{})
	if !ok {
		t.Fatal("Expected a ray at the image center")
	}
	if !vec3Near(ray.Dir, vmath.NewVec3(0, 0, -1), 1e-12) {
		t.Errorf("Expected center ray along the gaze, got %v", ray.Dir)
	}
}

func TestPinhole_FieldOfView(t *testing.T) {
	// With a 90° vertical fov the top-edge ray leaves at 45° above the gaze
	cam := NewPinhole(vmath.NewVec3(0, 0, 0), vmath.NewVec3(0, 0, -1), vmath.NewVec3(0, 1, 0), vmath.Radians(90))

	ray, _ := cam.Ray(640, 480, vmath.NewVec2(320, 480), vmath.Vec2{})
	if math.Abs(ray.Dir.Y+ray.Dir.Z) > 1e-12 {
		t.Errorf("Expected a 45° ray (y = -z), got %v", ray.Dir)
	}
}

func TestPinhole_CornerSymmetry(t *testing.T) {
	cam := NewPinhole(vmath.NewVec3(0, 0, 0), vmath.NewVec3(0, 0, -1), vmath.NewVec3(0, 1, 0), vmath.Radians(60))

	lo, _ := cam.Ray(640, 480, vmath.NewVec2(0, 0), vmath.Vec2{})
	hi, _ := cam.Ray(640, 480, vmath.NewVec2(640, 480), vmath.Vec2{})
	if !vec3Near(lo.Dir, vmath.NewVec3(-hi.Dir.X, -hi.Dir.Y, hi.Dir.Z), 1e-12) {
		t.Errorf("Expected opposite corners to mirror through the axis, got %v and %v", lo.Dir, hi.Dir)
	}
}

func TestThinLens_RaysMeetAtFocalPoint(t *testing.T) {
	cam := NewThinLens(vmath.NewVec3(0, 0, 0), vmath.NewVec3(0, 0, -1), vmath.NewVec3(0, 1, 0),
		vmath.Radians(90), 0.5, 10)

	// All rays through one pixel, whatever the lens sample, intersect the
	// focal plane at the same point.
	pixel := vmath.NewVec2(320, 240)
	focal := vmath.NewVec3(0, 0, -10)
	for _, lens := range []vmath.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: -0.3, Y: 0.7}} {
		ray, ok := cam.Ray(640, 480, pixel, lens)
		if !ok {
			t.Fatal("Expected a ray")
		}
		t10 := (focal.Z - ray.Origin.Z) / ray.Dir.Z
		if !vec3Near(ray.At(t10), focal, 1e-9) {
			t.Errorf("Expected lens sample %v to reach %v, got %v", lens, focal, ray.At(t10))
		}
	}
}

func TestThinLens_OriginOnLensDisc(t *testing.T) {
	cam := NewThinLens(vmath.NewVec3(0, 0, 0), vmath.NewVec3(0, 0, -1), vmath.NewVec3(0, 1, 0),
		vmath.Radians(90), 0.5, 10)

	ray, _ := cam.Ray(640, 480, vmath.NewVec2(320, 240), vmath.NewVec2(1, 0))
	if !vec3Near(ray.Origin, vmath.NewVec3(0.5, 0, 0), 1e-12) {
		t.Errorf("Expected origin scaled by the lens radius, got %v", ray.Origin)
	}
}

func TestOrthographic_ConstantDirection(t *testing.T) {
	cam := NewOrthographic(vmath.NewVec3(0, 0, 0), vmath.NewVec3(0, 0, -1), vmath.NewVec3(0, 1, 0), 2)

	for _, px := range []vmath.Vec2{{X: 0, Y: 0}, {X: 320, Y: 240}, {X: 640, Y: 480}} {
		ray, ok := cam.Ray(640, 480, px, vmath.Vec2{})
		if !ok {
			t.Fatal("Expected a ray")
		}
		if !vec3Near(ray.Dir, vmath.NewVec3(0, 0, -1), 1e-12) {
			t.Errorf("Expected every ray along -w, got %v at pixel %v", ray.Dir, px)
		}
	}
}

func TestOrthographic_OriginSpansViewVolume(t *testing.T) {
	// Scale 2 over a 4:3 image: right edge sits at x = aspect·scale/2 = 4/3
	cam := NewOrthographic(vmath.NewVec3(0, 0, 0), vmath.NewVec3(0, 0, -1), vmath.NewVec3(0, 1, 0), 2)

	ray, _ := cam.Ray(640, 480, vmath.NewVec2(640, 240), vmath.Vec2{})
	if !vec3Near(ray.Origin, vmath.NewVec3(4.0/3.0, 0, 0), 1e-12) {
		t.Errorf("Expected origin (4/3, 0, 0), got %v", ray.Origin)
	}

	ray, _ = cam.Ray(640, 480, vmath.NewVec2(320, 480), vmath.Vec2{})
	if !vec3Near(ray.Origin, vmath.NewVec3(0, 1, 0), 1e-12) {
		t.Errorf("Expected origin (0, 1, 0), got %v", ray.Origin)
	}
}

func TestFisheye_CenterAndRim(t *testing.T) {
	cam := NewFisheye(vmath.NewVec3(0, 0, 0), vmath.NewVec3(0, 0, -1), vmath.NewVec3(0, 1, 0), vmath.Radians(180))

	ray, ok := cam.Ray(640, 480, vmath.NewVec2(320, 240), vmath.Vec2{})
	if !ok {
		t.Fatal("Expected a ray at the image center")
	}
	if !vec3Near(ray.Dir, vmath.NewVec3(0, 0, -1), 1e-12) {
		t.Errorf("Expected center ray along the gaze, got %v", ray.Dir)
	}

	// On the image circle with a 180° fov the ray turns a full 90°
	ray, ok = cam.Ray(640, 480, vmath.NewVec2(560, 240), vmath.Vec2{})
	if !ok {
		t.Fatal("Expected a ray on the image circle")
	}
	if !vec3Near(ray.Dir, vmath.NewVec3(1, 0, 0), 1e-9) {
		t.Errorf("Expected rim ray along u, got %v", ray.Dir)
	}
}

func TestFisheye_OutsideImageCircle(t *testing.T) {
	cam := NewFisheye(vmath.NewVec3(0, 0, 0), vmath.NewVec3(0, 0, -1), vmath.NewVec3(0, 1, 0), vmath.Radians(170))

	// Image corners of a 4:3 frame lie outside the inscribed circle
	if _, ok := cam.Ray(640, 480, vmath.NewVec2(0, 0), vmath.Vec2{}); ok {
		t.Error("Expected no ray outside the image circle")
	}
	if _, ok := cam.Ray(640, 480, vmath.NewVec2(640, 480), vmath.Vec2{}); ok {
		t.Error("Expected no ray outside the image circle")
	}
}

func TestSpherical_Panorama(t *testing.T) {
	cam := NewSpherical(vmath.NewVec3(0, 0, 0), vmath.NewVec3(0, 0, -1), vmath.NewVec3(0, 1, 0),
		2*vmath.Pi, vmath.Pi)

	tests := []struct {
		name  string
		pixel vmath.Vec2
		want  vmath.Vec3
	}{
		{"Center follows gaze", vmath.NewVec2(320, 240), vmath.NewVec3(0, 0, -1)},
		{"Quarter turn right", vmath.NewVec2(480, 240), vmath.NewVec3(1, 0, 0)},
		{"Quarter turn left", vmath.NewVec2(160, 240), vmath.NewVec3(-1, 0, 0)},
		{"Straight up", vmath.NewVec2(320, 480), vmath.NewVec3(0, 1, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray, ok := cam.Ray(640, 480, tt.pixel, vmath.Vec2{})
			if !ok {
				t.Fatal("Expected a ray")
			}
			if !vec3Near(ray.Dir, tt.want, 1e-9) {
				t.Errorf("Expected direction %v, got %v", tt.want, ray.Dir)
			}
		})
	}
}

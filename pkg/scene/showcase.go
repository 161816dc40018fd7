package scene

import (
	"math/rand"

	"github.com/fathom3d/fathom/pkg/camera"
	"github.com/fathom3d/fathom/pkg/geometry"
	"github.com/fathom3d/fathom/pkg/lights"
	"github.com/fathom3d/fathom/pkg/material"
	"github.com/fathom3d/fathom/pkg/sampling"
	"github.com/fathom3d/fathom/pkg/vmath"
)

// NewShowcaseScene builds a scene exercising every primitive, light and
// camera model: spheres and a transformed box over a checkered ground plane,
// a cylinder, a disc and a triangle, lit by a sun light, a point light and
// an ambient-occlusion fill. Cameras: "main" (pinhole), "dof" (thin lens),
// "ortho", "fisheye" and "pano".
func NewShowcaseScene(rng *rand.Rand) *Scene {
	s := New(vmath.NewColor(0.55, 0.70, 0.90))

	ground := material.NewLambert(material.NewChecker(
		vmath.NewColor(0.85, 0.85, 0.85),
		vmath.NewColor(0.25, 0.30, 0.35),
		1.0,
	))
	red := material.NewPhong(
		material.NewSolid(vmath.NewColor(0.85, 0.15, 0.12)),
		material.NewSolid(vmath.NewColor(0.9, 0.9, 0.9)),
		60,
	)
	gold := material.NewPhong(
		material.NewSolid(vmath.NewColor(0.9, 0.7, 0.2)),
		material.NewSolid(vmath.NewColor(1.0, 0.9, 0.6)),
		25,
	)
	blue := material.NewLambert(material.NewSolid(vmath.NewColor(0.2, 0.35, 0.8)))
	green := material.NewLambert(material.NewSolid(vmath.NewColor(0.25, 0.7, 0.3)))
	flat := material.NewUnshaded(material.NewSolid(vmath.NewColor(0.95, 0.95, 0.4)))

	s.AddObject(NewObject(
		geometry.NewPlane(vmath.Vec3{}, vmath.NewVec3(0, 1, 0), vmath.NewVec3(1, 0, 0)),
		ground, vmath.Identity(),
	))
	s.AddObject(NewObject(
		geometry.NewSphere(vmath.NewVec3(0, 1, 0), 1),
		red, vmath.Identity(),
	))
	s.AddObject(NewObject(
		geometry.NewSphere(vmath.Vec3{}, 1),
		blue,
		vmath.Compose(vmath.Translate(vmath.NewVec3(-2.4, 0.6, 1.0)), vmath.Scale(0.6, 0.6, 0.6)),
	))
	s.AddObject(NewObject(
		geometry.NewBox(vmath.NewVec3(-0.7, 0, -0.7), vmath.NewVec3(0.7, 1.4, 0.7)),
		gold,
		vmath.Compose(vmath.Translate(vmath.NewVec3(2.4, 0, -0.6)), vmath.RotateY(vmath.Radians(30))),
	))
	s.AddObject(NewObject(
		geometry.NewCylinder(0.45, 1.6),
		green,
		vmath.Translate(vmath.NewVec3(-1.2, 0.8, -1.8)),
	))
	s.AddObject(NewObject(
		geometry.NewDisc(vmath.NewVec3(1.6, 1.0, 2.0), vmath.NewVec3(0, 0, -1), vmath.NewVec3(1, 0, 0), 0.7),
		blue, vmath.Identity(),
	))
	s.AddObject(NewObject(
		geometry.NewTriangle(
			vmath.NewVec3(-3.4, 0, -1.0),
			vmath.NewVec3(-2.2, 0, -2.2),
			vmath.NewVec3(-2.8, 1.8, -1.6),
		),
		flat, vmath.Identity(),
	))

	s.AddLight(lights.NewDirectional(vmath.NewVec3(-0.4, 1, 0.3), vmath.NewColor(0.9, 0.85, 0.7)))
	s.AddLight(lights.NewPoint(vmath.NewVec3(3, 4, 3), vmath.NewColor(0.35, 0.35, 0.4)))
	s.AddLight(lights.NewAmbientOccluder(
		vmath.NewColor(0.25, 0.25, 0.28),
		2.5,
		sampling.ToHemisphere(sampling.MultiJittered(16, 4, 4, rng), 1),
	))

	eye := vmath.NewVec3(0, 2.2, 7)
	gaze := vmath.NewVec3(0, -0.2, -1)
	up := vmath.NewVec3(0, 1, 0)

	s.AddCamera("main", camera.NewPinhole(eye, gaze, up, vmath.Radians(50)))
	s.AddCamera("dof", camera.NewThinLens(eye, gaze, up, vmath.Radians(50), 0.15, 7.2))
	s.AddCamera("ortho", camera.NewOrthographic(eye, gaze, up, 8))
	s.AddCamera("fisheye", camera.NewFisheye(eye, gaze, up, vmath.Radians(170)))
	s.AddCamera("pano", camera.NewSpherical(eye, gaze, up, 2*vmath.Pi, vmath.Pi))

	return s
}

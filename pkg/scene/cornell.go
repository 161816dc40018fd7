package scene

import (
	"github.com/fathom3d/fathom/pkg/camera"
	"github.com/fathom3d/fathom/pkg/geometry"
	"github.com/fathom3d/fathom/pkg/lights"
	"github.com/fathom3d/fathom/pkg/material"
	"github.com/fathom3d/fathom/pkg/vmath"
)

// NewCornellScene builds the classic box room: white floor, ceiling and back
// wall, red and green side walls, two blocks, lit by a spot light from the
// ceiling. Camera "main" looks in along −z.
func NewCornellScene() *Scene {
	s := New(vmath.Black())

	white := material.NewLambert(material.NewSolid(vmath.NewColor(0.73, 0.73, 0.73)))
	red := material.NewLambert(material.NewSolid(vmath.NewColor(0.65, 0.05, 0.05)))
	green := material.NewLambert(material.NewSolid(vmath.NewColor(0.12, 0.45, 0.15)))

	wall := func(anchor, normal, right vmath.Vec3, m material.Material) {
		s.AddObject(NewObject(geometry.NewPlane(anchor, normal, right), m, vmath.Identity()))
	}
	// floor, ceiling, back, left, right
	wall(vmath.NewVec3(0, 0, 0), vmath.NewVec3(0, 1, 0), vmath.NewVec3(1, 0, 0), white)
	wall(vmath.NewVec3(0, 5, 0), vmath.NewVec3(0, -1, 0), vmath.NewVec3(1, 0, 0), white)
	wall(vmath.NewVec3(0, 0, -5), vmath.NewVec3(0, 0, 1), vmath.NewVec3(1, 0, 0), white)
	wall(vmath.NewVec3(-2.5, 0, 0), vmath.NewVec3(1, 0, 0), vmath.NewVec3(0, 0, -1), red)
	wall(vmath.NewVec3(2.5, 0, 0), vmath.NewVec3(-1, 0, 0), vmath.NewVec3(0, 0, 1), green)

	s.AddObject(NewObject(
		geometry.NewBox(vmath.NewVec3(-0.75, 0, -0.75), vmath.NewVec3(0.75, 3.0, 0.75)),
		white,
		vmath.Compose(vmath.Translate(vmath.NewVec3(-1.0, 0, -3.4)), vmath.RotateY(vmath.Radians(18))),
	))
	s.AddObject(NewObject(
		geometry.NewBox(vmath.NewVec3(-0.75, 0, -0.75), vmath.NewVec3(0.75, 1.5, 0.75)),
		white,
		vmath.Compose(vmath.Translate(vmath.NewVec3(1.1, 0, -2.2)), vmath.RotateY(vmath.Radians(-20))),
	))

	s.AddLight(lights.NewSpot(
		vmath.NewVec3(0, 4.9, -2.5),
		vmath.NewVec3(0, -1, 0),
		vmath.NewColor(1.0, 0.95, 0.85),
		vmath.Radians(110),
	))
	s.AddLight(lights.NewAmbient(vmath.NewColor(0.08, 0.08, 0.08)))

	s.AddCamera("main", camera.NewPinhole(
		vmath.NewVec3(0, 2.5, 4.5),
		vmath.NewVec3(0, 0, -1),
		vmath.NewVec3(0, 1, 0),
		vmath.Radians(55),
	))
	return s
}

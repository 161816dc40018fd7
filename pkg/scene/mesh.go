package scene

import (
	"fmt"

	"github.com/fathom3d/fathom/pkg/camera"
	"github.com/fathom3d/fathom/pkg/geometry"
	"github.com/fathom3d/fathom/pkg/lights"
	"github.com/fathom3d/fathom/pkg/loaders"
	"github.com/fathom3d/fathom/pkg/material"
	"github.com/fathom3d/fathom/pkg/vmath"
)

// NewMeshScene loads a glTF/GLB model and places it over a checkered ground
// plane under a directional key light. Camera "main" is a pinhole aimed at
// the model's bounding-sphere center.
func NewMeshScene(path string) (*Scene, error) {
	tris, err := loaders.LoadGLTF(path)
	if err != nil {
		return nil, fmt.Errorf("load mesh scene: %w", err)
	}
	if len(tris) == 0 {
		return nil, fmt.Errorf("load mesh scene: %s contains no triangles", path)
	}

	s := New(vmath.NewColor(0.6, 0.65, 0.75))

	ground := material.NewLambert(material.NewChecker(
		vmath.NewColor(0.8, 0.8, 0.8),
		vmath.NewColor(0.3, 0.3, 0.3),
		0.5,
	))
	body := material.NewPhong(
		material.NewSolid(vmath.NewColor(0.7, 0.7, 0.75)),
		material.NewSolid(vmath.NewColor(0.8, 0.8, 0.8)),
		40,
	)

	// Center and extent of the mesh, to place ground and camera around it.
	lo := tris[0].V0
	hi := tris[0].V0
	for _, t := range tris {
		for _, v := range []vmath.Vec3{t.V0, t.V1, t.V2} {
			lo = vmath.NewVec3(vmath.Min(lo.X, v.X), vmath.Min(lo.Y, v.Y), vmath.Min(lo.Z, v.Z))
			hi = vmath.NewVec3(vmath.Max(hi.X, v.X), vmath.Max(hi.Y, v.Y), vmath.Max(hi.Z, v.Z))
		}
	}
	center := lo.Add(hi).Scale(0.5)
	extent := hi.Sub(lo).Length()

	for _, t := range tris {
		s.AddObject(NewObject(t, body, vmath.Identity()))
	}
	s.AddObject(NewObject(
		geometry.NewPlane(vmath.NewVec3(0, lo.Y, 0), vmath.NewVec3(0, 1, 0), vmath.NewVec3(1, 0, 0)),
		ground, vmath.Identity(),
	))

	s.AddLight(lights.NewDirectional(vmath.NewVec3(-0.5, 1, 0.4), vmath.NewColor(0.95, 0.9, 0.8)))
	s.AddLight(lights.NewAmbient(vmath.NewColor(0.2, 0.2, 0.22)))

	eye := center.Add(vmath.NewVec3(0, extent*0.3, extent*1.2))
	s.AddCamera("main", camera.NewPinhole(eye, center.Sub(eye), vmath.NewVec3(0, 1, 0), vmath.Radians(45)))
	return s, nil
}

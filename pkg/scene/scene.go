// Package scene aggregates cameras, lights and transformed geometry into the
// immutable value the renderer consumes.
package scene

import (
	"fmt"

	"github.com/fathom3d/fathom/pkg/camera"
	"github.com/fathom3d/fathom/pkg/geometry"
	"github.com/fathom3d/fathom/pkg/lights"
	"github.com/fathom3d/fathom/pkg/material"
	"github.com/fathom3d/fathom/pkg/vmath"
)

// Object is one renderable: a primitive, the material shading it, and the
// transform placing it in the world. The material is shared by reference so
// shading can be deferred past intersection without copies.
type Object struct {
	Shape     geometry.Shape
	Material  material.Material
	Transform vmath.Transform
}

// NewObject creates a renderable object
func NewObject(shape geometry.Shape, mat material.Material, transform vmath.Transform) Object {
	return Object{Shape: shape, Material: mat, Transform: transform}
}

// Intersect maps the world ray into the object's local space by the cached
// inverse transform, intersects, and maps the results back: positions by the
// forward matrix, normals by the inverse transpose (renormalized). The local
// ray direction is not renormalized, so t values are valid in world space
// unchanged.
func (o *Object) Intersect(ray vmath.Ray) []geometry.Hit {
	local := o.Transform.InvRay(ray)
	hits := o.Shape.Intersect(local)
	for i := range hits {
		hits[i].Point = o.Transform.Point(hits[i].Point)
		hits[i].Normal = o.Transform.Normal(hits[i].Normal)
	}
	return hits
}

// Scene is everything a render call needs. It is built once and treated as
// read-only while rendering, which is what makes parallel pixel evaluation
// safe.
type Scene struct {
	Background vmath.Color
	Cameras    map[string]camera.Camera
	Lights     []lights.Light
	Objects    []Object
}

// New creates an empty scene with the given background color
func New(background vmath.Color) *Scene {
	return &Scene{
		Background: background,
		Cameras:    map[string]camera.Camera{},
	}
}

// AddCamera registers a named camera
func (s *Scene) AddCamera(name string, cam camera.Camera) {
	s.Cameras[name] = cam
}

// AddLight appends a light
func (s *Scene) AddLight(l lights.Light) {
	s.Lights = append(s.Lights, l)
}

// AddObject appends a renderable object
func (s *Scene) AddObject(o Object) {
	s.Objects = append(s.Objects, o)
}

// TakeCamera removes and returns the named camera, letting the renderer own
// it without cloning. Selecting an unknown name is a caller error.
func (s *Scene) TakeCamera(name string) (camera.Camera, error) {
	cam, ok := s.Cameras[name]
	if !ok {
		return nil, fmt.Errorf("scene has no camera named %q", name)
	}
	delete(s.Cameras, name)
	return cam, nil
}

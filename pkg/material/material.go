// Package material evaluates local illumination at a surface point. The
// renderer hands Shade a light list already filtered for visibility, so
// materials never run their own shadow tests.
package material

import (
	"github.com/fathom3d/fathom/pkg/geometry"
	"github.com/fathom3d/fathom/pkg/lights"
	"github.com/fathom3d/fathom/pkg/vmath"
)

// Material computes the color contribution of a surface point seen from the
// view direction, lit by the given visible lights.
type Material interface {
	Shade(sp geometry.Hit, view vmath.Vec3, lit []lights.Light) vmath.Color
}

// Unshaded ignores lighting entirely and returns the texture color, useful
// for backgrounds, debug output and emissive-looking surfaces.
type Unshaded struct {
	Tex Texture
}

// NewUnshaded creates an unshaded material
func NewUnshaded(tex Texture) *Unshaded {
	return &Unshaded{Tex: tex}
}

// Shade returns the texture lookup at the surface UV
func (m *Unshaded) Shade(sp geometry.Hit, _ vmath.Vec3, _ []lights.Light) vmath.Color {
	return m.Tex.Lookup(sp.UV, sp.Point)
}

// Lambert is the perfectly diffuse material.
type Lambert struct {
	Tex Texture
}

// NewLambert creates a diffuse material
func NewLambert(tex Texture) *Lambert {
	return &Lambert{Tex: tex}
}

// Shade sums texture·lightColor·(lightDir·normal) over the visible lights.
// The cosine term needs no explicit clamp for shadowing lights because
// their visibility test already rejects back-facing geometry; ambient
// lights report the normal itself as their direction, making the cosine 1.
func (m *Lambert) Shade(sp geometry.Hit, _ vmath.Vec3, lit []lights.Light) vmath.Color {
	base := m.Tex.Lookup(sp.UV, sp.Point)
	var sum vmath.Color
	for _, l := range lit {
		cos := l.DirectionFrom(sp).Dot(sp.Normal)
		if cos <= 0 {
			continue
		}
		sum = sum.Add(base.MulVec(l.Color()).Scale(cos))
	}
	return sum
}

// Phong adds a specular highlight on top of the Lambert diffuse term.
type Phong struct {
	Tex      Texture
	Specular Texture
	Exponent vmath.Real
}

// NewPhong creates a Phong material with separate diffuse and specular
// textures; exponent controls highlight tightness.
func NewPhong(tex, specular Texture, exponent vmath.Real) *Phong {
	return &Phong{Tex: tex, Specular: specular, Exponent: exponent}
}

// Shade adds specular·lightColor·max(reflect(l,n)·v̂, 0)^exponent to the
// diffuse term for each visible light.
func (m *Phong) Shade(sp geometry.Hit, view vmath.Vec3, lit []lights.Light) vmath.Color {
	base := m.Tex.Lookup(sp.UV, sp.Point)
	spec := m.Specular.Lookup(sp.UV, sp.Point)
	viewDir := view.Normalize()

	var sum vmath.Color
	for _, l := range lit {
		lightDir := l.DirectionFrom(sp)
		cos := lightDir.Dot(sp.Normal)
		if cos <= 0 {
			continue
		}
		sum = sum.Add(base.MulVec(l.Color()).Scale(cos))

		highlight := lightDir.Reflect(sp.Normal).Dot(viewDir)
		if highlight > 0 {
			sum = sum.Add(spec.MulVec(l.Color()).Scale(vmath.Pow(highlight, m.Exponent)))
		}
	}
	return sum
}

package geometry

import "github.com/fathom3d/fathom/pkg/vmath"

// Triangle is a single triangle with per-vertex shading normals and UVs.
type Triangle struct {
	V0, V1, V2 vmath.Vec3
	N0, N1, N2 vmath.Vec3
	UV0        vmath.Vec2
	UV1        vmath.Vec2
	UV2        vmath.Vec2
}

// NewTriangle creates a triangle whose shading normal is the flat geometric
// normal at every vertex.
func NewTriangle(v0, v1, v2 vmath.Vec3) *Triangle {
	n := v1.Sub(v0).Cross(v2.Sub(v0)).Normalize()
	return &Triangle{
		V0: v0, V1: v1, V2: v2,
		N0: n, N1: n, N2: n,
	}
}

// NewSmoothTriangle creates a triangle with per-vertex normals and UVs
func NewSmoothTriangle(v0, v1, v2, n0, n1, n2 vmath.Vec3, uv0, uv1, uv2 vmath.Vec2) *Triangle {
	return &Triangle{
		V0: v0, V1: v1, V2: v2,
		N0: n0.Normalize(), N1: n1.Normalize(), N2: n2.Normalize(),
		UV0: uv0, UV1: uv1, UV2: uv2,
	}
}

// Intersect solves the barycentric system
//
//	origin + t·dir = v0 + β(v1−v0) + γ(v2−v0)
//
// by Cramer's rule. A zero determinant (degenerate triangle or parallel ray)
// and barycentric coordinates outside the triangle are misses. The shading
// normal and UV are interpolated by the barycentric weights, the normal
// re-normalized.
func (tr *Triangle) Intersect(ray vmath.Ray) []Hit {
	e1 := tr.V1.Sub(tr.V0)
	e2 := tr.V2.Sub(tr.V0)
	rhs := ray.Origin.Sub(tr.V0)

	// Column determinant of [e1, e2, −dir] via triple products
	negDir := ray.Dir.Negate()
	det := det3(e1, e2, negDir)
	if vmath.Abs(det) < vmath.Epsilon {
		return nil
	}

	beta := det3(rhs, e2, negDir) / det
	gamma := det3(e1, rhs, negDir) / det
	if beta < 0 || beta > 1 || gamma < 0 || gamma > 1 || beta+gamma > 1 {
		return nil
	}
	t := det3(e1, e2, rhs) / det

	alpha := 1 - beta - gamma
	normal := tr.N0.Scale(alpha).Add(tr.N1.Scale(beta)).Add(tr.N2.Scale(gamma)).Normalize()
	uv := tr.UV0.Scale(alpha).Add(tr.UV1.Scale(beta)).Add(tr.UV2.Scale(gamma))

	return []Hit{{
		T:      t,
		Point:  ray.At(t),
		Normal: normal,
		UV:     uv,
	}}
}

// det3 is the scalar triple product a·(b×c), the determinant of the matrix
// with columns a, b, c.
func det3(a, b, c vmath.Vec3) vmath.Real {
	return a.Dot(b.Cross(c))
}

package geometry

import "github.com/fathom3d/fathom/pkg/vmath"

// Box is an axis-aligned box spanned by two corner points.
type Box struct {
	Min vmath.Vec3
	Max vmath.Vec3
}

// NewBox creates an axis-aligned box; corners may be given in any order
func NewBox(a, b vmath.Vec3) *Box {
	return &Box{
		Min: vmath.NewVec3(vmath.Min(a.X, b.X), vmath.Min(a.Y, b.Y), vmath.Min(a.Z, b.Z)),
		Max: vmath.NewVec3(vmath.Max(a.X, b.X), vmath.Max(a.Y, b.Y), vmath.Max(a.Z, b.Z)),
	}
}

type boxFace struct {
	axis   int        // 0=x 1=y 2=z, the axis the face is perpendicular to
	coord  vmath.Real // face plane position on that axis
	normal vmath.Vec3
}

// Intersect tests the ray against the six face planes. A face hit counts
// only when the other two coordinates fall strictly inside the box's extent;
// grazing an edge is a miss, matching the strict inequalities of the plane
// tests.
func (b *Box) Intersect(ray vmath.Ray) []Hit {
	faces := [6]boxFace{
		{0, b.Min.X, vmath.NewVec3(-1, 0, 0)},
		{0, b.Max.X, vmath.NewVec3(1, 0, 0)},
		{1, b.Min.Y, vmath.NewVec3(0, -1, 0)},
		{1, b.Max.Y, vmath.NewVec3(0, 1, 0)},
		{2, b.Min.Z, vmath.NewVec3(0, 0, -1)},
		{2, b.Max.Z, vmath.NewVec3(0, 0, 1)},
	}

	var hits []Hit
	origin := [3]vmath.Real{ray.Origin.X, ray.Origin.Y, ray.Origin.Z}
	dir := [3]vmath.Real{ray.Dir.X, ray.Dir.Y, ray.Dir.Z}
	lo := [3]vmath.Real{b.Min.X, b.Min.Y, b.Min.Z}
	hi := [3]vmath.Real{b.Max.X, b.Max.Y, b.Max.Z}

	for _, f := range faces {
		if vmath.Abs(dir[f.axis]) < vmath.Epsilon {
			continue // ray parallel to this face plane
		}
		t := (f.coord - origin[f.axis]) / dir[f.axis]
		point := ray.At(t)
		p := [3]vmath.Real{point.X, point.Y, point.Z}

		u := (f.axis + 1) % 3
		v := (f.axis + 2) % 3
		if p[u] <= lo[u] || p[u] >= hi[u] || p[v] <= lo[v] || p[v] >= hi[v] {
			continue
		}

		hits = append(hits, Hit{
			T:      t,
			Point:  point,
			Normal: f.normal,
			UV: vmath.NewVec2(
				(p[u]-lo[u])/(hi[u]-lo[u]),
				(p[v]-lo[v])/(hi[v]-lo[v]),
			),
		})
	}
	return hits
}

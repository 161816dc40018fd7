package vmath

// Mat3 is a row-major 3×3 matrix, the linear part of an affine transform.
type Mat3 [9]Real

// MulVec applies the matrix to a vector
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		Y: m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		Z: m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

// Mul multiplies two matrices
func (m Mat3) Mul(o Mat3) Mat3 {
	var r Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum Real
			for k := 0; k < 3; k++ {
				sum += m[3*i+k] * o[3*k+j]
			}
			r[3*i+j] = sum
		}
	}
	return r
}

// Transpose returns the transposed matrix
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Inverse returns the inverse via the adjugate. A singular matrix is the
// caller's responsibility; transforms built from the constructors below are
// always invertible.
func (m Mat3) Inverse() Mat3 {
	c0 := m[4]*m[8] - m[5]*m[7]
	c1 := m[5]*m[6] - m[3]*m[8]
	c2 := m[3]*m[7] - m[4]*m[6]
	det := m[0]*c0 + m[1]*c1 + m[2]*c2
	invDet := 1.0 / det
	return Mat3{
		c0 * invDet, (m[2]*m[7] - m[1]*m[8]) * invDet, (m[1]*m[5] - m[2]*m[4]) * invDet,
		c1 * invDet, (m[0]*m[8] - m[2]*m[6]) * invDet, (m[2]*m[3] - m[0]*m[5]) * invDet,
		c2 * invDet, (m[1]*m[6] - m[0]*m[7]) * invDet, (m[0]*m[4] - m[1]*m[3]) * invDet,
	}
}

func identityMat3() Mat3 {
	return Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// Transform is an affine transform stored as a linear part plus an offset,
// with the inverse cached when the transform is built. Applying a transform
// never recomputes an inverse.
type Transform struct {
	linear    Mat3
	offset    Vec3
	invLinear Mat3
	invOffset Vec3
	normalMat Mat3 // transpose of invLinear, for transforming normals
}

// Identity returns the identity transform
func Identity() Transform {
	return Transform{
		linear:    identityMat3(),
		invLinear: identityMat3(),
		normalMat: identityMat3(),
	}
}

func newTransform(linear Mat3, offset Vec3) Transform {
	inv := linear.Inverse()
	return Transform{
		linear:    linear,
		offset:    offset,
		invLinear: inv,
		invOffset: inv.MulVec(offset).Negate(),
		normalMat: inv.Transpose(),
	}
}

// Translate returns a translation by v
func Translate(v Vec3) Transform {
	t := Identity()
	t.offset = v
	t.invOffset = v.Negate()
	return t
}

// Scale returns a (possibly non-uniform) scale about the origin
func Scale(sx, sy, sz Real) Transform {
	return newTransform(Mat3{sx, 0, 0, 0, sy, 0, 0, 0, sz}, Vec3{})
}

// RotateX returns a rotation about the x axis by angle radians
func RotateX(angle Real) Transform {
	s, c := Sin(angle), Cos(angle)
	return newTransform(Mat3{1, 0, 0, 0, c, -s, 0, s, c}, Vec3{})
}

// RotateY returns a rotation about the y axis by angle radians
func RotateY(angle Real) Transform {
	s, c := Sin(angle), Cos(angle)
	return newTransform(Mat3{c, 0, s, 0, 1, 0, -s, 0, c}, Vec3{})
}

// RotateZ returns a rotation about the z axis by angle radians
func RotateZ(angle Real) Transform {
	s, c := Sin(angle), Cos(angle)
	return newTransform(Mat3{c, -s, 0, s, c, 0, 0, 0, 1}, Vec3{})
}

// Compose returns a transform applying b first, then a.
// The composed inverse is composed from the cached inverses rather than
// re-inverted.
func Compose(a, b Transform) Transform {
	inv := b.invLinear.Mul(a.invLinear)
	return Transform{
		linear:    a.linear.Mul(b.linear),
		offset:    a.linear.MulVec(b.offset).Add(a.offset),
		invLinear: inv,
		invOffset: b.invLinear.MulVec(a.invOffset).Add(b.invOffset),
		normalMat: inv.Transpose(),
	}
}

// Point applies the full affine transform to a position
func (t Transform) Point(p Vec3) Vec3 {
	return t.linear.MulVec(p).Add(t.offset)
}

// Direction applies only the linear part to a direction vector
func (t Transform) Direction(v Vec3) Vec3 {
	return t.linear.MulVec(v)
}

// InvPoint applies the cached inverse transform to a position
func (t Transform) InvPoint(p Vec3) Vec3 {
	return t.invLinear.MulVec(p).Add(t.invOffset)
}

// InvDirection applies the cached inverse linear part to a direction
func (t Transform) InvDirection(v Vec3) Vec3 {
	return t.invLinear.MulVec(v)
}

// Normal transforms a surface normal by the transpose of the inverse linear
// part and renormalizes, which keeps normals perpendicular under non-uniform
// scaling.
func (t Transform) Normal(n Vec3) Vec3 {
	return t.normalMat.MulVec(n).Normalize()
}

// InvRay maps a world-space ray into the transform's local space.
// The direction is deliberately not renormalized so that t parameters found
// in local space remain valid in world space.
func (t Transform) InvRay(r Ray) Ray {
	return Ray{
		Origin: t.InvPoint(r.Origin),
		Dir:    t.InvDirection(r.Dir),
	}
}

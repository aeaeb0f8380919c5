package types

import "github.com/chewxy/math32"

// Mat4 is a 4x4 matrix stored in column-major order: element (row, col)
// lives at index col*4 + row. Only rigid transforms (rotation composed
// with translation) are produced by the constructors in this package.
type Mat4 [16]float32

// Create an identity matrix.
func Ident4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Create a translation matrix.
func Translate4(v Vec3) Mat4 {
	m := Ident4()
	m[12] = v[0]
	m[13] = v[1]
	m[14] = v[2]
	return m
}

// Create a rotation matrix about the given axis. The angle is given in
// degrees to match the usual scene description conventions.
func Rotate4(axis Vec3, angleDeg float32) Mat4 {
	rad := angleDeg * math32.Pi / 180.0
	return QuatFromAxisAngle(axis.Normalize(), rad).Mat4()
}

// Multiply two matrices.
func (m Mat4) Mul4(m2 Mat4) Mat4 {
	var out Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[k*4+row] * m2[col*4+k]
			}
			out[col*4+row] = sum
		}
	}
	return out
}

// Multiply matrix with a 4 component vector.
func (m Mat4) Mul4x1(v Vec4) Vec4 {
	return Vec4{
		m[0]*v[0] + m[4]*v[1] + m[8]*v[2] + m[12]*v[3],
		m[1]*v[0] + m[5]*v[1] + m[9]*v[2] + m[13]*v[3],
		m[2]*v[0] + m[6]*v[1] + m[10]*v[2] + m[14]*v[3],
		m[3]*v[0] + m[7]*v[1] + m[11]*v[2] + m[15]*v[3],
	}
}

// Transform a point. The translation part of the matrix applies.
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}

// Transform a direction. The translation part of the matrix is ignored.
func (m Mat4) TransformDir(d Vec3) Vec3 {
	return m.Mul4x1(d.Vec4(0)).Vec3()
}

// The translation column of the matrix.
func (m Mat4) Translation() Vec3 {
	return Vec3{m[12], m[13], m[14]}
}

// IsRigid reports whether the matrix encodes a rotation plus translation:
// the upper 3x3 block must be orthonormal and the bottom row (0, 0, 0, 1).
// Scaling and shearing matrices fail this check.
func (m Mat4) IsRigid() bool {
	const tol = 1e-3

	if math32.Abs(m[3]) > tol || math32.Abs(m[7]) > tol || math32.Abs(m[11]) > tol || math32.Abs(m[15]-1) > tol {
		return false
	}

	c0 := Vec3{m[0], m[1], m[2]}
	c1 := Vec3{m[4], m[5], m[6]}
	c2 := Vec3{m[8], m[9], m[10]}

	if math32.Abs(c0.Len()-1) > tol || math32.Abs(c1.Len()-1) > tol || math32.Abs(c2.Len()-1) > tol {
		return false
	}
	if math32.Abs(c0.Dot(c1)) > tol || math32.Abs(c1.Dot(c2)) > tol || math32.Abs(c0.Dot(c2)) > tol {
		return false
	}
	return true
}

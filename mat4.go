package gm

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/oliverbestmann/gm/internal/assert"
)

// Mat4 is a 4x4 matrix of float32 values in column major order:
// the element in column c and row r is stored at index c*4 + r.
//
// A Mat4 describes an affine or projective transformation of 3d points,
// the translation lives in the fourth column.
type Mat4 [16]float32

// Mat4Of builds a matrix from its elements in storage order,
// that is column by column.
func Mat4Of(
	m1, m2, m3, m4,
	m5, m6, m7, m8,
	m9, m10, m11, m12,
	m13, m14, m15, m16 float32,
) Mat4 {
	return Mat4{
		m1, m2, m3, m4,
		m5, m6, m7, m8,
		m9, m10, m11, m12,
		m13, m14, m15, m16,
	}
}

// Mat4FromSlice copies the first sixteen values of the slice in storage order.
// It panics if the slice holds less than sixteen values.
func Mat4FromSlice(values []float32) Mat4 {
	assert.MinLen(values, 16)
	return Mat4(values[:16])
}

func IdentityMat4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func TranslationMat4(x, y, z float32) Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

func TranslationMat4Vec(translation Vec3) Mat4 {
	return TranslationMat4(translation[0], translation[1], translation[2])
}

// RotateXMat4 returns a right handed rotation around the x axis:
// a quarter turn moves the positive y axis onto the positive z axis.
func RotateXMat4(angle Rad) Mat4 {
	sin, cos := math32.Sincos(float32(angle))

	return Mat4{
		1, 0, 0, 0,
		0, cos, sin, 0,
		0, -sin, cos, 0,
		0, 0, 0, 1,
	}
}

// RotateYMat4 returns a right handed rotation around the y axis:
// a quarter turn moves the positive x axis onto the negative z axis.
func RotateYMat4(angle Rad) Mat4 {
	sin, cos := math32.Sincos(float32(angle))

	return Mat4{
		cos, 0, -sin, 0,
		0, 1, 0, 0,
		sin, 0, cos, 0,
		0, 0, 0, 1,
	}
}

// RotateZMat4 returns a right handed rotation around the z axis:
// a quarter turn moves the positive x axis onto the positive y axis.
func RotateZMat4(angle Rad) Mat4 {
	sin, cos := math32.Sincos(float32(angle))

	return Mat4{
		cos, sin, 0, 0,
		-sin, cos, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// EulerMat4 returns a rotation that applies pitch (x axis) first, then
// yaw (y axis) and finally roll (z axis).
func EulerMat4(pitch, yaw, roll Rad) Mat4 {
	return RotateZMat4(roll).Mul(RotateYMat4(yaw)).Mul(RotateXMat4(pitch))
}

// EulerMat4Vec is EulerMat4 with pitch, yaw and roll taken from x, y and z.
func EulerMat4Vec(rotation Vec3) Mat4 {
	return EulerMat4(Rad(rotation[0]), Rad(rotation[1]), Rad(rotation[2]))
}

func ScaleMat4(x, y, z float32) Mat4 {
	return Mat4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

func ScaleMat4Vec(scale Vec3) Mat4 {
	return ScaleMat4(scale[0], scale[1], scale[2])
}

// At returns the element in the given column and row.
func (m Mat4) At(column, row int) float32 {
	return m[column*4+row]
}

// Set updates the element in the given column and row.
func (m *Mat4) Set(column, row int, value float32) {
	m[column*4+row] = value
}

// Column returns a pointer to the given column. The column shares
// storage with the matrix, writes through it change the matrix.
func (m *Mat4) Column(column int) *Vec4 {
	return (*Vec4)(m[column*4 : column*4+4])
}

// Row returns a copy of the given row.
func (m Mat4) Row(row int) Vec4 {
	return Vec4{m[row], m[4+row], m[8+row], m[12+row]}
}

// Slice returns the elements as a slice sharing storage with m.
func (m *Mat4) Slice() []float32 {
	return m[:]
}

// Array returns a pointer to the elements of m.
func (m *Mat4) Array() *[16]float32 {
	return (*[16]float32)(m)
}

// Mul returns the matrix product m * other. Applied to a vector,
// the result first transforms by other and then by m.
func (m Mat4) Mul(other Mat4) Mat4 {
	var result Mat4

	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			result[c*4+r] = m[r]*other[c*4] +
				m[4+r]*other[c*4+1] +
				m[8+r]*other[c*4+2] +
				m[12+r]*other[c*4+3]
		}
	}

	return result
}

// MulAssign sets m to m * other.
func (m *Mat4) MulAssign(other Mat4) {
	*m = m.Mul(other)
}

// Transform multiplies m with the column vector v. The w component
// of v is used as given.
func (m Mat4) Transform(v Vec4) Vec4 {
	return Vec4{
		m[0]*v[0] + m[4]*v[1] + m[8]*v[2] + m[12]*v[3],
		m[1]*v[0] + m[5]*v[1] + m[9]*v[2] + m[13]*v[3],
		m[2]*v[0] + m[6]*v[1] + m[10]*v[2] + m[14]*v[3],
		m[3]*v[0] + m[7]*v[1] + m[11]*v[2] + m[15]*v[3],
	}
}

// TransformPoint applies the matrix to the point (x, y, z, 1) and drops w.
func (m Mat4) TransformPoint(point Vec3) Vec3 {
	return m.Transform(Vec4FromVec3(point, 1)).XYZ()
}

// TransformVec applies the matrix to the direction (x, y, z, 0), ignoring translation.
func (m Mat4) TransformVec(vec Vec3) Vec3 {
	return m.Transform(Vec4FromVec3(vec, 0)).XYZ()
}

// Transposed returns a copy of m with rows and columns swapped.
func (m Mat4) Transposed() Mat4 {
	return Mat4{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

// subDeterminants returns the twelve 2x2 determinants that both
// Determinant and TryInverse are built from.
func (m Mat4) subDeterminants() (b [12]float32) {
	b[0] = m[0]*m[5] - m[1]*m[4]
	b[1] = m[0]*m[6] - m[2]*m[4]
	b[2] = m[0]*m[7] - m[3]*m[4]
	b[3] = m[1]*m[6] - m[2]*m[5]
	b[4] = m[1]*m[7] - m[3]*m[5]
	b[5] = m[2]*m[7] - m[3]*m[6]
	b[6] = m[8]*m[13] - m[9]*m[12]
	b[7] = m[8]*m[14] - m[10]*m[12]
	b[8] = m[8]*m[15] - m[11]*m[12]
	b[9] = m[9]*m[14] - m[10]*m[13]
	b[10] = m[9]*m[15] - m[11]*m[13]
	b[11] = m[10]*m[15] - m[11]*m[14]
	return b
}

func (m Mat4) Determinant() float32 {
	b := m.subDeterminants()
	return b[0]*b[11] - b[1]*b[10] + b[2]*b[9] + b[3]*b[8] - b[4]*b[7] + b[5]*b[6]
}

// Inverse returns the inverse of the matrix.
// This method will panic if an inverse can not be calculated.
func (m Mat4) Inverse() Mat4 {
	inverse, ok := m.TryInverse()
	if !ok {
		panic(fmt.Sprintf("matrix is not invertible: %s", m))
	}

	return inverse
}

// TryInverse returns the inverse of the matrix if possible.
func (m Mat4) TryInverse() (inverse Mat4, ok bool) {
	b := m.subDeterminants()

	det := b[0]*b[11] - b[1]*b[10] + b[2]*b[9] + b[3]*b[8] - b[4]*b[7] + b[5]*b[6]
	if det == 0 {
		return Mat4{}, false
	}

	f := 1 / det

	inverse = Mat4{
		(m[5]*b[11] - m[6]*b[10] + m[7]*b[9]) * f,
		(m[2]*b[10] - m[1]*b[11] - m[3]*b[9]) * f,
		(m[13]*b[5] - m[14]*b[4] + m[15]*b[3]) * f,
		(m[10]*b[4] - m[9]*b[5] - m[11]*b[3]) * f,

		(m[6]*b[8] - m[4]*b[11] - m[7]*b[7]) * f,
		(m[0]*b[11] - m[2]*b[8] + m[3]*b[7]) * f,
		(m[14]*b[2] - m[12]*b[5] - m[15]*b[1]) * f,
		(m[8]*b[5] - m[10]*b[2] + m[11]*b[1]) * f,

		(m[4]*b[10] - m[5]*b[8] + m[7]*b[6]) * f,
		(m[1]*b[8] - m[0]*b[10] - m[3]*b[6]) * f,
		(m[12]*b[4] - m[13]*b[2] + m[15]*b[0]) * f,
		(m[9]*b[2] - m[8]*b[4] - m[11]*b[0]) * f,

		(m[5]*b[7] - m[4]*b[9] - m[6]*b[6]) * f,
		(m[0]*b[9] - m[1]*b[7] + m[2]*b[6]) * f,
		(m[13]*b[1] - m[12]*b[3] - m[14]*b[0]) * f,
		(m[8]*b[3] - m[9]*b[1] + m[10]*b[0]) * f,
	}

	return inverse, true
}

func (m Mat4) Equals(other Mat4, tolerance float32) bool {
	for idx := range m {
		if !ApproximatelyEquals(m[idx], other[idx], tolerance) {
			return false
		}
	}

	return true
}

// AlmostEquals is Equals using the default Tolerance.
func (m Mat4) AlmostEquals(other Mat4) bool {
	return m.Equals(other, Tolerance)
}

// String formats the matrix column by column.
func (m Mat4) String() string {
	return fmt.Sprintf("[(%v, %v, %v, %v), (%v, %v, %v, %v), (%v, %v, %v, %v), (%v, %v, %v, %v)]",
		m[0], m[1], m[2], m[3],
		m[4], m[5], m[6], m[7],
		m[8], m[9], m[10], m[11],
		m[12], m[13], m[14], m[15],
	)
}

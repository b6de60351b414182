package gm

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/oliverbestmann/gm/internal/assert"
)

// Mat3 is a 3x3 matrix of float32 values in column major order:
// the element in column c and row r is stored at index c*3 + r.
//
// Used on 2d points, a Mat3 is an affine transform with the translation
// in the third column. The zero value is the zero matrix, use
// IdentityMat3 to get a transform that does nothing.
type Mat3 [9]float32

// Mat3Of builds a matrix from its elements in storage order,
// that is column by column.
func Mat3Of(m1, m2, m3, m4, m5, m6, m7, m8, m9 float32) Mat3 {
	return Mat3{m1, m2, m3, m4, m5, m6, m7, m8, m9}
}

// Mat3FromSlice copies the first nine values of the slice in storage order.
// It panics if the slice holds less than nine values.
func Mat3FromSlice(values []float32) Mat3 {
	assert.MinLen(values, 9)
	return Mat3(values[:9])
}

func IdentityMat3() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// TranslationMat3 returns a 2d translation matrix.
func TranslationMat3(x, y float32) Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		x, y, 1,
	}
}

func TranslationMat3Vec(translation Vec2) Mat3 {
	return TranslationMat3(translation[0], translation[1])
}

// TranslationMat3XYZ places x, y and z into the third column.
// The z value takes the place of the homogeneous coordinate.
func TranslationMat3XYZ(x, y, z float32) Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		x, y, z,
	}
}

func TranslationMat3Vec3(translation Vec3) Mat3 {
	return TranslationMat3XYZ(translation[0], translation[1], translation[2])
}

// RotateXMat3 returns a matrix rotating counter clockwise around the x axis
// when looking from the positive x axis towards the origin.
func RotateXMat3(angle Rad) Mat3 {
	sin, cos := math32.Sincos(float32(angle))

	return Mat3{
		1, 0, 0,
		0, cos, sin,
		0, -sin, cos,
	}
}

func RotateYMat3(angle Rad) Mat3 {
	sin, cos := math32.Sincos(float32(angle))

	return Mat3{
		cos, 0, -sin,
		0, 1, 0,
		sin, 0, cos,
	}
}

// RotateZMat3 returns a rotation around the z axis. On 2d points, this
// rotates from the positive x axis towards the positive y axis.
func RotateZMat3(angle Rad) Mat3 {
	sin, cos := math32.Sincos(float32(angle))

	return Mat3{
		cos, sin, 0,
		-sin, cos, 0,
		0, 0, 1,
	}
}

// EulerMat3 returns a rotation that applies pitch (x axis) first, then
// yaw (y axis) and finally roll (z axis).
func EulerMat3(pitch, yaw, roll Rad) Mat3 {
	return RotateZMat3(roll).Mul(RotateYMat3(yaw)).Mul(RotateXMat3(pitch))
}

// EulerMat3Vec is EulerMat3 with pitch, yaw and roll taken from x, y and z.
func EulerMat3Vec(rotation Vec3) Mat3 {
	return EulerMat3(Rad(rotation[0]), Rad(rotation[1]), Rad(rotation[2]))
}

// ScaleMat3 returns a 2d scale matrix, keeping the homogeneous coordinate.
func ScaleMat3(x, y float32) Mat3 {
	return ScaleMat3XYZ(x, y, 1)
}

func ScaleMat3XYZ(x, y, z float32) Mat3 {
	return Mat3{
		x, 0, 0,
		0, y, 0,
		0, 0, z,
	}
}

func ScaleMat3Vec(scale Vec3) Mat3 {
	return ScaleMat3XYZ(scale[0], scale[1], scale[2])
}

// At returns the element in the given column and row.
func (m Mat3) At(column, row int) float32 {
	return m[column*3+row]
}

// Set updates the element in the given column and row.
func (m *Mat3) Set(column, row int, value float32) {
	m[column*3+row] = value
}

// Column returns a pointer to the given column. The column shares
// storage with the matrix, writes through it change the matrix.
func (m *Mat3) Column(column int) *Vec3 {
	return (*Vec3)(m[column*3 : column*3+3])
}

// Row returns a copy of the given row.
func (m Mat3) Row(row int) Vec3 {
	return Vec3{m[row], m[3+row], m[6+row]}
}

// Slice returns the elements as a slice sharing storage with m.
func (m *Mat3) Slice() []float32 {
	return m[:]
}

// Array returns a pointer to the elements of m.
func (m *Mat3) Array() *[9]float32 {
	return (*[9]float32)(m)
}

// Mul returns the matrix product m * other. Applied to a vector,
// the result first transforms by other and then by m.
func (m Mat3) Mul(other Mat3) Mat3 {
	var result Mat3

	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			result[c*3+r] = m[r]*other[c*3] +
				m[3+r]*other[c*3+1] +
				m[6+r]*other[c*3+2]
		}
	}

	return result
}

// MulAssign sets m to m * other.
func (m *Mat3) MulAssign(other Mat3) {
	*m = m.Mul(other)
}

// Transform multiplies m with the column vector v.
func (m Mat3) Transform(v Vec3) Vec3 {
	return Vec3{
		m[0]*v[0] + m[3]*v[1] + m[6]*v[2],
		m[1]*v[0] + m[4]*v[1] + m[7]*v[2],
		m[2]*v[0] + m[5]*v[1] + m[8]*v[2],
	}
}

// TransformPoint applies the matrix to a 2d point. The point is extended
// to (x, y, 1), so the translation part of the matrix is applied.
func (m Mat3) TransformPoint(point Vec2) Vec2 {
	return m.Transform(Vec3FromVec2Z(point, 1)).XY()
}

// TransformVec applies the matrix to a 2d vector. This is different from
// transforming a point in that it will not apply the translation. The
// vector will only be rotated and scaled.
func (m Mat3) TransformVec(vec Vec2) Vec2 {
	return m.Transform(Vec3FromVec2(vec)).XY()
}

// Transposed returns a copy of m with rows and columns swapped.
func (m Mat3) Transposed() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

func (m Mat3) Determinant() float32 {
	return m[0]*(m[4]*m[8]-m[7]*m[5]) -
		m[3]*(m[1]*m[8]-m[7]*m[2]) +
		m[6]*(m[1]*m[5]-m[4]*m[2])
}

// Inverse returns the inverse of the matrix.
// This method will panic if an inverse can not be calculated.
func (m Mat3) Inverse() Mat3 {
	inverse, ok := m.TryInverse()
	if !ok {
		panic(fmt.Sprintf("matrix is not invertible: %s", m))
	}

	return inverse
}

// TryInverse returns the inverse of the matrix if possible.
func (m Mat3) TryInverse() (inverse Mat3, ok bool) {
	det := m.Determinant()
	if det == 0 {
		return Mat3{}, false
	}

	c0 := Vec3{m[0], m[1], m[2]}
	c1 := Vec3{m[3], m[4], m[5]}
	c2 := Vec3{m[6], m[7], m[8]}

	// the rows of the inverse are the pairwise cross products of the columns
	r0 := c1.Cross(c2).Div(det)
	r1 := c2.Cross(c0).Div(det)
	r2 := c0.Cross(c1).Div(det)

	inverse = Mat3{
		r0[0], r1[0], r2[0],
		r0[1], r1[1], r2[1],
		r0[2], r1[2], r2[2],
	}

	return inverse, true
}

func (m Mat3) Equals(other Mat3, tolerance float32) bool {
	for idx := range m {
		if !ApproximatelyEquals(m[idx], other[idx], tolerance) {
			return false
		}
	}

	return true
}

// AlmostEquals is Equals using the default Tolerance.
func (m Mat3) AlmostEquals(other Mat3) bool {
	return m.Equals(other, Tolerance)
}

// String formats the matrix column by column.
func (m Mat3) String() string {
	return fmt.Sprintf("[(%v, %v, %v), (%v, %v, %v), (%v, %v, %v)]",
		m[0], m[1], m[2],
		m[3], m[4], m[5],
		m[6], m[7], m[8],
	)
}

package gm

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Vec4 is a 4d vector. The array holds the components in order x, y, z, w.
// The zero value is the zero vector.
//
// The w component is treated as a homogeneous coordinate: it scales the
// magnitude of the xyz part instead of acting as a fourth dimension.
type Vec4 [4]float32

var Vec4Zero = Vec4{}
var Vec4One = Vec4{1, 1, 1, 1}

func Vec4Of(x, y, z, w float32) Vec4 {
	return Vec4{x, y, z, w}
}

func Vec4Splat(value float32) Vec4 {
	return Vec4{value, value, value, value}
}

// Vec4FromVec3 copies x, y and z from the given vector and uses w as the fourth component.
func Vec4FromVec3(xyz Vec3, w float32) Vec4 {
	return Vec4{xyz[0], xyz[1], xyz[2], w}
}

func (v Vec4) X() float32 { return v[0] }
func (v Vec4) Y() float32 { return v[1] }
func (v Vec4) Z() float32 { return v[2] }
func (v Vec4) W() float32 { return v[3] }

func (v *Vec4) SetX(x float32) { v[0] = x }
func (v *Vec4) SetY(y float32) { v[1] = y }
func (v *Vec4) SetZ(z float32) { v[2] = z }
func (v *Vec4) SetW(w float32) { v[3] = w }

// XYZ drops the w component.
func (v Vec4) XYZ() Vec3 {
	return Vec3{v[0], v[1], v[2]}
}

// Slice returns the components as a slice sharing storage with v.
func (v *Vec4) Slice() []float32 {
	return v[:]
}

// Array returns a pointer to the components of v.
func (v *Vec4) Array() *[4]float32 {
	return (*[4]float32)(v)
}

func (v Vec4) Add(other Vec4) Vec4 {
	v[0] += other[0]
	v[1] += other[1]
	v[2] += other[2]
	v[3] += other[3]
	return v
}

func (v Vec4) Sub(other Vec4) Vec4 {
	v[0] -= other[0]
	v[1] -= other[1]
	v[2] -= other[2]
	v[3] -= other[3]
	return v
}

func (v Vec4) Mul(scalar float32) Vec4 {
	v[0] *= scalar
	v[1] *= scalar
	v[2] *= scalar
	v[3] *= scalar
	return v
}

func (v Vec4) Div(scalar float32) Vec4 {
	v[0] /= scalar
	v[1] /= scalar
	v[2] /= scalar
	v[3] /= scalar
	return v
}

func (v Vec4) MulEach(other Vec4) Vec4 {
	v[0] *= other[0]
	v[1] *= other[1]
	v[2] *= other[2]
	v[3] *= other[3]
	return v
}

func (v Vec4) DivEach(other Vec4) Vec4 {
	v[0] /= other[0]
	v[1] /= other[1]
	v[2] /= other[2]
	v[3] /= other[3]
	return v
}

func (v Vec4) Neg() Vec4 {
	return Vec4{-v[0], -v[1], -v[2], -v[3]}
}

func (v *Vec4) AddAssign(other Vec4) { *v = v.Add(other) }
func (v *Vec4) SubAssign(other Vec4) { *v = v.Sub(other) }
func (v *Vec4) MulAssign(scalar float32) { *v = v.Mul(scalar) }
func (v *Vec4) DivAssign(scalar float32) { *v = v.Div(scalar) }
func (v *Vec4) MulEachAssign(other Vec4) { *v = v.MulEach(other) }
func (v *Vec4) DivEachAssign(other Vec4) { *v = v.DivEach(other) }

// Magnitude returns the length of the xyz part. A non zero w
// scales the result: the magnitude is then w * |xyz|.
func (v Vec4) Magnitude() float32 {
	mag := math32.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if v[3] == 0 {
		return mag
	}

	return v[3] * mag
}

// MagnitudeSqr returns the sum of all four squared components.
func (v Vec4) MagnitudeSqr() float32 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2] + v[3]*v[3]
}

func (v Vec4) Dot(other Vec4) float32 {
	return v[0]*other[0] + v[1]*other[1] + v[2]*other[2] + v[3]*other[3]
}

// Cross returns the cross product of the xyz parts of v and other.
// The w component of the result is zero.
func (v Vec4) Cross(other Vec4) Vec4 {
	return Vec4{
		v[1]*other[2] - v[2]*other[1],
		v[2]*other[0] - v[0]*other[2],
		v[0]*other[1] - v[1]*other[0],
		0,
	}
}

// Normalise divides every component by Magnitude. The magnitude of v
// must not be zero, use SafeNormalise if that can not be guaranteed.
func (v *Vec4) Normalise() {
	mag := v.Magnitude()
	v[0] /= mag
	v[1] /= mag
	v[2] /= mag
	v[3] /= mag
}

// SafeNormalise is like Normalise, but leaves a zero length vector unchanged.
func (v *Vec4) SafeNormalise() {
	if v.Magnitude() != 0 {
		v.Normalise()
	}
}

func (v Vec4) Normalised() Vec4 {
	v.Normalise()
	return v
}

func (v Vec4) SafeNormalised() Vec4 {
	v.SafeNormalise()
	return v
}

func (v Vec4) Distance(other Vec4) float32 {
	return v.Sub(other).Magnitude()
}

func (v Vec4) DistanceSqr(other Vec4) float32 {
	return v.Sub(other).MagnitudeSqr()
}

func (v Vec4) Equals(other Vec4, tolerance float32) bool {
	return ApproximatelyEquals(v[0], other[0], tolerance) &&
		ApproximatelyEquals(v[1], other[1], tolerance) &&
		ApproximatelyEquals(v[2], other[2], tolerance) &&
		ApproximatelyEquals(v[3], other[3], tolerance)
}

// AlmostEquals is Equals using the default Tolerance.
func (v Vec4) AlmostEquals(other Vec4) bool {
	return v.Equals(other, Tolerance)
}

func (v Vec4) String() string {
	return fmt.Sprintf("x: %v, y: %v, z: %v, w: %v", v[0], v[1], v[2], v[3])
}

package gm

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Vec3 is a 3d vector. The array holds the components in order x, y, z.
// The zero value is the zero vector.
type Vec3 [3]float32

var Vec3Zero = Vec3{}
var Vec3One = Vec3{1, 1, 1}

func Vec3Of(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// Vec3Splat returns a vector with all components set to value.
func Vec3Splat(value float32) Vec3 {
	return Vec3{value, value, value}
}

// Vec3FromVec2 copies x and y from the given vector, z is zero.
func Vec3FromVec2(xy Vec2) Vec3 {
	return Vec3{xy[0], xy[1], 0}
}

// Vec3FromVec2Z copies x and y from the given vector and uses z as the third component.
func Vec3FromVec2Z(xy Vec2, z float32) Vec3 {
	return Vec3{xy[0], xy[1], z}
}

func (v Vec3) X() float32 { return v[0] }
func (v Vec3) Y() float32 { return v[1] }
func (v Vec3) Z() float32 { return v[2] }

func (v *Vec3) SetX(x float32) { v[0] = x }
func (v *Vec3) SetY(y float32) { v[1] = y }
func (v *Vec3) SetZ(z float32) { v[2] = z }

// XY drops the z component.
func (v Vec3) XY() Vec2 {
	return Vec2{v[0], v[1]}
}

// Slice returns the components as a slice sharing storage with v.
func (v *Vec3) Slice() []float32 {
	return v[:]
}

// Array returns a pointer to the components of v.
func (v *Vec3) Array() *[3]float32 {
	return (*[3]float32)(v)
}

func (v Vec3) Add(other Vec3) Vec3 {
	v[0] += other[0]
	v[1] += other[1]
	v[2] += other[2]
	return v
}

func (v Vec3) Sub(other Vec3) Vec3 {
	v[0] -= other[0]
	v[1] -= other[1]
	v[2] -= other[2]
	return v
}

func (v Vec3) Mul(scalar float32) Vec3 {
	v[0] *= scalar
	v[1] *= scalar
	v[2] *= scalar
	return v
}

func (v Vec3) Div(scalar float32) Vec3 {
	v[0] /= scalar
	v[1] /= scalar
	v[2] /= scalar
	return v
}

func (v Vec3) MulEach(other Vec3) Vec3 {
	v[0] *= other[0]
	v[1] *= other[1]
	v[2] *= other[2]
	return v
}

func (v Vec3) DivEach(other Vec3) Vec3 {
	v[0] /= other[0]
	v[1] /= other[1]
	v[2] /= other[2]
	return v
}

func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

func (v *Vec3) AddAssign(other Vec3) { *v = v.Add(other) }
func (v *Vec3) SubAssign(other Vec3) { *v = v.Sub(other) }
func (v *Vec3) MulAssign(scalar float32) { *v = v.Mul(scalar) }
func (v *Vec3) DivAssign(scalar float32) { *v = v.Div(scalar) }
func (v *Vec3) MulEachAssign(other Vec3) { *v = v.MulEach(other) }
func (v *Vec3) DivEachAssign(other Vec3) { *v = v.DivEach(other) }

func (v Vec3) Magnitude() float32 {
	return math32.Sqrt(v.MagnitudeSqr())
}

func (v Vec3) MagnitudeSqr() float32 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

func (v Vec3) Dot(other Vec3) float32 {
	return v[0]*other[0] + v[1]*other[1] + v[2]*other[2]
}

// Cross returns a vector that is perpendicular to both v and other.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v[1]*other[2] - v[2]*other[1],
		v[2]*other[0] - v[0]*other[2],
		v[0]*other[1] - v[1]*other[0],
	}
}

// Normalise scales v to unit length. The magnitude of v must not be zero,
// use SafeNormalise if that can not be guaranteed.
func (v *Vec3) Normalise() {
	mag := v.Magnitude()
	v[0] /= mag
	v[1] /= mag
	v[2] /= mag
}

// SafeNormalise is like Normalise, but leaves a zero length vector unchanged.
func (v *Vec3) SafeNormalise() {
	if v.Magnitude() != 0 {
		v.Normalise()
	}
}

func (v Vec3) Normalised() Vec3 {
	v.Normalise()
	return v
}

func (v Vec3) SafeNormalised() Vec3 {
	v.SafeNormalise()
	return v
}

func (v Vec3) Distance(other Vec3) float32 {
	return v.Sub(other).Magnitude()
}

func (v Vec3) DistanceSqr(other Vec3) float32 {
	return v.Sub(other).MagnitudeSqr()
}

// AngleBetween returns the angle between v and other in the range [0, π].
// The result is NaN if either vector has zero length.
func (v Vec3) AngleBetween(other Vec3) Rad {
	cos := v.Dot(other) / (v.Magnitude() * other.Magnitude())

	// rounding can push the cosine of (anti-)parallel vectors out of range
	switch {
	case cos > 1:
		cos = 1
	case cos < -1:
		cos = -1
	}

	return Rad(math32.Acos(cos))
}

func (v Vec3) Equals(other Vec3, tolerance float32) bool {
	return ApproximatelyEquals(v[0], other[0], tolerance) &&
		ApproximatelyEquals(v[1], other[1], tolerance) &&
		ApproximatelyEquals(v[2], other[2], tolerance)
}

// AlmostEquals is Equals using the default Tolerance.
func (v Vec3) AlmostEquals(other Vec3) bool {
	return v.Equals(other, Tolerance)
}

func (v Vec3) String() string {
	return fmt.Sprintf("x: %v, y: %v, z: %v", v[0], v[1], v[2])
}

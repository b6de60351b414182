package gm

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Vec2 is a 2d vector. The array holds the components in order x, y.
// The zero value is the zero vector.
type Vec2 [2]float32

var Vec2Zero = Vec2{}
var Vec2One = Vec2{1, 1}

func Vec2Of(x, y float32) Vec2 {
	return Vec2{x, y}
}

// Vec2Splat returns a vector with all components set to value.
func Vec2Splat(value float32) Vec2 {
	return Vec2{value, value}
}

func (v Vec2) X() float32 { return v[0] }
func (v Vec2) Y() float32 { return v[1] }

func (v *Vec2) SetX(x float32) { v[0] = x }
func (v *Vec2) SetY(y float32) { v[1] = y }

// Slice returns the components as a slice sharing storage with v.
func (v *Vec2) Slice() []float32 {
	return v[:]
}

// Array returns a pointer to the components of v.
func (v *Vec2) Array() *[2]float32 {
	return (*[2]float32)(v)
}

func (v Vec2) Add(other Vec2) Vec2 {
	v[0] += other[0]
	v[1] += other[1]
	return v
}

func (v Vec2) Sub(other Vec2) Vec2 {
	v[0] -= other[0]
	v[1] -= other[1]
	return v
}

func (v Vec2) Mul(scalar float32) Vec2 {
	v[0] *= scalar
	v[1] *= scalar
	return v
}

func (v Vec2) Div(scalar float32) Vec2 {
	v[0] /= scalar
	v[1] /= scalar
	return v
}

func (v Vec2) MulEach(other Vec2) Vec2 {
	v[0] *= other[0]
	v[1] *= other[1]
	return v
}

func (v Vec2) DivEach(other Vec2) Vec2 {
	v[0] /= other[0]
	v[1] /= other[1]
	return v
}

func (v *Vec2) AddAssign(other Vec2) { *v = v.Add(other) }
func (v *Vec2) SubAssign(other Vec2) { *v = v.Sub(other) }
func (v *Vec2) MulAssign(scalar float32) { *v = v.Mul(scalar) }
func (v *Vec2) DivAssign(scalar float32) { *v = v.Div(scalar) }
func (v *Vec2) MulEachAssign(other Vec2) { *v = v.MulEach(other) }
func (v *Vec2) DivEachAssign(other Vec2) { *v = v.DivEach(other) }

func (v Vec2) Magnitude() float32 {
	return math32.Sqrt(v.MagnitudeSqr())
}

// MagnitudeSqr returns the squared magnitude of v. It avoids the
// square root and is useful when comparing lengths.
func (v Vec2) MagnitudeSqr() float32 {
	return v[0]*v[0] + v[1]*v[1]
}

func (v Vec2) Dot(other Vec2) float32 {
	return v[0]*other[0] + v[1]*other[1]
}

// Perp returns v rotated by 90° counter clockwise.
func (v Vec2) Perp() Vec2 {
	return Vec2{-v[1], v[0]}
}

// Normalise scales v to unit length. The magnitude of v must not be zero,
// use SafeNormalise if that can not be guaranteed.
func (v *Vec2) Normalise() {
	mag := v.Magnitude()
	v[0] /= mag
	v[1] /= mag
}

// SafeNormalise is like Normalise, but leaves a zero length vector unchanged.
func (v *Vec2) SafeNormalise() {
	if v.Magnitude() != 0 {
		v.Normalise()
	}
}

func (v Vec2) Normalised() Vec2 {
	v.Normalise()
	return v
}

func (v Vec2) SafeNormalised() Vec2 {
	v.SafeNormalise()
	return v
}

func (v Vec2) Distance(other Vec2) float32 {
	return v.Sub(other).Magnitude()
}

func (v Vec2) DistanceSqr(other Vec2) float32 {
	return v.Sub(other).MagnitudeSqr()
}

// AngleBetween returns the direction from other to v in radians,
// measured against the positive x axis.
func (v Vec2) AngleBetween(other Vec2) Rad {
	return Rad(math32.Atan2(v[1]-other[1], v[0]-other[0]))
}

func (v Vec2) Equals(other Vec2, tolerance float32) bool {
	return ApproximatelyEquals(v[0], other[0], tolerance) &&
		ApproximatelyEquals(v[1], other[1], tolerance)
}

// AlmostEquals is Equals using the default Tolerance.
func (v Vec2) AlmostEquals(other Vec2) bool {
	return v.Equals(other, Tolerance)
}

func (v Vec2) String() string {
	return fmt.Sprintf("x: %v, y: %v", v[0], v[1])
}

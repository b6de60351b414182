package gm

import (
	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Tolerance is the default maximum difference for two float
// values to be considered equal by the Equals methods.
const Tolerance float32 = 1e-4

const Pi = math32.Pi

// Deg2Rad converts an angle in degrees to radians by multiplication.
const Deg2Rad = Pi * 2.0 / 360.0

// Rad2Deg converts an angle in radians to degrees by multiplication.
const Rad2Deg = 1.0 / Deg2Rad

// ApproximatelyEquals returns true if the absolute difference of a and b
// is strictly less than threshold. NaN is never equal to anything.
func ApproximatelyEquals[S constraints.Float](a, b, threshold S) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}

	return diff < threshold
}

// Lerp interpolates linearly between start and end. Alpha is not clamped,
// values outside of [0, 1] extrapolate.
func Lerp[S constraints.Float](start, end, alpha S) S {
	return start + (end-start)*alpha
}

// Interpolatable is implemented by all vector types of this package.
type Interpolatable[V any] interface {
	Add(other V) V
	Sub(other V) V
	Mul(scalar float32) V
}

// LerpOf is Lerp for any type that supports addition, subtraction
// and scaling, e.g. Vec2, Vec3 or Vec4.
func LerpOf[V Interpolatable[V]](start, end V, alpha float32) V {
	return start.Add(end.Sub(start).Mul(alpha))
}

// AngleFrom2D returns the angle of the direction (x, y) relative to the positive x axis.
func AngleFrom2D(x, y float32) Rad {
	return Rad(math32.Atan2(y, x))
}

// Rad is an angle in radians.
type Rad float32

func (r Rad) Degrees() float32 {
	return float32(r) * Rad2Deg
}

// Radians returns the value of the angle in radians as float32.
func (r Rad) Radians() float32 {
	return float32(r)
}

// Normalized returns the angle normalized to the range [-π, π)
func (r Rad) Normalized() Rad {
	angle := float32(r)

	angle = math32.Mod(angle+Pi, 2*Pi)
	if angle < 0 {
		angle += 2 * Pi
	}

	return Rad(angle - Pi)
}

// DifferenceTo returns the smallest difference between to angles
// normalized to the range [-π, π)
func (r Rad) DifferenceTo(other Rad) Rad {
	return (r - other).Normalized()
}

// Cos returns the cosine of the angle.
func (r Rad) Cos() float32 {
	return math32.Cos(float32(r))
}

// Sin returns the sine of the angle.
func (r Rad) Sin() float32 {
	return math32.Sin(float32(r))
}

func DegToRad(deg float32) Rad {
	return Rad(deg * Deg2Rad)
}

// LerpAngle interpolates between two angles along the shorter arc.
func LerpAngle(start, end Rad, alpha float32) Rad {
	return start + Rad(alpha)*end.DifferenceTo(start)
}

package gm

import (
	"math/rand/v2"

	"golang.org/x/exp/constraints"
)

// RandomIn returns a random value uniformly sampled from the given range, excluding max.
func RandomIn[S constraints.Float](min, max S) S {
	return S(rand.Float64()*(float64(max)-float64(min))) + min
}

// RandomAngle returns a random angle uniformly sampled from the full circle
func RandomAngle() Rad {
	return Rad(RandomIn[float32](0, 2*Pi))
}

// RandomVec2 returns a vector uniformly sampled from within the unit circle.
func RandomVec2() Vec2 {
	for {
		v := Vec2{
			RandomIn[float32](-1, 1),
			RandomIn[float32](-1, 1),
		}

		if v.MagnitudeSqr() <= 1 {
			return v
		}
	}
}

// RandomVec3 returns a vector uniformly sampled from within the unit sphere.
func RandomVec3() Vec3 {
	for {
		v := Vec3{
			RandomIn[float32](-1, 1),
			RandomIn[float32](-1, 1),
			RandomIn[float32](-1, 1),
		}

		if v.MagnitudeSqr() <= 1 {
			return v
		}
	}
}

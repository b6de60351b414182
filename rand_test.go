package gm

import (
	"testing"

	"github.com/oliverbestmann/gm/internal/mathtest"
	"github.com/stretchr/testify/require"
)

func TestRandomIn(t *testing.T) {
	for range 100 {
		value := RandomIn[float32](-2, 3)
		require.GreaterOrEqual(t, value, float32(-2))
		require.Less(t, value, float32(3))
	}
}

func TestRandomVec(t *testing.T) {
	for range 100 {
		require.LessOrEqual(t, RandomVec2().MagnitudeSqr(), float32(1))
		require.LessOrEqual(t, RandomVec3().MagnitudeSqr(), float32(1))

		angle := RandomAngle()
		require.GreaterOrEqual(t, float32(angle), float32(0))
		require.Less(t, float32(angle), float32(2*Pi))
	}
}

func randomMat3() Mat3 {
	var m Mat3
	for idx := range m {
		m[idx] = RandomIn[float32](-10, 10)
	}

	return m
}

func randomMat4() Mat4 {
	var m Mat4
	for idx := range m {
		m[idx] = RandomIn[float32](-10, 10)
	}

	return m
}

func TestMat3_Properties(t *testing.T) {
	for range 50 {
		a, b, c := randomMat3(), randomMat3(), randomMat3()

		require.Equal(t, a, a.Transposed().Transposed())
		require.Equal(t, a, a.Mul(IdentityMat3()))

		mathtest.RequireEqualsWithin(t, a.Mul(b).Mul(c), a.Mul(b.Mul(c)), 0.1)

		// (a*b)^T = b^T * a^T
		mathtest.RequireEqualsWithin(t, a.Mul(b).Transposed(), b.Transposed().Mul(a.Transposed()), 1e-2)
	}
}

func TestMat3_InverseProperties(t *testing.T) {
	for range 50 {
		m := TranslationMat3Vec(RandomVec2().Mul(100)).
			Rotate(RandomAngle()).
			Scale(Vec2{RandomIn[float32](0.5, 2), RandomIn[float32](0.5, 2)})

		mathtest.RequireEqualsWithin(t, IdentityMat3(), m.Mul(m.Inverse()), 1e-2)
		mathtest.RequireEqualsWithin(t, m, m.Inverse().Inverse(), 1e-2)
	}
}

func TestMat4_Properties(t *testing.T) {
	for range 50 {
		a, b := randomMat4(), randomMat4()

		require.Equal(t, a, a.Transposed().Transposed())
		require.Equal(t, a, IdentityMat4().Mul(a))

		mathtest.RequireEqualsWithin(t, a.Mul(b).Transposed(), b.Transposed().Mul(a.Transposed()), 1e-2)
	}
}

func TestMat4_InverseProperties(t *testing.T) {
	for range 50 {
		m := TranslationMat4Vec(RandomVec3().Mul(100)).
			Mul(EulerMat4(RandomAngle(), RandomAngle(), RandomAngle())).
			Scale(Vec3{RandomIn[float32](0.5, 2), RandomIn[float32](0.5, 2), RandomIn[float32](0.5, 2)})

		mathtest.RequireEqualsWithin(t, IdentityMat4(), m.Inverse().Mul(m), 1e-2)
	}
}

func TestVec_Properties(t *testing.T) {
	for range 50 {
		a := RandomVec3().Mul(RandomIn[float32](1, 100))
		b := RandomVec3().Mul(RandomIn[float32](1, 100))

		require.Equal(t, a.Mul(3), ScalarMul(3, a))
		require.InDelta(t, a.Distance(b), b.Distance(a), 1e-4)

		cross := a.Cross(b)
		require.InDelta(t, 0.0, cross.Dot(a)/(cross.Magnitude()*a.Magnitude()+1), 1e-3)
	}
}

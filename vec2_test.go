package gm

import (
	"testing"

	"github.com/oliverbestmann/gm/internal/mathtest"
	"github.com/stretchr/testify/require"
)

func TestVec2_Equality(t *testing.T) {
	a := Vec2{13.5, -48.23}
	b := Vec2{13.5, -48.23}
	flipped := Vec2{-48.23, 13.5}

	require.True(t, a == a)
	require.True(t, a == b)
	require.True(t, b == a)
	require.True(t, a != Vec2Zero)
	require.True(t, Vec2Zero != a)
	require.True(t, a != flipped)

	mathtest.RequireEquals(t, a, b)
	mathtest.RequireEquals(t, b, a)
	mathtest.RequireNotEquals(t, a, flipped)
	mathtest.RequireNotEquals(t, flipped, a)
}

func TestVec2_EqualsTolerance(t *testing.T) {
	a := Vec2{1, 2}

	require.True(t, a.Equals(Vec2{1.00005, 2}, Tolerance))
	require.False(t, a.Equals(Vec2{1.0002, 2}, Tolerance))
	require.True(t, a.Equals(Vec2{1.0002, 2}, 1e-3))
	require.True(t, a.AlmostEquals(Vec2{1, 2.00001}))
}

func TestVec2_Construct(t *testing.T) {
	var zero Vec2
	require.Equal(t, float32(0), zero.X())
	require.Equal(t, float32(0), zero.Y())

	v := Vec2Of(1, 2)
	require.Equal(t, float32(1), v.X())
	require.Equal(t, float32(2), v.Y())

	v.SetX(3)
	v.SetY(4)
	require.Equal(t, Vec2{3, 4}, v)

	require.Equal(t, Vec2{5, 5}, Vec2Splat(5))
}

func TestVec2_Magnitude(t *testing.T) {
	v := Vec2{13.5, -48.23}
	require.InDelta(t, 50.0838, v.Magnitude(), 1e-4)
	require.InDelta(t, 2508.3829, v.MagnitudeSqr(), 1e-2)
}

func TestVec2_Normalise(t *testing.T) {
	expected := Vec2{0.269548, -0.962987}

	v := Vec2{13.5, -48.23}
	mathtest.RequireEquals(t, expected, v.Normalised())

	// the receiver of Normalised stays untouched
	require.Equal(t, Vec2{13.5, -48.23}, v)

	v.Normalise()
	mathtest.RequireEquals(t, expected, v)

	t.Run("safe", func(t *testing.T) {
		v := Vec2{13.5, -48.23}
		v.SafeNormalise()
		mathtest.RequireEquals(t, expected, v)
		mathtest.RequireEquals(t, expected, Vec2{13.5, -48.23}.SafeNormalised())

		zero := Vec2{}
		zero.SafeNormalise()
		require.Equal(t, Vec2{}, zero)
		require.Equal(t, Vec2{}, Vec2{}.SafeNormalised())
	})
}

func TestVec2_Dot(t *testing.T) {
	a := Vec2{13.5, -48.23}
	b := Vec2{5, 3.99}

	require.InDelta(t, -124.9377, a.Dot(b), 1e-3)
	require.InDelta(t, 0.0, Vec2{}.Dot(b), 1e-4)
	require.Equal(t, a.Dot(b), Dot(a, b))
}

func TestVec2_Arithmetic(t *testing.T) {
	a := Vec2{13.5, -48.23}
	b := Vec2{5, 3.99}

	t.Run("add", func(t *testing.T) {
		mathtest.RequireEquals(t, Vec2{18.5, -44.24}, a.Add(b))

		c := a
		c.AddAssign(b)
		mathtest.RequireEquals(t, Vec2{18.5, -44.24}, c)
	})

	t.Run("sub", func(t *testing.T) {
		mathtest.RequireEquals(t, Vec2{8.5, -52.22}, a.Sub(b))

		c := a
		c.SubAssign(b)
		mathtest.RequireEquals(t, Vec2{8.5, -52.22}, c)
	})

	t.Run("mul", func(t *testing.T) {
		expected := Vec2{3.45600008965, -12.3468809128}
		mathtest.RequireEquals(t, expected, a.Mul(0.256))
		mathtest.RequireEquals(t, expected, ScalarMul(0.256, a))
		require.Equal(t, a.Mul(0.256), ScalarMul(0.256, a))

		c := a
		c.MulAssign(0.256)
		mathtest.RequireEquals(t, expected, c)
	})

	t.Run("div", func(t *testing.T) {
		expected := Vec2{52.734371, -188.398422}
		mathtest.RequireEquals(t, expected, a.Div(0.256))

		c := a
		c.DivAssign(0.256)
		mathtest.RequireEquals(t, expected, c)
	})

	t.Run("each", func(t *testing.T) {
		require.Equal(t, Vec2{2 * 5, 3 * 7}, Vec2{2, 3}.MulEach(Vec2{5, 7}))
		require.Equal(t, Vec2{10 / 5, 21 / 7}, Vec2{10, 21}.DivEach(Vec2{5, 7}))

		c := Vec2{2, 3}
		c.MulEachAssign(Vec2{5, 7})
		require.Equal(t, Vec2{10, 21}, c)

		c.DivEachAssign(Vec2{5, 7})
		require.Equal(t, Vec2{2, 3}, c)
	})
}

func TestVec2_Perp(t *testing.T) {
	require.Equal(t, Vec2{0, 1}, Vec2{1, 0}.Perp())
	require.Equal(t, float32(0), Vec2{3, 4}.Dot(Vec2{3, 4}.Perp()))
}

func TestVec2_Distance(t *testing.T) {
	a := Vec2{13.5, -48.23}
	b := Vec2{5, 3.99}

	require.InDelta(t, 52.9072, a.Distance(b), 1e-3)
	require.InDelta(t, 2799.1784, a.DistanceSqr(b), 1e-2)
	require.Equal(t, a.Distance(b), Distance(a, b))
	require.Equal(t, a.DistanceSqr(b), DistanceSqr(a, b))
	require.Equal(t, a.Distance(b), b.Distance(a))
}

func TestVec2_AngleBetween(t *testing.T) {
	// bearing of the difference vector, not the angle between both vectors
	require.InDelta(t, -1.4094385, float32(Vec2{13.5, -48.23}.AngleBetween(Vec2{5, 3.99})), 1e-5)
	require.InDelta(t, Pi/2, float32(Vec2{1, 1}.AngleBetween(Vec2{1, 0})), 1e-6)
	require.InDelta(t, Pi, float32(Vec2{0, 0}.AngleBetween(Vec2{1, 0})), 1e-6)
}

func TestVec2_Views(t *testing.T) {
	t.Run("subscript", func(t *testing.T) {
		v := Vec2{13.5, -48.23}
		require.Equal(t, float32(13.5), v[0])
		require.Equal(t, float32(-48.23), v[1])

		v[0] = 3
		v[1] = 4
		require.Equal(t, float32(3), v.X())
		require.Equal(t, float32(4), v.Y())
	})

	t.Run("slice", func(t *testing.T) {
		v := Vec2{10, 2}

		values := v.Slice()
		require.Equal(t, []float32{10, 2}, values)

		values[1] = 7
		require.Equal(t, float32(7), v.Y())

		v.SetX(5)
		require.Equal(t, float32(5), values[0])

		v.Array()[1] = 9
		require.Equal(t, Vec2{5, 9}, v)
	})

	t.Run("copy", func(t *testing.T) {
		v := Vec2{1, 2}
		c := v
		c[0] = 5
		require.Equal(t, Vec2{1, 2}, v)
	})
}

func TestVec2_String(t *testing.T) {
	require.Equal(t, "x: 1.5, y: -2", Vec2{1.5, -2}.String())
}

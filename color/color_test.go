package color

import (
	stdcolor "image/color"
	"testing"

	"github.com/oliverbestmann/gm/internal/mathtest"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	c := New()
	require.Equal(t, Color{R: 0, G: 0, B: 0, A: 255}, c)
	require.Equal(t, Black, c)

	var zero Color
	require.Equal(t, Transparent, zero)
}

func TestConstruct(t *testing.T) {
	require.Equal(t, Color{R: 1, G: 2, B: 3, A: 4}, RGBA(1, 2, 3, 4))
	require.Equal(t, Color{R: 1, G: 2, B: 3, A: 255}, RGB(1, 2, 3))
	require.Equal(t, Color{R: 7, G: 7, B: 7, A: 255}, Gray(7))
	require.Equal(t, RGBA(1, 2, 3, 9), RGB(1, 2, 3).WithAlpha(9))
	require.True(t, White.IsIdentity())
	require.False(t, Black.IsIdentity())
}

func TestEquality(t *testing.T) {
	a := RGBA(10, 20, 30, 40)

	require.True(t, a == RGBA(10, 20, 30, 40))
	require.True(t, a != RGBA(10, 20, 30, 41))

	require.True(t, a.AlmostEquals(RGBA(10, 20, 30, 40)))
	require.False(t, a.AlmostEquals(RGBA(11, 20, 30, 40)))
	require.True(t, a.Equals(RGBA(11, 20, 30, 40), 2))

	mathtest.RequireEquals(t, a, RGBA(10, 20, 30, 40))
	mathtest.RequireNotEquals(t, a, White)
	mathtest.RequireSymmetric(t, a, White)
}

func TestUint32(t *testing.T) {
	c := RGBA(0x12, 0x34, 0x56, 0x78)
	require.Equal(t, uint32(0x12345678), c.Uint32())
	require.Equal(t, c, FromUint32(0x12345678))
	require.Equal(t, White, FromUint32(0xffffffff))
}

func TestStdColor(t *testing.T) {
	var _ stdcolor.Color = Color{}

	r, g, b, a := RGBA(255, 0, 0, 255).RGBA()
	require.Equal(t, []uint32{0xffff, 0, 0, 0xffff}, []uint32{r, g, b, a})

	// premultiplied on the way out
	r, _, _, a = RGBA(255, 0, 0, 0).RGBA()
	require.Equal(t, uint32(0), r)
	require.Equal(t, uint32(0), a)

	require.Equal(t, RGBA(1, 2, 3, 255), FromColor(stdcolor.RGBA{R: 1, G: 2, B: 3, A: 255}))
	require.Equal(t, Gray(128), FromColor(stdcolor.Gray{Y: 128}))

	c := RGBA(200, 100, 50, 255)
	require.Equal(t, c, FromColor(c))
}

func TestFloat32Values(t *testing.T) {
	r, g, b, a := RGBA(255, 0, 51, 255).Float32Values()
	require.Equal(t, []float32{1, 0, 0.2, 1}, []float32{r, g, b, a})

	r, g, b, a = RGBA(255, 255, 255, 0).PremultipliedValues()
	require.Equal(t, []float32{0, 0, 0, 0}, []float32{r, g, b, a})
}

func TestLerp(t *testing.T) {
	require.Equal(t, Black, Lerp(Black, White, 0))
	require.Equal(t, White, Lerp(Black, White, 1))
	require.Equal(t, Gray(128), Lerp(Black, White, 0.5))
	require.Equal(t, RGBA(5, 10, 15, 20), Lerp(RGBA(0, 0, 0, 0), RGBA(10, 20, 30, 40), 0.5))

	// extrapolation saturates
	require.Equal(t, White, Lerp(Black, White, 2))
	require.Equal(t, Black, Lerp(Gray(10), Black, 3))
}

func TestString(t *testing.T) {
	require.Equal(t, "r: 1, g: 2, b: 3, a: 255", RGB(1, 2, 3).String())
}

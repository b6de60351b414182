// Package color provides an 8 bit per channel RGBA color value.
package color

import (
	"fmt"
	stdcolor "image/color"

	"github.com/chewxy/math32"
	"github.com/oliverbestmann/gm"
)

var White = RGB(255, 255, 255)
var Black = RGB(0, 0, 0)
var Transparent = RGBA(0, 0, 0, 0)

// Color is a non alpha pre-multiplied color value with 8 bits per channel.
// A value of 255 indicates full color. Note that the zero value is
// fully transparent, use New to get opaque black.
type Color struct {
	R, G, B, A uint8
}

// New returns opaque black.
func New() Color {
	return Black
}

func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 255)
}

func Gray(g uint8) Color {
	return RGB(g, g, g)
}

// FromUint32 unpacks a color in 0xRRGGBBAA notation.
func FromUint32(value uint32) Color {
	return Color{
		R: uint8(value >> 24),
		G: uint8(value >> 16),
		B: uint8(value >> 8),
		A: uint8(value),
	}
}

// FromColor converts any color of the standard library.
func FromColor(c stdcolor.Color) Color {
	nrgba := stdcolor.NRGBAModel.Convert(c).(stdcolor.NRGBA)
	return Color{R: nrgba.R, G: nrgba.G, B: nrgba.B, A: nrgba.A}
}

func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// Uint32 packs the color as 0xRRGGBBAA.
func (c Color) Uint32() uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

// RGBA implements image/color.Color
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

func (c Color) NRGBA() stdcolor.NRGBA {
	return stdcolor.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Float32Values returns the channels scaled to the range [0, 1].
func (c Color) Float32Values() (float32, float32, float32, float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255
}

// PremultipliedValues is like Float32Values, but with
// the color channels multiplied by alpha.
func (c Color) PremultipliedValues() (float32, float32, float32, float32) {
	r, g, b, a := c.Float32Values()
	return r * a, g * a, b * a, a
}

func (c Color) IsIdentity() bool {
	return c == White
}

// Equals compares the channels as numbers, each channel may
// differ by less than tolerance.
func (c Color) Equals(other Color, tolerance float32) bool {
	return gm.ApproximatelyEquals(float32(c.R), float32(other.R), tolerance) &&
		gm.ApproximatelyEquals(float32(c.G), float32(other.G), tolerance) &&
		gm.ApproximatelyEquals(float32(c.B), float32(other.B), tolerance) &&
		gm.ApproximatelyEquals(float32(c.A), float32(other.A), tolerance)
}

func (c Color) AlmostEquals(other Color) bool {
	return c.Equals(other, gm.Tolerance)
}

func (c Color) String() string {
	return fmt.Sprintf("r: %d, g: %d, b: %d, a: %d", c.R, c.G, c.B, c.A)
}

// Lerp interpolates every channel between a and b,
// rounding to the nearest representable value.
func Lerp(a, b Color, alpha float32) Color {
	return Color{
		R: lerpChannel(a.R, b.R, alpha),
		G: lerpChannel(a.G, b.G, alpha),
		B: lerpChannel(a.B, b.B, alpha),
		A: lerpChannel(a.A, b.A, alpha),
	}
}

func lerpChannel(a, b uint8, alpha float32) uint8 {
	value := gm.Lerp(float32(a), float32(b), alpha)
	return uint8(clamp(math32.Round(value), 0, 255))
}

func clamp[T float32 | float64](value, min, max T) T {
	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

package gm

import (
	"fmt"
	"image"
)

// Rect is an axis aligned rectangle given by its minimum and maximum corner.
type Rect struct {
	Min, Max Vec2
}

func RectWithPoints(a, b Vec2) Rect {
	return Rect{
		Min: Vec2{min(a[0], b[0]), min(a[1], b[1])},
		Max: Vec2{max(a[0], b[0]), max(a[1], b[1])},
	}
}

func RectWithSize(size Vec2) Rect {
	return Rect{
		Min: Vec2Zero,
		Max: size,
	}
}

func RectWithOriginAndSize(origin, size Vec2) Rect {
	return Rect{
		Min: origin,
		Max: origin.Add(size),
	}
}

func RectWithCenterAndSize(center, size Vec2) Rect {
	half := size.Mul(0.5)
	return Rect{
		Min: center.Sub(half),
		Max: center.Add(half),
	}
}

func (r Rect) Center() Vec2 {
	return r.Min.Add(r.Max).Mul(0.5)
}

func (r Rect) Size() Vec2 {
	return r.Max.Sub(r.Min)
}

// Corners returns the four corners of the rectangle,
// starting at Min and going around towards Max.
func (r Rect) Corners() [4]Vec2 {
	return [4]Vec2{
		r.Min,
		{r.Max[0], r.Min[1]},
		r.Max,
		{r.Min[0], r.Max[1]},
	}
}

func (r Rect) Translate(offset Vec2) Rect {
	return Rect{
		Min: r.Min.Add(offset),
		Max: r.Max.Add(offset),
	}
}

// Transform returns the bounding box of the rectangle after
// transforming its corners with the given matrix.
func (r Rect) Transform(m Mat3) Rect {
	corners := r.Corners()

	first := m.TransformPoint(corners[0])
	result := Rect{Min: first, Max: first}

	for _, corner := range corners[1:] {
		p := m.TransformPoint(corner)
		result.Min = Vec2{min(result.Min[0], p[0]), min(result.Min[1], p[1])}
		result.Max = Vec2{max(result.Max[0], p[0]), max(result.Max[1], p[1])}
	}

	return result
}

func (r Rect) Contains(p Vec2) bool {
	return r.Min[0] <= p[0] && p[0] <= r.Max[0] &&
		r.Min[1] <= p[1] && p[1] <= r.Max[1]
}

func (v Vec2) ToImagePoint() image.Point {
	return image.Point{X: int(v[0]), Y: int(v[1])}
}

func (r Rect) ToImageRectangle() image.Rectangle {
	return image.Rectangle{
		Min: r.Min.ToImagePoint(),
		Max: r.Max.ToImagePoint(),
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect(min=(%s), max=(%s))", r.Min, r.Max)
}

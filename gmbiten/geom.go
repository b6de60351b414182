// Package gmbiten connects the types of gm to ebiten.
package gmbiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/gm"
	"github.com/oliverbestmann/gm/color"
)

// GeoM converts the affine part of a Mat3 into an ebiten.GeoM.
// The last row of m is expected to be (0, 0, 1) and is ignored.
func GeoM(m gm.Mat3) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, float64(m.At(0, 0)))
	g.SetElement(0, 1, float64(m.At(1, 0)))
	g.SetElement(0, 2, float64(m.At(2, 0)))
	g.SetElement(1, 0, float64(m.At(0, 1)))
	g.SetElement(1, 1, float64(m.At(1, 1)))
	g.SetElement(1, 2, float64(m.At(2, 1)))
	return g
}

func Mat3FromGeoM(g ebiten.GeoM) gm.Mat3 {
	var m gm.Mat3
	m.Set(0, 0, float32(g.Element(0, 0)))
	m.Set(1, 0, float32(g.Element(0, 1)))
	m.Set(2, 0, float32(g.Element(0, 2)))
	m.Set(0, 1, float32(g.Element(1, 0)))
	m.Set(1, 1, float32(g.Element(1, 1)))
	m.Set(2, 1, float32(g.Element(1, 2)))
	m.Set(2, 2, 1)
	return m
}

// ColorScale returns a color scale tinting an image with the given color.
func ColorScale(c color.Color) ebiten.ColorScale {
	var colorScale ebiten.ColorScale
	colorScale.Scale(c.PremultipliedValues())
	return colorScale
}

// DrawImageOptions combines a transform and a tint into options for ebiten.Image.DrawImage.
func DrawImageOptions(m gm.Mat3, tint color.Color) *ebiten.DrawImageOptions {
	return &ebiten.DrawImageOptions{
		GeoM:       GeoM(m),
		ColorScale: ColorScale(tint),
	}
}

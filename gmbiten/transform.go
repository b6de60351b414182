package gmbiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/gm"
)

// Transform describes the placement of an object in 2d.
// Scale is applied first, then the rotation and finally the translation.
type Transform struct {
	Translation gm.Vec2
	Scale       gm.Vec2
	Rotation    gm.Rad
}

func NewTransform() Transform {
	return Transform{
		Scale: gm.Vec2One,
	}
}

func TransformFromXY(x, y float32) Transform {
	return Transform{
		Scale:       gm.Vec2One,
		Translation: gm.Vec2{x, y},
	}
}

func (t Transform) WithTranslation(translation gm.Vec2) Transform {
	t.Translation = translation
	return t
}

func (t Transform) WithRotation(rotation gm.Rad) Transform {
	t.Rotation = rotation
	return t
}

func (t Transform) WithScale(scale gm.Vec2) Transform {
	t.Scale = scale
	return t
}

func (t Transform) Mat3() gm.Mat3 {
	return gm.TranslationMat3Vec(t.Translation).
		Rotate(t.Rotation).
		Scale(t.Scale)
}

func (t Transform) GeoM() ebiten.GeoM {
	return GeoM(t.Mat3())
}

// Mul places the child transform in the space of t. The result is
// only exact for uniform scales, non uniform scales can not be
// represented as Transform after rotating.
func (t Transform) Mul(child Transform) Transform {
	return Transform{
		Translation: t.Mat3().TransformPoint(child.Translation),
		Scale:       t.Scale.MulEach(child.Scale),
		Rotation:    t.Rotation + child.Rotation,
	}
}

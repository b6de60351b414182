// Package physics runs a 2d rigid body simulation with chipmunk (cp)
// and reports the results as gm types.
package physics

import (
	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/gm"
)

func Vector(v gm.Vec2) cp.Vector {
	return cp.Vector{X: float64(v[0]), Y: float64(v[1])}
}

func Vec2(v cp.Vector) gm.Vec2 {
	return gm.Vec2{float32(v.X), float32(v.Y)}
}

// Transform converts the affine part of m. The last row of m is
// expected to be (0, 0, 1) and is ignored.
func Transform(m gm.Mat3) cp.Transform {
	return cp.NewTransform(
		float64(m.At(0, 0)), float64(m.At(1, 0)), float64(m.At(2, 0)),
		float64(m.At(0, 1)), float64(m.At(1, 1)), float64(m.At(2, 1)),
	)
}

func Mat3FromTransform(t cp.Transform) gm.Mat3 {
	// the elements of a cp.Transform are not exported,
	// recover them by transforming the unit vectors
	xAxis := Vec2(t.Vect(cp.Vector{X: 1}))
	yAxis := Vec2(t.Vect(cp.Vector{Y: 1}))
	origin := Vec2(t.Point(cp.Vector{}))

	return gm.Mat3{
		xAxis[0], xAxis[1], 0,
		yAxis[0], yAxis[1], 0,
		origin[0], origin[1], 1,
	}
}

// BodyMat3 returns the local to world transform of the body.
func BodyMat3(body *cp.Body) gm.Mat3 {
	return gm.TranslationMat3Vec(Vec2(body.Position())).
		Rotate(gm.Rad(body.Angle()))
}

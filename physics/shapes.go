package physics

import (
	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/gm"
)

type ToShape interface {
	MakeShape(body *cp.Body) *cp.Shape

	// Moment returns the moment of inertia of the shape for the given mass.
	Moment(mass float32) float64
}

type CircleShape struct {
	Radius float32
	Offset gm.Vec2
}

func (s CircleShape) MakeShape(body *cp.Body) *cp.Shape {
	return cp.NewCircle(body, float64(s.Radius), Vector(s.Offset))
}

func (s CircleShape) Moment(mass float32) float64 {
	return cp.MomentForCircle(float64(mass), 0, float64(s.Radius), Vector(s.Offset))
}

type BoxShape struct {
	Size   gm.Vec2
	Radius float32
}

func (s BoxShape) MakeShape(body *cp.Body) *cp.Shape {
	return cp.NewBox(body, float64(s.Size[0]), float64(s.Size[1]), float64(s.Radius))
}

func (s BoxShape) Moment(mass float32) float64 {
	return cp.MomentForBox(float64(mass), float64(s.Size[0]), float64(s.Size[1]))
}

type SegmentShape struct {
	A, B   gm.Vec2
	Radius float32
}

func (s SegmentShape) MakeShape(body *cp.Body) *cp.Shape {
	return cp.NewSegment(body, Vector(s.A), Vector(s.B), float64(s.Radius))
}

func (s SegmentShape) Moment(mass float32) float64 {
	return cp.MomentForSegment(float64(mass), Vector(s.A), Vector(s.B), float64(s.Radius))
}

// PolygonShape is the convex hull of the given points. The points are
// transformed into the local space of the body with Transform. A zero
// Transform is treated as identity.
type PolygonShape struct {
	Points    []gm.Vec2
	Transform gm.Mat3
	Radius    float32
}

func (s PolygonShape) transform() gm.Mat3 {
	if s.Transform == (gm.Mat3{}) {
		return gm.IdentityMat3()
	}

	return s.Transform
}

func (s PolygonShape) MakeShape(body *cp.Body) *cp.Shape {
	verts := make([]cp.Vector, len(s.Points))
	for idx, point := range s.Points {
		verts[idx] = Vector(point)
	}

	return cp.NewPolyShape(body, len(verts), verts, Transform(s.transform()), float64(s.Radius))
}

func (s PolygonShape) Moment(mass float32) float64 {
	tr := s.transform()

	verts := make([]cp.Vector, len(s.Points))
	for idx, point := range s.Points {
		verts[idx] = Vector(tr.TransformPoint(point))
	}

	return cp.MomentForPoly(float64(mass), len(verts), verts, cp.Vector{}, float64(s.Radius))
}

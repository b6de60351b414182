package physics

import (
	"iter"
	"log/slog"

	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/gm"
)

type BodyKind int

const (
	Dynamic BodyKind = iota
	Kinematic
	Static
)

func (k BodyKind) String() string {
	switch k {
	case Dynamic:
		return "dynamic"
	case Kinematic:
		return "kinematic"
	case Static:
		return "static"
	default:
		return "unknown"
	}
}

type Stepping struct {
	NumberOfSubsteps uint
}

// BodyDef describes a body and its collider.
type BodyDef struct {
	Kind  BodyKind
	Shape ToShape

	// only used for dynamic bodies
	Mass float32

	Position gm.Vec2
	Rotation gm.Rad

	Friction   float32
	Elasticity float32
}

// World wraps a cp.Space. It is not safe for concurrent use.
type World struct {
	Stepping Stepping

	space  *cp.Space
	bodies []*Body
}

func NewWorld(gravity gm.Vec2) *World {
	space := cp.NewSpace()
	space.SetGravity(Vector(gravity))

	return &World{
		Stepping: Stepping{NumberOfSubsteps: 4},
		space:    space,
	}
}

func (w *World) Gravity() gm.Vec2 {
	return Vec2(w.space.Gravity())
}

func (w *World) SetGravity(gravity gm.Vec2) {
	w.space.SetGravity(Vector(gravity))
}

func (w *World) AddBody(def BodyDef) *Body {
	var body *cp.Body

	switch def.Kind {
	case Static:
		body = cp.NewStaticBody()
	case Kinematic:
		body = cp.NewKinematicBody()
	default:
		body = cp.NewBody(float64(def.Mass), def.Shape.Moment(def.Mass))
	}

	body.SetPosition(Vector(def.Position))
	body.SetAngle(float64(def.Rotation))
	w.space.AddBody(body)

	shape := def.Shape.MakeShape(body)
	shape.SetFriction(float64(def.Friction))
	shape.SetElasticity(float64(def.Elasticity))
	w.space.AddShape(shape)

	slog.Debug(
		"Added body to world",
		slog.String("kind", def.Kind.String()),
		slog.String("position", def.Position.String()),
	)

	b := &Body{Kind: def.Kind, body: body, shape: shape}
	w.bodies = append(w.bodies, b)

	return b
}

// Step advances the simulation by dt seconds, split into
// Stepping.NumberOfSubsteps equally sized steps.
func (w *World) Step(dt float32) {
	substeps := max(1, w.Stepping.NumberOfSubsteps)

	subDt := float64(dt) / float64(substeps)
	for range substeps {
		w.space.Step(subDt)
	}
}

// Bodies yields all bodies in the order they were added.
func (w *World) Bodies() iter.Seq[*Body] {
	return func(yield func(*Body) bool) {
		for _, body := range w.bodies {
			if !yield(body) {
				return
			}
		}
	}
}

type Body struct {
	Kind BodyKind

	body  *cp.Body
	shape *cp.Shape
}

func (b *Body) Position() gm.Vec2 {
	return Vec2(b.body.Position())
}

func (b *Body) Rotation() gm.Rad {
	return gm.Rad(b.body.Angle())
}

func (b *Body) Velocity() gm.Vec2 {
	return Vec2(b.body.Velocity())
}

func (b *Body) SetVelocity(velocity gm.Vec2) {
	b.body.SetVelocityVector(Vector(velocity))
}

func (b *Body) AngularVelocity() gm.Rad {
	return gm.Rad(b.body.AngularVelocity())
}

func (b *Body) SetAngularVelocity(velocity gm.Rad) {
	b.body.SetAngularVelocity(float64(velocity))
}

// Mat3 returns the local to world transform of the body.
func (b *Body) Mat3() gm.Mat3 {
	return BodyMat3(b.body)
}

// LocalToWorld transforms a point from the local space of the body to world space.
func (b *Body) LocalToWorld(point gm.Vec2) gm.Vec2 {
	return b.Mat3().TransformPoint(point)
}

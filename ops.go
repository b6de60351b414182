package gm

// Equaler is implemented by every value type in this module. Tolerance is
// the maximum difference allowed between any two compared components.
type Equaler[T any] interface {
	Equals(other T, tolerance float32) bool
}

type scalable[V any] interface {
	Mul(scalar float32) V
}

// ScalarMul returns v scaled by s. It is the commuted form of v.Mul(s)
// and always yields the same result.
func ScalarMul[V scalable[V]](s float32, v V) V {
	return v.Mul(s)
}

// Dot returns the dot product of a and b.
func Dot[V interface{ Dot(V) float32 }](a, b V) float32 {
	return a.Dot(b)
}

// Cross returns a vector perpendicular to both a and b.
func Cross[V interface{ Cross(V) V }](a, b V) V {
	return a.Cross(b)
}

// Distance returns the distance between the points start and end.
func Distance[V interface{ Distance(V) float32 }](start, end V) float32 {
	return start.Distance(end)
}

// DistanceSqr returns the squared distance between the points start and end.
func DistanceSqr[V interface{ DistanceSqr(V) float32 }](start, end V) float32 {
	return start.DistanceSqr(end)
}

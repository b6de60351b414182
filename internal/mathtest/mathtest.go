// Package mathtest provides assertions for the value types of this module.
// They compare through the Equals method and report both values
// in their string form when the comparison fails.
package mathtest

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// Value is implemented by every value type of this module.
type Value[T any] interface {
	fmt.Stringer
	Equals(other T, tolerance float32) bool
}

// Tolerance matches gm.Tolerance. It is repeated here so the package can
// be used from tests inside package gm without an import cycle.
const Tolerance float32 = 1e-4

// RequireEquals fails the test if expected.Equals(actual) does not hold with the default tolerance.
func RequireEquals[T Value[T]](t testing.TB, expected, actual T, msgAndArgs ...any) {
	t.Helper()
	RequireEqualsWithin(t, expected, actual, Tolerance, msgAndArgs...)
}

func RequireEqualsWithin[T Value[T]](t testing.TB, expected, actual T, tolerance float32, msgAndArgs ...any) {
	t.Helper()

	if !expected.Equals(actual, tolerance) {
		require.Fail(t, fmt.Sprintf("Not equal within %v:\nexpected: %s\nactual  : %s", tolerance, expected, actual), msgAndArgs...)
	}
}

// RequireNotEquals fails the test if expected.Equals(actual) holds with the default tolerance.
func RequireNotEquals[T Value[T]](t testing.TB, expected, actual T, msgAndArgs ...any) {
	t.Helper()

	if expected.Equals(actual, Tolerance) {
		require.Fail(t, fmt.Sprintf("Should not be equal:\nexpected: %s\nactual  : %s", expected, actual), msgAndArgs...)
	}
}

// RequireSymmetric checks that Equals of a and b gives the same answer in both directions.
func RequireSymmetric[T Value[T]](t testing.TB, a, b T) {
	t.Helper()
	require.Equal(t, a.Equals(b, Tolerance), b.Equals(a, Tolerance),
		"Equals is not symmetric for %s and %s", a, b)
}

package assert

import (
	"fmt"
)

// MinLen panics if the slice holds less than n values.
func MinLen[T any](values []T, n int) {
	if len(values) < n {
		panic(fmt.Sprintf("expected at least %d values, got %d", n, len(values)))
	}
}

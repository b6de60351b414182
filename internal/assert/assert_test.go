package assert

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMinLen(t *testing.T) {
	require.NotPanics(t, func() { MinLen([]float32{1, 2, 3}, 3) })
	require.NotPanics(t, func() { MinLen([]float32{1, 2, 3, 4}, 3) })

	require.PanicsWithValue(t, "expected at least 9 values, got 2", func() {
		MinLen([]float32{1, 2}, 9)
	})
}

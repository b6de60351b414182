package gm

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f32"
)

func TestF32_Vectors(t *testing.T) {
	require.Equal(t, f32.Vec2{1, 2}, Vec2{1, 2}.F32())
	require.Equal(t, f32.Vec3{1, 2, 3}, Vec3{1, 2, 3}.F32())
	require.Equal(t, f32.Vec4{1, 2, 3, 4}, Vec4{1, 2, 3, 4}.F32())

	require.Equal(t, Vec2{1, 2}, Vec2FromF32(f32.Vec2{1, 2}))
	require.Equal(t, Vec3{1, 2, 3}, Vec3FromF32(f32.Vec3{1, 2, 3}))
	require.Equal(t, Vec4{1, 2, 3, 4}, Vec4FromF32(f32.Vec4{1, 2, 3, 4}))
}

func TestF32_Matrices(t *testing.T) {
	// f32 matrices are row major, the translation ends up in the last column
	m3 := TranslationMat3(5, 6).F32()
	require.Equal(t, f32.Mat3{1, 0, 5, 0, 1, 6, 0, 0, 1}, m3)
	require.Equal(t, TranslationMat3(5, 6), Mat3FromF32(m3))

	m4 := TranslationMat4(5, 6, 7).F32()
	require.Equal(t, f32.Mat4{1, 0, 0, 5, 0, 1, 0, 6, 0, 0, 1, 7, 0, 0, 0, 1}, m4)
	require.Equal(t, TranslationMat4(5, 6, 7), Mat4FromF32(m4))
}

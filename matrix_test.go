package gm3d

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// frobeniusNorm works against the capability interface only, so it can be
// instantiated with any of the three matrix dimensions.
func frobeniusNorm[M, V any, S Scalar](m SquareMatrix[M, V, S], other M) S {
	return m.Dot(other)
}

func TestSquareMatrix_Interface(t *testing.T) {
	t.Run("mat2", func(t *testing.T) {
		m := Mat2Of(3.0, 0, 0, 4)
		require.Equal(t, 25.0, frobeniusNorm[Mat2, Vec2, float64](m, m))
	})

	t.Run("mat3", func(t *testing.T) {
		m := Mat3FromValue(2.0)
		require.Equal(t, 12.0, frobeniusNorm[Mat3, Vec3, float64](m, m))
	})

	t.Run("mat4", func(t *testing.T) {
		m := IdentityMat4[float64]()
		require.Equal(t, 4.0, frobeniusNorm[Mat4, Vec4, float64](m, m))
	})
}

func TestMutableMatrix_Interface(t *testing.T) {
	reset := func(m MutableMatrix[Mat3, Vec3, float64]) {
		m.SetIdentity()
		m.MulSelf(2)
	}

	var m Mat3
	reset(&m)
	require.Equal(t, Mat3FromValue(2.0), m)
}

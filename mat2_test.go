package gm3d

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMat2_Determinant(t *testing.T) {
	m := Mat2Of(4.0, 0, 0, 4)
	require.Equal(t, 16.0, m.Determinant())
}

func TestMat2_TryInverse(t *testing.T) {
	m := Mat2Of(4.0, 0, 0, 4)

	inverse, ok := m.TryInverse()
	require.True(t, ok)

	// compare with ==, the off diagonal elements come out as negative zero
	require.True(t, inverse == Mat2Of(0.25, 0, 0, 0.25))

	_, ok = ZeroMat2[float64]().TryInverse()
	require.False(t, ok)
}

func TestMat2_MulIdentity(t *testing.T) {
	m := Mat2Of(1.0, 2, 3, 4)
	require.Equal(t, m, m.Mul(IdentityMat2[float64]()))
	require.Equal(t, ZeroMat2[float64](), m.Mul(ZeroMat2[float64]()))
}

func TestMat2_Transform(t *testing.T) {
	m := Mat2Of(1.0, 3, 2, 4)
	// rows are (1, 2) and (3, 4)
	require.Equal(t, Vec2Of(5.0, 11), m.Transform(Vec2Of(1.0, 2)))
}

func TestMat2_Transpose(t *testing.T) {
	m := Mat2Of(1.0, 2, 3, 4)
	require.Equal(t, Mat2Of(1.0, 3, 2, 4), m.Transpose())
	require.Equal(t, m, m.Transpose().Transpose())
}

func TestMat2_Trace(t *testing.T) {
	m := Mat2Of(1.0, 2, 3, 4)
	require.Equal(t, 5.0, m.Trace())
}

func TestMat2_Dot(t *testing.T) {
	// trace of transpose(other) * m, the sum of the element wise products
	a := Mat2Of(1.0, 2, 3, 4)
	b := Mat2Of(5.0, 6, 7, 8)
	require.Equal(t, 1.0*5+2*6+3*7+4*8, a.Dot(b))
}

func TestMat2_Predicates(t *testing.T) {
	require.True(t, IdentityMat2[float64]().IsIdentity())
	require.False(t, IdentityMat2[float64]().IsRotated())
	require.True(t, Mat2FromValue(3.0).IsDiagonal())
	require.True(t, Mat2Of(1.0, 2, 2, 5).IsSymmetric())
	require.False(t, Mat2Of(1.0, 2, 3, 5).IsSymmetric())
	require.True(t, Mat2FromValue(3.0).IsInvertible())
	require.False(t, ZeroMat2[float64]().IsInvertible())
}

func TestMat2_ColRow(t *testing.T) {
	m := Mat2Of(1.0, 2, 3, 4)
	require.Equal(t, Vec2Of(1.0, 2), m.Col(0))
	require.Equal(t, Vec2Of(3.0, 4), m.Col(1))
	require.Equal(t, Vec2Of(1.0, 3), m.Row(0))
	require.Equal(t, Vec2Of(2.0, 4), m.Row(1))

	require.Panics(t, func() { m.Col(2) })
}

func TestMat2_Mutable(t *testing.T) {
	t.Run("swap cols and rows", func(t *testing.T) {
		m := Mat2Of(1.0, 2, 3, 4)
		m.SwapCols(0, 1)
		require.Equal(t, Mat2Of(3.0, 4, 1, 2), m)

		m = Mat2Of(1.0, 2, 3, 4)
		m.SwapRows(0, 1)
		require.Equal(t, Mat2Of(2.0, 1, 4, 3), m)
	})

	t.Run("set identity and zero", func(t *testing.T) {
		m := Mat2Of(1.0, 2, 3, 4)
		m.SetIdentity()
		require.True(t, m.IsIdentity())

		m.SetZero()
		require.Equal(t, ZeroMat2[float64](), m)
	})

	t.Run("arithmetic in place", func(t *testing.T) {
		m := Mat2Of(1.0, 2, 3, 4)
		m.MulSelf(2)
		require.Equal(t, Mat2Of(2.0, 4, 6, 8), m)

		m.AddSelf(Mat2FromValue(1.0))
		require.Equal(t, Mat2Of(3.0, 4, 6, 9), m)

		m.SubSelf(Mat2FromValue(1.0))
		require.Equal(t, Mat2Of(2.0, 4, 6, 8), m)
	})

	t.Run("invert in place", func(t *testing.T) {
		m := Mat2FromValue(4.0)
		m.InvertSelf()
		require.True(t, m == Mat2FromValue(0.25))

		singular := ZeroMat2[float64]()
		require.Panics(t, singular.InvertSelf)
	})

	t.Run("transpose in place", func(t *testing.T) {
		m := Mat2Of(1.0, 2, 3, 4)
		m.TransposeSelf()
		require.Equal(t, Mat2Of(1.0, 3, 2, 4), m)
	})

	t.Run("col ptr", func(t *testing.T) {
		m := Mat2Of(1.0, 2, 3, 4)
		m.ColPtr(1).MulSelf(2)
		require.Equal(t, Mat2Of(1.0, 2, 6, 8), m)

		require.Panics(t, func() { m.ColPtr(2) })
	})
}

func TestMat2_ToMat3(t *testing.T) {
	m := Mat2Of(1.0, 2, 3, 4).ToMat3()
	require.Equal(t, Mat3Of(1.0, 2, 0, 3, 4, 0, 0, 0, 1), m)
}

func TestMat2_ToMat4(t *testing.T) {
	m := Mat2Of(1.0, 2, 3, 4).ToMat4()
	require.Equal(t, Vec4Of(1.0, 2, 0, 0), m.Col(0))
	require.Equal(t, Vec4Of(0.0, 0, 0, 1), m.Col(3))
}

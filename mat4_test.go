package gm3d

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func randomMat4() Mat4 {
	var m Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			m.ColPtr(c).SetAt(r, RandomIn(-1.0, 1.0))
		}
	}
	return m
}

func TestMat4_Determinant(t *testing.T) {
	require.Equal(t, 1.0, IdentityMat4[float64]().Determinant())
	require.Equal(t, 16.0, Mat4FromValue(2.0).Determinant())

	// swapping two columns flips the sign
	m := randomMat4()
	swapped := m
	swapped.SwapCols(1, 3)
	require.InDelta(t, -m.Determinant(), swapped.Determinant(), 1e-9)
}

func TestMat4_TryInverse(t *testing.T) {
	m := Mat4FromValue(2.0)

	inverse, ok := m.TryInverse()
	require.True(t, ok)
	require.True(t, inverse.FuzzyEq(Mat4FromValue(0.5)))

	_, ok = ZeroMat4[float64]().TryInverse()
	require.False(t, ok)
}

func TestMat4_InverseProperty(t *testing.T) {
	identity := IdentityMat4[float64]()

	count := 0
	for count < 20 {
		m := randomMat4()

		// skip badly conditioned inputs, partial pivoting does not
		// rescue those
		d := m.Determinant()
		if d < 0.1 && d > -0.1 {
			continue
		}

		count++

		inverse, ok := m.TryInverse()
		require.True(t, ok)
		require.True(t, m.Mul(inverse).FuzzyEq(identity),
			"m * inverse(m) should be the identity for %s", m)
		require.True(t, inverse.Mul(m).FuzzyEq(identity))
	}
}

func TestMat4_InversePivoting(t *testing.T) {
	// zero on the diagonal requires the pivot search to pick another row
	m := Mat4Of(
		0.0, 1, 0, 0,
		1, 0, 0, 0,
		0, 0, 0, 2,
		0, 0, 2, 0,
	)

	inverse, ok := m.TryInverse()
	require.True(t, ok)
	require.True(t, m.Mul(inverse).FuzzyEq(IdentityMat4[float64]()))
}

func TestMat4_MulIdentity(t *testing.T) {
	for range 20 {
		m := randomMat4()
		require.Equal(t, m, m.Mul(IdentityMat4[float64]()))

		// compare with ==, multiplying negative elements with the zero
		// matrix produces negative zeros
		require.True(t, m.Mul(ZeroMat4[float64]()) == ZeroMat4[float64]())
	}
}

func TestMat4_TransposeTwice(t *testing.T) {
	for range 20 {
		m := randomMat4()
		require.Equal(t, m, m.Transpose().Transpose())
	}
}

func TestMat4_DeterminantOfTranspose(t *testing.T) {
	for range 20 {
		m := randomMat4()
		require.InDelta(t, m.Determinant(), m.Transpose().Determinant(), 1e-9)
	}
}

func TestMat4_Trace(t *testing.T) {
	require.Equal(t, 8.0, Mat4FromValue(2.0).Trace())
}

func TestMat4_Predicates(t *testing.T) {
	require.True(t, IdentityMat4[float64]().IsIdentity())
	require.True(t, Mat4FromValue(2.0).IsDiagonal())
	require.True(t, Mat4FromValue(2.0).IsSymmetric())
	require.True(t, Mat4FromValue(2.0).IsRotated())
	require.False(t, ZeroMat4[float64]().IsInvertible())
}

func TestMat4_Transform(t *testing.T) {
	// a pure translation matrix moves the point
	m := IdentityMat4[float64]()
	m.WAxis = Vec4Of(10.0, 20, 30, 1)

	v := m.Transform(Vec4Of(1.0, 2, 3, 1))
	require.Equal(t, Vec4Of(11.0, 22, 33, 1), v)
}

func TestMat4_Mutable(t *testing.T) {
	t.Run("swap cols and rows", func(t *testing.T) {
		m := IdentityMat4[float64]()
		m.SwapCols(0, 3)
		require.Equal(t, Vec4Of(0.0, 0, 0, 1), m.Col(0))
		require.Equal(t, Vec4Of(1.0, 0, 0, 0), m.Col(3))

		m = IdentityMat4[float64]()
		m.SwapRows(0, 3)
		require.Equal(t, Vec4Of(0.0, 0, 0, 1), m.Col(0))
		require.Equal(t, Vec4Of(1.0, 0, 0, 0), m.Row(3))
	})

	t.Run("transpose in place matches transpose", func(t *testing.T) {
		for range 10 {
			m := randomMat4()
			transposed := m.Transpose()
			m.TransposeSelf()
			require.Equal(t, transposed, m)
		}
	})

	t.Run("invert in place", func(t *testing.T) {
		m := Mat4FromValue(2.0)
		m.InvertSelf()
		require.True(t, m.FuzzyEq(Mat4FromValue(0.5)))

		singular := ZeroMat4[float64]()
		require.Panics(t, singular.InvertSelf)
	})

	t.Run("arithmetic in place", func(t *testing.T) {
		m := Mat4FromValue(1.0)
		m.MulSelf(4)
		require.Equal(t, Mat4FromValue(4.0), m)

		m.AddSelf(Mat4FromValue(1.0))
		require.Equal(t, Mat4FromValue(5.0), m)

		m.SubSelf(Mat4FromValue(2.0))
		require.Equal(t, Mat4FromValue(3.0), m)
	})

	t.Run("col ptr", func(t *testing.T) {
		m := IdentityMat4[float64]()
		require.Panics(t, func() { m.ColPtr(4) })
		require.Panics(t, func() { m.ColPtr(-1) })
	})
}

package gm3d

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVec3_Cross(t *testing.T) {
	x := Vec3Of(1.0, 0, 0)
	y := Vec3Of(0.0, 1, 0)
	z := Vec3Of(0.0, 0, 1)

	require.Equal(t, z, x.Cross(y))
	require.Equal(t, x, y.Cross(z))
	require.Equal(t, y, z.Cross(x))
	require.Equal(t, Vec3Of(0.0, 0, -1), y.Cross(x))
}

func TestVec3_Dot(t *testing.T) {
	a := Vec3Of(1.0, 2, 3)
	b := Vec3Of(4.0, 5, 6)
	require.Equal(t, 32.0, a.Dot(b))
}

func TestVec4_At(t *testing.T) {
	v := Vec4Of(1.0, 2, 3, 4)

	require.Equal(t, 1.0, v.At(0))
	require.Equal(t, 2.0, v.At(1))
	require.Equal(t, 3.0, v.At(2))
	require.Equal(t, 4.0, v.At(3))

	require.Panics(t, func() { v.At(4) })
	require.Panics(t, func() { v.At(-1) })
}

func TestVec3_Swap(t *testing.T) {
	v := Vec3Of(1.0, 2, 3)
	v.Swap(0, 2)
	require.Equal(t, Vec3Of(3.0, 2, 1), v)
}

func TestVec3_InPlace(t *testing.T) {
	v := Vec3Of(1.0, 2, 3)

	v.MulSelf(2)
	require.Equal(t, Vec3Of(2.0, 4, 6), v)

	v.DivSelf(2)
	require.Equal(t, Vec3Of(1.0, 2, 3), v)

	v.AddSelf(Vec3Of(1.0, 1, 1))
	require.Equal(t, Vec3Of(2.0, 3, 4), v)

	v.SubSelf(Vec3Of(1.0, 1, 1))
	require.Equal(t, Vec3Of(1.0, 2, 3), v)
}

func TestVec3_Normalized(t *testing.T) {
	v := Vec3Of(3.0, 0, 4)
	n := v.Normalized()
	require.InDelta(t, 1, n.Length(), 1e-9)
	require.True(t, n.FuzzyEq(Vec3Of(0.6, 0, 0.8)))
}

package gm3d

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDegToRad(t *testing.T) {
	require.InDelta(t, math.Pi, DegToRad(180).Radians(), 1e-9)
	require.InDelta(t, 90, DegToRad(90).Degrees(), 1e-9)
}

func TestRad_Normalized(t *testing.T) {
	require.InDelta(t, 0, Rad(2*math.Pi).Normalized().Radians(), 1e-9)
	require.InDelta(t, -math.Pi/2, Rad(1.5*math.Pi).Normalized().Radians(), 1e-9)
}

func TestRad_Trig(t *testing.T) {
	require.InDelta(t, 0, DegToRad(90).Cos(), 1e-9)
	require.InDelta(t, 1, DegToRad(90).Sin(), 1e-9)
	require.InDelta(t, 1, DegToRad(45).Tan(), 1e-9)
}

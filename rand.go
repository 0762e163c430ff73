package gm3d

import (
	"math"
	"math/rand/v2"
)

// RandomIn returns a random value uniformly sampled from the given range, excluding max.
func RandomIn[S Scalar](min, max S) S {
	return S(rand.Float64()*(float64(max)-float64(min))) + min
}

// RandomAngle returns a random angle uniformly sampled from the full circle
func RandomAngle() Rad {
	return Rad(RandomIn(0, 2*math.Pi))
}

// RandomVec3 returns a vector uniformly sampled from within the unit sphere.
func RandomVec3[S Scalar]() Vec3Type[S] {
	for {
		v := Vec3Type[S]{
			X: S(RandomIn[S](-1, 1)),
			Y: S(RandomIn[S](-1, 1)),
			Z: S(RandomIn[S](-1, 1)),
		}

		if v.Dot(v) <= 1 {
			return v
		}
	}
}

// RandomUnitVec3 returns a random vector of length one.
func RandomUnitVec3[S Scalar]() Vec3Type[S] {
	for {
		v := RandomVec3[S]()
		if v.Dot(v) > 1e-3 {
			return v.Normalized()
		}
	}
}

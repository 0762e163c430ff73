package gm3d

import "math"

// Scalar is the set of element types the vector and matrix types
// can be instantiated with.
type Scalar interface {
	float32 | float64
}

// epsilon is the tolerance used by FuzzyEq and all structural predicates
// such as IsIdentity or IsSymmetric.
const epsilon = 1e-6

func fuzzyEq[S Scalar](a, b S) bool {
	return math.Abs(float64(a-b)) <= epsilon
}

func fuzzyZero[S Scalar](a S) bool {
	return math.Abs(float64(a)) <= epsilon
}

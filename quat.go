package gm3d

import (
	"fmt"
	"math"
)

type Quat = QuatType[float64]
type Quatf = QuatType[float32]

// QuatType is a quaternion used as a compact rotation representation.
type QuatType[S Scalar] struct {
	W, X, Y, Z S
}

func QuatOf[S Scalar](w, x, y, z S) QuatType[S] {
	return QuatType[S]{W: w, X: x, Y: y, Z: z}
}

// IdentityQuat returns the identity rotation.
func IdentityQuat[S Scalar]() QuatType[S] {
	return QuatType[S]{W: 1}
}

// ToQuat converts a rotation matrix into a quaternion.
//
// The conversion assumes the matrix is a valid orthonormal rotation. It
// selects one of four branches on the trace of the matrix and, when the
// trace is not usable, on the largest diagonal entry, so that the scale
// factor divided by never gets close to zero.
//
// Implemented using a mix of ideas from jMonkeyEngine and Ken Shoemake's
// paper on quaternions: http://www.cs.ucr.edu/~vbz/resources/Quatut.pdf
func (m Mat3Type[S]) ToQuat() QuatType[S] {
	var w, x, y, z S

	trace := m.Trace()

	switch {
	case trace >= 0:
		s := S(math.Sqrt(float64(1 + trace)))
		w = 0.5 * s
		s = 0.5 / s
		x = (m.YAxis.Z - m.ZAxis.Y) * s
		y = (m.ZAxis.X - m.XAxis.Z) * s
		z = (m.XAxis.Y - m.YAxis.X) * s

	case m.XAxis.X > m.YAxis.Y && m.XAxis.X > m.ZAxis.Z:
		s := S(math.Sqrt(float64(0.5 + (m.XAxis.X - m.YAxis.Y - m.ZAxis.Z))))
		w = 0.5 * s
		s = 0.5 / s
		x = (m.XAxis.Y - m.YAxis.X) * s
		y = (m.ZAxis.X - m.XAxis.Z) * s
		z = (m.YAxis.Z - m.ZAxis.Y) * s

	case m.YAxis.Y > m.ZAxis.Z:
		s := S(math.Sqrt(float64(0.5 + (m.YAxis.Y - m.XAxis.X - m.ZAxis.Z))))
		w = 0.5 * s
		s = 0.5 / s
		x = (m.XAxis.Y - m.YAxis.X) * s
		y = (m.YAxis.Z - m.ZAxis.Y) * s
		z = (m.ZAxis.X - m.XAxis.Z) * s

	default:
		s := S(math.Sqrt(float64(0.5 + (m.ZAxis.Z - m.XAxis.X - m.YAxis.Y))))
		w = 0.5 * s
		s = 0.5 / s
		x = (m.ZAxis.X - m.XAxis.Z) * s
		y = (m.YAxis.Z - m.ZAxis.Y) * s
		z = (m.XAxis.Y - m.YAxis.X) * s
	}

	return QuatOf(w, x, y, z)
}

// Mul returns the quaternion product of the two quaternions. Applying the
// result rotates first by other, then by q.
func (q QuatType[S]) Mul(other QuatType[S]) QuatType[S] {
	return QuatOf(
		q.W*other.W-q.X*other.X-q.Y*other.Y-q.Z*other.Z,
		q.W*other.X+q.X*other.W+q.Y*other.Z-q.Z*other.Y,
		q.W*other.Y+q.Y*other.W+q.Z*other.X-q.X*other.Z,
		q.W*other.Z+q.Z*other.W+q.X*other.Y-q.Y*other.X,
	)
}

// Conjugate returns the quaternion with the vector part negated. For a
// unit quaternion this is the inverse rotation.
func (q QuatType[S]) Conjugate() QuatType[S] {
	return QuatOf(q.W, -q.X, -q.Y, -q.Z)
}

// Transform rotates the vector by the quaternion.
func (q QuatType[S]) Transform(vec Vec3Type[S]) Vec3Type[S] {
	qv := Vec3Of(q.X, q.Y, q.Z)
	t := qv.Cross(vec).Mul(2)
	return vec.Add(t.Mul(q.W)).Add(qv.Cross(t))
}

func (q QuatType[S]) Length() S {
	return S(math.Sqrt(float64(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)))
}

func (q QuatType[S]) Normalized() QuatType[S] {
	length := q.Length()
	return QuatOf(q.W/length, q.X/length, q.Y/length, q.Z/length)
}

func (q QuatType[S]) FuzzyEq(other QuatType[S]) bool {
	return fuzzyEq(q.W, other.W) &&
		fuzzyEq(q.X, other.X) &&
		fuzzyEq(q.Y, other.Y) &&
		fuzzyEq(q.Z, other.Z)
}

func (q QuatType[S]) String() string {
	return fmt.Sprintf("quat(w=%v, x=%v, y=%v, z=%v)", q.W, q.X, q.Y, q.Z)
}

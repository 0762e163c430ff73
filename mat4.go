package gm3d

import (
	"fmt"
	"math"
)

type Mat4 = Mat4Type[float64]
type Mat4f = Mat4Type[float32]

// Mat4Type is a 4x4 column major matrix. XAxis, YAxis, ZAxis and WAxis are
// the columns of the matrix, in that order.
type Mat4Type[S Scalar] struct {
	XAxis, YAxis, ZAxis, WAxis Vec4Type[S]
}

// Mat4Of builds a 4x4 matrix from its elements, given column by column:
//
//	       c0     c1     c2     c3
//	    +------+------+------+------+
//	 r0 | c0r0 | c1r0 | c2r0 | c3r0 |
//	    +------+------+------+------+
//	 r1 | c0r1 | c1r1 | c2r1 | c3r1 |
//	    +------+------+------+------+
//	 r2 | c0r2 | c1r2 | c2r2 | c3r2 |
//	    +------+------+------+------+
//	 r3 | c0r3 | c1r3 | c2r3 | c3r3 |
//	    +------+------+------+------+
func Mat4Of[S Scalar](
	c0r0, c0r1, c0r2, c0r3 S,
	c1r0, c1r1, c1r2, c1r3 S,
	c2r0, c2r1, c2r2, c2r3 S,
	c3r0, c3r1, c3r2, c3r3 S,
) Mat4Type[S] {
	return Mat4FromCols(
		Vec4Of(c0r0, c0r1, c0r2, c0r3),
		Vec4Of(c1r0, c1r1, c1r2, c1r3),
		Vec4Of(c2r0, c2r1, c2r2, c2r3),
		Vec4Of(c3r0, c3r1, c3r2, c3r3),
	)
}

// Mat4FromCols builds a 4x4 matrix from four column vectors.
func Mat4FromCols[S Scalar](c0, c1, c2, c3 Vec4Type[S]) Mat4Type[S] {
	return Mat4Type[S]{XAxis: c0, YAxis: c1, ZAxis: c2, WAxis: c3}
}

// Mat4FromValue builds a 4x4 diagonal matrix with the main diagonal set
// to value.
func Mat4FromValue[S Scalar](value S) Mat4Type[S] {
	return Mat4Of(
		value, 0, 0, 0,
		0, value, 0, 0,
		0, 0, value, 0,
		0, 0, 0, value,
	)
}

// IdentityMat4 returns the 4x4 identity matrix.
func IdentityMat4[S Scalar]() Mat4Type[S] {
	return Mat4Of[S](
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// ZeroMat4 returns the 4x4 matrix with all elements set to zero.
func ZeroMat4[S Scalar]() Mat4Type[S] {
	return Mat4Type[S]{}
}

// Col returns the column vector at index i.
func (m Mat4Type[S]) Col(i int) Vec4Type[S] {
	switch i {
	case 0:
		return m.XAxis
	case 1:
		return m.YAxis
	case 2:
		return m.ZAxis
	case 3:
		return m.WAxis
	default:
		panic(fmt.Sprintf("column index out of range: expected an index from 0 to 3, got %d", i))
	}
}

// Row returns the row vector at index i.
func (m Mat4Type[S]) Row(i int) Vec4Type[S] {
	return Vec4Of(
		m.XAxis.At(i),
		m.YAxis.At(i),
		m.ZAxis.At(i),
		m.WAxis.At(i),
	)
}

// MulScalar returns the matrix with every column scaled by value.
func (m Mat4Type[S]) MulScalar(value S) Mat4Type[S] {
	return Mat4FromCols(
		m.XAxis.Mul(value),
		m.YAxis.Mul(value),
		m.ZAxis.Mul(value),
		m.WAxis.Mul(value),
	)
}

// Transform returns the matrix vector product.
func (m Mat4Type[S]) Transform(vec Vec4Type[S]) Vec4Type[S] {
	return Vec4Of(
		m.Row(0).Dot(vec),
		m.Row(1).Dot(vec),
		m.Row(2).Dot(vec),
		m.Row(3).Dot(vec),
	)
}

// Add returns the column wise sum of the two matrices.
func (m Mat4Type[S]) Add(other Mat4Type[S]) Mat4Type[S] {
	return Mat4FromCols(
		m.XAxis.Add(other.XAxis),
		m.YAxis.Add(other.YAxis),
		m.ZAxis.Add(other.ZAxis),
		m.WAxis.Add(other.WAxis),
	)
}

// Sub returns the column wise difference of the two matrices.
func (m Mat4Type[S]) Sub(other Mat4Type[S]) Mat4Type[S] {
	return Mat4FromCols(
		m.XAxis.Sub(other.XAxis),
		m.YAxis.Sub(other.YAxis),
		m.ZAxis.Sub(other.ZAxis),
		m.WAxis.Sub(other.WAxis),
	)
}

// Mul returns the matrix product of the two matrices.
func (m Mat4Type[S]) Mul(other Mat4Type[S]) Mat4Type[S] {
	return Mat4Of(
		m.Row(0).Dot(other.Col(0)), m.Row(1).Dot(other.Col(0)), m.Row(2).Dot(other.Col(0)), m.Row(3).Dot(other.Col(0)),
		m.Row(0).Dot(other.Col(1)), m.Row(1).Dot(other.Col(1)), m.Row(2).Dot(other.Col(1)), m.Row(3).Dot(other.Col(1)),
		m.Row(0).Dot(other.Col(2)), m.Row(1).Dot(other.Col(2)), m.Row(2).Dot(other.Col(2)), m.Row(3).Dot(other.Col(2)),
		m.Row(0).Dot(other.Col(3)), m.Row(1).Dot(other.Col(3)), m.Row(2).Dot(other.Col(3)), m.Row(3).Dot(other.Col(3)),
	)
}

// Dot returns the matrix dot product, the trace of transpose(other)
// multiplied with m.
func (m Mat4Type[S]) Dot(other Mat4Type[S]) S {
	return other.Transpose().Mul(m).Trace()
}

// Determinant returns the determinant of the matrix, computed by cofactor
// expansion along the first row.
func (m Mat4Type[S]) Determinant() S {
	return m.XAxis.X*Mat3Of(
		m.YAxis.Y, m.ZAxis.Y, m.WAxis.Y,
		m.YAxis.Z, m.ZAxis.Z, m.WAxis.Z,
		m.YAxis.W, m.ZAxis.W, m.WAxis.W,
	).Determinant() -
		m.YAxis.X*Mat3Of(
			m.XAxis.Y, m.ZAxis.Y, m.WAxis.Y,
			m.XAxis.Z, m.ZAxis.Z, m.WAxis.Z,
			m.XAxis.W, m.ZAxis.W, m.WAxis.W,
		).Determinant() +
		m.ZAxis.X*Mat3Of(
			m.XAxis.Y, m.YAxis.Y, m.WAxis.Y,
			m.XAxis.Z, m.YAxis.Z, m.WAxis.Z,
			m.XAxis.W, m.YAxis.W, m.WAxis.W,
		).Determinant() -
		m.WAxis.X*Mat3Of(
			m.XAxis.Y, m.YAxis.Y, m.ZAxis.Y,
			m.XAxis.Z, m.YAxis.Z, m.ZAxis.Z,
			m.XAxis.W, m.YAxis.W, m.ZAxis.W,
		).Determinant()
}

// Trace returns the sum of the main diagonal.
func (m Mat4Type[S]) Trace() S {
	return m.XAxis.X + m.YAxis.Y + m.ZAxis.Z + m.WAxis.W
}

// TryInverse returns the inverse of the matrix if possible. ok is false
// when the determinant is fuzzy equal to zero.
//
// The inverse is computed by Gauss Jordan elimination with partial
// pivoting, reducing the matrix augmented with the identity. The matrix is
// accessed column by column, so putting the pivot on the diagonal swaps
// columns rather than rows. The determinant check up front guarantees a
// usable pivot in every step.
func (m Mat4Type[S]) TryInverse() (inverse Mat4Type[S], ok bool) {
	if fuzzyZero(m.Determinant()) {
		return Mat4Type[S]{}, false
	}

	a := m
	inverse = IdentityMat4[S]()

	for j := 0; j < 4; j++ {
		// find the largest element in column j, at or below the diagonal
		i1 := j
		for i := j + 1; i < 4; i++ {
			if math.Abs(float64(a.Col(j).At(i))) > math.Abs(float64(a.Col(j).At(i1))) {
				i1 = i
			}
		}

		a.SwapCols(i1, j)
		inverse.SwapCols(i1, j)

		// scale column j to get a unit diagonal
		pivot := a.Col(j).At(j)
		inverse.ColPtr(j).DivSelf(pivot)
		a.ColPtr(j).DivSelf(pivot)

		// eliminate the off diagonal elements in column j of a,
		// applying the identical operations to the inverse
		for i := 0; i < 4; i++ {
			if i == j {
				continue
			}

			f := a.Col(i).At(j)
			inverse.ColPtr(i).SubSelf(inverse.Col(j).Mul(f))
			a.ColPtr(i).SubSelf(a.Col(j).Mul(f))
		}
	}

	return inverse, true
}

// Transpose returns the transposed matrix.
func (m Mat4Type[S]) Transpose() Mat4Type[S] {
	return Mat4Of(
		m.XAxis.X, m.YAxis.X, m.ZAxis.X, m.WAxis.X,
		m.XAxis.Y, m.YAxis.Y, m.ZAxis.Y, m.WAxis.Y,
		m.XAxis.Z, m.YAxis.Z, m.ZAxis.Z, m.WAxis.Z,
		m.XAxis.W, m.YAxis.W, m.ZAxis.W, m.WAxis.W,
	)
}

// IsIdentity reports whether the matrix is fuzzy equal to the identity
// matrix.
func (m Mat4Type[S]) IsIdentity() bool {
	return m.FuzzyEq(IdentityMat4[S]())
}

// IsDiagonal reports whether all elements outside the main diagonal are
// fuzzy equal to zero.
func (m Mat4Type[S]) IsDiagonal() bool {
	return fuzzyZero(m.XAxis.Y) &&
		fuzzyZero(m.XAxis.Z) &&
		fuzzyZero(m.XAxis.W) &&
		fuzzyZero(m.YAxis.X) &&
		fuzzyZero(m.YAxis.Z) &&
		fuzzyZero(m.YAxis.W) &&
		fuzzyZero(m.ZAxis.X) &&
		fuzzyZero(m.ZAxis.Y) &&
		fuzzyZero(m.ZAxis.W) &&
		fuzzyZero(m.WAxis.X) &&
		fuzzyZero(m.WAxis.Y) &&
		fuzzyZero(m.WAxis.Z)
}

// IsRotated reports whether the matrix is not fuzzy equal to the identity
// matrix.
func (m Mat4Type[S]) IsRotated() bool {
	return !m.FuzzyEq(IdentityMat4[S]())
}

// IsSymmetric reports whether the matrix is fuzzy equal to its transpose.
func (m Mat4Type[S]) IsSymmetric() bool {
	return fuzzyEq(m.XAxis.Y, m.YAxis.X) &&
		fuzzyEq(m.XAxis.Z, m.ZAxis.X) &&
		fuzzyEq(m.XAxis.W, m.WAxis.X) &&
		fuzzyEq(m.YAxis.Z, m.ZAxis.Y) &&
		fuzzyEq(m.YAxis.W, m.WAxis.Y) &&
		fuzzyEq(m.ZAxis.W, m.WAxis.Z)
}

// IsInvertible reports whether the determinant is not fuzzy equal to zero.
func (m Mat4Type[S]) IsInvertible() bool {
	return !fuzzyZero(m.Determinant())
}

// FuzzyEq reports whether all elements of the two matrices are equal
// within the package epsilon.
func (m Mat4Type[S]) FuzzyEq(other Mat4Type[S]) bool {
	return m.XAxis.FuzzyEq(other.XAxis) &&
		m.YAxis.FuzzyEq(other.YAxis) &&
		m.ZAxis.FuzzyEq(other.ZAxis) &&
		m.WAxis.FuzzyEq(other.WAxis)
}

// Neg returns the matrix with every element negated.
func (m Mat4Type[S]) Neg() Mat4Type[S] {
	return Mat4FromCols(
		m.XAxis.Neg(),
		m.YAxis.Neg(),
		m.ZAxis.Neg(),
		m.WAxis.Neg(),
	)
}

// ColPtr returns a pointer to the column vector at index i.
func (m *Mat4Type[S]) ColPtr(i int) *Vec4Type[S] {
	switch i {
	case 0:
		return &m.XAxis
	case 1:
		return &m.YAxis
	case 2:
		return &m.ZAxis
	case 3:
		return &m.WAxis
	default:
		panic(fmt.Sprintf("column index out of range: expected an index from 0 to 3, got %d", i))
	}
}

// SwapCols exchanges the columns at indices a and b in place.
func (m *Mat4Type[S]) SwapCols(a, b int) {
	pa, pb := m.ColPtr(a), m.ColPtr(b)
	*pa, *pb = *pb, *pa
}

// SwapRows exchanges the rows at indices a and b in place.
func (m *Mat4Type[S]) SwapRows(a, b int) {
	m.XAxis.Swap(a, b)
	m.YAxis.Swap(a, b)
	m.ZAxis.Swap(a, b)
	m.WAxis.Swap(a, b)
}

// Set overwrites the matrix with other.
func (m *Mat4Type[S]) Set(other Mat4Type[S]) {
	*m = other
}

// SetIdentity overwrites the matrix with the identity matrix.
func (m *Mat4Type[S]) SetIdentity() {
	*m = IdentityMat4[S]()
}

// SetZero sets every element of the matrix to zero.
func (m *Mat4Type[S]) SetZero() {
	*m = ZeroMat4[S]()
}

// MulSelf scales every column by value in place.
func (m *Mat4Type[S]) MulSelf(value S) {
	m.XAxis.MulSelf(value)
	m.YAxis.MulSelf(value)
	m.ZAxis.MulSelf(value)
	m.WAxis.MulSelf(value)
}

// AddSelf adds other to the matrix in place.
func (m *Mat4Type[S]) AddSelf(other Mat4Type[S]) {
	m.XAxis.AddSelf(other.XAxis)
	m.YAxis.AddSelf(other.YAxis)
	m.ZAxis.AddSelf(other.ZAxis)
	m.WAxis.AddSelf(other.WAxis)
}

// SubSelf subtracts other from the matrix in place.
func (m *Mat4Type[S]) SubSelf(other Mat4Type[S]) {
	m.XAxis.SubSelf(other.XAxis)
	m.YAxis.SubSelf(other.YAxis)
	m.ZAxis.SubSelf(other.ZAxis)
	m.WAxis.SubSelf(other.WAxis)
}

// InvertSelf replaces the matrix with its inverse. Panics if the matrix is
// not invertible. Check with IsInvertible first.
func (m *Mat4Type[S]) InvertSelf() {
	inverse, ok := m.TryInverse()
	if !ok {
		panic("matrix is not invertible")
	}

	*m = inverse
}

// TransposeSelf transposes the matrix in place by swapping the off
// diagonal elements pairwise.
func (m *Mat4Type[S]) TransposeSelf() {
	m.XAxis.Y, m.YAxis.X = m.YAxis.X, m.XAxis.Y
	m.XAxis.Z, m.ZAxis.X = m.ZAxis.X, m.XAxis.Z
	m.XAxis.W, m.WAxis.X = m.WAxis.X, m.XAxis.W
	m.YAxis.Z, m.ZAxis.Y = m.ZAxis.Y, m.YAxis.Z
	m.YAxis.W, m.WAxis.Y = m.WAxis.Y, m.YAxis.W
	m.ZAxis.W, m.WAxis.Z = m.WAxis.Z, m.ZAxis.W
}

func (m Mat4Type[S]) String() string {
	return fmt.Sprintf("mat4(%s, %s, %s, %s)", m.XAxis, m.YAxis, m.ZAxis, m.WAxis)
}

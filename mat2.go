package gm3d

import "fmt"

type Mat2 = Mat2Type[float64]
type Mat2f = Mat2Type[float32]

// Mat2Type is a 2x2 column major matrix. XAxis and YAxis are the first
// and second column of the matrix.
type Mat2Type[S Scalar] struct {
	XAxis, YAxis Vec2Type[S]
}

// Mat2Of builds a 2x2 matrix from its elements, given column by column:
//
//	       c0     c1
//	    +------+------+
//	 r0 | c0r0 | c1r0 |
//	    +------+------+
//	 r1 | c0r1 | c1r1 |
//	    +------+------+
func Mat2Of[S Scalar](c0r0, c0r1, c1r0, c1r1 S) Mat2Type[S] {
	return Mat2FromCols(
		Vec2Of(c0r0, c0r1),
		Vec2Of(c1r0, c1r1),
	)
}

// Mat2FromCols builds a 2x2 matrix from two column vectors.
func Mat2FromCols[S Scalar](c0, c1 Vec2Type[S]) Mat2Type[S] {
	return Mat2Type[S]{XAxis: c0, YAxis: c1}
}

// Mat2FromValue builds a 2x2 diagonal matrix with the main diagonal set
// to value.
func Mat2FromValue[S Scalar](value S) Mat2Type[S] {
	return Mat2Of(
		value, 0,
		0, value,
	)
}

// IdentityMat2 returns the 2x2 identity matrix.
func IdentityMat2[S Scalar]() Mat2Type[S] {
	return Mat2Of[S](
		1, 0,
		0, 1,
	)
}

// ZeroMat2 returns the 2x2 matrix with all elements set to zero.
func ZeroMat2[S Scalar]() Mat2Type[S] {
	return Mat2Type[S]{}
}

// Col returns the column vector at index i.
func (m Mat2Type[S]) Col(i int) Vec2Type[S] {
	switch i {
	case 0:
		return m.XAxis
	case 1:
		return m.YAxis
	default:
		panic(fmt.Sprintf("column index out of range: expected an index from 0 to 1, got %d", i))
	}
}

// Row returns the row vector at index i.
func (m Mat2Type[S]) Row(i int) Vec2Type[S] {
	return Vec2Of(
		m.XAxis.At(i),
		m.YAxis.At(i),
	)
}

// MulScalar returns the matrix with every column scaled by value.
func (m Mat2Type[S]) MulScalar(value S) Mat2Type[S] {
	return Mat2FromCols(
		m.XAxis.Mul(value),
		m.YAxis.Mul(value),
	)
}

// Transform returns the matrix vector product.
func (m Mat2Type[S]) Transform(vec Vec2Type[S]) Vec2Type[S] {
	return Vec2Of(
		m.Row(0).Dot(vec),
		m.Row(1).Dot(vec),
	)
}

// Add returns the column wise sum of the two matrices.
func (m Mat2Type[S]) Add(other Mat2Type[S]) Mat2Type[S] {
	return Mat2FromCols(
		m.XAxis.Add(other.XAxis),
		m.YAxis.Add(other.YAxis),
	)
}

// Sub returns the column wise difference of the two matrices.
func (m Mat2Type[S]) Sub(other Mat2Type[S]) Mat2Type[S] {
	return Mat2FromCols(
		m.XAxis.Sub(other.XAxis),
		m.YAxis.Sub(other.YAxis),
	)
}

// Mul returns the matrix product of the two matrices.
func (m Mat2Type[S]) Mul(other Mat2Type[S]) Mat2Type[S] {
	return Mat2Of(
		m.Row(0).Dot(other.Col(0)), m.Row(1).Dot(other.Col(0)),
		m.Row(0).Dot(other.Col(1)), m.Row(1).Dot(other.Col(1)),
	)
}

// Dot returns the matrix dot product, the trace of transpose(other)
// multiplied with m.
func (m Mat2Type[S]) Dot(other Mat2Type[S]) S {
	return other.Transpose().Mul(m).Trace()
}

// Determinant returns the determinant of the matrix.
func (m Mat2Type[S]) Determinant() S {
	return m.XAxis.X*m.YAxis.Y - m.YAxis.X*m.XAxis.Y
}

// Trace returns the sum of the main diagonal.
func (m Mat2Type[S]) Trace() S {
	return m.XAxis.X + m.YAxis.Y
}

// TryInverse returns the inverse of the matrix if possible. ok is false
// when the determinant is fuzzy equal to zero.
func (m Mat2Type[S]) TryInverse() (inverse Mat2Type[S], ok bool) {
	d := m.Determinant()
	if fuzzyZero(d) {
		return Mat2Type[S]{}, false
	}

	return Mat2Of(
		m.YAxis.Y/d, -m.XAxis.Y/d,
		-m.YAxis.X/d, m.XAxis.X/d,
	), true
}

// Transpose returns the transposed matrix.
func (m Mat2Type[S]) Transpose() Mat2Type[S] {
	return Mat2Of(
		m.XAxis.X, m.YAxis.X,
		m.XAxis.Y, m.YAxis.Y,
	)
}

// IsIdentity reports whether the matrix is fuzzy equal to the identity
// matrix.
func (m Mat2Type[S]) IsIdentity() bool {
	return m.FuzzyEq(IdentityMat2[S]())
}

// IsDiagonal reports whether all elements outside the main diagonal are
// fuzzy equal to zero.
func (m Mat2Type[S]) IsDiagonal() bool {
	return fuzzyZero(m.XAxis.Y) &&
		fuzzyZero(m.YAxis.X)
}

// IsRotated reports whether the matrix is not fuzzy equal to the identity
// matrix.
func (m Mat2Type[S]) IsRotated() bool {
	return !m.FuzzyEq(IdentityMat2[S]())
}

// IsSymmetric reports whether the matrix is fuzzy equal to its transpose.
func (m Mat2Type[S]) IsSymmetric() bool {
	return fuzzyEq(m.XAxis.Y, m.YAxis.X)
}

// IsInvertible reports whether the determinant is not fuzzy equal to zero.
func (m Mat2Type[S]) IsInvertible() bool {
	return !fuzzyZero(m.Determinant())
}

// FuzzyEq reports whether all elements of the two matrices are equal
// within the package epsilon.
func (m Mat2Type[S]) FuzzyEq(other Mat2Type[S]) bool {
	return m.XAxis.FuzzyEq(other.XAxis) &&
		m.YAxis.FuzzyEq(other.YAxis)
}

// Neg returns the matrix with every element negated.
func (m Mat2Type[S]) Neg() Mat2Type[S] {
	return Mat2FromCols(
		m.XAxis.Neg(),
		m.YAxis.Neg(),
	)
}

// ToMat3 lifts the matrix into a 3x3 matrix, padding with the identity.
func (m Mat2Type[S]) ToMat3() Mat3Type[S] {
	return Mat3Of(
		m.XAxis.X, m.XAxis.Y, 0,
		m.YAxis.X, m.YAxis.Y, 0,
		0, 0, 1,
	)
}

// ToMat4 lifts the matrix into a 4x4 matrix, padding with the identity.
func (m Mat2Type[S]) ToMat4() Mat4Type[S] {
	return Mat4Of(
		m.XAxis.X, m.XAxis.Y, 0, 0,
		m.YAxis.X, m.YAxis.Y, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// ColPtr returns a pointer to the column vector at index i.
func (m *Mat2Type[S]) ColPtr(i int) *Vec2Type[S] {
	switch i {
	case 0:
		return &m.XAxis
	case 1:
		return &m.YAxis
	default:
		panic(fmt.Sprintf("column index out of range: expected an index from 0 to 1, got %d", i))
	}
}

// SwapCols exchanges the columns at indices a and b in place.
func (m *Mat2Type[S]) SwapCols(a, b int) {
	pa, pb := m.ColPtr(a), m.ColPtr(b)
	*pa, *pb = *pb, *pa
}

// SwapRows exchanges the rows at indices a and b in place.
func (m *Mat2Type[S]) SwapRows(a, b int) {
	m.XAxis.Swap(a, b)
	m.YAxis.Swap(a, b)
}

// Set overwrites the matrix with other.
func (m *Mat2Type[S]) Set(other Mat2Type[S]) {
	*m = other
}

// SetIdentity overwrites the matrix with the identity matrix.
func (m *Mat2Type[S]) SetIdentity() {
	*m = IdentityMat2[S]()
}

// SetZero sets every element of the matrix to zero.
func (m *Mat2Type[S]) SetZero() {
	*m = ZeroMat2[S]()
}

// MulSelf scales every column by value in place.
func (m *Mat2Type[S]) MulSelf(value S) {
	m.XAxis.MulSelf(value)
	m.YAxis.MulSelf(value)
}

// AddSelf adds other to the matrix in place.
func (m *Mat2Type[S]) AddSelf(other Mat2Type[S]) {
	m.XAxis.AddSelf(other.XAxis)
	m.YAxis.AddSelf(other.YAxis)
}

// SubSelf subtracts other from the matrix in place.
func (m *Mat2Type[S]) SubSelf(other Mat2Type[S]) {
	m.XAxis.SubSelf(other.XAxis)
	m.YAxis.SubSelf(other.YAxis)
}

// InvertSelf replaces the matrix with its inverse. Panics if the matrix is
// not invertible. Check with IsInvertible first.
func (m *Mat2Type[S]) InvertSelf() {
	inverse, ok := m.TryInverse()
	if !ok {
		panic("matrix is not invertible")
	}

	*m = inverse
}

// TransposeSelf transposes the matrix in place by swapping the off
// diagonal elements pairwise.
func (m *Mat2Type[S]) TransposeSelf() {
	m.XAxis.Y, m.YAxis.X = m.YAxis.X, m.XAxis.Y
}

func (m Mat2Type[S]) String() string {
	return fmt.Sprintf("mat2(%s, %s)", m.XAxis, m.YAxis)
}

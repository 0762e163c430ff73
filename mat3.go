package gm3d

import "fmt"

type Mat3 = Mat3Type[float64]
type Mat3f = Mat3Type[float32]

// Mat3Type is a 3x3 column major matrix. XAxis, YAxis and ZAxis are the
// columns of the matrix, in that order.
type Mat3Type[S Scalar] struct {
	XAxis, YAxis, ZAxis Vec3Type[S]
}

// Mat3Of builds a 3x3 matrix from its elements, given column by column:
//
//	       c0     c1     c2
//	    +------+------+------+
//	 r0 | c0r0 | c1r0 | c2r0 |
//	    +------+------+------+
//	 r1 | c0r1 | c1r1 | c2r1 |
//	    +------+------+------+
//	 r2 | c0r2 | c1r2 | c2r2 |
//	    +------+------+------+
func Mat3Of[S Scalar](
	c0r0, c0r1, c0r2 S,
	c1r0, c1r1, c1r2 S,
	c2r0, c2r1, c2r2 S,
) Mat3Type[S] {
	return Mat3FromCols(
		Vec3Of(c0r0, c0r1, c0r2),
		Vec3Of(c1r0, c1r1, c1r2),
		Vec3Of(c2r0, c2r1, c2r2),
	)
}

// Mat3FromCols builds a 3x3 matrix from three column vectors.
func Mat3FromCols[S Scalar](c0, c1, c2 Vec3Type[S]) Mat3Type[S] {
	return Mat3Type[S]{XAxis: c0, YAxis: c1, ZAxis: c2}
}

// Mat3FromValue builds a 3x3 diagonal matrix with the main diagonal set
// to value.
func Mat3FromValue[S Scalar](value S) Mat3Type[S] {
	return Mat3Of(
		value, 0, 0,
		0, value, 0,
		0, 0, value,
	)
}

// Mat3FromAxisAngle builds a rotation matrix that rotates by the angle
// theta around the given axis. The axis must be a unit vector.
func Mat3FromAxisAngle[S Scalar](axis Vec3Type[S], theta Rad) Mat3Type[S] {
	c := S(theta.Cos())
	s := S(theta.Sin())
	t := 1 - c

	x, y, z := axis.X, axis.Y, axis.Z

	return Mat3Of(
		t*x*x+c, t*x*y+s*z, t*x*z-s*y,
		t*x*y-s*z, t*y*y+c, t*y*z+s*x,
		t*x*z+s*y, t*y*z-s*x, t*z*z+c,
	)
}

// IdentityMat3 returns the 3x3 identity matrix.
func IdentityMat3[S Scalar]() Mat3Type[S] {
	return Mat3Of[S](
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	)
}

// ZeroMat3 returns the 3x3 matrix with all elements set to zero.
func ZeroMat3[S Scalar]() Mat3Type[S] {
	return Mat3Type[S]{}
}

// Col returns the column vector at index i.
func (m Mat3Type[S]) Col(i int) Vec3Type[S] {
	switch i {
	case 0:
		return m.XAxis
	case 1:
		return m.YAxis
	case 2:
		return m.ZAxis
	default:
		panic(fmt.Sprintf("column index out of range: expected an index from 0 to 2, got %d", i))
	}
}

// Row returns the row vector at index i.
func (m Mat3Type[S]) Row(i int) Vec3Type[S] {
	return Vec3Of(
		m.XAxis.At(i),
		m.YAxis.At(i),
		m.ZAxis.At(i),
	)
}

// MulScalar returns the matrix with every column scaled by value.
func (m Mat3Type[S]) MulScalar(value S) Mat3Type[S] {
	return Mat3FromCols(
		m.XAxis.Mul(value),
		m.YAxis.Mul(value),
		m.ZAxis.Mul(value),
	)
}

// Transform returns the matrix vector product.
func (m Mat3Type[S]) Transform(vec Vec3Type[S]) Vec3Type[S] {
	return Vec3Of(
		m.Row(0).Dot(vec),
		m.Row(1).Dot(vec),
		m.Row(2).Dot(vec),
	)
}

// Add returns the column wise sum of the two matrices.
func (m Mat3Type[S]) Add(other Mat3Type[S]) Mat3Type[S] {
	return Mat3FromCols(
		m.XAxis.Add(other.XAxis),
		m.YAxis.Add(other.YAxis),
		m.ZAxis.Add(other.ZAxis),
	)
}

// Sub returns the column wise difference of the two matrices.
func (m Mat3Type[S]) Sub(other Mat3Type[S]) Mat3Type[S] {
	return Mat3FromCols(
		m.XAxis.Sub(other.XAxis),
		m.YAxis.Sub(other.YAxis),
		m.ZAxis.Sub(other.ZAxis),
	)
}

// Mul returns the matrix product of the two matrices.
func (m Mat3Type[S]) Mul(other Mat3Type[S]) Mat3Type[S] {
	return Mat3Of(
		m.Row(0).Dot(other.Col(0)), m.Row(1).Dot(other.Col(0)), m.Row(2).Dot(other.Col(0)),
		m.Row(0).Dot(other.Col(1)), m.Row(1).Dot(other.Col(1)), m.Row(2).Dot(other.Col(1)),
		m.Row(0).Dot(other.Col(2)), m.Row(1).Dot(other.Col(2)), m.Row(2).Dot(other.Col(2)),
	)
}

// Dot returns the matrix dot product, the trace of transpose(other)
// multiplied with m.
func (m Mat3Type[S]) Dot(other Mat3Type[S]) S {
	return other.Transpose().Mul(m).Trace()
}

// Determinant returns the determinant of the matrix, computed as the
// scalar triple product of the columns.
func (m Mat3Type[S]) Determinant() S {
	return m.XAxis.Dot(m.YAxis.Cross(m.ZAxis))
}

// Trace returns the sum of the main diagonal.
func (m Mat3Type[S]) Trace() S {
	return m.XAxis.X + m.YAxis.Y + m.ZAxis.Z
}

// TryInverse returns the inverse of the matrix if possible. ok is false
// when the determinant is fuzzy equal to zero. The inverse is built from
// the cross products of the columns, the adjugate over the determinant.
func (m Mat3Type[S]) TryInverse() (inverse Mat3Type[S], ok bool) {
	d := m.Determinant()
	if fuzzyZero(d) {
		return Mat3Type[S]{}, false
	}

	return Mat3FromCols(
		m.YAxis.Cross(m.ZAxis).Div(d),
		m.ZAxis.Cross(m.XAxis).Div(d),
		m.XAxis.Cross(m.YAxis).Div(d),
	).Transpose(), true
}

// Transpose returns the transposed matrix.
func (m Mat3Type[S]) Transpose() Mat3Type[S] {
	return Mat3Of(
		m.XAxis.X, m.YAxis.X, m.ZAxis.X,
		m.XAxis.Y, m.YAxis.Y, m.ZAxis.Y,
		m.XAxis.Z, m.YAxis.Z, m.ZAxis.Z,
	)
}

// IsIdentity reports whether the matrix is fuzzy equal to the identity
// matrix.
func (m Mat3Type[S]) IsIdentity() bool {
	return m.FuzzyEq(IdentityMat3[S]())
}

// IsDiagonal reports whether all elements outside the main diagonal are
// fuzzy equal to zero.
func (m Mat3Type[S]) IsDiagonal() bool {
	return fuzzyZero(m.XAxis.Y) &&
		fuzzyZero(m.XAxis.Z) &&
		fuzzyZero(m.YAxis.X) &&
		fuzzyZero(m.YAxis.Z) &&
		fuzzyZero(m.ZAxis.X) &&
		fuzzyZero(m.ZAxis.Y)
}

// IsRotated reports whether the matrix is not fuzzy equal to the identity
// matrix.
func (m Mat3Type[S]) IsRotated() bool {
	return !m.FuzzyEq(IdentityMat3[S]())
}

// IsSymmetric reports whether the matrix is fuzzy equal to its transpose.
func (m Mat3Type[S]) IsSymmetric() bool {
	return fuzzyEq(m.XAxis.Y, m.YAxis.X) &&
		fuzzyEq(m.XAxis.Z, m.ZAxis.X) &&
		fuzzyEq(m.YAxis.Z, m.ZAxis.Y)
}

// IsInvertible reports whether the determinant is not fuzzy equal to zero.
func (m Mat3Type[S]) IsInvertible() bool {
	return !fuzzyZero(m.Determinant())
}

// FuzzyEq reports whether all elements of the two matrices are equal
// within the package epsilon.
func (m Mat3Type[S]) FuzzyEq(other Mat3Type[S]) bool {
	return m.XAxis.FuzzyEq(other.XAxis) &&
		m.YAxis.FuzzyEq(other.YAxis) &&
		m.ZAxis.FuzzyEq(other.ZAxis)
}

// Neg returns the matrix with every element negated.
func (m Mat3Type[S]) Neg() Mat3Type[S] {
	return Mat3FromCols(
		m.XAxis.Neg(),
		m.YAxis.Neg(),
		m.ZAxis.Neg(),
	)
}

// ToMat4 lifts the matrix into a 4x4 matrix, padding with the identity.
func (m Mat3Type[S]) ToMat4() Mat4Type[S] {
	return Mat4Of(
		m.XAxis.X, m.XAxis.Y, m.XAxis.Z, 0,
		m.YAxis.X, m.YAxis.Y, m.YAxis.Z, 0,
		m.ZAxis.X, m.ZAxis.Y, m.ZAxis.Z, 0,
		0, 0, 0, 1,
	)
}

// ColPtr returns a pointer to the column vector at index i.
func (m *Mat3Type[S]) ColPtr(i int) *Vec3Type[S] {
	switch i {
	case 0:
		return &m.XAxis
	case 1:
		return &m.YAxis
	case 2:
		return &m.ZAxis
	default:
		panic(fmt.Sprintf("column index out of range: expected an index from 0 to 2, got %d", i))
	}
}

// SwapCols exchanges the columns at indices a and b in place.
func (m *Mat3Type[S]) SwapCols(a, b int) {
	pa, pb := m.ColPtr(a), m.ColPtr(b)
	*pa, *pb = *pb, *pa
}

// SwapRows exchanges the rows at indices a and b in place.
func (m *Mat3Type[S]) SwapRows(a, b int) {
	m.XAxis.Swap(a, b)
	m.YAxis.Swap(a, b)
	m.ZAxis.Swap(a, b)
}

// Set overwrites the matrix with other.
func (m *Mat3Type[S]) Set(other Mat3Type[S]) {
	*m = other
}

// SetIdentity overwrites the matrix with the identity matrix.
func (m *Mat3Type[S]) SetIdentity() {
	*m = IdentityMat3[S]()
}

// SetZero sets every element of the matrix to zero.
func (m *Mat3Type[S]) SetZero() {
	*m = ZeroMat3[S]()
}

// MulSelf scales every column by value in place.
func (m *Mat3Type[S]) MulSelf(value S) {
	m.XAxis.MulSelf(value)
	m.YAxis.MulSelf(value)
	m.ZAxis.MulSelf(value)
}

// AddSelf adds other to the matrix in place.
func (m *Mat3Type[S]) AddSelf(other Mat3Type[S]) {
	m.XAxis.AddSelf(other.XAxis)
	m.YAxis.AddSelf(other.YAxis)
	m.ZAxis.AddSelf(other.ZAxis)
}

// SubSelf subtracts other from the matrix in place.
func (m *Mat3Type[S]) SubSelf(other Mat3Type[S]) {
	m.XAxis.SubSelf(other.XAxis)
	m.YAxis.SubSelf(other.YAxis)
	m.ZAxis.SubSelf(other.ZAxis)
}

// InvertSelf replaces the matrix with its inverse. Panics if the matrix is
// not invertible. Check with IsInvertible first.
func (m *Mat3Type[S]) InvertSelf() {
	inverse, ok := m.TryInverse()
	if !ok {
		panic("matrix is not invertible")
	}

	*m = inverse
}

// TransposeSelf transposes the matrix in place by swapping the off
// diagonal elements pairwise.
func (m *Mat3Type[S]) TransposeSelf() {
	m.XAxis.Y, m.YAxis.X = m.YAxis.X, m.XAxis.Y
	m.XAxis.Z, m.ZAxis.X = m.ZAxis.X, m.XAxis.Z
	m.YAxis.Z, m.ZAxis.Y = m.ZAxis.Y, m.YAxis.Z
}

func (m Mat3Type[S]) String() string {
	return fmt.Sprintf("mat3(%s, %s, %s)", m.XAxis, m.YAxis, m.ZAxis)
}

package gm3d

// SquareMatrix is the capability shared by the three matrix types. M is the
// concrete matrix type, V the column vector type of matching dimension and S
// the scalar element type.
//
// The interface exists so that code can be written against any matrix
// dimension; the determinant and inverse algorithms themselves are
// implemented per concrete type, since each dimension has its own closed
// form.
type SquareMatrix[M, V any, S Scalar] interface {
	// Col returns the column vector at index i. Panics if i is
	// outside the valid range.
	Col(i int) V

	// Row returns the row vector at index i, gathered from the columns.
	// Panics if i is outside the valid range.
	Row(i int) V

	// MulScalar returns the matrix with every column scaled by value.
	MulScalar(value S) M

	// Transform returns the matrix vector product.
	Transform(vec V) V

	// Add returns the column wise sum of the two matrices.
	Add(other M) M

	// Sub returns the column wise difference of the two matrices.
	Sub(other M) M

	// Mul returns the matrix product of the two matrices.
	Mul(other M) M

	// Dot returns the matrix dot product, defined as the trace of
	// transpose(other) multiplied with this matrix.
	Dot(other M) S

	// Determinant returns the determinant of the matrix.
	Determinant() S

	// Trace returns the sum of the main diagonal.
	Trace() S

	// TryInverse returns the inverse of the matrix if possible. ok is
	// false when the determinant is fuzzy equal to zero.
	TryInverse() (inverse M, ok bool)

	// Transpose returns the transposed matrix.
	Transpose() M

	// IsIdentity reports whether the matrix is fuzzy equal to the
	// identity matrix.
	IsIdentity() bool

	// IsDiagonal reports whether all elements outside the main diagonal
	// are fuzzy equal to zero.
	IsDiagonal() bool

	// IsRotated reports whether the matrix is not fuzzy equal to the
	// identity matrix.
	IsRotated() bool

	// IsSymmetric reports whether the matrix is fuzzy equal to its
	// transpose.
	IsSymmetric() bool

	// IsInvertible reports whether the determinant is not fuzzy equal
	// to zero.
	IsInvertible() bool

	// FuzzyEq reports whether all elements of the two matrices are
	// equal within the package epsilon.
	FuzzyEq(other M) bool

	// Neg returns the matrix with every element negated.
	Neg() M
}

// MutableMatrix extends SquareMatrix with in place operations. All methods
// use pointer receivers and mutate the matrix they are called on.
type MutableMatrix[M, V any, S Scalar] interface {
	// ColPtr returns a pointer to the column vector at index i.
	// Panics if i is outside the valid range.
	ColPtr(i int) *V

	// SwapCols exchanges the columns at indices a and b.
	SwapCols(a, b int)

	// SwapRows exchanges the rows at indices a and b.
	SwapRows(a, b int)

	// Set overwrites the matrix with other.
	Set(other M)

	// SetIdentity overwrites the matrix with the identity matrix.
	SetIdentity()

	// SetZero sets every element of the matrix to zero.
	SetZero()

	// MulSelf scales every column by value.
	MulSelf(value S)

	// AddSelf adds other to the matrix.
	AddSelf(other M)

	// SubSelf subtracts other from the matrix.
	SubSelf(other M)

	// InvertSelf replaces the matrix with its inverse. Panics if the
	// matrix is not invertible. Check with IsInvertible first.
	InvertSelf()

	// TransposeSelf transposes the matrix by swapping the off diagonal
	// elements pairwise.
	TransposeSelf()
}

var _ SquareMatrix[Mat2, Vec2, float64] = Mat2{}
var _ SquareMatrix[Mat3, Vec3, float64] = Mat3{}
var _ SquareMatrix[Mat4, Vec4, float64] = Mat4{}

var _ SquareMatrix[Mat2f, Vec2f, float32] = Mat2f{}
var _ SquareMatrix[Mat3f, Vec3f, float32] = Mat3f{}
var _ SquareMatrix[Mat4f, Vec4f, float32] = Mat4f{}

var _ MutableMatrix[Mat2, Vec2, float64] = (*Mat2)(nil)
var _ MutableMatrix[Mat3, Vec3, float64] = (*Mat3)(nil)
var _ MutableMatrix[Mat4, Vec4, float64] = (*Mat4)(nil)

package gm3d

import (
	"fmt"
	"math"
)

type Vec2 = Vec2Type[float64]
type Vec3 = Vec3Type[float64]
type Vec4 = Vec4Type[float64]

type Vec2f = Vec2Type[float32]
type Vec3f = Vec3Type[float32]
type Vec4f = Vec4Type[float32]

func Vec2Of[S Scalar](x, y S) Vec2Type[S] {
	return Vec2Type[S]{X: x, Y: y}
}

func Vec3Of[S Scalar](x, y, z S) Vec3Type[S] {
	return Vec3Type[S]{X: x, Y: y, Z: z}
}

func Vec4Of[S Scalar](x, y, z, w S) Vec4Type[S] {
	return Vec4Type[S]{X: x, Y: y, Z: z, W: w}
}

type Vec2Type[S Scalar] struct {
	X, Y S
}

func (v Vec2Type[S]) Add(other Vec2Type[S]) Vec2Type[S] {
	v.X += other.X
	v.Y += other.Y
	return v
}

func (v Vec2Type[S]) Sub(other Vec2Type[S]) Vec2Type[S] {
	v.X -= other.X
	v.Y -= other.Y
	return v
}

func (v Vec2Type[S]) Mul(scalar S) Vec2Type[S] {
	v.X *= scalar
	v.Y *= scalar
	return v
}

func (v Vec2Type[S]) Div(scalar S) Vec2Type[S] {
	v.X /= scalar
	v.Y /= scalar
	return v
}

func (v Vec2Type[S]) Neg() Vec2Type[S] {
	v.X = -v.X
	v.Y = -v.Y
	return v
}

func (v Vec2Type[S]) Dot(other Vec2Type[S]) S {
	return v.X*other.X + v.Y*other.Y
}

func (v Vec2Type[S]) Length() S {
	return S(math.Sqrt(float64(v.Dot(v))))
}

func (v Vec2Type[S]) Normalized() Vec2Type[S] {
	return v.Div(v.Length())
}

// At returns the component at index i, with 0 being X and 1 being Y.
func (v Vec2Type[S]) At(i int) S {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		panic(fmt.Sprintf("index out of range: expected an index from 0 to 1, got %d", i))
	}
}

func (v *Vec2Type[S]) SetAt(i int, value S) {
	switch i {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	default:
		panic(fmt.Sprintf("index out of range: expected an index from 0 to 1, got %d", i))
	}
}

// Swap exchanges the components at indices a and b in place.
func (v *Vec2Type[S]) Swap(a, b int) {
	va, vb := v.At(a), v.At(b)
	v.SetAt(a, vb)
	v.SetAt(b, va)
}

func (v *Vec2Type[S]) AddSelf(other Vec2Type[S]) {
	v.X += other.X
	v.Y += other.Y
}

func (v *Vec2Type[S]) SubSelf(other Vec2Type[S]) {
	v.X -= other.X
	v.Y -= other.Y
}

func (v *Vec2Type[S]) MulSelf(scalar S) {
	v.X *= scalar
	v.Y *= scalar
}

func (v *Vec2Type[S]) DivSelf(scalar S) {
	v.X /= scalar
	v.Y /= scalar
}

func (v Vec2Type[S]) FuzzyEq(other Vec2Type[S]) bool {
	return fuzzyEq(v.X, other.X) &&
		fuzzyEq(v.Y, other.Y)
}

func (v Vec2Type[S]) String() string {
	return fmt.Sprintf("vec2(x=%v, y=%v)", v.X, v.Y)
}

type Vec3Type[S Scalar] struct {
	X, Y, Z S
}

func (v Vec3Type[S]) Add(other Vec3Type[S]) Vec3Type[S] {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
	return v
}

func (v Vec3Type[S]) Sub(other Vec3Type[S]) Vec3Type[S] {
	v.X -= other.X
	v.Y -= other.Y
	v.Z -= other.Z
	return v
}

func (v Vec3Type[S]) Mul(scalar S) Vec3Type[S] {
	v.X *= scalar
	v.Y *= scalar
	v.Z *= scalar
	return v
}

func (v Vec3Type[S]) Div(scalar S) Vec3Type[S] {
	v.X /= scalar
	v.Y /= scalar
	v.Z /= scalar
	return v
}

func (v Vec3Type[S]) Neg() Vec3Type[S] {
	v.X = -v.X
	v.Y = -v.Y
	v.Z = -v.Z
	return v
}

func (v Vec3Type[S]) Dot(other Vec3Type[S]) S {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of the two vectors.
func (v Vec3Type[S]) Cross(other Vec3Type[S]) Vec3Type[S] {
	return Vec3Type[S]{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

func (v Vec3Type[S]) Length() S {
	return S(math.Sqrt(float64(v.Dot(v))))
}

func (v Vec3Type[S]) Normalized() Vec3Type[S] {
	return v.Div(v.Length())
}

// At returns the component at index i, with 0 being X, 1 being Y
// and 2 being Z.
func (v Vec3Type[S]) At(i int) S {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	default:
		panic(fmt.Sprintf("index out of range: expected an index from 0 to 2, got %d", i))
	}
}

func (v *Vec3Type[S]) SetAt(i int, value S) {
	switch i {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	case 2:
		v.Z = value
	default:
		panic(fmt.Sprintf("index out of range: expected an index from 0 to 2, got %d", i))
	}
}

// Swap exchanges the components at indices a and b in place.
func (v *Vec3Type[S]) Swap(a, b int) {
	va, vb := v.At(a), v.At(b)
	v.SetAt(a, vb)
	v.SetAt(b, va)
}

func (v *Vec3Type[S]) AddSelf(other Vec3Type[S]) {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
}

func (v *Vec3Type[S]) SubSelf(other Vec3Type[S]) {
	v.X -= other.X
	v.Y -= other.Y
	v.Z -= other.Z
}

func (v *Vec3Type[S]) MulSelf(scalar S) {
	v.X *= scalar
	v.Y *= scalar
	v.Z *= scalar
}

func (v *Vec3Type[S]) DivSelf(scalar S) {
	v.X /= scalar
	v.Y /= scalar
	v.Z /= scalar
}

func (v Vec3Type[S]) FuzzyEq(other Vec3Type[S]) bool {
	return fuzzyEq(v.X, other.X) &&
		fuzzyEq(v.Y, other.Y) &&
		fuzzyEq(v.Z, other.Z)
}

func (v Vec3Type[S]) String() string {
	return fmt.Sprintf("vec3(x=%v, y=%v, z=%v)", v.X, v.Y, v.Z)
}

type Vec4Type[S Scalar] struct {
	X, Y, Z, W S
}

func (v Vec4Type[S]) Add(other Vec4Type[S]) Vec4Type[S] {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
	v.W += other.W
	return v
}

func (v Vec4Type[S]) Sub(other Vec4Type[S]) Vec4Type[S] {
	v.X -= other.X
	v.Y -= other.Y
	v.Z -= other.Z
	v.W -= other.W
	return v
}

func (v Vec4Type[S]) Mul(scalar S) Vec4Type[S] {
	v.X *= scalar
	v.Y *= scalar
	v.Z *= scalar
	v.W *= scalar
	return v
}

func (v Vec4Type[S]) Div(scalar S) Vec4Type[S] {
	v.X /= scalar
	v.Y /= scalar
	v.Z /= scalar
	v.W /= scalar
	return v
}

func (v Vec4Type[S]) Neg() Vec4Type[S] {
	v.X = -v.X
	v.Y = -v.Y
	v.Z = -v.Z
	v.W = -v.W
	return v
}

func (v Vec4Type[S]) Dot(other Vec4Type[S]) S {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

func (v Vec4Type[S]) Length() S {
	return S(math.Sqrt(float64(v.Dot(v))))
}

func (v Vec4Type[S]) Normalized() Vec4Type[S] {
	return v.Div(v.Length())
}

// At returns the component at index i, with 0 being X, 1 being Y,
// 2 being Z and 3 being W.
func (v Vec4Type[S]) At(i int) S {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	default:
		panic(fmt.Sprintf("index out of range: expected an index from 0 to 3, got %d", i))
	}
}

func (v *Vec4Type[S]) SetAt(i int, value S) {
	switch i {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	case 2:
		v.Z = value
	case 3:
		v.W = value
	default:
		panic(fmt.Sprintf("index out of range: expected an index from 0 to 3, got %d", i))
	}
}

// Swap exchanges the components at indices a and b in place.
func (v *Vec4Type[S]) Swap(a, b int) {
	va, vb := v.At(a), v.At(b)
	v.SetAt(a, vb)
	v.SetAt(b, va)
}

func (v *Vec4Type[S]) AddSelf(other Vec4Type[S]) {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
	v.W += other.W
}

func (v *Vec4Type[S]) SubSelf(other Vec4Type[S]) {
	v.X -= other.X
	v.Y -= other.Y
	v.Z -= other.Z
	v.W -= other.W
}

func (v *Vec4Type[S]) MulSelf(scalar S) {
	v.X *= scalar
	v.Y *= scalar
	v.Z *= scalar
	v.W *= scalar
}

func (v *Vec4Type[S]) DivSelf(scalar S) {
	v.X /= scalar
	v.Y /= scalar
	v.Z /= scalar
	v.W /= scalar
}

func (v Vec4Type[S]) FuzzyEq(other Vec4Type[S]) bool {
	return fuzzyEq(v.X, other.X) &&
		fuzzyEq(v.Y, other.Y) &&
		fuzzyEq(v.Z, other.Z) &&
		fuzzyEq(v.W, other.W)
}

func (v Vec4Type[S]) String() string {
	return fmt.Sprintf("vec4(x=%v, y=%v, z=%v, w=%v)", v.X, v.Y, v.Z, v.W)
}

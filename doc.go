// Package gm3d provides square matrix math for 3d graphics.
//
// It includes column major 2x2, 3x3 and 4x4 matrix types (Mat2, Mat3, Mat4)
// with the usual arithmetic, determinant, inverse and transpose operations,
// the vector types Vec2, Vec3 and Vec4 they operate on, a Quat quaternion
// type for rotations, and builders for perspective, frustum and orthographic
// projection matrices.
//
// All types are plain values generic over float32 or float64, with the
// float64 instantiations exported under the short names. There is also a
// type named Rad to represent angle values in radian.
package gm3d

package gm3d

// Perspective builds a perspective projection matrix. fovy is the vertical
// field of view in degrees. This is the equivalent of the gluPerspective
// function.
func Perspective[S Scalar](fovy, aspectRatio, near, far S) Mat4Type[S] {
	ymax := near * S(DegToRad(float64(fovy)/2).Tan())
	xmax := ymax * aspectRatio

	return Frustum(-xmax, xmax, -ymax, ymax, near, far)
}

// Frustum builds an off center perspective projection matrix from the six
// clipping planes. This is the equivalent of the glFrustum function.
func Frustum[S Scalar](left, right, bottom, top, near, far S) Mat4Type[S] {
	return Mat4Of(
		(2*near)/(right-left), 0, 0, 0,
		0, (2*near)/(top-bottom), 0, 0,
		(right+left)/(right-left), (top+bottom)/(top-bottom), -(far+near)/(far-near), -1,
		0, 0, -(2*far*near)/(far-near), 0,
	)
}

// Ortho builds an orthographic projection matrix from the six clipping
// planes. This is the equivalent of the glOrtho function.
func Ortho[S Scalar](left, right, bottom, top, near, far S) Mat4Type[S] {
	return Mat4Of(
		2/(right-left), 0, 0, 0,
		0, 2/(top-bottom), 0, 0,
		0, 0, -2/(far-near), 0,
		-(right+left)/(right-left), -(top+bottom)/(top-bottom), -(far+near)/(far-near), 1,
	)
}

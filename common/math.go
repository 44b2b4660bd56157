package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// PerspectiveZO creates a perspective projection matrix with a [0, 1] clip-space depth range,
// the WebGPU convention. The matrix is column-major.
//
// Parameters:
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
//
// Returns:
//   - mgl64.Mat4: the projection matrix
func PerspectiveZO(fovY, aspect, near, far float64) mgl64.Mat4 {
	f := 1.0 / math.Tan(fovY/2.0)

	var m mgl64.Mat4
	m[0] = f / aspect
	m[5] = f
	m[10] = far / (near - far)
	m[11] = -1.0
	m[14] = (near * far) / (near - far)
	return m
}

// OrthographicZO creates an orthographic projection matrix with a [0, 1] clip-space depth range.
// The matrix is column-major.
//
// Parameters:
//   - left, right: horizontal frustum planes in view space
//   - bottom, top: vertical frustum planes in view space
//   - near, far: clipping plane distances
//
// Returns:
//   - mgl64.Mat4: the projection matrix
func OrthographicZO(left, right, bottom, top, near, far float64) mgl64.Mat4 {
	var m mgl64.Mat4
	m[0] = 2 / (right - left)
	m[5] = 2 / (top - bottom)
	m[10] = 1 / (near - far)
	m[12] = -(right + left) / (right - left)
	m[13] = -(top + bottom) / (top - bottom)
	m[14] = near / (near - far)
	m[15] = 1
	return m
}

// Mat4ToFloat32 narrows a column-major float64 matrix for GPU upload.
//
// Parameters:
//   - m: the source matrix
//
// Returns:
//   - [16]float32: the matrix in float32 precision, same element order
func Mat4ToFloat32(m mgl64.Mat4) [16]float32 {
	var out [16]float32
	for i := range m {
		out[i] = float32(m[i])
	}
	return out
}

// Vec3ToFloat32 narrows a float64 vector for GPU upload.
func Vec3ToFloat32(v mgl64.Vec3) [3]float32 {
	return [3]float32{float32(v[0]), float32(v[1]), float32(v[2])}
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

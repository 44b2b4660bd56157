package camera

import "github.com/go-gl/mathgl/mgl64"

// CameraBuilderOption is a functional option for configuring a camera.
// Options are applied in order, so WithLookAt should follow WithPosition and WithUp.
type CameraBuilderOption func(*cameraImpl)

// WithPosition sets the camera's initial world-space position.
//
// Parameters:
//   - x, y, z: world-space coordinates
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's position
func WithPosition(x, y, z float64) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.position = mgl64.Vec3{x, y, z}
	}
}

// WithUp sets the camera's up vector.
//
// Parameters:
//   - x, y, z: up vector components
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's up vector
func WithUp(x, y, z float64) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.up = mgl64.Vec3{x, y, z}.Normalize()
	}
}

// WithLookAt orients the camera toward a world-space point using the position and up vector
// configured so far.
//
// Parameters:
//   - x, y, z: world-space target
//
// Returns:
//   - CameraBuilderOption: a function that orients the camera
func WithLookAt(x, y, z float64) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.lookAt(mgl64.Vec3{x, y, z})
	}
}

// WithFov sets the camera's vertical field of view in radians.
//
// Parameters:
//   - fov: field of view in radians
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's field of view
func WithFov(fov float64) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.fov = fov
	}
}

// WithAspect sets the camera's aspect ratio (width / height).
//
// Parameters:
//   - aspect: the aspect ratio to set
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's aspect ratio
func WithAspect(aspect float64) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.setAspect(aspect)
	}
}

// WithNear sets the near clipping plane distance.
//
// Parameters:
//   - near: near plane distance
//
// Returns:
//   - CameraBuilderOption: a function that sets the near plane
func WithNear(near float64) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.near = near
	}
}

// WithFar sets the far clipping plane distance.
//
// Parameters:
//   - far: far plane distance
//
// Returns:
//   - CameraBuilderOption: functional option to set the far plane
func WithFar(far float64) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.far = far
	}
}

// WithFrustum sets the orthographic frustum planes at zoom 1.
//
// Parameters:
//   - left, right, top, bottom: view-space plane offsets
//
// Returns:
//   - CameraBuilderOption: functional option to set the frustum
func WithFrustum(left, right, top, bottom float64) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.left, c.right, c.top, c.bottom = left, right, top, bottom
	}
}

// WithZoom sets the initial orthographic zoom factor.
//
// Parameters:
//   - zoom: zoom factor (>1 magnifies)
//
// Returns:
//   - CameraBuilderOption: functional option to set the zoom
func WithZoom(zoom float64) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.zoom = zoom
	}
}

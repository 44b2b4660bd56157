package controls

import "github.com/go-gl/mathgl/mgl64"

// ControlsBuilderOption is a functional option for configuring Controls.
type ControlsBuilderOption func(*controlsImpl)

// WithOnChange registers the callback invoked with a snapshot whenever an update moves the
// camera by more than the change threshold.
//
// Parameters:
//   - fn: the change callback
//
// Returns:
//   - ControlsBuilderOption: a function that sets the change callback
func WithOnChange(fn func(ChangeEvent)) ControlsBuilderOption {
	return func(c *controlsImpl) {
		c.onChange = fn
	}
}

// WithInvalidate registers the hook that requests a redraw on demand-rendering hosts. It is
// called after every accepted input event and whenever an update changes the pose.
//
// Parameters:
//   - fn: the invalidate hook
//
// Returns:
//   - ControlsBuilderOption: a function that sets the invalidate hook
func WithInvalidate(fn func()) ControlsBuilderOption {
	return func(c *controlsImpl) {
		c.invalidate = fn
	}
}

// WithTarget sets the initial orbit pivot.
//
// Parameters:
//   - x, y, z: world-space coordinates
//
// Returns:
//   - ControlsBuilderOption: a function that sets the target
func WithTarget(x, y, z float64) ControlsBuilderOption {
	return func(c *controlsImpl) {
		c.target = mgl64.Vec3{x, y, z}
	}
}

// WithViewport sets the initial viewport size in pixels, as HandleLayout would.
//
// Parameters:
//   - width, height: viewport size in pixels
//
// Returns:
//   - ControlsBuilderOption: a function that sets the viewport
func WithViewport(width, height float64) ControlsBuilderOption {
	return func(c *controlsImpl) {
		c.width, c.height = width, height
	}
}

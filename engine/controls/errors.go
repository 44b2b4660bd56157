package controls

import "errors"

var (
	// ErrUnsupportedProjection is returned (or panicked with, from Update) when the camera is
	// neither perspective nor orthographic.
	ErrUnsupportedProjection = errors.New("controls: unsupported camera projection")

	// ErrInvalidConfig wraps every Config.Validate failure.
	ErrInvalidConfig = errors.New("controls: invalid configuration")

	// ErrUnknownPointer is returned by PointerRegistry lookups of an untracked id.
	ErrUnknownPointer = errors.New("controls: unknown pointer")
)

package common

// Mouse button identities for pointer-button platforms.
// These values match GLFW mouse button codes.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#MouseButton
const (
	MouseButtonNone   = -1 // no button (touch contacts, hover)
	MouseButtonLeft   = 0  // primary button (GLFW MouseButton1)
	MouseButtonRight  = 1  // secondary button (GLFW MouseButton2)
	MouseButtonMiddle = 2  // wheel button (GLFW MouseButton3)
)

// Virtual key codes used by the example hosts.
// Printable keys use their ASCII values, matching GLFW.
const (
	KeyR     = 82  // R key (ASCII), resets the orbit to its saved state
	KeyS     = 83  // S key (ASCII), saves the current orbit state
	KeyP     = 80  // P key (ASCII), toggles the profiler
	KeySpace = 32  // Spacebar (ASCII), toggles the controls on/off
	KeyEsc   = 256 // Escape key (GLFW)
)

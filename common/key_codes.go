package common

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeySpace = 32  // Spacebar (ASCII), toggles scatter
	KeyR     = 82  // R key (ASCII), re-centres the orbit camera
	KeyP     = 80  // P key (ASCII), pauses camera auto-rotation
	KeyM     = 77  // M key (ASCII), mutes the chime
	KeyF     = 70  // F key (ASCII), toggles the profiler log
	KeyEsc   = 256 // Escape key (GLFW)
	KeyEnter = 257 // Enter key (GLFW), toggles scatter
)

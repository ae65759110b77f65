package camera

import "math"

// OrbitControllerOption is a functional option for configuring an OrbitController.
type OrbitControllerOption func(*orbitControllerImpl)

// WithTarget sets the orbit target point.
//
// Parameters:
//   - x, y, z: target world position
//
// Returns:
//   - OrbitControllerOption: functional option to set the target
func WithTarget(x, y, z float32) OrbitControllerOption {
	return func(cc *orbitControllerImpl) {
		cc.target = [3]float32{x, y, z}
	}
}

// WithEyePosition derives radius, azimuth and elevation from an eye position relative to the target.
// Apply it after WithTarget.
//
// Parameters:
//   - x, y, z: eye world position
//
// Returns:
//   - OrbitControllerOption: functional option to set the starting eye
func WithEyePosition(x, y, z float32) OrbitControllerOption {
	return func(cc *orbitControllerImpl) {
		dx, dy, dz := float64(x-cc.target[0]), float64(y-cc.target[1]), float64(z-cc.target[2])
		r := math.Sqrt(dx*dx + dy*dy + dz*dz)
		if r < 1e-6 {
			return
		}
		cc.radius = float32(r)
		cc.azimuth = float32(math.Atan2(dx, dz))
		cc.elevation = float32(math.Asin(dy / r))
	}
}

// WithRadiusBounds sets the minimum and maximum orbit distance.
//
// Parameters:
//   - min: minimum zoom distance
//   - max: maximum zoom distance
//
// Returns:
//   - OrbitControllerOption: functional option to set radius bounds
func WithRadiusBounds(min, max float32) OrbitControllerOption {
	return func(cc *orbitControllerImpl) {
		cc.minRadius = min
		cc.maxRadius = max
	}
}

// WithPolarBounds sets the allowed polar angle range, measured from the +Y axis.
//
// Parameters:
//   - min: smallest polar angle in radians (closest to looking straight down)
//   - max: largest polar angle in radians
//
// Returns:
//   - OrbitControllerOption: functional option to set the polar bounds
func WithPolarBounds(min, max float32) OrbitControllerOption {
	return func(cc *orbitControllerImpl) {
		cc.minElevation = math.Pi/2 - max
		cc.maxElevation = math.Pi/2 - min
	}
}

// WithAutoRotate sets the automatic rotation speed. Zero disables it.
//
// Parameters:
//   - speed: auto-rotate speed, one orbit per 60/speed seconds
//
// Returns:
//   - OrbitControllerOption: functional option to set auto-rotation
func WithAutoRotate(speed float32) OrbitControllerOption {
	return func(cc *orbitControllerImpl) {
		cc.autoRotateSpeed = speed
		cc.autoRotate = speed != 0
	}
}

// WithMouseSensitivity sets the drag-to-rotation scale.
//
// Parameters:
//   - sensitivity: radians per pixel of drag
//
// Returns:
//   - OrbitControllerOption: functional option to set mouse sensitivity
func WithMouseSensitivity(sensitivity float32) OrbitControllerOption {
	return func(cc *orbitControllerImpl) {
		cc.mouseSensitivity = sensitivity
	}
}

// WithZoomSpeed sets the distance moved per scroll unit.
//
// Parameters:
//   - speed: world units per scroll unit
//
// Returns:
//   - OrbitControllerOption: functional option to set zoom speed
func WithZoomSpeed(speed float32) OrbitControllerOption {
	return func(cc *orbitControllerImpl) {
		cc.zoomSpeed = speed
	}
}

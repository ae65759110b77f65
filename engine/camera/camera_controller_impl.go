package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-tree/common"
)

type orbitControllerImpl struct {
	mu *sync.Mutex

	position [3]float32
	target   [3]float32

	radius    float32
	azimuth   float32 // around +Y, 0 looks down -Z from +Z
	elevation float32 // above the horizontal plane

	minRadius    float32
	maxRadius    float32
	minElevation float32
	maxElevation float32

	mouseSensitivity float32
	zoomSpeed        float32

	// radians per second scale, see AutoRotateRate
	autoRotateSpeed float32
	autoRotate      bool

	// spherical coordinates restored by Reset
	home [3]float32
}

// OrbitController places a camera on a sphere around a target. Drags and scrolls move it
// directly; Update advances the automatic rotation around the vertical axis.
type OrbitController interface {
	// Position returns the world-space eye position.
	//
	// Returns:
	//   - [3]float32: the eye position
	Position() [3]float32

	// Target returns the point the camera looks at.
	//
	// Returns:
	//   - [3]float32: the look-at target
	Target() [3]float32

	// Radius returns the distance from the target.
	//
	// Returns:
	//   - float32: the orbit radius
	Radius() float32

	// Azimuth returns the horizontal orbit angle in radians.
	//
	// Returns:
	//   - float32: the azimuth
	Azimuth() float32

	// Elevation returns the vertical orbit angle above the horizon in radians.
	//
	// Returns:
	//   - float32: the elevation
	Elevation() float32

	// Drag orbits by a pointer delta in pixels. Elevation stays within its bounds.
	//
	// Parameters:
	//   - dx: horizontal pointer delta
	//   - dy: vertical pointer delta
	Drag(dx, dy float32)

	// Zoom moves the camera toward (positive) or away from (negative) the target within the radius bounds.
	//
	// Parameters:
	//   - delta: scroll amount
	Zoom(delta float32)

	// Update advances the automatic rotation.
	//
	// Parameters:
	//   - dt: elapsed seconds since the previous call
	Update(dt float32)

	// Reset returns the orbit to its starting radius and angles.
	Reset()

	// AutoRotate reports whether automatic rotation is active.
	//
	// Returns:
	//   - bool: true if rotating
	AutoRotate() bool

	// SetAutoRotate enables or disables automatic rotation.
	//
	// Parameters:
	//   - enabled: whether to rotate
	SetAutoRotate(enabled bool)
}

var _ OrbitController = &orbitControllerImpl{}

// AutoRotateRate converts an auto-rotate speed to radians per second. A speed of 1 completes an
// orbit every 60 seconds.
//
// Parameters:
//   - speed: the configured auto-rotate speed
//
// Returns:
//   - float32: the angular rate in radians per second
func AutoRotateRate(speed float32) float32 {
	return 2 * math.Pi / 60 * speed
}

// NewOrbitController creates an OrbitController.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - OrbitController: the controller
func NewOrbitController(options ...OrbitControllerOption) OrbitController {
	cc := &orbitControllerImpl{
		mu:               &sync.Mutex{},
		radius:           18,
		elevation:        0.11,
		minRadius:        10,
		maxRadius:        30,
		minElevation:     float32(math.Pi/2 - math.Pi/1.8),
		maxElevation:     float32(math.Pi / 4),
		mouseSensitivity: 0.005,
		zoomSpeed:        1.0,
		autoRotateSpeed:  0.5,
		autoRotate:       true,
	}

	for _, option := range options {
		option(cc)
	}

	cc.clamp()
	cc.home = [3]float32{cc.radius, cc.azimuth, cc.elevation}
	cc.updatePosition()
	return cc
}

func (cc *orbitControllerImpl) Position() [3]float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.position
}

func (cc *orbitControllerImpl) Target() [3]float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.target
}

func (cc *orbitControllerImpl) Radius() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.radius
}

func (cc *orbitControllerImpl) Azimuth() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.azimuth
}

func (cc *orbitControllerImpl) Elevation() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.elevation
}

func (cc *orbitControllerImpl) Drag(dx, dy float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.azimuth -= dx * cc.mouseSensitivity
	cc.elevation += dy * cc.mouseSensitivity
	cc.clamp()
	cc.updatePosition()
}

func (cc *orbitControllerImpl) Zoom(delta float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.radius -= delta * cc.zoomSpeed
	cc.clamp()
	cc.updatePosition()
}

func (cc *orbitControllerImpl) Update(dt float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	if !cc.autoRotate || dt <= 0 {
		return
	}
	cc.azimuth += AutoRotateRate(cc.autoRotateSpeed) * dt
	if cc.azimuth > 2*math.Pi {
		cc.azimuth -= 2 * math.Pi
	}
	cc.updatePosition()
}

func (cc *orbitControllerImpl) Reset() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.radius, cc.azimuth, cc.elevation = cc.home[0], cc.home[1], cc.home[2]
	cc.updatePosition()
}

func (cc *orbitControllerImpl) AutoRotate() bool {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.autoRotate
}

func (cc *orbitControllerImpl) SetAutoRotate(enabled bool) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.autoRotate = enabled
}

// clamp keeps radius and elevation inside their bounds. Caller holds the mutex.
func (cc *orbitControllerImpl) clamp() {
	cc.radius = min(max(cc.radius, cc.minRadius), cc.maxRadius)
	cc.elevation = min(max(cc.elevation, cc.minElevation), cc.maxElevation)
}

// updatePosition recomputes the eye from the spherical coordinates. Caller holds the mutex.
func (cc *orbitControllerImpl) updatePosition() {
	cosElev := common.Cos32(cc.elevation)
	sinElev := common.Sin32(cc.elevation)
	cosAzim := common.Cos32(cc.azimuth)
	sinAzim := common.Sin32(cc.azimuth)

	cc.position[0] = cc.target[0] + cc.radius*cosElev*sinAzim
	cc.position[1] = cc.target[1] + cc.radius*sinElev
	cc.position[2] = cc.target[2] + cc.radius*cosElev*cosAzim
}

package terminal

import (
	"math"

	"github.com/Carmen-Shannon/oxy-tree/common"
)

// cellAspect is the height of a terminal cell relative to its width.
const cellAspect = 2

// projector is the implementation of the Projector interface.
type projector struct {
	width, height int

	target    [3]float32
	radius    float32
	azimuth   float32
	elevation float32
	fov       float32
	near, far float32

	eye      [3]float32
	viewProj [16]float32
}

// Projector maps world positions to character cells through an orbiting perspective camera.
// It is not safe for concurrent use.
type Projector interface {
	// Resize sets the grid size in cells.
	//
	// Parameters:
	//   - width: columns
	//   - height: rows
	Resize(width, height int)

	// Size returns the grid size in cells.
	Size() (width, height int)

	// Orbit rotates the eye around the target.
	//
	// Parameters:
	//   - deltaAzimuth: radians around the vertical axis
	//   - deltaElevation: radians toward the pole, clamped short of it
	Orbit(deltaAzimuth, deltaElevation float32)

	// Zoom scales the eye distance. Factors above one move away.
	Zoom(factor float32)

	// Eye returns the current eye position.
	Eye() [3]float32

	// Project maps a world position to a cell.
	//
	// Parameters:
	//   - p: the world position
	//
	// Returns:
	//   - x, y: the cell column and row
	//   - depth: view depth in [0, 1], smaller is nearer
	//   - ok: false when p is behind the eye or outside the grid
	Project(p [3]float32) (x, y int, depth float32, ok bool)
}

var _ Projector = &projector{}

// NewProjector creates a Projector looking at target from eye.
//
// Parameters:
//   - width, height: the grid size in cells
//   - eye: the starting eye position
//   - target: the point the eye orbits
//   - fovDegrees: the vertical field of view
//
// Returns:
//   - Projector: the projector
func NewProjector(width, height int, eye, target [3]float32, fovDegrees float32) Projector {
	d := common.Sub3(eye, target)
	radius := max(common.Length3(d), 0.1)
	p := &projector{
		target:    target,
		radius:    radius,
		azimuth:   float32(math.Atan2(float64(d[0]), float64(d[2]))),
		elevation: float32(math.Asin(float64(min(max(d[1]/radius, -1), 1)))),
		fov:       fovDegrees * math.Pi / 180,
		near:      0.1,
		far:       200,
	}
	p.Resize(width, height)
	return p
}

func (p *projector) Resize(width, height int) {
	p.width, p.height = max(width, 1), max(height, 1)
	p.rebuild()
}

func (p *projector) Size() (width, height int) {
	return p.width, p.height
}

func (p *projector) Orbit(deltaAzimuth, deltaElevation float32) {
	const limit = 1.5
	p.azimuth += deltaAzimuth
	p.elevation = min(max(p.elevation+deltaElevation, -limit), limit)
	p.rebuild()
}

func (p *projector) Zoom(factor float32) {
	if factor > 0 {
		p.radius = min(max(p.radius*factor, 1), p.far/2)
		p.rebuild()
	}
}

func (p *projector) Eye() [3]float32 {
	return p.eye
}

// rebuild recomputes the view-projection matrix from the orbit parameters.
func (p *projector) rebuild() {
	ce := common.Cos32(p.elevation)
	eye := [3]float32{
		p.target[0] + p.radius*ce*common.Sin32(p.azimuth),
		p.target[1] + p.radius*common.Sin32(p.elevation),
		p.target[2] + p.radius*ce*common.Cos32(p.azimuth),
	}

	p.eye = eye

	var view, proj [16]float32
	common.LookAt(view[:], eye[0], eye[1], eye[2], p.target[0], p.target[1], p.target[2], 0, 1, 0)
	aspect := float32(p.width) / (float32(p.height) * cellAspect)
	common.Perspective(proj[:], p.fov, aspect, p.near, p.far)
	common.Mul4(p.viewProj[:], proj[:], view[:])
}

func (p *projector) Project(v [3]float32) (x, y int, depth float32, ok bool) {
	c := common.MulPoint4(p.viewProj[:], v)
	cx, cy, cz, cw := c[0], c[1], c[2], c[3]
	if cw <= p.near {
		return 0, 0, 0, false
	}

	nx, ny, nz := cx/cw, cy/cw, cz/cw
	fx := (nx + 1) / 2 * float32(p.width)
	fy := (1 - ny) / 2 * float32(p.height)
	if fx < 0 || fy < 0 {
		return 0, 0, 0, false
	}
	x, y = int(fx), int(fy)
	if x >= p.width || y >= p.height {
		return 0, 0, 0, false
	}
	return x, y, nz, true
}

package common

import (
	"math"
	"unsafe"
)

// Identity overwrites m with the 4x4 identity. Matrices in this package are flat, column-major float32 slices.
func Identity(m []float32) {
	clear(m)
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
}

// SliceToBytes reinterprets a slice as raw bytes for a GPU buffer write.
// The result aliases data; it must not outlive or be mutated independently of it.
//
// Parameters:
//   - data: the instance, uniform, or vertex slice to upload
//
// Returns:
//   - []byte: a view over the same memory, nil for an empty slice
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	n := int(unsafe.Sizeof(zero)) * len(data)
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), n)
}

// Mul4 writes a*b into out. out may alias a or b.
func Mul4(out, a, b []float32) {
	var r [16]float32
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var s float32
			for k := 0; k < 4; k++ {
				s += a[k*4+row] * b[col*4+k]
			}
			r[col*4+row] = s
		}
	}
	copy(out, r[:])
}

// MulPoint4 applies m to the point p (w = 1) and returns the homogeneous result.
func MulPoint4(m []float32, p [3]float32) [4]float32 {
	return [4]float32{
		m[0]*p[0] + m[4]*p[1] + m[8]*p[2] + m[12],
		m[1]*p[0] + m[5]*p[1] + m[9]*p[2] + m[13],
		m[2]*p[0] + m[6]*p[1] + m[10]*p[2] + m[14],
		m[3]*p[0] + m[7]*p[1] + m[11]*p[2] + m[15],
	}
}

// TransformPoint applies the affine part of m to p.
//
// Parameters:
//   - m: a model matrix as built by BuildModelMatrix
//   - p: the local-space point
//
// Returns:
//   - [3]float32: the point in the matrix's parent space
func TransformPoint(m []float32, p [3]float32) [3]float32 {
	h := MulPoint4(m, p)
	return [3]float32{h[0], h[1], h[2]}
}

// Perspective fills out with a right-handed projection mapping depth into WebGPU's [0, 1] clip range.
//
// Parameters:
//   - out: destination, 16 elements
//   - fovY: vertical field of view in radians
//   - aspect: width over height
//   - near, far: clip distances, 0 < near < far
func Perspective(out []float32, fovY, aspect, near, far float32) {
	f := 1 / float32(math.Tan(float64(fovY)/2))
	Identity(out)
	out[0] = f / aspect
	out[5] = f
	out[10] = far / (near - far)
	out[11] = -1
	out[14] = near * far / (near - far)
	out[15] = 0
}

// BuildModelMatrix composes translation, Euler rotation and scale into out.
// Rotation is applied as Ry * Rx * Rz, so yaw is outermost.
func BuildModelMatrix(out []float32, posX, posY, posZ, rotX, rotY, rotZ, scaleX, scaleY, scaleZ float32) {
	sx, cx := math.Sincos(float64(rotX))
	sy, cy := math.Sincos(float64(rotY))
	sz, cz := math.Sincos(float64(rotZ))
	c1, s1 := float32(cx), float32(sx)
	c2, s2 := float32(cy), float32(sy)
	c3, s3 := float32(cz), float32(sz)

	// basis X
	out[0] = (c2*c3 + s2*s1*s3) * scaleX
	out[1] = c1 * s3 * scaleX
	out[2] = (c2*s1*s3 - s2*c3) * scaleX
	out[3] = 0
	// basis Y
	out[4] = (s2*s1*c3 - c2*s3) * scaleY
	out[5] = c1 * c3 * scaleY
	out[6] = (s2*s3 + c2*s1*c3) * scaleY
	out[7] = 0
	// basis Z
	out[8] = s2 * c1 * scaleZ
	out[9] = -s1 * scaleZ
	out[10] = c2 * c1 * scaleZ
	out[11] = 0

	out[12], out[13], out[14], out[15] = posX, posY, posZ, 1
}

// LookAt fills out with a view matrix for a camera at eye facing center.
//
// Parameters:
//   - out: destination, 16 elements
//   - eyeX, eyeY, eyeZ: camera position
//   - centerX, centerY, centerZ: the point looked at
//   - upX, upY, upZ: world up, usually +Y
func LookAt(out []float32, eyeX, eyeY, eyeZ, centerX, centerY, centerZ, upX, upY, upZ float32) {
	eye := [3]float32{eyeX, eyeY, eyeZ}
	back := Normalize3(Sub3(eye, [3]float32{centerX, centerY, centerZ}))
	right := Normalize3(Cross3([3]float32{upX, upY, upZ}, back))
	up := Cross3(back, right)

	out[0], out[4], out[8], out[12] = right[0], right[1], right[2], -Dot3(right, eye)
	out[1], out[5], out[9], out[13] = up[0], up[1], up[2], -Dot3(up, eye)
	out[2], out[6], out[10], out[14] = back[0], back[1], back[2], -Dot3(back, eye)
	out[3], out[7], out[11], out[15] = 0, 0, 0, 1
}

package common

// Transform is a decomposed world transform: translation, Euler rotation in
// radians (applied Y * X * Z, see BuildModelMatrix) and per-axis scale.
type Transform struct {
	Position [3]float32
	Rotation [3]float32
	Scale    [3]float32
}

// Matrix writes the column-major model matrix of t into out.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
func (t *Transform) Matrix(out []float32) {
	BuildModelMatrix(out,
		t.Position[0], t.Position[1], t.Position[2],
		t.Rotation[0], t.Rotation[1], t.Rotation[2],
		t.Scale[0], t.Scale[1], t.Scale[2],
	)
}

// Uniform returns a vector with every component set to s.
func Uniform(s float32) [3]float32 {
	return [3]float32{s, s, s}
}

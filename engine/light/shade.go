package light

import "github.com/Carmen-Shannon/oxy-tree/common"

// Diffuse evaluates the ambient and Lambert terms of the lit pass on the CPU. It follows the
// same attenuation rules as the WGSL shader, including the MaxGPULights cap, so CPU frontends
// light surfaces the way the GPU does.
//
// Parameters:
//   - lights: the scene lights, disabled ones are skipped
//   - ambient: the ambient color
//   - p: the surface point in world space
//   - n: the unit surface normal
//
// Returns:
//   - common.RGB: the light reaching p, to be multiplied with the surface color
func Diffuse(lights []Light, ambient [3]float32, p, n [3]float32) common.RGB {
	c := common.RGB(ambient)
	count := 0
	for _, l := range lights {
		if !l.Enabled() || count == MaxGPULights {
			continue
		}
		count++

		dir := common.Scale3(l.Direction(), -1)
		atten := float32(1)
		if l.Type() != LightTypeDirectional {
			d := common.Sub3(l.Position(), p)
			dist := common.Length3(d)
			dir = common.Scale3(d, 1/max(dist, 1e-4))
			if r := l.Range(); r > 0 {
				atten = common.Clamp01(1 - dist/r)
			}
			if l.Type() == LightTypeSpot {
				inner, outer := l.Cone()
				atten *= smoothstep(outer, inner, -common.Dot3(dir, l.Direction()))
			}
		}

		k := max(common.Dot3(n, dir), 0) * l.Intensity() * atten
		col := l.Color()
		for i := range c {
			c[i] += col[i] * k
		}
	}
	return c
}

func smoothstep(edge0, edge1, x float32) float32 {
	if edge0 == edge1 {
		if x < edge0 {
			return 0
		}
		return 1
	}
	t := common.Clamp01((x - edge0) / (edge1 - edge0))
	return t * t * (3 - 2*t)
}

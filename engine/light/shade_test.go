package light

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-tree/common"
)

func closeRGB(a, b common.RGB) bool {
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) > 1e-4 {
			return false
		}
	}
	return true
}

func TestDiffuse(t *testing.T) {
	ambient := [3]float32{0.2, 0.2, 0.2}
	up := [3]float32{0, 1, 0}
	sun := func(opts ...LightBuilderOption) Light {
		return NewLight(LightTypeDirectional, append([]LightBuilderOption{WithPosition(0, 10, 0), WithTarget(0, 0, 0)}, opts...)...)
	}

	tests := []struct {
		name   string
		lights []Light
		p, n   [3]float32
		want   common.RGB
	}{
		{"no lights", nil, [3]float32{}, up, common.RGB{0.2, 0.2, 0.2}},
		{"overhead sun", []Light{sun()}, [3]float32{}, up, common.RGB{1.2, 1.2, 1.2}},
		{"facing away", []Light{sun()}, [3]float32{}, [3]float32{0, -1, 0}, common.RGB{0.2, 0.2, 0.2}},
		{"disabled", []Light{sun(WithEnabled(false))}, [3]float32{}, up, common.RGB{0.2, 0.2, 0.2}},
		{"tinted", []Light{sun(WithColor(common.RGB{1, 0, 0}), WithIntensity(0.5))}, [3]float32{}, up, common.RGB{0.7, 0.2, 0.2}},
		{
			"point at half range",
			[]Light{NewLight(LightTypePoint, WithPosition(0, 5, 0), WithRange(10))},
			[3]float32{}, up, common.RGB{0.7, 0.7, 0.7},
		},
		{
			"inside spot cone",
			[]Light{NewLight(LightTypeSpot, WithPosition(0, 10, 0), WithTarget(0, 0, 0), WithSpotCone(10, 20))},
			[3]float32{}, up, common.RGB{1.2, 1.2, 1.2},
		},
		{
			"outside spot cone",
			[]Light{NewLight(LightTypeSpot, WithPosition(0, 10, 0), WithTarget(0, 0, 0), WithSpotCone(10, 20))},
			[3]float32{10, 0, 0}, up, common.RGB{0.2, 0.2, 0.2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Diffuse(tt.lights, ambient, tt.p, tt.n); !closeRGB(got, tt.want) {
				t.Errorf("Diffuse = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDiffuseCapsLights(t *testing.T) {
	lights := make([]Light, MaxGPULights+4)
	for i := range lights {
		lights[i] = NewLight(LightTypeDirectional, WithIntensity(0.1))
	}
	got := Diffuse(lights, [3]float32{}, [3]float32{}, [3]float32{0, 1, 0})
	want := float32(MaxGPULights) * 0.1
	if math.Abs(float64(got[0]-want)) > 1e-4 {
		t.Errorf("Diffuse over %d lights = %v, want %v", len(lights), got[0], want)
	}
}

func TestDefaults(t *testing.T) {
	lights := Defaults()
	if len(lights) != 3 {
		t.Fatalf("got %d default lights, want 3", len(lights))
	}
	if lights[0].Type() != LightTypeSpot {
		t.Errorf("first default light is %v, want the key spot", lights[0].Type())
	}
	for i, l := range lights {
		if !l.Enabled() {
			t.Errorf("default light %d is disabled", i)
		}
	}
	if Defaults()[0] == lights[0] {
		t.Error("Defaults shares lights between calls")
	}
}

package light

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-tree/common"
)

func f32At(buf []byte, off int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
}

func TestGPULightSize(t *testing.T) {
	if got := (&GPULight{}).Size(); got != 64 {
		t.Errorf("GPULight size = %d, want 64", got)
	}
	if got := (&GPULightHeader{}).Size(); got != 16 {
		t.Errorf("GPULightHeader size = %d, want 16", got)
	}
}

func TestWithTarget(t *testing.T) {
	l := NewLight(LightTypeSpot, WithPosition(0, 10, 0), WithTarget(0, 0, 0))
	if d := l.Direction(); d != [3]float32{0, -1, 0} {
		t.Errorf("direction = %v, want (0,-1,0)", d)
	}
}

func TestSpotConeOrder(t *testing.T) {
	l := NewLight(LightTypeSpot, WithSpotCone(40, 10)).(*lightImpl)
	if l.innerCone < l.outerCone {
		t.Errorf("inner cos %v should be >= outer cos %v", l.innerCone, l.outerCone)
	}
}

func TestMarshalLightBuffer(t *testing.T) {
	gold := common.RGB{1, 0.84, 0}
	lights := []Light{
		NewLight(LightTypePoint, WithPosition(0, -5, 5), WithColor(gold), WithIntensity(0.5)),
		NewLight(LightTypePoint, WithEnabled(false)),
		NewLight(LightTypeSpot, WithPosition(10, 20, 10)),
	}
	buf := MarshalLightBuffer(lights, [3]float32{0.2, 0.2, 0.2})
	if len(buf) != LightBufferSize {
		t.Fatalf("buffer = %d bytes, want %d", len(buf), LightBufferSize)
	}
	if got := binary.LittleEndian.Uint32(buf[12:]); got != 2 {
		t.Errorf("light count = %d, want 2", got)
	}
	if f32At(buf, 0) != 0.2 {
		t.Errorf("ambient r = %v", f32At(buf, 0))
	}
	if f32At(buf, 16+4) != -5 || f32At(buf, 16+28) != 0.5 {
		t.Error("first light packed incorrectly")
	}
	if binary.LittleEndian.Uint32(buf[16+64+12:]) != uint32(LightTypeSpot) {
		t.Error("disabled light should be skipped")
	}
}

func TestMarshalLightBufferCap(t *testing.T) {
	var lights []Light
	for range MaxGPULights + 3 {
		lights = append(lights, NewLight(LightTypePoint))
	}
	buf := MarshalLightBuffer(lights, [3]float32{})
	if got := binary.LittleEndian.Uint32(buf[12:]); got != MaxGPULights {
		t.Errorf("light count = %d, want %d", got, MaxGPULights)
	}
}

func TestRangeClamped(t *testing.T) {
	if r := NewLight(LightTypePoint, WithRange(-3)).Range(); r != 0 {
		t.Errorf("range = %v, want 0", r)
	}
	if r := NewLight(LightTypePoint, WithRange(25)).Range(); r != 25 {
		t.Errorf("range = %v, want 25", r)
	}
}

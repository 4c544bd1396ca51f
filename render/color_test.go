package render

import "testing"

func TestARGBPacking(t *testing.T) {
	c := RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0x78}
	if c.ARGB() != 0x78123456 {
		t.Errorf("ARGB() = %#08x, want 0x78123456", c.ARGB())
	}
	if FromARGB(c.ARGB()) != c {
		t.Errorf("FromARGB round trip failed: %v", FromARGB(c.ARGB()))
	}
}

func TestBlend(t *testing.T) {
	dst := NewRGB(0, 0, 0)
	tests := []struct {
		name string
		src  RGBA
		want RGBA
	}{
		{"transparent source leaves dst", RGBA{255, 255, 255, 0}, dst},
		{"opaque source replaces", RGBA{255, 0, 0, 255}, RGBA{255, 0, 0, 255}},
		{"half alpha mixes", RGBA{255, 255, 255, 128}, RGBA{128, 128, 128, 255}},
	}
	for _, tt := range tests {
		got := dst.Blend(tt.src)
		if got != tt.want {
			t.Errorf("%s: Blend = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestAddSaturates(t *testing.T) {
	a := NewRGB(200, 10, 0)
	b := NewRGB(100, 20, 0)
	got := a.Add(b)
	if got.R != 255 {
		t.Errorf("Expected red channel to saturate at 255, got %d", got.R)
	}
	if got.G != 30 {
		t.Errorf("Expected green channel 30, got %d", got.G)
	}
}

func TestMax(t *testing.T) {
	a := RGBA{10, 200, 30, 255}
	b := RGBA{20, 100, 30, 255}
	want := RGBA{20, 200, 30, 255}
	if got := a.Max(b); got != want {
		t.Errorf("Max = %v, want %v", got, want)
	}
}

func TestRamp(t *testing.T) {
	ramp := Ramp(RGBABlack, RGBAWhite, 5)
	if len(ramp) != 5 {
		t.Fatalf("Expected 5 colors, got %d", len(ramp))
	}
	if r0 := ramp[0]; r0.R > 1 || r0.G > 1 || r0.B > 1 {
		t.Errorf("Expected ramp to start near black, got %v", r0)
	}
	if r4 := ramp[4]; r4.R < 254 || r4.G < 254 || r4.B < 254 {
		t.Errorf("Expected ramp to end near white, got %v", r4)
	}
	if Ramp(RGBABlack, RGBAWhite, 0) != nil {
		t.Error("Expected nil ramp for n=0")
	}
}

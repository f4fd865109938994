package colorspace

import (
	"math"
	"testing"
)

func floatEqual(a, b, tolerance float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff <= tolerance
}

func TestRGBToHSLGrey(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float64
	}{
		{"black", 0, 0, 0},
		{"white", 255, 255, 255},
		{"mid grey", 128, 128, 128},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, _ := RGBToHSL(tt.r, tt.g, tt.b)
			if h != 0 || s != 0 {
				t.Errorf("RGBToHSL(%v,%v,%v) = h=%v s=%v, want h=0 s=0", tt.r, tt.g, tt.b, h, s)
			}
		})
	}
}

func TestRGBHSLRoundTrip(t *testing.T) {
	samples := [][3]float64{
		{255, 0, 0}, {0, 255, 0}, {0, 0, 255},
		{255, 255, 0}, {0, 255, 255}, {255, 0, 255},
		{12, 200, 90}, {240, 10, 10},
	}
	for _, c := range samples {
		h, s, l := RGBToHSL(c[0], c[1], c[2])
		r, g, b := HSLToRGB(h, s, l)
		if !floatEqual(r, c[0], 0.01) || !floatEqual(g, c[1], 0.01) || !floatEqual(b, c[2], 0.01) {
			t.Errorf("round trip (%v,%v,%v) -> hsl(%v,%v,%v) -> (%v,%v,%v)",
				c[0], c[1], c[2], h, s, l, r, g, b)
		}
	}
}

func TestHueWeightWrap(t *testing.T) {
	w := HueWeight(0, 0, 45)
	if !floatEqual(w, 1, 1e-9) {
		t.Errorf("HueWeight(0,0,45) = %v, want 1", w)
	}
	w = HueWeight(350, 0, 45)
	if w <= 0 {
		t.Errorf("HueWeight(350,0,45) = %v, want > 0 (should wrap)", w)
	}
	w = HueWeight(180, 0, 45)
	if w != 0 {
		t.Errorf("HueWeight(180,0,45) = %v, want 0", w)
	}
}

func TestHueWeightContinuous(t *testing.T) {
	var prev float64 = -1
	for h := 0.0; h < 90; h += 1 {
		w := HueWeight(h, 0, 45)
		if prev >= 0 && math.Abs(w-prev) > 0.1 {
			t.Errorf("discontinuity at h=%v: prev=%v cur=%v", h, prev, w)
		}
		prev = w
	}
}

func TestSoftLight(t *testing.T) {
	if got := SoftLight(0.5, 0.5); !floatEqual(got, 0.5, 1e-9) {
		t.Errorf("SoftLight(0.5, 0.5) = %v, want 0.5 (neutral blend)", got)
	}
	darkened := SoftLight(0.5, 0.2)
	if darkened >= 0.5 {
		t.Errorf("SoftLight with l<0.5 should darken base, got %v", darkened)
	}
	lightened := SoftLight(0.5, 0.8)
	if lightened <= 0.5 {
		t.Errorf("SoftLight with l>0.5 should lighten base, got %v", lightened)
	}
}

func TestSigmoidEndpoints(t *testing.T) {
	for _, k := range []float64{3.5, 4.5, 5.5, 6.5} {
		if got := Sigmoid(0, k, 0.5); !floatEqual(got, 0, 1e-9) {
			t.Errorf("Sigmoid(0, %v, 0.5) = %v, want 0", k, got)
		}
		if got := Sigmoid(1, k, 0.5); !floatEqual(got, 1, 1e-9) {
			t.Errorf("Sigmoid(1, %v, 0.5) = %v, want 1", k, got)
		}
	}
}

func TestContrastFactorIdentity(t *testing.T) {
	if got := ContrastFactor(0); !floatEqual(got, 1, 1e-9) {
		t.Errorf("ContrastFactor(0) = %v, want 1", got)
	}
}

func TestContrastFactorExtreme(t *testing.T) {
	y := ContrastFactor(100)*(0-128) + 128
	if y > 10 {
		t.Errorf("ContrastFactor(100) applied to x=0 should push near 0, got %v", y)
	}
	y = ContrastFactor(100)*(255-128) + 128
	if y < 245 {
		t.Errorf("ContrastFactor(100) applied to x=255 should push near 255, got %v", y)
	}
}

func TestClamp(t *testing.T) {
	if Clamp255(-5) != 0 || Clamp255(300) != 255 || Clamp255(100) != 100 {
		t.Error("Clamp255 out of range")
	}
	if Clamp01(-0.1) != 0 || Clamp01(1.1) != 1 || Clamp01(0.5) != 0.5 {
		t.Error("Clamp01 out of range")
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(0, 10, 0.5); got != 5 {
		t.Errorf("Lerp(0,10,0.5) = %v, want 5", got)
	}
}

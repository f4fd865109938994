package pixelproc

import (
	"testing"

	"github.com/gogpu/filmgrade/internal/noise"
)

func TestSelectiveHSLZeroIsIdentity(t *testing.T) {
	r, g, b := SelectiveHSL(120, 80, 40, HSLAdjust{})
	if r != 120 || g != 80 || b != 40 {
		t.Fatalf("SelectiveHSL with zero adjust = (%v,%v,%v), want (120,80,40)", r, g, b)
	}
}

func TestSelectiveHSLRedBandWrapsAcross360(t *testing.T) {
	// (250,10,50) has hue 350, just below 360; the red band (center 0)
	// must affect it via wrap-aware distance.
	adj := HSLAdjust{Red: HSLBand{S: 100}}
	r, g, b := SelectiveHSL(250, 10, 50, adj)
	if r == 250 && g == 10 && b == 50 {
		t.Fatal("red band had no effect on a near-pure-red pixel")
	}
}

func TestGlobalToneBrightnessOffset(t *testing.T) {
	r, g, b := GlobalTone(100, 100, 100, ToneParams{Brightness: 50})
	if r != 150 || g != 150 || b != 150 {
		t.Fatalf("GlobalTone brightness = (%v,%v,%v), want (150,150,150)", r, g, b)
	}
}

func TestGlobalToneClampsAtWhite(t *testing.T) {
	r, _, _ := GlobalTone(240, 240, 240, ToneParams{Brightness: 100})
	if r != 255 {
		t.Fatalf("GlobalTone clamp = %v, want 255", r)
	}
}

func TestApplyLocalExposureDoubles(t *testing.T) {
	// gain = 2^(100/100) = 2, exactly the mask-locality scenario's "gain 2x".
	r, _, _ := ApplyLocal(50, 50, 50, LocalAdjust{Exposure: 100})
	if r < 95 || r > 105 {
		t.Fatalf("ApplyLocal exposure=+100 on r=50 -> %v, want ~100", r)
	}
}

func TestApplyMasksSkipsZeroWeight(t *testing.T) {
	masks := []MaskSample{{Weight: 0, Local: LocalAdjust{Exposure: 100}}}
	r, g, b := ApplyMasks(10, 20, 30, masks)
	if r != 10 || g != 20 || b != 30 {
		t.Fatalf("ApplyMasks with zero weight = (%v,%v,%v), want unchanged", r, g, b)
	}
}

func TestApplyMasksComposeInOrder(t *testing.T) {
	masks := []MaskSample{
		{Weight: 1, Local: LocalAdjust{Exposure: 100}},
		{Weight: 1, Local: LocalAdjust{}},
	}
	r, _, _ := ApplyMasks(10, 10, 10, masks)
	if r <= 10 {
		t.Fatalf("ApplyMasks first mask should have raised r above 10, got %v", r)
	}
}

func TestVignetteNoOpAtCenter(t *testing.T) {
	r, g, b := Vignette(100, 100, 100, 0, 500, 50)
	if r != 100 || g != 100 || b != 100 {
		t.Fatalf("Vignette at center = (%v,%v,%v), want (100,100,100)", r, g, b)
	}
}

func TestVignetteDarkensAtEdge(t *testing.T) {
	r, _, _ := Vignette(200, 200, 200, 500, 500, 100)
	if r >= 200 {
		t.Fatalf("Vignette at full radius = %v, want < 200", r)
	}
}

func TestDitherStaysInRange(t *testing.T) {
	rng := noise.New(1)
	for i := 0; i < 1000; i++ {
		r, g, b := Dither(0, 128, 255, rng)
		if r < 0 || r > 255 || g < 0 || g > 255 || b < 0 || b > 255 {
			t.Fatalf("Dither produced out-of-range channel: (%v,%v,%v)", r, g, b)
		}
	}
}

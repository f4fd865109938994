// Package pixelproc implements the per-pixel grading stages that run
// between white-balance/film-emulation (already baked into the LUT) and
// the texture pass: selective HSL, global tone, trilinear LUT sampling,
// intensity mix, local mask compositing, vignette, and dither. Each stage
// is a pure function over float64 channel triples so the hot loop in the
// root package's render path stays allocation-free.
package pixelproc

import (
	"math"

	"github.com/gogpu/filmgrade/internal/colorspace"
	"github.com/gogpu/filmgrade/internal/noise"
)

// HSLBand is one hue-band entry of a selective-HSL adjustment.
type HSLBand struct {
	H, S, L float64
}

// HSLAdjust is the six-band selective HSL adjustment, centered on red,
// yellow, green, cyan, blue, and magenta.
type HSLAdjust struct {
	Red, Yellow, Green, Cyan, Blue, Magenta HSLBand
}

// IsZero reports whether every band is a no-op, letting the caller skip
// Stage A entirely.
func (a HSLAdjust) IsZero() bool {
	return a.Red == (HSLBand{}) && a.Yellow == (HSLBand{}) && a.Green == (HSLBand{}) &&
		a.Cyan == (HSLBand{}) && a.Blue == (HSLBand{}) && a.Magenta == (HSLBand{})
}

var hueCenters = [6]float64{0, 60, 120, 180, 240, 300}

// bands returns the six bands in hue-center order, matching hueCenters.
func (a HSLAdjust) bands() [6]HSLBand {
	return [6]HSLBand{a.Red, a.Yellow, a.Green, a.Cyan, a.Blue, a.Magenta}
}

const hslEpsilon = 1e-9

// SelectiveHSL is Stage A: accumulate weighted hue/saturation/lightness
// deltas from the six hue-band centers using hue-distance falloff, then
// apply them once in HSL space.
func SelectiveHSL(r, g, b float64, adj HSLAdjust) (float64, float64, float64) {
	if adj.IsZero() {
		return r, g, b
	}

	h, s, l := colorspace.RGBToHSL(r, g, b)
	bandSet := adj.bands()

	var dH, dS, dL float64
	for i, band := range bandSet {
		w := colorspace.HueWeight(h, hueCenters[i], 45)
		if w == 0 {
			continue
		}
		dH += band.H * w
		dS += (band.S / 100) * w
		dL += (band.L / 100) * w
	}

	if absF(dH) <= hslEpsilon && absF(dS) <= hslEpsilon && absF(dL) <= hslEpsilon {
		return r, g, b
	}

	h = modPositive(h+dH, 360)
	s = colorspace.Clamp01(s * (1 + dS))
	if dL > 0 {
		l += (1 - l) * dL * 0.5
	} else {
		l += l * dL * 0.5
	}
	l = colorspace.Clamp01(l)

	return colorspace.HSLToRGB(h, s, l)
}

// ToneParams is Stage B's five global-tone sliders.
type ToneParams struct {
	Brightness, Contrast, Saturation, Shadows, Highlights float64
}

// GlobalTone is Stage B: brightness offset, contrast factor around 128,
// global saturation around luma, then additive shadow lift / highlight
// drop, each clamped to [0,255].
func GlobalTone(r, g, b float64, p ToneParams) (float64, float64, float64) {
	r += p.Brightness
	g += p.Brightness
	b += p.Brightness
	r, g, b = colorspace.Clamp255(r), colorspace.Clamp255(g), colorspace.Clamp255(b)

	factor := colorspace.ContrastFactor(p.Contrast)
	r = colorspace.Clamp255(factor*(r-128) + 128)
	g = colorspace.Clamp255(factor*(g-128) + 128)
	b = colorspace.Clamp255(factor*(b-128) + 128)

	y := colorspace.Luma601(r, g, b)
	satFactor := 1 + p.Saturation/100
	r = colorspace.Clamp255(y + (r-y)*satFactor)
	g = colorspace.Clamp255(y + (g-y)*satFactor)
	b = colorspace.Clamp255(y + (b-y)*satFactor)

	y = colorspace.Luma601(r, g, b)
	lift := maxF(0, 1-y/255) * (p.Shadows * 0.5)
	drop := maxF(0, (y-128)/128) * (p.Highlights * 0.5)
	r = colorspace.Clamp255(r + lift + drop)
	g = colorspace.Clamp255(g + lift + drop)
	b = colorspace.Clamp255(b + lift + drop)

	return r, g, b
}

// LocalAdjust is a MaskLayer's LocalAdjustments, minus sharpness (which has
// no defined role in Stage E; see the root package's mask documentation).
type LocalAdjust struct {
	Exposure, Contrast, Saturation, Temperature, Tint float64
}

// ApplyLocal evaluates a mask's local adjustment at one pixel: exposure as
// an exponential gain, contrast via the shared global-tone factor formula,
// saturation around luma, and temperature/tint as direct channel gains.
func ApplyLocal(r, g, b float64, adj LocalAdjust) (float64, float64, float64) {
	// Exposure gain: a full +100 stop doubles the channel value (2^1),
	// per the worked mask-locality scenario; exp/100 is the divisor that
	// reproduces it exactly.
	gain := math.Exp2(adj.Exposure / 100)
	r *= gain
	g *= gain
	b *= gain

	factor := colorspace.ContrastFactor(adj.Contrast)
	r = factor*(r-128) + 128
	g = factor*(g-128) + 128
	b = factor*(b-128) + 128

	y := colorspace.Luma601(r, g, b)
	satFactor := 1 + adj.Saturation/100
	r = y + (r-y)*satFactor
	g = y + (g-y)*satFactor
	b = y + (b-y)*satFactor

	t := adj.Temperature / 100
	tn := adj.Tint / 100
	r *= 1 + t
	b *= 1 - t
	g *= 1 - tn

	return colorspace.Clamp255(r), colorspace.Clamp255(g), colorspace.Clamp255(b)
}

// MaskSample is one visible mask's per-pixel contribution: the alpha
// fraction (already divided by 255) times the mask's opacity, and the
// local adjustment to blend toward at that weight.
type MaskSample struct {
	Weight float64
	Local  LocalAdjust
}

// ApplyMasks is Stage E: composes visible masks in list order, each
// blending the channel toward its locally-adjusted value by its weight.
// A mask with zero weight (zero alpha, or opacity 0) leaves the pixel
// untouched, preserving the "mask alpha is authoritative" invariant.
func ApplyMasks(r, g, b float64, masks []MaskSample) (float64, float64, float64) {
	for _, m := range masks {
		if m.Weight <= 0 {
			continue
		}
		lr, lg, lb := ApplyLocal(r, g, b, m.Local)
		r = colorspace.Lerp(r, lr, m.Weight)
		g = colorspace.Lerp(g, lg, m.Weight)
		b = colorspace.Lerp(b, lb, m.Weight)
	}
	return r, g, b
}

// Vignette is Stage F: a radial cubic falloff subtracted from every
// channel, strongest at the frame corners.
func Vignette(r, g, b, d, dMax, vignette float64) (float64, float64, float64) {
	if vignette <= 0 || dMax <= 0 {
		return r, g, b
	}
	ratio := d / dMax
	v := ratio * ratio * ratio * (vignette / 100) * 255
	return colorspace.Clamp255(r - v), colorspace.Clamp255(g - v), colorspace.Clamp255(b - v)
}

// Dither is Stage G: adds independent triangular-PDF noise in [-0.5,0.5]
// to each channel before the final clamp, breaking up banding on smooth
// gradients. Each call draws two uniforms per channel from rng, so a render
// loop that calls it once per pixel in a fixed order is deterministic for a
// given seed.
func Dither(r, g, b float64, rng *noise.Mulberry32) (float64, float64, float64) {
	r = colorspace.Clamp255(r + triangular(rng))
	g = colorspace.Clamp255(g + triangular(rng))
	b = colorspace.Clamp255(b + triangular(rng))
	return r, g, b
}

// triangular draws one triangular-PDF sample in [-0.5,0.5] from two
// uniform draws (the standard "sum of two uniforms" construction).
func triangular(rng *noise.Mulberry32) float64 {
	return (rng.Float64() + rng.Float64() - 1) * 0.5
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func modPositive(v, m float64) float64 {
	r := math.Mod(v, m)
	if r < 0 {
		r += m
	}
	return r
}

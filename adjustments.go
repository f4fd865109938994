package grade

import "github.com/go-playground/validator/v10"

var validate = validator.New(validator.WithRequiredStructEnabled())

// Tone holds the global tone-mapping sliders applied in Pixel Processor
// Stage B.
type Tone struct {
	Brightness float64 `validate:"gte=-100,lte=100"`
	Contrast   float64 `validate:"gte=-100,lte=100"`
	Saturation float64 `validate:"gte=-100,lte=100"`
	Highlights float64 `validate:"gte=-100,lte=100"`
	Shadows    float64 `validate:"gte=-100,lte=100"`
}

// Texture holds the texture-pass sliders. Halation is consumed by the host
// canvas, not by the engine.
type Texture struct {
	GrainAmount float64 `validate:"gte=0,lte=100"`
	GrainSize   float64 `validate:"gte=1,lte=5"`
	Sharpening  float64 `validate:"gte=0,lte=100"`
	Vignette    float64 `validate:"gte=0,lte=100"`
	Halation    float64 `validate:"gte=0,lte=100"`
}

// WhiteBalance holds the temperature/tint pair consumed by the LUT
// synthesizer.
type WhiteBalance struct {
	Temp float64 `validate:"gte=-50,lte=50"`
	Tint float64 `validate:"gte=-50,lte=50"`
}

// GradingBand is one of the three split-tone bands (shadows, midtones,
// highlights): a hue and a strength.
type GradingBand struct {
	H float64 `validate:"gte=0,lt=360"`
	S float64 `validate:"gte=0,lte=100"`
}

// Grading is the three-band split-tone color grading record consumed by the
// LUT synthesizer.
type Grading struct {
	Shadows    GradingBand
	Midtones   GradingBand
	Highlights GradingBand
}

// IsZero reports whether every band has zero strength, letting the
// synthesizer skip the grading pass entirely.
func (g Grading) IsZero() bool {
	return g.Shadows.S == 0 && g.Midtones.S == 0 && g.Highlights.S == 0
}

// HSLBand is one of the six selective-HSL color bands: a hue offset and
// saturation/lightness deltas, relative to its fixed hue center.
type HSLBand struct {
	H float64 `validate:"gte=-30,lte=30"`
	S float64 `validate:"gte=-100,lte=100"`
	L float64 `validate:"gte=-100,lte=100"`
}

// HSLAdjust is the six-band selective HSL record consumed by Pixel Processor
// Stage A.
type HSLAdjust struct {
	Red     HSLBand
	Yellow  HSLBand
	Green   HSLBand
	Cyan    HSLBand
	Blue    HSLBand
	Magenta HSLBand
}

// IsZero reports whether every band is fully neutral, letting the pixel
// processor skip Stage A entirely.
func (h HSLAdjust) IsZero() bool {
	zero := HSLBand{}
	return h.Red == zero && h.Yellow == zero && h.Green == zero &&
		h.Cyan == zero && h.Blue == zero && h.Magenta == zero
}

// Adjustments is the immutable snapshot of every user-facing slider passed
// into a single Engine.Render call.
type Adjustments struct {
	Tone      Tone
	Texture   Texture
	WB        WhiteBalance
	Grading   Grading
	HSL       HSLAdjust
	Intensity float64 `validate:"gte=0,lte=1"`
}

// Validate runs struct-tag range checks over every field and returns the
// aggregated validator error, or nil if every field is in range. Render
// never calls this itself — it always clamps and proceeds (see Clamp) —
// Validate exists for hosts that want to catch
// slider-range bugs during development.
func (a Adjustments) Validate() error {
	return validate.Struct(a)
}

// Clamp returns a copy of a with every field clamped into its documented
// range. Engine.Render always clamps before processing a pixel; any field
// that needed clamping is reported via the package logger at
// slog.LevelDebug (see logger.go), never as a returned error.
func (a Adjustments) Clamp() Adjustments {
	c := a
	c.Tone.Brightness = clampLog("Tone.Brightness", a.Tone.Brightness, -100, 100)
	c.Tone.Contrast = clampLog("Tone.Contrast", a.Tone.Contrast, -100, 100)
	c.Tone.Saturation = clampLog("Tone.Saturation", a.Tone.Saturation, -100, 100)
	c.Tone.Highlights = clampLog("Tone.Highlights", a.Tone.Highlights, -100, 100)
	c.Tone.Shadows = clampLog("Tone.Shadows", a.Tone.Shadows, -100, 100)

	c.Texture.GrainAmount = clampLog("Texture.GrainAmount", a.Texture.GrainAmount, 0, 100)
	c.Texture.GrainSize = clampLog("Texture.GrainSize", a.Texture.GrainSize, 1, 5)
	c.Texture.Sharpening = clampLog("Texture.Sharpening", a.Texture.Sharpening, 0, 100)
	c.Texture.Vignette = clampLog("Texture.Vignette", a.Texture.Vignette, 0, 100)
	c.Texture.Halation = clampLog("Texture.Halation", a.Texture.Halation, 0, 100)

	c.WB.Temp = clampLog("WB.Temp", a.WB.Temp, -50, 50)
	c.WB.Tint = clampLog("WB.Tint", a.WB.Tint, -50, 50)

	c.Grading.Shadows = clampBand("Grading.Shadows", a.Grading.Shadows)
	c.Grading.Midtones = clampBand("Grading.Midtones", a.Grading.Midtones)
	c.Grading.Highlights = clampBand("Grading.Highlights", a.Grading.Highlights)

	c.HSL.Red = clampHSLBand("HSL.Red", a.HSL.Red)
	c.HSL.Yellow = clampHSLBand("HSL.Yellow", a.HSL.Yellow)
	c.HSL.Green = clampHSLBand("HSL.Green", a.HSL.Green)
	c.HSL.Cyan = clampHSLBand("HSL.Cyan", a.HSL.Cyan)
	c.HSL.Blue = clampHSLBand("HSL.Blue", a.HSL.Blue)
	c.HSL.Magenta = clampHSLBand("HSL.Magenta", a.HSL.Magenta)

	c.Intensity = clampLog("Intensity", a.Intensity, 0, 1)
	return c
}

// IsIdentity reports whether the adjustments produce no change to the
// source image, letting Engine.Render skip the entire pipeline.
func (a Adjustments) IsIdentity() bool {
	return a.Intensity == 0 &&
		a.Tone == Tone{} &&
		a.Texture.GrainAmount == 0 &&
		a.Texture.Sharpening == 0 &&
		a.Texture.Vignette == 0 &&
		a.Texture.Halation == 0 &&
		a.WB == WhiteBalance{} &&
		a.Grading.IsZero() &&
		a.HSL.IsZero()
}

func clampBand(name string, b GradingBand) GradingBand {
	return GradingBand{
		H: clampLog(name+".H", b.H, 0, 360),
		S: clampLog(name+".S", b.S, 0, 100),
	}
}

func clampHSLBand(name string, b HSLBand) HSLBand {
	return HSLBand{
		H: clampLog(name+".H", b.H, -30, 30),
		S: clampLog(name+".S", b.S, -100, 100),
		L: clampLog(name+".L", b.L, -100, 100),
	}
}

func clampLog(field string, v, lo, hi float64) float64 {
	if v < lo || v > hi {
		clamped := v
		if v < lo {
			clamped = lo
		} else if v > hi {
			clamped = hi
		}
		Logger().Debug("grade: adjustment out of range, clamped",
			"field", field, "value", v, "clamped", clamped)
		return clamped
	}
	return v
}

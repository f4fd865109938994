package grade

import "math"

// LocalAdjustments is the per-mask local grade: six sliders in [-100,100]
// applied only where a mask's alpha is nonzero. Render applies the first
// five; Sharpness is carried but not applied by any stage.
type LocalAdjustments struct {
	Exposure    float64 `validate:"gte=-100,lte=100"`
	Contrast    float64 `validate:"gte=-100,lte=100"`
	Saturation  float64 `validate:"gte=-100,lte=100"`
	Temperature float64 `validate:"gte=-100,lte=100"`
	Tint        float64 `validate:"gte=-100,lte=100"`
	Sharpness   float64 `validate:"gte=-100,lte=100"`
}

// MaskLayer is an alpha-only 8-bit local adjustment layer: created by the
// host on user action, mutated only via brush strokes, and treated as
// read-only by a render.
type MaskLayer struct {
	ID      string
	Visible bool
	Opacity float64
	Width   int
	Height  int
	Alpha   []uint8
	Local   LocalAdjustments
}

// NewMaskLayer allocates a fully transparent mask sized to width x height.
func NewMaskLayer(id string, width, height int) *MaskLayer {
	return &MaskLayer{
		ID:      id,
		Visible: true,
		Opacity: 1,
		Width:   width,
		Height:  height,
		Alpha:   make([]uint8, width*height),
	}
}

// Validate reports a MaskShapeMismatchError if the alpha buffer's length
// does not equal width*height.
func (m *MaskLayer) Validate() error {
	want := m.Width * m.Height
	if len(m.Alpha) != want {
		return &MaskShapeMismatchError{MaskID: m.ID, AlphaLen: len(m.Alpha), Want: want}
	}
	return nil
}

// Brush describes one stroke's paint parameters.
type Brush struct {
	Size     float64 // diameter in pixels; splatted disks use radius Size/2.
	Hardness float64 // 0..1, edge falloff softness (1 = hard disk edge).
	Flow     float64 // 0..1, per-splat accumulation rate.
	Erase    bool    // true selects the destination-out accumulation rule.
}

// RasterizeStroke mutates maskAlpha in place by linearly interpolating
// between (x0,y0) and (x1,y1) and splatting a brush disk at each sampled
// point, with per-splat accumulation: paint strokes raise alpha toward 255,
// erase strokes reduce it toward 0. Mask alpha is authoritative — nothing
// else in the pipeline treats a zero-alpha pixel as touched.
func RasterizeStroke(maskAlpha []uint8, width, height int, brush Brush, x0, y0, x1, y1 float64) {
	if width <= 0 || height <= 0 || len(maskAlpha) != width*height {
		return
	}

	radius := brush.Size / 2
	if radius <= 0 {
		return
	}

	dist := math.Hypot(x1-x0, y1-y0)
	steps := int(math.Ceil(dist/(radius*0.5))) + 1

	for i := 0; i <= steps; i++ {
		t := 0.0
		if steps > 0 {
			t = float64(i) / float64(steps)
		}
		cx := lerpLocal(x0, x1, t)
		cy := lerpLocal(y0, y1, t)
		splatDisk(maskAlpha, width, height, brush, cx, cy, radius)
	}
}

// splatDisk applies one brush daub centered at (cx,cy), visiting only the
// disk's bounding box. A fully hard brush uses the antialiased smoothstep
// edge of sdfFilledCircleCoverage; softer brushes use gaussianFalloff.
func splatDisk(maskAlpha []uint8, width, height int, brush Brush, cx, cy, radius float64) {
	minX := int(math.Floor(cx - radius - 1))
	maxX := int(math.Ceil(cx + radius + 1))
	minY := int(math.Floor(cy - radius - 1))
	maxY := int(math.Ceil(cy + radius + 1))

	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX > width-1 {
		maxX = width - 1
	}
	if maxY > height-1 {
		maxY = height - 1
	}

	hardRadius := radius * clamp01Local(brush.Hardness)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			var coverage float64
			if hardRadius >= radius {
				coverage = sdfFilledCircleCoverage(float64(x)+0.5, float64(y)+0.5, cx, cy, radius)
			} else {
				d := math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy)
				coverage = gaussianFalloff(d, hardRadius, radius)
			}
			if coverage <= 0 {
				continue
			}
			idx := y*width + x
			a := float64(maskAlpha[idx])
			flow := brush.Flow * coverage
			if brush.Erase {
				a = math.Max(0, a-flow*a)
			} else {
				a = math.Min(255, a+flow*(255-a))
			}
			maskAlpha[idx] = uint8(a + 0.5)
		}
	}
}

// gaussianFalloff gives full coverage inside hardRadius and a Gaussian-like
// decay from hardRadius out to radius, 0 beyond.
func gaussianFalloff(d, hardRadius, radius float64) float64 {
	if d <= hardRadius {
		return 1
	}
	if d >= radius {
		return 0
	}
	span := radius - hardRadius
	if span <= 0 {
		return 0
	}
	x := (d - hardRadius) / span
	return math.Exp(-4 * x * x)
}

func clamp01Local(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func lerpLocal(a, b, t float64) float64 {
	return a + (b-a)*t
}

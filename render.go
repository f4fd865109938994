package grade

import (
	"math"
	"sync"

	"github.com/gogpu/filmgrade/internal/noise"
	"github.com/gogpu/filmgrade/internal/pixelproc"
	"github.com/gogpu/filmgrade/internal/texture"
)

// Render evaluates the full pixel-processor and texture-pass pipeline
// (Stages A-H, then smart sharpen + grain) over src and returns a new
// output buffer plus the 256-bin RGB histogram. The histogram is
// accumulated in the per-pixel pass (Stage H), before sharpen and grain,
// so when the texture pass is active it bins the pre-texture values. The
// render takes an immutable snapshot of its inputs and is atomic: src,
// lut, and every mask are read-only throughout.
func (e *Engine) Render(src *ImageBuffer, lut *LUT, adj Adjustments, masks []*MaskLayer) (*ImageBuffer, *Histogram, error) {
	out, hist, err := e.renderBand(src, lut, adj, masks, e.seed, 0, src.Height)
	if err != nil {
		return nil, nil, err
	}
	e.applyTexture(out, adj.Texture, e.seed)
	return out, hist, nil
}

// RenderParallel shards the image into horizontal bands, rendering each
// concurrently, merging histograms by element-wise addition. Each band's
// PRNG is seeded with baseSeed XOR the band index so output stays
// deterministic regardless of how many bands run.
func (e *Engine) RenderParallel(src *ImageBuffer, lut *LUT, adj Adjustments, masks []*MaskLayer, bands int) (*ImageBuffer, *Histogram, error) {
	if err := src.Validate(); err != nil {
		return nil, nil, err
	}
	if bands < 1 {
		bands = 1
	}
	if bands == 1 || src.Height < bands {
		return e.Render(src, lut, adj, masks)
	}

	out := NewImageBuffer(src.Width, src.Height)
	hist := &Histogram{}
	var mu sync.Mutex
	var wg sync.WaitGroup
	var firstErr error

	rowsPerBand := (src.Height + bands - 1) / bands
	for band := 0; band < bands; band++ {
		y0 := band * rowsPerBand
		y1 := minInt(y0+rowsPerBand, src.Height)
		if y0 >= y1 {
			continue
		}
		wg.Add(1)
		go func(band, y0, y1 int) {
			defer wg.Done()
			seed := noise.BandSeed(e.seed, band)
			bandOut, bandHist, err := e.renderBand(src, lut, adj, masks, seed, y0, y1)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			copy(out.Pix[y0*src.Width*4:y1*src.Width*4], bandOut.Pix[y0*src.Width*4:y1*src.Width*4])
			hist.Merge(bandHist)
		}(band, y0, y1)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, nil, firstErr
	}
	e.applyTexture(out, adj.Texture, e.seed)
	return out, hist, nil
}

// applyTexture runs the smart-sharpen + grain pass over the whole merged
// output buffer, after any band sharding has completed: the 4-neighbor
// sharpen convolution and grain block replication both need the full
// frame, not a single band.
func (e *Engine) applyTexture(out *ImageBuffer, tex Texture, seed uint32) {
	params := texture.Params{
		Sharpening:  tex.Sharpening,
		GrainAmount: tex.GrainAmount,
		GrainSize:   tex.GrainSize,
	}
	if params.IsZero() {
		return
	}
	snapshot := out.Clone()
	rng := noise.New(seed)
	texture.Apply(out.Pix, snapshot.Pix, out.Width, out.Height, params, rng)
}

// renderBand runs the full pipeline over rows [y0,y1) of src, writing a
// full-sized output buffer (other rows left zeroed) and a histogram
// covering only the rendered rows.
func (e *Engine) renderBand(src *ImageBuffer, lut *LUT, adj Adjustments, masks []*MaskLayer, seed uint32, y0, y1 int) (*ImageBuffer, *Histogram, error) {
	if err := src.Validate(); err != nil {
		return nil, nil, err
	}
	for _, m := range masks {
		if m == nil {
			continue
		}
		if err := m.Validate(); err != nil {
			return nil, nil, err
		}
	}

	adj = adj.Clamp()
	skipLUT := lut == nil || lut.Identity()
	if adj.IsIdentity() && skipLUT && noVisibleMasks(masks) {
		return identityBand(src, y0, y1)
	}

	out := NewImageBuffer(src.Width, src.Height)
	hist := &Histogram{}
	rng := noise.New(seed)

	hsl := toPixelprocHSL(adj.HSL)
	tone := pixelproc.ToneParams{
		Brightness: adj.Tone.Brightness,
		Contrast:   adj.Tone.Contrast,
		Saturation: adj.Tone.Saturation,
		Shadows:    adj.Tone.Shadows,
		Highlights: adj.Tone.Highlights,
	}

	cx := float64(src.Width) / 2
	cy := float64(src.Height) / 2
	dMax := math.Hypot(cx, cy)

	maskSamples := make([]pixelproc.MaskSample, 0, len(masks))

	for y := y0; y < y1; y++ {
		for x := 0; x < src.Width; x++ {
			r8, g8, b8, a8 := src.At(x, y)
			r, g, b := float64(r8), float64(g8), float64(b8)

			if !hsl.IsZero() {
				r, g, b = pixelproc.SelectiveHSL(r, g, b, hsl)
			}
			r, g, b = pixelproc.GlobalTone(r, g, b, tone)

			if !skipLUT {
				preR, preG, preB := r, g, b
				lr, lg, lb := lut.Sample(r, g, b)
				r = lerpLocal(preR, lr, adj.Intensity)
				g = lerpLocal(preG, lg, adj.Intensity)
				b = lerpLocal(preB, lb, adj.Intensity)
			}

			maskSamples = maskSamples[:0]
			for _, m := range masks {
				if m == nil || !m.Visible || m.Opacity <= 0 {
					continue
				}
				alpha := m.Alpha[y*m.Width+x]
				if alpha == 0 {
					continue
				}
				maskSamples = append(maskSamples, pixelproc.MaskSample{
					Weight: (float64(alpha) / 255) * m.Opacity,
					Local:  toPixelprocLocal(m.Local),
				})
			}
			if len(maskSamples) > 0 {
				r, g, b = pixelproc.ApplyMasks(r, g, b, maskSamples)
			}

			d := math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy)
			r, g, b = pixelproc.Vignette(r, g, b, d, dMax, adj.Texture.Vignette)

			r, g, b = pixelproc.Dither(r, g, b, rng)

			ro := uint8(r + 0.5)
			go8 := uint8(g + 0.5)
			bo := uint8(b + 0.5)
			out.Set(x, y, ro, go8, bo, a8)
			hist.Add(ro, go8, bo)
		}
	}

	return out, hist, nil
}

// noVisibleMasks reports whether every mask is either nil, hidden, or
// fully transparent via zero opacity — i.e. none can contribute a
// nonzero weight to ApplyMasks.
func noVisibleMasks(masks []*MaskLayer) bool {
	for _, m := range masks {
		if m != nil && m.Visible && m.Opacity > 0 {
			return false
		}
	}
	return true
}

// identityBand copies rows [y0,y1) of src straight through, skipping the
// whole per-pixel pipeline: spec.md's zero-check optimization for a fully
// neutral Adjustments value with a nil or identity LUT and no visible
// masks. Dither is
// also skipped here, since triangular noise confined to (-0.5,0.5) always
// rounds back to the same source byte anyway.
func identityBand(src *ImageBuffer, y0, y1 int) (*ImageBuffer, *Histogram, error) {
	out := NewImageBuffer(src.Width, src.Height)
	hist := &Histogram{}
	rowBytes := src.Width * 4
	copy(out.Pix[y0*rowBytes:y1*rowBytes], src.Pix[y0*rowBytes:y1*rowBytes])
	for y := y0; y < y1; y++ {
		for x := 0; x < src.Width; x++ {
			r, g, b, _ := src.At(x, y)
			hist.Add(r, g, b)
		}
	}
	return out, hist, nil
}

func toPixelprocHSL(h HSLAdjust) pixelproc.HSLAdjust {
	band := func(b HSLBand) pixelproc.HSLBand {
		return pixelproc.HSLBand{H: b.H, S: b.S, L: b.L}
	}
	return pixelproc.HSLAdjust{
		Red:     band(h.Red),
		Yellow:  band(h.Yellow),
		Green:   band(h.Green),
		Cyan:    band(h.Cyan),
		Blue:    band(h.Blue),
		Magenta: band(h.Magenta),
	}
}

func toPixelprocLocal(l LocalAdjustments) pixelproc.LocalAdjust {
	return pixelproc.LocalAdjust{
		Exposure:    l.Exposure,
		Contrast:    l.Contrast,
		Saturation:  l.Saturation,
		Temperature: l.Temperature,
		Tint:        l.Tint,
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

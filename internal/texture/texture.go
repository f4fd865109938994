// Package texture implements the final texture pass: a luma-gated
// unsharp-mask sharpen followed by overlay-blended film grain, run once
// after the main per-pixel grading loop over the whole output buffer.
package texture

import (
	"github.com/gogpu/filmgrade/internal/colorspace"
	"github.com/gogpu/filmgrade/internal/noise"
)

// Params holds the texture pass's three sliders.
type Params struct {
	Sharpening  float64 // 0..100
	GrainAmount float64 // 0..100
	GrainSize   float64 // 1..5, block size for coarser grain
}

// IsZero reports whether the texture pass would be a no-op, letting the
// caller skip both the snapshot copy and the pass entirely.
func (p Params) IsZero() bool {
	return p.Sharpening <= 0 && p.GrainAmount <= 0
}

const sharpenNoiseThreshold = 6
const sharpenShadowProtect = 40
const sharpenBoost = 1.5

// Sharpen applies the smart-sharpen stage: dst is written from src (a
// snapshot of the buffer before this pass, required so the 4-neighbor
// average reads unperturbed values), skipping the 1-pixel border. Both
// buffers are straight RGBA: pixels are 4 bytes apart and rows width*4.
func Sharpen(dst, src []uint8, width, height int, sharpening float64) {
	if sharpening <= 0 {
		copy(dst, src)
		return
	}
	copy(dst, src)

	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			i := (y*width + x) * 4
			iUp := (((y - 1) * width) + x) * 4
			iDown := (((y + 1) * width) + x) * 4
			iLeft := (y*width + x - 1) * 4
			iRight := (y*width + x + 1) * 4

			yc := colorspace.Luma601(float64(src[i]), float64(src[i+1]), float64(src[i+2]))
			yAvg := (colorspace.Luma601(float64(src[iUp]), float64(src[iUp+1]), float64(src[iUp+2])) +
				colorspace.Luma601(float64(src[iDown]), float64(src[iDown+1]), float64(src[iDown+2])) +
				colorspace.Luma601(float64(src[iLeft]), float64(src[iLeft+1]), float64(src[iLeft+2])) +
				colorspace.Luma601(float64(src[iRight]), float64(src[iRight+1]), float64(src[iRight+2]))) / 4

			detail := yc - yAvg
			if absF(detail) <= sharpenNoiseThreshold {
				continue
			}

			protect := minF(1, yc/sharpenShadowProtect)
			delta := detail * (sharpening / 100) * sharpenBoost * protect

			for c := 0; c < 3; c++ {
				v := colorspace.Clamp255(float64(src[i+c]) + delta)
				dst[i+c] = uint8(v + 0.5)
			}
		}
	}
}

// Grain applies the overlay-blended grain stage to buf in place.
func Grain(buf []uint8, width, height int, amount, size float64, rng *noise.Mulberry32) {
	if amount <= 0 {
		return
	}
	blockSize := int(size)
	if blockSize < 1 {
		blockSize = 1
	}

	blocks := make(map[[2]int]float64)
	blockOf := func(v, s int) int {
		if s <= 1 {
			return v
		}
		return v / s
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := (y*width + x) * 4
			r := float64(buf[i])
			g := float64(buf[i+1])
			b := float64(buf[i+2])

			luma := colorspace.Luma709(r, g, b) / 255
			mask := maxF(0.2, 1-luma*luma)

			key := [2]int{blockOf(x, blockSize), blockOf(y, blockSize)}
			n, ok := blocks[key]
			if !ok {
				n = rng.Float64()
				blocks[key] = n
			}

			v := 0.5 + (n-0.5)*(amount/100)*mask*0.8

			buf[i] = overlayByte(r, v)
			buf[i+1] = overlayByte(g, v)
			buf[i+2] = overlayByte(b, v)
		}
	}
}

// Apply runs the prescribed sharpen-then-grain order: sharpening reads
// from a pre-pass snapshot so grain is never amplified by the sharpen
// convolution.
func Apply(dst, src []uint8, width, height int, p Params, rng *noise.Mulberry32) {
	Sharpen(dst, src, width, height, p.Sharpening)
	Grain(dst, width, height, p.GrainAmount, p.GrainSize, rng)
}

func overlayByte(c, v float64) uint8 {
	base := c / 255
	var out float64
	if base < 0.5 {
		out = 2 * base * v
	} else {
		out = 1 - 2*(1-base)*(1-v)
	}
	return uint8(colorspace.Clamp255(out*255) + 0.5)
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

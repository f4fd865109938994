// Package grade implements a non-destructive raster image grading engine.
//
// # Overview
//
// grade transforms an 8-bit RGBA source image into a graded output by
// evaluating a fixed pipeline: six-band selective HSL, global tone, a 32³
// 3D LUT sampled trilinearly (which bakes in white balance, film-stock
// emulation and split-tone color grading), local mask-weighted
// adjustments, vignette, dithering, and a texture pass (smart sharpen +
// film grain). Every render
// also produces a 256-bin per-channel histogram.
//
// # Quick Start
//
//	import "github.com/gogpu/filmgrade"
//
//	eng := grade.NewEngine()
//	lut := eng.LUT(grade.FilmProvia, grade.WhiteBalance{}, grade.Grading{})
//	out, hist, err := eng.Render(src, lut, grade.Adjustments{Intensity: 1}, nil)
//
// # Architecture
//
//	Public API: ImageBuffer, LUT, Adjustments, MaskLayer, Histogram, Engine
//	internal/colorspace: RGB<->HSL, hue weights, soft light, sigmoid
//	internal/lut3d:      32³ LUT synthesis and trilinear sampling
//	internal/filmstock:  the film recipe table (matrix + S-curve per stock)
//	internal/pixelproc:  the per-pixel stages A-H
//	internal/texture:    sharpen + grain texture pass
//	internal/noise:      deterministic PRNG for dither and grain
//	internal/cache:      generic LRU used to memoize synthesized LUTs
//
// # Concurrency
//
// Engine.Render is synchronous and single-threaded; a render takes an
// immutable snapshot of its inputs and is safe to call from any goroutine
// as long as calls are not concurrent on overlapping output buffers.
// Engine.RenderParallel shards a render across horizontal bands.
//
// # Determinism
//
// Dither and grain noise come from a PRNG reseeded at the start of every
// render, so two renders of identical inputs are bit-identical.
package grade

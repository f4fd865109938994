package grade

import "github.com/gogpu/filmgrade/internal/cache"

// Engine owns the LUT cache and the PRNG seed for a render session. It is
// the only stateful type in the package; everything else is pure
// functions over immutable inputs. An Engine is safe for concurrent use:
// the LUT cache has its own mutex, and Render/RenderParallel never mutate
// shared state besides that cache.
type Engine struct {
	luts *cache.Cache[lutKey, *LUT]
	seed uint32
}

// lutKey identifies a synthesized LUT by the three inputs that actually
// change it; every other adjustment slider reuses whatever LUT is
// currently cached under this key.
type lutKey struct {
	film    FilmStock
	wb      WhiteBalance
	grading Grading
}

// EngineOption configures an Engine during construction.
type EngineOption func(*engineOptions)

type engineOptions struct {
	lutCacheSize int
	seed         uint32
}

func defaultEngineOptions() engineOptions {
	return engineOptions{lutCacheSize: 8, seed: 1}
}

// WithLUTCacheSize sets how many distinct (film, WB, grading) LUTs the
// Engine keeps synthesized at once. The default is 8, enough for a host
// to flip between a handful of film stocks without resynthesizing.
func WithLUTCacheSize(n int) EngineOption {
	return func(o *engineOptions) {
		o.lutCacheSize = n
	}
}

// WithSeed sets the base PRNG seed used for dither and grain. Renders are
// deterministic for a fixed seed and fixed inputs; the default seed is 1.
func WithSeed(seed uint32) EngineOption {
	return func(o *engineOptions) {
		o.seed = seed
	}
}

// NewEngine constructs an Engine ready to render.
func NewEngine(opts ...EngineOption) *Engine {
	o := defaultEngineOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine{
		luts: cache.New[lutKey, *LUT](o.lutCacheSize),
		seed: o.seed,
	}
}

// LUT returns the synthesized LUT for (film, wb, grading), synthesizing
// and caching it on first use. Subsequent calls with the same three
// inputs reuse the cached grid instead of recomputing all 32³ corners.
func (e *Engine) LUT(film FilmStock, wb WhiteBalance, grading Grading) *LUT {
	key := lutKey{film: film, wb: wb, grading: grading}
	return e.luts.GetOrCreate(key, func() *LUT {
		return SynthesizeLUT(film, wb, grading)
	})
}

// ClearLUTCache empties the Engine's LUT cache, forcing every subsequent
// LUT call to resynthesize.
func (e *Engine) ClearLUTCache() {
	e.luts.Clear()
}

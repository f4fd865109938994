// Package cache provides a generic, thread-safe LRU cache used to avoid
// resynthesizing a 3D LUT on every render.
//
// A LUT depends only on (film stock, white balance, grading); every other
// adjustment slider leaves it unchanged. The engine keys a Cache by that
// triple so a brightness or HSL tweak reuses the last synthesized grid
// instead of recomputing all 32³ corners.
//
//	c := cache.New[lutKey, *grade.LUT](8)
//	lut := c.GetOrCreate(key, func() *grade.LUT { return grade.SynthesizeLUT(film, wb, grading) })
//
// Eviction is O(1) via an internal doubly-linked LRU list; Set and
// GetOrCreate both move the touched entry to the front, and exceeding the
// soft limit evicts from the back until back under it.
//
// Cache is safe for concurrent use. It must not be copied after creation
// (it holds a mutex).
package cache

// Package filmstock implements the film recipe table: for each named film
// stock, a 3x3 channel matrix simulating spectral crosstalk followed by a
// per-channel contrast curve, exactly as cataloged by the grading engine's
// external interface contract.
//
// This generalizes the teacher's ColorMatrixFilter (a 4x5 RGBA-with-offset
// matrix plus named constructors like NewSepiaFilter/NewSaturationFilter)
// down to the 3x3 RGB-only matrix film emulation needs, since film stocks
// never touch alpha.
package filmstock

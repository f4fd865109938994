package filmstock

// Matrix is a 3x3 row-major channel matrix modeling spectral crosstalk
// between a film stock's dye layers.
type Matrix [3][3]float64

// Identity is the pass-through matrix (Provia's recipe).
var Identity = Matrix{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
}

// Apply multiplies the matrix by channel values in [0,255].
func (m Matrix) Apply(r, g, b float64) (float64, float64, float64) {
	return m[0][0]*r + m[0][1]*g + m[0][2]*b,
		m[1][0]*r + m[1][1]*g + m[1][2]*b,
		m[2][0]*r + m[2][1]*g + m[2][2]*b
}

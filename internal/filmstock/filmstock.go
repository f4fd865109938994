package filmstock

import "github.com/gogpu/filmgrade/internal/colorspace"

// Stock identifies one cataloged film recipe. Dispatch is a match
// statement, not dynamic interface dispatch, per the design note that the
// film catalogue is a tagged variant over film identity.
type Stock int

const (
	Provia Stock = iota
	Velvia
	Astia
	ClassicChrome
	ClassicNeg
	NostalgicNeg
	RealaAce
	Eterna
	AcrosNeutral
	AcrosYellow
	AcrosRed
	AcrosGreen
	Sepia
)

// All returns every cataloged stock in table order, for a host film picker.
func All() []Stock {
	return []Stock{
		Provia, Velvia, Astia, ClassicChrome, ClassicNeg, NostalgicNeg,
		RealaAce, Eterna, AcrosNeutral, AcrosYellow, AcrosRed, AcrosGreen, Sepia,
	}
}

// String returns the film's catalogue name.
func (s Stock) String() string {
	switch s {
	case Provia:
		return "Provia"
	case Velvia:
		return "Velvia"
	case Astia:
		return "Astia"
	case ClassicChrome:
		return "Classic Chrome"
	case ClassicNeg:
		return "Classic Neg"
	case NostalgicNeg:
		return "Nostalgic Neg"
	case RealaAce:
		return "Reala Ace"
	case Eterna:
		return "Eterna"
	case AcrosNeutral:
		return "Acros (N)"
	case AcrosYellow:
		return "Acros (Ye)"
	case AcrosRed:
		return "Acros (R)"
	case AcrosGreen:
		return "Acros (G)"
	case Sepia:
		return "Sepia"
	default:
		return "unknown"
	}
}

// bwMix is a black & white channel mix for the Acros variants.
type bwMix struct{ r, g, b float64 }

var acrosMix = map[Stock]bwMix{
	AcrosNeutral: {0.30, 0.60, 0.10},
	AcrosYellow:  {0.40, 0.55, 0.05},
	AcrosRed:     {0.50, 0.45, 0.05},
	AcrosGreen:   {0.20, 0.70, 0.10},
}

// curve parameters: slope k and optional non-default midpoint x0.
type curve struct {
	k, x0 float64
}

var matrices = map[Stock]Matrix{
	Provia: Identity,
	Velvia: {
		{1.15, -0.05, -0.10},
		{-0.05, 1.15, -0.10},
		{-0.10, -0.10, 1.20},
	},
	Astia: {
		{1.05, 0.05, -0.10},
		{0, 1, 0},
		{-0.05, 0, 1.05},
	},
	ClassicChrome: {
		{0.75, 0.20, 0.05},
		{0.10, 0.85, 0.05},
		{0, 0.10, 0.90},
	},
	ClassicNeg: {
		{0.95, 0.05, 0},
		{0, 1.05, 0},
		{0, 0.10, 0.90},
	},
	NostalgicNeg: {
		{1.10, 0.10, -0.20},
		{0.05, 0.95, 0},
		{-0.10, 0.10, 1.00},
	},
	RealaAce: {
		{1.05, 0, -0.05},
		{-0.02, 1.04, -0.02},
		{-0.05, 0, 1.05},
	},
	Eterna: {
		{0.90, 0.10, 0},
		{0.05, 0.90, 0.05},
		{0, 0.10, 0.90},
	},
	Sepia: {
		{0.393, 0.769, 0.189},
		{0.349, 0.686, 0.168},
		{0.272, 0.534, 0.131},
	},
}

var curves = map[Stock]curve{
	Provia:        {k: 4.5, x0: 0.5},
	Velvia:        {k: 6.5, x0: 0.5},
	Astia:         {k: 4.5, x0: 0.5},
	ClassicChrome: {k: 5.5, x0: 0.55},
	ClassicNeg:    {k: 6.0, x0: 0.5},
	NostalgicNeg:  {k: 4.5, x0: 0.5},
	RealaAce:      {k: 4.5, x0: 0.5},
	Eterna:        {k: 3.5, x0: 0.5},
	AcrosNeutral:  {k: 5.0, x0: 0.5},
	AcrosYellow:   {k: 5.0, x0: 0.5},
	AcrosRed:      {k: 5.0, x0: 0.5},
	AcrosGreen:    {k: 5.0, x0: 0.5},
	// Sepia has no S-curve.
}

// Apply evaluates film emulation for stock s at base channel values in
// [0,255]: matrix multiply (spectral crosstalk) then per-channel S-curve,
// exactly as the film recipe table specifies. Output is not clamped; the
// caller (the LUT synthesizer) clamps once at the end of the full per-corner
// pipeline.
func Apply(s Stock, r, g, b float64) (float64, float64, float64) {
	if mix, ok := acrosMix[s]; ok {
		gray := mix.r*r + mix.g*g + mix.b*b
		c := curves[s]
		gray = applyCurve(gray, c.k, c.x0)
		return gray, gray, gray
	}

	m, hasMatrix := matrices[s]
	if hasMatrix {
		r, g, b = m.Apply(r, g, b)
	}

	if s == Sepia {
		return r, g, b
	}

	if s == ClassicNeg {
		// Classic Neg's recipe calls for a luma-conditional R/B boost after
		// the matrix stage, layered on top of the shared contrast curve: the
		// shadows (low luma) get slightly warmer R/B than a plain matrix
		// pass would give, distinguishing it from Classic Chrome's crush.
		y := colorspace.Luma601(r, g, b) / 255
		boost := 0.08 * (1 - y)
		r += boost * 255
		b += boost * 255
	}

	c, hasCurve := curves[s]
	if !hasCurve {
		return r, g, b
	}
	r = applyCurve(r, c.k, c.x0)
	g = applyCurve(g, c.k, c.x0)
	b = applyCurve(b, c.k, c.x0)

	if s == Eterna {
		// "output then 0.9*c + 10 to lift blacks", per the recipe table.
		r = 0.9*r + 10
		g = 0.9*g + 10
		b = 0.9*b + 10
	}

	return r, g, b
}

func applyCurve(c, k, x0 float64) float64 {
	x := c / 255
	return colorspace.Sigmoid(x, k, x0) * 255
}

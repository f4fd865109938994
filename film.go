package grade

import "github.com/gogpu/filmgrade/internal/filmstock"

// FilmStock selects one cataloged film emulation recipe for LUT synthesis.
type FilmStock int

const (
	FilmProvia        FilmStock = FilmStock(filmstock.Provia)
	FilmVelvia        FilmStock = FilmStock(filmstock.Velvia)
	FilmAstia         FilmStock = FilmStock(filmstock.Astia)
	FilmClassicChrome FilmStock = FilmStock(filmstock.ClassicChrome)
	FilmClassicNeg    FilmStock = FilmStock(filmstock.ClassicNeg)
	FilmNostalgicNeg  FilmStock = FilmStock(filmstock.NostalgicNeg)
	FilmRealaAce      FilmStock = FilmStock(filmstock.RealaAce)
	FilmEterna        FilmStock = FilmStock(filmstock.Eterna)
	FilmAcrosNeutral  FilmStock = FilmStock(filmstock.AcrosNeutral)
	FilmAcrosYellow   FilmStock = FilmStock(filmstock.AcrosYellow)
	FilmAcrosRed      FilmStock = FilmStock(filmstock.AcrosRed)
	FilmAcrosGreen    FilmStock = FilmStock(filmstock.AcrosGreen)
	FilmSepia         FilmStock = FilmStock(filmstock.Sepia)
)

// String returns the film's catalogue name.
func (f FilmStock) String() string {
	return filmstock.Stock(f).String()
}

// Films enumerates every cataloged film stock, for a host film picker.
func Films() []FilmStock {
	stocks := filmstock.All()
	out := make([]FilmStock, len(stocks))
	for i, s := range stocks {
		out[i] = FilmStock(s)
	}
	return out
}

// apply evaluates this film's matrix + S-curve recipe at a base grid color.
func (f FilmStock) apply(r, g, b float64) (float64, float64, float64) {
	return filmstock.Apply(filmstock.Stock(f), r, g, b)
}

package usecase

import (
	"math"

	"github.com/vitos/lp_wave/internal/domain"
)

// heightFunc computes the raw (unclamped) height of bar i out of n.
type heightFunc func(i, n int, p domain.Params, rng Random) float64

var heightFuncs = map[domain.Mode]heightFunc{
	domain.ModeNone:     flatHeight(20),
	domain.ModeCombined: combinedHeight,
	domain.ModeBid:      bidHeight,
	domain.ModeAsk:      askHeight,
	domain.ModeBoth:     bothHeight,
	domain.ModeSpots:    flatHeight(70),
	domain.ModeAgents:   agentsHeight,
}

// Generate builds the bar field for a mode. Only combined mode draws from rng.
// Params are expected to be valid; see domain.Params.Validate.
func Generate(mode domain.Mode, p domain.Params, rng Random) []domain.Bar {
	h, ok := heightFuncs[mode]
	if !ok {
		h = flatHeight(60)
	}
	n := p.BinCount
	liquidity := p.Liquidity()

	bars := make([]domain.Bar, n)
	for i := range bars {
		bars[i] = domain.Bar{
			Index:     i,
			Height:    clampHeight(h(i, n, p, rng)),
			Liquidity: liquidity,
		}
	}
	return bars
}

// GenerateVolume returns the decorative volume strip under the chart, one
// value in [40, 100] per bin.
func GenerateVolume(n int, rng Random) []float64 {
	vol := make([]float64, n)
	for i := range vol {
		vol[i] = 40 + rng.Float64()*60
	}
	return vol
}

func flatHeight(h float64) heightFunc {
	return func(int, int, domain.Params, Random) float64 { return h }
}

func combinedHeight(i, n int, _ domain.Params, rng Random) float64 {
	distance := math.Abs(float64(i) - float64(n)/2)
	return 50 + rng.Float64()*40 - distance*1.5
}

func bidHeight(i, n int, _ domain.Params, _ Random) float64 {
	return 100 * (1 - float64(i)/float64(n))
}

func askHeight(i, n int, _ domain.Params, _ Random) float64 {
	return 100 * float64(i) / float64(n)
}

// bothHeight is a V with its bottom at the dynamic center.
func bothHeight(i, n int, p domain.Params, _ Random) float64 {
	c, maxDist := splitCenter(n, p)
	return 100 * math.Abs(float64(i)-c) / maxDist
}

// agentsHeight is a pyramid peaking at the dynamic center, scaled by the SOL share.
func agentsHeight(i, n int, p domain.Params, _ Random) float64 {
	c, maxDist := splitCenter(n, p)
	intensity := 0.5 + float64(p.SolPercent)/200
	return (1 - math.Abs(float64(i)-c)/maxDist) * 100 * intensity
}

func splitCenter(n int, p domain.Params) (center, maxDist float64) {
	center = float64(p.SolPercent) / 100 * float64(n)
	maxDist = math.Max(center, float64(n)-center)
	return center, maxDist
}

func clampHeight(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	return math.Max(0, math.Min(100, h))
}

package domain

import (
	"fmt"
	"math"
)

// Slider domains.
const (
	MinBinCount  = 10
	MaxBinCount  = 100
	BinCountStep = 1

	MinAmount  = 1000
	MaxAmount  = 20000
	AmountStep = 500

	MinSolPercent = 10
	MaxSolPercent = 90
	SplitStep     = 5

	DefaultBinCount   = 20
	DefaultAmount     = 5000
	DefaultSolPercent = 50
)

// Params are the user controlled inputs of the bar field.
type Params struct {
	BinCount   int     `json:"bin_count"`
	Amount     float64 `json:"amount"`
	SolPercent int     `json:"sol_percent"`
}

func DefaultParams() Params {
	return Params{
		BinCount:   DefaultBinCount,
		Amount:     DefaultAmount,
		SolPercent: DefaultSolPercent,
	}
}

// TokenPercent is the other side of the split.
func (p Params) TokenPercent() int {
	return 100 - p.SolPercent
}

// Liquidity is the amount carried by every bin.
func (p Params) Liquidity() float64 {
	return p.Amount / float64(p.BinCount)
}

// Center is the dynamic center of the split, floor(sol/100 * bins).
func (p Params) Center() int {
	return int(math.Floor(float64(p.SolPercent) / 100 * float64(p.BinCount)))
}

func (p Params) Validate() error {
	if p.BinCount < MinBinCount || p.BinCount > MaxBinCount {
		return fmt.Errorf("bin count %d outside [%d, %d]", p.BinCount, MinBinCount, MaxBinCount)
	}
	if math.IsNaN(p.Amount) || p.Amount < MinAmount || p.Amount > MaxAmount {
		return fmt.Errorf("amount %v outside [%d, %d]", p.Amount, MinAmount, MaxAmount)
	}
	if p.SolPercent < MinSolPercent || p.SolPercent > MaxSolPercent {
		return fmt.Errorf("sol percent %d outside [%d, %d]", p.SolPercent, MinSolPercent, MaxSolPercent)
	}
	return nil
}

func ClampBinCount(n int) int {
	return clampInt(n, MinBinCount, MaxBinCount)
}

// ClampAmount clamps to the slider range and snaps to the slider step.
func ClampAmount(v float64) float64 {
	if math.IsNaN(v) {
		return DefaultAmount
	}
	v = math.Max(MinAmount, math.Min(MaxAmount, v))
	return MinAmount + math.Round((v-MinAmount)/AmountStep)*AmountStep
}

// ClampSolPercent clamps to the slider range and snaps to the slider step.
func ClampSolPercent(p int) int {
	p = clampInt(p, MinSolPercent, MaxSolPercent)
	return MinSolPercent + ((p-MinSolPercent+SplitStep/2)/SplitStep)*SplitStep
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/vitos/lp_wave/internal/domain"
	"github.com/vitos/lp_wave/internal/usecase"
)

func main() {
	modeName := flag.String("mode", "both", "strategy: none, combined, bid, ask, both, spots, agents")
	bins := flag.Int("bins", domain.DefaultBinCount, "bin count")
	amount := flag.Float64("amount", domain.DefaultAmount, "liquidity amount")
	sol := flag.Int("sol", domain.DefaultSolPercent, "SOL side of the split, percent")
	ticks := flag.Int("ticks", 20, "wave ticks to print")
	seed := flag.Int64("seed", 1, "random seed, 0 for time based")
	flag.Parse()

	mode, err := domain.ParseMode(*modeName)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	params := domain.Params{
		BinCount:   domain.ClampBinCount(*bins),
		Amount:     domain.ClampAmount(*amount),
		SolPercent: domain.ClampSolPercent(*sol),
	}
	rng := usecase.NewRandom(*seed)

	bars := usecase.Generate(mode, params, rng)
	fmt.Printf("%s (%s): %d bins, amount %s, split %d/%d, liquidity %.2f per bin\n",
		mode.Heading(), mode, params.BinCount, usecase.FormatAmount(mode, params.Amount),
		params.SolPercent, params.TokenPercent(), params.Liquidity())

	for _, b := range bars {
		color := usecase.BarColor(usecase.ColorInput{Mode: mode, Index: b.Index, Position: -1, Params: params})
		fmt.Printf("%3d %6.2f %s %s\n", b.Index, b.Height, color.Hex(), strings.Repeat("#", int(b.Height/2)))
	}

	if *ticks <= 0 || mode == domain.ModeNone {
		return
	}

	anim := usecase.NewAnimator(mode, params, bars, rng)
	anim.Wave.Animating = true
	fmt.Printf("\n%5s %5s %9s %10s\n", "tick", "pos", "dir", "fee")
	for i := 1; i <= *ticks; i++ {
		anim.Step()
		w := anim.Wave
		fmt.Printf("%5d %5d %9s %10s\n", i, w.Position, w.Direction, usecase.FormatFee(w.AccumulatedFee))
	}
}

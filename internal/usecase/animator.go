package usecase

import (
	"math"

	"github.com/vitos/lp_wave/internal/domain"
)

// startFunc picks where the wave enters the field for a mode.
type startFunc func(p domain.Params) (int, domain.Direction)

// stepFunc computes the next position and direction from the current ones.
type stepFunc func(a *Animator) (int, domain.Direction)

var startFuncs = map[domain.Mode]startFunc{
	domain.ModeBid:    startAtRightEdge,
	domain.ModeBoth:   startAtCenter,
	domain.ModeSpots:  startAtCenter,
	domain.ModeAgents: startAtCenter,
}

var stepFuncs = map[domain.Mode]stepFunc{
	domain.ModeAgents: stepBounce,
}

func startAtLeftEdge(domain.Params) (int, domain.Direction) {
	return 0, domain.Forward
}

func startAtRightEdge(p domain.Params) (int, domain.Direction) {
	return p.BinCount - 1, domain.Backward
}

func startAtCenter(p domain.Params) (int, domain.Direction) {
	return min(p.Center(), p.BinCount-1), domain.Forward
}

// Animator advances the wave across a bar field. It is not safe for concurrent
// use; the Simulator owning it serializes access.
type Animator struct {
	Mode   domain.Mode
	Params domain.Params
	Bars   []domain.Bar
	Wave   domain.WaveState
	Bounce domain.BounceState

	rng Random
}

func NewAnimator(mode domain.Mode, p domain.Params, bars []domain.Bar, rng Random) *Animator {
	a := &Animator{Mode: mode, Params: p, Bars: bars, rng: rng}
	a.Rewind()
	return a
}

// Rewind puts the wave back at the mode's entry point and rebuilds the bounce
// sub-state. The accumulated fee is kept.
func (a *Animator) Rewind() {
	start, ok := startFuncs[a.Mode]
	if !ok {
		start = startAtLeftEdge
	}
	a.Wave.Position, a.Wave.Direction = start(a.Params)
	if a.Mode == domain.ModeAgents {
		a.Bounce = newBounceState(a.Wave.Position, a.rng)
	} else {
		a.Bounce = domain.BounceState{}
	}
}

// Step advances the wave by one tick and accrues the fee of the bar it lands on.
// It returns the fee accrued by this step.
func (a *Animator) Step() float64 {
	if len(a.Bars) == 0 {
		return 0
	}
	step, ok := stepFuncs[a.Mode]
	if !ok {
		step = stepSweep
	}
	pos, dir := step(a)
	pos = max(0, min(pos, len(a.Bars)-1))

	fee := a.Bars[pos].Liquidity * domain.FeeRate
	if math.IsNaN(fee) || fee < 0 {
		fee = 0
	}
	a.Wave.Position = pos
	a.Wave.Direction = dir
	a.Wave.AccumulatedFee += fee
	return fee
}

// stepSweep moves one bin in the current direction and bounces off the edges.
func stepSweep(a *Animator) (int, domain.Direction) {
	last := len(a.Bars) - 1
	pos, dir := a.Wave.Position, a.Wave.Direction
	if dir == domain.Forward {
		pos++
		if pos > last {
			return last, domain.Backward
		}
		return pos, dir
	}
	pos--
	if pos < 0 {
		return 0, domain.Forward
	}
	return pos, dir
}

// stepBounce follows the agents pattern around the dynamic center.
func stepBounce(a *Animator) (int, domain.Direction) {
	last := len(a.Bars) - 1
	b := &bounce{
		BounceState: &a.Bounce,
		rng:         a.rng,
		center:      min(a.Params.Center(), last),
		last:        last,
	}
	prev := a.Wave.Position
	next := b.step(prev)

	dir := a.Wave.Direction
	switch {
	case next > prev:
		dir = domain.Forward
	case next < prev:
		dir = domain.Backward
	}
	return next, dir
}

package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitos/lp_wave/internal/domain"
	"github.com/vitos/lp_wave/internal/usecase"
)

func newAnimator(mode domain.Mode, p domain.Params, rng usecase.Random) *usecase.Animator {
	return usecase.NewAnimator(mode, p, usecase.Generate(mode, p, rng), rng)
}

func TestAnimator_StartPositions(t *testing.T) {
	p := params(20, 5000, 50)
	tests := []struct {
		mode    domain.Mode
		wantPos int
		wantDir domain.Direction
	}{
		{domain.ModeBid, 19, domain.Backward},
		{domain.ModeAsk, 0, domain.Forward},
		{domain.ModeCombined, 0, domain.Forward},
		{domain.ModeBoth, 10, domain.Forward},
		{domain.ModeSpots, 10, domain.Forward},
		{domain.ModeAgents, 10, domain.Forward},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			a := newAnimator(tt.mode, p, usecase.NewRandom(1))
			assert.Equal(t, tt.wantPos, a.Wave.Position)
			assert.Equal(t, tt.wantDir, a.Wave.Direction)
		})
	}
}

func TestAnimator_BidScenario(t *testing.T) {
	a := newAnimator(domain.ModeBid, params(20, 5000, 50), &scriptedRandom{})

	fee := a.Step()

	assert.InDelta(t, 0.75, fee, 1e-9)
	assert.Equal(t, 18, a.Wave.Position)
	assert.Equal(t, domain.Backward, a.Wave.Direction)
	assert.Equal(t, "$0.75", usecase.FormatFee(a.Wave.AccumulatedFee))
}

func TestAnimator_SweepBouncesAtEdges(t *testing.T) {
	a := newAnimator(domain.ModeAsk, params(10, 1000, 50), &scriptedRandom{})

	for i := 1; i <= 9; i++ {
		a.Step()
		require.Equal(t, i, a.Wave.Position)
	}
	require.Equal(t, domain.Forward, a.Wave.Direction)

	// boundary step clamps and flips, and still earns
	before := a.Wave.AccumulatedFee
	a.Step()
	assert.Equal(t, 9, a.Wave.Position)
	assert.Equal(t, domain.Backward, a.Wave.Direction)
	assert.InDelta(t, 0.3, a.Wave.AccumulatedFee-before, 1e-9)

	a.Step()
	assert.Equal(t, 8, a.Wave.Position)

	for i := 0; i < 8; i++ {
		a.Step()
	}
	assert.Equal(t, 0, a.Wave.Position)
	a.Step()
	assert.Equal(t, 0, a.Wave.Position)
	assert.Equal(t, domain.Forward, a.Wave.Direction)
}

func TestAnimator_FeeIsMonotonic(t *testing.T) {
	for _, mode := range domain.Modes {
		a := newAnimator(mode, params(37, 13500, 35), usecase.NewRandom(11))
		prev := 0.0
		for i := 0; i < 300; i++ {
			a.Step()
			require.GreaterOrEqual(t, a.Wave.AccumulatedFee, prev)
			require.GreaterOrEqual(t, a.Wave.Position, 0)
			require.Less(t, a.Wave.Position, 37)
			prev = a.Wave.AccumulatedFee
		}
		assert.InDelta(t, 300*13500/37.0*domain.FeeRate, a.Wave.AccumulatedFee, 1e-6, "mode %s", mode)
	}
}

func TestAnimator_AgentsFollowsPattern(t *testing.T) {
	a := newAnimator(domain.ModeAgents, params(20, 5000, 50), usecase.NewRandom(5))
	a.Bounce = domain.BounceState{
		Patterns: []int{50, 0, -50},
		GoingOut: true,
		MaxLeft:  10,
		MaxRight: 10,
	}

	want := []int{11, 12, 13, 14, 13, 12, 11, 10, 10, 9, 8, 7, 6, 5}
	got := make([]int, 0, len(want))
	for range want {
		a.Step()
		got = append(got, a.Wave.Position)
	}

	assert.Equal(t, want, got)
	assert.Equal(t, 14, a.Bounce.MaxRight)
	assert.Equal(t, 5, a.Bounce.MaxLeft)
	assert.Equal(t, domain.Backward, a.Wave.Direction)

	// exhausted, so a fresh pattern was drawn
	assert.Equal(t, 0, a.Bounce.PatternIndex)
	assert.GreaterOrEqual(t, len(a.Bounce.Patterns), 6)
	assert.LessOrEqual(t, len(a.Bounce.Patterns), 9)
}

func TestAnimator_AgentsNeverStalls(t *testing.T) {
	// center 1 of 10: small left targets collapse onto the center
	a := newAnimator(domain.ModeAgents, params(10, 5000, 10), usecase.NewRandom(9))
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		a.Step()
		require.GreaterOrEqual(t, a.Wave.Position, 0)
		require.Less(t, a.Wave.Position, 10)
		seen[a.Wave.Position] = true
	}
	assert.Greater(t, len(seen), 2)
}

func TestAnimator_RewindKeepsFee(t *testing.T) {
	a := newAnimator(domain.ModeBid, params(20, 5000, 50), &scriptedRandom{})
	a.Step()
	a.Step()
	a.Rewind()

	assert.Equal(t, 19, a.Wave.Position)
	assert.InDelta(t, 1.5, a.Wave.AccumulatedFee, 1e-9)
}

func TestGeneratePattern(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		p := usecase.GeneratePattern(usecase.NewRandom(seed))
		require.GreaterOrEqual(t, len(p), 6)
		require.LessOrEqual(t, len(p), 9)
		for i, v := range p {
			if i%3 == 2 {
				require.Zero(t, v, "entry %d of %v", i, p)
				continue
			}
			mag := v
			if mag < 0 {
				mag = -mag
			}
			require.GreaterOrEqual(t, mag, 10, "entry %d of %v", i, p)
			require.LessOrEqual(t, mag, 99, "entry %d of %v", i, p)
		}
	}
}

func TestGeneratePattern_Scripted(t *testing.T) {
	rng := &scriptedRandom{floats: []float64{0.2, 0.8}, ints: []int{0, 40, 5}}
	// length 6, then sign and magnitude per non-zero entry
	p := usecase.GeneratePattern(rng)

	assert.Equal(t, []int{-50, 15, 0, -10, 50, 0}, p)
}

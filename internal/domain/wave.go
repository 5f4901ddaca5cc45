package domain

type Direction string

const (
	Forward  Direction = "forward"
	Backward Direction = "backward"
)

// Flip returns the opposite direction.
func (d Direction) Flip() Direction {
	if d == Forward {
		return Backward
	}
	return Forward
}

// FeeRate is the fee accrued per visited bin, as a fraction of its liquidity.
const FeeRate = 0.003

// WaveState is the animated marker sweeping across the bars.
type WaveState struct {
	Position       int       `json:"position"`
	Direction      Direction `json:"direction"`
	AccumulatedFee float64   `json:"accumulated_fee"`
	Animating      bool      `json:"animating"`
}

// BounceState drives the agents mode wave. Patterns holds signed target
// percentages relative to the center; 0 means return to center.
type BounceState struct {
	PatternIndex int   `json:"pattern_index"`
	Patterns     []int `json:"patterns"`
	GoingOut     bool  `json:"going_out"`
	MaxLeft      int   `json:"max_left"`
	MaxRight     int   `json:"max_right"`
}

// Current returns the active pattern entry.
func (b BounceState) Current() int {
	if len(b.Patterns) == 0 {
		return 0
	}
	return b.Patterns[b.PatternIndex%len(b.Patterns)]
}

package usecase

import "github.com/vitos/lp_wave/internal/domain"

// GeneratePattern builds a fresh agents bounce pattern: 6 to 9 entries, every
// third one is 0 (return to center), the others are signed percentages in
// [10, 99] where negative means left of center.
func GeneratePattern(rng Random) []int {
	n := 6 + rng.Intn(4)
	patterns := make([]int, n)
	for i := range patterns {
		if i%3 == 2 {
			continue
		}
		negative := rng.Float64() < 0.5
		pct := rng.Intn(90) + 10
		if negative {
			pct = -pct
		}
		patterns[i] = pct
	}
	return patterns
}

func newBounceState(center int, rng Random) domain.BounceState {
	return domain.BounceState{
		Patterns: GeneratePattern(rng),
		GoingOut: true,
		MaxLeft:  center,
		MaxRight: center,
	}
}

// advance moves to the next pattern entry, regenerating once exhausted.
func (b *bounce) advance() {
	if b.PatternIndex+1 >= len(b.Patterns) {
		b.Patterns = GeneratePattern(b.rng)
		b.PatternIndex = 0
	} else {
		b.PatternIndex++
	}
	b.GoingOut = true
}

// bounce wraps BounceState with the geometry of the field while stepping.
type bounce struct {
	*domain.BounceState
	rng    Random
	center int
	last   int // last bin index
}

// target is the bin the current entry points at.
func (b *bounce) target(pct int) int {
	if pct > 0 {
		dist := (b.last - b.center) * pct / 100
		return min(b.center+dist, b.last)
	}
	dist := b.center * -pct / 100
	return max(b.center-dist, 0)
}

// step returns the next position from pos.
func (b *bounce) step(pos int) int {
	if len(b.Patterns) == 0 {
		b.Patterns = GeneratePattern(b.rng)
		b.PatternIndex = 0
	}
	pct := b.Current()

	if pct == 0 || !b.GoingOut {
		next := towards(pos, b.center)
		if next == b.center {
			b.advance()
		}
		return next
	}

	target := b.target(pct)
	next := towards(pos, target)
	if next > b.MaxRight {
		b.MaxRight = next
	}
	if next < b.MaxLeft {
		b.MaxLeft = next
	}

	if next == target {
		following := b.PatternIndex + 1
		if following >= len(b.Patterns) {
			following = 0
		}
		if b.Patterns[following] == 0 {
			b.GoingOut = false
		} else {
			b.advance()
		}
	}
	return next
}

// towards moves pos one bin closer to target.
func towards(pos, target int) int {
	switch {
	case pos < target:
		return pos + 1
	case pos > target:
		return pos - 1
	default:
		return pos
	}
}

package usecase

import (
	"math/rand"
	"time"
)

// Random is the part of *rand.Rand the generator and the animator draw from.
// Tests inject scripted sources.
type Random interface {
	Float64() float64
	Intn(n int) int
}

func NewRandom(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

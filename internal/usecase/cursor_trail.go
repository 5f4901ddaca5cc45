package usecase

import (
	"math"
	"time"
)

type TrailConfig struct {
	Icons           []string
	Radius          float64
	SpawnInterval   time.Duration
	RemovalInterval time.Duration
	MaxPoints       int
	MinDistance     float64
}

func DefaultTrailConfig() TrailConfig {
	return TrailConfig{
		Icons:           []string{"⚠"},
		Radius:          80,
		SpawnInterval:   200 * time.Millisecond,
		RemovalInterval: 30 * time.Millisecond,
		MaxPoints:       8,
		MinDistance:     30,
	}
}

type TrailPoint struct {
	ID    int
	X, Y  float64
	Icon  string
	Angle float64 // degrees
}

// CursorTrail scatters icons around a moving pointer. Not safe for concurrent
// use.
type CursorTrail struct {
	cfg     TrailConfig
	rng     Random
	timeNow func() time.Time

	points      []TrailPoint
	nextID      int
	lastSpawn   time.Time
	lastRemoval time.Time
	lastX       float64
	lastY       float64
}

func NewCursorTrail(cfg TrailConfig, rng Random) *CursorTrail {
	if len(cfg.Icons) == 0 {
		cfg.Icons = DefaultTrailConfig().Icons
	}
	if cfg.MaxPoints <= 0 {
		cfg.MaxPoints = DefaultTrailConfig().MaxPoints
	}
	return &CursorTrail{cfg: cfg, rng: rng, timeNow: time.Now}
}

// Move reports the pointer position. A point spawns when both the spawn
// interval and the minimum distance since the last spawn are exceeded.
func (t *CursorTrail) Move(x, y float64) bool {
	now := t.timeNow()
	if now.Sub(t.lastSpawn) < t.cfg.SpawnInterval {
		return false
	}
	if math.Hypot(x-t.lastX, y-t.lastY) < t.cfg.MinDistance {
		return false
	}

	angle := t.rng.Float64() * 2 * math.Pi
	dist := t.cfg.Radius * (0.5 + t.rng.Float64()*0.5)
	p := TrailPoint{
		ID:    t.nextID,
		X:     x + math.Cos(angle)*dist,
		Y:     y + math.Sin(angle)*dist,
		Icon:  t.cfg.Icons[t.rng.Intn(len(t.cfg.Icons))],
		Angle: (t.rng.Float64() - 0.5) * 360,
	}
	t.nextID++

	t.points = append(t.points, p)
	if len(t.points) > t.cfg.MaxPoints {
		t.points = t.points[len(t.points)-t.cfg.MaxPoints:]
	}
	t.lastSpawn = now
	t.lastX, t.lastY = x, y
	return true
}

// Expire drops the oldest point once per removal interval.
func (t *CursorTrail) Expire() {
	now := t.timeNow()
	if now.Sub(t.lastRemoval) < t.cfg.RemovalInterval {
		return
	}
	t.lastRemoval = now
	if len(t.points) > 0 {
		t.points = t.points[1:]
	}
}

func (t *CursorTrail) Points() []TrailPoint {
	out := make([]TrailPoint, len(t.points))
	copy(out, t.points)
	return out
}

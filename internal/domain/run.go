package domain

import (
	"context"
	"time"
)

// RunRecord summarizes one animation run, from Start to the next stop.
type RunRecord struct {
	ID         string    `json:"id"`
	SessionID  string    `json:"session_id"`
	Mode       Mode      `json:"mode"`
	BinCount   int       `json:"bin_count"`
	Amount     float64   `json:"amount"`
	SolPercent int       `json:"sol_percent"`
	Ticks      int       `json:"ticks"`
	Fees       float64   `json:"fees"`
	StartedAt  time.Time `json:"started_at"`
	EndedAt    time.Time `json:"ended_at"`
}

// RunRepository stores finished runs.
type RunRepository interface {
	SaveRun(ctx context.Context, run *RunRecord) error
	ListRuns(ctx context.Context, limit int) ([]*RunRecord, error)
}

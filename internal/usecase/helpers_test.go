package usecase_test

import (
	"context"
	"sync"

	"github.com/vitos/lp_wave/internal/domain"
)

// scriptedRandom replays fixed values, cycling when exhausted.
type scriptedRandom struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (r *scriptedRandom) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.5
	}
	v := r.floats[r.fi%len(r.floats)]
	r.fi++
	return v
}

func (r *scriptedRandom) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.ii%len(r.ints)]
	r.ii++
	return v % n
}

type fakeRunRepo struct {
	mu   sync.Mutex
	runs []*domain.RunRecord
	err  error
}

func (f *fakeRunRepo) SaveRun(_ context.Context, run *domain.RunRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.runs = append(f.runs, run)
	return nil
}

func (f *fakeRunRepo) ListRuns(_ context.Context, limit int) ([]*domain.RunRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*domain.RunRecord, 0, limit)
	for i := len(f.runs) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, f.runs[i])
	}
	return out, nil
}

func (f *fakeRunRepo) saved() []*domain.RunRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*domain.RunRecord(nil), f.runs...)
}

func params(bins int, amount float64, sol int) domain.Params {
	return domain.Params{BinCount: bins, Amount: amount, SolPercent: sol}
}

func heights(bars []domain.Bar) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = b.Height
	}
	return out
}

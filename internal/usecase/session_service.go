package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vitos/lp_wave/internal/domain"
	"go.uber.org/zap"
)

// SessionService keeps one Simulator per viewer. Sessions never share state.
type SessionService struct {
	runs     domain.RunRepository
	cfg      SimulatorConfig
	logger   *zap.Logger
	sessions map[string]*Simulator
	lastSeen map[string]time.Time
	newRand  func() Random
	timeNow  func() time.Time
	mu       sync.Mutex
}

// NewSessionService creates the service. runs may be nil to disable the run
// journal.
func NewSessionService(runs domain.RunRepository, cfg SimulatorConfig, logger *zap.Logger) *SessionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionService{
		runs:     runs,
		cfg:      cfg,
		logger:   logger,
		sessions: make(map[string]*Simulator),
		lastSeen: make(map[string]time.Time),
		newRand:  func() Random { return NewRandom(0) },
		timeNow:  time.Now,
	}
}

func (s *SessionService) Create() *Simulator {
	id := uuid.NewString()
	sim := NewSimulator(id, s.cfg, s.newRand(), s.logger.With(zap.String("session", id)))
	if s.runs != nil {
		sim.OnRunEnd(s.saveRun)
	}

	s.mu.Lock()
	s.sessions[id] = sim
	s.lastSeen[id] = s.timeNow()
	count := len(s.sessions)
	s.mu.Unlock()

	s.logger.Info("Session created", zap.String("session", id), zap.Int("active", count))
	return sim
}

func (s *SessionService) Get(id string) (*Simulator, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sim, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}
	s.lastSeen[id] = s.timeNow()
	return sim, nil
}

func (s *SessionService) Close(id string) error {
	s.mu.Lock()
	sim, ok := s.sessions[id]
	delete(s.sessions, id)
	delete(s.lastSeen, id)
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}
	sim.Close()
	s.logger.Info("Session closed", zap.String("session", id))
	return nil
}

// CloseAll stops every session, flushing their runs to the journal.
func (s *SessionService) CloseAll() {
	s.mu.Lock()
	sims := make([]*Simulator, 0, len(s.sessions))
	for id, sim := range s.sessions {
		sims = append(sims, sim)
		delete(s.sessions, id)
		delete(s.lastSeen, id)
	}
	s.mu.Unlock()

	for _, sim := range sims {
		sim.Close()
	}
}

// ExpireIdle closes sessions not fetched for maxIdle that have no frame
// listener. It returns how many were closed.
func (s *SessionService) ExpireIdle(maxIdle time.Duration) int {
	cutoff := s.timeNow().Add(-maxIdle)

	s.mu.Lock()
	var expired []*Simulator
	for id, sim := range s.sessions {
		if s.lastSeen[id].After(cutoff) || sim.Watched() {
			continue
		}
		expired = append(expired, sim)
		delete(s.sessions, id)
		delete(s.lastSeen, id)
	}
	s.mu.Unlock()

	for _, sim := range expired {
		sim.Close()
		s.logger.Info("Session expired", zap.String("session", sim.ID()), zap.Duration("idle", maxIdle))
	}
	return len(expired)
}

// RunJanitor expires idle sessions every interval until ctx is done.
func (s *SessionService) RunJanitor(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.ExpireIdle(maxIdle)
		}
	}
}

func (s *SessionService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// RecentRuns lists the newest journal entries. It returns nothing when the
// journal is disabled.
func (s *SessionService) RecentRuns(ctx context.Context, limit int) ([]*domain.RunRecord, error) {
	if s.runs == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 20
	}
	runs, err := s.runs.ListRuns(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}

// saveRun is the run-end callback. Journal failures are logged only.
func (s *SessionService) saveRun(rec domain.RunRecord) {
	rec.ID = uuid.NewString()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.runs.SaveRun(ctx, &rec); err != nil {
		s.logger.Error("Failed to save run", zap.Error(err), zap.String("session", rec.SessionID))
		return
	}
	s.logger.Info("Run recorded",
		zap.String("session", rec.SessionID),
		zap.String("mode", rec.Mode.String()),
		zap.Int("ticks", rec.Ticks),
		zap.Float64("fees", rec.Fees))
}

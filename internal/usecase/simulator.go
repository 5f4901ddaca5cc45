package usecase

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/vitos/lp_wave/internal/domain"
	"go.uber.org/zap"
)

const DefaultTickInterval = 100 * time.Millisecond

// errIdle aborts a mutation that changed nothing, so no frame is published.
var errIdle = errors.New("simulator idle")

type SimulatorConfig struct {
	TickInterval time.Duration
	Params       domain.Params
}

// Simulator is the page-level context of one viewer: it owns the parameters,
// the bar field, the wave and the pending tick. All methods are safe for
// concurrent use.
type Simulator struct {
	id       string
	interval time.Duration
	logger   *zap.Logger
	timeNow  func() time.Time

	// deliverMu serializes listener calls; delivered is the sequence of the
	// newest frame handed to listeners.
	deliverMu sync.Mutex
	delivered uint64

	mu        sync.Mutex
	seq       uint64
	rng       Random
	mode      domain.Mode
	params    domain.Params
	anim      *Animator
	volume    []float64
	tick      *tickHandle
	ticks     int
	runTicks  int
	runFees   float64
	runStart  time.Time
	closed    bool
	endedRun  *domain.RunRecord
	listeners map[int]func(domain.Frame)
	nextID    int
	onRunEnd  func(domain.RunRecord)
}

func NewSimulator(id string, cfg SimulatorConfig, rng Random, logger *zap.Logger) *Simulator {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = DefaultTickInterval
	}
	if cfg.Params.Validate() != nil {
		cfg.Params = domain.DefaultParams()
	}
	if rng == nil {
		rng = NewRandom(0)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Simulator{
		id:        id,
		interval:  cfg.TickInterval,
		logger:    logger,
		timeNow:   time.Now,
		rng:       rng,
		params:    cfg.Params,
		listeners: make(map[int]func(domain.Frame)),
	}
	s.rebuild()
	return s
}

func (s *Simulator) ID() string {
	return s.id
}

// OnFrame registers a listener called with a fresh frame after every change.
// Listeners run outside the simulator lock, one at a time and in change order;
// a frame older than one already delivered is skipped. A listener may read
// Frame but must not mutate the simulator. The returned func unregisters it.
func (s *Simulator) OnFrame(fn func(domain.Frame)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// Watched reports whether any frame listener is registered.
func (s *Simulator) Watched() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.listeners) > 0
}

// OnRunEnd registers the callback receiving a summary whenever a run with at
// least one tick stops.
func (s *Simulator) OnRunEnd(fn func(domain.RunRecord)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onRunEnd = fn
}

func (s *Simulator) SetMode(m domain.Mode) error {
	return s.mutate(func() error {
		if err := s.unlocked(false); err != nil {
			return err
		}
		s.mode = m
		s.rebuild()
		return nil
	})
}

func (s *Simulator) SetBinCount(n int) error {
	return s.mutate(func() error {
		if err := s.unlocked(true); err != nil {
			return err
		}
		s.params.BinCount = domain.ClampBinCount(n)
		s.rebuild()
		return nil
	})
}

func (s *Simulator) SetAmount(v float64) error {
	return s.mutate(func() error {
		if err := s.unlocked(true); err != nil {
			return err
		}
		s.params.Amount = domain.ClampAmount(v)
		s.rebuild()
		return nil
	})
}

func (s *Simulator) SetSolPercent(p int) error {
	return s.mutate(func() error {
		if err := s.unlocked(true); err != nil {
			return err
		}
		s.params.SolPercent = domain.ClampSolPercent(p)
		s.rebuild()
		return nil
	})
}

// SetTokenPercent sets the token side of the split; the SOL side follows.
func (s *Simulator) SetTokenPercent(p int) error {
	return s.SetSolPercent(100 - domain.ClampSolPercent(p))
}

// Start enters the running state with the wave at the mode's entry point.
func (s *Simulator) Start() error {
	return s.mutate(func() error {
		if s.closed {
			return fmt.Errorf("simulator %s is closed", s.id)
		}
		if s.mode == domain.ModeNone {
			return domain.ErrNoMode
		}
		if s.anim.Wave.Animating {
			return nil
		}
		s.anim.Rewind()
		s.anim.Wave.Animating = true
		s.runTicks, s.runFees = 0, 0
		s.runStart = s.timeNow()
		s.arm()
		s.logger.Debug("Animation started",
			zap.String("session", s.id),
			zap.String("mode", s.mode.String()),
			zap.Int("bins", s.params.BinCount))
		return nil
	})
}

// Pause stops the animation. No tick mutates the state after Pause returns.
func (s *Simulator) Pause() error {
	return s.mutate(func() error {
		s.stop()
		return nil
	})
}

func (s *Simulator) Toggle() error {
	s.mu.Lock()
	running := s.anim.Wave.Animating
	s.mu.Unlock()
	if running {
		return s.Pause()
	}
	return s.Start()
}

// Reset stops the animation, clears the fee and returns to the welcome state.
// Bin count and amount are kept.
func (s *Simulator) Reset() error {
	return s.mutate(func() error {
		s.stop()
		s.mode = domain.ModeNone
		s.params.SolPercent = domain.DefaultSolPercent
		s.rebuild()
		s.anim.Wave = domain.WaveState{Position: 0, Direction: domain.Forward}
		return nil
	})
}

// Tick advances the wave once if running. It is what the scheduled timer
// calls; it may also be called directly to step a running simulator.
func (s *Simulator) Tick() bool {
	return s.mutate(func() error {
		if !s.step() {
			return errIdle
		}
		return nil
	}) == nil
}

// Close stops the animation and drops all listeners.
func (s *Simulator) Close() {
	s.mu.Lock()
	s.stop()
	rec := s.endedRun
	s.endedRun = nil
	onRunEnd := s.onRunEnd
	s.closed = true
	s.listeners = make(map[int]func(domain.Frame))
	s.mu.Unlock()

	if rec != nil && onRunEnd != nil {
		onRunEnd(*rec)
	}
}

func (s *Simulator) Frame() domain.Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frame()
}

// Animating reports whether a run is in progress.
func (s *Simulator) Animating() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.anim.Wave.Animating
}

// Apply runs a wire command.
func (s *Simulator) Apply(cmd domain.Command) error {
	switch cmd.Op {
	case domain.OpMode:
		m, err := domain.ParseMode(cmd.Mode)
		if err != nil {
			return err
		}
		return s.SetMode(m)
	case domain.OpBins:
		return s.SetBinCount(int(cmd.Value))
	case domain.OpAmount:
		return s.SetAmount(cmd.Value)
	case domain.OpSol:
		return s.SetSolPercent(int(cmd.Value))
	case domain.OpToken:
		return s.SetTokenPercent(int(cmd.Value))
	case domain.OpStart:
		return s.Start()
	case domain.OpPause:
		return s.Pause()
	case domain.OpToggle:
		return s.Toggle()
	case domain.OpReset:
		return s.Reset()
	}
	return fmt.Errorf("%w: %q", domain.ErrUnknownCommand, cmd.Op)
}

// mutate runs fn under the lock, then notifies the run-end callback and the
// listeners outside of it. Each frame takes a sequence number under the lock
// so concurrent mutations cannot deliver out of order.
func (s *Simulator) mutate(fn func() error) error {
	s.mu.Lock()
	if err := fn(); err != nil {
		s.mu.Unlock()
		return err
	}
	rec := s.endedRun
	s.endedRun = nil
	s.seq++
	seq := s.seq
	frame := s.frame()
	listeners := make([]func(domain.Frame), 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	onRunEnd := s.onRunEnd
	s.mu.Unlock()

	if rec != nil && onRunEnd != nil {
		onRunEnd(*rec)
	}
	s.deliver(seq, frame, listeners)
	return nil
}

func (s *Simulator) deliver(seq uint64, frame domain.Frame, listeners []func(domain.Frame)) {
	s.deliverMu.Lock()
	defer s.deliverMu.Unlock()
	if seq <= s.delivered {
		s.logger.Debug("Stale frame skipped",
			zap.String("session", s.id),
			zap.Uint64("seq", seq),
			zap.Uint64("delivered", s.delivered))
		return
	}
	s.delivered = seq
	for _, l := range listeners {
		l(frame)
	}
}

// unlocked rejects structural changes while running; needMode additionally
// requires a selected strategy.
func (s *Simulator) unlocked(needMode bool) error {
	if s.anim.Wave.Animating {
		return domain.ErrInputsLocked
	}
	if needMode && s.mode == domain.ModeNone {
		return domain.ErrNoMode
	}
	return nil
}

// rebuild regenerates the bars and rewinds the wave, keeping the fee.
func (s *Simulator) rebuild() {
	fee := 0.0
	if s.anim != nil {
		fee = s.anim.Wave.AccumulatedFee
	}
	bars := Generate(s.mode, s.params, s.rng)
	s.volume = GenerateVolume(len(bars), s.rng)
	s.anim = NewAnimator(s.mode, s.params, bars, s.rng)
	s.anim.Wave.AccumulatedFee = fee
}

func (s *Simulator) arm() {
	s.tick = schedule(s.interval, s.fire)
}

// fire is the scheduled tick. A handle disarmed by stop is stale and does
// nothing, even if its timer already fired.
func (s *Simulator) fire(h *tickHandle) {
	_ = s.mutate(func() error {
		if s.tick != h || !s.step() {
			return errIdle
		}
		s.arm()
		return nil
	})
}

func (s *Simulator) step() bool {
	if !s.anim.Wave.Animating {
		return false
	}
	s.runFees += s.anim.Step()
	s.runTicks++
	s.ticks++
	return true
}

// stop disarms the pending tick and ends the run, keeping its summary for the
// run-end callback when it made progress.
func (s *Simulator) stop() {
	s.tick.cancel()
	s.tick = nil
	if !s.anim.Wave.Animating {
		return
	}
	s.anim.Wave.Animating = false
	if s.runTicks > 0 {
		s.endedRun = s.record(s.runStart, s.runTicks, s.runFees)
	}
	s.runTicks, s.runFees = 0, 0
}

func (s *Simulator) record(start time.Time, ticks int, fees float64) *domain.RunRecord {
	return &domain.RunRecord{
		SessionID:  s.id,
		Mode:       s.mode,
		BinCount:   s.params.BinCount,
		Amount:     s.params.Amount,
		SolPercent: s.params.SolPercent,
		Ticks:      ticks,
		Fees:       fees,
		StartedAt:  start,
		EndedAt:    s.timeNow(),
	}
}

func (s *Simulator) frame() domain.Frame {
	w := s.anim.Wave
	views := make([]domain.BarView, len(s.anim.Bars))
	for i, b := range s.anim.Bars {
		views[i] = domain.BarView{
			Bar: b,
			Color: BarColor(ColorInput{
				Mode:      s.mode,
				Index:     i,
				Position:  w.Position,
				Animating: w.Animating,
				Params:    s.params,
			}).Hex(),
			Active: w.Animating && i == w.Position,
			Volume: s.volume[i],
		}
	}
	f := domain.Frame{
		Mode:         s.mode,
		Heading:      s.mode.Heading(),
		Label:        s.mode.Label(),
		Params:       s.params,
		TokenPercent: s.params.TokenPercent(),
		AmountLabel:  FormatAmount(s.mode, s.params.Amount),
		Bars:         views,
		Wave:         w,
		Fee:          FormatFee(w.AccumulatedFee),
		Locked:       w.Animating || s.mode == domain.ModeNone,
		Ticks:        s.ticks,
	}
	if s.mode.UsesSplit() {
		f.SplitHint = s.mode.SplitHint()
	}
	return f
}

package tui

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/vitos/lp_wave/internal/domain"
	"github.com/vitos/lp_wave/internal/infrastructure/clipboard"
	"github.com/vitos/lp_wave/internal/infrastructure/sound"
	"github.com/vitos/lp_wave/internal/usecase"
	"go.uber.org/zap"
)

const (
	statusTTL   = 2 * time.Second
	springFreq  = 8.0
	springDamp  = 0.9
	defaultFPS  = 30
	binStep     = domain.BinCountStep
	splitStep   = domain.SplitStep
	amountDelta = domain.AmountStep
)

type Options struct {
	FPS             int
	BannerText      string
	BannerSpeed     float64
	BannerDirection string
	DonationAddress string
	Trail           bool
}

// App renders one simulator on a terminal screen and maps keys to commands.
type App struct {
	screen    tcell.Screen
	sim       *usecase.Simulator
	opts      Options
	logger    *zap.Logger
	sound     sound.Player
	clipboard clipboard.Clipboard
	timeNow   func() time.Time

	frames  chan domain.Frame
	frame   domain.Frame
	springs springField
	marquee *usecase.Marquee
	trail   *usecase.CursorTrail
	started time.Time

	status      string
	statusUntil time.Time
}

func NewApp(screen tcell.Screen, sim *usecase.Simulator, opts Options, player sound.Player, clip clipboard.Clipboard, logger *zap.Logger) *App {
	if opts.FPS <= 0 {
		opts.FPS = defaultFPS
	}
	if player == nil {
		player = sound.Nop()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &App{
		screen:    screen,
		sim:       sim,
		opts:      opts,
		logger:    logger,
		sound:     player,
		clipboard: clip,
		timeNow:   time.Now,
		frames:    make(chan domain.Frame, 1),
		springs:   newSpringField(opts.FPS, springFreq, springDamp),
		marquee:   usecase.NewMarquee(opts.BannerText, opts.BannerSpeed, opts.BannerDirection),
	}
	if opts.Trail {
		a.trail = usecase.NewCursorTrail(terminalTrail(), usecase.NewRandom(0))
	}
	a.started = a.timeNow()
	a.setFrame(sim.Frame())
	return a
}

// terminalTrail scales the pointer trail down to terminal cells.
func terminalTrail() usecase.TrailConfig {
	cfg := usecase.DefaultTrailConfig()
	cfg.Radius = 4
	cfg.MinDistance = 2
	return cfg
}

// Run draws at the configured frame rate until the user quits or ctx ends.
func (a *App) Run(ctx context.Context) error {
	unsubscribe := a.sim.OnFrame(a.pushFrame)
	defer unsubscribe()

	a.screen.EnableMouse()
	ticker := time.NewTicker(time.Second / time.Duration(a.opts.FPS))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-eventChan:
			if !a.handleEvent(ev) {
				return nil
			}

		case f := <-a.frames:
			if f.Ticks > a.frame.Ticks && f.Wave.Animating {
				a.sound.Blip()
			}
			a.setFrame(f)

		case <-ticker.C:
			a.marquee.Step()
			if a.trail != nil {
				a.trail.Expire()
			}
			a.draw()
		}
	}
}

// pushFrame keeps only the newest pending frame. It runs on the simulator's
// tick goroutine and never blocks it.
func (a *App) pushFrame(f domain.Frame) {
	for {
		select {
		case a.frames <- f:
			return
		default:
		}
		select {
		case <-a.frames:
		default:
		}
	}
}

func (a *App) setFrame(f domain.Frame) {
	a.frame = f
	a.springs.resize(len(f.Bars))
}

// handleEvent applies one terminal event and reports whether to keep running.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		if a.trail != nil {
			x, y := ev.Position()
			a.trail.Move(float64(x), float64(y))
		}
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	var err error
	// queued frames may lag; step from the simulator's current params
	p := a.sim.Frame().Params

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		err = a.sim.Toggle()
	case tcell.KeyLeft:
		err = a.sim.SetBinCount(p.BinCount - binStep)
	case tcell.KeyRight:
		err = a.sim.SetBinCount(p.BinCount + binStep)
	case tcell.KeyUp:
		err = a.sim.SetAmount(p.Amount + amountDelta)
	case tcell.KeyDown:
		err = a.sim.SetAmount(p.Amount - amountDelta)
	case tcell.KeyRune:
		switch r := ev.Rune(); {
		case r == 'q':
			return false
		case r == ' ':
			err = a.sim.Toggle()
		case r >= '1' && r <= '9':
			if i := int(r - '1'); i < len(domain.Modes) {
				err = a.sim.SetMode(domain.Modes[i])
			}
		case r == '[':
			err = a.sim.SetSolPercent(p.SolPercent - splitStep)
		case r == ']':
			err = a.sim.SetSolPercent(p.SolPercent + splitStep)
		case r == 'r':
			err = a.sim.Reset()
		case r == 'y':
			a.copyDonation()
		}
	}

	if err != nil {
		a.setStatus(err.Error())
	}
	return true
}

func (a *App) copyDonation() {
	if a.clipboard == nil || a.opts.DonationAddress == "" {
		return
	}
	if err := a.clipboard.Copy(a.opts.DonationAddress); err != nil {
		a.logger.Warn("Failed to copy donation address", zap.Error(err))
		a.setStatus("copy failed")
		return
	}
	a.setStatus("address copied")
}

func (a *App) setStatus(msg string) {
	a.status = msg
	a.statusUntil = a.timeNow().Add(statusTTL)
}

// Status is the transient message shown under the chart, if still current.
func (a *App) Status() string {
	if a.timeNow().After(a.statusUntil) {
		return ""
	}
	return a.status
}

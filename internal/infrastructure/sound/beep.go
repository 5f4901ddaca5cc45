package sound

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player plays the short blip accompanying each fee tick.
type Player interface {
	Blip()
	Close()
}

type nopPlayer struct{}

func (nopPlayer) Blip()  {}
func (nopPlayer) Close() {}

// Nop returns a silent Player.
func Nop() Player {
	return nopPlayer{}
}

type beepPlayer struct {
	freq     float64
	duration time.Duration
}

// NewBeepPlayer initializes the speaker. Callers fall back to Nop on error;
// the demo runs fine without sound.
func NewBeepPlayer(freq float64, duration time.Duration) (Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &beepPlayer{freq: freq, duration: duration}, nil
}

func (p *beepPlayer) Blip() {
	sine, err := generators.SineTone(sampleRate, p.freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(p.duration), sine))
}

func (p *beepPlayer) Close() {
	speaker.Close()
}

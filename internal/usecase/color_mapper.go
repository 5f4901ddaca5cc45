package usecase

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/vitos/lp_wave/internal/domain"
)

// ColorInput is everything the color of one bar depends on.
type ColorInput struct {
	Mode      domain.Mode
	Index     int
	Position  int
	Animating bool
	Params    domain.Params
}

var white = colorful.Color{R: 1, G: 1, B: 1}

// BarColor maps a bar to its display color.
func BarColor(in ColorInput) domain.Color {
	if !in.Animating {
		return idleColor(in)
	}
	if in.Index == in.Position {
		return domain.ColorHighlight
	}
	if in.Mode == domain.ModeAgents {
		return agentsSweepColor(in)
	}
	if c, ok := sweptColor(in); ok {
		return c
	}
	return idleColor(in)
}

// colorFunc colors an idle bar; sweepFunc reports the color of a bar the wave
// has already covered.
type (
	colorFunc func(in ColorInput) domain.Color
	sweepFunc func(in ColorInput) (domain.Color, bool)
)

var idleColors = map[domain.Mode]colorFunc{
	domain.ModeBid:    solid(domain.ColorOrange),
	domain.ModeAsk:    solid(domain.ColorPurple),
	domain.ModeBoth:   bothIdleColor,
	domain.ModeSpots:  solid(domain.ColorSky),
	domain.ModeAgents: agentsIdleColor,
}

var sweepColors = map[domain.Mode]sweepFunc{
	domain.ModeBid:   bidSweep,
	domain.ModeBoth:  bothSweep,
	domain.ModeSpots: spotsSweep,
}

func idleColor(in ColorInput) domain.Color {
	if f, ok := idleColors[in.Mode]; ok {
		return f(in)
	}
	return domain.ColorViolet
}

func sweptColor(in ColorInput) (domain.Color, bool) {
	if f, ok := sweepColors[in.Mode]; ok {
		return f(in)
	}
	return domain.ColorBlue, in.Index < in.Position
}

func solid(c domain.Color) colorFunc {
	return func(ColorInput) domain.Color { return c }
}

func bothIdleColor(in ColorInput) domain.Color {
	if float64(in.Index) < exactCenter(in.Params) {
		return domain.ColorOrange
	}
	return domain.ColorPurple
}

func agentsIdleColor(in ColorInput) domain.Color {
	center := in.Params.Center()
	if in.Index < center {
		return domain.ColorBlue
	}
	return toDomain(rightGradient(in.Index, center, in.Params.BinCount))
}

// bidSweep covers everything right of the wave, which enters from the right.
func bidSweep(in ColorInput) (domain.Color, bool) {
	return domain.ColorBlue, in.Index > in.Position
}

// bothSweep covers from the wave towards the center on the left half, and up
// to the wave on the right half.
func bothSweep(in ColorInput) (domain.Color, bool) {
	c := exactCenter(in.Params)
	if float64(in.Index) < c {
		return domain.ColorBlue, float64(in.Position) < c && in.Index >= in.Position
	}
	return domain.ColorBlue, in.Index <= in.Position
}

func spotsSweep(in ColorInput) (domain.Color, bool) {
	return domain.ColorIndigo, in.Index < in.Position
}

// agentsSweepColor blends the left/right gradients with the sweep color by the
// wave's distance from center.
func agentsSweepColor(in ColorInput) domain.Color {
	i, pos := in.Index, in.Position
	center := in.Params.Center()
	waveLeft := pos < center

	if i < center {
		if waveLeft && i >= pos {
			return toDomain(leftGradient(i, center))
		}
		return domain.ColorBlue
	}

	c := rightGradient(i, center, in.Params.BinCount)
	if !waveLeft && i <= pos {
		c = fromDomain(domain.ColorBlue)
	}
	if waveLeft {
		intensity := 1 + math.Min(float64(center-pos)/float64(center), 0.5)
		c = c.BlendRgb(white, (intensity-1)*0.3)
	}
	return toDomain(c)
}

// leftGradient runs blue at the left edge to orange at the center.
func leftGradient(i, center int) colorful.Color {
	t := 0.0
	if center > 0 {
		t = float64(i) / float64(center)
	}
	return fromDomain(domain.ColorBlue).BlendRgb(fromDomain(domain.ColorOrange), t)
}

// rightGradient runs orange at the center to purple at the right edge.
func rightGradient(i, center, n int) colorful.Color {
	t := 0.0
	if n-center > 0 {
		t = float64(i-center) / float64(n-center)
	}
	return fromDomain(domain.ColorOrange).BlendRgb(fromDomain(domain.ColorPurple), t)
}

func exactCenter(p domain.Params) float64 {
	return float64(p.SolPercent) / 100 * float64(p.BinCount)
}

func fromDomain(c domain.Color) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func toDomain(c colorful.Color) domain.Color {
	r, g, b := c.Clamped().RGB255()
	return domain.Color{R: r, G: g, B: b}
}

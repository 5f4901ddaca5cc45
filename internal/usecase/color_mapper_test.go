package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vitos/lp_wave/internal/domain"
	"github.com/vitos/lp_wave/internal/usecase"
)

func TestBarColor_Idle(t *testing.T) {
	p := params(20, 5000, 50)
	tests := []struct {
		name  string
		mode  domain.Mode
		index int
		want  domain.Color
	}{
		{"None", domain.ModeNone, 3, domain.ColorViolet},
		{"Combined", domain.ModeCombined, 3, domain.ColorViolet},
		{"Bid", domain.ModeBid, 3, domain.ColorOrange},
		{"Ask", domain.ModeAsk, 3, domain.ColorPurple},
		{"Spots", domain.ModeSpots, 3, domain.ColorSky},
		{"Both left of center", domain.ModeBoth, 9, domain.ColorOrange},
		{"Both at center", domain.ModeBoth, 10, domain.ColorPurple},
		{"Agents left of center", domain.ModeAgents, 4, domain.ColorBlue},
		{"Agents at center", domain.ModeAgents, 10, domain.ColorOrange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := usecase.BarColor(usecase.ColorInput{Mode: tt.mode, Index: tt.index, Position: 10, Params: p})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBarColor_Animating(t *testing.T) {
	p := params(20, 5000, 50)
	tests := []struct {
		name     string
		mode     domain.Mode
		index    int
		position int
		want     domain.Color
	}{
		{"Wave bar is highlighted", domain.ModeAsk, 7, 7, domain.ColorHighlight},
		{"Bid swept behind the wave", domain.ModeBid, 15, 10, domain.ColorBlue},
		{"Bid ahead of the wave", domain.ModeBid, 5, 10, domain.ColorOrange},
		{"Ask swept", domain.ModeAsk, 5, 10, domain.ColorBlue},
		{"Ask ahead", domain.ModeAsk, 15, 10, domain.ColorPurple},
		{"Spots swept", domain.ModeSpots, 5, 10, domain.ColorIndigo},
		{"Spots ahead", domain.ModeSpots, 15, 10, domain.ColorSky},
		{"Both left wave, between wave and center", domain.ModeBoth, 7, 5, domain.ColorBlue},
		{"Both left wave, outside", domain.ModeBoth, 3, 5, domain.ColorOrange},
		{"Both left wave, right side", domain.ModeBoth, 12, 5, domain.ColorPurple},
		{"Both right wave, covered", domain.ModeBoth, 12, 15, domain.ColorBlue},
		{"Both right wave, outside", domain.ModeBoth, 17, 15, domain.ColorPurple},
		{"Both right wave, left side", domain.ModeBoth, 7, 15, domain.ColorOrange},
		{"Agents right wave, left side", domain.ModeAgents, 5, 15, domain.ColorBlue},
		{"Agents right wave, covered", domain.ModeAgents, 12, 15, domain.ColorBlue},
		{"Agents left wave, outside", domain.ModeAgents, 3, 5, domain.ColorBlue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := usecase.BarColor(usecase.ColorInput{
				Mode:      tt.mode,
				Index:     tt.index,
				Position:  tt.position,
				Animating: true,
				Params:    p,
			})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBarColor_AgentsGradients(t *testing.T) {
	p := params(20, 5000, 50)
	color := func(index, position int, animating bool) domain.Color {
		return usecase.BarColor(usecase.ColorInput{
			Mode: domain.ModeAgents, Index: index, Position: position, Animating: animating, Params: p,
		})
	}

	// between a left wave and the center the left gradient shows
	between := color(7, 5, true)
	assert.NotEqual(t, domain.ColorBlue, between)
	assert.NotEqual(t, domain.ColorOrange, between)

	// a left wave brightens the right half
	idle := color(15, 0, false)
	lit := color(15, 5, true)
	assert.GreaterOrEqual(t, lit.R, idle.R)
	assert.GreaterOrEqual(t, lit.G, idle.G)
	assert.GreaterOrEqual(t, lit.B, idle.B)
	assert.NotEqual(t, idle, lit)

	// the right gradient ends towards purple
	edge := color(19, 0, false)
	assert.Greater(t, edge.B, domain.ColorOrange.B)
}

func TestColorHex(t *testing.T) {
	assert.Equal(t, "#F97316", domain.ColorOrange.Hex())
	assert.Equal(t, "#FCD34D", domain.ColorHighlight.Hex())
}

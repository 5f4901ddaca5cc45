package tui

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/vitos/lp_wave/internal/domain"
	"github.com/vitos/lp_wave/internal/usecase"
)

const (
	headerRows = 4
	footerRows = 4
	help       = "enter start/pause  1-6 strategy  ←/→ bins  ↑/↓ amount  [/] split  r reset  y copy  q quit"
)

var blocks = []rune(" ▁▂▃▄▅▆▇█")

var (
	styleBanner = tcell.StyleDefault.Foreground(rgb(domain.ColorHighlight))
	styleTitle  = tcell.StyleDefault.Bold(true)
	styleFee    = tcell.StyleDefault.Foreground(rgb(domain.ColorHighlight)).Bold(true)
	styleDim    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleError  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleTrail  = tcell.StyleDefault.Foreground(rgb(domain.ColorViolet))
)

func rgb(c domain.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// hexColor parses a frame color, falling back to the default color.
func hexColor(s string) tcell.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return tcell.ColorDefault
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func (a *App) draw() {
	a.screen.Clear()
	w, h := a.screen.Size()
	f := a.frame

	drawText(a.screen, 0, 0, w, styleBanner, a.marquee.Window(w))

	title := f.Heading
	if f.Mode != domain.ModeNone {
		title += "  ·  " + f.Label
	}
	drawText(a.screen, 1, 1, w, styleTitle, title)
	fee := "fees " + f.Fee
	drawText(a.screen, w-len([]rune(fee))-1, 1, w, styleFee, fee)

	params := fmt.Sprintf("bins %d   amount %s   split %d/%d   ticks %d",
		f.Params.BinCount, f.AmountLabel, f.Params.SolPercent, f.TokenPercent, f.Ticks)
	if f.SplitHint != "" {
		params += "   " + f.SplitHint
	}
	drawText(a.screen, 1, 2, w, styleDim, params)

	chartH := h - headerRows - footerRows
	if chartH > 0 {
		a.drawBars(w, chartH)
	}

	switch status := a.Status(); {
	case status != "":
		drawText(a.screen, 1, h-2, w, styleError, status)
	case f.Mode == domain.ModeNone:
		dots := usecase.DotsAt(a.timeNow().Sub(a.started))
		drawText(a.screen, 1, h-2, w, styleDim, "press 1-6 to pick a strategy"+dots)
	case f.Locked:
		drawText(a.screen, 1, h-2, w, styleDim, "inputs locked while animating")
	}
	drawText(a.screen, 1, h-1, w, styleDim, help)

	if a.trail != nil {
		for _, p := range a.trail.Points() {
			x, y := int(math.Round(p.X)), int(math.Round(p.Y))
			if x >= 0 && x < w && y >= 0 && y < h {
				a.screen.SetContent(x, y, []rune(p.Icon)[0], nil, styleTrail)
			}
		}
	}

	a.screen.Show()
}

// drawBars renders the field bottom-up with eighth blocks, easing each bar
// towards its frame height.
func (a *App) drawBars(w, chartH int) {
	bars := a.frame.Bars
	n := len(bars)
	if n == 0 {
		return
	}
	colW := max(w/n, 1)
	left := max((w-colW*n)/2, 0)
	bottom := headerRows + chartH - 1

	for i, bar := range bars {
		x0 := left + i*colW
		if x0 >= w {
			break
		}
		height := math.Max(0, math.Min(100, a.springs.step(i, bar.Height)))
		eighths := int(math.Round(height / 100 * float64(chartH*8)))
		style := tcell.StyleDefault.Foreground(hexColor(bar.Color))
		barW := colW
		if colW > 2 {
			barW = colW - 1
		}

		for row := 0; row < chartH && eighths > 0; row++ {
			r := blocks[8]
			if eighths < 8 {
				r = blocks[eighths]
			}
			for dx := 0; dx < barW && x0+dx < w; dx++ {
				a.screen.SetContent(x0+dx, bottom-row, r, nil, style)
			}
			eighths -= 8
		}

		if bar.Active {
			a.screen.SetContent(x0, bottom+1, '▲', nil, styleFee)
		}
	}
}

func drawText(s tcell.Screen, x, y, maxX int, style tcell.Style, text string) {
	for _, r := range text {
		if x >= maxX {
			return
		}
		if x >= 0 {
			s.SetContent(x, y, r, nil, style)
		}
		x++
	}
}

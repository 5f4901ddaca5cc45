package usecase

import (
	"math"
	"strings"
	"time"
	"unicode"
)

const nbsp = '\u00a0'

// Marquee scrolls a looping line of text, one step per frame.
type Marquee struct {
	text    []rune
	speed   float64
	offset  float64
	spacing float64
}

// NewMarquee normalizes the text to end with exactly one non-breaking space so
// repetitions stay separated. direction is "left" or "right".
func NewMarquee(text string, speed float64, direction string) *Marquee {
	text = strings.TrimRightFunc(text, func(r rune) bool { return unicode.IsSpace(r) || r == nbsp })
	runes := append([]rune(text), nbsp)
	if direction != "right" {
		speed = -speed
	}
	m := &Marquee{text: runes, speed: speed, spacing: float64(len(runes))}
	m.offset = -m.spacing
	return m
}

func (m *Marquee) Text() string {
	return string(m.text)
}

// Offset is where the first repetition starts, in (-spacing, 0].
func (m *Marquee) Offset() float64 {
	return m.offset
}

// Step moves the text by one frame and wraps the offset.
func (m *Marquee) Step() {
	m.offset += m.speed
	if m.offset <= -m.spacing {
		m.offset += m.spacing
	}
	if m.offset > 0 {
		m.offset -= m.spacing
	}
}

// Window renders the visible part of the loop for a line of width cells.
func (m *Marquee) Window(width int) string {
	if width <= 0 {
		return ""
	}
	copies := int(math.Ceil(float64(width)/m.spacing)) + 2
	total := []rune(strings.Repeat(string(m.text), copies))
	start := int(math.Floor(-m.offset))
	out := total[start : start+width]
	return strings.ReplaceAll(string(out), string(nbsp), " ")
}

// DotInterval is how often the "Coming Soon" dots advance.
const DotInterval = 500 * time.Millisecond

// NextDots cycles "" -> "." -> ".." -> "..." -> "".
func NextDots(prev string) string {
	switch prev {
	case "":
		return "."
	case ".":
		return ".."
	case "..":
		return "..."
	default:
		return ""
	}
}

// DotsAt is the dot suffix after elapsed time.
func DotsAt(elapsed time.Duration) string {
	if elapsed < 0 {
		return ""
	}
	return strings.Repeat(".", int(elapsed/DotInterval)%4)
}

package usecase_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vitos/lp_wave/internal/usecase"
)

func TestMarquee_NormalizesText(t *testing.T) {
	m := usecase.NewMarquee("STILL IN DEVELOPMENT  \u00a0 ", 1, "right")
	assert.Equal(t, "STILL IN DEVELOPMENT\u00a0", m.Text())
}

func TestMarquee_StepWraps(t *testing.T) {
	m := usecase.NewMarquee("abcd", 1, "right")
	spacing := float64(len([]rune(m.Text())))

	for i := 0; i < 23; i++ {
		m.Step()
		assert.Greater(t, m.Offset(), -spacing)
		assert.LessOrEqual(t, m.Offset(), 0.0)
	}

	left := usecase.NewMarquee("abcd", 2, "left")
	for i := 0; i < 23; i++ {
		left.Step()
		assert.Greater(t, left.Offset(), -spacing)
		assert.LessOrEqual(t, left.Offset(), 0.0)
	}
}

func TestMarquee_Window(t *testing.T) {
	m := usecase.NewMarquee("ab", 1, "left")
	w := m.Window(7)

	assert.Len(t, []rune(w), 7)
	assert.NotContains(t, w, "\u00a0")
	assert.Equal(t, "ab ab a", w)
	assert.Empty(t, m.Window(0))

	m.Step()
	assert.Equal(t, "b ab ab", m.Window(7))
}

func TestDots(t *testing.T) {
	seq := []string{""}
	for i := 0; i < 4; i++ {
		seq = append(seq, usecase.NextDots(seq[len(seq)-1]))
	}
	assert.Equal(t, []string{"", ".", "..", "...", ""}, seq)

	assert.Equal(t, "", usecase.DotsAt(0))
	assert.Equal(t, ".", usecase.DotsAt(usecase.DotInterval))
	assert.Equal(t, "...", usecase.DotsAt(3*usecase.DotInterval+time.Millisecond))
	assert.Equal(t, "", usecase.DotsAt(4*usecase.DotInterval))
	assert.Equal(t, 3, strings.Count(usecase.DotsAt(7*usecase.DotInterval), "."))
}

package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTowards(t *testing.T) {
	assert.Equal(t, 4, towards(3, 7))
	assert.Equal(t, 6, towards(7, 3))
	assert.Equal(t, 5, towards(5, 5))
}

func TestBounceTarget(t *testing.T) {
	b := &bounce{center: 10, last: 19}
	assert.Equal(t, 14, b.target(50))
	assert.Equal(t, 18, b.target(99))
	assert.Equal(t, 5, b.target(-50))
	assert.Equal(t, 1, b.target(-90))
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapDegrees(t *testing.T) {
	assert.InDelta(t, 0.0, WrapDegrees(360), 1e-9)
	assert.InDelta(t, -90.0, WrapDegrees(270), 1e-9)
	assert.InDelta(t, 90.0, WrapDegrees(-270), 1e-9)
	assert.InDelta(t, -180.0, WrapDegrees(180), 1e-9)
}

func TestLerpAngleTakesShortestPath(t *testing.T) {
	assert.InDelta(t, 175.0, LerpAngle(170, -170, 0.25), 1e-9)
	assert.InDelta(t, -175.0, LerpAngle(170, -170, 0.75), 1e-9)
	assert.InDelta(t, 5.0, LerpAngle(0, 10, 0.5), 1e-9)
}

func TestClampAndLerp(t *testing.T) {
	assert.Equal(t, 1.0, Clamp(3, -1, 1))
	assert.Equal(t, -1.0, Clamp(-3, -1, 1))
	assert.Equal(t, 2.5, Lerp(0, 10, 0.25))
}

func TestPRNGIsReproducible(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.NormFloat64(), b.NormFloat64())
		v := a.IntRange(8, 20)
		assert.Equal(t, v, b.IntRange(8, 20))
		assert.GreaterOrEqual(t, v, 8)
		assert.LessOrEqual(t, v, 20)
	}
}

package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedStep_Advance(t *testing.T) {
	fs := NewFixedStep(10)
	start := time.Unix(100, 0)

	assert.Equal(t, 1, fs.Advance(start), "first call owes one tick")
	assert.Equal(t, 0, fs.Advance(start.Add(50*time.Millisecond)))
	assert.Equal(t, 1, fs.Advance(start.Add(100*time.Millisecond)))
	assert.Equal(t, 2, fs.Advance(start.Add(300*time.Millisecond)))
}

func TestFixedStep_CatchUpIsCapped(t *testing.T) {
	fs := NewFixedStep(100)
	start := time.Unix(100, 0)
	fs.Advance(start)

	assert.Equal(t, MaxCatchUp, fs.Advance(start.Add(time.Second)))
	assert.Equal(t, 0, fs.Advance(start.Add(time.Second+5*time.Millisecond)))
}

func TestFixedStep_ClockGoingBackwards(t *testing.T) {
	fs := NewFixedStep(10)
	start := time.Unix(100, 0)
	fs.Advance(start)

	assert.Equal(t, 0, fs.Advance(start.Add(-time.Second)))
	assert.Equal(t, 1, fs.Advance(start.Add(-time.Second+100*time.Millisecond)))
}

func TestFixedStep_SetTPS(t *testing.T) {
	fs := NewFixedStep(0)
	assert.Equal(t, 60, fs.TPS())

	fs.SetTPS(25)
	assert.Equal(t, 25, fs.TPS())
	assert.Equal(t, 40*time.Millisecond, fs.Interval())
}

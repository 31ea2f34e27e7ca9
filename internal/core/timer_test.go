package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestControlBurst(t *testing.T) {
	c := NewControl()
	assert.True(t, c.Running())
	assert.True(t, c.Next())

	c.Toggle()
	assert.False(t, c.Running())
	assert.False(t, c.Next())

	c.Burst(2)
	assert.True(t, c.Next())
	assert.True(t, c.Next())
	assert.False(t, c.Next())
}

func TestFixedStepPacing(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }
	assert.Equal(t, 100*time.Millisecond, fs.Interval())

	assert.True(t, fs.ShouldStep(), "first tick is immediate")
	assert.False(t, fs.ShouldStep())

	clock = clock.Add(250 * time.Millisecond)
	assert.True(t, fs.ShouldStep())
	assert.True(t, fs.ShouldStep())
	assert.False(t, fs.ShouldStep())

	fs.SetTPS(0)
	assert.Equal(t, time.Second/60, fs.Interval())
}

func TestFixedStepSetClockRestarts(t *testing.T) {
	clock := time.Unix(100, 0)
	fs := NewFixedStep(4)
	fs.SetClock(func() time.Time { return clock })
	assert.True(t, fs.ShouldStep())
	clock = clock.Add(240 * time.Millisecond)
	assert.False(t, fs.ShouldStep())
	clock = clock.Add(10 * time.Millisecond)
	assert.True(t, fs.ShouldStep())
}

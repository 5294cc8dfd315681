package timing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type MockClock struct {
	time      time.Time
	sleptTime time.Duration
}

func (c *MockClock) Now() time.Time {
	return c.time
}

func (c *MockClock) Sleep(d time.Duration) {
	c.sleptTime = d
}

func (c *MockClock) Advance(d time.Duration) {
	c.time = c.time.Add(d)
}

func TestFpsCount(t *testing.T) {
	clock := &MockClock{time: time.Now()}
	fps := NewFpsWithClock(10, clock, nil)
	fps.BeginFrame()
	clock.Advance(40 * time.Millisecond)
	fps.EndFrame()
	assert.Equal(t, 1, fps.frames)
	assert.Equal(t, 60*time.Millisecond, clock.sleptTime)
}

func TestFpsCountPerSecond(t *testing.T) {
	clock := &MockClock{time: time.Now()}
	var frames float32
	fps := NewFpsWithClock(10, clock, func(framesPerSecond float32) {
		frames = framesPerSecond
	})
	fps.BeginFrame()
	clock.Advance(2 * time.Second)
	fps.EndFrame()
	assert.Equal(t, time.Duration(0), clock.sleptTime)
	assert.Equal(t, float32(0.5), frames)
	assert.Equal(t, 0, fps.frames)
}

func TestFpsDefaultTarget(t *testing.T) {
	fps := NewFpsWithClock(0, &MockClock{}, nil)
	assert.Equal(t, time.Second/60, fps.period)
}

func TestStopwatch(t *testing.T) {
	clock := &MockClock{time: time.Now()}
	sw := NewStopwatch(clock)
	assert.Equal(t, 0.0, sw.Seconds())

	clock.Advance(1500 * time.Millisecond)
	assert.InDelta(t, 1.5, sw.Seconds(), 1e-9)

	clock.Advance(250*time.Millisecond + 700*time.Microsecond)
	assert.InDelta(t, 1.75, sw.Seconds(), 1e-9)

	sw.Reset()
	assert.Equal(t, 0.0, sw.Seconds())
}

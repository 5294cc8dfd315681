package timing

import (
	"time"
)

type Callback func(fps float32)

type Clock interface {
	Now() time.Time
	Sleep(time.Duration)
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

func NewSystemClock() Clock {
	return systemClock{}
}

// Stopwatch measures time since it was started. It is the animation clock.
type Stopwatch struct {
	clock Clock
	start time.Time
}

func NewStopwatch(clock Clock) *Stopwatch {
	if clock == nil {
		clock = systemClock{}
	}
	return &Stopwatch{clock: clock, start: clock.Now()}
}

// Seconds returns the elapsed time in seconds, at millisecond resolution.
func (s *Stopwatch) Seconds() float64 {
	return float64(s.clock.Now().Sub(s.start).Milliseconds()) * 0.001
}

func (s *Stopwatch) Reset() {
	s.start = s.clock.Now()
}

// Fps paces a render loop to a target frame rate and reports the measured
// rate about once a second.
type Fps struct {
	clock    Clock
	frames   int
	period   time.Duration
	refTime  time.Time
	next     time.Time
	callback Callback
}

func NewFps(targetFps int, callback Callback) *Fps {
	return NewFpsWithClock(targetFps, systemClock{}, callback)
}

func NewFpsWithClock(targetFps int, clock Clock, callback Callback) *Fps {
	if targetFps <= 0 {
		targetFps = 60
	}
	if callback == nil {
		callback = func(float32) {}
	}
	return &Fps{
		clock:    clock,
		refTime:  clock.Now(),
		callback: callback,
		period:   time.Second / time.Duration(targetFps),
	}
}

func (fps *Fps) BeginFrame() {
	now := fps.clock.Now()
	fps.next = now.Add(fps.period)
}

func (fps *Fps) EndFrame() {
	now := fps.clock.Now()
	delta := now.Sub(fps.refTime)
	fps.frames = fps.frames + 1
	if delta > time.Second {
		intervalMs := float32(delta.Nanoseconds()) / float32(time.Millisecond.Nanoseconds())
		frameCount := float32(fps.frames) * 1000. / intervalMs
		fps.callback(frameCount)
		fps.refTime = now
		fps.frames = 0
	}
	if fps.next.After(now) {
		fps.clock.Sleep(fps.next.Sub(now))
	}
}

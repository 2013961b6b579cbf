//go:build !quartzclock

package clock

import "time"

// New returns the clock backed by the standard runtime timers. This is the
// backend linked into default builds; see the quartzclock build tag for the
// alternative.
func New() Clock {
	return stdClock{}
}

type stdClock struct{}

func (stdClock) Now() time.Time {
	return time.Now()
}

func (stdClock) Since(t time.Time) time.Duration {
	return time.Since(t)
}

func (stdClock) NewTimer(d time.Duration) Timer {
	return stdTimer{timer: time.NewTimer(d)}
}

type stdTimer struct {
	timer *time.Timer
}

func (t stdTimer) C() <-chan time.Time {
	return t.timer.C
}

func (t stdTimer) Stop() bool {
	return t.timer.Stop()
}

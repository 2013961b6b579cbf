//go:build quartzclock

package clock

import (
	"time"

	"github.com/coder/quartz"
)

// New returns the clock backed by the quartz real clock. Linked instead of
// the standard backend when building with -tags quartzclock.
func New() Clock {
	return quartzClock{clock: quartz.NewReal()}
}

type quartzClock struct {
	clock quartz.Clock
}

func (c quartzClock) Now() time.Time {
	return c.clock.Now()
}

func (c quartzClock) Since(t time.Time) time.Duration {
	return c.clock.Since(t)
}

func (c quartzClock) NewTimer(d time.Duration) Timer {
	return quartzTimer{timer: c.clock.NewTimer(d)}
}

type quartzTimer struct {
	timer *quartz.Timer
}

func (t quartzTimer) C() <-chan time.Time {
	return t.timer.C
}

func (t quartzTimer) Stop() bool {
	return t.timer.Stop()
}

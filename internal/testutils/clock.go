// Package testutils provides test doubles for the clock abstraction.
package testutils

import (
	"sync"
	"testing"
	"time"

	"github.com/coder/quartz"

	"github.com/Jacques-Murray/async-retry/pkg/clock"
)

// NewMockClock creates a quartz mock clock for testing.
func NewMockClock(t testing.TB) *quartz.Mock {
	return quartz.NewMock(t)
}

// ClockWrapper adapts quartz.Mock to the clock.Clock interface.
type ClockWrapper struct {
	Mock *quartz.Mock
}

// NewClockWrapper creates a new ClockWrapper.
func NewClockWrapper(mock *quartz.Mock) *ClockWrapper {
	return &ClockWrapper{Mock: mock}
}

// Now returns the mock's current time.
func (c *ClockWrapper) Now() time.Time {
	return c.Mock.Now()
}

// Since returns the mock time elapsed since t.
func (c *ClockWrapper) Since(t time.Time) time.Duration {
	return c.Mock.Since(t)
}

// NewTimer creates a mock timer that fires when the mock clock is advanced
// past its deadline.
func (c *ClockWrapper) NewTimer(d time.Duration) clock.Timer {
	return &TimerWrapper{timer: c.Mock.NewTimer(d)}
}

// TimerWrapper adapts a quartz timer to the clock.Timer interface.
type TimerWrapper struct {
	timer *quartz.Timer
}

func (t *TimerWrapper) C() <-chan time.Time {
	return t.timer.C
}

func (t *TimerWrapper) Stop() bool {
	return t.timer.Stop()
}

// RecordingClock wraps a clock.Clock and records the duration of every timer
// request, so tests can assert exactly which suspensions a retry session
// performed.
type RecordingClock struct {
	inner clock.Clock

	mu     sync.Mutex
	delays []time.Duration
}

// NewRecordingClock creates a RecordingClock delegating to inner.
func NewRecordingClock(inner clock.Clock) *RecordingClock {
	return &RecordingClock{inner: inner}
}

// Now returns the inner clock's current time.
func (c *RecordingClock) Now() time.Time {
	return c.inner.Now()
}

// Since returns the inner clock's elapsed time since t.
func (c *RecordingClock) Since(t time.Time) time.Duration {
	return c.inner.Since(t)
}

// NewTimer delegates to the inner clock and then records d, so once the
// record is visible the inner timer is guaranteed to exist.
func (c *RecordingClock) NewTimer(d time.Duration) clock.Timer {
	timer := c.inner.NewTimer(d)
	c.mu.Lock()
	c.delays = append(c.delays, d)
	c.mu.Unlock()
	return timer
}

// Delays returns a copy of the recorded timer durations, in request order.
func (c *RecordingClock) Delays() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]time.Duration(nil), c.delays...)
}

package clock

import (
	"context"
	"time"
)

// Clock provides the time operations the retry loop depends on.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
	// Since returns the time elapsed since t.
	Since(t time.Time) time.Duration
	// NewTimer creates a timer that fires once after d.
	NewTimer(d time.Duration) Timer
}

// Timer fires once on its channel after the duration it was created with.
type Timer interface {
	// C returns the channel the firing time is delivered on.
	C() <-chan time.Time
	// Stop prevents the timer from firing and releases its resources. It
	// reports whether the stop happened before the timer fired.
	Stop() bool
}

// Sleep suspends the calling goroutine for at least d, or until ctx is
// done. On cancellation the timer is stopped before returning ctx.Err(), so
// no timer resource outlives the call.
func Sleep(ctx context.Context, c Clock, d time.Duration) error {
	timer := c.NewTimer(d)
	select {
	case <-ctx.Done():
		timer.Stop()
		return ctx.Err()
	case <-timer.C():
		return nil
	}
}

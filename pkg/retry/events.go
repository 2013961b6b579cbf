package retry

import (
	"context"
	"time"
)

// EventHandler receives per-attempt and outcome events from a retry session.
// Handlers are optional; install one with WithEventHandler.
type EventHandler interface {
	// OnFailure is called after every failed attempt.
	OnFailure(ctx context.Context, attempt int, err error)
	// OnBackoff is called just before suspending, with the chosen delay.
	OnBackoff(ctx context.Context, attempt int, delay time.Duration)
	// OnSuccess is called once when an attempt succeeds.
	OnSuccess(ctx context.Context, attempt int, elapsed time.Duration)
	// OnGiveUp is called once when the session stops without a success.
	OnGiveUp(ctx context.Context, attempt int, err error)
}

// Logger is the leveled logging interface the logging event handler writes
// to. Any structured logger with formatted leveled methods satisfies it.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// LoggingEventHandler forwards retry events to a Logger.
type LoggingEventHandler struct {
	logger Logger
}

// NewLoggingEventHandler creates an event handler logging every event.
func NewLoggingEventHandler(logger Logger) *LoggingEventHandler {
	return &LoggingEventHandler{logger: logger}
}

// OnFailure logs a failed attempt.
func (h *LoggingEventHandler) OnFailure(ctx context.Context, attempt int, err error) {
	if h.logger != nil {
		h.logger.Warnf("attempt %d failed: %v", attempt, err)
	}
}

// OnBackoff logs the delay before the next attempt.
func (h *LoggingEventHandler) OnBackoff(ctx context.Context, attempt int, delay time.Duration) {
	if h.logger != nil {
		h.logger.Debugf("attempt %d: backing off %v", attempt, delay)
	}
}

// OnSuccess logs the successful attempt.
func (h *LoggingEventHandler) OnSuccess(ctx context.Context, attempt int, elapsed time.Duration) {
	if h.logger != nil {
		h.logger.Infof("succeeded on attempt %d after %v", attempt, elapsed)
	}
}

// OnGiveUp logs the final failure.
func (h *LoggingEventHandler) OnGiveUp(ctx context.Context, attempt int, err error) {
	if h.logger != nil {
		h.logger.Errorf("gave up after %d attempt(s): %v", attempt, err)
	}
}

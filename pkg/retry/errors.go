package retry

import (
	"errors"
	"fmt"
	"time"
)

// TerminalError is returned once retrying stops without a success. It always
// wraps exactly the last failure the operation produced; whether the session
// stopped because the condition rejected the failure, the duration budget
// ran out, or the backoff sequence was exhausted, the shape is the same.
type TerminalError struct {
	// Attempts is the number of invocations performed, the failed final
	// one included.
	Attempts int

	// Elapsed is the wall-clock time spent in the session.
	Elapsed time.Duration

	// Err is the last failure observed.
	Err error
}

// Error implements the error interface.
func (e *TerminalError) Error() string {
	return fmt.Sprintf("after %d attempt(s): %v", e.Attempts, e.Err)
}

// Unwrap returns the last observed failure.
func (e *TerminalError) Unwrap() error {
	return e.Err
}

// Is reports whether the last observed failure matches target.
func (e *TerminalError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

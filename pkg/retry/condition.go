package retry

import "errors"

// Condition decides whether a failed attempt is eligible for a retry. It is
// evaluated once per failure, before the duration budget and the backoff
// sequence are consulted, and never on the success path. Conditions must be
// pure: no state, no side effects.
type Condition func(err error) bool

// RetryAll is the default condition; every failure is retried.
func RetryAll(error) bool {
	return true
}

// RetryOn retries only failures matching one of targets (via errors.Is).
func RetryOn(targets ...error) Condition {
	return func(err error) bool {
		for _, target := range targets {
			if errors.Is(err, target) {
				return true
			}
		}
		return false
	}
}

// AbortOn retries every failure except those matching one of targets.
func AbortOn(targets ...error) Condition {
	return func(err error) bool {
		for _, target := range targets {
			if errors.Is(err, target) {
				return false
			}
		}
		return true
	}
}

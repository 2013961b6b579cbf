// Package backoff provides lazy delay sequences used to pace retry attempts.
//
// A Strategy is a stateful generator: each call to Next either yields the wait
// before the following attempt or reports exhaustion, at which point retrying
// stops. Strategies are single-use; construct a fresh one per retry session.
//
// Built-in strategies:
//   - NewFixed: constant delay, infinite unless bounded
//   - NewExponential: doubling delay (base, 2*base, 4*base, ...)
//   - NewFibonacci: fibonacci-scaled delay (base, base, 2*base, 3*base, ...)
//
// Decoration:
//
//	strategy := backoff.NewExponential(100*time.Millisecond,
//		backoff.WithMaxDelay(2*time.Second),
//		backoff.WithMaxRetries(5))
//
// Options wrap the core strategy with the same Next contract, so they compose
// with anything implementing Strategy. Take and CapDelay are the standalone
// forms; NewJitter randomizes any inner strategy with full jitter.
package backoff

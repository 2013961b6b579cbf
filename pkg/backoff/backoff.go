package backoff

import (
	"math"
	"time"
)

// Strategy produces the sequence of delays between retry attempts.
//
// Next returns the next delay and true, or zero and false once the sequence
// is exhausted. Implementations keep an internal cursor and are not
// restartable: a Strategy belongs to exactly one retry session and must not
// be shared across concurrent sessions.
type Strategy interface {
	// Next returns the next delay, or ok=false when the sequence is exhausted.
	Next() (delay time.Duration, ok bool)
}

// Option decorates a Strategy at construction time.
type Option func(Strategy) Strategy

// WithMaxRetries bounds the sequence to at most n emissions. Equivalent to
// wrapping the strategy with Take.
func WithMaxRetries(n int) Option {
	return func(s Strategy) Strategy {
		return Take(s, n)
	}
}

// WithMaxDelay clamps every emission to at most max. The exhaustion point of
// the underlying sequence is unchanged.
func WithMaxDelay(max time.Duration) Option {
	return func(s Strategy) Strategy {
		return CapDelay(s, max)
	}
}

func apply(s Strategy, opts []Option) Strategy {
	for _, opt := range opts {
		s = opt(s)
	}
	return s
}

// fixed emits the same delay forever.
type fixed struct {
	delay time.Duration
}

// NewFixed creates a strategy that always waits d between attempts. The
// sequence is infinite unless bounded with WithMaxRetries or Take.
func NewFixed(d time.Duration, opts ...Option) Strategy {
	return apply(&fixed{delay: clampNonNegative(d)}, opts)
}

func (f *fixed) Next() (time.Duration, bool) {
	return f.delay, true
}

// exponential doubles the delay on every emission, saturating instead of
// overflowing.
type exponential struct {
	current time.Duration
}

// NewExponential creates a strategy emitting base, 2*base, 4*base, and so on.
// Growth saturates at the maximum representable duration; use WithMaxDelay
// for a practical ceiling. A zero base yields zero delays indefinitely.
func NewExponential(base time.Duration, opts ...Option) Strategy {
	return apply(&exponential{current: clampNonNegative(base)}, opts)
}

func (e *exponential) Next() (time.Duration, bool) {
	d := e.current
	if e.current > math.MaxInt64/2 {
		e.current = math.MaxInt64
	} else {
		e.current *= 2
	}
	return d, true
}

// fibonacci scales the delay by the fibonacci sequence.
type fibonacci struct {
	current time.Duration
	next    time.Duration
}

// NewFibonacci creates a strategy emitting base*F(k) for k = 1, 2, 3, ...
// using the convention F(1)=1, F(2)=1, F(3)=2, so the emitted delays are
// base, base, 2*base, 3*base, 5*base, and so on. Sums saturate instead of
// overflowing.
func NewFibonacci(base time.Duration, opts ...Option) Strategy {
	base = clampNonNegative(base)
	return apply(&fibonacci{current: base, next: base}, opts)
}

func (f *fibonacci) Next() (time.Duration, bool) {
	d := f.current
	sum := f.current + f.next
	if sum < f.next {
		sum = math.MaxInt64
	}
	f.current, f.next = f.next, sum
	return d, true
}

// take truncates an inner strategy to a fixed number of emissions.
type take struct {
	inner     Strategy
	remaining int
}

// Take bounds s to at most n emissions. Values pass through unchanged; once
// n emissions have been consumed, or the inner strategy is exhausted, Next
// reports exhaustion.
func Take(s Strategy, n int) Strategy {
	return &take{inner: s, remaining: n}
}

func (t *take) Next() (time.Duration, bool) {
	if t.remaining <= 0 {
		return 0, false
	}
	d, ok := t.inner.Next()
	if !ok {
		return 0, false
	}
	t.remaining--
	return d, true
}

// capDelay clamps the magnitude of an inner strategy's emissions.
type capDelay struct {
	inner Strategy
	max   time.Duration
}

// CapDelay clamps every emission of s to at most max. Exhaustion is
// delegated to s untouched.
func CapDelay(s Strategy, max time.Duration) Strategy {
	return &capDelay{inner: s, max: clampNonNegative(max)}
}

func (c *capDelay) Next() (time.Duration, bool) {
	d, ok := c.inner.Next()
	if !ok {
		return 0, false
	}
	if d > c.max {
		d = c.max
	}
	return d, true
}

func clampNonNegative(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	return d
}

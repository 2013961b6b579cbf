package retry

import (
	"context"
	"time"

	"github.com/Jacques-Murray/async-retry/pkg/backoff"
	"github.com/Jacques-Murray/async-retry/pkg/clock"
)

// Func is the operation to retry. It is invoked once per attempt and must
// tolerate repeated invocation; each call is independent.
type Func[T any] func(ctx context.Context) (T, error)

// config carries the per-session collaborators. The zero values mean: retry
// every failure, no duration budget, no event handler, backend clock.
type config struct {
	condition   Condition
	maxDuration time.Duration
	clock       clock.Clock
	handler     EventHandler
}

// Option configures a single retry session.
type Option func(*config)

// WithCondition sets the predicate deciding whether a failure is eligible
// for another attempt. The default retries every failure.
func WithCondition(condition Condition) Option {
	return func(c *config) {
		c.condition = condition
	}
}

// WithMaxDuration sets a wall-clock ceiling for the whole session, measured
// from just before the first attempt. The budget gates the start of further
// attempts; it does not truncate a delay that is already being waited out.
func WithMaxDuration(d time.Duration) Option {
	return func(c *config) {
		c.maxDuration = d
	}
}

// WithClock sets the clock used for budget bookkeeping and suspension.
// Defaults to the backend selected at build time; tests inject a mock.
func WithClock(clk clock.Clock) Option {
	return func(c *config) {
		c.clock = clk
	}
}

// WithEventHandler sets the sink receiving per-attempt and outcome events.
// No events are emitted without one.
func WithEventHandler(handler EventHandler) Option {
	return func(c *config) {
		c.handler = handler
	}
}

// Do invokes fn until it succeeds or retrying stops.
//
// The first attempt runs unconditionally. After a failure, the session stops
// with a *TerminalError wrapping that failure when the condition rejects it,
// the session's duration budget is spent, or the strategy is exhausted.
// Otherwise Do suspends for the strategy's next delay and re-invokes fn.
// Cancelling ctx while suspended releases the timer and returns ctx.Err()
// without another invocation.
//
// The strategy's cursor is owned by this one session; do not reuse it.
func Do[T any](ctx context.Context, strategy backoff.Strategy, fn Func[T], opts ...Option) (T, error) {
	var zero T

	cfg := config{
		condition: RetryAll,
		clock:     clock.New(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	start := cfg.clock.Now()
	attempt := 1

	for {
		result, err := fn(ctx)
		if err == nil {
			if cfg.handler != nil {
				cfg.handler.OnSuccess(ctx, attempt, cfg.clock.Since(start))
			}
			return result, nil
		}

		if cfg.handler != nil {
			cfg.handler.OnFailure(ctx, attempt, err)
		}

		if !cfg.condition(err) {
			return zero, cfg.giveUp(ctx, attempt, start, err)
		}

		if cfg.maxDuration > 0 && cfg.clock.Since(start) >= cfg.maxDuration {
			return zero, cfg.giveUp(ctx, attempt, start, err)
		}

		delay, ok := strategy.Next()
		if !ok {
			return zero, cfg.giveUp(ctx, attempt, start, err)
		}

		if cfg.handler != nil {
			cfg.handler.OnBackoff(ctx, attempt, delay)
		}

		if sleepErr := clock.Sleep(ctx, cfg.clock, delay); sleepErr != nil {
			return zero, sleepErr
		}

		attempt++
	}
}

func (c *config) giveUp(ctx context.Context, attempt int, start time.Time, err error) error {
	terminal := &TerminalError{
		Attempts: attempt,
		Elapsed:  c.clock.Since(start),
		Err:      err,
	}
	if c.handler != nil {
		c.handler.OnGiveUp(ctx, attempt, err)
	}
	return terminal
}

// Result carries the outcome of an asynchronous retry session.
type Result[T any] struct {
	Value   T
	Err     error
	Elapsed time.Duration
}

// DoAsync runs Do in its own goroutine and delivers the outcome on the
// returned channel, which is closed after the single send.
func DoAsync[T any](ctx context.Context, strategy backoff.Strategy, fn Func[T], opts ...Option) <-chan Result[T] {
	results := make(chan Result[T], 1)

	go func() {
		defer close(results)

		start := time.Now()
		value, err := Do(ctx, strategy, fn, opts...)
		results <- Result[T]{
			Value:   value,
			Err:     err,
			Elapsed: time.Since(start),
		}
	}()

	return results
}

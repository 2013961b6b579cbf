// Package retry re-executes a fallible operation until it succeeds, its
// backoff sequence is exhausted, a condition rules the failure out, or a
// wall-clock budget for the whole session expires.
//
// Basic usage:
//
//	strategy := backoff.NewExponential(100*time.Millisecond,
//		backoff.WithMaxRetries(5))
//
//	data, err := retry.Do(ctx, strategy, func(ctx context.Context) (string, error) {
//		return fetchData(ctx)
//	})
//
// Conditional retry and a session budget:
//
//	result, err := retry.Do(ctx, strategy, callAPI,
//		retry.WithCondition(func(err error) bool {
//			return !errors.Is(err, ErrUnauthorized)
//		}),
//		retry.WithMaxDuration(10*time.Second))
//
// The first attempt always runs; the strategy only paces the attempts after
// it, so a strategy bounded to n emissions allows n+1 invocations in total.
// When retrying stops, the returned error is a *TerminalError wrapping the
// last failure the operation produced, whatever the reason for stopping.
//
// Strategies are single-use: construct a fresh one for every Do call.
// Everything else the loop touches is injected (the clock and with it the
// timer backend, the retry condition, the optional event handler), so
// behavior is fully deterministic under test.
package retry

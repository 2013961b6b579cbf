package backoff

import (
	"math"
	"math/rand"
	"time"
)

// jitter randomizes an inner strategy's emissions with full jitter.
type jitter struct {
	inner Strategy
	rand  *rand.Rand
}

// JitterOption configures a jitter decorator.
type JitterOption func(*jitter)

// WithSource sets the entropy source used for sampling. Injecting a seeded
// source makes the emitted delays reproducible in tests.
func WithSource(src rand.Source) JitterOption {
	return func(j *jitter) {
		j.rand = rand.New(src)
	}
}

// NewJitter wraps s so that every emission is replaced by a uniform sample in
// [0, d], where d is the value s would have emitted ("full jitter"). The
// exhaustion point of s is unchanged. Without WithSource the sampler is
// seeded from the current time.
func NewJitter(s Strategy, opts ...JitterOption) Strategy {
	j := &jitter{
		inner: s,
		rand:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

func (j *jitter) Next() (time.Duration, bool) {
	d, ok := j.inner.Next()
	if !ok {
		return 0, false
	}
	if d <= 0 {
		return 0, true
	}
	if int64(d) == math.MaxInt64 {
		return time.Duration(j.rand.Int63()), true
	}
	// Int63n is exclusive, so widen by one to make the bound inclusive.
	return time.Duration(j.rand.Int63n(int64(d) + 1)), true
}

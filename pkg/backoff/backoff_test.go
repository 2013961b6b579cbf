package backoff

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drain consumes up to limit emissions and reports whether the strategy was
// exhausted before the limit.
func drain(s Strategy, limit int) (delays []time.Duration, exhausted bool) {
	for i := 0; i < limit; i++ {
		d, ok := s.Next()
		if !ok {
			return delays, true
		}
		delays = append(delays, d)
	}
	return delays, false
}

func TestFixed(t *testing.T) {
	s := NewFixed(100 * time.Millisecond)

	delays, exhausted := drain(s, 10)
	require.False(t, exhausted, "fixed strategy must be infinite unless bounded")
	for _, d := range delays {
		assert.Equal(t, 100*time.Millisecond, d)
	}
}

func TestFixed_Take(t *testing.T) {
	s := NewFixed(10*time.Millisecond, WithMaxRetries(5))

	delays, exhausted := drain(s, 10)
	require.True(t, exhausted)
	require.Len(t, delays, 5)
	for _, d := range delays {
		assert.Equal(t, 10*time.Millisecond, d)
	}

	// Exhaustion is sticky.
	_, ok := s.Next()
	assert.False(t, ok)
}

func TestExponential(t *testing.T) {
	s := NewExponential(100 * time.Millisecond)

	want := []time.Duration{
		100 * time.Millisecond,
		200 * time.Millisecond,
		400 * time.Millisecond,
		800 * time.Millisecond,
		1600 * time.Millisecond,
	}
	delays, exhausted := drain(s, len(want))
	require.False(t, exhausted)
	assert.Equal(t, want, delays)
}

func TestExponential_MaxDelayAndMaxRetries(t *testing.T) {
	s := NewExponential(100*time.Millisecond,
		WithMaxDelay(300*time.Millisecond),
		WithMaxRetries(5))

	want := []time.Duration{
		100 * time.Millisecond,
		200 * time.Millisecond,
		300 * time.Millisecond, // capped
		300 * time.Millisecond, // capped
		300 * time.Millisecond, // capped
	}
	delays, exhausted := drain(s, 10)
	require.True(t, exhausted)
	assert.Equal(t, want, delays)
}

func TestExponential_ZeroBase(t *testing.T) {
	s := NewExponential(0)

	delays, exhausted := drain(s, 20)
	require.False(t, exhausted)
	for _, d := range delays {
		assert.Equal(t, time.Duration(0), d)
	}
}

func TestExponential_SaturatesInsteadOfOverflowing(t *testing.T) {
	s := NewExponential(time.Duration(math.MaxInt64))

	for i := 0; i < 5; i++ {
		d, ok := s.Next()
		require.True(t, ok)
		assert.Equal(t, time.Duration(math.MaxInt64), d)
		assert.GreaterOrEqual(t, d, time.Duration(0))
	}
}

func TestFibonacci(t *testing.T) {
	s := NewFibonacci(100 * time.Millisecond)

	// F(1)=1, F(2)=1, F(3)=2, F(4)=3, F(5)=5, F(6)=8
	want := []time.Duration{
		100 * time.Millisecond,
		100 * time.Millisecond,
		200 * time.Millisecond,
		300 * time.Millisecond,
		500 * time.Millisecond,
		800 * time.Millisecond,
	}
	delays, exhausted := drain(s, len(want))
	require.False(t, exhausted)
	assert.Equal(t, want, delays)
}

func TestFibonacci_MaxRetries(t *testing.T) {
	s := NewFibonacci(time.Second, WithMaxRetries(3))

	want := []time.Duration{time.Second, time.Second, 2 * time.Second}
	delays, exhausted := drain(s, 10)
	require.True(t, exhausted)
	assert.Equal(t, want, delays)
}

func TestFibonacci_SaturatesInsteadOfOverflowing(t *testing.T) {
	s := NewFibonacci(time.Duration(math.MaxInt64 / 2))

	delays, exhausted := drain(s, 10)
	require.False(t, exhausted)
	for _, d := range delays {
		assert.GreaterOrEqual(t, d, time.Duration(0))
	}
}

func TestTake_BoundHoldsRegardlessOfDecorationOrder(t *testing.T) {
	tests := []struct {
		name string
		s    Strategy
	}{
		{"cap outside take", CapDelay(Take(NewFixed(time.Second), 3), 500*time.Millisecond)},
		{"take outside cap", Take(CapDelay(NewFixed(time.Second), 500*time.Millisecond), 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			delays, exhausted := drain(tt.s, 10)
			require.True(t, exhausted)
			require.Len(t, delays, 3)
			for _, d := range delays {
				assert.Equal(t, 500*time.Millisecond, d)
			}
		})
	}
}

func TestCapDelay_PreservesExhaustionPoint(t *testing.T) {
	inner := NewExponential(100*time.Millisecond, WithMaxRetries(4))
	s := CapDelay(inner, 150*time.Millisecond)

	delays, exhausted := drain(s, 10)
	require.True(t, exhausted)
	assert.Len(t, delays, 4)
}

func TestTake_ZeroIsImmediatelyExhausted(t *testing.T) {
	s := Take(NewFixed(time.Second), 0)

	_, ok := s.Next()
	assert.False(t, ok)
}

func TestNegativeDurationsClampToZero(t *testing.T) {
	delays, _ := drain(NewFixed(-time.Second, WithMaxRetries(2)), 5)
	assert.Equal(t, []time.Duration{0, 0}, delays)

	d, ok := NewExponential(-time.Second).Next()
	require.True(t, ok)
	assert.Equal(t, time.Duration(0), d)
}

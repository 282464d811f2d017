package jitter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDuration(t *testing.T) {
	assert.Equal(t, time.Second, Duration(time.Second, 0))
	assert.Equal(t, time.Duration(0), Duration(0, 0.5))

	for i := 0; i < 100; i++ {
		d := Duration(time.Second, 0.2)
		assert.GreaterOrEqual(t, d, time.Second)
		assert.Less(t, d, 1200*time.Millisecond)
	}

	for i := 0; i < 100; i++ {
		assert.Less(t, Duration(time.Second, 5), 2*time.Second)
	}
}

func TestBackoff(t *testing.T) {
	cases := []struct {
		attempt int
		want    time.Duration
	}{
		{0, 100 * time.Millisecond},
		{1, 200 * time.Millisecond},
		{2, 400 * time.Millisecond},
		{5, time.Second},
		{50, time.Second},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Backoff(100*time.Millisecond, time.Second, tc.attempt, 0), "attempt %d", tc.attempt)
	}
}

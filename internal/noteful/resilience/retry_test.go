package resilience_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noteful/internal/noteful/resilience"
)

var errTransient = errors.New("connection reset")

func TestRetry_Execute(t *testing.T) {
	cfg := resilience.RetryConfig{
		MaxAttempts:    3,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     2 * time.Millisecond,
		BackoffFactor:  2,
	}

	t.Run("succeeds after transient failures", func(t *testing.T) {
		calls := 0
		err := resilience.NewRetry("test", cfg).Execute(context.Background(), func(context.Context) error {
			calls++
			if calls < 3 {
				return errTransient
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("returns last error after max attempts", func(t *testing.T) {
		calls := 0
		err := resilience.NewRetry("test", cfg).Execute(context.Background(), func(context.Context) error {
			calls++
			return errTransient
		})
		require.ErrorIs(t, err, errTransient)
		assert.Equal(t, 3, calls)
	})

	t.Run("non retryable error stops immediately", func(t *testing.T) {
		errPermanent := errors.New("permanent")
		withFilter := cfg
		withFilter.ShouldRetry = func(err error) bool { return !errors.Is(err, errPermanent) }

		calls := 0
		err := resilience.NewRetry("test", withFilter).Execute(context.Background(), func(context.Context) error {
			calls++
			return errPermanent
		})
		require.ErrorIs(t, err, errPermanent)
		assert.Equal(t, 1, calls)
	})

	t.Run("zero attempts means a single call", func(t *testing.T) {
		calls := 0
		err := resilience.NewRetry("test", resilience.RetryConfig{}).Execute(context.Background(), func(context.Context) error {
			calls++
			return errTransient
		})
		require.ErrorIs(t, err, errTransient)
		assert.Equal(t, 1, calls)
	})

	t.Run("canceled context aborts the wait", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		slow := resilience.RetryConfig{MaxAttempts: 5, InitialBackoff: time.Hour}

		calls := 0
		err := resilience.NewRetry("test", slow).Execute(ctx, func(context.Context) error {
			calls++
			cancel()
			return errTransient
		})
		require.ErrorIs(t, err, resilience.ErrContextCanceled)
		assert.Equal(t, 1, calls)
	})

	t.Run("context errors are not retried", func(t *testing.T) {
		calls := 0
		err := resilience.NewRetry("test", cfg).Execute(context.Background(), func(context.Context) error {
			calls++
			return context.DeadlineExceeded
		})
		require.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Equal(t, 1, calls)
	})
}

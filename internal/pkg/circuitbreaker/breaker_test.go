package circuitbreaker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/circuitbreaker"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/logger"
)

func testBreaker(threshold int, openTimeout time.Duration) *circuitbreaker.Breaker {
	cfg := circuitbreaker.DefaultConfig("test")
	cfg.FailureThreshold = threshold
	cfg.OpenTimeout = openTimeout
	return circuitbreaker.New(cfg, logger.NewNopLogger())
}

func TestBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	cb := testBreaker(3, time.Minute)
	ctx := context.Background()
	fail := func(context.Context) error { return assert.AnError }

	for i := 0; i < 3; i++ {
		err := cb.Execute(ctx, fail)
		assert.ErrorIs(t, err, assert.AnError)
	}
	assert.Equal(t, circuitbreaker.StateOpen, cb.State())

	// Calls now fail fast without invoking fn.
	called := false
	err := cb.Execute(ctx, func(context.Context) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, circuitbreaker.ErrOpen)
	assert.False(t, called)
}

func TestBreaker_SuccessResetsFailureCount(t *testing.T) {
	cb := testBreaker(3, time.Minute)
	ctx := context.Background()

	_ = cb.Execute(ctx, func(context.Context) error { return assert.AnError })
	_ = cb.Execute(ctx, func(context.Context) error { return assert.AnError })
	_ = cb.Execute(ctx, func(context.Context) error { return nil })
	_ = cb.Execute(ctx, func(context.Context) error { return assert.AnError })

	assert.Equal(t, circuitbreaker.StateClosed, cb.State())
}

func TestBreaker_ProbeClosesAfterTimeout(t *testing.T) {
	cb := testBreaker(1, 10*time.Millisecond)
	ctx := context.Background()

	_ = cb.Execute(ctx, func(context.Context) error { return assert.AnError })
	assert.Equal(t, circuitbreaker.StateOpen, cb.State())

	time.Sleep(20 * time.Millisecond)

	err := cb.Execute(ctx, func(context.Context) error { return nil })
	assert.NoError(t, err)
	assert.Equal(t, circuitbreaker.StateClosed, cb.State())
}

func TestBreaker_FailedProbeReopens(t *testing.T) {
	cb := testBreaker(1, 10*time.Millisecond)
	ctx := context.Background()

	_ = cb.Execute(ctx, func(context.Context) error { return assert.AnError })
	time.Sleep(20 * time.Millisecond)

	err := cb.Execute(ctx, func(context.Context) error { return assert.AnError })
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, circuitbreaker.StateOpen, cb.State())
}

func TestBreaker_IsFailureFilter(t *testing.T) {
	cfg := circuitbreaker.DefaultConfig("test")
	cfg.FailureThreshold = 1
	domainErr := errors.New("no drivers available")
	cfg.IsFailure = func(err error) bool {
		return err != nil && !errors.Is(err, domainErr)
	}
	cb := circuitbreaker.New(cfg, logger.NewNopLogger())

	err := cb.Execute(context.Background(), func(context.Context) error { return domainErr })
	assert.ErrorIs(t, err, domainErr)
	assert.Equal(t, circuitbreaker.StateClosed, cb.State())
}

package app

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type countingCloser struct {
	calls atomic.Int32
	err   error
}

func (c *countingCloser) CloseStaleRecords(context.Context) (int64, error) {
	c.calls.Add(1)
	return 2, c.err
}

func TestSweepStaleAttendance(t *testing.T) {
	t.Run("sweeps on every tick until cancelled", func(t *testing.T) {
		closer := &countingCloser{}
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})

		go func() {
			sweepStaleAttendance(ctx, closer, zap.NewNop(), 5*time.Millisecond)
			close(done)
		}()

		assert.Eventually(t, func() bool { return closer.calls.Load() >= 2 }, time.Second, time.Millisecond)
		cancel()
		assert.Eventually(t, func() bool {
			select {
			case <-done:
				return true
			default:
				return false
			}
		}, time.Second, time.Millisecond)
	})

	t.Run("keeps sweeping after a failure", func(t *testing.T) {
		closer := &countingCloser{err: errors.New("db down")}
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		go sweepStaleAttendance(ctx, closer, zap.NewNop(), 5*time.Millisecond)

		assert.Eventually(t, func() bool { return closer.calls.Load() >= 3 }, time.Second, time.Millisecond)
	})
}

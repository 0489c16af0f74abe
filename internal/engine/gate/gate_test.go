package gate_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/esb/internal/engine/gate"
)

func TestRunExclusive_SingleCaller(t *testing.T) {
	g := gate.New()

	ran, err := g.RunExclusive(t.Context(), func(context.Context) error { return nil })

	require.NoError(t, err)
	assert.True(t, ran)
	assert.False(t, g.Locked())
}

func TestRunExclusive_ConcurrentCallersCoalesce(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		g := gate.New()
		var executions atomic.Int32
		var admitted atomic.Int32

		var wg sync.WaitGroup
		for range 10 {
			wg.Go(func() {
				ran, err := g.RunExclusive(t.Context(), func(context.Context) error {
					executions.Add(1)
					time.Sleep(time.Second)
					return nil
				})
				assert.NoError(t, err)
				if ran {
					admitted.Add(1)
				}
			})
		}

		synctest.Wait()
		assert.True(t, g.Locked())

		wg.Wait()

		assert.Equal(t, int32(1), executions.Load())
		assert.Equal(t, int32(1), admitted.Load())
		assert.False(t, g.Locked())
	})
}

func TestRunExclusive_WaiterReturnsAfterRelease(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		g := gate.New()
		start := time.Now()
		var waiterDone time.Duration

		go func() {
			_, _ = g.RunExclusive(t.Context(), func(context.Context) error {
				time.Sleep(5 * time.Second)
				return nil
			})
		}()
		synctest.Wait()

		ran, err := g.RunExclusive(t.Context(), func(context.Context) error {
			t.Error("waiter must not run")
			return nil
		})
		waiterDone = time.Since(start)

		require.NoError(t, err)
		assert.False(t, ran)
		assert.Equal(t, 5*time.Second, waiterDone)
	})
}

func TestRunExclusive_ReleasesOnError(t *testing.T) {
	g := gate.New()
	failure := errors.New("routing failed")

	ran, err := g.RunExclusive(t.Context(), func(context.Context) error { return failure })
	require.ErrorIs(t, err, failure)
	assert.True(t, ran)
	assert.False(t, g.Locked())

	ran, err = g.RunExclusive(t.Context(), func(context.Context) error { return nil })
	require.NoError(t, err)
	assert.True(t, ran)
}

func TestRunExclusive_ReleasesOnPanic(t *testing.T) {
	g := gate.New()

	assert.Panics(t, func() {
		_, _ = g.RunExclusive(t.Context(), func(context.Context) error { panic("boom") })
	})
	assert.False(t, g.Locked())
}

func TestRunExclusive_WaiterContextCanceled(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		g := gate.New()
		hold := make(chan struct{})

		go func() {
			_, _ = g.RunExclusive(context.Background(), func(context.Context) error {
				<-hold
				return nil
			})
		}()
		synctest.Wait()

		ctx, cancel := context.WithTimeout(t.Context(), time.Second)
		defer cancel()

		ran, err := g.RunExclusive(ctx, func(context.Context) error { return nil })
		assert.False(t, ran)
		require.ErrorIs(t, err, context.DeadlineExceeded)
		assert.True(t, g.Locked())

		close(hold)
		synctest.Wait()
		assert.False(t, g.Locked())
	})
}

func TestRunExclusive_SequentialRunsAllExecute(t *testing.T) {
	g := gate.New()
	count := 0

	for range 3 {
		ran, err := g.RunExclusive(t.Context(), func(context.Context) error {
			count++
			return nil
		})
		require.NoError(t, err)
		assert.True(t, ran)
	}
	assert.Equal(t, 3, count)
}

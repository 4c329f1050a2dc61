//go:build unit

package guard_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"travel-checkout/internal/infra/guard"
	"travel-checkout/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGuard(t *testing.T) {
	ctx := context.Background()

	t.Run("second acquire is rejected until release", func(t *testing.T) {
		g := guard.NewMemoryGuard(time.Minute, clock.NewMockClock(time.Now()))

		release, err := g.Acquire(ctx, "user-42")
		require.NoError(t, err)

		_, err = g.Acquire(ctx, "user-42")
		require.ErrorIs(t, err, guard.ErrCheckoutInFlight)

		release()
		release2, err := g.Acquire(ctx, "user-42")
		require.NoError(t, err)
		release2()
	})

	t.Run("keys are independent", func(t *testing.T) {
		g := guard.NewMemoryGuard(time.Minute, clock.NewMockClock(time.Now()))

		_, err := g.Acquire(ctx, "a")
		require.NoError(t, err)
		_, err = g.Acquire(ctx, "b")
		require.NoError(t, err)
	})

	t.Run("expired lock can be taken over and the stale release is a no-op", func(t *testing.T) {
		clk := clock.NewMockClock(time.Now())
		g := guard.NewMemoryGuard(time.Minute, clk)

		staleRelease, err := g.Acquire(ctx, "user-42")
		require.NoError(t, err)

		clk.Add(2 * time.Minute)
		_, err = g.Acquire(ctx, "user-42")
		require.NoError(t, err)

		staleRelease()
		_, err = g.Acquire(ctx, "user-42")
		require.ErrorIs(t, err, guard.ErrCheckoutInFlight)
	})

	t.Run("empty key", func(t *testing.T) {
		g := guard.NewMemoryGuard(time.Minute, clock.NewMockClock(time.Now()))
		_, err := g.Acquire(ctx, "")
		require.ErrorIs(t, err, guard.ErrEmptyKey)
	})

	t.Run("only one of many concurrent submissions wins", func(t *testing.T) {
		g := guard.NewMemoryGuard(time.Minute, clock.NewRealClock())

		var wins atomic.Int32
		var wg sync.WaitGroup
		for range 20 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := g.Acquire(ctx, "user-42"); err == nil {
					wins.Add(1)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(1), wins.Load())
	})
}

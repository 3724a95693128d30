//go:build unit

package keylock_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"camp-pricing/internal/pkg/errs"
	"camp-pricing/internal/pkg/keylock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyedMutex(t *testing.T) {
	t.Run("serializes holders of the same key", func(t *testing.T) {
		m := keylock.New[string](time.Second)
		var inside, maxInside atomic.Int32
		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				unlock, err := m.Lock(context.Background(), "camp-1")
				if !assert.NoError(t, err) {
					return
				}
				n := inside.Add(1)
				for {
					cur := maxInside.Load()
					if n <= cur || maxInside.CompareAndSwap(cur, n) {
						break
					}
				}
				time.Sleep(time.Millisecond)
				inside.Add(-1)
				unlock()
			}()
		}
		wg.Wait()
		assert.Equal(t, int32(1), maxInside.Load())
		assert.Equal(t, 0, m.Len())
	})

	t.Run("different keys do not block each other", func(t *testing.T) {
		m := keylock.New[string](50 * time.Millisecond)
		unlockA, err := m.Lock(context.Background(), "a")
		require.NoError(t, err)
		defer unlockA()

		unlockB, err := m.Lock(context.Background(), "b")
		require.NoError(t, err)
		unlockB()
	})

	t.Run("wait beyond timeout fails with timeout", func(t *testing.T) {
		m := keylock.New[string](20 * time.Millisecond)
		unlock, err := m.Lock(context.Background(), "k")
		require.NoError(t, err)

		_, err = m.Lock(context.Background(), "k")
		require.ErrorIs(t, err, errs.ErrTimeout)
		assert.True(t, errs.IsRetryable(err))

		unlock()
		unlock()
		assert.Equal(t, 0, m.Len())
	})

	t.Run("context deadline before lock timeout is a retryable timeout", func(t *testing.T) {
		m := keylock.New[string](500 * time.Millisecond)
		unlock, err := m.Lock(context.Background(), "k")
		require.NoError(t, err)
		defer unlock()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		_, err = m.Lock(ctx, "k")
		require.ErrorIs(t, err, context.DeadlineExceeded)
		assert.True(t, errs.Is(err, errs.ErrTimeout))
		assert.True(t, errs.IsRetryable(err))
	})

	t.Run("cancelled context is not a timeout", func(t *testing.T) {
		m := keylock.New[string](0)
		unlock, err := m.Lock(context.Background(), "k")
		require.NoError(t, err)
		defer unlock()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err = m.Lock(ctx, "k")
		require.ErrorIs(t, err, context.Canceled)
		assert.False(t, errs.IsRetryable(err))
		assert.Equal(t, 1, m.Len())
	})
}

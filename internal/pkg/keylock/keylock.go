// Package keylock serializes work per key within one process.
package keylock

import (
	"context"
	"sync"
	"time"

	"camp-pricing/internal/pkg/errs"
)

// KeyedMutex hands out one-slot semaphores per key. Entries are reference
// counted and removed once no holder or waiter remains.
type KeyedMutex[K comparable] struct {
	mu      sync.Mutex
	entries map[K]*entry
	timeout time.Duration
}

type entry struct {
	sem  chan struct{}
	refs int
}

// New returns a KeyedMutex whose Lock waits at most timeout; zero means no limit
// beyond the caller's context.
func New[K comparable](timeout time.Duration) *KeyedMutex[K] {
	return &KeyedMutex[K]{
		entries: make(map[K]*entry),
		timeout: timeout,
	}
}

// Lock blocks until key is free. It fails with errs.ErrTimeout if the wait
// exceeds the configured timeout or ctx's deadline, and with ctx.Err() if ctx
// is cancelled first.
func (m *KeyedMutex[K]) Lock(ctx context.Context, key K) (unlock func(), err error) {
	e := m.acquire(key)

	var timer <-chan time.Time
	if m.timeout > 0 {
		t := time.NewTimer(m.timeout)
		defer t.Stop()
		timer = t.C
	}

	select {
	case e.sem <- struct{}{}:
		var once sync.Once
		return func() {
			once.Do(func() {
				<-e.sem
				m.release(key)
			})
		}, nil
	case <-timer:
		m.release(key)
		return nil, errs.ErrTimeout
	case <-ctx.Done():
		m.release(key)
		return nil, errs.FromContext(ctx.Err())
	}
}

func (m *KeyedMutex[K]) acquire(key K) *entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[key]
	if !ok {
		e = &entry{sem: make(chan struct{}, 1)}
		m.entries[key] = e
	}
	e.refs++
	return e
}

func (m *KeyedMutex[K]) release(key K) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e := m.entries[key]
	e.refs--
	if e.refs == 0 {
		delete(m.entries, key)
	}
}

// Len is the number of keys currently held or waited on.
func (m *KeyedMutex[K]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

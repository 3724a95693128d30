//go:build unit

package ledger_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"camp-pricing/internal/domain/availability"
	"camp-pricing/internal/infra/memstore"
	"camp-pricing/internal/pkg/clock"
	"camp-pricing/internal/pkg/config"
	"camp-pricing/internal/pkg/errs"
	"camp-pricing/internal/usecase/ledger"
	"camp-pricing/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu          sync.Mutex
	transitions []availability.Transition
}

func (p *recordingPublisher) PublishSlotTransition(_ context.Context, evt shared.SlotTransitionEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.transitions = append(p.transitions, evt.Transition)
	return nil
}

func (p *recordingPublisher) PublishRuleToggled(context.Context, shared.RuleToggledEvent) error {
	return nil
}

func (p *recordingPublisher) seen() []availability.Transition {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]availability.Transition(nil), p.transitions...)
}

// conflictingStore fails the first n CAS calls as if another process won.
type conflictingStore struct {
	*memstore.SlotStore
	remaining atomic.Int32
	cas       atomic.Int32
}

func (s *conflictingStore) CompareAndSwapSlot(ctx context.Context, expected int64, slot *availability.Slot) (bool, error) {
	s.cas.Add(1)
	if s.remaining.Add(-1) >= 0 {
		return false, nil
	}
	return s.SlotStore.CompareAndSwapSlot(ctx, expected, slot)
}

type fixture struct {
	ledger    *ledger.Ledger
	store     *conflictingStore
	publisher *recordingPublisher
	camp      uuid.UUID
	date      time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := &conflictingStore{SlotStore: memstore.NewSlotStore()}
	pub := &recordingPublisher{}
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	l := ledger.NewLedger(store, pub, clk, config.NewTestConfig(), shared.NopMetrics{}, logger)
	return &fixture{
		ledger:    l,
		store:     store,
		publisher: pub,
		camp:      uuid.New(),
		date:      time.Date(2025, 7, 12, 0, 0, 0, 0, time.UTC),
	}
}

// lockCheckingPublisher takes the slot's lock from inside the publish call,
// which only succeeds if the ledger released it before publishing.
type lockCheckingPublisher struct {
	recordingPublisher
	ledger  *ledger.Ledger
	lockErr []error
}

func (p *lockCheckingPublisher) PublishSlotTransition(ctx context.Context, evt shared.SlotTransitionEvent) error {
	date, err := clock.ParseDate(evt.Date)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
	defer cancel()
	lockErr := p.ledger.WithSlot(ctx, evt.CampID, date, func(context.Context, *ledger.Locked) error { return nil })

	p.mu.Lock()
	p.lockErr = append(p.lockErr, lockErr)
	p.mu.Unlock()
	return p.recordingPublisher.PublishSlotTransition(ctx, evt)
}

func (f *fixture) open(t *testing.T, capacity int) {
	t.Helper()
	_, err := f.ledger.Open(context.Background(), f.camp, f.date, capacity, decimal.NewFromInt(3000))
	require.NoError(t, err)
}

func (f *fixture) reserveN(t *testing.T, n int) {
	t.Helper()
	_, err := f.ledger.Reserve(context.Background(), f.camp, f.date, n)
	require.NoError(t, err)
}

func TestLedger_Load(t *testing.T) {
	f := newFixture(t)
	_, err := f.ledger.Load(context.Background(), f.camp, f.date)
	assert.True(t, errs.Is(err, errs.ErrNotFound))

	f.open(t, 20)
	slot, err := f.ledger.Load(context.Background(), f.camp, f.date.Add(18*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 20, slot.Capacity())
	assert.Equal(t, []availability.Transition{availability.BecameOpen}, f.publisher.seen())
}

func TestLedger_OccupancyRatio(t *testing.T) {
	f := newFixture(t)
	f.open(t, 20)
	f.reserveN(t, 17)

	ratio, err := f.ledger.OccupancyRatio(context.Background(), f.camp, f.date)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("0.85").Equal(ratio))
}

func TestLedger_Reserve(t *testing.T) {
	t.Run("full slot rejects and keeps booked", func(t *testing.T) {
		f := newFixture(t)
		f.open(t, 20)
		f.reserveN(t, 20)

		_, err := f.ledger.Reserve(context.Background(), f.camp, f.date, 1)
		require.ErrorIs(t, err, availability.ErrCapacityExceeded)

		slot, err := f.ledger.Load(context.Background(), f.camp, f.date)
		require.NoError(t, err)
		assert.Equal(t, 20, slot.Booked())
		assert.Equal(t, []availability.Transition{availability.BecameOpen, availability.BecameFull}, f.publisher.seen())
	})

	t.Run("blocked slot rejects", func(t *testing.T) {
		f := newFixture(t)
		f.open(t, 20)
		_, err := f.ledger.Block(context.Background(), f.camp, f.date)
		require.NoError(t, err)

		_, err = f.ledger.Reserve(context.Background(), f.camp, f.date, 1)
		assert.True(t, errs.Is(err, errs.ErrSlotBlocked))
	})

	t.Run("retries a lost version race", func(t *testing.T) {
		f := newFixture(t)
		f.open(t, 5)
		f.store.remaining.Store(2)

		slot, err := f.ledger.Reserve(context.Background(), f.camp, f.date, 2)
		require.NoError(t, err)
		assert.Equal(t, 2, slot.Booked())
		assert.Equal(t, int32(3), f.store.cas.Load())
	})

	t.Run("surfaces a transient conflict once attempts run out", func(t *testing.T) {
		f := newFixture(t)
		f.open(t, 5)
		f.store.remaining.Store(100)

		_, err := f.ledger.Reserve(context.Background(), f.camp, f.date, 1)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrConcurrencyConflict))
		assert.True(t, errs.Is(err, errs.ErrTransient))
		assert.Equal(t, int32(config.NewTestConfig().Ledger.MaxAttempts), f.store.cas.Load())
	})

	t.Run("concurrent reservations never oversell", func(t *testing.T) {
		f := newFixture(t)
		f.open(t, 10)

		var wg sync.WaitGroup
		var ok, rejected atomic.Int32
		for i := 0; i < 25; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := f.ledger.Reserve(context.Background(), f.camp, f.date, 1)
				switch {
				case err == nil:
					ok.Add(1)
				case errs.Is(err, errs.ErrCapacityExceeded):
					rejected.Add(1)
				default:
					t.Errorf("unexpected error: %v", err)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(10), ok.Load())
		assert.Equal(t, int32(15), rejected.Load())
		slot, err := f.ledger.Load(context.Background(), f.camp, f.date)
		require.NoError(t, err)
		assert.Equal(t, 10, slot.Booked())
	})
}

func TestLedger_Release(t *testing.T) {
	f := newFixture(t)
	f.open(t, 3)
	f.reserveN(t, 3)

	slot, err := f.ledger.Release(context.Background(), f.camp, f.date, 5)
	require.NoError(t, err)
	assert.Equal(t, 0, slot.Booked())
	assert.Equal(t, []availability.Transition{
		availability.BecameOpen,
		availability.BecameFull,
		availability.BecameOpen,
	}, f.publisher.seen())
}

func TestLedger_BlockUnblock(t *testing.T) {
	f := newFixture(t)
	f.open(t, 2)
	f.reserveN(t, 2)

	blocked, err := f.ledger.Block(context.Background(), f.camp, f.date)
	require.NoError(t, err)
	assert.Equal(t, availability.StateBlocked, blocked.State())
	assert.Equal(t, 2, blocked.Booked())

	unblocked, err := f.ledger.Unblock(context.Background(), f.camp, f.date)
	require.NoError(t, err)
	assert.Equal(t, availability.StateFull, unblocked.State())

	_, err = f.ledger.Block(context.Background(), uuid.New(), f.date)
	assert.True(t, errs.Is(err, errs.ErrNotFound))
}

func TestLedger_Open(t *testing.T) {
	f := newFixture(t)
	f.open(t, 4)
	f.reserveN(t, 3)

	_, err := f.ledger.Open(context.Background(), f.camp, f.date, 2, decimal.NewFromInt(100))
	require.ErrorIs(t, err, availability.ErrCapacityBelowBooked)

	slot, err := f.ledger.Open(context.Background(), f.camp, f.date, 8, decimal.NewFromInt(3500))
	require.NoError(t, err)
	assert.Equal(t, 8, slot.Capacity())
	assert.Equal(t, 3, slot.Booked())
	assert.True(t, decimal.NewFromInt(3500).Equal(slot.BasePrice()))
}

func TestLedger_WithSlot(t *testing.T) {
	t.Run("lock timeout is retryable", func(t *testing.T) {
		f := newFixture(t)
		f.open(t, 1)

		held := make(chan struct{})
		done := make(chan struct{})
		go func() {
			_ = f.ledger.WithSlot(context.Background(), f.camp, f.date, func(context.Context, *ledger.Locked) error {
				close(held)
				<-done
				return nil
			})
		}()
		<-held
		defer close(done)

		_, err := f.ledger.Reserve(context.Background(), f.camp, f.date, 1)
		require.ErrorIs(t, err, errs.ErrTimeout)
		assert.True(t, errs.IsRetryable(err))
	})

	t.Run("reserve under lock uses the snapshot version", func(t *testing.T) {
		f := newFixture(t)
		f.open(t, 2)

		err := f.ledger.WithSlot(context.Background(), f.camp, f.date, func(ctx context.Context, locked *ledger.Locked) error {
			before := locked.Slot().Version()
			slot, err := locked.Reserve(ctx, 1)
			if err != nil {
				return err
			}
			assert.Equal(t, before+1, slot.Version())
			assert.Equal(t, slot, locked.Slot())
			return nil
		})
		require.NoError(t, err)
	})
}

func TestLedger_PublishesAfterUnlock(t *testing.T) {
	pub := &lockCheckingPublisher{}
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	l := ledger.NewLedger(memstore.NewSlotStore(), pub, clk, config.NewTestConfig(), shared.NopMetrics{}, logger)
	pub.ledger = l

	camp, date := uuid.New(), time.Date(2025, 7, 12, 0, 0, 0, 0, time.UTC)
	_, err := l.Open(context.Background(), camp, date, 1, decimal.NewFromInt(3000))
	require.NoError(t, err)

	err = l.WithSlot(context.Background(), camp, date, func(ctx context.Context, locked *ledger.Locked) error {
		_, err := locked.Reserve(ctx, 1)
		return err
	})
	require.NoError(t, err)

	assert.Equal(t, []availability.Transition{availability.BecameOpen, availability.BecameFull}, pub.seen())
	for _, lockErr := range pub.lockErr {
		assert.NoError(t, lockErr)
	}
}

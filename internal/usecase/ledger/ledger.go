package ledger

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"camp-pricing/internal/domain/availability"
	"camp-pricing/internal/pkg/clock"
	"camp-pricing/internal/pkg/config"
	"camp-pricing/internal/pkg/errs"
	"camp-pricing/internal/pkg/keylock"
	"camp-pricing/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrVersionConflict = errs.Mark(errors.New("slot changed since it was read"), errs.ErrConcurrencyConflict)

type slotKey struct {
	campID uuid.UUID
	date   string
}

func keyOf(campID uuid.UUID, date time.Time) slotKey {
	return slotKey{campID: campID, date: clock.FormatDate(date)}
}

// Ledger owns slot mutations. Writers to one (camp, date) are serialized by
// an in-process lock; the store's version check covers other processes.
type Ledger struct {
	slots   shared.SlotStore
	events  shared.EventPublisher
	clock   clock.Clock
	locks   *keylock.KeyedMutex[slotKey]
	retry   shared.RetryPolicy
	metrics shared.Metrics
	logger  *slog.Logger
}

func NewLedger(
	slots shared.SlotStore,
	events shared.EventPublisher,
	clk clock.Clock,
	cfg config.Config,
	metrics shared.Metrics,
	logger *slog.Logger,
) *Ledger {
	return &Ledger{
		slots:   slots,
		events:  events,
		clock:   clk,
		locks:   keylock.New[slotKey](cfg.Ledger.LockTimeout),
		retry:   shared.RetryPolicy{MaxAttempts: cfg.Ledger.MaxAttempts, Base: cfg.Ledger.RetryBase},
		metrics: metrics,
		logger:  logger,
	}
}

func (l *Ledger) RetryPolicy() shared.RetryPolicy {
	return l.retry
}

func (l *Ledger) Load(ctx context.Context, campID uuid.UUID, date time.Time) (*availability.Slot, error) {
	return l.slots.LoadSlot(ctx, campID, clock.DateOf(date))
}

func (l *Ledger) OccupancyRatio(ctx context.Context, campID uuid.UUID, date time.Time) (decimal.Decimal, error) {
	slot, err := l.Load(ctx, campID, date)
	if err != nil {
		return decimal.Zero, err
	}
	return slot.OccupancyRatio(), nil
}

func (l *Ledger) Reserve(ctx context.Context, campID uuid.UUID, date time.Time, count int) (*availability.Slot, error) {
	return l.mutate(ctx, campID, date, func(s *availability.Slot, now time.Time) (*availability.Slot, error) {
		return s.Reserve(count, now)
	})
}

func (l *Ledger) Release(ctx context.Context, campID uuid.UUID, date time.Time, count int) (*availability.Slot, error) {
	return l.mutate(ctx, campID, date, func(s *availability.Slot, now time.Time) (*availability.Slot, error) {
		return s.Release(count, now)
	})
}

func (l *Ledger) Block(ctx context.Context, campID uuid.UUID, date time.Time) (*availability.Slot, error) {
	return l.mutate(ctx, campID, date, func(s *availability.Slot, now time.Time) (*availability.Slot, error) {
		return s.Block(now), nil
	})
}

func (l *Ledger) Unblock(ctx context.Context, campID uuid.UUID, date time.Time) (*availability.Slot, error) {
	return l.mutate(ctx, campID, date, func(s *availability.Slot, now time.Time) (*availability.Slot, error) {
		return s.Unblock(now), nil
	})
}

// Open creates the slot, or changes capacity and base price if it exists.
func (l *Ledger) Open(ctx context.Context, campID uuid.UUID, date time.Time, capacity int, basePrice decimal.Decimal) (*availability.Slot, error) {
	return shared.RetryOnConflict(ctx, l.retry, l.metrics, func(ctx context.Context) (*availability.Slot, error) {
		var out *availability.Slot
		err := l.underLock(ctx, campID, date, func(ctx context.Context, locked *Locked) error {
			now := l.clock.Now()
			current, err := l.slots.LoadSlot(ctx, campID, clock.DateOf(date))
			if err != nil && !errs.Is(err, errs.ErrNotFound) {
				return err
			}

			if current == nil {
				slot, err := availability.NewSlot(campID, date, capacity, basePrice, now)
				if err != nil {
					return err
				}
				if err := l.slots.InsertSlot(ctx, slot); err != nil {
					return err
				}
				locked.record(nil, slot)
				out = slot
				return nil
			}

			locked.slot = current
			next, err := current.Reopen(capacity, basePrice, now)
			if err != nil {
				return err
			}
			out, err = locked.commit(ctx, next)
			return err
		})
		return out, err
	})
}

// Locked is a slot read while its key's lock is held. Transitions committed
// through it are published once the lock is released.
type Locked struct {
	ledger  *Ledger
	slot    *availability.Slot
	pending []shared.SlotTransitionEvent
}

func (k *Locked) Slot() *availability.Slot {
	return k.slot
}

// Reserve writes against the version that was read when the lock was taken.
func (k *Locked) Reserve(ctx context.Context, count int) (*availability.Slot, error) {
	next, err := k.slot.Reserve(count, k.ledger.clock.Now())
	if err != nil {
		return nil, err
	}
	return k.commit(ctx, next)
}

func (k *Locked) commit(ctx context.Context, next *availability.Slot) (*availability.Slot, error) {
	ok, err := k.ledger.slots.CompareAndSwapSlot(ctx, k.slot.Version(), next)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrVersionConflict
	}
	k.record(k.slot, next)
	k.slot = next
	return next, nil
}

func (k *Locked) record(prev, next *availability.Slot) {
	transition, changed := availability.TransitionBetween(prev, next)
	if !changed {
		return
	}
	k.pending = append(k.pending, shared.SlotTransitionEvent{
		CampID:     next.CampID(),
		Date:       clock.FormatDate(next.Date()),
		Transition: transition,
		Capacity:   next.Capacity(),
		Booked:     next.Booked(),
		Version:    next.Version(),
		OccurredAt: k.ledger.clock.Now(),
	})
}

// WithSlot runs fn with the slot's lock held for its whole duration. It does
// not retry; a version conflict inside fn is returned as is.
func (l *Ledger) WithSlot(ctx context.Context, campID uuid.UUID, date time.Time, fn func(ctx context.Context, locked *Locked) error) error {
	return l.underLock(ctx, campID, date, func(ctx context.Context, locked *Locked) error {
		slot, err := l.slots.LoadSlot(ctx, campID, clock.DateOf(date))
		if err != nil {
			return err
		}
		locked.slot = slot
		return fn(ctx, locked)
	})
}

func (l *Ledger) underLock(ctx context.Context, campID uuid.UUID, date time.Time, fn func(ctx context.Context, locked *Locked) error) error {
	unlock, err := l.locks.Lock(ctx, keyOf(campID, date))
	if err != nil {
		return err
	}

	locked := &Locked{ledger: l}
	err = func() error {
		defer unlock()
		return fn(ctx, locked)
	}()

	for _, evt := range locked.pending {
		l.publish(ctx, evt)
	}
	return err
}

func (l *Ledger) mutate(
	ctx context.Context,
	campID uuid.UUID,
	date time.Time,
	change func(s *availability.Slot, now time.Time) (*availability.Slot, error),
) (*availability.Slot, error) {
	return shared.RetryOnConflict(ctx, l.retry, l.metrics, func(ctx context.Context) (*availability.Slot, error) {
		var out *availability.Slot
		err := l.WithSlot(ctx, campID, date, func(ctx context.Context, locked *Locked) error {
			next, err := change(locked.slot, l.clock.Now())
			if err != nil {
				return err
			}
			out, err = locked.commit(ctx, next)
			return err
		})
		return out, err
	})
}

func (l *Ledger) publish(ctx context.Context, evt shared.SlotTransitionEvent) {
	if err := l.events.PublishSlotTransition(ctx, evt); err != nil {
		l.logger.Warn("failed to publish slot transition",
			"camp_id", evt.CampID,
			"date", evt.Date,
			"transition", evt.Transition,
			"error", err.Error())
	}
}

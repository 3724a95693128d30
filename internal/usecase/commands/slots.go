package commands

//go:generate mockgen -source=slots.go -destination=../../../tests/mock/commands/slots.go -package=commandsmock

import (
	"context"
	"time"

	"camp-pricing/internal/domain/availability"
	"camp-pricing/internal/usecase/ledger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SlotCommands are the organizer-side slot mutations. Reservations go
// through quote.Service instead so they are priced under the same lock.
type SlotCommands interface {
	OpenSlot(ctx context.Context, campID uuid.UUID, date time.Time, capacity int, basePrice decimal.Decimal) (*availability.Slot, error)
	ReleaseUnits(ctx context.Context, campID uuid.UUID, date time.Time, count int) (*availability.Slot, error)
	BlockSlot(ctx context.Context, campID uuid.UUID, date time.Time) (*availability.Slot, error)
	UnblockSlot(ctx context.Context, campID uuid.UUID, date time.Time) (*availability.Slot, error)
}

// OccupancyMemo drops a memoised occupancy ratio after the slot changed.
type OccupancyMemo interface {
	Forget(campID uuid.UUID, date time.Time)
}

type slotCommandsImpl struct {
	ledger *ledger.Ledger
	memo   OccupancyMemo
}

func NewSlotCommands(l *ledger.Ledger, memo OccupancyMemo) SlotCommands {
	return &slotCommandsImpl{ledger: l, memo: memo}
}

func (uc *slotCommandsImpl) OpenSlot(ctx context.Context, campID uuid.UUID, date time.Time, capacity int, basePrice decimal.Decimal) (*availability.Slot, error) {
	return uc.forgetAfter(campID, date)(uc.ledger.Open(ctx, campID, date, capacity, basePrice))
}

func (uc *slotCommandsImpl) ReleaseUnits(ctx context.Context, campID uuid.UUID, date time.Time, count int) (*availability.Slot, error) {
	return uc.forgetAfter(campID, date)(uc.ledger.Release(ctx, campID, date, count))
}

func (uc *slotCommandsImpl) BlockSlot(ctx context.Context, campID uuid.UUID, date time.Time) (*availability.Slot, error) {
	return uc.forgetAfter(campID, date)(uc.ledger.Block(ctx, campID, date))
}

func (uc *slotCommandsImpl) UnblockSlot(ctx context.Context, campID uuid.UUID, date time.Time) (*availability.Slot, error) {
	return uc.forgetAfter(campID, date)(uc.ledger.Unblock(ctx, campID, date))
}

func (uc *slotCommandsImpl) forgetAfter(campID uuid.UUID, date time.Time) func(*availability.Slot, error) (*availability.Slot, error) {
	return func(slot *availability.Slot, err error) (*availability.Slot, error) {
		if err == nil {
			uc.memo.Forget(campID, date)
		}
		return slot, err
	}
}

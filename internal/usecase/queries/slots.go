package queries

//go:generate mockgen -source=slots.go -destination=../../../tests/mock/queries/slots.go -package=queriesmock

import (
	"context"
	"time"

	"camp-pricing/internal/domain/availability"
	"camp-pricing/internal/usecase/ledger"

	"github.com/google/uuid"
)

type SlotQueries interface {
	GetSlot(ctx context.Context, campID uuid.UUID, date time.Time) (*availability.Slot, error)
}

type slotQueriesImpl struct {
	ledger *ledger.Ledger
}

func NewSlotQueries(l *ledger.Ledger) SlotQueries {
	return &slotQueriesImpl{ledger: l}
}

func (q *slotQueriesImpl) GetSlot(ctx context.Context, campID uuid.UUID, date time.Time) (*availability.Slot, error) {
	return q.ledger.Load(ctx, campID, date)
}

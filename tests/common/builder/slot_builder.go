//go:build unit || e2e

package builder

import (
	"time"

	"camp-pricing/internal/domain/availability"
	"camp-pricing/internal/infra/repository/converter"
	"camp-pricing/internal/infra/sqlc"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SlotBuilder struct {
	CampID    uuid.UUID
	Date      time.Time
	Capacity  int
	Booked    int
	Available bool
	BasePrice decimal.Decimal
	Version   int64
	UpdatedAt time.Time
}

func NewSlotBuilder() *SlotBuilder {
	return &SlotBuilder{
		CampID:    uuid.New(),
		Date:      time.Date(2025, 7, 12, 0, 0, 0, 0, time.UTC),
		Capacity:  10,
		Available: true,
		BasePrice: decimal.NewFromInt(1000),
		Version:   1,
		UpdatedAt: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *SlotBuilder) With(mutate func(*SlotBuilder)) *SlotBuilder {
	mutate(b)
	return b
}

func (b *SlotBuilder) WithBooked(booked int) *SlotBuilder {
	b.Booked = booked
	return b
}

func (b *SlotBuilder) Blocked() *SlotBuilder {
	b.Available = false
	return b
}

// Build methods
func (b *SlotBuilder) BuildDomain() *availability.Slot {
	return availability.ReconstructSlot(b.CampID, b.Date, b.Capacity, b.Booked, b.Available, b.BasePrice, b.Version, b.UpdatedAt)
}

func (b *SlotBuilder) BuildRow() sqlc.AvailabilitySlots {
	row, err := converter.SlotToRow(b.BuildDomain())
	if err != nil {
		panic(err)
	}
	return row
}

package availability

import (
	"errors"
	"time"

	"camp-pricing/internal/pkg/clock"
	"camp-pricing/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrMissingCamp         = errs.Mark(errors.New("slot camp id is required"), errs.ErrValidation)
	ErrMissingDate         = errs.Mark(errors.New("slot date is required"), errs.ErrValidation)
	ErrNegativeCapacity    = errs.Mark(errors.New("slot capacity cannot be negative"), errs.ErrValidation)
	ErrNegativeBasePrice   = errs.Mark(errors.New("slot base price cannot be negative"), errs.ErrValidation)
	ErrInvalidCount        = errs.Mark(errors.New("unit count must be at least 1"), errs.ErrValidation)
	ErrCapacityBelowBooked = errs.Mark(errors.New("capacity cannot be lowered below booked units"), errs.ErrValidation)

	ErrSlotBlocked      = errs.Mark(errors.New("slot is not accepting bookings"), errs.ErrSlotBlocked)
	ErrCapacityExceeded = errs.Mark(errors.New("not enough remaining capacity"), errs.ErrCapacityExceeded)
)

type State string

const (
	StateOpen    State = "open"
	StateFull    State = "full"
	StateBlocked State = "blocked"
)

// Slot is the capacity and base price of one camp on one calendar day.
// Mutators return a new Slot with the version bumped; the receiver is unchanged.
type Slot struct {
	campID    uuid.UUID
	date      time.Time
	capacity  int
	booked    int
	available bool
	basePrice decimal.Decimal
	version   int64
	updatedAt time.Time
}

// NewSlot opens a slot with nothing booked at version 1.
func NewSlot(campID uuid.UUID, date time.Time, capacity int, basePrice decimal.Decimal, now time.Time) (*Slot, error) {
	if campID == uuid.Nil {
		return nil, ErrMissingCamp
	}
	if date.IsZero() {
		return nil, ErrMissingDate
	}
	if capacity < 0 {
		return nil, ErrNegativeCapacity
	}
	if basePrice.IsNegative() {
		return nil, ErrNegativeBasePrice
	}
	return &Slot{
		campID:    campID,
		date:      clock.DateOf(date),
		capacity:  capacity,
		available: true,
		basePrice: basePrice,
		version:   1,
		updatedAt: now,
	}, nil
}

func ReconstructSlot(campID uuid.UUID, date time.Time, capacity, booked int, available bool, basePrice decimal.Decimal, version int64, updatedAt time.Time) *Slot {
	return &Slot{
		campID:    campID,
		date:      clock.DateOf(date),
		capacity:  capacity,
		booked:    booked,
		available: available,
		basePrice: basePrice,
		version:   version,
		updatedAt: updatedAt,
	}
}

func (s *Slot) CampID() uuid.UUID          { return s.campID }
func (s *Slot) Date() time.Time            { return s.date }
func (s *Slot) Capacity() int              { return s.capacity }
func (s *Slot) Booked() int                { return s.booked }
func (s *Slot) IsAvailable() bool          { return s.available }
func (s *Slot) BasePrice() decimal.Decimal { return s.basePrice }
func (s *Slot) Version() int64             { return s.version }
func (s *Slot) UpdatedAt() time.Time       { return s.updatedAt }

func (s *Slot) Remaining() int {
	return s.capacity - s.booked
}

// OccupancyRatio is booked/capacity, zero for a zero-capacity slot.
func (s *Slot) OccupancyRatio() decimal.Decimal {
	if s.capacity == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(s.booked)).Div(decimal.NewFromInt(int64(s.capacity)))
}

func (s *Slot) State() State {
	switch {
	case !s.available:
		return StateBlocked
	case s.booked >= s.capacity:
		return StateFull
	default:
		return StateOpen
	}
}

// CanFit reports whether count more units fit, ignoring the available flag.
func (s *Slot) CanFit(count int) bool {
	return s.booked+count <= s.capacity
}

func (s *Slot) Reserve(count int, now time.Time) (*Slot, error) {
	if count < 1 {
		return nil, ErrInvalidCount
	}
	if !s.available {
		return nil, ErrSlotBlocked
	}
	if !s.CanFit(count) {
		return nil, ErrCapacityExceeded
	}
	next := s.next(now)
	next.booked += count
	return next, nil
}

// Release frees count units, never going below zero booked.
func (s *Slot) Release(count int, now time.Time) (*Slot, error) {
	if count < 1 {
		return nil, ErrInvalidCount
	}
	next := s.next(now)
	next.booked = max(0, next.booked-count)
	return next, nil
}

func (s *Slot) Block(now time.Time) *Slot {
	next := s.next(now)
	next.available = false
	return next
}

func (s *Slot) Unblock(now time.Time) *Slot {
	next := s.next(now)
	next.available = true
	return next
}

// Reopen changes capacity and base price of an existing slot.
func (s *Slot) Reopen(capacity int, basePrice decimal.Decimal, now time.Time) (*Slot, error) {
	if capacity < 0 {
		return nil, ErrNegativeCapacity
	}
	if capacity < s.booked {
		return nil, ErrCapacityBelowBooked
	}
	if basePrice.IsNegative() {
		return nil, ErrNegativeBasePrice
	}
	next := s.next(now)
	next.capacity = capacity
	next.basePrice = basePrice
	return next, nil
}

func (s *Slot) next(now time.Time) *Slot {
	c := *s
	c.version++
	c.updatedAt = now
	return &c
}

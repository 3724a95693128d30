package pricing

import (
	"time"

	"camp-pricing/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OccupancyFunc resolves the booked/capacity ratio of the slot being priced.
type OccupancyFunc func() (decimal.Decimal, error)

// BookingContext is the validated input of a quote. Date is the first night;
// EndDate only feeds DurationDays.
type BookingContext struct {
	CampID         uuid.UUID
	Date           time.Time
	EndDate        *time.Time
	Participants   int
	RequestedUnits int
	AdvanceDays    int
	DurationDays   int
}

// NewBookingContext derives AdvanceDays and DurationDays relative to now.
// A requested of 0 defaults to the participant count.
func NewBookingContext(now time.Time, campID uuid.UUID, date time.Time, endDate *time.Time, participants, requested int) (BookingContext, error) {
	if campID == uuid.Nil {
		return BookingContext{}, ErrMissingCamp
	}
	if participants < 1 {
		return BookingContext{}, ErrInvalidParticipants
	}
	if requested < 0 {
		return BookingContext{}, ErrInvalidRequestedUnit
	}
	if requested == 0 {
		requested = participants
	}

	date = clock.DateOf(date)
	advance := clock.DaysBetween(now, date)
	if advance < 0 {
		return BookingContext{}, ErrDateInPast
	}

	duration := 1
	var end *time.Time
	if endDate != nil {
		e := clock.DateOf(*endDate)
		if e.Before(date) {
			return BookingContext{}, ErrEndBeforeStart
		}
		duration = clock.DaysBetween(date, e) + 1
		end = &e
	}

	return BookingContext{
		CampID:         campID,
		Date:           date,
		EndDate:        end,
		Participants:   participants,
		RequestedUnits: requested,
		AdvanceDays:    advance,
		DurationDays:   duration,
	}, nil
}

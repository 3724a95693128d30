package pricing

import (
	"time"

	"camp-pricing/internal/pkg/clock"

	"github.com/shopspring/decimal"
)

// DateRange is an inclusive range of calendar days.
type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	start, end = clock.DateOf(start), clock.DateOf(end)
	if start.After(end) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{start: start, end: end}, nil
}

func (r DateRange) Start() time.Time { return r.start }
func (r DateRange) End() time.Time   { return r.end }

func (r DateRange) Contains(t time.Time) bool {
	d := clock.DateOf(t)
	return !d.Before(r.start) && !d.After(r.end)
}

func (r DateRange) Equal(o DateRange) bool {
	return r.start.Equal(o.start) && r.end.Equal(o.end)
}

// IntRange is an inclusive, possibly open-ended range of non-negative integers.
type IntRange struct {
	min *int
	max *int
}

func NewIntRange(lower, upper *int) (IntRange, error) {
	if lower == nil && upper == nil {
		return IntRange{}, ErrUnboundedRange
	}
	if (lower != nil && *lower < 0) || (upper != nil && *upper < 0) {
		return IntRange{}, ErrNegativeRangeBound
	}
	if lower != nil && upper != nil && *lower > *upper {
		return IntRange{}, ErrInvalidRange
	}
	return IntRange{min: copyInt(lower), max: copyInt(upper)}, nil
}

func (r IntRange) Min() *int { return copyInt(r.min) }
func (r IntRange) Max() *int { return copyInt(r.max) }

func (r IntRange) Contains(v int) bool {
	if r.min != nil && v < *r.min {
		return false
	}
	if r.max != nil && v > *r.max {
		return false
	}
	return true
}

func (r IntRange) Equal(o IntRange) bool {
	return intPtrEqual(r.min, o.min) && intPtrEqual(r.max, o.max)
}

func copyInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// WeekdaySet is a bit set over time.Weekday. The zero value is the empty set.
type WeekdaySet uint8

func NewWeekdaySet(days ...time.Weekday) (WeekdaySet, error) {
	var s WeekdaySet
	for _, d := range days {
		if d < time.Sunday || d > time.Saturday {
			return 0, ErrInvalidWeekday
		}
		s |= 1 << uint(d)
	}
	return s, nil
}

func (s WeekdaySet) IsEmpty() bool { return s == 0 }

func (s WeekdaySet) Contains(d time.Weekday) bool {
	return s&(1<<uint(d)) != 0
}

// Days lists the members in Sunday-first order.
func (s WeekdaySet) Days() []time.Weekday {
	var days []time.Weekday
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Contains(d) {
			days = append(days, d)
		}
	}
	return days
}

// Conditions is the closed set of optional match dimensions of a rule.
// An unset dimension places no constraint on the booking.
type Conditions struct {
	DateRange          *DateRange
	Weekdays           WeekdaySet
	Participants       *IntRange
	AdvanceDays        *IntRange
	DurationDays       *IntRange
	OccupancyThreshold *decimal.Decimal // percent, 0-100
}

func (c Conditions) Validate() error {
	if c.OccupancyThreshold != nil {
		if c.OccupancyThreshold.IsNegative() || c.OccupancyThreshold.GreaterThan(hundred) {
			return ErrInvalidOccupancyLimit
		}
	}
	return nil
}

func (c Conditions) NeedsOccupancy() bool {
	return c.OccupancyThreshold != nil
}

// Matches evaluates the cheap dimensions first so occupancy is only resolved
// for rules that could still apply.
func (c Conditions) Matches(bctx BookingContext, occupancy OccupancyFunc) (bool, error) {
	if c.DateRange != nil && !c.DateRange.Contains(bctx.Date) {
		return false, nil
	}
	if !c.Weekdays.IsEmpty() && !c.Weekdays.Contains(bctx.Date.Weekday()) {
		return false, nil
	}
	if c.Participants != nil && !c.Participants.Contains(bctx.Participants) {
		return false, nil
	}
	if c.AdvanceDays != nil && !c.AdvanceDays.Contains(bctx.AdvanceDays) {
		return false, nil
	}
	if c.DurationDays != nil && !c.DurationDays.Contains(bctx.DurationDays) {
		return false, nil
	}
	if c.OccupancyThreshold != nil {
		ratio, err := occupancy()
		if err != nil {
			return false, err
		}
		if ratio.Mul(hundred).LessThan(*c.OccupancyThreshold) {
			return false, nil
		}
	}
	return true, nil
}

func (c Conditions) Equal(o Conditions) bool {
	if c.Weekdays != o.Weekdays {
		return false
	}
	if (c.DateRange == nil) != (o.DateRange == nil) ||
		(c.DateRange != nil && !c.DateRange.Equal(*o.DateRange)) {
		return false
	}
	if !intRangePtrEqual(c.Participants, o.Participants) ||
		!intRangePtrEqual(c.AdvanceDays, o.AdvanceDays) ||
		!intRangePtrEqual(c.DurationDays, o.DurationDays) {
		return false
	}
	if (c.OccupancyThreshold == nil) != (o.OccupancyThreshold == nil) {
		return false
	}
	return c.OccupancyThreshold == nil || c.OccupancyThreshold.Equal(*o.OccupancyThreshold)
}

func intRangePtrEqual(a, b *IntRange) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

package converter

import (
	"encoding/json"
	"time"

	"camp-pricing/internal/domain/pricing"
	"camp-pricing/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ConditionsRecord is the stored form of pricing.Conditions (JSONB column and
// cache payload). Dates are calendar days, weekdays 0=Sunday.
type ConditionsRecord struct {
	DateFrom           *string          `json:"date_from,omitempty"`
	DateTo             *string          `json:"date_to,omitempty"`
	Weekdays           []int            `json:"weekdays,omitempty"`
	MinParticipants    *int             `json:"min_participants,omitempty"`
	MaxParticipants    *int             `json:"max_participants,omitempty"`
	MinAdvanceDays     *int             `json:"min_advance_days,omitempty"`
	MaxAdvanceDays     *int             `json:"max_advance_days,omitempty"`
	MinDurationDays    *int             `json:"min_duration_days,omitempty"`
	MaxDurationDays    *int             `json:"max_duration_days,omitempty"`
	OccupancyThreshold *decimal.Decimal `json:"occupancy_threshold,omitempty"`
}

// RuleRecord is the full stored form of a rule, used as the cache payload.
type RuleRecord struct {
	ID         uuid.UUID        `json:"id"`
	Name       string           `json:"name"`
	Type       string           `json:"type"`
	Priority   int              `json:"priority"`
	Active     bool             `json:"active"`
	Conditions ConditionsRecord `json:"conditions"`
	Kind       string           `json:"kind"`
	Direction  string           `json:"direction"`
	Value      decimal.Decimal  `json:"value"`
	CampIDs    []uuid.UUID      `json:"camp_ids"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

func ConditionsToRecord(c pricing.Conditions) ConditionsRecord {
	rec := ConditionsRecord{OccupancyThreshold: c.OccupancyThreshold}
	if c.DateRange != nil {
		from, to := clock.FormatDate(c.DateRange.Start()), clock.FormatDate(c.DateRange.End())
		rec.DateFrom, rec.DateTo = &from, &to
	}
	for _, d := range c.Weekdays.Days() {
		rec.Weekdays = append(rec.Weekdays, int(d))
	}
	if c.Participants != nil {
		rec.MinParticipants, rec.MaxParticipants = c.Participants.Min(), c.Participants.Max()
	}
	if c.AdvanceDays != nil {
		rec.MinAdvanceDays, rec.MaxAdvanceDays = c.AdvanceDays.Min(), c.AdvanceDays.Max()
	}
	if c.DurationDays != nil {
		rec.MinDurationDays, rec.MaxDurationDays = c.DurationDays.Min(), c.DurationDays.Max()
	}
	return rec
}

// ConditionsFromRecord re-validates every dimension; a record that fails is a
// validation error, whether it came from a client or from storage.
func ConditionsFromRecord(rec ConditionsRecord) (pricing.Conditions, error) {
	var c pricing.Conditions

	if rec.DateFrom != nil || rec.DateTo != nil {
		if rec.DateFrom == nil || rec.DateTo == nil {
			return pricing.Conditions{}, pricing.ErrInvalidDateRange
		}
		from, err := clock.ParseDate(*rec.DateFrom)
		if err != nil {
			return pricing.Conditions{}, pricing.ErrInvalidDateRange
		}
		to, err := clock.ParseDate(*rec.DateTo)
		if err != nil {
			return pricing.Conditions{}, pricing.ErrInvalidDateRange
		}
		dr, err := pricing.NewDateRange(from, to)
		if err != nil {
			return pricing.Conditions{}, err
		}
		c.DateRange = &dr
	}

	if len(rec.Weekdays) > 0 {
		days := make([]time.Weekday, len(rec.Weekdays))
		for i, d := range rec.Weekdays {
			days[i] = time.Weekday(d)
		}
		set, err := pricing.NewWeekdaySet(days...)
		if err != nil {
			return pricing.Conditions{}, err
		}
		c.Weekdays = set
	}

	var err error
	if c.Participants, err = optionalRange(rec.MinParticipants, rec.MaxParticipants); err != nil {
		return pricing.Conditions{}, err
	}
	if c.AdvanceDays, err = optionalRange(rec.MinAdvanceDays, rec.MaxAdvanceDays); err != nil {
		return pricing.Conditions{}, err
	}
	if c.DurationDays, err = optionalRange(rec.MinDurationDays, rec.MaxDurationDays); err != nil {
		return pricing.Conditions{}, err
	}

	c.OccupancyThreshold = rec.OccupancyThreshold
	return c, c.Validate()
}

func optionalRange(lower, upper *int) (*pricing.IntRange, error) {
	if lower == nil && upper == nil {
		return nil, nil
	}
	r, err := pricing.NewIntRange(lower, upper)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func RuleToRecord(r *pricing.PricingRule) RuleRecord {
	adj := r.Adjustment()
	return RuleRecord{
		ID:         r.ID(),
		Name:       r.Name(),
		Type:       string(r.Type()),
		Priority:   r.Priority(),
		Active:     r.IsActive(),
		Conditions: ConditionsToRecord(r.Conditions()),
		Kind:       string(adj.Kind()),
		Direction:  string(adj.Direction()),
		Value:      adj.Value(),
		CampIDs:    r.CampIDs(),
		CreatedAt:  r.CreatedAt(),
		UpdatedAt:  r.UpdatedAt(),
	}
}

func RuleFromRecord(rec RuleRecord) (*pricing.PricingRule, error) {
	cond, err := ConditionsFromRecord(rec.Conditions)
	if err != nil {
		return nil, err
	}
	adj, err := pricing.NewAdjustment(pricing.AdjustmentKind(rec.Kind), pricing.Direction(rec.Direction), rec.Value)
	if err != nil {
		return nil, err
	}
	spec := pricing.RuleSpec{
		Name:       rec.Name,
		Type:       pricing.RuleType(rec.Type),
		Priority:   rec.Priority,
		Active:     rec.Active,
		Conditions: cond,
		Adjustment: adj,
		CampIDs:    rec.CampIDs,
	}
	return pricing.ReconstructPricingRule(rec.ID, spec, rec.CreatedAt, rec.UpdatedAt), nil
}

func MarshalRules(rules []*pricing.PricingRule) ([]byte, error) {
	recs := make([]RuleRecord, len(rules))
	for i, r := range rules {
		recs[i] = RuleToRecord(r)
	}
	return json.Marshal(recs)
}

func UnmarshalRules(data []byte) ([]*pricing.PricingRule, error) {
	var recs []RuleRecord
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, err
	}
	rules := make([]*pricing.PricingRule, len(recs))
	for i, rec := range recs {
		r, err := RuleFromRecord(rec)
		if err != nil {
			return nil, err
		}
		rules[i] = r
	}
	return rules, nil
}

package request

import (
	"camp-pricing/internal/domain/pricing"
	"camp-pricing/internal/infra/converter"
	"camp-pricing/internal/pkg/patch"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

// ConditionsDTO uses calendar dates (YYYY-MM-DD) and weekdays 0=Sunday.
// Omitted dimensions match every booking.
type ConditionsDTO struct {
	DateFrom           *string          `json:"date_from,omitempty"`
	DateTo             *string          `json:"date_to,omitempty"`
	Weekdays           []int            `json:"weekdays,omitempty" binding:"omitempty,dive,min=0,max=6"`
	MinParticipants    *int             `json:"min_participants,omitempty" binding:"omitempty,min=0"`
	MaxParticipants    *int             `json:"max_participants,omitempty" binding:"omitempty,min=0"`
	MinAdvanceDays     *int             `json:"min_advance_days,omitempty" binding:"omitempty,min=0"`
	MaxAdvanceDays     *int             `json:"max_advance_days,omitempty" binding:"omitempty,min=0"`
	MinDurationDays    *int             `json:"min_duration_days,omitempty" binding:"omitempty,min=0"`
	MaxDurationDays    *int             `json:"max_duration_days,omitempty" binding:"omitempty,min=0"`
	OccupancyThreshold *decimal.Decimal `json:"occupancy_threshold,omitempty"`
}

type AdjustmentDTO struct {
	Kind      string          `json:"kind" binding:"required,oneof=percentage fixed"`
	Direction string          `json:"direction" binding:"required,oneof=increase decrease"`
	Value     decimal.Decimal `json:"value"`
}

type RuleRequest struct {
	Name       string        `json:"name" binding:"required,max=255"`
	Type       string        `json:"type" binding:"required"`
	Priority   int           `json:"priority" binding:"min=0"`
	Active     *bool         `json:"active,omitempty"`
	Conditions ConditionsDTO `json:"conditions"`
	Adjustment AdjustmentDTO `json:"adjustment"`
	CampIDs    []uuid.UUID   `json:"camp_ids" binding:"required,min=1"`
}

// ToSpec validates every dimension through the domain constructors. Active
// defaults to true.
func (r RuleRequest) ToSpec() (pricing.RuleSpec, error) {
	cond, err := r.Conditions.ToDomain()
	if err != nil {
		return pricing.RuleSpec{}, err
	}
	adj, err := pricing.NewAdjustment(
		pricing.AdjustmentKind(r.Adjustment.Kind),
		pricing.Direction(r.Adjustment.Direction),
		r.Adjustment.Value,
	)
	if err != nil {
		return pricing.RuleSpec{}, err
	}
	return pricing.RuleSpec{
		Name:       r.Name,
		Type:       pricing.RuleType(r.Type),
		Priority:   r.Priority,
		Active:     patch.Coalesce(r.Active, true),
		Conditions: cond,
		Adjustment: adj,
		CampIDs:    r.CampIDs,
	}, nil
}

func (c ConditionsDTO) ToDomain() (pricing.Conditions, error) {
	var rec converter.ConditionsRecord
	if err := copier.Copy(&rec, &c); err != nil {
		return pricing.Conditions{}, err
	}
	return converter.ConditionsFromRecord(rec)
}

type RuleActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

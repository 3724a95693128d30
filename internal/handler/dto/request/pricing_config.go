package request

import (
	"camp-pricing/internal/domain/pricing"
	"camp-pricing/internal/pkg/patch"

	"github.com/shopspring/decimal"
)

// PricingConfigRequest is a partial update; omitted fields keep their
// current value.
type PricingConfigRequest struct {
	Enabled           *bool            `json:"enabled,omitempty"`
	DemandWeight      *decimal.Decimal `json:"demand_weight,omitempty"`
	SeasonalityWeight *decimal.Decimal `json:"seasonality_weight,omitempty"`
	CompetitorWeight  *decimal.Decimal `json:"competitor_weight,omitempty"`
	MinMultiplier     *decimal.Decimal `json:"min_multiplier,omitempty"`
	MaxMultiplier     *decimal.Decimal `json:"max_multiplier,omitempty"`
	UpdateFrequency   *string          `json:"update_frequency,omitempty" binding:"omitempty,oneof=hourly daily weekly"`
}

func (r PricingConfigRequest) ApplyTo(current pricing.DynamicConfig) pricing.DynamicConfig {
	next := current
	next.Enabled = patch.Coalesce(r.Enabled, current.Enabled)
	next.DemandWeight = patch.Coalesce(r.DemandWeight, current.DemandWeight)
	next.SeasonalityWeight = patch.Coalesce(r.SeasonalityWeight, current.SeasonalityWeight)
	next.CompetitorWeight = patch.Coalesce(r.CompetitorWeight, current.CompetitorWeight)
	next.MinMultiplier = patch.Coalesce(r.MinMultiplier, current.MinMultiplier)
	next.MaxMultiplier = patch.Coalesce(r.MaxMultiplier, current.MaxMultiplier)
	if r.UpdateFrequency != nil {
		next.UpdateFrequency = pricing.UpdateFrequency(*r.UpdateFrequency)
	}
	return next
}

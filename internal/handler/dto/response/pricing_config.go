package response

import (
	"time"

	"camp-pricing/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type PricingConfigResponse struct {
	CampID            uuid.UUID       `json:"camp_id"`
	Enabled           bool            `json:"enabled"`
	DemandWeight      decimal.Decimal `json:"demand_weight"`
	SeasonalityWeight decimal.Decimal `json:"seasonality_weight"`
	CompetitorWeight  decimal.Decimal `json:"competitor_weight"`
	MinMultiplier     decimal.Decimal `json:"min_multiplier"`
	MaxMultiplier     decimal.Decimal `json:"max_multiplier"`
	UpdateFrequency   string          `json:"update_frequency"`
	UpdatedAt         *time.Time      `json:"updated_at,omitempty"`
}

func FromPricingConfig(cfg *pricing.DynamicConfig) (*PricingConfigResponse, error) {
	var resp PricingConfigResponse
	if err := copier.CopyWithOption(&resp, cfg, copier.Option{IgnoreEmpty: true}); err != nil {
		return nil, err
	}
	// a camp on defaults has never been saved
	if cfg.UpdatedAt.IsZero() {
		resp.UpdatedAt = nil
	}
	return &resp, nil
}

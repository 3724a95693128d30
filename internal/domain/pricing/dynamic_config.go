package pricing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UpdateFrequency string

const (
	FrequencyHourly UpdateFrequency = "hourly"
	FrequencyDaily  UpdateFrequency = "daily"
	FrequencyWeekly UpdateFrequency = "weekly"
)

func (f UpdateFrequency) IsValid() bool {
	switch f {
	case FrequencyHourly, FrequencyDaily, FrequencyWeekly:
		return true
	default:
		return false
	}
}

// TTL is how long occupancy-derived data may be reused for this cadence.
func (f UpdateFrequency) TTL() time.Duration {
	switch f {
	case FrequencyHourly:
		return time.Hour
	case FrequencyWeekly:
		return 7 * 24 * time.Hour
	default:
		return 24 * time.Hour
	}
}

var (
	DefaultMinMultiplier = decimal.RequireFromString("0.7")
	DefaultMaxMultiplier = decimal.RequireFromString("2.0")
)

// DynamicConfig bounds the overall multiplier of a camp's composed price.
// The weights are carried for the organizer dashboard and not used in composition.
type DynamicConfig struct {
	CampID            uuid.UUID
	Enabled           bool
	DemandWeight      decimal.Decimal
	SeasonalityWeight decimal.Decimal
	CompetitorWeight  decimal.Decimal
	MinMultiplier     decimal.Decimal
	MaxMultiplier     decimal.Decimal
	UpdateFrequency   UpdateFrequency
	UpdatedAt         time.Time
}

// DefaultDynamicConfig is used for camps that never saved a config.
func DefaultDynamicConfig(campID uuid.UUID) *DynamicConfig {
	return &DynamicConfig{
		CampID:            campID,
		Enabled:           false,
		DemandWeight:      decimal.Zero,
		SeasonalityWeight: decimal.Zero,
		CompetitorWeight:  decimal.Zero,
		MinMultiplier:     DefaultMinMultiplier,
		MaxMultiplier:     DefaultMaxMultiplier,
		UpdateFrequency:   FrequencyDaily,
	}
}

func (c *DynamicConfig) Validate() error {
	if c.CampID == uuid.Nil {
		return ErrMissingCamp
	}
	if !c.MinMultiplier.IsPositive() || c.MinMultiplier.GreaterThan(c.MaxMultiplier) {
		return ErrInvalidMultiplierBounds
	}
	if !c.UpdateFrequency.IsValid() {
		return ErrInvalidUpdateFrequency
	}
	if c.DemandWeight.IsNegative() || c.SeasonalityWeight.IsNegative() || c.CompetitorWeight.IsNegative() {
		return ErrNegativeWeight
	}
	return nil
}

// Clamp restricts m to [MinMultiplier, MaxMultiplier].
func (c *DynamicConfig) Clamp(m decimal.Decimal) decimal.Decimal {
	if m.LessThan(c.MinMultiplier) {
		return c.MinMultiplier
	}
	if m.GreaterThan(c.MaxMultiplier) {
		return c.MaxMultiplier
	}
	return m
}

// CacheTTL is the cadence TTL, or the daily one for camps without a config.
func (c *DynamicConfig) CacheTTL() time.Duration {
	if c == nil {
		return FrequencyDaily.TTL()
	}
	return c.UpdateFrequency.TTL()
}

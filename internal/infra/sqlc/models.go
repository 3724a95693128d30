package sqlc

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type PricingRules struct {
	ID                  pgtype.UUID
	Name                string
	RuleType            string
	Priority            int32
	Active              bool
	Conditions          []byte
	AdjustmentKind      string
	AdjustmentDirection string
	AdjustmentValue     pgtype.Numeric
	CreatedAt           pgtype.Timestamptz
	UpdatedAt           pgtype.Timestamptz
}

type AvailabilitySlots struct {
	CampID    pgtype.UUID
	SlotDate  pgtype.Date
	Capacity  int32
	Booked    int32
	BasePrice pgtype.Numeric
	Available bool
	Version   int64
	UpdatedAt pgtype.Timestamptz
}

type DynamicPricingConfigs struct {
	CampID            pgtype.UUID
	Enabled           bool
	DemandWeight      pgtype.Numeric
	SeasonalityWeight pgtype.Numeric
	CompetitorWeight  pgtype.Numeric
	MinMultiplier     pgtype.Numeric
	MaxMultiplier     pgtype.Numeric
	UpdateFrequency   string
	UpdatedAt         pgtype.Timestamptz
}

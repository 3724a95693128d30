package converter

import (
	"camp-pricing/internal/domain/pricing"
	"camp-pricing/internal/infra/sqlc"
	"camp-pricing/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

func ConfigToRow(cfg *pricing.DynamicConfig) (sqlc.DynamicPricingConfigs, error) {
	row := sqlc.DynamicPricingConfigs{
		CampID:          pgconv.UUIDToPgtype(cfg.CampID),
		Enabled:         cfg.Enabled,
		UpdateFrequency: string(cfg.UpdateFrequency),
		UpdatedAt:       pgconv.TimeToPgtype(cfg.UpdatedAt),
	}
	fields := []struct {
		dst *pgtype.Numeric
		src decimal.Decimal
	}{
		{&row.DemandWeight, cfg.DemandWeight},
		{&row.SeasonalityWeight, cfg.SeasonalityWeight},
		{&row.CompetitorWeight, cfg.CompetitorWeight},
		{&row.MinMultiplier, cfg.MinMultiplier},
		{&row.MaxMultiplier, cfg.MaxMultiplier},
	}
	for _, f := range fields {
		n, err := pgconv.NumericFromDecimal(f.src)
		if err != nil {
			return sqlc.DynamicPricingConfigs{}, err
		}
		*f.dst = n
	}
	return row, nil
}

func ConfigFromRow(row sqlc.DynamicPricingConfigs) (*pricing.DynamicConfig, error) {
	cfg := &pricing.DynamicConfig{
		CampID:          pgconv.UUIDFromPgtype(row.CampID),
		Enabled:         row.Enabled,
		UpdateFrequency: pricing.UpdateFrequency(row.UpdateFrequency),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}
	fields := []struct {
		dst *decimal.Decimal
		src pgtype.Numeric
	}{
		{&cfg.DemandWeight, row.DemandWeight},
		{&cfg.SeasonalityWeight, row.SeasonalityWeight},
		{&cfg.CompetitorWeight, row.CompetitorWeight},
		{&cfg.MinMultiplier, row.MinMultiplier},
		{&cfg.MaxMultiplier, row.MaxMultiplier},
	}
	for _, f := range fields {
		d, err := pgconv.DecimalFromNumeric(f.src)
		if err != nil {
			return nil, err
		}
		*f.dst = d
	}
	return cfg, nil
}

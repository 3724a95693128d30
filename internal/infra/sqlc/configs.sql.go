package sqlc

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const getConfig = `-- name: GetConfig :one
SELECT camp_id, enabled, demand_weight, seasonality_weight, competitor_weight,
       min_multiplier, max_multiplier, update_frequency, updated_at
FROM dynamic_pricing_configs
WHERE camp_id = $1
`

func (q *Queries) GetConfig(ctx context.Context, db DBTX, campID pgtype.UUID) (DynamicPricingConfigs, error) {
	row := db.QueryRow(ctx, getConfig, campID)
	var i DynamicPricingConfigs
	err := row.Scan(
		&i.CampID,
		&i.Enabled,
		&i.DemandWeight,
		&i.SeasonalityWeight,
		&i.CompetitorWeight,
		&i.MinMultiplier,
		&i.MaxMultiplier,
		&i.UpdateFrequency,
		&i.UpdatedAt,
	)
	return i, err
}

const upsertConfig = `-- name: UpsertConfig :exec
INSERT INTO dynamic_pricing_configs (
    camp_id, enabled, demand_weight, seasonality_weight, competitor_weight,
    min_multiplier, max_multiplier, update_frequency, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (camp_id) DO UPDATE SET
    enabled = EXCLUDED.enabled,
    demand_weight = EXCLUDED.demand_weight,
    seasonality_weight = EXCLUDED.seasonality_weight,
    competitor_weight = EXCLUDED.competitor_weight,
    min_multiplier = EXCLUDED.min_multiplier,
    max_multiplier = EXCLUDED.max_multiplier,
    update_frequency = EXCLUDED.update_frequency,
    updated_at = EXCLUDED.updated_at
`

func (q *Queries) UpsertConfig(ctx context.Context, db DBTX, arg DynamicPricingConfigs) error {
	_, err := db.Exec(ctx, upsertConfig,
		arg.CampID,
		arg.Enabled,
		arg.DemandWeight,
		arg.SeasonalityWeight,
		arg.CompetitorWeight,
		arg.MinMultiplier,
		arg.MaxMultiplier,
		arg.UpdateFrequency,
		arg.UpdatedAt,
	)
	return err
}

package repository

import (
	"context"

	"camp-pricing/internal/domain/pricing"
	"camp-pricing/internal/infra"
	"camp-pricing/internal/infra/repository/converter"
	"camp-pricing/internal/infra/sqlc"
	"camp-pricing/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ConfigQueries interface {
	GetConfig(ctx context.Context, db sqlc.DBTX, campID pgtype.UUID) (sqlc.DynamicPricingConfigs, error)
	UpsertConfig(ctx context.Context, db sqlc.DBTX, arg sqlc.DynamicPricingConfigs) error
}

type ConfigRepository struct {
	queries ConfigQueries
	db      sqlc.DBTX
}

func NewConfigRepository(queries ConfigQueries, db sqlc.DBTX) *ConfigRepository {
	return &ConfigRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ConfigRepository) LoadConfig(ctx context.Context, campID uuid.UUID) (*pricing.DynamicConfig, error) {
	row, err := r.queries.GetConfig(ctx, r.db, pgconv.UUIDToPgtype(campID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "pricing config not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to load pricing config", err)
	}
	cfg, err := converter.ConfigFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindCodec, "failed to decode pricing config", err)
	}
	return cfg, nil
}

func (r *ConfigRepository) SaveConfig(ctx context.Context, cfg *pricing.DynamicConfig) error {
	row, err := converter.ConfigToRow(cfg)
	if err != nil {
		return infra.WrapRepoErr(infra.KindCodec, "failed to encode pricing config", err)
	}
	if err := r.queries.UpsertConfig(ctx, r.db, row); err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to save pricing config", err)
	}
	return nil
}

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

type RuleQueries interface {
	ListRulesForCamp(ctx context.Context, db sqlc.DBTX, campID pgtype.UUID) ([]sqlc.RuleWithCampsRow, error)
	GetRuleByID(ctx context.Context, db sqlc.DBTX, id pgtype.UUID) (sqlc.RuleWithCampsRow, error)
	UpsertRule(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertRuleParams) error
	DeleteRuleCamps(ctx context.Context, db sqlc.DBTX, ruleID pgtype.UUID) error
	InsertRuleCamps(ctx context.Context, db sqlc.DBTX, ruleID pgtype.UUID, campIDs []pgtype.UUID) error
	DeleteRule(ctx context.Context, db sqlc.DBTX, id pgtype.UUID) (int64, error)
}

// Transactor is satisfied by uow.PostgresUoW.
type Transactor interface {
	Within(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

type RuleRepository struct {
	queries RuleQueries
	tx      Transactor
}

func NewRuleRepository(queries RuleQueries, tx Transactor) *RuleRepository {
	return &RuleRepository{
		queries: queries,
		tx:      tx,
	}
}

func (r *RuleRepository) LoadRules(ctx context.Context, campID uuid.UUID) ([]*pricing.PricingRule, error) {
	var rules []*pricing.PricingRule
	err := r.tx.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		rows, err := r.queries.ListRulesForCamp(ctx, db, pgconv.UUIDToPgtype(campID))
		if err != nil {
			return infra.WrapRepoErr(infra.KindDBFailure, "failed to list rules", err)
		}
		rules = make([]*pricing.PricingRule, 0, len(rows))
		for _, row := range rows {
			rule, err := converter.RuleFromRow(row)
			if err != nil {
				return infra.WrapRepoErr(infra.KindCodec, "failed to decode rule", err)
			}
			rules = append(rules, rule)
		}
		return nil
	})
	return rules, err
}

func (r *RuleRepository) GetRule(ctx context.Context, id uuid.UUID) (*pricing.PricingRule, error) {
	var rule *pricing.PricingRule
	err := r.tx.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		row, err := r.queries.GetRuleByID(ctx, db, pgconv.UUIDToPgtype(id))
		if err != nil {
			if pgconv.IsNoRows(err) {
				return infra.WrapRepoErr(infra.KindNotFound, "rule not found", err)
			}
			return infra.WrapRepoErr(infra.KindDBFailure, "failed to get rule", err)
		}
		rule, err = converter.RuleFromRow(row)
		if err != nil {
			return infra.WrapRepoErr(infra.KindCodec, "failed to decode rule", err)
		}
		return nil
	})
	return rule, err
}

// SaveRule replaces the rule row and its camp list in one transaction.
func (r *RuleRepository) SaveRule(ctx context.Context, rule *pricing.PricingRule) error {
	params, err := converter.RuleToParams(rule)
	if err != nil {
		return infra.WrapRepoErr(infra.KindCodec, "failed to encode rule", err)
	}

	return r.tx.Within(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		if err := r.queries.UpsertRule(ctx, db, params); err != nil {
			return infra.WrapRepoErr(infra.KindDBFailure, "failed to save rule", err)
		}
		if err := r.queries.DeleteRuleCamps(ctx, db, params.ID); err != nil {
			return infra.WrapRepoErr(infra.KindDBFailure, "failed to clear rule camps", err)
		}
		if err := r.queries.InsertRuleCamps(ctx, db, params.ID, pgconv.UUIDsToPgtype(rule.CampIDs())); err != nil {
			return infra.WrapRepoErr(infra.KindDBFailure, "failed to save rule camps", err)
		}
		return nil
	})
}

func (r *RuleRepository) DeleteRule(ctx context.Context, id uuid.UUID) error {
	return r.tx.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		n, err := r.queries.DeleteRule(ctx, db, pgconv.UUIDToPgtype(id))
		if err != nil {
			return infra.WrapRepoErr(infra.KindDBFailure, "failed to delete rule", err)
		}
		if n == 0 {
			return infra.WrapRepoErr(infra.KindNotFound, "rule not found", nil)
		}
		return nil
	})
}

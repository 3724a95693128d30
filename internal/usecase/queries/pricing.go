package queries

//go:generate mockgen -source=pricing.go -destination=../../../tests/mock/queries/pricing.go -package=queriesmock

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"camp-pricing/internal/domain/pricing"
	"camp-pricing/internal/pkg/config"
	"camp-pricing/internal/pkg/errs"
	"camp-pricing/internal/usecase/shared"

	"github.com/google/uuid"
)

type RuleQueries interface {
	// ListForCamp returns the camp's active rules in (priority, id) order.
	ListForCamp(ctx context.Context, campID uuid.UUID) ([]*pricing.PricingRule, error)
	// ListRules returns every rule of the camp, inactive ones included.
	ListRules(ctx context.Context, campID uuid.UUID) ([]*pricing.PricingRule, error)
	GetRule(ctx context.Context, id uuid.UUID) (*pricing.PricingRule, error)
}

type ConfigQueries interface {
	// GetConfig falls back to the default config for camps that never saved one.
	GetConfig(ctx context.Context, campID uuid.UUID) (*pricing.DynamicConfig, error)
}

type pricingQueriesImpl struct {
	rules    shared.RuleStore
	configs  shared.ConfigStore
	cache    shared.RuleCache
	cacheTTL time.Duration
	logger   *slog.Logger
}

func newPricingQueries(rules shared.RuleStore, configs shared.ConfigStore, cache shared.RuleCache, cfg config.Config, logger *slog.Logger) *pricingQueriesImpl {
	return &pricingQueriesImpl{
		rules:    rules,
		configs:  configs,
		cache:    cache,
		cacheTTL: cfg.Redis.RuleCacheTTL,
		logger:   logger,
	}
}

func NewRuleQueries(rules shared.RuleStore, configs shared.ConfigStore, cache shared.RuleCache, cfg config.Config, logger *slog.Logger) RuleQueries {
	return newPricingQueries(rules, configs, cache, cfg, logger)
}

func NewConfigQueries(rules shared.RuleStore, configs shared.ConfigStore, cache shared.RuleCache, cfg config.Config, logger *slog.Logger) ConfigQueries {
	return newPricingQueries(rules, configs, cache, cfg, logger)
}

func (q *pricingQueriesImpl) ListForCamp(ctx context.Context, campID uuid.UUID) ([]*pricing.PricingRule, error) {
	// taken before loading, so an edit racing this fill invalidates it
	gen, err := q.cache.Generation(ctx, campID)
	cacheUp := err == nil
	if err != nil {
		q.logger.Warn("rule cache generation read failed", "camp_id", campID, "error", err.Error())
	}
	if cacheUp {
		cached, hit, err := q.cache.Get(ctx, campID, gen)
		if err != nil {
			q.logger.Warn("rule cache read failed", "camp_id", campID, "error", err.Error())
		}
		if hit {
			return cached, nil
		}
	}

	all, err := q.rules.LoadRules(ctx, campID)
	if err != nil {
		return nil, err
	}
	active := slices.DeleteFunc(slices.Clone(all), func(r *pricing.PricingRule) bool {
		return !r.IsActive() || !r.AppliesToCamp(campID)
	})
	pricing.SortRules(active)

	if !cacheUp {
		return active, nil
	}
	ttl, err := q.ruleCacheTTL(ctx, campID)
	if err != nil {
		return nil, err
	}
	if err := q.cache.Set(ctx, campID, gen, active, ttl); err != nil {
		q.logger.Warn("rule cache write failed", "camp_id", campID, "error", err.Error())
	}
	return active, nil
}

// A cached list must not outlive the camp's demand update cadence.
func (q *pricingQueriesImpl) ruleCacheTTL(ctx context.Context, campID uuid.UUID) (time.Duration, error) {
	cfg, err := q.GetConfig(ctx, campID)
	if err != nil {
		return 0, err
	}
	return min(q.cacheTTL, cfg.CacheTTL()), nil
}

func (q *pricingQueriesImpl) ListRules(ctx context.Context, campID uuid.UUID) ([]*pricing.PricingRule, error) {
	all, err := q.rules.LoadRules(ctx, campID)
	if err != nil {
		return nil, err
	}
	all = slices.Clone(all)
	pricing.SortRules(all)
	return all, nil
}

func (q *pricingQueriesImpl) GetRule(ctx context.Context, id uuid.UUID) (*pricing.PricingRule, error) {
	return q.rules.GetRule(ctx, id)
}

func (q *pricingQueriesImpl) GetConfig(ctx context.Context, campID uuid.UUID) (*pricing.DynamicConfig, error) {
	cfg, err := q.configs.LoadConfig(ctx, campID)
	if errs.Is(err, errs.ErrNotFound) {
		return pricing.DefaultDynamicConfig(campID), nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

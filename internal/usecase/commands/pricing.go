package commands

//go:generate mockgen -source=pricing.go -destination=../../../tests/mock/commands/pricing.go -package=commandsmock

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"camp-pricing/internal/domain/pricing"
	"camp-pricing/internal/pkg/clock"
	"camp-pricing/internal/usecase/shared"

	"github.com/google/uuid"
)

type RuleCommands interface {
	AddRule(ctx context.Context, spec pricing.RuleSpec) (*pricing.PricingRule, error)
	UpdateRule(ctx context.Context, id uuid.UUID, spec pricing.RuleSpec) (*pricing.PricingRule, error)
	RemoveRule(ctx context.Context, id uuid.UUID) error
	SetRuleActive(ctx context.Context, id uuid.UUID, active bool) (*pricing.PricingRule, error)
}

type ConfigCommands interface {
	SaveConfig(ctx context.Context, cfg pricing.DynamicConfig) (*pricing.DynamicConfig, error)
}

type ruleCommandsImpl struct {
	rules  shared.RuleStore
	cache  shared.RuleCache
	events shared.EventPublisher
	clock  clock.Clock
	logger *slog.Logger
}

func NewRuleCommands(rules shared.RuleStore, cache shared.RuleCache, events shared.EventPublisher, clk clock.Clock, logger *slog.Logger) RuleCommands {
	return &ruleCommandsImpl{rules: rules, cache: cache, events: events, clock: clk, logger: logger}
}

func (uc *ruleCommandsImpl) AddRule(ctx context.Context, spec pricing.RuleSpec) (*pricing.PricingRule, error) {
	rule, err := pricing.NewPricingRule(uuid.Nil, spec, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := uc.rules.SaveRule(ctx, rule); err != nil {
		return nil, err
	}
	uc.invalidate(ctx, rule.CampIDs())
	if rule.IsActive() {
		uc.publishToggled(ctx, rule, true, rule.CreatedAt())
	}
	return rule, nil
}

func (uc *ruleCommandsImpl) UpdateRule(ctx context.Context, id uuid.UUID, spec pricing.RuleSpec) (*pricing.PricingRule, error) {
	current, err := uc.rules.GetRule(ctx, id)
	if err != nil {
		return nil, err
	}
	updated, err := current.Update(spec, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := uc.rules.SaveRule(ctx, updated); err != nil {
		return nil, err
	}
	// camps dropped from the rule must stop seeing it too
	uc.invalidate(ctx, append(current.CampIDs(), updated.CampIDs()...))
	if current.IsActive() != updated.IsActive() {
		uc.publishToggled(ctx, updated, updated.IsActive(), updated.UpdatedAt())
	}
	return updated, nil
}

func (uc *ruleCommandsImpl) RemoveRule(ctx context.Context, id uuid.UUID) error {
	current, err := uc.rules.GetRule(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.rules.DeleteRule(ctx, id); err != nil {
		return err
	}
	uc.invalidate(ctx, current.CampIDs())
	// a removed active rule stops applying just like a deactivated one
	if current.IsActive() {
		uc.publishToggled(ctx, current, false, uc.clock.Now())
	}
	return nil
}

func (uc *ruleCommandsImpl) SetRuleActive(ctx context.Context, id uuid.UUID, active bool) (*pricing.PricingRule, error) {
	current, err := uc.rules.GetRule(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.IsActive() == active {
		return current, nil
	}
	updated := current.WithActive(active, uc.clock.Now())
	if err := uc.rules.SaveRule(ctx, updated); err != nil {
		return nil, err
	}
	uc.invalidate(ctx, updated.CampIDs())
	uc.publishToggled(ctx, updated, active, updated.UpdatedAt())
	return updated, nil
}

func (uc *ruleCommandsImpl) invalidate(ctx context.Context, campIDs []uuid.UUID) {
	slices.SortFunc(campIDs, func(a, b uuid.UUID) int { return slices.Compare(a[:], b[:]) })
	campIDs = slices.Compact(campIDs)
	if err := uc.cache.Invalidate(ctx, campIDs...); err != nil {
		uc.logger.Error("rule cache invalidation failed", "camps", len(campIDs), "error", err.Error())
	}
}

func (uc *ruleCommandsImpl) publishToggled(ctx context.Context, rule *pricing.PricingRule, active bool, at time.Time) {
	evt := shared.RuleToggledEvent{
		RuleID:     rule.ID(),
		CampIDs:    rule.CampIDs(),
		Active:     active,
		OccurredAt: at,
	}
	if err := uc.events.PublishRuleToggled(ctx, evt); err != nil {
		uc.logger.Warn("failed to publish rule toggle", "rule_id", evt.RuleID, "error", err.Error())
	}
}

type configCommandsImpl struct {
	configs shared.ConfigStore
	cache   shared.RuleCache
	clock   clock.Clock
	logger  *slog.Logger
}

func NewConfigCommands(configs shared.ConfigStore, cache shared.RuleCache, clk clock.Clock, logger *slog.Logger) ConfigCommands {
	return &configCommandsImpl{configs: configs, cache: cache, clock: clk, logger: logger}
}

// SaveConfig replaces the camp's config. The rule cache is dropped because its
// TTL derives from the update cadence.
func (uc *configCommandsImpl) SaveConfig(ctx context.Context, cfg pricing.DynamicConfig) (*pricing.DynamicConfig, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.UpdatedAt = uc.clock.Now()
	if err := uc.configs.SaveConfig(ctx, &cfg); err != nil {
		return nil, err
	}
	if err := uc.cache.Invalidate(ctx, cfg.CampID); err != nil {
		uc.logger.Error("rule cache invalidation failed", "camp_id", cfg.CampID, "error", err.Error())
	}
	return &cfg, nil
}

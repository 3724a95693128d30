//go:build unit || e2e

package builder

import (
	"time"

	"camp-pricing/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RuleBuilder struct {
	ID         uuid.UUID
	Name       string
	Type       pricing.RuleType
	Priority   int
	Active     bool
	Conditions pricing.Conditions
	Kind       pricing.AdjustmentKind
	Direction  pricing.Direction
	Value      decimal.Decimal
	CampIDs    []uuid.UUID
	Now        time.Time
}

func NewRuleBuilder() *RuleBuilder {
	return &RuleBuilder{
		ID:        uuid.New(),
		Name:      "Summer season",
		Type:      pricing.RuleTypeSeasonal,
		Priority:  1,
		Active:    true,
		Kind:      pricing.KindPercentage,
		Direction: pricing.DirectionIncrease,
		Value:     decimal.NewFromInt(10),
		CampIDs:   []uuid.UUID{uuid.New()},
		Now:       time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *RuleBuilder) With(mutate func(*RuleBuilder)) *RuleBuilder {
	mutate(b)
	return b
}

func (b *RuleBuilder) WithID(id uuid.UUID) *RuleBuilder {
	b.ID = id
	return b
}

func (b *RuleBuilder) WithName(name string) *RuleBuilder {
	b.Name = name
	return b
}

func (b *RuleBuilder) WithType(t pricing.RuleType) *RuleBuilder {
	b.Type = t
	return b
}

func (b *RuleBuilder) WithPriority(p int) *RuleBuilder {
	b.Priority = p
	return b
}

func (b *RuleBuilder) WithActive(active bool) *RuleBuilder {
	b.Active = active
	return b
}

func (b *RuleBuilder) WithCamps(ids ...uuid.UUID) *RuleBuilder {
	b.CampIDs = ids
	return b
}

func (b *RuleBuilder) WithConditions(c pricing.Conditions) *RuleBuilder {
	b.Conditions = c
	return b
}

func (b *RuleBuilder) Increase(kind pricing.AdjustmentKind, value string) *RuleBuilder {
	b.Kind, b.Direction, b.Value = kind, pricing.DirectionIncrease, decimal.RequireFromString(value)
	return b
}

func (b *RuleBuilder) Decrease(kind pricing.AdjustmentKind, value string) *RuleBuilder {
	b.Kind, b.Direction, b.Value = kind, pricing.DirectionDecrease, decimal.RequireFromString(value)
	return b
}

// Build methods
func (b *RuleBuilder) BuildSpec() (pricing.RuleSpec, error) {
	adj, err := pricing.NewAdjustment(b.Kind, b.Direction, b.Value)
	if err != nil {
		return pricing.RuleSpec{}, err
	}
	return pricing.RuleSpec{
		Name:       b.Name,
		Type:       b.Type,
		Priority:   b.Priority,
		Active:     b.Active,
		Conditions: b.Conditions,
		Adjustment: adj,
		CampIDs:    b.CampIDs,
	}, nil
}

func (b *RuleBuilder) BuildDomain() (*pricing.PricingRule, error) {
	spec, err := b.BuildSpec()
	if err != nil {
		return nil, err
	}
	return pricing.NewPricingRule(b.ID, spec, b.Now)
}

func (b *RuleBuilder) MustBuild() *pricing.PricingRule {
	r, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return r
}

func IntRange(lower, upper *int) *pricing.IntRange {
	r, err := pricing.NewIntRange(lower, upper)
	if err != nil {
		panic(err)
	}
	return &r
}

func Int(v int) *int {
	return &v
}

func Percent(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

//go:build unit

package pricing_test

import (
	"strings"
	"testing"
	"time"

	"camp-pricing/internal/domain/pricing"
	"camp-pricing/internal/pkg/errs"
	"camp-pricing/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.RuleBuilder)
	errIs  error
}

func TestPricingRule(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewRuleBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, b.ID, actual.ID())
		assert.Equal(t, "Summer season", actual.Name())
		assert.Equal(t, pricing.RuleTypeSeasonal, actual.Type())
		assert.True(t, actual.IsActive())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
		assert.True(t, actual.AppliesToCamp(b.CampIDs[0]))
		assert.False(t, actual.AppliesToCamp(uuid.New()))
	})

	t.Run("generates id when nil", func(t *testing.T) {
		actual, err := builder.NewRuleBuilder().WithID(uuid.Nil).BuildDomain()
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, actual.ID())
	})

	t.Run("rule validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty name",
				mutate: func(b *builder.RuleBuilder) { b.WithName("   ") },
				errIs:  pricing.ErrEmptyRuleName,
			},
			{
				name:   "name too long",
				mutate: func(b *builder.RuleBuilder) { b.WithName(strings.Repeat("a", pricing.MaxRuleNameLength+1)) },
				errIs:  pricing.ErrRuleNameTooLong,
			},
			{
				name:   "unknown type",
				mutate: func(b *builder.RuleBuilder) { b.WithType("flash_sale") },
				errIs:  pricing.ErrInvalidRuleType,
			},
			{
				name:   "negative priority",
				mutate: func(b *builder.RuleBuilder) { b.WithPriority(-1) },
				errIs:  pricing.ErrNegativePriority,
			},
			{
				name:   "empty camp set",
				mutate: func(b *builder.RuleBuilder) { b.WithCamps() },
				errIs:  pricing.ErrEmptyCampSet,
			},
			{
				name:   "nil camp id",
				mutate: func(b *builder.RuleBuilder) { b.WithCamps(uuid.Nil) },
				errIs:  pricing.ErrEmptyCampSet,
			},
			{
				name:   "occupancy threshold over 100",
				mutate: func(b *builder.RuleBuilder) { b.Conditions.OccupancyThreshold = builder.Percent("100.5") },
				errIs:  pricing.ErrInvalidOccupancyLimit,
			},
			{
				name:   "occupancy threshold negative",
				mutate: func(b *builder.RuleBuilder) { b.Conditions.OccupancyThreshold = builder.Percent("-1") },
				errIs:  pricing.ErrInvalidOccupancyLimit,
			},
			{
				name:   "percentage decrease over 100",
				mutate: func(b *builder.RuleBuilder) { b.Decrease(pricing.KindPercentage, "101") },
				errIs:  pricing.ErrPercentDecreaseTooLarge,
			},
			{
				name:   "percentage decrease of exactly 100",
				mutate: func(b *builder.RuleBuilder) { b.Decrease(pricing.KindPercentage, "100") },
			},
			{
				name:   "percentage increase over 100",
				mutate: func(b *builder.RuleBuilder) { b.Increase(pricing.KindPercentage, "250") },
			},
			{
				name:   "negative fixed value",
				mutate: func(b *builder.RuleBuilder) { b.Increase(pricing.KindFixed, "-5") },
				errIs:  pricing.ErrNegativeAdjustment,
			},
			{
				name:   "unknown adjustment kind",
				mutate: func(b *builder.RuleBuilder) { b.Kind = "ratio" },
				errIs:  pricing.ErrInvalidAdjustmentKind,
			},
			{
				name:   "unknown direction",
				mutate: func(b *builder.RuleBuilder) { b.Direction = "sideways" },
				errIs:  pricing.ErrInvalidDirection,
			},
		})
	})

	t.Run("every validation error is marked as validation", func(t *testing.T) {
		_, err := builder.NewRuleBuilder().WithCamps().BuildDomain()
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrValidation))
		assert.False(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("duplicate camp ids are collapsed", func(t *testing.T) {
		camp := uuid.New()
		actual, err := builder.NewRuleBuilder().WithCamps(camp, camp).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{camp}, actual.CampIDs())
	})

	t.Run("update keeps identity and creation time", func(t *testing.T) {
		b := builder.NewRuleBuilder()
		original := b.MustBuild()
		later := b.Now.Add(time.Hour)

		spec := original.Spec()
		spec.Name = "Renamed"
		spec.Priority = 7
		updated, err := original.Update(spec, later)
		require.NoError(t, err)

		assert.Equal(t, original.ID(), updated.ID())
		assert.Equal(t, original.CreatedAt(), updated.CreatedAt())
		assert.Equal(t, later, updated.UpdatedAt())
		assert.Equal(t, "Renamed", updated.Name())
		assert.Equal(t, 7, updated.Priority())
		assert.Equal(t, "Summer season", original.Name())
	})

	t.Run("update rejects invalid spec", func(t *testing.T) {
		original := builder.NewRuleBuilder().MustBuild()
		spec := original.Spec()
		spec.CampIDs = nil
		_, err := original.Update(spec, time.Now())
		require.ErrorIs(t, err, pricing.ErrEmptyCampSet)
	})

	t.Run("with active returns a copy", func(t *testing.T) {
		original := builder.NewRuleBuilder().MustBuild()
		off := original.WithActive(false, original.CreatedAt().Add(time.Minute))
		assert.False(t, off.IsActive())
		assert.True(t, original.IsActive())
		assert.True(t, off.UpdatedAt().After(original.UpdatedAt()))
	})
}

func TestCompareRules(t *testing.T) {
	low := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	high := uuid.MustParse("ffffffff-0000-0000-0000-000000000000")

	a := builder.NewRuleBuilder().WithID(high).WithPriority(1).MustBuild()
	b := builder.NewRuleBuilder().WithID(low).WithPriority(2).MustBuild()
	c := builder.NewRuleBuilder().WithID(low).WithPriority(1).MustBuild()

	rules := []*pricing.PricingRule{b, a, c}
	pricing.SortRules(rules)

	assert.Equal(t, []uuid.UUID{low, high, low}, []uuid.UUID{rules[0].ID(), rules[1].ID(), rules[2].ID()})
	assert.Equal(t, []int{1, 1, 2}, []int{rules[0].Priority(), rules[1].Priority(), rules[2].Priority()})
}

func TestAdjustment(t *testing.T) {
	running := decimal.NewFromInt(400)
	tests := []struct {
		name      string
		kind      pricing.AdjustmentKind
		direction pricing.Direction
		value     string
		want      string
	}{
		{"percentage increase", pricing.KindPercentage, pricing.DirectionIncrease, "15", "60"},
		{"percentage decrease", pricing.KindPercentage, pricing.DirectionDecrease, "70", "-280"},
		{"fixed increase", pricing.KindFixed, pricing.DirectionIncrease, "25.5", "25.5"},
		{"fixed decrease", pricing.KindFixed, pricing.DirectionDecrease, "500", "-500"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adj, err := pricing.NewAdjustment(tt.kind, tt.direction, decimal.RequireFromString(tt.value))
			require.NoError(t, err)
			got := adj.SignedDelta(running)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewRuleBuilder().With(tc.mutate)
			actual, err := b.BuildDomain()

			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, actual)
		})
	}
}

package pricing

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type WarningKind string

const (
	WarningMultiplierClamped WarningKind = "multiplier_clamped"
	WarningFlooredAtZero     WarningKind = "floored_at_zero"
)

// ClampedPriceWarning is informational; a quote carrying one is still valid.
type ClampedPriceWarning struct {
	Kind              WarningKind
	RuleID            *uuid.UUID
	Multiplier        decimal.Decimal
	ClampedMultiplier decimal.Decimal
	PriceBefore       decimal.Decimal
	PriceAfter        decimal.Decimal
}

// Step is one applied rule in the breakdown.
type Step struct {
	RuleID        uuid.UUID
	RuleName      string
	RuleType      RuleType
	SignedDelta   decimal.Decimal
	RunningAfter  decimal.Decimal
	ClampedToZero bool
}

type Composition struct {
	BasePrice  decimal.Decimal
	FinalPrice decimal.Decimal
	// Multiplier is FinalPrice/BasePrice after any clamping, 1 for a zero base.
	Multiplier decimal.Decimal
	Steps      []Step
	Warnings   []ClampedPriceWarning
}

func (c Composition) Clamped() bool {
	return len(c.Warnings) > 0
}

type PriceComposer struct{}

func NewPriceComposer() *PriceComposer {
	return &PriceComposer{}
}

// Compose applies rules in the given order, each against the running price
// left by the previous one. cfg may be nil.
func (pc *PriceComposer) Compose(base decimal.Decimal, rules []*PricingRule, cfg *DynamicConfig) Composition {
	running := base
	out := Composition{
		BasePrice: base,
		Steps:     make([]Step, 0, len(rules)),
	}

	for _, r := range rules {
		before := running
		delta := r.adjustment.SignedDelta(running)
		running = running.Add(delta)
		floored := false
		if running.IsNegative() {
			running = decimal.Zero
		}
		if running.IsZero() && delta.IsNegative() {
			floored = true
			id := r.id
			out.Warnings = append(out.Warnings, ClampedPriceWarning{
				Kind:        WarningFlooredAtZero,
				RuleID:      &id,
				PriceBefore: before,
				PriceAfter:  running,
			})
		}
		out.Steps = append(out.Steps, Step{
			RuleID:        r.id,
			RuleName:      r.name,
			RuleType:      r.ruleType,
			SignedDelta:   delta,
			RunningAfter:  running,
			ClampedToZero: floored,
		})
	}

	multiplier := decimal.NewFromInt(1)
	if !base.IsZero() {
		multiplier = running.Div(base)
	}

	if cfg != nil && cfg.Enabled {
		clamped := cfg.Clamp(multiplier)
		if !clamped.Equal(multiplier) {
			before := running
			running = base.Mul(clamped)
			out.Warnings = append(out.Warnings, ClampedPriceWarning{
				Kind:              WarningMultiplierClamped,
				Multiplier:        multiplier,
				ClampedMultiplier: clamped,
				PriceBefore:       before,
				PriceAfter:        running,
			})
			multiplier = clamped
		}
	}

	out.FinalPrice = running
	out.Multiplier = multiplier
	return out
}

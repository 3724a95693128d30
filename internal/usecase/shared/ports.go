package shared

import (
	"context"
	"time"

	"camp-pricing/internal/domain/availability"
	"camp-pricing/internal/domain/pricing"

	"github.com/google/uuid"
)

// RuleStore persists pricing rules. LoadRules returns every rule that lists
// campID, active or not, in any order.
type RuleStore interface {
	LoadRules(ctx context.Context, campID uuid.UUID) ([]*pricing.PricingRule, error)
	GetRule(ctx context.Context, id uuid.UUID) (*pricing.PricingRule, error)
	SaveRule(ctx context.Context, rule *pricing.PricingRule) error
	DeleteRule(ctx context.Context, id uuid.UUID) error
}

// SlotStore persists availability slots. A missing slot is errs.ErrNotFound.
type SlotStore interface {
	LoadSlot(ctx context.Context, campID uuid.UUID, date time.Time) (*availability.Slot, error)
	// InsertSlot fails with errs.ErrConcurrencyConflict if the key already exists.
	InsertSlot(ctx context.Context, slot *availability.Slot) error
	// CompareAndSwapSlot writes slot only if the stored version still equals
	// expectedVersion. It reports false, not an error, when it does not.
	CompareAndSwapSlot(ctx context.Context, expectedVersion int64, slot *availability.Slot) (bool, error)
}

// ConfigStore persists per-camp dynamic pricing configs. A camp without one
// is errs.ErrNotFound.
type ConfigStore interface {
	LoadConfig(ctx context.Context, campID uuid.UUID) (*pricing.DynamicConfig, error)
	SaveConfig(ctx context.Context, cfg *pricing.DynamicConfig) error
}

// RuleCache holds the sorted active rule list of a camp. Entries live under
// the camp's generation, which Invalidate bumps; a fill that started before
// an edit lands under the old generation and is never read again.
type RuleCache interface {
	Generation(ctx context.Context, campID uuid.UUID) (int64, error)
	Get(ctx context.Context, campID uuid.UUID, gen int64) ([]*pricing.PricingRule, bool, error)
	Set(ctx context.Context, campID uuid.UUID, gen int64, rules []*pricing.PricingRule, ttl time.Duration) error
	Invalidate(ctx context.Context, campIDs ...uuid.UUID) error
}

// EventPublisher is the automation hook. Implementations may drop events;
// callers log failures and carry on.
type EventPublisher interface {
	PublishSlotTransition(ctx context.Context, evt SlotTransitionEvent) error
	PublishRuleToggled(ctx context.Context, evt RuleToggledEvent) error
}

type ReservationOutcome string

const (
	OutcomeReserved         ReservationOutcome = "reserved"
	OutcomeCapacityExceeded ReservationOutcome = "capacity_exceeded"
	OutcomeBlocked          ReservationOutcome = "blocked"
	OutcomeConflict         ReservationOutcome = "conflict"
	OutcomeTimeout          ReservationOutcome = "timeout"
	OutcomeError            ReservationOutcome = "error"
)

type Metrics interface {
	QuoteServed(clamped bool)
	ReservationFinished(outcome ReservationOutcome)
	ConflictRetried()
}

type NopMetrics struct{}

func (NopMetrics) QuoteServed(bool)                       {}
func (NopMetrics) ReservationFinished(ReservationOutcome) {}
func (NopMetrics) ConflictRetried()                       {}

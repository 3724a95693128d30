package shared

import (
	"context"
	"log/slog"
	"time"

	"camp-pricing/internal/domain/availability"

	"github.com/google/uuid"
)

type SlotTransitionEvent struct {
	CampID     uuid.UUID               `json:"camp_id"`
	Date       string                  `json:"date"`
	Transition availability.Transition `json:"transition"`
	Capacity   int                     `json:"capacity"`
	Booked     int                     `json:"booked"`
	Version    int64                   `json:"version"`
	OccurredAt time.Time               `json:"occurred_at"`
}

type RuleToggledEvent struct {
	RuleID     uuid.UUID   `json:"rule_id"`
	CampIDs    []uuid.UUID `json:"camp_ids"`
	Active     bool        `json:"active"`
	OccurredAt time.Time   `json:"occurred_at"`
}

// LogPublisher only logs events. It stands in when no broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) PublishSlotTransition(_ context.Context, evt SlotTransitionEvent) error {
	p.logger.Info("slot transition",
		"camp_id", evt.CampID,
		"date", evt.Date,
		"transition", evt.Transition,
		"booked", evt.Booked,
		"capacity", evt.Capacity)
	return nil
}

func (p *LogPublisher) PublishRuleToggled(_ context.Context, evt RuleToggledEvent) error {
	p.logger.Info("rule toggled", "rule_id", evt.RuleID, "active", evt.Active)
	return nil
}

package response

import (
	"camp-pricing/internal/pkg/clock"
	"camp-pricing/internal/usecase/quote"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type StepResponse struct {
	RuleID        uuid.UUID       `json:"rule_id"`
	RuleName      string          `json:"rule_name"`
	RuleType      string          `json:"rule_type"`
	SignedDelta   decimal.Decimal `json:"delta"`
	RunningAfter  decimal.Decimal `json:"running_total"`
	ClampedToZero bool            `json:"clamped_to_zero,omitempty"`
}

type WarningResponse struct {
	Kind              string          `json:"kind"`
	RuleID            *uuid.UUID      `json:"rule_id,omitempty"`
	Multiplier        decimal.Decimal `json:"multiplier"`
	ClampedMultiplier decimal.Decimal `json:"clamped_multiplier"`
	PriceBefore       decimal.Decimal `json:"price_before"`
	PriceAfter        decimal.Decimal `json:"price_after"`
}

type QuoteResponse struct {
	CampID            uuid.UUID         `json:"camp_id"`
	Date              string            `json:"date"`
	Participants      int               `json:"participants"`
	RequestedUnits    int               `json:"requested_units"`
	Available         bool              `json:"available"`
	RemainingCapacity int               `json:"remaining_capacity"`
	BasePrice         decimal.Decimal   `json:"base_price"`
	FinalPrice        decimal.Decimal   `json:"final_price"`
	Multiplier        decimal.Decimal   `json:"multiplier"`
	Breakdown         []StepResponse    `json:"breakdown"`
	Warnings          []WarningResponse `json:"warnings"`
}

type ReservationResponse struct {
	ReservationID uuid.UUID     `json:"reservation_id"`
	Quote         QuoteResponse `json:"quote"`
	Slot          SlotResponse  `json:"slot"`
}

func FromQuote(q *quote.Quote) (*QuoteResponse, error) {
	resp := &QuoteResponse{
		CampID:            q.CampID,
		Date:              clock.FormatDate(q.Date),
		Participants:      q.Participants,
		RequestedUnits:    q.RequestedUnits,
		Available:         q.Available,
		RemainingCapacity: q.RemainingCapacity,
		BasePrice:         q.BasePrice,
		FinalPrice:        q.FinalPrice,
		Multiplier:        q.Multiplier,
		Breakdown:         make([]StepResponse, 0, len(q.Steps)),
		Warnings:          make([]WarningResponse, 0, len(q.Warnings)),
	}
	if err := copier.Copy(&resp.Breakdown, &q.Steps); err != nil {
		return nil, err
	}
	if err := copier.Copy(&resp.Warnings, &q.Warnings); err != nil {
		return nil, err
	}
	return resp, nil
}

func FromReservation(r *quote.Reservation) (*ReservationResponse, error) {
	q, err := FromQuote(&r.Quote)
	if err != nil {
		return nil, err
	}
	return &ReservationResponse{
		ReservationID: r.ID,
		Quote:         *q,
		Slot:          FromSlot(r.Slot),
	}, nil
}

package quote

//go:generate mockgen -source=service.go -destination=../../../tests/mock/quote/service.go -package=quotemock

import (
	"context"
	"time"

	"camp-pricing/internal/domain/availability"
	"camp-pricing/internal/domain/pricing"
	"camp-pricing/internal/pkg/clock"
	"camp-pricing/internal/pkg/errs"
	"camp-pricing/internal/usecase/ledger"
	"camp-pricing/internal/usecase/queries"
	"camp-pricing/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Request struct {
	CampID         uuid.UUID
	Date           time.Time
	EndDate        *time.Time
	Participants   int
	RequestedUnits int
}

type Quote struct {
	CampID            uuid.UUID
	Date              time.Time
	Participants      int
	RequestedUnits    int
	Available         bool
	RemainingCapacity int
	BasePrice         decimal.Decimal
	FinalPrice        decimal.Decimal
	Multiplier        decimal.Decimal
	Steps             []pricing.Step
	Warnings          []pricing.ClampedPriceWarning
}

// Reservation is a committed booking of RequestedUnits at Quote.FinalPrice.
type Reservation struct {
	ID    uuid.UUID
	Quote Quote
	Slot  *availability.Slot
}

type Service interface {
	// GetQuote prices a booking without changing any state.
	GetQuote(ctx context.Context, req Request) (*Quote, error)
	// ReserveAndQuote prices and reserves under the slot's lock, so the
	// charged price is computed from the same state the reservation changes.
	ReserveAndQuote(ctx context.Context, req Request) (*Reservation, error)
}

type serviceImpl struct {
	ledger   *ledger.Ledger
	surge    *SurgeEvaluator
	rules    queries.RuleQueries
	configs  queries.ConfigQueries
	matcher  *pricing.Matcher
	composer *pricing.PriceComposer
	clock    clock.Clock
	metrics  shared.Metrics
}

func NewService(
	l *ledger.Ledger,
	surge *SurgeEvaluator,
	rules queries.RuleQueries,
	configs queries.ConfigQueries,
	clk clock.Clock,
	metrics shared.Metrics,
) Service {
	return &serviceImpl{
		ledger:   l,
		surge:    surge,
		rules:    rules,
		configs:  configs,
		matcher:  pricing.NewMatcher(),
		composer: pricing.NewPriceComposer(),
		clock:    clk,
		metrics:  metrics,
	}
}

func (s *serviceImpl) GetQuote(ctx context.Context, req Request) (*Quote, error) {
	bctx, err := s.bookingContext(req)
	if err != nil {
		return nil, err
	}

	slot, err := s.ledger.Load(ctx, bctx.CampID, bctx.Date)
	if err != nil {
		return nil, err
	}
	if !slot.IsAvailable() {
		return nil, availability.ErrSlotBlocked
	}

	cfg, err := s.configs.GetConfig(ctx, bctx.CampID)
	if err != nil {
		return nil, err
	}
	occupancy := func() (decimal.Decimal, error) {
		return s.surge.OccupancyRatio(ctx, bctx.CampID, bctx.Date, cfg.CacheTTL())
	}

	q, err := s.price(ctx, bctx, slot, cfg, occupancy)
	if err != nil {
		return nil, err
	}
	s.metrics.QuoteServed(len(q.Warnings) > 0)
	return q, nil
}

func (s *serviceImpl) ReserveAndQuote(ctx context.Context, req Request) (*Reservation, error) {
	bctx, err := s.bookingContext(req)
	if err != nil {
		return nil, err
	}

	res, err := shared.RetryOnConflict(ctx, s.ledger.RetryPolicy(), s.metrics, func(ctx context.Context) (*Reservation, error) {
		var out *Reservation
		err := s.ledger.WithSlot(ctx, bctx.CampID, bctx.Date, func(ctx context.Context, locked *ledger.Locked) error {
			slot := locked.Slot()
			if !slot.IsAvailable() {
				return availability.ErrSlotBlocked
			}

			cfg, err := s.configs.GetConfig(ctx, bctx.CampID)
			if err != nil {
				return err
			}
			// occupancy comes from the locked snapshot, never from the surge cache
			occupancy := func() (decimal.Decimal, error) { return slot.OccupancyRatio(), nil }

			q, err := s.price(ctx, bctx, slot, cfg, occupancy)
			if err != nil {
				return err
			}
			if !q.Available {
				return availability.ErrCapacityExceeded
			}

			committed, err := locked.Reserve(ctx, bctx.RequestedUnits)
			if err != nil {
				return err
			}
			out = &Reservation{ID: uuid.New(), Quote: *q, Slot: committed}
			return nil
		})
		return out, err
	})

	s.metrics.ReservationFinished(outcomeOf(err))
	if err != nil {
		return nil, err
	}
	s.surge.Forget(bctx.CampID, bctx.Date)
	s.metrics.QuoteServed(len(res.Quote.Warnings) > 0)
	return res, nil
}

func (s *serviceImpl) bookingContext(req Request) (pricing.BookingContext, error) {
	return pricing.NewBookingContext(s.clock.Now(), req.CampID, req.Date, req.EndDate, req.Participants, req.RequestedUnits)
}

func (s *serviceImpl) price(
	ctx context.Context,
	bctx pricing.BookingContext,
	slot *availability.Slot,
	cfg *pricing.DynamicConfig,
	occupancy pricing.OccupancyFunc,
) (*Quote, error) {
	rules, err := s.rules.ListForCamp(ctx, bctx.CampID)
	if err != nil {
		return nil, err
	}
	matched, err := s.matcher.Select(bctx, rules, occupancy)
	if err != nil {
		return nil, err
	}
	comp := s.composer.Compose(slot.BasePrice(), matched, cfg)

	return &Quote{
		CampID:            bctx.CampID,
		Date:              bctx.Date,
		Participants:      bctx.Participants,
		RequestedUnits:    bctx.RequestedUnits,
		Available:         slot.CanFit(bctx.RequestedUnits),
		RemainingCapacity: slot.Remaining(),
		BasePrice:         comp.BasePrice,
		FinalPrice:        comp.FinalPrice,
		Multiplier:        comp.Multiplier,
		Steps:             comp.Steps,
		Warnings:          comp.Warnings,
	}, nil
}

func outcomeOf(err error) shared.ReservationOutcome {
	switch {
	case err == nil:
		return shared.OutcomeReserved
	case errs.Is(err, errs.ErrCapacityExceeded):
		return shared.OutcomeCapacityExceeded
	case errs.Is(err, errs.ErrSlotBlocked):
		return shared.OutcomeBlocked
	case errs.Is(err, errs.ErrConcurrencyConflict):
		return shared.OutcomeConflict
	case errs.Is(err, errs.ErrTimeout):
		return shared.OutcomeTimeout
	default:
		return shared.OutcomeError
	}
}

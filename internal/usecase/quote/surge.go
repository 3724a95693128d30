package quote

import (
	"context"
	"sync"
	"time"

	"camp-pricing/internal/pkg/clock"
	"camp-pricing/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OccupancySource interface {
	OccupancyRatio(ctx context.Context, campID uuid.UUID, date time.Time) (decimal.Decimal, error)
}

type occupancyKey struct {
	campID uuid.UUID
	date   string
}

type occupancyEntry struct {
	ratio     decimal.Decimal
	expiresAt time.Time
}

// SurgeEvaluator reads live occupancy for demand conditions. Values may be
// reused for min(cadence, maxTTL); a zero maxTTL disables reuse.
type SurgeEvaluator struct {
	source OccupancySource
	clock  clock.Clock
	maxTTL time.Duration

	mu      sync.Mutex
	entries map[occupancyKey]occupancyEntry
}

func NewSurgeEvaluator(source OccupancySource, clk clock.Clock, cfg config.Config) *SurgeEvaluator {
	return &SurgeEvaluator{
		source:  source,
		clock:   clk,
		maxTTL:  cfg.Ledger.SurgeCacheMaxTTL,
		entries: make(map[occupancyKey]occupancyEntry),
	}
}

func (e *SurgeEvaluator) OccupancyRatio(ctx context.Context, campID uuid.UUID, date time.Time, cadence time.Duration) (decimal.Decimal, error) {
	ttl := min(cadence, e.maxTTL)
	if ttl <= 0 {
		return e.source.OccupancyRatio(ctx, campID, date)
	}

	key := occupancyKey{campID: campID, date: clock.FormatDate(date)}
	now := e.clock.Now()

	e.mu.Lock()
	entry, ok := e.entries[key]
	e.mu.Unlock()
	if ok && now.Before(entry.expiresAt) {
		return entry.ratio, nil
	}

	ratio, err := e.source.OccupancyRatio(ctx, campID, date)
	if err != nil {
		return decimal.Zero, err
	}

	e.mu.Lock()
	if len(e.entries) >= sweepThreshold {
		e.sweepLocked(now)
	}
	e.entries[key] = occupancyEntry{ratio: ratio, expiresAt: now.Add(ttl)}
	e.mu.Unlock()
	return ratio, nil
}

const sweepThreshold = 1024

func (e *SurgeEvaluator) sweepLocked(now time.Time) {
	for k, v := range e.entries {
		if !now.Before(v.expiresAt) {
			delete(e.entries, k)
		}
	}
}

// Forget drops the memoised ratio of one slot, e.g. after a reservation.
func (e *SurgeEvaluator) Forget(campID uuid.UUID, date time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.entries, occupancyKey{campID: campID, date: clock.FormatDate(date)})
}

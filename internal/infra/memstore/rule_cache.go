package memstore

import (
	"context"
	"slices"
	"sync"
	"time"

	"camp-pricing/internal/domain/pricing"
	"camp-pricing/internal/pkg/clock"

	"github.com/google/uuid"
)

type cachedRules struct {
	gen       int64
	rules     []*pricing.PricingRule
	expiresAt time.Time
}

// RuleCache is the single-process fallback used when no redis is configured.
type RuleCache struct {
	mu      sync.Mutex
	entries map[uuid.UUID]cachedRules
	gens    map[uuid.UUID]int64
	clock   clock.Clock
}

func NewRuleCache(clk clock.Clock) *RuleCache {
	return &RuleCache{
		entries: make(map[uuid.UUID]cachedRules),
		gens:    make(map[uuid.UUID]int64),
		clock:   clk,
	}
}

func (c *RuleCache) Generation(_ context.Context, campID uuid.UUID) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gens[campID], nil
}

func (c *RuleCache) Get(_ context.Context, campID uuid.UUID, gen int64) ([]*pricing.PricingRule, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[campID]
	if !ok || e.gen != gen {
		return nil, false, nil
	}
	if !c.clock.Now().Before(e.expiresAt) {
		delete(c.entries, campID)
		return nil, false, nil
	}
	return slices.Clone(e.rules), true, nil
}

func (c *RuleCache) Set(_ context.Context, campID uuid.UUID, gen int64, rules []*pricing.PricingRule, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gens[campID] {
		return nil
	}
	c.entries[campID] = cachedRules{gen: gen, rules: slices.Clone(rules), expiresAt: c.clock.Now().Add(ttl)}
	return nil
}

func (c *RuleCache) Invalidate(_ context.Context, campIDs ...uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, id := range campIDs {
		c.gens[id]++
		delete(c.entries, id)
	}
	return nil
}

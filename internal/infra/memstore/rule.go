package memstore

import (
	"context"
	"sync"

	"camp-pricing/internal/domain/pricing"
	"camp-pricing/internal/infra"

	"github.com/google/uuid"
)

type RuleStore struct {
	mu    sync.RWMutex
	rules map[uuid.UUID]*pricing.PricingRule
}

func NewRuleStore() *RuleStore {
	return &RuleStore{rules: make(map[uuid.UUID]*pricing.PricingRule)}
}

// LoadRules returns the camp's rules in map order; callers sort.
func (s *RuleStore) LoadRules(_ context.Context, campID uuid.UUID) ([]*pricing.PricingRule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*pricing.PricingRule
	for _, r := range s.rules {
		if r.AppliesToCamp(campID) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *RuleStore) GetRule(_ context.Context, id uuid.UUID) (*pricing.PricingRule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.rules[id]
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "rule not found", nil)
	}
	return r, nil
}

func (s *RuleStore) SaveRule(_ context.Context, rule *pricing.PricingRule) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rules[rule.ID()] = rule
	return nil
}

func (s *RuleStore) DeleteRule(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rules[id]; !ok {
		return infra.WrapRepoErr(infra.KindNotFound, "rule not found", nil)
	}
	delete(s.rules, id)
	return nil
}

package memstore

import (
	"context"
	"sync"

	"camp-pricing/internal/domain/pricing"
	"camp-pricing/internal/infra"

	"github.com/google/uuid"
)

type ConfigStore struct {
	mu      sync.RWMutex
	configs map[uuid.UUID]pricing.DynamicConfig
}

func NewConfigStore() *ConfigStore {
	return &ConfigStore{configs: make(map[uuid.UUID]pricing.DynamicConfig)}
}

func (s *ConfigStore) LoadConfig(_ context.Context, campID uuid.UUID) (*pricing.DynamicConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cfg, ok := s.configs[campID]
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "pricing config not found", nil)
	}
	return &cfg, nil
}

func (s *ConfigStore) SaveConfig(_ context.Context, cfg *pricing.DynamicConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.configs[cfg.CampID] = *cfg
	return nil
}

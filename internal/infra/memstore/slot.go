// Package memstore keeps slots, rules and configs in process memory. Each
// store instance owns its own maps; nothing is shared between instances.
package memstore

import (
	"context"
	"sync"
	"time"

	"camp-pricing/internal/domain/availability"
	"camp-pricing/internal/infra"
	"camp-pricing/internal/pkg/clock"

	"github.com/google/uuid"
)

type slotKey struct {
	campID uuid.UUID
	date   string
}

func keyOf(campID uuid.UUID, date time.Time) slotKey {
	return slotKey{campID: campID, date: clock.FormatDate(date)}
}

type SlotStore struct {
	mu    sync.RWMutex
	slots map[slotKey]*availability.Slot
}

func NewSlotStore() *SlotStore {
	return &SlotStore{slots: make(map[slotKey]*availability.Slot)}
}

func (s *SlotStore) LoadSlot(_ context.Context, campID uuid.UUID, date time.Time) (*availability.Slot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	slot, ok := s.slots[keyOf(campID, date)]
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "slot not found", nil)
	}
	return slot, nil
}

func (s *SlotStore) InsertSlot(_ context.Context, slot *availability.Slot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := keyOf(slot.CampID(), slot.Date())
	if _, exists := s.slots[key]; exists {
		return infra.WrapRepoErr(infra.KindDuplicateKey, "slot already exists", nil)
	}
	s.slots[key] = slot
	return nil
}

func (s *SlotStore) CompareAndSwapSlot(_ context.Context, expectedVersion int64, slot *availability.Slot) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := keyOf(slot.CampID(), slot.Date())
	current, ok := s.slots[key]
	if !ok {
		return false, infra.WrapRepoErr(infra.KindNotFound, "slot not found", nil)
	}
	if current.Version() != expectedVersion {
		return false, nil
	}
	s.slots[key] = slot
	return true, nil
}

//go:build unit

package availability_test

import (
	"math/rand/v2"
	"testing"
	"time"

	"camp-pricing/internal/domain/availability"
	"camp-pricing/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	now  = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	date = time.Date(2025, 7, 12, 0, 0, 0, 0, time.UTC)
)

func slotWith(capacity, booked int, available bool) *availability.Slot {
	return availability.ReconstructSlot(uuid.New(), date, capacity, booked, available, decimal.NewFromInt(3000), 4, now)
}

func TestNewSlot(t *testing.T) {
	t.Run("opens with nothing booked", func(t *testing.T) {
		s, err := availability.NewSlot(uuid.New(), date.Add(13*time.Hour), 20, decimal.NewFromInt(3000), now)
		require.NoError(t, err)
		assert.Equal(t, date, s.Date())
		assert.Equal(t, 0, s.Booked())
		assert.True(t, s.IsAvailable())
		assert.Equal(t, int64(1), s.Version())
		assert.Equal(t, availability.StateOpen, s.State())
	})

	tests := []struct {
		name     string
		camp     uuid.UUID
		date     time.Time
		capacity int
		price    string
		errIs    error
	}{
		{"missing camp", uuid.Nil, date, 1, "10", availability.ErrMissingCamp},
		{"missing date", uuid.New(), time.Time{}, 1, "10", availability.ErrMissingDate},
		{"negative capacity", uuid.New(), date, -1, "10", availability.ErrNegativeCapacity},
		{"negative price", uuid.New(), date, 1, "-0.01", availability.ErrNegativeBasePrice},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := availability.NewSlot(tt.camp, tt.date, tt.capacity, decimal.RequireFromString(tt.price), now)
			require.ErrorIs(t, err, tt.errIs)
			assert.True(t, errs.Is(err, errs.ErrValidation))
		})
	}
}

func TestSlot_Reserve(t *testing.T) {
	t.Run("full slot rejects and keeps booked", func(t *testing.T) {
		s := slotWith(20, 20, true)
		next, err := s.Reserve(1, now)
		require.ErrorIs(t, err, availability.ErrCapacityExceeded)
		assert.True(t, errs.Is(err, errs.ErrCapacityExceeded))
		assert.Nil(t, next)
		assert.Equal(t, 20, s.Booked())
	})

	t.Run("blocked slot rejects even with room", func(t *testing.T) {
		s := slotWith(20, 3, false)
		_, err := s.Reserve(1, now)
		assert.True(t, errs.Is(err, errs.ErrSlotBlocked))
	})

	t.Run("last unit is taken", func(t *testing.T) {
		s := slotWith(20, 19, true)
		next, err := s.Reserve(1, now.Add(time.Minute))
		require.NoError(t, err)
		assert.Equal(t, 20, next.Booked())
		assert.Equal(t, s.Version()+1, next.Version())
		assert.Equal(t, availability.StateFull, next.State())
		assert.Equal(t, 19, s.Booked())
	})

	t.Run("invalid count", func(t *testing.T) {
		_, err := slotWith(20, 0, true).Reserve(0, now)
		require.ErrorIs(t, err, availability.ErrInvalidCount)
	})
}

func TestSlot_Release(t *testing.T) {
	s := slotWith(10, 2, true)
	next, err := s.Release(5, now)
	require.NoError(t, err)
	assert.Equal(t, 0, next.Booked())

	again, err := next.Release(1, now)
	require.NoError(t, err)
	assert.Equal(t, 0, again.Booked())
}

func TestSlot_CapacityInvariant(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	s := slotWith(15, 0, true)
	for i := 0; i < 500; i++ {
		count := rng.IntN(6) + 1
		var next *availability.Slot
		var err error
		if rng.IntN(3) == 0 {
			next, err = s.Release(count, now)
		} else {
			next, err = s.Reserve(count, now)
		}
		if err != nil {
			require.True(t, errs.Is(err, errs.ErrCapacityExceeded), "unexpected error %v", err)
			next = s
		}
		require.GreaterOrEqual(t, next.Booked(), 0)
		require.LessOrEqual(t, next.Booked(), next.Capacity())
		s = next
	}
}

func TestSlot_OccupancyRatio(t *testing.T) {
	assert.True(t, decimal.RequireFromString("0.85").Equal(slotWith(20, 17, true).OccupancyRatio()))
	assert.True(t, decimal.Zero.Equal(slotWith(0, 0, true).OccupancyRatio()))
}

func TestSlot_Reopen(t *testing.T) {
	s := slotWith(10, 6, true)

	_, err := s.Reopen(5, decimal.NewFromInt(100), now)
	require.ErrorIs(t, err, availability.ErrCapacityBelowBooked)

	next, err := s.Reopen(6, decimal.NewFromInt(100), now)
	require.NoError(t, err)
	assert.Equal(t, 6, next.Capacity())
	assert.Equal(t, 6, next.Booked())
	assert.Equal(t, availability.StateFull, next.State())
}

func TestTransitionBetween(t *testing.T) {
	open := slotWith(2, 1, true)
	full, err := open.Reserve(1, now)
	require.NoError(t, err)
	blocked := full.Block(now)
	reopened, err := full.Release(1, now)
	require.NoError(t, err)

	tests := []struct {
		name string
		prev *availability.Slot
		next *availability.Slot
		want availability.Transition
		ok   bool
	}{
		{"draft to open", nil, open, availability.BecameOpen, true},
		{"open to full", open, full, availability.BecameFull, true},
		{"full to blocked", full, blocked, availability.BecameBlocked, true},
		{"blocked to full on unblock", blocked, blocked.Unblock(now), availability.BecameFull, true},
		{"full to open on release", full, reopened, availability.BecameOpen, true},
		{"open stays open", reopened, reopened, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := availability.TransitionBetween(tt.prev, tt.next)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

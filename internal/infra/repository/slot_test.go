//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"camp-pricing/internal/domain/availability"
	"camp-pricing/internal/infra"
	"camp-pricing/internal/infra/sqlc"
	"camp-pricing/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSlotQueries struct {
	mock.Mock
}

func (m *MockSlotQueries) GetSlot(ctx context.Context, db sqlc.DBTX, campID pgtype.UUID, slotDate pgtype.Date) (sqlc.AvailabilitySlots, error) {
	args := m.Called(ctx, db, campID, slotDate)
	return args.Get(0).(sqlc.AvailabilitySlots), args.Error(1)
}

func (m *MockSlotQueries) InsertSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.AvailabilitySlots) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockSlotQueries) CompareAndSwapSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.CompareAndSwapSlotParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSlotQueries) SlotExists(ctx context.Context, db sqlc.DBTX, campID pgtype.UUID, slotDate pgtype.Date) (bool, error) {
	args := m.Called(ctx, db, campID, slotDate)
	return args.Bool(0), args.Error(1)
}

// sqlc.DBTX implementation; the repository never calls it directly
func (m *MockSlotQueries) Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockSlotQueries) Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Rows), mockArgs.Error(1)
}

func (m *MockSlotQueries) QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}

func newTestSlot(t *testing.T) *availability.Slot {
	t.Helper()
	slot, err := availability.NewSlot(uuid.New(), time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), 20, decimal.NewFromInt(3000),
		time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return slot
}

func TestSlotRepository_LoadSlot(t *testing.T) {
	slot := newTestSlot(t)

	tests := []struct {
		name     string
		mockErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success"},
		{name: "missing slot", mockErr: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "database error", mockErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockSlotQueries)
			row := sqlc.AvailabilitySlots{
				CampID:    pgtype.UUID{Bytes: slot.CampID(), Valid: true},
				SlotDate:  pgtype.Date{Time: slot.Date(), Valid: true},
				Capacity:  20,
				Booked:    5,
				BasePrice: pgtype.Numeric{Int: decimal.NewFromInt(3000).BigInt(), Valid: true},
				Available: true,
				Version:   3,
				UpdatedAt: pgtype.Timestamptz{Time: slot.UpdatedAt(), Valid: true},
			}
			q.On("GetSlot", mock.Anything, q, row.CampID, row.SlotDate).Return(row, tt.mockErr)

			got, err := NewSlotRepository(q, q).LoadSlot(context.Background(), slot.CampID(), slot.Date())

			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind))
				if tt.wantKind == infra.KindNotFound {
					assert.True(t, errs.Is(err, errs.ErrNotFound))
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 5, got.Booked())
			assert.Equal(t, int64(3), got.Version())
			assert.True(t, decimal.NewFromInt(3000).Equal(got.BasePrice()))
			q.AssertExpectations(t)
		})
	}
}

func TestSlotRepository_InsertSlot(t *testing.T) {
	t.Run("duplicate key is a conflict", func(t *testing.T) {
		q := new(MockSlotQueries)
		q.On("InsertSlot", mock.Anything, q, mock.Anything).Return(&pgconn.PgError{Code: "23505"})

		err := NewSlotRepository(q, q).InsertSlot(context.Background(), newTestSlot(t))
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
		assert.True(t, errs.Is(err, errs.ErrConcurrencyConflict))
	})

	t.Run("writes version 1", func(t *testing.T) {
		q := new(MockSlotQueries)
		q.On("InsertSlot", mock.Anything, q, mock.MatchedBy(func(arg sqlc.AvailabilitySlots) bool {
			return arg.Version == 1 && arg.Capacity == 20 && arg.Booked == 0
		})).Return(nil)

		require.NoError(t, NewSlotRepository(q, q).InsertSlot(context.Background(), newTestSlot(t)))
		q.AssertExpectations(t)
	})
}

func TestSlotRepository_CompareAndSwapSlot(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		exists   bool
		wantOK   bool
		wantKind infra.RepositoryErrorKind
	}{
		{name: "swapped", affected: 1, wantOK: true},
		{name: "stale version", affected: 0, exists: true},
		{name: "missing slot", affected: 0, exists: false, wantKind: infra.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot := newTestSlot(t)
			next, err := slot.Reserve(2, slot.UpdatedAt().Add(time.Minute))
			require.NoError(t, err)

			q := new(MockSlotQueries)
			q.On("CompareAndSwapSlot", mock.Anything, q, mock.MatchedBy(func(arg sqlc.CompareAndSwapSlotParams) bool {
				return arg.ExpectedVersion == 1 && arg.Version == 2 && arg.Booked == 2
			})).Return(tt.affected, nil)
			if tt.affected == 0 {
				q.On("SlotExists", mock.Anything, q, mock.Anything, mock.Anything).Return(tt.exists, nil)
			}

			ok, err := NewSlotRepository(q, q).CompareAndSwapSlot(context.Background(), slot.Version(), next)

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
			}
			q.AssertExpectations(t)
		})
	}
}

package repository

import (
	"context"
	"time"

	"camp-pricing/internal/domain/availability"
	"camp-pricing/internal/infra"
	"camp-pricing/internal/infra/repository/converter"
	"camp-pricing/internal/infra/sqlc"
	"camp-pricing/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type SlotQueries interface {
	GetSlot(ctx context.Context, db sqlc.DBTX, campID pgtype.UUID, slotDate pgtype.Date) (sqlc.AvailabilitySlots, error)
	InsertSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.AvailabilitySlots) error
	CompareAndSwapSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.CompareAndSwapSlotParams) (int64, error)
	SlotExists(ctx context.Context, db sqlc.DBTX, campID pgtype.UUID, slotDate pgtype.Date) (bool, error)
}

type SlotRepository struct {
	queries SlotQueries
	db      sqlc.DBTX
}

func NewSlotRepository(queries SlotQueries, db sqlc.DBTX) *SlotRepository {
	return &SlotRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SlotRepository) LoadSlot(ctx context.Context, campID uuid.UUID, date time.Time) (*availability.Slot, error) {
	row, err := r.queries.GetSlot(ctx, r.db, pgconv.UUIDToPgtype(campID), pgconv.DateToPgtype(date))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "slot not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to load slot", err)
	}

	slot, err := converter.SlotFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindCodec, "failed to decode slot", err)
	}
	return slot, nil
}

func (r *SlotRepository) InsertSlot(ctx context.Context, slot *availability.Slot) error {
	row, err := converter.SlotToRow(slot)
	if err != nil {
		return infra.WrapRepoErr(infra.KindCodec, "failed to encode slot", err)
	}

	if err := r.queries.InsertSlot(ctx, r.db, row); err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr(infra.KindDuplicateKey, "slot already exists", err)
		}
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to insert slot", err)
	}
	return nil
}

// CompareAndSwapSlot is a conditional UPDATE on the version column; zero rows
// means either a stale version or a missing slot.
func (r *SlotRepository) CompareAndSwapSlot(ctx context.Context, expectedVersion int64, slot *availability.Slot) (bool, error) {
	row, err := converter.SlotToRow(slot)
	if err != nil {
		return false, infra.WrapRepoErr(infra.KindCodec, "failed to encode slot", err)
	}

	n, err := r.queries.CompareAndSwapSlot(ctx, r.db, sqlc.CompareAndSwapSlotParams{
		AvailabilitySlots: row,
		ExpectedVersion:   expectedVersion,
	})
	if err != nil {
		return false, infra.WrapRepoErr(infra.KindDBFailure, "failed to update slot", err)
	}
	if n == 1 {
		return true, nil
	}

	exists, err := r.queries.SlotExists(ctx, r.db, row.CampID, row.SlotDate)
	if err != nil {
		return false, infra.WrapRepoErr(infra.KindDBFailure, "failed to check slot", err)
	}
	if !exists {
		return false, infra.WrapRepoErr(infra.KindNotFound, "slot not found", nil)
	}
	return false, nil
}

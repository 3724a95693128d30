package sqlc

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const getSlot = `-- name: GetSlot :one
SELECT camp_id, slot_date, capacity, booked, base_price, available, version, updated_at
FROM availability_slots
WHERE camp_id = $1 AND slot_date = $2
`

func (q *Queries) GetSlot(ctx context.Context, db DBTX, campID pgtype.UUID, slotDate pgtype.Date) (AvailabilitySlots, error) {
	row := db.QueryRow(ctx, getSlot, campID, slotDate)
	var i AvailabilitySlots
	err := row.Scan(
		&i.CampID,
		&i.SlotDate,
		&i.Capacity,
		&i.Booked,
		&i.BasePrice,
		&i.Available,
		&i.Version,
		&i.UpdatedAt,
	)
	return i, err
}

const insertSlot = `-- name: InsertSlot :exec
INSERT INTO availability_slots (camp_id, slot_date, capacity, booked, base_price, available, version, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

func (q *Queries) InsertSlot(ctx context.Context, db DBTX, arg AvailabilitySlots) error {
	_, err := db.Exec(ctx, insertSlot,
		arg.CampID,
		arg.SlotDate,
		arg.Capacity,
		arg.Booked,
		arg.BasePrice,
		arg.Available,
		arg.Version,
		arg.UpdatedAt,
	)
	return err
}

const compareAndSwapSlot = `-- name: CompareAndSwapSlot :execrows
UPDATE availability_slots
SET capacity = $3,
    booked = $4,
    base_price = $5,
    available = $6,
    version = $7,
    updated_at = $8
WHERE camp_id = $1 AND slot_date = $2 AND version = $9
`

type CompareAndSwapSlotParams struct {
	AvailabilitySlots
	ExpectedVersion int64
}

func (q *Queries) CompareAndSwapSlot(ctx context.Context, db DBTX, arg CompareAndSwapSlotParams) (int64, error) {
	result, err := db.Exec(ctx, compareAndSwapSlot,
		arg.CampID,
		arg.SlotDate,
		arg.Capacity,
		arg.Booked,
		arg.BasePrice,
		arg.Available,
		arg.Version,
		arg.UpdatedAt,
		arg.ExpectedVersion,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const slotExists = `-- name: SlotExists :one
SELECT EXISTS (SELECT 1 FROM availability_slots WHERE camp_id = $1 AND slot_date = $2)
`

func (q *Queries) SlotExists(ctx context.Context, db DBTX, campID pgtype.UUID, slotDate pgtype.Date) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, slotExists, campID, slotDate).Scan(&exists)
	return exists, err
}

package converter

import (
	"camp-pricing/internal/domain/availability"
	"camp-pricing/internal/infra/sqlc"
	"camp-pricing/internal/pkg/pgconv"
)

func SlotToRow(s *availability.Slot) (sqlc.AvailabilitySlots, error) {
	price, err := pgconv.NumericFromDecimal(s.BasePrice())
	if err != nil {
		return sqlc.AvailabilitySlots{}, err
	}
	return sqlc.AvailabilitySlots{
		CampID:    pgconv.UUIDToPgtype(s.CampID()),
		SlotDate:  pgconv.DateToPgtype(s.Date()),
		Capacity:  int32(s.Capacity()), // #nosec G115 -- capacities are small positive counts
		Booked:    int32(s.Booked()),   // #nosec G115
		BasePrice: price,
		Available: s.IsAvailable(),
		Version:   s.Version(),
		UpdatedAt: pgconv.TimeToPgtype(s.UpdatedAt()),
	}, nil
}

func SlotFromRow(row sqlc.AvailabilitySlots) (*availability.Slot, error) {
	price, err := pgconv.DecimalFromNumeric(row.BasePrice)
	if err != nil {
		return nil, err
	}
	return availability.ReconstructSlot(
		pgconv.UUIDFromPgtype(row.CampID),
		pgconv.DateFromPgtype(row.SlotDate),
		int(row.Capacity),
		int(row.Booked),
		row.Available,
		price,
		row.Version,
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

package response

import (
	"time"

	"camp-pricing/internal/domain/availability"
	"camp-pricing/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SlotResponse struct {
	CampID    uuid.UUID       `json:"camp_id"`
	Date      string          `json:"date"`
	Capacity  int             `json:"capacity"`
	Booked    int             `json:"booked"`
	Remaining int             `json:"remaining"`
	BasePrice decimal.Decimal `json:"base_price"`
	State     string          `json:"state"`
	Version   int64           `json:"version"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func FromSlot(s *availability.Slot) SlotResponse {
	return SlotResponse{
		CampID:    s.CampID(),
		Date:      clock.FormatDate(s.Date()),
		Capacity:  s.Capacity(),
		Booked:    s.Booked(),
		Remaining: s.Remaining(),
		BasePrice: s.BasePrice(),
		State:     string(s.State()),
		Version:   s.Version(),
		UpdatedAt: s.UpdatedAt(),
	}
}

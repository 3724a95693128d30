package request

import (
	"time"

	"camp-pricing/internal/domain/pricing"
	"camp-pricing/internal/pkg/clock"
	"camp-pricing/internal/usecase/quote"

	"github.com/google/uuid"
)

// QuoteRequest is shared by the quote and reservation endpoints.
type QuoteRequest struct {
	CampID         uuid.UUID `json:"camp_id" binding:"required"`
	Date           string    `json:"date" binding:"required"`
	EndDate        *string   `json:"end_date,omitempty"`
	Participants   int       `json:"participants" binding:"required,min=1"`
	RequestedUnits int       `json:"requested_units,omitempty" binding:"min=0"`
}

func (r QuoteRequest) ToUseCase() (quote.Request, error) {
	date, err := clock.ParseDate(r.Date)
	if err != nil {
		return quote.Request{}, pricing.ErrInvalidDate
	}
	req := quote.Request{
		CampID:         r.CampID,
		Date:           date,
		Participants:   r.Participants,
		RequestedUnits: r.RequestedUnits,
	}
	if r.EndDate != nil {
		end, err := clock.ParseDate(*r.EndDate)
		if err != nil {
			return quote.Request{}, pricing.ErrInvalidDate
		}
		req.EndDate = &end
	}
	return req, nil
}

// ParseDateParam reads a :date path segment.
func ParseDateParam(s string) (time.Time, error) {
	date, err := clock.ParseDate(s)
	if err != nil {
		return time.Time{}, pricing.ErrInvalidDate
	}
	return date, nil
}

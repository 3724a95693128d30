//go:build unit || e2e

package builder

import (
	reqdto "camp-pricing/internal/handler/dto/request"

	"github.com/google/uuid"
)

type QuoteBuilder struct {
	CampID         uuid.UUID
	Date           string
	EndDate        *string
	Participants   int
	RequestedUnits int
}

func NewQuoteBuilder() *QuoteBuilder {
	return &QuoteBuilder{
		CampID:       uuid.New(),
		Date:         "2025-07-12",
		Participants: 2,
	}
}

func (b *QuoteBuilder) With(mutate func(*QuoteBuilder)) *QuoteBuilder {
	mutate(b)
	return b
}

func (b *QuoteBuilder) BuildDTO() reqdto.QuoteRequest {
	return reqdto.QuoteRequest{
		CampID:         b.CampID,
		Date:           b.Date,
		EndDate:        b.EndDate,
		Participants:   b.Participants,
		RequestedUnits: b.RequestedUnits,
	}
}

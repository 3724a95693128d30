package request

import (
	"github.com/shopspring/decimal"
)

type OpenSlotRequest struct {
	Capacity  *int            `json:"capacity" binding:"required,min=0"`
	BasePrice decimal.Decimal `json:"base_price"`
}

type ReleaseRequest struct {
	Count int `json:"count" binding:"required,min=1"`
}

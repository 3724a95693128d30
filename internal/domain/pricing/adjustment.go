package pricing

import (
	"github.com/shopspring/decimal"
)

type AdjustmentKind string

const (
	KindPercentage AdjustmentKind = "percentage"
	KindFixed      AdjustmentKind = "fixed"
)

func (k AdjustmentKind) IsValid() bool {
	switch k {
	case KindPercentage, KindFixed:
		return true
	default:
		return false
	}
}

type Direction string

const (
	DirectionIncrease Direction = "increase"
	DirectionDecrease Direction = "decrease"
)

func (d Direction) IsValid() bool {
	switch d {
	case DirectionIncrease, DirectionDecrease:
		return true
	default:
		return false
	}
}

var hundred = decimal.NewFromInt(100)

type Adjustment struct {
	kind      AdjustmentKind
	direction Direction
	value     decimal.Decimal
}

func NewAdjustment(kind AdjustmentKind, direction Direction, value decimal.Decimal) (Adjustment, error) {
	if !kind.IsValid() {
		return Adjustment{}, ErrInvalidAdjustmentKind
	}
	if !direction.IsValid() {
		return Adjustment{}, ErrInvalidDirection
	}
	if value.IsNegative() {
		return Adjustment{}, ErrNegativeAdjustment
	}
	// a single step may not discount below zero
	if kind == KindPercentage && direction == DirectionDecrease && value.GreaterThan(hundred) {
		return Adjustment{}, ErrPercentDecreaseTooLarge
	}
	return Adjustment{kind: kind, direction: direction, value: value}, nil
}

func (a Adjustment) Kind() AdjustmentKind   { return a.kind }
func (a Adjustment) Direction() Direction   { return a.direction }
func (a Adjustment) Value() decimal.Decimal { return a.value }
func (a Adjustment) IsZero() bool           { return a.kind == "" }

func (a Adjustment) Equal(o Adjustment) bool {
	return a.kind == o.kind && a.direction == o.direction && a.value.Equal(o.value)
}

// SignedDelta is the amount this adjustment adds to running, negative for decreases.
func (a Adjustment) SignedDelta(running decimal.Decimal) decimal.Decimal {
	delta := a.value
	if a.kind == KindPercentage {
		delta = running.Mul(a.value).Div(hundred)
	}
	if a.direction == DirectionDecrease {
		return delta.Neg()
	}
	return delta
}

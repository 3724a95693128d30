package pricing

import (
	"errors"

	"camp-pricing/internal/pkg/errs"
)

func invalid(msg string) error {
	return errs.Mark(errors.New(msg), errs.ErrValidation)
}

var (
	ErrEmptyRuleName           = invalid("rule name cannot be empty")
	ErrRuleNameTooLong         = invalid("rule name is too long (max 255 characters)")
	ErrInvalidRuleType         = invalid("invalid rule type")
	ErrNegativePriority        = invalid("priority cannot be negative")
	ErrEmptyCampSet            = invalid("rule must apply to at least one camp")
	ErrMissingAdjustment       = invalid("rule must define an adjustment")
	ErrInvalidAdjustmentKind   = invalid("adjustment kind must be percentage or fixed")
	ErrInvalidDirection        = invalid("adjustment direction must be increase or decrease")
	ErrNegativeAdjustment      = invalid("adjustment value cannot be negative")
	ErrPercentDecreaseTooLarge = invalid("percentage decrease cannot exceed 100")

	ErrInvalidDateRange      = invalid("date range start must not be after end")
	ErrInvalidRange          = invalid("range minimum must not exceed maximum")
	ErrNegativeRangeBound    = invalid("range bounds cannot be negative")
	ErrUnboundedRange        = invalid("range must set a minimum or a maximum")
	ErrInvalidWeekday        = invalid("weekday must be between 0 (Sunday) and 6 (Saturday)")
	ErrInvalidOccupancyLimit = invalid("occupancy threshold must be between 0 and 100")

	ErrMissingCamp          = invalid("camp id is required")
	ErrInvalidParticipants  = invalid("participant count must be at least 1")
	ErrInvalidRequestedUnit = invalid("requested unit count cannot be negative")
	ErrDateInPast           = invalid("booking date cannot be in the past")
	ErrEndBeforeStart       = invalid("booking end date must not be before its start date")
	ErrInvalidDate          = invalid("dates must be formatted as YYYY-MM-DD")

	ErrInvalidMultiplierBounds = invalid("multipliers must satisfy 0 < min <= max")
	ErrInvalidUpdateFrequency  = invalid("update frequency must be hourly, daily or weekly")
	ErrNegativeWeight          = invalid("weights cannot be negative")
)

package pricing

import (
	"bytes"
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

const MaxRuleNameLength = 255

type RuleType string

const (
	RuleTypeSeasonal   RuleType = "seasonal"
	RuleTypeWeekend    RuleType = "weekend"
	RuleTypeHoliday    RuleType = "holiday"
	RuleTypeDemand     RuleType = "demand"
	RuleTypeEarlyBird  RuleType = "early_bird"
	RuleTypeLastMinute RuleType = "last_minute"
	RuleTypeGroupSize  RuleType = "group_size"
	RuleTypeDuration   RuleType = "duration"
)

func (t RuleType) String() string {
	return string(t)
}

func (t RuleType) IsValid() bool {
	switch t {
	case RuleTypeSeasonal, RuleTypeWeekend, RuleTypeHoliday, RuleTypeDemand,
		RuleTypeEarlyBird, RuleTypeLastMinute, RuleTypeGroupSize, RuleTypeDuration:
		return true
	default:
		return false
	}
}

// RuleSpec is the organizer-editable part of a rule.
type RuleSpec struct {
	Name       string
	Type       RuleType
	Priority   int
	Active     bool
	Conditions Conditions
	Adjustment Adjustment
	CampIDs    []uuid.UUID
}

func (s RuleSpec) validate() error {
	name := strings.TrimSpace(s.Name)
	if name == "" {
		return ErrEmptyRuleName
	}
	if len(name) > MaxRuleNameLength {
		return ErrRuleNameTooLong
	}
	if !s.Type.IsValid() {
		return ErrInvalidRuleType
	}
	if s.Priority < 0 {
		return ErrNegativePriority
	}
	if s.Adjustment.IsZero() {
		return ErrMissingAdjustment
	}
	if len(s.CampIDs) == 0 {
		return ErrEmptyCampSet
	}
	for _, id := range s.CampIDs {
		if id == uuid.Nil {
			return ErrEmptyCampSet
		}
	}
	return s.Conditions.Validate()
}

// PricingRule is never mutated by the engine; edits produce a new value.
type PricingRule struct {
	id         uuid.UUID
	name       string
	ruleType   RuleType
	priority   int
	active     bool
	conditions Conditions
	adjustment Adjustment
	campIDs    []uuid.UUID
	createdAt  time.Time
	updatedAt  time.Time
}

func NewPricingRule(id uuid.UUID, spec RuleSpec, now time.Time) (*PricingRule, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &PricingRule{
		id:         id,
		name:       strings.TrimSpace(spec.Name),
		ruleType:   spec.Type,
		priority:   spec.Priority,
		active:     spec.Active,
		conditions: spec.Conditions,
		adjustment: spec.Adjustment,
		campIDs:    normalizeCampIDs(spec.CampIDs),
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructPricingRule(id uuid.UUID, spec RuleSpec, createdAt, updatedAt time.Time) *PricingRule {
	return &PricingRule{
		id:         id,
		name:       spec.Name,
		ruleType:   spec.Type,
		priority:   spec.Priority,
		active:     spec.Active,
		conditions: spec.Conditions,
		adjustment: spec.Adjustment,
		campIDs:    normalizeCampIDs(spec.CampIDs),
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Update replaces the editable part, keeping identity and creation time.
func (r *PricingRule) Update(spec RuleSpec, now time.Time) (*PricingRule, error) {
	updated, err := NewPricingRule(r.id, spec, now)
	if err != nil {
		return nil, err
	}
	updated.createdAt = r.createdAt
	return updated, nil
}

func (r *PricingRule) WithActive(active bool, now time.Time) *PricingRule {
	c := *r
	c.campIDs = slices.Clone(r.campIDs)
	c.active = active
	c.updatedAt = now
	return &c
}

func (r *PricingRule) AppliesToCamp(campID uuid.UUID) bool {
	_, found := slices.BinarySearchFunc(r.campIDs, campID, compareUUID)
	return found
}

func (r *PricingRule) Spec() RuleSpec {
	return RuleSpec{
		Name:       r.name,
		Type:       r.ruleType,
		Priority:   r.priority,
		Active:     r.active,
		Conditions: r.conditions,
		Adjustment: r.adjustment,
		CampIDs:    slices.Clone(r.campIDs),
	}
}

func (r *PricingRule) ID() uuid.UUID          { return r.id }
func (r *PricingRule) Name() string           { return r.name }
func (r *PricingRule) Type() RuleType         { return r.ruleType }
func (r *PricingRule) Priority() int          { return r.priority }
func (r *PricingRule) IsActive() bool         { return r.active }
func (r *PricingRule) Conditions() Conditions { return r.conditions }
func (r *PricingRule) Adjustment() Adjustment { return r.adjustment }
func (r *PricingRule) CampIDs() []uuid.UUID   { return slices.Clone(r.campIDs) }
func (r *PricingRule) CreatedAt() time.Time   { return r.createdAt }
func (r *PricingRule) UpdatedAt() time.Time   { return r.updatedAt }

func (r *PricingRule) Equal(o *PricingRule) bool {
	if r == nil || o == nil {
		return r == o
	}
	return r.id == o.id &&
		r.name == o.name &&
		r.ruleType == o.ruleType &&
		r.priority == o.priority &&
		r.active == o.active &&
		r.conditions.Equal(o.conditions) &&
		r.adjustment.Equal(o.adjustment) &&
		slices.Equal(r.campIDs, o.campIDs) &&
		r.createdAt.Equal(o.createdAt) &&
		r.updatedAt.Equal(o.updatedAt)
}

// CompareRules orders by ascending priority, then ascending id bytes, so
// composition order never depends on storage order.
func CompareRules(a, b *PricingRule) int {
	if c := cmp.Compare(a.priority, b.priority); c != 0 {
		return c
	}
	return compareUUID(a.id, b.id)
}

func SortRules(rules []*PricingRule) {
	slices.SortFunc(rules, CompareRules)
}

func compareUUID(a, b uuid.UUID) int {
	return bytes.Compare(a[:], b[:])
}

// sorted and deduplicated so membership is a binary search
func normalizeCampIDs(ids []uuid.UUID) []uuid.UUID {
	out := slices.Clone(ids)
	slices.SortFunc(out, compareUUID)
	return slices.Compact(out)
}

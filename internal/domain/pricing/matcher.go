package pricing

import (
	"slices"
	"sync"

	"github.com/shopspring/decimal"
)

type Matcher struct{}

func NewMatcher() *Matcher {
	return &Matcher{}
}

// Select returns the active rules applicable to bctx.CampID whose conditions
// all hold, in (priority, id) order. occupancy is called at most once, and
// only if a candidate rule carries an occupancy threshold.
func (m *Matcher) Select(bctx BookingContext, rules []*PricingRule, occupancy OccupancyFunc) ([]*PricingRule, error) {
	if !slices.IsSortedFunc(rules, CompareRules) {
		rules = slices.Clone(rules)
		slices.SortStableFunc(rules, CompareRules)
	}

	resolve := onceOccupancy(occupancy)
	matched := make([]*PricingRule, 0, len(rules))
	for _, r := range rules {
		if r == nil || !r.IsActive() || !r.AppliesToCamp(bctx.CampID) {
			continue
		}
		ok, err := r.conditions.Matches(bctx, resolve)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, r)
		}
	}
	return matched, nil
}

func onceOccupancy(fn OccupancyFunc) OccupancyFunc {
	if fn == nil {
		return func() (decimal.Decimal, error) { return decimal.Zero, nil }
	}
	return sync.OnceValues(fn)
}

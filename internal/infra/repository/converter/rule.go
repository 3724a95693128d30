package converter

import (
	"encoding/json"

	"camp-pricing/internal/domain/pricing"
	records "camp-pricing/internal/infra/converter"
	"camp-pricing/internal/infra/sqlc"
	"camp-pricing/internal/pkg/pgconv"
)

func RuleToParams(r *pricing.PricingRule) (sqlc.UpsertRuleParams, error) {
	conditions, err := json.Marshal(records.ConditionsToRecord(r.Conditions()))
	if err != nil {
		return sqlc.UpsertRuleParams{}, err
	}
	adj := r.Adjustment()
	value, err := pgconv.NumericFromDecimal(adj.Value())
	if err != nil {
		return sqlc.UpsertRuleParams{}, err
	}
	return sqlc.UpsertRuleParams{
		ID:                  pgconv.UUIDToPgtype(r.ID()),
		Name:                r.Name(),
		RuleType:            string(r.Type()),
		Priority:            int32(r.Priority()), // #nosec G115 -- priorities are small integers
		Active:              r.IsActive(),
		Conditions:          conditions,
		AdjustmentKind:      string(adj.Kind()),
		AdjustmentDirection: string(adj.Direction()),
		AdjustmentValue:     value,
		CreatedAt:           pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt:           pgconv.TimeToPgtype(r.UpdatedAt()),
	}, nil
}

func RuleFromRow(row sqlc.RuleWithCampsRow) (*pricing.PricingRule, error) {
	var cond records.ConditionsRecord
	if len(row.Conditions) > 0 {
		if err := json.Unmarshal(row.Conditions, &cond); err != nil {
			return nil, err
		}
	}
	value, err := pgconv.DecimalFromNumeric(row.AdjustmentValue)
	if err != nil {
		return nil, err
	}

	rec := records.RuleRecord{
		ID:         pgconv.UUIDFromPgtype(row.ID),
		Name:       row.Name,
		Type:       row.RuleType,
		Priority:   int(row.Priority),
		Active:     row.Active,
		Conditions: cond,
		Kind:       row.AdjustmentKind,
		Direction:  row.AdjustmentDirection,
		Value:      value,
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:  pgconv.TimeFromPgtype(row.UpdatedAt),
	}
	for _, id := range row.CampIDs {
		rec.CampIDs = append(rec.CampIDs, pgconv.UUIDFromPgtype(id))
	}
	return records.RuleFromRecord(rec)
}

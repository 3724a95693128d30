package sqlc

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const ruleColumns = `r.id, r.name, r.rule_type, r.priority, r.active, r.conditions,
       r.adjustment_kind, r.adjustment_direction, r.adjustment_value,
       r.created_at, r.updated_at,
       ARRAY(SELECT c.camp_id FROM pricing_rule_camps c WHERE c.rule_id = r.id ORDER BY c.camp_id)::uuid[] AS camp_ids`

type RuleWithCampsRow struct {
	PricingRules
	CampIDs []pgtype.UUID
}

func scanRule(row interface{ Scan(...any) error }) (RuleWithCampsRow, error) {
	var i RuleWithCampsRow
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.RuleType,
		&i.Priority,
		&i.Active,
		&i.Conditions,
		&i.AdjustmentKind,
		&i.AdjustmentDirection,
		&i.AdjustmentValue,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.CampIDs,
	)
	return i, err
}

const listRulesForCamp = `-- name: ListRulesForCamp :many
SELECT ` + ruleColumns + `
FROM pricing_rules r
WHERE EXISTS (
    SELECT 1 FROM pricing_rule_camps c WHERE c.rule_id = r.id AND c.camp_id = $1
)
`

func (q *Queries) ListRulesForCamp(ctx context.Context, db DBTX, campID pgtype.UUID) ([]RuleWithCampsRow, error) {
	rows, err := db.Query(ctx, listRulesForCamp, campID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []RuleWithCampsRow
	for rows.Next() {
		i, err := scanRule(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getRuleByID = `-- name: GetRuleByID :one
SELECT ` + ruleColumns + `
FROM pricing_rules r
WHERE r.id = $1
`

func (q *Queries) GetRuleByID(ctx context.Context, db DBTX, id pgtype.UUID) (RuleWithCampsRow, error) {
	return scanRule(db.QueryRow(ctx, getRuleByID, id))
}

const upsertRule = `-- name: UpsertRule :exec
INSERT INTO pricing_rules (
    id, name, rule_type, priority, active, conditions,
    adjustment_kind, adjustment_direction, adjustment_value,
    created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
ON CONFLICT (id) DO UPDATE SET
    name = EXCLUDED.name,
    rule_type = EXCLUDED.rule_type,
    priority = EXCLUDED.priority,
    active = EXCLUDED.active,
    conditions = EXCLUDED.conditions,
    adjustment_kind = EXCLUDED.adjustment_kind,
    adjustment_direction = EXCLUDED.adjustment_direction,
    adjustment_value = EXCLUDED.adjustment_value,
    updated_at = EXCLUDED.updated_at
`

type UpsertRuleParams struct {
	ID                  pgtype.UUID
	Name                string
	RuleType            string
	Priority            int32
	Active              bool
	Conditions          []byte
	AdjustmentKind      string
	AdjustmentDirection string
	AdjustmentValue     pgtype.Numeric
	CreatedAt           pgtype.Timestamptz
	UpdatedAt           pgtype.Timestamptz
}

func (q *Queries) UpsertRule(ctx context.Context, db DBTX, arg UpsertRuleParams) error {
	_, err := db.Exec(ctx, upsertRule,
		arg.ID,
		arg.Name,
		arg.RuleType,
		arg.Priority,
		arg.Active,
		arg.Conditions,
		arg.AdjustmentKind,
		arg.AdjustmentDirection,
		arg.AdjustmentValue,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const deleteRuleCamps = `-- name: DeleteRuleCamps :exec
DELETE FROM pricing_rule_camps WHERE rule_id = $1
`

func (q *Queries) DeleteRuleCamps(ctx context.Context, db DBTX, ruleID pgtype.UUID) error {
	_, err := db.Exec(ctx, deleteRuleCamps, ruleID)
	return err
}

const insertRuleCamps = `-- name: InsertRuleCamps :exec
INSERT INTO pricing_rule_camps (rule_id, camp_id)
SELECT $1, unnest($2::uuid[])
`

func (q *Queries) InsertRuleCamps(ctx context.Context, db DBTX, ruleID pgtype.UUID, campIDs []pgtype.UUID) error {
	_, err := db.Exec(ctx, insertRuleCamps, ruleID, campIDs)
	return err
}

const deleteRule = `-- name: DeleteRule :execrows
DELETE FROM pricing_rules WHERE id = $1
`

func (q *Queries) DeleteRule(ctx context.Context, db DBTX, id pgtype.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteRule, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

package response

import (
	"time"

	"camp-pricing/internal/domain/pricing"
	reqdto "camp-pricing/internal/handler/dto/request"
	"camp-pricing/internal/infra/converter"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// RuleResponse embeds the request shape; its rule fields decode back into a
// RuleRequest that rebuilds the same rule.
type RuleResponse struct {
	ID uuid.UUID `json:"id"`
	reqdto.RuleRequest
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromRule(r *pricing.PricingRule) (*RuleResponse, error) {
	var cond reqdto.ConditionsDTO
	rec := converter.ConditionsToRecord(r.Conditions())
	if err := copier.Copy(&cond, &rec); err != nil {
		return nil, err
	}
	active := r.IsActive()
	adj := r.Adjustment()
	return &RuleResponse{
		ID: r.ID(),
		RuleRequest: reqdto.RuleRequest{
			Name:       r.Name(),
			Type:       string(r.Type()),
			Priority:   r.Priority(),
			Active:     &active,
			Conditions: cond,
			Adjustment: reqdto.AdjustmentDTO{
				Kind:      string(adj.Kind()),
				Direction: string(adj.Direction()),
				Value:     adj.Value(),
			},
			CampIDs: r.CampIDs(),
		},
		CreatedAt: r.CreatedAt(),
		UpdatedAt: r.UpdatedAt(),
	}, nil
}

func FromRules(rules []*pricing.PricingRule) ([]*RuleResponse, error) {
	out := make([]*RuleResponse, len(rules))
	for i, r := range rules {
		resp, err := FromRule(r)
		if err != nil {
			return nil, err
		}
		out[i] = resp
	}
	return out, nil
}

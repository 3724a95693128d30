//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"camp-pricing/internal/domain/pricing"
	"camp-pricing/internal/handler/api"
	reqdto "camp-pricing/internal/handler/dto/request"
	resdto "camp-pricing/internal/handler/dto/response"
	"camp-pricing/internal/pkg/errs"
	"camp-pricing/tests/common/builder"
	"camp-pricing/tests/common/httptest"
	"camp-pricing/tests/common/testutil"
	commandsmock "camp-pricing/tests/mock/commands"
	queriesmock "camp-pricing/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RuleHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRuleCommands
	mockQueries  *queriesmock.MockRuleQueries
	handler      *api.RuleHandler
}

func (s *RuleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRuleCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRuleQueries(s.mockCtrl)
	s.handler = api.NewRuleHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/rules", s.handler.Create)
	s.router.GET("/rules/:id", s.handler.Get)
	s.router.PUT("/rules/:id", s.handler.Update)
	s.router.DELETE("/rules/:id", s.handler.Delete)
	s.router.PATCH("/rules/:id/active", s.handler.SetActive)
	s.router.GET("/camps/:camp_id/rules", s.handler.ListByCamp)
}

func (s *RuleHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRuleHandlerSuite(t *testing.T) {
	suite.Run(t, new(RuleHandlerTestSuite))
}

func ruleRequestOf(t *testing.T, rule *pricing.PricingRule) reqdto.RuleRequest {
	t.Helper()
	resp, err := resdto.FromRule(rule)
	require.NoError(t, err)
	return resp.RuleRequest
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *RuleHandlerTestSuite) TestCreate() {
	url := "/rules"
	rule := builder.NewRuleBuilder().
		WithConditions(pricing.Conditions{Participants: builder.IntRange(builder.Int(4), nil)}).
		MustBuild()
	reqBody := ruleRequestOf(s.T(), rule)

	validation := []testCaseQuote{
		{name: "missing field: name", mutate: testutil.Field("name", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: camp_ids", mutate: testutil.Field("camp_ids", nil), expectCode: http.StatusBadRequest},
		{name: "empty camp_ids", mutate: testutil.Field("camp_ids", []string{}), expectCode: http.StatusBadRequest},
		{name: "unknown rule type", mutate: testutil.Field("type", "flash_sale"), expectCode: http.StatusBadRequest},
		{name: "negative priority", mutate: testutil.Field("priority", -1), expectCode: http.StatusBadRequest},
		{name: "unknown adjustment kind", mutate: testutil.Field("adjustment", map[string]any{"kind": "ratio", "direction": "increase", "value": "5"}), expectCode: http.StatusBadRequest},
		{name: "percentage decrease over 100", mutate: testutil.Field("adjustment", map[string]any{"kind": "percentage", "direction": "decrease", "value": "101"}), expectCode: http.StatusBadRequest},
		{name: "weekday out of range", mutate: testutil.Field("conditions", map[string]any{"weekdays": []int{7}}), expectCode: http.StatusBadRequest},
		{name: "inverted participant range", mutate: testutil.Field("conditions", map[string]any{"min_participants": 5, "max_participants": 2}), expectCode: http.StatusBadRequest},
		{name: "malformed date_from", mutate: testutil.Field("conditions", map[string]any{"date_from": "July"}), expectCode: http.StatusBadRequest},
	}

	s.Run("success: returns 201 with the stored rule", func() {
		s.mockCommands.EXPECT().AddRule(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, spec pricing.RuleSpec) (*pricing.PricingRule, error) {
				s.Equal(rule.Name(), spec.Name)
				s.True(spec.Active)
				return rule, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.RuleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(rule.ID(), body.ID)
		s.Equal(reqBody.CampIDs, body.CampIDs)
	})

	s.Run("success: active defaults to true when omitted", func() {
		s.mockCommands.EXPECT().AddRule(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, spec pricing.RuleSpec) (*pricing.PricingRule, error) {
				s.True(spec.Active)
				return rule, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			testutil.DtoMap(s.T(), reqBody, testutil.Field("active", nil)), "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, tc := range validation {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})
}

// ================================================================================
// TestGet / TestUpdate / TestDelete / TestSetActive
// ================================================================================

func (s *RuleHandlerTestSuite) TestGet() {
	rule := builder.NewRuleBuilder().MustBuild()

	s.Run("success: returns rule", func() {
		s.mockQueries.EXPECT().GetRule(gomock.Any(), rule.ID()).Return(rule, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rules/"+rule.ID().String(), nil, "")

		var body resdto.RuleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(rule.Name(), body.Name)
	})

	s.Run("error: invalid id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rules/abc", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: not found", func() {
		s.mockQueries.EXPECT().GetRule(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("no rule"), errs.ErrNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rules/"+uuid.NewString(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}

func (s *RuleHandlerTestSuite) TestUpdate() {
	rule := builder.NewRuleBuilder().MustBuild()
	reqBody := ruleRequestOf(s.T(), rule)

	s.Run("success: replaces the rule", func() {
		s.mockCommands.EXPECT().UpdateRule(gomock.Any(), rule.ID(), gomock.Any()).Return(rule, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/rules/"+rule.ID().String(), reqBody, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: unknown rule", func() {
		s.mockCommands.EXPECT().UpdateRule(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("no rule"), errs.ErrNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/rules/"+uuid.NewString(), reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *RuleHandlerTestSuite) TestDelete() {
	s.Run("success: 204 No Content", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().RemoveRule(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/rules/"+id.String(), nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})
}

func (s *RuleHandlerTestSuite) TestSetActive() {
	rule := builder.NewRuleBuilder().WithActive(false).MustBuild()

	s.Run("success: passes the flag", func() {
		s.mockCommands.EXPECT().SetRuleActive(gomock.Any(), rule.ID(), false).Return(rule, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/rules/"+rule.ID().String()+"/active",
			map[string]any{"active": false}, "")

		var body resdto.RuleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().NotNil(body.Active)
		s.False(*body.Active)
	})

	s.Run("error: active is required", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/rules/"+rule.ID().String()+"/active",
			map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

// ================================================================================
// TestListByCamp
// ================================================================================

func (s *RuleHandlerTestSuite) TestListByCamp() {
	campID := uuid.New()
	url := "/camps/" + campID.String() + "/rules"
	rules := []*pricing.PricingRule{
		builder.NewRuleBuilder().WithCamps(campID).WithPriority(1).MustBuild(),
		builder.NewRuleBuilder().WithCamps(campID).WithPriority(2).WithActive(false).MustBuild(),
	}

	s.Run("success: lists every rule by default", func() {
		s.mockQueries.EXPECT().ListRules(gomock.Any(), campID).Return(rules, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body []resdto.RuleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
	})

	s.Run("success: active_only uses the evaluation list", func() {
		s.mockQueries.EXPECT().ListForCamp(gomock.Any(), campID).Return(rules[:1], nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?active_only=true", nil, "")

		var body []resdto.RuleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("error: bad active_only", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?active_only=maybe", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "active_only")
	})
}

// ================================================================================
// Rule JSON round trip
// ================================================================================

func TestRuleJSONRoundTrip(t *testing.T) {
	campA, campB := uuid.New(), uuid.New()
	dates, err := pricing.NewDateRange(
		time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	weekend, err := pricing.NewWeekdaySet(time.Saturday, time.Sunday)
	require.NoError(t, err)

	rules := map[string]*pricing.PricingRule{
		"no conditions": builder.NewRuleBuilder().MustBuild(),
		"edited after creation": builder.NewRuleBuilder().MustBuild().
			WithActive(false, time.Date(2025, 6, 3, 14, 30, 15, 250_000_000, time.UTC)),
		"every dimension": builder.NewRuleBuilder().WithCamps(campA, campB).WithActive(false).
			Decrease(pricing.KindFixed, "150.50").
			WithConditions(pricing.Conditions{
				DateRange:          &dates,
				Weekdays:           weekend,
				Participants:       builder.IntRange(builder.Int(2), builder.Int(8)),
				AdvanceDays:        builder.IntRange(nil, builder.Int(14)),
				DurationDays:       builder.IntRange(builder.Int(3), nil),
				OccupancyThreshold: builder.Percent("80"),
			}).MustBuild(),
	}

	for name, rule := range rules {
		t.Run(name, func(t *testing.T) {
			resp, err := resdto.FromRule(rule)
			require.NoError(t, err)
			raw, err := json.Marshal(resp)
			require.NoError(t, err)

			var decoded resdto.RuleResponse
			require.NoError(t, json.Unmarshal(raw, &decoded))
			spec, err := decoded.ToSpec()
			require.NoError(t, err)
			rebuilt := pricing.ReconstructPricingRule(decoded.ID, spec, decoded.CreatedAt, decoded.UpdatedAt)

			// PricingRule.Equal drives the comparison
			if diff := cmp.Diff(rule, rebuilt); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

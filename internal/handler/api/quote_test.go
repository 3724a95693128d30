//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"camp-pricing/internal/domain/availability"
	"camp-pricing/internal/domain/pricing"
	"camp-pricing/internal/handler/api"
	resdto "camp-pricing/internal/handler/dto/response"
	"camp-pricing/internal/pkg/errs"
	"camp-pricing/internal/usecase/quote"
	"camp-pricing/tests/common/builder"
	"camp-pricing/tests/common/httptest"
	"camp-pricing/tests/common/testutil"
	quotemock "camp-pricing/tests/mock/quote"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type QuoteHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockSvc  *quotemock.MockService
	handler  *api.QuoteHandler
}

func (s *QuoteHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockSvc = quotemock.NewMockService(s.mockCtrl)
	s.handler = api.NewQuoteHandler(s.mockSvc)

	s.router.POST("/quotes", s.handler.GetQuote)
	s.router.POST("/reservations", s.handler.Reserve)
}

func (s *QuoteHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestQuoteHandlerSuite(t *testing.T) {
	suite.Run(t, new(QuoteHandlerTestSuite))
}

type testCaseQuote struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func sampleQuote(campID uuid.UUID) *quote.Quote {
	ruleID := uuid.New()
	return &quote.Quote{
		CampID:            campID,
		Date:              time.Date(2025, 7, 12, 0, 0, 0, 0, time.UTC),
		Participants:      2,
		RequestedUnits:    2,
		Available:         true,
		RemainingCapacity: 8,
		BasePrice:         decimal.NewFromInt(1000),
		FinalPrice:        decimal.NewFromInt(1100),
		Multiplier:        decimal.RequireFromString("1.1"),
		Steps: []pricing.Step{{
			RuleID:       ruleID,
			RuleName:     "Summer season",
			RuleType:     pricing.RuleTypeSeasonal,
			SignedDelta:  decimal.NewFromInt(100),
			RunningAfter: decimal.NewFromInt(1100),
		}},
	}
}

// ================================================================================
// TestGetQuote
// ================================================================================

func (s *QuoteHandlerTestSuite) TestGetQuote() {
	url := "/quotes"
	reqBody := builder.NewQuoteBuilder().BuildDTO()
	returnQuote := sampleQuote(reqBody.CampID)

	validation := []testCaseQuote{
		{name: "participants boundary OK (1)", mutate: testutil.Field("participants", 1), expectCode: http.StatusOK},
		{name: "participants invalid (0)", mutate: testutil.Field("participants", 0), expectCode: http.StatusBadRequest},
		{name: "requested_units invalid (-1)", mutate: testutil.Field("requested_units", -1), expectCode: http.StatusBadRequest},
		{name: "missing field: camp_id", mutate: testutil.Field("camp_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: date", mutate: testutil.Field("date", nil), expectCode: http.StatusBadRequest},
		{name: "malformed date", mutate: testutil.Field("date", "12/07/2025"), expectCode: http.StatusBadRequest},
		{name: "malformed end_date", mutate: testutil.Field("end_date", "tomorrow"), expectCode: http.StatusBadRequest},
	}

	s.Run("success: returns price with breakdown", func() {
		s.mockSvc.EXPECT().GetQuote(gomock.Any(), quote.Request{
			CampID:       reqBody.CampID,
			Date:         returnQuote.Date,
			Participants: 2,
		}).Return(returnQuote, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("2025-07-12", body.Date)
		s.True(body.FinalPrice.Equal(decimal.NewFromInt(1100)))
		s.Require().Len(body.Breakdown, 1)
		s.Equal("Summer season", body.Breakdown[0].RuleName)
		s.NotNil(body.Warnings)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, tc := range validation {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				if tc.expectCode == http.StatusOK {
					s.mockSvc.EXPECT().GetQuote(gomock.Any(), gomock.Any()).Return(returnQuote, nil).Times(1)
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				if tc.expectCode == http.StatusOK {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
				}
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			serviceError   error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "date in the past", serviceError: pricing.ErrDateInPast, expectedStatus: http.StatusBadRequest, expectedMsg: "in the past"},
			{name: "slot not opened", serviceError: errs.Mark(errors.New("slot missing"), errs.ErrNotFound), expectedStatus: http.StatusNotFound, expectedMsg: "Not found"},
			{name: "lock timeout", serviceError: errs.Mark(errors.New("lock wait"), errs.ErrTimeout), expectedStatus: http.StatusServiceUnavailable, expectedMsg: "retry"},
			{name: "internal server error", serviceError: errors.New("database error"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Quote failed"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockSvc.EXPECT().GetQuote(gomock.Any(), gomock.Any()).Return(nil, tc.serviceError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 503 advertises Retry-After", func() {
		s.mockSvc.EXPECT().GetQuote(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("version moved"), errs.ErrConcurrencyConflict)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Retry-After": "1"})
	})
}

// ================================================================================
// TestReserve
// ================================================================================

func (s *QuoteHandlerTestSuite) TestReserve() {
	url := "/reservations"
	reqBody := builder.NewQuoteBuilder().BuildDTO()
	slot := builder.NewSlotBuilder().With(func(b *builder.SlotBuilder) { b.CampID = reqBody.CampID }).WithBooked(2).BuildDomain()

	s.Run("success: returns 201 with reservation and slot", func() {
		res := &quote.Reservation{ID: uuid.New(), Quote: *sampleQuote(reqBody.CampID), Slot: slot}
		s.mockSvc.EXPECT().ReserveAndQuote(gomock.Any(), gomock.Any()).Return(res, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(res.ID, body.ReservationID)
		s.Equal(2, body.Slot.Booked)
		s.Equal(8, body.Slot.Remaining)
		s.True(body.Quote.FinalPrice.Equal(decimal.NewFromInt(1100)))
	})

	s.Run("error: maps business outcomes to 409", func() {
		testCases := []struct {
			name        string
			err         error
			expectedMsg string
		}{
			{name: "blocked", err: availability.ErrSlotBlocked, expectedMsg: "not accepting bookings"},
			{name: "capacity exceeded", err: errs.Wrap(availability.ErrCapacityExceeded, "reserve"), expectedMsg: "not enough remaining capacity"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockSvc.EXPECT().ReserveAndQuote(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, tc.expectedMsg)
			})
		}
	})

	s.Run("error: invalid JSON never reaches the service", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, "not-an-object", "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

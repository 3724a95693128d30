package api

import (
	"net/http"

	reqdto "camp-pricing/internal/handler/dto/request"
	resdto "camp-pricing/internal/handler/dto/response"
	"camp-pricing/internal/handler/httperr"
	"camp-pricing/internal/usecase/quote"

	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	svc quote.Service
}

func NewQuoteHandler(svc quote.Service) *QuoteHandler {
	return &QuoteHandler{svc: svc}
}

// @Summary Get quote
// @Description Price a booking for one camp day. Nothing is reserved.
// @Tags quotes
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/quotes [post]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	req, ok := bindQuoteRequest(c)
	if !ok {
		return
	}

	q, err := h.svc.GetQuote(c.Request.Context(), req)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Quote failed")
		return
	}

	resp, err := resdto.FromQuote(q)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Reserve and quote
// @Description Reserve units on a camp day and return the price charged for them
// @Tags quotes
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/reservations [post]
func (h *QuoteHandler) Reserve(c *gin.Context) {
	req, ok := bindQuoteRequest(c)
	if !ok {
		return
	}

	res, err := h.svc.ReserveAndQuote(c.Request.Context(), req)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Reservation failed")
		return
	}

	resp, err := resdto.FromReservation(res)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func bindQuoteRequest(c *gin.Context) (quote.Request, bool) {
	var body reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return quote.Request{}, false
	}
	req, err := body.ToUseCase()
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Invalid request")
		return quote.Request{}, false
	}
	return req, true
}

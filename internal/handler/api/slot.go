package api

import (
	"context"
	"net/http"
	"time"

	"camp-pricing/internal/domain/availability"
	reqdto "camp-pricing/internal/handler/dto/request"
	resdto "camp-pricing/internal/handler/dto/response"
	"camp-pricing/internal/handler/httperr"
	"camp-pricing/internal/usecase/commands"
	"camp-pricing/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SlotHandler struct {
	cmds commands.SlotCommands
	q    queries.SlotQueries
}

func NewSlotHandler(cmds commands.SlotCommands, q queries.SlotQueries) *SlotHandler {
	return &SlotHandler{cmds: cmds, q: q}
}

// @Summary Open slot
// @Description Open a camp day with its capacity and base price. Reopening keeps bookings and rejects a capacity below them.
// @Tags slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param camp_id path string true "Camp ID"
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param request body reqdto.OpenSlotRequest true "Open slot request"
// @Success 200 {object} resdto.SlotResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /api/camps/{camp_id}/slots/{date} [put]
func (h *SlotHandler) Open(c *gin.Context) {
	campID, date, ok := slotParams(c)
	if !ok {
		return
	}
	var req reqdto.OpenSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	slot, err := h.cmds.OpenSlot(c.Request.Context(), campID, date, *req.Capacity, req.BasePrice)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Open slot failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlot(slot))
}

// @Summary Get slot
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Param camp_id path string true "Camp ID"
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.SlotResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/camps/{camp_id}/slots/{date} [get]
func (h *SlotHandler) Get(c *gin.Context) {
	campID, date, ok := slotParams(c)
	if !ok {
		return
	}
	slot, err := h.q.GetSlot(c.Request.Context(), campID, date)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Failed to load slot")
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlot(slot))
}

// @Summary Block slot
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Param camp_id path string true "Camp ID"
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.SlotResponse
// @Failure 404 {object} httperr.Response
// @Router /api/camps/{camp_id}/slots/{date}/block [post]
func (h *SlotHandler) Block(c *gin.Context) {
	h.transition(c, h.cmds.BlockSlot, "Block slot failed")
}

// @Summary Unblock slot
// @Description Clears a block. The slot comes back as full or available depending on its bookings.
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Param camp_id path string true "Camp ID"
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.SlotResponse
// @Failure 404 {object} httperr.Response
// @Router /api/camps/{camp_id}/slots/{date}/unblock [post]
func (h *SlotHandler) Unblock(c *gin.Context) {
	h.transition(c, h.cmds.UnblockSlot, "Unblock slot failed")
}

// @Summary Release units
// @Description Give back booked units, for example after a cancellation
// @Tags slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param camp_id path string true "Camp ID"
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param request body reqdto.ReleaseRequest true "Release request"
// @Success 200 {object} resdto.SlotResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/camps/{camp_id}/slots/{date}/release [post]
func (h *SlotHandler) Release(c *gin.Context) {
	campID, date, ok := slotParams(c)
	if !ok {
		return
	}
	var req reqdto.ReleaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	slot, err := h.cmds.ReleaseUnits(c.Request.Context(), campID, date, req.Count)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Release failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlot(slot))
}

type slotTransition func(ctx context.Context, campID uuid.UUID, date time.Time) (*availability.Slot, error)

func (h *SlotHandler) transition(c *gin.Context, fn slotTransition, failMsg string) {
	campID, date, ok := slotParams(c)
	if !ok {
		return
	}
	slot, err := fn(c.Request.Context(), campID, date)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, failMsg)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlot(slot))
}

func slotParams(c *gin.Context) (uuid.UUID, time.Time, bool) {
	campID, ok := campParam(c)
	if !ok {
		return uuid.Nil, time.Time{}, false
	}
	date, err := reqdto.ParseDateParam(c.Param("date"))
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Invalid date")
		return uuid.Nil, time.Time{}, false
	}
	return campID, date, true
}

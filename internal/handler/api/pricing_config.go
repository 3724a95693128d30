package api

import (
	"net/http"

	"camp-pricing/internal/domain/pricing"
	reqdto "camp-pricing/internal/handler/dto/request"
	resdto "camp-pricing/internal/handler/dto/response"
	"camp-pricing/internal/handler/httperr"
	"camp-pricing/internal/usecase/commands"
	"camp-pricing/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PricingConfigHandler struct {
	cmds commands.ConfigCommands
	q    queries.ConfigQueries
}

func NewPricingConfigHandler(cmds commands.ConfigCommands, q queries.ConfigQueries) *PricingConfigHandler {
	return &PricingConfigHandler{cmds: cmds, q: q}
}

// @Summary Get dynamic pricing config
// @Description Camps without a saved config get the defaults (disabled).
// @Tags pricing-config
// @Produce json
// @Security BearerAuth
// @Param camp_id path string true "Camp ID"
// @Success 200 {object} resdto.PricingConfigResponse
// @Failure 400 {object} httperr.Response
// @Router /api/camps/{camp_id}/pricing-config [get]
func (h *PricingConfigHandler) Get(c *gin.Context) {
	campID, ok := campParam(c)
	if !ok {
		return
	}
	cfg, err := h.q.GetConfig(c.Request.Context(), campID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Failed to load pricing config")
		return
	}
	h.respond(c, cfg)
}

// @Summary Update dynamic pricing config
// @Description Partial update; omitted fields keep their current value.
// @Tags pricing-config
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param camp_id path string true "Camp ID"
// @Param request body reqdto.PricingConfigRequest true "Config patch"
// @Success 200 {object} resdto.PricingConfigResponse
// @Failure 400 {object} httperr.Response
// @Router /api/camps/{camp_id}/pricing-config [patch]
func (h *PricingConfigHandler) Patch(c *gin.Context) {
	campID, ok := campParam(c)
	if !ok {
		return
	}
	var req reqdto.PricingConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	current, err := h.q.GetConfig(c.Request.Context(), campID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Failed to load pricing config")
		return
	}
	saved, err := h.cmds.SaveConfig(c.Request.Context(), req.ApplyTo(*current))
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Update pricing config failed")
		return
	}
	h.respond(c, saved)
}

func (h *PricingConfigHandler) respond(c *gin.Context, cfg *pricing.DynamicConfig) {
	resp, err := resdto.FromPricingConfig(cfg)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func campParam(c *gin.Context) (uuid.UUID, bool) {
	campID, err := uuid.Parse(c.Param("camp_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid camp id", nil)
		return uuid.Nil, false
	}
	return campID, true
}

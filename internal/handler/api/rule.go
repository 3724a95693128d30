package api

import (
	"net/http"
	"strconv"

	"camp-pricing/internal/domain/pricing"
	reqdto "camp-pricing/internal/handler/dto/request"
	resdto "camp-pricing/internal/handler/dto/response"
	"camp-pricing/internal/handler/httperr"
	"camp-pricing/internal/usecase/commands"
	"camp-pricing/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RuleHandler struct {
	cmds commands.RuleCommands
	q    queries.RuleQueries
}

func NewRuleHandler(cmds commands.RuleCommands, q queries.RuleQueries) *RuleHandler {
	return &RuleHandler{cmds: cmds, q: q}
}

// @Summary Create pricing rule
// @Tags rules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RuleRequest true "Rule"
// @Success 201 {object} resdto.RuleResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /api/rules [post]
func (h *RuleHandler) Create(c *gin.Context) {
	var req reqdto.RuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	spec, err := req.ToSpec()
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Invalid rule")
		return
	}

	rule, err := h.cmds.AddRule(c.Request.Context(), spec)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Create rule failed")
		return
	}
	respondRule(c, http.StatusCreated, rule)
}

// @Summary Get pricing rule
// @Tags rules
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rule ID"
// @Success 200 {object} resdto.RuleResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/rules/{id} [get]
func (h *RuleHandler) Get(c *gin.Context) {
	id, ok := ruleID(c)
	if !ok {
		return
	}
	rule, err := h.q.GetRule(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Failed to load rule")
		return
	}
	respondRule(c, http.StatusOK, rule)
}

// @Summary Replace pricing rule
// @Description Replaces every field of the rule. The body has the same shape as the rule response.
// @Tags rules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rule ID"
// @Param request body reqdto.RuleRequest true "Rule"
// @Success 200 {object} resdto.RuleResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/rules/{id} [put]
func (h *RuleHandler) Update(c *gin.Context) {
	id, ok := ruleID(c)
	if !ok {
		return
	}
	var req reqdto.RuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	spec, err := req.ToSpec()
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Invalid rule")
		return
	}

	rule, err := h.cmds.UpdateRule(c.Request.Context(), id, spec)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Update rule failed")
		return
	}
	respondRule(c, http.StatusOK, rule)
}

// @Summary Delete pricing rule
// @Tags rules
// @Security BearerAuth
// @Param id path string true "Rule ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /api/rules/{id} [delete]
func (h *RuleHandler) Delete(c *gin.Context) {
	id, ok := ruleID(c)
	if !ok {
		return
	}
	if err := h.cmds.RemoveRule(c.Request.Context(), id); err != nil {
		httperr.AbortWithUseCaseError(c, err, "Delete rule failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Activate or deactivate pricing rule
// @Tags rules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rule ID"
// @Param request body reqdto.RuleActiveRequest true "Active flag"
// @Success 200 {object} resdto.RuleResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/rules/{id}/active [patch]
func (h *RuleHandler) SetActive(c *gin.Context) {
	id, ok := ruleID(c)
	if !ok {
		return
	}
	var req reqdto.RuleActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	rule, err := h.cmds.SetRuleActive(c.Request.Context(), id, *req.Active)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Update rule failed")
		return
	}
	respondRule(c, http.StatusOK, rule)
}

// @Summary List camp pricing rules
// @Description Rules in evaluation order. Inactive rules are included unless active_only is set.
// @Tags rules
// @Produce json
// @Security BearerAuth
// @Param camp_id path string true "Camp ID"
// @Param active_only query bool false "Only active rules"
// @Success 200 {array} resdto.RuleResponse
// @Failure 400 {object} httperr.Response
// @Router /api/camps/{camp_id}/rules [get]
func (h *RuleHandler) ListByCamp(c *gin.Context) {
	campID, ok := campParam(c)
	if !ok {
		return
	}
	activeOnly := false
	if v := c.Query("active_only"); v != "" {
		var err error
		activeOnly, err = strconv.ParseBool(v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid active_only", nil)
			return
		}
	}

	list := h.q.ListRules
	if activeOnly {
		list = h.q.ListForCamp
	}
	rules, err := list(c.Request.Context(), campID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Failed to list rules")
		return
	}
	resp, err := resdto.FromRules(rules)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func ruleID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func respondRule(c *gin.Context, status int, rule *pricing.PricingRule) {
	resp, err := resdto.FromRule(rule)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(status, resp)
}

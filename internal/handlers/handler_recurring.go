package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/personal_os/internal/core/domain"
	portssvc "github.com/SscSPs/personal_os/internal/core/ports/services"
	"github.com/SscSPs/personal_os/internal/dto"
	"github.com/SscSPs/personal_os/internal/middleware"
	"github.com/gin-gonic/gin"
)

type recurringHandler struct {
	recurringService portssvc.RecurringSvcFacade
}

func registerRecurringRoutes(rg *gin.RouterGroup, recurringService portssvc.RecurringSvcFacade) {
	h := &recurringHandler{recurringService: recurringService}

	rg.GET("/recurring", h.listRules)
	rg.POST("/recurring", h.createRule)

	occurrences := rg.Group("/occurrences")
	{
		occurrences.GET("", h.listOccurrences)
		occurrences.POST("/:occurrenceID/post", h.postOccurrence)
		occurrences.POST("/:occurrenceID/skip", h.skipOccurrence)
	}
}

// listRules godoc
// @Summary List recurring rules
// @Tags recurring
// @Produce json
// @Success 200 {array} dto.RecurringRuleResponse
// @Router /expense/recurring [get]
func (h *recurringHandler) listRules(c *gin.Context) {
	rules, err := h.recurringService.ListRecurringRules(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list recurring rules")
		return
	}
	c.JSON(http.StatusOK, dto.ToListRecurringRuleResponse(rules))
}

// createRule godoc
// @Summary Create a recurring rule
// @Description Stores the rule and its first pending occurrence.
// @Tags recurring
// @Accept json
// @Produce json
// @Param rule body dto.CreateRecurringRuleRequest true "Rule details"
// @Success 201 {object} dto.RecurringRuleResponse
// @Failure 400 {object} errorResponse
// @Router /expense/recurring [post]
func (h *recurringHandler) createRule(c *gin.Context) {
	var req dto.CreateRecurringRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	rule, err := h.recurringService.CreateRecurringRule(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create recurring rule")
		return
	}
	c.JSON(http.StatusCreated, dto.ToRecurringRuleResponse(rule))
}

// listOccurrences godoc
// @Summary List recurring occurrences
// @Tags recurring
// @Produce json
// @Param status query string false "pending, posted or skipped"
// @Success 200 {array} dto.OccurrenceResponse
// @Failure 400 {object} errorResponse
// @Router /expense/occurrences [get]
func (h *recurringHandler) listOccurrences(c *gin.Context) {
	status := domain.OccurrenceStatus(c.Query("status"))
	items, err := h.recurringService.ListOccurrences(c.Request.Context(), status)
	if err != nil {
		respondError(c, err, "Failed to list occurrences")
		return
	}
	c.JSON(http.StatusOK, dto.ToListOccurrenceResponse(items))
}

// postOccurrence godoc
// @Summary Post a pending occurrence
// @Description Creates the transaction for a pending occurrence and advances its rule.
// @Tags recurring
// @Produce json
// @Param occurrenceID path int true "Occurrence ID"
// @Success 201 {object} dto.PostOccurrenceResponse
// @Failure 400 {object} errorResponse "Occurrence is not pending"
// @Failure 404 {object} errorResponse
// @Router /expense/occurrences/{occurrenceID}/post [post]
func (h *recurringHandler) postOccurrence(c *gin.Context) {
	occurrenceID, ok := idParam(c, "occurrenceID")
	if !ok {
		return
	}

	occ, txn, err := h.recurringService.PostOccurrence(c.Request.Context(), occurrenceID)
	if err != nil {
		respondError(c, err, "Failed to post occurrence")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Occurrence posted",
		slog.Int64("occurrence_id", occ.ID), slog.Int64("transaction_id", txn.ID))
	c.JSON(http.StatusCreated, dto.PostOccurrenceResponse{
		Occurrence:  dto.ToOccurrenceResponse(occ),
		Transaction: dto.ToTransactionResponse(txn),
	})
}

// skipOccurrence godoc
// @Summary Skip a pending occurrence
// @Tags recurring
// @Produce json
// @Param occurrenceID path int true "Occurrence ID"
// @Success 200 {object} dto.OccurrenceResponse
// @Failure 400 {object} errorResponse "Occurrence is not pending"
// @Failure 404 {object} errorResponse
// @Router /expense/occurrences/{occurrenceID}/skip [post]
func (h *recurringHandler) skipOccurrence(c *gin.Context) {
	occurrenceID, ok := idParam(c, "occurrenceID")
	if !ok {
		return
	}
	occ, err := h.recurringService.SkipOccurrence(c.Request.Context(), occurrenceID)
	if err != nil {
		respondError(c, err, "Failed to skip occurrence")
		return
	}
	c.JSON(http.StatusOK, dto.ToOccurrenceResponse(occ))
}

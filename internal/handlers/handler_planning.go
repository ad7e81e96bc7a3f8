package handlers

import (
	"net/http"
	"strconv"

	"github.com/SscSPs/personal_os/internal/core/domain"
	portssvc "github.com/SscSPs/personal_os/internal/core/ports/services"
	"github.com/SscSPs/personal_os/internal/dto"
	"github.com/gin-gonic/gin"
)

// planningHandler serves budgets, goals and the finance history.
type planningHandler struct {
	budgetService portssvc.BudgetSvcFacade
	goalService   portssvc.GoalSvcFacade
	auditService  portssvc.AuditSvc
}

func registerPlanningRoutes(rg *gin.RouterGroup, budgets portssvc.BudgetSvcFacade, goals portssvc.GoalSvcFacade, audit portssvc.AuditSvc) {
	h := &planningHandler{budgetService: budgets, goalService: goals, auditService: audit}

	budgetGroup := rg.Group("/budgets")
	{
		budgetGroup.GET("/monthly", h.listMonthlyBudgets)
		budgetGroup.POST("/monthly", h.upsertMonthlyBudget)
		budgetGroup.GET("/category", h.listCategoryBudgets)
		budgetGroup.POST("/category", h.upsertCategoryBudget)
	}

	goalGroup := rg.Group("/goals")
	{
		goalGroup.GET("", h.listGoals)
		goalGroup.POST("", h.createGoal)
		goalGroup.PATCH("/:goalID", h.updateGoal)
	}

	rg.GET("/goal-allocations", h.listGoalAllocations)
	rg.POST("/goal-allocations", h.upsertGoalAllocation)

	rg.GET("/history", h.listHistory)
}

// listMonthlyBudgets godoc
// @Summary List monthly budgets
// @Tags budgets
// @Produce json
// @Success 200 {array} dto.MonthlyBudgetResponse
// @Router /expense/budgets/monthly [get]
func (h *planningHandler) listMonthlyBudgets(c *gin.Context) {
	items, err := h.budgetService.ListMonthlyBudgets(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list monthly budgets")
		return
	}
	c.JSON(http.StatusOK, dto.ToListMonthlyBudgetResponse(items))
}

// upsertMonthlyBudget godoc
// @Summary Create or replace a monthly budget
// @Description Always answers 201, whether the row was inserted or updated.
// @Tags budgets
// @Accept json
// @Produce json
// @Param budget body dto.UpsertMonthlyBudgetRequest true "Budget"
// @Success 201 {object} dto.MonthlyBudgetResponse
// @Failure 400 {object} errorResponse
// @Router /expense/budgets/monthly [post]
func (h *planningHandler) upsertMonthlyBudget(c *gin.Context) {
	var req dto.UpsertMonthlyBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	budget, _, err := h.budgetService.UpsertMonthlyBudget(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to save monthly budget")
		return
	}
	c.JSON(http.StatusCreated, dto.ToMonthlyBudgetResponse(budget))
}

// listCategoryBudgets godoc
// @Summary List category budgets
// @Tags budgets
// @Produce json
// @Param year query int false "Year"
// @Param month query int false "Month (1-12)"
// @Success 200 {array} dto.CategoryBudgetResponse
// @Failure 400 {object} errorResponse
// @Router /expense/budgets/category [get]
func (h *planningHandler) listCategoryBudgets(c *gin.Context) {
	var params dto.ListCategoryBudgetsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	items, err := h.budgetService.ListCategoryBudgets(c.Request.Context(), params.Year, params.Month)
	if err != nil {
		respondError(c, err, "Failed to list category budgets")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCategoryBudgetResponse(items))
}

// upsertCategoryBudget godoc
// @Summary Create or replace a category budget
// @Tags budgets
// @Accept json
// @Produce json
// @Param budget body dto.UpsertCategoryBudgetRequest true "Category budget"
// @Success 201 {object} dto.CategoryBudgetResponse
// @Failure 400 {object} errorResponse
// @Router /expense/budgets/category [post]
func (h *planningHandler) upsertCategoryBudget(c *gin.Context) {
	var req dto.UpsertCategoryBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	budget, _, err := h.budgetService.UpsertCategoryBudget(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to save category budget")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCategoryBudgetResponse(budget))
}

// listGoals godoc
// @Summary List goals
// @Tags goals
// @Produce json
// @Param active_only query bool false "Only active goals"
// @Success 200 {array} dto.GoalResponse
// @Router /expense/goals [get]
func (h *planningHandler) listGoals(c *gin.Context) {
	activeOnly, err := strconv.ParseBool(c.DefaultQuery("active_only", "false"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "active_only must be a boolean"})
		return
	}
	items, err := h.goalService.ListGoals(c.Request.Context(), activeOnly)
	if err != nil {
		respondError(c, err, "Failed to list goals")
		return
	}
	c.JSON(http.StatusOK, dto.ToListGoalResponse(items))
}

// createGoal godoc
// @Summary Create a goal
// @Tags goals
// @Accept json
// @Produce json
// @Param goal body dto.CreateGoalRequest true "Goal"
// @Success 201 {object} dto.GoalResponse
// @Failure 400 {object} errorResponse
// @Router /expense/goals [post]
func (h *planningHandler) createGoal(c *gin.Context) {
	var req dto.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	goal, err := h.goalService.CreateGoal(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create goal")
		return
	}
	c.JSON(http.StatusCreated, dto.ToGoalResponse(goal))
}

// updateGoal godoc
// @Summary Update a goal
// @Tags goals
// @Accept json
// @Produce json
// @Param goalID path int true "Goal ID"
// @Param goal body dto.UpdateGoalRequest true "Fields to change"
// @Success 200 {object} dto.GoalResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /expense/goals/{goalID} [patch]
func (h *planningHandler) updateGoal(c *gin.Context) {
	goalID, ok := idParam(c, "goalID")
	if !ok {
		return
	}
	var req dto.UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	goal, err := h.goalService.UpdateGoal(c.Request.Context(), goalID, req)
	if err != nil {
		respondError(c, err, "Failed to update goal")
		return
	}
	c.JSON(http.StatusOK, dto.ToGoalResponse(goal))
}

// listGoalAllocations godoc
// @Summary List goal allocations
// @Tags goals
// @Produce json
// @Param goal_id query int false "Goal ID"
// @Success 200 {array} dto.GoalAllocationResponse
// @Router /expense/goal-allocations [get]
func (h *planningHandler) listGoalAllocations(c *gin.Context) {
	var goalID *int64
	if raw := c.Query("goal_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "goal_id must be an integer"})
			return
		}
		goalID = &id
	}
	items, err := h.goalService.ListGoalAllocations(c.Request.Context(), goalID)
	if err != nil {
		respondError(c, err, "Failed to list goal allocations")
		return
	}
	c.JSON(http.StatusOK, dto.ToListGoalAllocationResponse(items))
}

// upsertGoalAllocation godoc
// @Summary Create or replace a goal allocation
// @Tags goals
// @Accept json
// @Produce json
// @Param allocation body dto.UpsertGoalAllocationRequest true "Allocation"
// @Success 201 {object} dto.GoalAllocationResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse "Goal or asset not found"
// @Router /expense/goal-allocations [post]
func (h *planningHandler) upsertGoalAllocation(c *gin.Context) {
	var req dto.UpsertGoalAllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	alloc, _, err := h.goalService.UpsertGoalAllocation(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to save goal allocation")
		return
	}
	c.JSON(http.StatusCreated, dto.ToGoalAllocationResponse(alloc))
}

// listHistory godoc
// @Summary List the finance audit history
// @Description Newest first. limit is clamped to [1, 200] and offset to >= 0.
// @Tags history
// @Produce json
// @Param entity_type query string false "Entity type"
// @Param entity_id query int false "Entity ID"
// @Param limit query int false "Page size" default(100)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} dto.AuditLogResponse
// @Router /expense/history [get]
func (h *planningHandler) listHistory(c *gin.Context) {
	var params dto.ListHistoryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	items, err := h.auditService.ListHistory(c.Request.Context(), domain.AuditFilter{
		EntityType: domain.EntityType(params.EntityType),
		EntityID:   params.EntityID,
		Limit:      params.Limit,
		Offset:     params.Offset,
	})
	if err != nil {
		respondError(c, err, "Failed to list history")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAuditLogResponse(items))
}

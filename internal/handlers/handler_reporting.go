package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/personal_os/internal/core/ports/services"
	"github.com/SscSPs/personal_os/internal/dto"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to finance analytics
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers the dashboard and analytics routes
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	rg.GET("/dashboard", h.getDashboard)
	analytics := rg.Group("/analytics")
	{
		analytics.GET("/category-spend", h.getCategorySpend)
		analytics.GET("/cashflow", h.getCashflow)
	}
}

// getDashboard godoc
// @Summary Net worth dashboard
// @Description Totals, net worth and this month's income, expenses and savings rate
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 500 {object} errorResponse
// @Router /expense/dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	dashboard, err := h.reportingService.GetDashboard(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to build dashboard")
		return
	}
	c.JSON(http.StatusOK, dto.ToDashboardResponse(dashboard))
}

// getCategorySpend godoc
// @Summary Spend by category for a month
// @Tags analytics
// @Produce json
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {array} dto.CategorySpendResponse
// @Failure 400 {object} errorResponse
// @Router /expense/analytics/category-spend [get]
func (h *reportingHandler) getCategorySpend(c *gin.Context) {
	var params dto.CategorySpendParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	rows, err := h.reportingService.GetCategorySpend(c.Request.Context(), params.Year, params.Month)
	if err != nil {
		respondError(c, err, "Failed to compute category spend")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCategorySpendResponse(rows))
}

// getCashflow godoc
// @Summary Monthly cash flow
// @Description Gap-free monthly series ending at the current month. Empty when there are no transactions.
// @Tags analytics
// @Produce json
// @Param last_n_months query int false "Window size, clamped to [1, 240]"
// @Success 200 {array} dto.CashflowPointResponse
// @Failure 400 {object} errorResponse
// @Router /expense/analytics/cashflow [get]
func (h *reportingHandler) getCashflow(c *gin.Context) {
	var params dto.CashflowParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	points, err := h.reportingService.GetCashflow(c.Request.Context(), params.LastNMonths)
	if err != nil {
		respondError(c, err, "Failed to compute cash flow")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCashflowResponse(points))
}

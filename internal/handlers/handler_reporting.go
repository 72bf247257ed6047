package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/npatil9/expense_tracker_app/internal/core/domain"
	portssvc "github.com/npatil9/expense_tracker_app/internal/core/ports/services"
	"github.com/npatil9/expense_tracker_app/internal/dto"
	"github.com/npatil9/expense_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

const defaultTopExpensesLimit = 5

// reportingHandler handles the read-only report endpoints.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
	expenseService   portssvc.ExpenseReaderSvc
	currencyService  portssvc.CurrencyReaderSvc
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingSvcFacade, es portssvc.ExpenseReaderSvc, cs portssvc.CurrencyReaderSvc) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
		expenseService:   es,
		currencyService:  cs,
	}
}

// registerReportingRoutes registers routes related to reports.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade, expenseService portssvc.ExpenseReaderSvc, currencyService portssvc.CurrencyReaderSvc) {
	h := newReportingHandler(reportingService, expenseService, currencyService)

	reports := rg.Group("/reports")
	{
		reports.GET("/stats", h.getStats)
		reports.GET("/trend", h.getTrend)
		reports.GET("/summary", h.getSummary)
		reports.GET("/top", h.getTopExpenses)
	}
}

// activeCurrency resolves the display currency used for formatted amounts.
func (h *reportingHandler) activeCurrency(c *gin.Context) domain.Currency {
	currency, err := h.currencyService.ActiveCurrency(c.Request.Context())
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Warn("Falling back to default currency for formatting", slog.String("error", err.Error()))
		return domain.DefaultCurrency()
	}
	return *currency
}

// getStats godoc
// @Summary Aggregate statistics
// @Description Computes per-month and per-category totals, month-over-month change, daily average and extremes over the full history
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.StatsResponse
// @Failure 500 {object} map[string]string "Failed to compute statistics"
// @Router /reports/stats [get]
func (h *reportingHandler) getStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	stats, err := h.reportingService.Stats(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute statistics", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute statistics"})
		return
	}

	c.JSON(http.StatusOK, dto.ToStatsResponse(stats, h.activeCurrency(c)))
}

// getTrend godoc
// @Summary Monthly trend series
// @Description Buckets the full history by calendar month with running totals and month-over-month growth
// @Tags reports
// @Produce  json
// @Success 200 {array} dto.TrendPointResponse
// @Failure 500 {object} map[string]string "Failed to compute trend"
// @Router /reports/trend [get]
func (h *reportingHandler) getTrend(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	points, err := h.reportingService.Trend(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute trend", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute trend"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTrendResponse(points))
}

// getSummary godoc
// @Summary Summary view
// @Description Monthly overview and extremes over the full history, plus average and count over the filtered set
// @Tags reports
// @Produce  json
// @Param   category query string false "Category id, or 'all'"
// @Param   range query string false "Date range: all, week, month or year"
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 500 {object} map[string]string "Failed to compute summary"
// @Router /reports/summary [get]
func (h *reportingHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	filter, err := parseExpenseFilter(c)
	if err != nil {
		logger.Warn("Invalid summary filter", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stats, err := h.reportingService.Stats(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute statistics for summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
		return
	}

	filtered, total, err := h.expenseService.ListExpenses(c.Request.Context(), filter)
	if err != nil {
		logger.Error("Failed to list expenses for summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSummaryResponse(stats, total, len(filtered), h.activeCurrency(c)))
}

// getTopExpenses godoc
// @Summary Largest expenses
// @Description Retrieves the largest filtered expenses by amount, descending
// @Tags reports
// @Produce  json
// @Param   category query string false "Category id, or 'all'"
// @Param   range query string false "Date range: all, week, month or year"
// @Param   limit query int false "Maximum number of expenses" default(5)
// @Success 200 {array} dto.ExpenseResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 500 {object} map[string]string "Failed to compute top expenses"
// @Router /reports/top [get]
func (h *reportingHandler) getTopExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	filter, err := parseExpenseFilter(c)
	if err != nil {
		logger.Warn("Invalid top-expenses filter", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	limit := defaultTopExpensesLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	top, err := h.reportingService.TopExpenses(c.Request.Context(), filter, limit)
	if err != nil {
		logger.Error("Failed to compute top expenses", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute top expenses"})
		return
	}

	res := make([]dto.ExpenseResponse, len(top))
	for i := range top {
		res[i] = dto.ToExpenseResponse(&top[i])
	}
	c.JSON(http.StatusOK, res)
}

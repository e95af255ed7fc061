package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vhrodriguesv/clinicfin/internal/apperrors"
	"github.com/vhrodriguesv/clinicfin/internal/core/domain"
	portssvc "github.com/vhrodriguesv/clinicfin/internal/core/ports/services"
	"github.com/vhrodriguesv/clinicfin/internal/dto"
	"github.com/vhrodriguesv/clinicfin/internal/middleware"
)

// cashFlowHandler handles HTTP requests for cash-flow reporting.
type cashFlowHandler struct {
	cashFlowService portssvc.CashFlowSvcFacade
}

// newCashFlowHandler creates a new cashFlowHandler.
func newCashFlowHandler(cashFlowService portssvc.CashFlowSvcFacade) *cashFlowHandler {
	return &cashFlowHandler{
		cashFlowService: cashFlowService,
	}
}

// getCashFlow godoc
// @Summary Cash-flow time series
// @Description Buckets actual (by payment date) and projected (by due date) movement into a zero-filled series
// @Tags reports
// @Produce  json
// @Param   from query string true "Range start (YYYY-MM-DD)"
// @Param   to query string true "Range end (YYYY-MM-DD)"
// @Param   resolution query string true "day, month or year"
// @Success 200 {object} dto.CashFlowReportResponse
// @Failure 400 {object} map[string]string "Invalid range or resolution"
// @Router /reports/cashflow [get]
func (h *cashFlowHandler) getCashFlow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID, _ := middleware.GetTenantIDFromContext(c)

	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'from' date, expected YYYY-MM-DD"})
		return
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'to' date, expected YYYY-MM-DD"})
		return
	}
	resolution := domain.CashFlowResolution(strings.ToUpper(c.DefaultQuery("resolution", string(domain.ResolutionMonth))))

	buckets, err := h.cashFlowService.Aggregate(c.Request.Context(), tenantID, from, to, resolution)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to aggregate cash flow", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to aggregate cash flow"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCashFlowReportResponse(buckets, c.Query("from"), c.Query("to"), resolution))
}

// getCashFlowSummary godoc
// @Summary Cash-flow headline figures
// @Description All-time balance and receivable/payable totals; from/to narrow only the period inflow/outflow
// @Tags reports
// @Produce  json
// @Param   from query string false "Period start (YYYY-MM-DD)"
// @Param   to query string false "Period end (YYYY-MM-DD)"
// @Success 200 {object} dto.CashFlowSummaryResponse
// @Failure 400 {object} map[string]string "Invalid period"
// @Router /reports/cashflow/summary [get]
func (h *cashFlowHandler) getCashFlowSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID, _ := middleware.GetTenantIDFromContext(c)

	var from, to *time.Time
	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'from' date, expected YYYY-MM-DD"})
			return
		}
		from = &parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'to' date, expected YYYY-MM-DD"})
			return
		}
		to = &parsed
	}

	summary, err := h.cashFlowService.Summarize(c.Request.Context(), tenantID, from, to)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to summarize cash flow", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to summarize cash flow"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCashFlowSummaryResponse(summary))
}

// registerCashFlowRoutes registers the reporting routes
func registerCashFlowRoutes(group *gin.RouterGroup, cashFlowService portssvc.CashFlowSvcFacade) {
	handler := newCashFlowHandler(cashFlowService)

	reports := group.Group("/reports")
	{
		reports.GET("/cashflow", handler.getCashFlow)
		reports.GET("/cashflow/summary", handler.getCashFlowSummary)
	}
}
